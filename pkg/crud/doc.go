// Package crud is the in-memory CRUD state engine behind the office and
// employee screens. It holds the ordered record list of one entity type, the
// create-form draft, the edit session, the delete confirmation gate, and the
// single status notification, and keeps them consistent with each other.
//
// Everything here is synchronous and single-threaded: each operation
// completes before the next user intent is processed. None of the types are
// safe for concurrent use and none start goroutines.
package crud
