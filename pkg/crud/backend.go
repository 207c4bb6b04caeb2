package crud

import "github.com/mesh-intelligence/officedesk/pkg/types"

// Backend holds the ordered records of one entity type. Store is the
// in-memory implementation; internal/sqlite provides another.
//
// Backends do not validate. Callers pass only records that already passed
// their Validate method.
type Backend[T types.Record[T]] interface {
	// Create assigns the next id (one greater than the current maximum, or 1
	// when empty), trims string fields, appends the record, and returns it.
	Create(rec T) (T, error)

	// Get returns the record with the given id.
	// Returns types.ErrNotFound if no record has that id.
	Get(id int) (T, error)

	// Update replaces the record with the given id in place, keeping its
	// position. The stored copy always carries id. No-op if absent.
	Update(id int, rec T) error

	// Delete removes the record with the given id. No-op if absent.
	Delete(id int) error

	// List returns a snapshot of all records in insertion order.
	List() ([]T, error)
}
