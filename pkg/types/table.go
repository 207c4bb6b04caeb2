package types

import "errors"

// Store operation errors.
var (
	ErrNotFound     = errors.New("record not found")
	ErrUnknownField = errors.New("unknown field")
	ErrDetached     = errors.New("backend is detached")
	ErrAttached     = errors.New("backend is already attached")
)

// Session errors returned by the transient UI state holders.
var (
	ErrNoEditSession   = errors.New("no record is being edited")
	ErrNoPendingDelete = errors.New("no record is pending deletion")
	ErrEditInProgress  = errors.New("a record is being edited")
	ErrDeletePending   = errors.New("a record is awaiting delete confirmation")
)

// ErrTableNotFound is returned when a backend is asked for a table it does
// not define.
var ErrTableNotFound = errors.New("table not found")
