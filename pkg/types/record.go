package types

import (
	"fmt"
	"sort"
	"strings"
)

// Field describes one user-editable column of an entity, in display order.
type Field struct {
	Key   string // Key used in field-error maps and key=value input.
	Title string // Column heading.
}

// FieldErrors maps a field key to its validation message. An empty map
// means the candidate is valid.
type FieldErrors map[string]string

// Valid reports whether no field failed validation.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Keys returns the failing field keys in lexical order.
func (e FieldErrors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the errors as "field: message" pairs.
func (e FieldErrors) String() string {
	parts := make([]string, 0, len(e))
	for _, k := range e.Keys() {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}

// Record is the contract every entity managed by the CRUD engine satisfies.
// Methods use value receivers and return modified copies so that a working
// copy can never alias a stored record.
type Record[T any] interface {
	// Entity returns the singular display name, e.g. "Office".
	Entity() string

	// RecordID returns the assigned identifier (0 for a draft).
	RecordID() int

	// WithID returns a copy carrying the given identifier.
	WithID(id int) T

	// Fields lists the editable fields in display order.
	Fields() []Field

	// Value returns the raw value of a field.
	// Returns ErrUnknownField if key is not one of Fields.
	Value(key string) (string, error)

	// WithValue returns a copy with one field replaced.
	// Returns ErrUnknownField if key is not one of Fields.
	WithValue(key, value string) (T, error)

	// Trimmed returns a copy with surrounding whitespace removed from every
	// string field.
	Trimmed() T

	// Validate maps each failing field to its message. It never mutates the
	// receiver and never fails.
	Validate() FieldErrors
}

func unknownField(entity, key string) error {
	return fmt.Errorf("%s field %q: %w", strings.ToLower(entity), key, ErrUnknownField)
}
