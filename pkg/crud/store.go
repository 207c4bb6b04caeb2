package crud

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// Store is a slice-backed Backend. Its methods never return a non-nil error.
type Store[T types.Record[T]] struct {
	records []T
}

var _ Backend[types.Office] = (*Store[types.Office])(nil)

// NewStore returns an empty store.
func NewStore[T types.Record[T]]() *Store[T] {
	return &Store[T]{}
}

func (s *Store[T]) nextID() int {
	next := 1
	for _, r := range s.records {
		if r.RecordID() >= next {
			next = r.RecordID() + 1
		}
	}
	return next
}

func (s *Store[T]) index(id int) int {
	return slices.IndexFunc(s.records, func(r T) bool { return r.RecordID() == id })
}

func (s *Store[T]) Create(rec T) (T, error) {
	rec = rec.Trimmed().WithID(s.nextID())
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *Store[T]) Get(id int) (T, error) {
	i := s.index(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", zeroEntity[T](), id, types.ErrNotFound)
	}
	return s.records[i], nil
}

func (s *Store[T]) Update(id int, rec T) error {
	if i := s.index(id); i >= 0 {
		s.records[i] = rec.WithID(id)
	}
	return nil
}

func (s *Store[T]) Delete(id int) error {
	if i := s.index(id); i >= 0 {
		s.records = slices.Delete(s.records, i, i+1)
	}
	return nil
}

// List returns a copy; later mutations do not show through it.
func (s *Store[T]) List() ([]T, error) {
	return append(make([]T, 0, len(s.records)), s.records...), nil
}

// Len reports the number of stored records.
func (s *Store[T]) Len() int {
	return len(s.records)
}

// zeroEntity returns the display name of T, e.g. "Office".
func zeroEntity[T types.Record[T]]() string {
	var zero T
	return zero.Entity()
}
