package crud_test

import (
	"errors"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

var errBackend = errors.New("disk on fire")

// failingBackend wraps a Store and fails the mutating call named by failOn.
type failingBackend[T types.Record[T]] struct {
	*crud.Store[T]
	failOn crud.Op
}

func (f *failingBackend[T]) Create(rec T) (T, error) {
	if f.failOn == crud.OpCreate {
		var zero T
		return zero, errBackend
	}
	return f.Store.Create(rec)
}

func (f *failingBackend[T]) Update(id int, rec T) error {
	if f.failOn == crud.OpUpdate {
		return errBackend
	}
	return f.Store.Update(id, rec)
}

func (f *failingBackend[T]) Delete(id int) error {
	if f.failOn == crud.OpDelete {
		return errBackend
	}
	return f.Store.Delete(id)
}

type observation struct {
	entity  string
	op      crud.Op
	outcome crud.Outcome
}

type recordingObserver struct {
	seen []observation
}

func (r *recordingObserver) Observe(entity string, op crud.Op, outcome crud.Outcome) {
	r.seen = append(r.seen, observation{entity, op, outcome})
}

func seededOffices() *crud.Store[types.Office] {
	s := crud.NewStore[types.Office]()
	for _, o := range types.SeedOffices() {
		if _, err := s.Create(o); err != nil {
			panic(err)
		}
	}
	return s
}
