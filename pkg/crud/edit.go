package crud

import (
	"fmt"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// EditSession is either empty or editing one record. While editing it holds
// a working copy of the record and the errors from the last submit. Changes
// to the working copy reach the store only through Submit.
type EditSession[T types.Record[T]] struct {
	working T
	errs    types.FieldErrors
	active  bool
}

// Begin starts editing a copy of rec with no errors, replacing any session
// already open.
func (s *EditSession[T]) Begin(rec T) {
	s.working = rec
	s.errs = types.FieldErrors{}
	s.active = true
}

// Set changes one field of the working copy. Errors from the previous submit
// are kept as they are until the next submit.
func (s *EditSession[T]) Set(key, value string) error {
	if !s.active {
		return types.ErrNoEditSession
	}
	w, err := s.working.WithValue(key, value)
	if err != nil {
		return err
	}
	s.working = w
	return nil
}

// Cancel discards the working copy.
func (s *EditSession[T]) Cancel() {
	var zero T
	s.working = zero
	s.errs = nil
	s.active = false
}

// Current returns the working copy and last submit errors while editing.
func (s *EditSession[T]) Current() (T, types.FieldErrors, bool) {
	return s.working, s.errs, s.active
}

// Active reports whether a record is being edited.
func (s *EditSession[T]) Active() bool { return s.active }

// Submit validates the working copy. When valid it commits the copy with
// store.Update, posts a success notice, and closes the session. When invalid
// the errors are kept for display, the session stays open, and neither the
// store nor the notices are touched.
//
// A backend failure, or a record that is no longer in the store, leaves the
// session open and posts an error notice.
func (s *EditSession[T]) Submit(store Backend[T], notices *NotificationChannel) (types.FieldErrors, error) {
	if !s.active {
		return nil, types.ErrNoEditSession
	}

	errs := s.working.Validate()
	s.errs = errs
	if !errs.Valid() {
		return errs, nil
	}

	id := s.working.RecordID()
	if err := commitUpdate(store, id, s.working); err != nil {
		entity := s.working.Entity()
		notices.Error(fmt.Sprintf("%s update failed: %v", entity, err))
		return errs, fmt.Errorf("update %s %d: %w", entity, id, err)
	}

	notices.Success(s.working.Entity() + " updated successfully.")
	s.Cancel()
	return errs, nil
}

// commitUpdate refuses to write a working copy whose record has been removed,
// since its id may since have been issued to a different record.
func commitUpdate[T types.Record[T]](store Backend[T], id int, rec T) error {
	if _, err := store.Get(id); err != nil {
		return err
	}
	return store.Update(id, rec)
}
