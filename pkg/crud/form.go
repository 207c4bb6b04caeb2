package crud

import (
	"fmt"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// CreateForm is the top-level create form: a draft record and the errors
// from its last submit.
type CreateForm[T types.Record[T]] struct {
	draft T
	errs  types.FieldErrors
}

// Set changes one draft field.
func (f *CreateForm[T]) Set(key, value string) error {
	d, err := f.draft.WithValue(key, value)
	if err != nil {
		return err
	}
	f.draft = d
	return nil
}

// Draft returns the current draft.
func (f *CreateForm[T]) Draft() T { return f.draft }

// Errors returns the errors from the last submit.
func (f *CreateForm[T]) Errors() types.FieldErrors { return f.errs }

// Reset restores the empty draft and clears errors. It does not touch any
// store or notification.
func (f *CreateForm[T]) Reset() {
	var zero T
	f.draft = zero
	f.errs = types.FieldErrors{}
}

// Submit validates the draft. Invalid drafts are kept as typed, their errors
// are stored, and an error notice is posted. Valid drafts are created in
// store, the form is reset, and a success notice is posted.
func (f *CreateForm[T]) Submit(store Backend[T], notices *NotificationChannel) (T, types.FieldErrors, error) {
	var zero T

	errs := f.draft.Validate()
	f.errs = errs
	if !errs.Valid() {
		notices.Error(MsgFixValidation)
		return zero, errs, nil
	}

	created, err := store.Create(f.draft)
	if err != nil {
		entity := f.draft.Entity()
		notices.Error(fmt.Sprintf("%s create failed: %v", entity, err))
		return zero, errs, fmt.Errorf("create %s: %w", entity, err)
	}

	f.Reset()
	notices.Success(created.Entity() + " created successfully.")
	return created, errs, nil
}
