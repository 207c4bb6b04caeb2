package crud

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// Page wires a Backend to the create form, edit session, delete gate, and
// notification channel of one entity type. It is the only component that
// calls the backend's mutating methods, and it only does so with records that
// passed validation.
type Page[T types.Record[T]] struct {
	store   Backend[T]
	form    CreateForm[T]
	edit    EditSession[T]
	gate    ConfirmationGate[T]
	notices NotificationChannel

	logger   *slog.Logger
	observer Observer
}

type pageOptions struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures a Page.
type Option func(*pageOptions)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *pageOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers an Observer for operation outcomes.
func WithObserver(obs Observer) Option {
	return func(o *pageOptions) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// NewPage returns a Page over store with an empty draft and no open dialogs.
func NewPage[T types.Record[T]](store Backend[T], opts ...Option) *Page[T] {
	o := pageOptions{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	p := &Page[T]{
		store:    store,
		logger:   o.logger.With(slog.String("entity", zeroEntity[T]())),
		observer: o.observer,
	}
	p.form.Reset()
	return p
}

// Entity returns the display name of the page's entity type.
func (p *Page[T]) Entity() string { return zeroEntity[T]() }

// Seed creates initial records directly, without validation side effects or
// notifications. Records failing validation are refused.
func (p *Page[T]) Seed(recs ...T) error {
	for _, r := range recs {
		if errs := r.Validate(); !errs.Valid() {
			return fmt.Errorf("seed %s: %s", p.Entity(), errs)
		}
		if _, err := p.store.Create(r); err != nil {
			return fmt.Errorf("seed %s: %w", p.Entity(), err)
		}
	}
	p.logger.Debug("seeded", slog.Int("count", len(recs)))
	return nil
}

// Records returns the current record list for rendering.
func (p *Page[T]) Records() ([]T, error) {
	return p.store.List()
}

// Notice returns the current status message, if any.
func (p *Page[T]) Notice() (Notification, bool) {
	return p.notices.Current()
}

// Draft returns the create-form draft.
func (p *Page[T]) Draft() T { return p.form.Draft() }

// DraftErrors returns the create-form errors from the last submit.
func (p *Page[T]) DraftErrors() types.FieldErrors { return p.form.Errors() }

// SetDraft changes one draft field.
func (p *Page[T]) SetDraft(key, value string) error {
	return p.form.Set(key, value)
}

// Create submits the draft.
func (p *Page[T]) Create() (T, types.FieldErrors, error) {
	created, errs, err := p.form.Submit(p.store, &p.notices)
	switch {
	case err != nil:
		p.observe(OpCreate, OutcomeFailed)
		p.logger.Error("create failed", slog.Any("error", err))
	case !errs.Valid():
		p.observe(OpCreate, OutcomeRejected)
		p.logger.Debug("create rejected", slog.String("errors", errs.String()))
	default:
		p.observe(OpCreate, OutcomeCommitted)
		p.logger.Debug("created", slog.Int("id", created.RecordID()))
	}
	return created, errs, err
}

// ResetDraft clears the draft and its errors.
func (p *Page[T]) ResetDraft() {
	p.form.Reset()
}

// BeginEdit opens the edit session on a copy of record id.
// Returns types.ErrNotFound if id is not in the store and
// types.ErrDeletePending while a delete awaits confirmation.
func (p *Page[T]) BeginEdit(id int) error {
	if pending, ok := p.gate.Pending(); ok {
		return fmt.Errorf("edit %s %d: %s %d: %w", p.Entity(), id, p.Entity(), pending.RecordID(), types.ErrDeletePending)
	}
	rec, err := p.store.Get(id)
	if err != nil {
		return err
	}
	p.edit.Begin(rec)
	p.logger.Debug("edit opened", slog.Int("id", id))
	return nil
}

// SetEdit changes one field of the working copy.
func (p *Page[T]) SetEdit(key, value string) error {
	return p.edit.Set(key, value)
}

// Editing returns the working copy and its errors while a session is open.
func (p *Page[T]) Editing() (T, types.FieldErrors, bool) {
	return p.edit.Current()
}

// CancelEdit closes the edit session without committing.
func (p *Page[T]) CancelEdit() {
	if p.edit.Active() {
		p.observe(OpUpdate, OutcomeCancelled)
	}
	p.edit.Cancel()
}

// SubmitEdit validates and commits the working copy.
func (p *Page[T]) SubmitEdit() (types.FieldErrors, error) {
	w, _, _ := p.edit.Current()
	id := w.RecordID()

	errs, err := p.edit.Submit(p.store, &p.notices)
	switch {
	case errors.Is(err, types.ErrNoEditSession):
		return nil, err
	case err != nil:
		p.observe(OpUpdate, OutcomeFailed)
		p.logger.Error("update failed", slog.Int("id", id), slog.Any("error", err))
	case !errs.Valid():
		p.observe(OpUpdate, OutcomeRejected)
		p.logger.Debug("update rejected", slog.Int("id", id), slog.String("errors", errs.String()))
	default:
		p.observe(OpUpdate, OutcomeCommitted)
		p.logger.Debug("updated", slog.Int("id", id))
	}
	return errs, err
}

// RequestDelete asks for confirmation before deleting record id.
// Returns types.ErrNotFound if id is not in the store and
// types.ErrEditInProgress while an edit session is open.
func (p *Page[T]) RequestDelete(id int) error {
	if w, _, ok := p.edit.Current(); ok {
		return fmt.Errorf("delete %s %d: %s %d: %w", p.Entity(), id, p.Entity(), w.RecordID(), types.ErrEditInProgress)
	}
	rec, err := p.store.Get(id)
	if err != nil {
		return err
	}
	p.gate.Request(rec)
	p.logger.Debug("delete requested", slog.Int("id", id))
	return nil
}

// PendingDelete returns the record awaiting confirmation, if any.
func (p *Page[T]) PendingDelete() (T, bool) {
	return p.gate.Pending()
}

// CancelDelete clears the pending deletion.
func (p *Page[T]) CancelDelete() {
	if _, ok := p.gate.Pending(); ok {
		p.observe(OpDelete, OutcomeCancelled)
	}
	p.gate.Cancel()
}

// ConfirmDelete deletes the pending record.
func (p *Page[T]) ConfirmDelete() error {
	rec, ok := p.gate.Pending()
	if !ok {
		return types.ErrNoPendingDelete
	}

	if err := p.gate.Confirm(p.store, &p.notices); err != nil {
		p.observe(OpDelete, OutcomeFailed)
		p.logger.Error("delete failed", slog.Int("id", rec.RecordID()), slog.Any("error", err))
		return err
	}
	p.observe(OpDelete, OutcomeCommitted)
	p.logger.Debug("deleted", slog.Int("id", rec.RecordID()))
	return nil
}

func (p *Page[T]) observe(op Op, outcome Outcome) {
	p.observer.Observe(p.Entity(), op, outcome)
}
