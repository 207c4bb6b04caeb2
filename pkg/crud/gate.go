package crud

import (
	"fmt"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// ConfirmationGate holds at most one record pending deletion. Nothing is
// removed from a store until Confirm.
type ConfirmationGate[T types.Record[T]] struct {
	pending T
	set     bool
}

// Request marks rec as pending deletion, replacing any earlier request.
func (g *ConfirmationGate[T]) Request(rec T) {
	g.pending = rec
	g.set = true
}

// Cancel clears the gate without touching any store.
func (g *ConfirmationGate[T]) Cancel() {
	var zero T
	g.pending = zero
	g.set = false
}

// Pending returns the record awaiting confirmation, if any.
func (g *ConfirmationGate[T]) Pending() (T, bool) {
	return g.pending, g.set
}

// Confirm deletes the pending record from store, posts a success notice, and
// clears the gate. Returns types.ErrNoPendingDelete and changes nothing when
// the gate is empty.
func (g *ConfirmationGate[T]) Confirm(store Backend[T], notices *NotificationChannel) error {
	if !g.set {
		return types.ErrNoPendingDelete
	}

	rec := g.pending
	if err := store.Delete(rec.RecordID()); err != nil {
		notices.Error(fmt.Sprintf("%s delete failed: %v", rec.Entity(), err))
		return fmt.Errorf("delete %s %d: %w", rec.Entity(), rec.RecordID(), err)
	}

	g.Cancel()
	notices.Success(rec.Entity() + " deleted.")
	return nil
}
