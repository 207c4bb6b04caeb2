// Package sqlite implements crud.Backend on an in-memory SQLite database.
// The database lives only as long as the process; nothing is written to disk.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// memoryDSN opens a private in-memory database. Every connection to
// ":memory:" is a separate database, so the pool is capped at one.
const memoryDSN = ":memory:"

// Backend owns the SQLite connection shared by the entity tables.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach to open the database.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens a fresh in-memory database.
// Returns ErrAttached if already attached.
func (b *Backend) Attach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAttached
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("ping sqlite: %w", err)
	}

	b.db = db
	b.attached = true
	return nil
}

// Detach closes the database, discarding all records. Idempotent.
// After Detach, table operations return ErrDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return err
	}
	b.db = nil
	b.attached = false
	return nil
}

// conn returns the open database or ErrDetached.
// The caller must hold b.mu.
func (b *Backend) conn() (*sql.DB, error) {
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.db, nil
}
