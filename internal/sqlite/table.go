package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// Table implements crud.Backend for one entity type on the shared database.
type Table[T types.Record[T]] struct {
	name    string   // SQLite table name (e.g. "offices").
	backend *Backend // Parent backend for DB access.
}

var _ crud.Backend[types.Office] = (*Table[types.Office])(nil)

// NewTable creates the named table if needed and returns an accessor for it.
// Returns ErrTableNotFound for names outside types.StandardTableNames and
// ErrDetached if the backend is not attached.
func NewTable[T types.Record[T]](b *Backend, name string) (*Table[T], error) {
	if !knownTable(name) {
		return nil, fmt.Errorf("table %q: %w", name, types.ErrTableNotFound)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createTableSQL(name)); err != nil {
		return nil, fmt.Errorf("creating table %s: %w", name, err)
	}
	return &Table[T]{name: name, backend: b}, nil
}

// Create assigns MAX(record_id)+1 inside a transaction and inserts the
// trimmed record.
func (t *Table[T]) Create(rec T) (T, error) {
	var zero T

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	db, err := t.backend.conn()
	if err != nil {
		return zero, err
	}

	tx, err := db.Begin()
	if err != nil {
		return zero, fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRow("SELECT COALESCE(MAX(record_id), 0) + 1 FROM " + t.name).Scan(&next); err != nil {
		return zero, fmt.Errorf("next %s id: %w", t.name, err)
	}

	rec = rec.Trimmed().WithID(next)
	body, err := encodeRecord(rec)
	if err != nil {
		return zero, err
	}
	if _, err := tx.Exec("INSERT INTO "+t.name+" (record_id, body) VALUES (?, ?)", next, body); err != nil {
		return zero, fmt.Errorf("inserting into %s: %w", t.name, err)
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit create: %w", err)
	}
	return rec, nil
}

// Get retrieves a record by id.
// Returns ErrNotFound if no row has that id.
func (t *Table[T]) Get(id int) (T, error) {
	var zero T

	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	db, err := t.backend.conn()
	if err != nil {
		return zero, err
	}

	var body string
	err = db.QueryRow("SELECT body FROM "+t.name+" WHERE record_id = ?", id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("%s %d: %w", t.name, id, types.ErrNotFound)
	}
	if err != nil {
		return zero, fmt.Errorf("reading %s %d: %w", t.name, id, err)
	}
	return decodeRecord[T](body)
}

// Update rewrites the body of row id, leaving seq (and so the position)
// untouched. No-op if the row does not exist.
func (t *Table[T]) Update(id int, rec T) error {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	db, err := t.backend.conn()
	if err != nil {
		return err
	}

	body, err := encodeRecord(rec.WithID(id))
	if err != nil {
		return err
	}
	if _, err := db.Exec("UPDATE "+t.name+" SET body = ? WHERE record_id = ?", body, id); err != nil {
		return fmt.Errorf("updating %s %d: %w", t.name, id, err)
	}
	return nil
}

// Delete removes row id. No-op if the row does not exist.
func (t *Table[T]) Delete(id int) error {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	db, err := t.backend.conn()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM "+t.name+" WHERE record_id = ?", id); err != nil {
		return fmt.Errorf("deleting %s %d: %w", t.name, id, err)
	}
	return nil
}

// List returns every record in insertion order.
func (t *Table[T]) List() ([]T, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	db, err := t.backend.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT body FROM " + t.name + " ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", t.name, err)
		}
		rec, err := decodeRecord[T](body)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Name returns the SQLite table name.
func (t *Table[T]) Name() string { return t.name }
