package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/officedesk/internal/metrics"
	"github.com/mesh-intelligence/officedesk/internal/sqlite"
	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// Session holds the state of one shell run: both pages, the operation
// counters, and the backend they share. Nothing survives Close.
type Session struct {
	ID        string
	Backend   string
	Offices   *crud.Page[types.Office]
	Employees *crud.Page[types.Employee]
	Metrics   *metrics.Recorder

	logger *slog.Logger
	db     *sqlite.Backend
}

// NewSession builds the pages for cfg.Backend and seeds them when cfg.Seed
// is set.
func NewSession(cfg types.Config, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id := generateSessionID()
	s := &Session{
		ID:      id,
		Backend: cfg.Backend,
		Metrics: metrics.NewRecorder(),
		logger:  logger.With(slog.String("session", id)),
	}

	offices, employees, err := s.openBackends(cfg.Backend)
	if err != nil {
		return nil, err
	}

	opts := []crud.Option{crud.WithLogger(s.logger), crud.WithObserver(s.Metrics)}
	s.Offices = crud.NewPage(offices, opts...)
	s.Employees = crud.NewPage(employees, opts...)

	if cfg.Seed {
		if err := s.Offices.Seed(types.SeedOffices()...); err != nil {
			s.Close()
			return nil, err
		}
		if err := s.Employees.Seed(types.SeedEmployees()...); err != nil {
			s.Close()
			return nil, err
		}
	}

	s.logger.Info("session started", slog.String("backend", cfg.Backend), slog.Bool("seed", cfg.Seed))
	return s, nil
}

func (s *Session) openBackends(name string) (crud.Backend[types.Office], crud.Backend[types.Employee], error) {
	switch name {
	case types.BackendMemory:
		return crud.NewStore[types.Office](), crud.NewStore[types.Employee](), nil
	case types.BackendSQLite:
		db := sqlite.NewBackend()
		if err := db.Attach(); err != nil {
			return nil, nil, fmt.Errorf("attach sqlite: %w", err)
		}
		offices, err := sqlite.NewTable[types.Office](db, types.TableOffices)
		if err != nil {
			db.Detach()
			return nil, nil, err
		}
		employees, err := sqlite.NewTable[types.Employee](db, types.TableEmployees)
		if err != nil {
			db.Detach()
			return nil, nil, err
		}
		s.db = db
		return offices, employees, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, name)
	}
}

// Close releases the backend. All records are discarded.
func (s *Session) Close() error {
	s.logger.Info("session closed")
	if s.db == nil {
		return nil
	}
	return s.db.Detach()
}

// generateSessionID returns a UUID v7 string, falling back to v4.
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
