package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/criteria/internal/criteria"
)

// Store executes criteria queries against a SQLite database.
// Safe for concurrent use; SQLite itself serializes writers.
type Store struct {
	db       *sqlx.DB
	logger   *slog.Logger
	schema   []string
	maxDepth int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for statement traces.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxDepth sets the filter nesting limit used when converting criteria
// in Find and Count. Zero or less disables the check.
func WithMaxDepth(n int) Option {
	return func(s *Store) {
		s.maxDepth = n
	}
}

// WithSchema adds DDL statements executed once after opening.
func WithSchema(ddl ...string) Option {
	return func(s *Store) {
		s.schema = append(s.schema, ddl...)
	}
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and schema statements.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: criteria.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	// This also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	for _, stmt := range s.schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	s.db = db
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Exec executes a statement that returns no rows.
func (s *Store) Exec(ctx context.Context, stmt string, args ...any) error {
	s.logger.Debug("exec", "sql", stmt, "params", len(args))
	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
