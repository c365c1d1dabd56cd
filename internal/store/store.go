package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/kosmi-edu/kosmi/ent"

	// PostgreSQL through database/sql for hosted deployments.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a profile or record does not exist.
var ErrNotFound = errors.New("not found")

// Store holds the ent client and hands out repositories.
type Store struct {
	db      *sql.DB
	client  *ent.Client
	dialect string
	seq     *sequenceCounter
}

// Open connects to the database named by dsn and runs auto-migration.
// A postgres:// or postgresql:// DSN selects PostgreSQL; anything else is
// treated as a SQLite path or URI.
func Open(dsn string) (*Store, error) {
	driverName, dia := "sqlite", dialect.SQLite
	if isPostgres(dsn) {
		driverName, dia = "pgx", dialect.Postgres
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dia == dialect.SQLite {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	drv := entsql.OpenDB(dia, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, dialect: dia, seq: seq}, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect reports "sqlite3" or "postgres".
func (s *Store) Dialect() string {
	return s.dialect
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// EventRepo returns the LLM request audit log.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// ContentRepo returns the lesson content repository.
func (s *Store) ContentRepo() ContentRepo {
	return &contentRepo{client: s.client}
}

// ProfileRepo returns the profile repository.
func (s *Store) ProfileRepo() ProfileRepo {
	return &profileRepo{client: s.client}
}

// LedgerRepo returns the points ledger.
func (s *Store) LedgerRepo() LedgerRepo {
	return &ledgerRepo{client: s.client, seq: s.seq}
}

// ProgressRepo returns the lesson progress repository.
func (s *Store) ProgressRepo() ProgressRepo {
	return &progressRepo{client: s.client, seq: s.seq}
}

// applyPragmas configures SQLite for a small multi-reader server.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath returns the local SQLite location:
// $XDG_DATA_HOME/kosmi/kosmi.db, or ~/.local/share/kosmi/kosmi.db.
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kosmi", "kosmi.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of a SQLite path. DSNs are left
// alone.
func EnsureDir(path string) error {
	if isPostgres(path) || strings.HasPrefix(path, "file:") {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
