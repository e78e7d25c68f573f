package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const requestEventsTable = "request_events"

// Store holds the diagnostic database and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withConnPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// builder returns an SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// Per-connection pragmas. Migration refuses to run unless foreign keys are
// on, and the pool may open connections after Open returns.
const connPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// withConnPragmas appends connPragmas to dsn's query string.
func withConnPragmas(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + connPragmas
	}
	return dsn + "?" + connPragmas
}

var (
	// requestEventsColumns holds the columns for the "request_events" table.
	requestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at_ms", Type: field.TypeInt64},
		{Name: "run_id", Type: field.TypeString, Default: ""},
		{Name: "pane", Type: field.TypeString, Default: ""},
		{Name: "seq", Type: field.TypeInt, Default: 0},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "username", Type: field.TypeString, Default: ""},
		{Name: "status_code", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// requestEventsSchema holds the schema information for the "request_events" table.
	requestEventsSchema = &schema.Table{
		Name:       requestEventsTable,
		Columns:    requestEventsColumns,
		PrimaryKey: []*schema.Column{requestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestevent_endpoint",
				Unique:  false,
				Columns: []*schema.Column{requestEventsColumns[5]},
			},
			{
				Name:    "requestevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{requestEventsColumns[2]},
			},
		},
	}
)

// migrate creates or updates the request_events table through ent's
// schema migrator.
func migrate(ctx context.Context, db *sql.DB) error {
	drv := entsql.OpenDB(dialect.SQLite, db)
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, requestEventsSchema); err != nil {
		return fmt.Errorf("create %s: %w", requestEventsTable, err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
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

// DataDir resolves the directory holding the database and log file:
// $XDG_DATA_HOME/lingo, falling back to ~/.local/share/lingo.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lingo"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
