// Package db provides the SQLite backed store for solutions.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	DriverCGO    = "sqlite3" // github.com/mattn/go-sqlite3
	DriverPureGo = "sqlite"  // modernc.org/sqlite

	DefaultDriver = DriverCGO

	busyTimeoutMillis = "5000"
)

type state int

const (
	stateNew state = iota
	stateOpen
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateNew:
		return "uninitialized"
	case stateOpen:
		return "open"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// SQLite is the solutions store backed by a single SQLite file.
//
// The handle moves from uninitialized to open with Initialize and from open
// to closed with Close. Every other operation requires an open handle.
type SQLite struct {
	DB    *sqlx.DB `json:"-"`
	Cfg   *Cfg     `json:"db"`
	state state
}

// New returns an uninitialized store for the given configuration.
func New(c *Cfg) *SQLite {
	return &SQLite{Cfg: c}
}

// Name returns the name of the SQLite database.
func (r *SQLite) Name() string {
	return r.Cfg.Name
}

// IsOpen reports whether the store accepts operations.
func (r *SQLite) IsOpen() bool {
	return r.state == stateOpen
}

// Initialize opens the backing file, creating it if absent, and makes sure
// the schema exists. Calling it on an open store only re-runs the schema.
func (r *SQLite) Initialize(ctx context.Context) error {
	switch r.state {
	case stateClosed:
		return fmt.Errorf("%w: %q is %s", ErrStoreNotOpen, r.Name(), r.state)
	case stateOpen:
		if err := r.Init(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		return nil
	}

	db, err := openDatabase(ctx, r.Cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	r.DB = db
	r.state = stateOpen

	if err := r.Init(ctx); err != nil {
		_ = db.Close()
		r.DB = nil
		r.state = stateNew

		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	slog.Debug("database initialized", "path", r.Cfg.Fullpath(), "driver", r.Cfg.Driver)

	return nil
}

// Close releases the database handle.
func (r *SQLite) Close() error {
	if r.state != stateOpen {
		return fmt.Errorf("%w: %q is %s", ErrStoreNotOpen, r.Name(), r.state)
	}
	r.state = stateClosed

	if err := r.DB.Close(); err != nil {
		slog.Error("closing database", "name", r.Name(), "error", err)
		return fmt.Errorf("closing database: %w", err)
	}
	slog.Debug("database closed", "name", r.Name())

	return nil
}

// ensureOpen returns ErrStoreNotOpen unless the store is open.
func (r *SQLite) ensureOpen() error {
	if r.state != stateOpen {
		return fmt.Errorf("%w: %q is %s", ErrStoreNotOpen, r.Name(), r.state)
	}

	return nil
}

// buildSQLiteDSN constructs a SQLite Data Source Name from a file path and
// optional parameters.
func buildSQLiteDSN(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return fmt.Sprintf("%s%s%s", path, separator, params.Encode())
}

// driverParams returns the connection parameters understood by each driver.
func driverParams(driver string) (url.Values, error) {
	p := url.Values{}

	switch driver {
	case DriverCGO:
		p.Set("_busy_timeout", busyTimeoutMillis)
	case DriverPureGo:
		p.Set("_pragma", "busy_timeout("+busyTimeoutMillis+")")
	default:
		return nil, fmt.Errorf("%w: %q", ErrDriverUnknown, driver)
	}

	return p, nil
}

// openDatabase opens a SQLite database at the configured path and verifies
// the connection, returning the database handle or an error.
func openDatabase(ctx context.Context, c *Cfg) (*sqlx.DB, error) {
	params, err := driverParams(c.Driver)
	if err != nil {
		return nil, err
	}

	dsn := buildSQLiteDSN(c.Fullpath(), params)
	slog.Debug("opening database", "dsn", dsn, "driver", c.Driver)

	db, err := sqlx.Open(c.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// one writer, one process
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: on ping context", err)
	}

	return db, nil
}

// Cfg represents the configuration for a SQLite database.
type Cfg struct {
	Name          string `json:"name"`           // Name of the SQLite database
	Path          string `json:"path"`           // Directory holding the database
	Driver        string `json:"driver"`         // database/sql driver name
	CaseSensitive bool   `json:"case_sensitive"` // Substring matching mode for Find
}

// Fullpath returns the full path to the SQLite database.
func (c *Cfg) Fullpath() string {
	return filepath.Join(c.Path, c.Name)
}

// NewSQLiteCfg returns the default settings for the database at p.
func NewSQLiteCfg(p string) (*Cfg, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrStorageUnavailable)
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %q: %w", p, err)
	}

	return &Cfg{
		Path:   filepath.Dir(abs),
		Name:   filepath.Base(abs),
		Driver: DefaultDriver,
	}, nil
}
