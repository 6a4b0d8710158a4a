// Package sqlitedb owns the single SQLite connection of the process.
//
// A Handle is opened once at startup and closed at shutdown. Adapters keep a
// reference to the Handle rather than to *sql.DB so that every call made after
// Close fails with apperrors.ErrStorageUnavailable instead of a driver error.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	apperrors "hypersomnia/internal/platform/errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const DefaultBusyTimeout = 5 * time.Second

// Querier is the subset of *sql.DB and *sql.Tx used by adapters.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Options struct {
	BusyTimeout time.Duration
}

type Handle struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

func New() *Handle {
	return &Handle{}
}

// Open is a convenience for New followed by Handle.Open.
func Open(ctx context.Context, path string, opts Options) (*Handle, error) {
	h := New()
	if err := h.Open(ctx, path, opts); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handle) Open(ctx context.Context, path string, opts Options) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: database path is required", apperrors.ErrStorageUnavailable)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.db != nil {
		return fmt.Errorf("database already open at %s", h.path)
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return fmt.Errorf("%w: create db dir: %v", apperrors.ErrStorageUnavailable, err)
	}
	timeout := opts.BusyTimeout
	if timeout <= 0 {
		timeout = DefaultBusyTimeout
	}
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", cleanPath, timeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("%w: open sqlite: %v", apperrors.ErrStorageUnavailable, err)
	}
	// one connection for the whole process; the engine is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: ping sqlite: %v", apperrors.ErrStorageUnavailable, err)
	}
	h.db = db
	h.path = cleanPath
	return nil
}

// Close is nil-safe and idempotent.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	if err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}
	return nil
}

func (h *Handle) IsOpen() bool {
	if h == nil {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.db != nil
}

func (h *Handle) Path() string {
	if h == nil {
		return ""
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.path
}

// DB returns the open database or ErrStorageUnavailable.
func (h *Handle) DB() (*sql.DB, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: no database handle", apperrors.ErrStorageUnavailable)
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.db == nil {
		return nil, fmt.Errorf("%w: database is not open", apperrors.ErrStorageUnavailable)
	}
	return h.db, nil
}

// Querier returns the transaction bound to ctx, if any, else the database.
func (h *Handle) Querier(ctx context.Context) (Querier, error) {
	if tx, ok := TxFrom(ctx); ok {
		return tx, nil
	}
	return h.DB()
}

type txKey struct{}

func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func TxFrom(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

// IsUniqueViolation reports whether err comes from a UNIQUE or PRIMARY KEY constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// IsForeignKeyViolation reports whether err comes from a FOREIGN KEY constraint.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

// IsBusy reports whether err is a lock timeout from another writer.
func IsBusy(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}

func BoolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
