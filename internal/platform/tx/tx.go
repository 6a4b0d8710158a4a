package tx

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "hypersomnia/internal/platform/errors"
	"hypersomnia/internal/platform/sqlitedb"
)

// Manager wraps transactional boundaries for multi-adapter operations.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// DurationObserver receives the wall time of each committed or rolled back transaction.
type DurationObserver func(time.Duration)

// SQLiteManager runs fn inside one SQLite transaction. Writers are serialized
// by a process-wide lock; a nested Within joins the transaction already bound
// to ctx instead of opening a new one.
type SQLiteManager struct {
	handle  *sqlitedb.Handle
	mu      sync.Mutex
	observe DurationObserver
}

func NewSQLiteManager(handle *sqlitedb.Handle, observe DurationObserver) *SQLiteManager {
	return &SQLiteManager{handle: handle, observe: observe}
}

func (m *SQLiteManager) Within(ctx context.Context, fn func(context.Context) error) (err error) {
	if _, ok := sqlitedb.TxFrom(ctx); ok {
		return fn(ctx)
	}
	db, err := m.handle.DB()
	if err != nil {
		return err
	}

	started := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.observe != nil {
		defer func() { m.observe(time.Since(started)) }()
	}

	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		if sqlitedb.IsBusy(err) {
			return fmt.Errorf("%w: database locked: %v", apperrors.ErrStorageUnavailable, err)
		}
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if err := fn(sqlitedb.WithTx(ctx, sqlTx)); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
