// Package transactor runs units of work inside one database transaction and
// carries the open transaction through the context so repositories join it.
package transactor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
)

// SQLSTATE codes that mean "nothing was applied, try again".
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// ErrConflict marks a write that lost a race and should be retried as a whole.
// Repositories wrap it when a guarded UPDATE matched no row.
var ErrConflict = errors.New("concurrent update conflict")

// Transactor begins, commits and retries transactions.
type Transactor struct {
	db         *sqlx.DB
	maxRetries int
	opts       *sql.TxOptions
}

// Opt configures a Transactor.
type Opt func(*Transactor)

// WithMaxRetries sets how many extra attempts a retryable failure gets.
func WithMaxRetries(n int) Opt {
	return func(t *Transactor) {
		if n >= 0 {
			t.maxRetries = n
		}
	}
}

// WithIsolation sets the isolation level of every transaction.
func WithIsolation(level sql.IsolationLevel) Opt {
	return func(t *Transactor) {
		t.opts = &sql.TxOptions{Isolation: level}
	}
}

// New creates a Transactor. Read committed with row locks is the default.
func New(db *sqlx.DB, opts ...Opt) *Transactor {
	t := &Transactor{
		db:         db,
		maxRetries: 3,
		opts:       &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithinTx runs fn in a transaction. fn's error or a panic rolls everything back.
// Retryable failures rerun fn from scratch up to maxRetries times; if the
// context is cancelled the transaction is rolled back before commit.
// A transaction already present in ctx is reused and left for the outer call to finish.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	var err error
	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		err = t.run(ctx, fn)
		if err == nil || !IsRetryable(err) || ctx.Err() != nil {
			return err
		}
		logger.Log.Warnw("retrying transaction", "attempt", attempt+1, "error", err)
	}
	return err
}

func (t *Transactor) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err = fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err = ctx.Err(); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// IsRetryable reports whether err means the whole unit of work can safely run again.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return true
		}
	}
	return false
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
