package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

var (
	// ErrActiveSessionExists is returned when the in-progress uniqueness index rejects a new session.
	ErrActiveSessionExists = errors.New("driver already has an in-progress work session")

	// ErrSessionNotInProgress is returned when closing a session that is already closed.
	ErrSessionNotInProgress = errors.New("work session is not in progress")

	// ErrDuplicateExternalCode is returned when a ledger record for the provider reference already exists.
	ErrDuplicateExternalCode = errors.New("external code already recorded")
)

const (
	codeUniqueViolation = "23505"

	activeSessionIndex = "uq_driver_work_sessions_in_progress"
	externalCodeIndex  = "uq_transactions_external_code"
)

// executor picks the context transaction when there is one, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// oneLine collapses a query to a single line for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraint
}
