package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
)

const transactionColumns = `transaction_id, wallet_id, trip_id, post_id, amount, balance_before, balance_after,
	type, status, created_at, completed_at, description, external_code`

// TransactionRepository appends and reads ledger records. It never updates or deletes rows.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionRepository(db *sqlx.DB, txGetter TxGetter) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

// Insert appends a ledger record. A second record carrying the same external
// code is rejected with ErrDuplicateExternalCode.
func (r *TransactionRepository) Insert(ctx context.Context, txn *models.TransactionDB) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	args := []any{
		txn.TransactionID, txn.WalletID, txn.TripID, txn.PostID,
		txn.Amount, txn.BalanceBefore, txn.BalanceAfter,
		txn.Type, txn.Status, txn.CreatedAt, txn.CompletedAt, txn.Description, txn.ExternalCode,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", txn.TransactionID,
		"error", err,
	)

	if isUniqueViolation(err, externalCodeIndex) {
		return fmt.Errorf("%w: %w", ErrDuplicateExternalCode, err)
	}
	return err
}

// ListByWalletID returns a wallet's records oldest first, in insertion order on equal timestamps.
func (r *TransactionRepository) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.TransactionDB, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY created_at ASC, ledger_seq ASC
	`

	var txns []models.TransactionDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txns, query, walletID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{walletID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// ExistsByExternalCode reports whether a record with the given provider reference was already committed.
func (r *TransactionRepository) ExistsByExternalCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE external_code = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, code)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{code},
		"result", exists,
		"error", err,
	)

	return exists, err
}
