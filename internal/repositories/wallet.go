package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const walletColumns = `wallet_id, user_id, balance, frozen_balance, currency, status, last_updated_at`

// WalletRepository reads and mutates wallet rows.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWalletRepository(db *sqlx.DB, txGetter TxGetter) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the user's wallet without locking it.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	return r.get(ctx, query, userID)
}

// GetByUserIDForUpdate returns the user's wallet and holds its row lock until the transaction ends.
func (r *WalletRepository) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`
	return r.get(ctx, query, userID)
}

func (r *WalletRepository) get(ctx context.Context, query string, userID uuid.UUID) (*models.WalletDB, error) {
	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query, userID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{userID},
		"result", wallet.WalletID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// UpdateBalance stores the new balance of a locked wallet.
func (r *WalletRepository) UpdateBalance(ctx context.Context, walletID uuid.UUID, balance decimal.Decimal, updatedAt time.Time) error {
	query := `
		UPDATE wallets
		SET balance = $2, last_updated_at = $3
		WHERE wallet_id = $1
	`
	args := []any{walletID, balance, updatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("wallet %s: %w", walletID, sql.ErrNoRows)
	}
	return nil
}
