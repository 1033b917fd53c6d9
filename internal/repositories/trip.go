package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/transactor"
)

// TripRepository reads trips and moves their status.
type TripRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTripRepository(db *sqlx.DB, txGetter TxGetter) *TripRepository {
	return &TripRepository{db: db, txGetter: txGetter}
}

// GetByIDForUpdate returns the trip and holds its row lock until the transaction ends.
func (r *TripRepository) GetByIDForUpdate(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error) {
	query := `
		SELECT trip_id, owner_id, status, created_at, updated_at
		FROM trips
		WHERE trip_id = $1
		FOR UPDATE
	`

	var trip models.TripDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &trip, query, tripID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{tripID},
		"result", trip.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// UpdateStatus moves a trip from one status to another. The write only applies
// while the trip is still in from; otherwise transactor.ErrConflict is returned.
func (r *TripRepository) UpdateStatus(ctx context.Context, tripID uuid.UUID, from, to models.TripStatus, at time.Time) error {
	query := `
		UPDATE trips
		SET status = $3, updated_at = $4
		WHERE trip_id = $1 AND status = $2
	`
	args := []any{tripID, from, to, at}

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
		return fmt.Errorf("trip %s is no longer %s: %w", tripID, from, transactor.ErrConflict)
	}
	return nil
}
