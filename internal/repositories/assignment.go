package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
)

// AssignmentRepository updates trip driver assignments.
type AssignmentRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAssignmentRepository(db *sqlx.DB, txGetter TxGetter) *AssignmentRepository {
	return &AssignmentRepository{db: db, txGetter: txGetter}
}

// MarkPaidByTripID flips every UNPAID assignment of the trip to PAID and returns how many changed.
func (r *AssignmentRepository) MarkPaidByTripID(ctx context.Context, tripID uuid.UUID, at time.Time) (int64, error) {
	query := `
		UPDATE trip_driver_assignments
		SET payment_status = $2, updated_at = $4
		WHERE trip_id = $1 AND payment_status = $3
	`
	args := []any{tripID, models.PaymentStatusPaid, models.PaymentStatusUnpaid, at}

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

	return rowsAffected, err
}

// ListByTripID returns the trip's assignments.
func (r *AssignmentRepository) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]models.TripDriverAssignmentDB, error) {
	query := `
		SELECT assignment_id, trip_id, driver_id, type, assignment_status, payment_status, updated_at
		FROM trip_driver_assignments
		WHERE trip_id = $1
		ORDER BY type
	`

	var assignments []models.TripDriverAssignmentDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &assignments, query, tripID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{tripID},
		"result", len(assignments),
		"error", err,
	)

	return assignments, err
}
