package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
)

const workSessionColumns = `session_id, driver_id, trip_id, start_time, end_time, status, duration_in_hours`

// WorkSessionRepository stores driver work sessions.
type WorkSessionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWorkSessionRepository(db *sqlx.DB, txGetter TxGetter) *WorkSessionRepository {
	return &WorkSessionRepository{db: db, txGetter: txGetter}
}

// Create inserts a session. A second IN_PROGRESS row for the same driver is
// rejected by the partial unique index and reported as ErrActiveSessionExists.
func (r *WorkSessionRepository) Create(ctx context.Context, s *models.DriverWorkSessionDB) error {
	query := `
		INSERT INTO driver_work_sessions (` + workSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{s.SessionID, s.DriverID, s.TripID, s.StartTime, s.EndTime, s.Status, s.DurationInHours}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", s.SessionID,
		"error", err,
	)

	if isUniqueViolation(err, activeSessionIndex) {
		return ErrActiveSessionExists
	}
	return err
}

// GetByID returns a session by id.
func (r *WorkSessionRepository) GetByID(ctx context.Context, sessionID uuid.UUID) (*models.DriverWorkSessionDB, error) {
	query := `SELECT ` + workSessionColumns + ` FROM driver_work_sessions WHERE session_id = $1`
	return r.get(ctx, query, sessionID)
}

// GetActiveByDriverID returns the driver's IN_PROGRESS session.
func (r *WorkSessionRepository) GetActiveByDriverID(ctx context.Context, driverID uuid.UUID) (*models.DriverWorkSessionDB, error) {
	query := `SELECT ` + workSessionColumns + ` FROM driver_work_sessions WHERE driver_id = $1 AND status = 'IN_PROGRESS'`
	return r.get(ctx, query, driverID)
}

func (r *WorkSessionRepository) get(ctx context.Context, query string, id uuid.UUID) (*models.DriverWorkSessionDB, error) {
	var s models.DriverWorkSessionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &s, query, id)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{id},
		"result", s.SessionID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListOverlapping returns the driver's sessions intersecting [from, to). Open sessions always qualify once started.
func (r *WorkSessionRepository) ListOverlapping(ctx context.Context, driverID uuid.UUID, from, to time.Time) ([]models.DriverWorkSessionDB, error) {
	query := `
		SELECT ` + workSessionColumns + `
		FROM driver_work_sessions
		WHERE driver_id = $1
		  AND start_time < $3
		  AND (end_time IS NULL OR end_time > $2)
		ORDER BY start_time
	`
	args := []any{driverID, from, to}

	var sessions []models.DriverWorkSessionDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &sessions, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", len(sessions),
		"error", err,
	)

	return sessions, err
}

// Complete closes an IN_PROGRESS session. ErrSessionNotInProgress is returned if it was already closed.
func (r *WorkSessionRepository) Complete(ctx context.Context, sessionID uuid.UUID, endTime time.Time, durationInHours float64) error {
	query := `
		UPDATE driver_work_sessions
		SET end_time = $2, duration_in_hours = $3, status = $4
		WHERE session_id = $1 AND status = $5
	`
	args := []any{sessionID, endTime, durationInHours, models.WorkSessionStatusCompleted, models.WorkSessionStatusInProgress}

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
		return ErrSessionNotInProgress
	}
	return nil
}
