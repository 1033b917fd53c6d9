package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workSessionRowColumns = []string{"session_id", "driver_id", "trip_id", "start_time", "end_time", "status", "duration_in_hours"}

func TestWorkSessionRepository_Create(t *testing.T) {
	start := time.Now().UTC()
	session := &models.DriverWorkSessionDB{
		SessionID: uuid.New(),
		DriverID:  uuid.New(),
		StartTime: start,
		Status:    models.WorkSessionStatusInProgress,
	}

	t.Run("inserted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO driver_work_sessions`).
			WithArgs(session.SessionID, session.DriverID, nil, start, nil, models.WorkSessionStatusInProgress, 0.0).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewWorkSessionRepository(db, nil).Create(context.Background(), session))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second in-progress session", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`INSERT INTO driver_work_sessions`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_driver_work_sessions_in_progress"})

		err := NewWorkSessionRepository(db, nil).Create(context.Background(), session)
		assert.ErrorIs(t, err, ErrActiveSessionExists)
	})

	t.Run("other unique violation passes through", func(t *testing.T) {
		db, mock := newMockDB(t)
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "driver_work_sessions_pkey"}
		mock.ExpectExec(`INSERT INTO driver_work_sessions`).WillReturnError(pgErr)

		err := NewWorkSessionRepository(db, nil).Create(context.Background(), session)
		assert.NotErrorIs(t, err, ErrActiveSessionExists)
		assert.ErrorAs(t, err, &pgErr)
	})
}

func TestWorkSessionRepository_GetActiveByDriverID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkSessionRepository(db, nil)

	driverID, sessionID := uuid.New(), uuid.New()
	start := time.Now().UTC().Add(-time.Hour)

	mock.ExpectQuery(`SELECT .+ FROM driver_work_sessions WHERE driver_id = \$1 AND status = 'IN_PROGRESS'`).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(workSessionRowColumns).
			AddRow(sessionID.String(), driverID.String(), nil, start, nil, "IN_PROGRESS", 0.0))

	s, err := repo.GetActiveByDriverID(context.Background(), driverID)
	require.NoError(t, err)
	assert.Equal(t, sessionID, s.SessionID)
	assert.Nil(t, s.EndTime)
	assert.Equal(t, models.WorkSessionStatusInProgress, s.Status)
}

func TestWorkSessionRepository_ListOverlapping(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkSessionRepository(db, nil)

	driverID := uuid.New()
	from := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	end := from.Add(5 * time.Hour)

	mock.ExpectQuery(`FROM driver_work_sessions WHERE driver_id = \$1 AND start_time < \$3 AND \(end_time IS NULL OR end_time > \$2\)`).
		WithArgs(driverID, from, to).
		WillReturnRows(sqlmock.NewRows(workSessionRowColumns).
			AddRow(uuid.NewString(), driverID.String(), nil, from.Add(-2*time.Hour), end, "COMPLETED", 7.0).
			AddRow(uuid.NewString(), driverID.String(), nil, from.Add(30*time.Hour), nil, "IN_PROGRESS", 0.0))

	sessions, err := repo.ListOverlapping(context.Background(), driverID, from, to)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.NotNil(t, sessions[0].EndTime)
	assert.True(t, end.Equal(*sessions[0].EndTime))
	assert.Nil(t, sessions[1].EndTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkSessionRepository_Complete(t *testing.T) {
	sessionID := uuid.New()
	end := time.Now().UTC()

	t.Run("closed", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE driver_work_sessions SET end_time = \$2, duration_in_hours = \$3, status = \$4 WHERE session_id = \$1 AND status = \$5`).
			WithArgs(sessionID, end, 2.5, models.WorkSessionStatusCompleted, models.WorkSessionStatusInProgress).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewWorkSessionRepository(db, nil).Complete(context.Background(), sessionID, end, 2.5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already closed", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE driver_work_sessions`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewWorkSessionRepository(db, nil).Complete(context.Background(), sessionID, end, 2.5)
		assert.ErrorIs(t, err, ErrSessionNotInProgress)
	})
}
