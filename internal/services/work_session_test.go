package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	weekStart = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	weekEnd   = weekStart.AddDate(0, 0, 7)
)

func newWorkSessionService(t *testing.T) (*WorkSessionService, *MockWorkSessionStore) {
	ctrl := gomock.NewController(t)
	store := NewMockWorkSessionStore(ctrl)
	svc := NewWorkSessionService(store)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func completedSession(driverID uuid.UUID, start, end time.Time) models.DriverWorkSessionDB {
	return models.DriverWorkSessionDB{
		SessionID:       uuid.New(),
		DriverID:        driverID,
		StartTime:       start,
		EndTime:         &end,
		Status:          models.WorkSessionStatusCompleted,
		DurationInHours: end.Sub(start).Hours(),
	}
}

func TestWorkSessionService_StartSession(t *testing.T) {
	svc, store := newWorkSessionService(t)
	driverID, tripID := uuid.New(), uuid.New()

	store.EXPECT().GetActiveByDriverID(gomock.Any(), driverID).Return(nil, sql.ErrNoRows)
	store.EXPECT().ListOverlapping(gomock.Any(), driverID, weekStart, weekEnd).Return(nil, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.DriverWorkSessionDB) error {
			assert.Equal(t, driverID, s.DriverID)
			assert.Equal(t, &tripID, s.TripID)
			assert.Equal(t, models.WorkSessionStatusInProgress, s.Status)
			assert.Equal(t, fixedNow, s.StartTime)
			assert.Nil(t, s.EndTime)
			return nil
		})

	session, err := svc.StartSession(context.Background(), driverID, &tripID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.SessionID)
}

func TestWorkSessionService_StartSession_AlreadyActive(t *testing.T) {
	svc, store := newWorkSessionService(t)
	driverID := uuid.New()

	store.EXPECT().GetActiveByDriverID(gomock.Any(), driverID).
		Return(&models.DriverWorkSessionDB{SessionID: uuid.New(), DriverID: driverID, Status: models.WorkSessionStatusInProgress}, nil)

	_, err := svc.StartSession(context.Background(), driverID, nil)
	assert.ErrorIs(t, err, ErrSessionAlreadyActive)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestWorkSessionService_StartSession_LostInsertRace(t *testing.T) {
	svc, store := newWorkSessionService(t)
	driverID := uuid.New()

	store.EXPECT().GetActiveByDriverID(gomock.Any(), driverID).Return(nil, sql.ErrNoRows)
	store.EXPECT().ListOverlapping(gomock.Any(), driverID, weekStart, weekEnd).Return(nil, nil)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrActiveSessionExists)

	_, err := svc.StartSession(context.Background(), driverID, nil)
	assert.ErrorIs(t, err, ErrSessionAlreadyActive)
}

func TestWorkSessionService_StartSession_DutyGate(t *testing.T) {
	driverID := uuid.New()
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sessions []models.DriverWorkSessionDB
		admitted bool
		message  string
	}{
		{
			name:     "9.5h today is admitted",
			sessions: []models.DriverWorkSessionDB{completedSession(driverID, today.Add(30*time.Minute), today.Add(10*time.Hour))},
			admitted: true,
		},
		{
			name:     "10h today is refused",
			sessions: []models.DriverWorkSessionDB{completedSession(driverID, today, today.Add(10*time.Hour))},
			message:  "daily limit",
		},
		{
			name: "48h this week is refused",
			sessions: []models.DriverWorkSessionDB{
				completedSession(driverID, weekStart, weekStart.Add(24*time.Hour)),
				completedSession(driverID, weekStart.Add(24*time.Hour), today),
			},
			message: "weekly limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newWorkSessionService(t)
			store.EXPECT().GetActiveByDriverID(gomock.Any(), driverID).Return(nil, sql.ErrNoRows)
			store.EXPECT().ListOverlapping(gomock.Any(), driverID, weekStart, weekEnd).Return(tt.sessions, nil)
			if tt.admitted {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			_, err := svc.StartSession(context.Background(), driverID, nil)
			if tt.admitted {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrComplianceViolation)
			var ce *ComplianceError
			require.ErrorAs(t, err, &ce)
			assert.False(t, ce.Result.CanDrive)
			assert.Contains(t, ce.Result.Message, tt.message)
		})
	}
}

func TestWorkSessionService_StartSession_StorageError(t *testing.T) {
	svc, store := newWorkSessionService(t)
	driverID := uuid.New()

	store.EXPECT().GetActiveByDriverID(gomock.Any(), driverID).Return(nil, errors.New("connection reset"))

	_, err := svc.StartSession(context.Background(), driverID, nil)
	assert.ErrorIs(t, err, ErrSystem)
}

func TestWorkSessionService_EndSession(t *testing.T) {
	svc, store := newWorkSessionService(t)
	driverID, sessionID := uuid.New(), uuid.New()
	start := fixedNow.Add(-150 * time.Minute)

	store.EXPECT().GetByID(gomock.Any(), sessionID).Return(&models.DriverWorkSessionDB{
		SessionID: sessionID,
		DriverID:  driverID,
		StartTime: start,
		Status:    models.WorkSessionStatusInProgress,
	}, nil)
	store.EXPECT().Complete(gomock.Any(), sessionID, fixedNow, 2.5).Return(nil)

	session, err := svc.EndSession(context.Background(), sessionID, driverID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkSessionStatusCompleted, session.Status)
	assert.Equal(t, 2.5, session.DurationInHours)
	require.NotNil(t, session.EndTime)
	assert.Equal(t, fixedNow, *session.EndTime)
}

func TestWorkSessionService_EndSession_Errors(t *testing.T) {
	driverID, sessionID := uuid.New(), uuid.New()
	open := &models.DriverWorkSessionDB{SessionID: sessionID, DriverID: driverID, StartTime: fixedNow.Add(-time.Hour), Status: models.WorkSessionStatusInProgress}

	t.Run("missing", func(t *testing.T) {
		svc, store := newWorkSessionService(t)
		store.EXPECT().GetByID(gomock.Any(), sessionID).Return(nil, sql.ErrNoRows)

		_, err := svc.EndSession(context.Background(), sessionID, driverID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("another driver", func(t *testing.T) {
		svc, store := newWorkSessionService(t)
		store.EXPECT().GetByID(gomock.Any(), sessionID).Return(open, nil)

		_, err := svc.EndSession(context.Background(), sessionID, uuid.New())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("already completed", func(t *testing.T) {
		svc, store := newWorkSessionService(t)
		closed := completedSession(driverID, fixedNow.Add(-2*time.Hour), fixedNow.Add(-time.Hour))
		closed.SessionID = sessionID
		store.EXPECT().GetByID(gomock.Any(), sessionID).Return(&closed, nil)

		_, err := svc.EndSession(context.Background(), sessionID, driverID)
		assert.ErrorIs(t, err, ErrSessionAlreadyComplete)
		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("closed concurrently", func(t *testing.T) {
		svc, store := newWorkSessionService(t)
		s := *open
		store.EXPECT().GetByID(gomock.Any(), sessionID).Return(&s, nil)
		store.EXPECT().Complete(gomock.Any(), sessionID, fixedNow, 1.0).Return(repositories.ErrSessionNotInProgress)

		_, err := svc.EndSession(context.Background(), sessionID, driverID)
		assert.ErrorIs(t, err, ErrSessionAlreadyComplete)
	})
}

func TestWorkSessionService_CheckEligibility(t *testing.T) {
	svc, store := newWorkSessionService(t)
	driverID := uuid.New()
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	store.EXPECT().ListOverlapping(gomock.Any(), driverID, weekStart, weekEnd).Return([]models.DriverWorkSessionDB{
		completedSession(driverID, weekStart.Add(8*time.Hour), weekStart.Add(16*time.Hour)),
		completedSession(driverID, today.Add(6*time.Hour), today.Add(9*time.Hour)),
	}, nil)

	result, err := svc.CheckEligibility(context.Background(), driverID)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, result.HoursToday, 1e-9)
	assert.InDelta(t, 11.0, result.HoursThisWeek, 1e-9)
	assert.True(t, result.CanDrive)
}
