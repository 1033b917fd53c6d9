package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/dutyclock"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/repositories"
)

// WorkSessionService starts and ends driver work sessions behind the duty-hour gate.
type WorkSessionService struct {
	sessions WorkSessionStore
	now      func() time.Time
}

// NewWorkSessionService creates a new WorkSessionService.
func NewWorkSessionService(sessions WorkSessionStore) *WorkSessionService {
	return &WorkSessionService{sessions: sessions, now: time.Now}
}

// StartSession opens a session for the driver if none is in progress and the
// driver is within the daily and weekly caps at this instant.
func (s *WorkSessionService) StartSession(ctx context.Context, driverID uuid.UUID, tripID *uuid.UUID) (*models.DriverWorkSessionDB, error) {
	session, err := s.startSession(ctx, driverID, tripID)
	s.record("start", driverID, err)
	return session, err
}

func (s *WorkSessionService) startSession(ctx context.Context, driverID uuid.UUID, tripID *uuid.UUID) (*models.DriverWorkSessionDB, error) {
	active, err := s.sessions.GetActiveByDriverID(ctx, driverID)
	switch {
	case err == nil:
		logger.Log.Warnw("driver already on duty", "driver_id", driverID, "session_id", active.SessionID)
		return nil, ErrSessionAlreadyActive
	case !errors.Is(err, sql.ErrNoRows):
		return nil, classify(err)
	}

	now := s.now()
	result, err := s.evaluate(ctx, driverID, now)
	if err != nil {
		return nil, err
	}
	if !result.CanDrive {
		return nil, &ComplianceError{Result: result}
	}

	session := &models.DriverWorkSessionDB{
		SessionID: uuid.New(),
		DriverID:  driverID,
		TripID:    tripID,
		StartTime: now.UTC(),
		Status:    models.WorkSessionStatusInProgress,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		if errors.Is(err, repositories.ErrActiveSessionExists) {
			return nil, ErrSessionAlreadyActive
		}
		return nil, classify(err)
	}

	logger.Log.Infow("work session started",
		"session_id", session.SessionID,
		"driver_id", driverID,
		"hours_today", result.HoursToday,
		"hours_this_week", result.HoursThisWeek,
	)
	return session, nil
}

// EndSession closes the driver's own in-progress session.
func (s *WorkSessionService) EndSession(ctx context.Context, sessionID, driverID uuid.UUID) (*models.DriverWorkSessionDB, error) {
	session, err := s.endSession(ctx, sessionID, driverID)
	s.record("end", driverID, err)
	return session, err
}

func (s *WorkSessionService) endSession(ctx context.Context, sessionID, driverID uuid.UUID) (*models.DriverWorkSessionDB, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, classify(err)
	}
	if session.DriverID != driverID {
		return nil, ErrSessionNotOwned
	}
	if session.Status == models.WorkSessionStatusCompleted {
		return nil, ErrSessionAlreadyComplete
	}

	end := s.now().UTC()
	duration := end.Sub(session.StartTime).Hours()
	if duration < 0 {
		duration = 0
	}
	if err := s.sessions.Complete(ctx, sessionID, end, duration); err != nil {
		if errors.Is(err, repositories.ErrSessionNotInProgress) {
			return nil, ErrSessionAlreadyComplete
		}
		return nil, classify(err)
	}

	session.EndTime = &end
	session.Status = models.WorkSessionStatusCompleted
	session.DurationInHours = duration

	logger.Log.Infow("work session ended", "session_id", sessionID, "driver_id", driverID, "duration_in_hours", duration)
	return session, nil
}

// CheckEligibility reports the driver's hours for today and this week and whether a session may start now.
func (s *WorkSessionService) CheckEligibility(ctx context.Context, driverID uuid.UUID) (dutyclock.Result, error) {
	result, err := s.evaluate(ctx, driverID, s.now())
	if err != nil {
		logger.Log.Errorw("eligibility check failed", "driver_id", driverID, "error", err)
	}
	return result, err
}

func (s *WorkSessionService) evaluate(ctx context.Context, driverID uuid.UUID, now time.Time) (dutyclock.Result, error) {
	weekStart, weekEnd := dutyclock.WeekWindow(now)
	sessions, err := s.sessions.ListOverlapping(ctx, driverID, weekStart, weekEnd)
	if err != nil {
		return dutyclock.Result{}, classify(err)
	}
	return dutyclock.Evaluate(driverID, sessions, now), nil
}

func (s *WorkSessionService) record(op string, driverID uuid.UUID, err error) {
	if err == nil {
		metrics.WorkSessions.WithLabelValues(op, metrics.OutcomeSuccess).Inc()
		return
	}
	code := Code(err)
	metrics.WorkSessions.WithLabelValues(op, code).Inc()
	if errors.Is(err, ErrSystem) || errors.Is(err, ErrConcurrencyConflict) {
		logger.Log.Errorw("work session "+op+" failed", "driver_id", driverID, "code", code, "error", err)
	} else {
		logger.Log.Warnw("work session "+op+" rejected", "driver_id", driverID, "code", code, "error", err)
	}
}
