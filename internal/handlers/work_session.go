package handlers

//go:generate mockgen -source=work_session.go -destination=mock_work_session.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/dutyclock"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
)

// WorkSessionStarter opens a duty interval for a driver.
type WorkSessionStarter interface {
	StartSession(ctx context.Context, driverID uuid.UUID, tripID *uuid.UUID) (*models.DriverWorkSessionDB, error)
}

// WorkSessionEnder closes a driver's duty interval.
type WorkSessionEnder interface {
	EndSession(ctx context.Context, sessionID, driverID uuid.UUID) (*models.DriverWorkSessionDB, error)
}

// EligibilityChecker reports a driver's duty-hour totals.
type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, driverID uuid.UUID) (dutyclock.Result, error)
}

// StartSessionRequest represents the JSON body of a session start
// swagger:model StartSessionRequest
type StartSessionRequest struct {
	// Trip the driver is working on
	TripID *uuid.UUID `json:"trip_id,omitempty"`
}

// NewStartSessionHandler returns an HTTP handler starting the caller's work session.
// @Summary Start work session
// @Description Open a work session for the calling driver. Refused when another session is open or the daily or weekly cap is reached.
// @Tags work-sessions
// @Accept json
// @Produce json
// @Param request body handlers.StartSessionRequest false "Start Request"
// @Success 201 {object} models.DriverWorkSessionDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Session already active"
// @Failure 422 {object} handlers.ErrorResponse "Duty-hour limit reached"
// @Router /work-sessions [post]
// @Security BearerAuth
func NewStartSessionHandler(svc WorkSessionStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		driverID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req StartSessionRequest
		if err := decodeOptional(r, &req); err != nil {
			logger.Log.Errorw("failed to decode start session request", "error", err)
			writeBadRequest(w, "Invalid request body")
			return
		}

		session, err := svc.StartSession(r.Context(), driverID, req.TripID)
		if err != nil {
			logger.Log.Errorw("failed to start work session", "driverID", driverID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, session)
	}
}

// NewEndSessionHandler returns an HTTP handler closing one of the caller's sessions.
// @Summary End work session
// @Description Close an in-progress work session owned by the calling driver.
// @Tags work-sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.DriverWorkSessionDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid session id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Session belongs to another driver"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Failure 409 {object} handlers.ErrorResponse "Session already completed"
// @Router /work-sessions/{sessionID}/end [post]
// @Security BearerAuth
func NewEndSessionHandler(svc WorkSessionEnder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		driverID, ok := callerID(w, r)
		if !ok {
			return
		}

		sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
		if err != nil {
			logger.Log.Warnw("invalid session id", "sessionID", chi.URLParam(r, "sessionID"))
			writeBadRequest(w, "Invalid session id")
			return
		}

		session, err := svc.EndSession(r.Context(), sessionID, driverID)
		if err != nil {
			logger.Log.Errorw("failed to end work session", "sessionID", sessionID, "driverID", driverID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}

// NewEligibilityHandler returns an HTTP handler reporting the caller's duty hours.
// @Summary Driving eligibility
// @Description Hours worked today and this week and whether a new session may start.
// @Tags work-sessions
// @Produce json
// @Success 200 {object} dutyclock.Result
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /work-sessions/eligibility [get]
// @Security BearerAuth
func NewEligibilityHandler(svc EligibilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		driverID, ok := callerID(w, r)
		if !ok {
			return
		}

		result, err := svc.CheckEligibility(r.Context(), driverID)
		if err != nil {
			logger.Log.Errorw("failed to check eligibility", "driverID", driverID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// decodeOptional decodes a JSON body that may be absent.
func decodeOptional(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
