package handlers

//go:generate mockgen -source=trip_status.go -destination=mock_trip_status.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
)

// TripStatusChanger defines the interface that the service must implement.
type TripStatusChanger interface {
	ChangeTripStatus(ctx context.Context, tripID uuid.UUID, next models.TripStatus) (*models.TripDB, error)
}

// TripStatusRequest represents the JSON body of a status change
// swagger:model TripStatusRequest
type TripStatusRequest struct {
	// Target status
	// required: true
	// default: LOOKING_FOR_DRIVER
	Status models.TripStatus `json:"status"`
}

// NewTripStatusHandler returns an HTTP handler moving a trip along its lifecycle.
// @Summary Change trip status
// @Description Move a trip to the next status. Only transitions in the lifecycle table are accepted.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripID path string true "Trip ID"
// @Param request body handlers.TripStatusRequest true "Status Request"
// @Success 200 {object} models.TripDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid trip id or status"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Failure 409 {object} handlers.ErrorResponse "Invalid transition"
// @Failure 503 {object} handlers.ErrorResponse "Concurrent status change"
// @Router /trips/{tripID}/status [patch]
// @Security BearerAuth
func NewTripStatusHandler(svc TripStatusChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := callerID(w, r); !ok {
			return
		}

		tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
		if err != nil {
			logger.Log.Warnw("invalid trip id", "tripID", chi.URLParam(r, "tripID"))
			writeBadRequest(w, "Invalid trip id")
			return
		}

		var req TripStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}

		trip, err := svc.ChangeTripStatus(r.Context(), tripID, req.Status)
		if err != nil {
			logger.Log.Errorw("failed to change trip status", "tripID", tripID, "status", req.Status, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, trip)
	}
}
