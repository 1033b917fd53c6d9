package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/tripstate"
)

// TripService applies operational status changes to trips.
type TripService struct {
	tx    Transactor
	trips TripStore
	now   func() time.Time
}

// NewTripService creates a new TripService.
func NewTripService(tx Transactor, trips TripStore) *TripService {
	return &TripService{tx: tx, trips: trips, now: time.Now}
}

// ChangeTripStatus moves the trip to next if the transition table allows it from the current status.
func (s *TripService) ChangeTripStatus(ctx context.Context, tripID uuid.UUID, next models.TripStatus) (*models.TripDB, error) {
	if !tripstate.IsKnown(next) {
		err := fmt.Errorf("%w: %q", ErrInvalidStatus, next)
		metrics.TripTransitions.WithLabelValues(Code(err)).Inc()
		return nil, err
	}

	var updated *models.TripDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		trip, err := s.trips.GetByIDForUpdate(ctx, tripID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTripNotFound
		}
		if err != nil {
			return err
		}

		if !tripstate.IsValidTransition(trip.Status, next) {
			return &TransitionError{From: trip.Status, To: next}
		}

		now := s.now().UTC()
		if err := s.trips.UpdateStatus(ctx, tripID, trip.Status, next, now); err != nil {
			return err
		}

		trip.Status, trip.UpdatedAt = next, now
		updated = trip
		return nil
	})
	if err != nil {
		err = classify(err)
		metrics.TripTransitions.WithLabelValues(Code(err)).Inc()
		if errors.Is(err, ErrSystem) {
			logger.Log.Errorw("trip status change failed", "trip_id", tripID, "next", next, "error", err)
		} else {
			logger.Log.Warnw("trip status change rejected", "trip_id", tripID, "next", next, "error", err)
		}
		return nil, err
	}

	logger.Log.Infow("trip status changed", "trip_id", tripID, "status", next)
	metrics.TripTransitions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return updated, nil
}
