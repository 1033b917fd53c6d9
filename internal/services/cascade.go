package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/tripstate"
)

// cascadeRule moves the referenced trip from requires to next once a ledger
// record of its type lands. also runs after the trip update in the same transaction.
type cascadeRule struct {
	requires models.TripStatus
	next     models.TripStatus
	also     func(ctx context.Context, s *LedgerService, tripID uuid.UUID, at time.Time) error
}

var cascades = map[models.TransactionType]cascadeRule{
	models.TransactionTypeDriverServicePayment: {
		requires: models.TripStatusAwaitingOwnerPayment,
		next:     models.TripStatusReadyForVehicleHandover,
		also:     markAssignmentsPaid,
	},
	models.TransactionTypeOwnerPayout: {
		requires: models.TripStatusAwaitingFinalProviderPayout,
		next:     models.TripStatusAwaitingFinalDriverPayout,
	},
	models.TransactionTypeDriverPayout: {
		requires: models.TripStatusAwaitingFinalDriverPayout,
		next:     models.TripStatusCompleted,
	},
}

func markAssignmentsPaid(ctx context.Context, s *LedgerService, tripID uuid.UUID, at time.Time) error {
	n, err := s.assignments.MarkPaidByTripID(ctx, tripID, at)
	if err != nil {
		return err
	}
	logger.Log.Infow("assignments marked paid", "trip_id", tripID, "count", n)
	return nil
}

// applyCascade runs the rule registered for typ against the trip. Types without a
// rule, a missing trip id, or a trip in another status leave the trip untouched.
func (s *LedgerService) applyCascade(ctx context.Context, typ models.TransactionType, tripID *uuid.UUID, at time.Time) error {
	rule, ok := cascades[typ]
	if !ok || tripID == nil {
		return nil
	}

	trip, err := s.trips.GetByIDForUpdate(ctx, *tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTripNotFound
	}
	if err != nil {
		return err
	}

	if trip.Status != rule.requires {
		logger.Log.Infow("trip cascade skipped",
			"trip_id", trip.TripID,
			"type", typ,
			"status", trip.Status,
			"requires", rule.requires,
		)
		metrics.TripCascades.WithLabelValues(string(typ), "skipped").Inc()
		return nil
	}
	if !tripstate.IsValidTransition(trip.Status, rule.next) {
		return &TransitionError{From: trip.Status, To: rule.next}
	}

	if err := s.trips.UpdateStatus(ctx, trip.TripID, trip.Status, rule.next, at); err != nil {
		return err
	}
	if rule.also != nil {
		if err := rule.also(ctx, s, trip.TripID, at); err != nil {
			return err
		}
	}

	logger.Log.Infow("trip cascade applied", "trip_id", trip.TripID, "type", typ, "from", trip.Status, "to", rule.next)
	metrics.TripCascades.WithLabelValues(string(typ), "applied").Inc()
	return nil
}
