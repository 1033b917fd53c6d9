package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// PaymentEvent is a settled payment reported by the payment provider.
type PaymentEvent struct {
	ExternalCode string
	UserID       uuid.UUID
	Amount       decimal.Decimal // positive magnitude
	Type         models.TransactionType
	TripID       *uuid.UUID
	PostID       *uuid.UUID
	Description  string
}

// WebhookResult tells the provider whether the event was applied now or earlier.
type WebhookResult struct {
	Transaction *models.TransactionDB
	Duplicate   bool
}

// PaymentWebhookService applies provider events to the ledger at most once per external code.
type PaymentWebhookService struct {
	claims ExternalCodeClaimer
	lookup ExternalCodeLookup
	ledger BalanceChanger
}

// NewPaymentWebhookService creates a new PaymentWebhookService.
func NewPaymentWebhookService(claims ExternalCodeClaimer, lookup ExternalCodeLookup, ledger BalanceChanger) *PaymentWebhookService {
	return &PaymentWebhookService{claims: claims, lookup: lookup, ledger: ledger}
}

// Process dedupes ev by its external code and executes the balance change.
// A failed change releases the claim so the provider can redeliver.
func (s *PaymentWebhookService) Process(ctx context.Context, ev PaymentEvent) (*WebhookResult, error) {
	if ev.ExternalCode == "" {
		return nil, s.reject(ev, ErrMissingExternalCode)
	}
	amount, err := SignedAmount(ev.Type, ev.Amount)
	if err != nil {
		return nil, s.reject(ev, err)
	}

	claimed, err := s.claims.Claim(ctx, ev.ExternalCode)
	if err != nil {
		// the durable lookup below still guards committed records
		logger.Log.Warnw("external code claim unavailable", "external_code", ev.ExternalCode, "error", err)
	} else if !claimed {
		logger.Log.Infow("payment event already in flight", "external_code", ev.ExternalCode)
		metrics.WebhookEvents.WithLabelValues("duplicate").Inc()
		return &WebhookResult{Duplicate: true}, nil
	}

	release := func() {
		if !claimed {
			return
		}
		if err := s.claims.Release(ctx, ev.ExternalCode); err != nil {
			logger.Log.Errorw("failed to release external code claim", "external_code", ev.ExternalCode, "error", err)
		}
	}

	exists, err := s.lookup.ExistsByExternalCode(ctx, ev.ExternalCode)
	if err != nil {
		release()
		return nil, s.reject(ev, classify(err))
	}
	if exists {
		logger.Log.Infow("payment event already applied", "external_code", ev.ExternalCode)
		metrics.WebhookEvents.WithLabelValues("duplicate").Inc()
		return &WebhookResult{Duplicate: true}, nil
	}

	code := ev.ExternalCode
	txn, err := s.ledger.ExecuteBalanceChange(ctx, BalanceChange{
		UserID:       ev.UserID,
		Amount:       amount,
		Type:         ev.Type,
		TripID:       ev.TripID,
		PostID:       ev.PostID,
		Description:  ev.Description,
		ExternalCode: &code,
	})
	if errors.Is(err, ErrExternalCodeApplied) {
		// a concurrent delivery committed first; the unique index caught it
		logger.Log.Infow("payment event already applied", "external_code", ev.ExternalCode)
		metrics.WebhookEvents.WithLabelValues("duplicate").Inc()
		return &WebhookResult{Duplicate: true}, nil
	}
	if err != nil {
		release()
		return nil, s.reject(ev, err)
	}

	metrics.WebhookEvents.WithLabelValues("processed").Inc()
	return &WebhookResult{Transaction: txn}, nil
}

func (s *PaymentWebhookService) reject(ev PaymentEvent, err error) error {
	metrics.WebhookEvents.WithLabelValues(Code(err)).Inc()
	if errors.Is(err, ErrSystem) || errors.Is(err, ErrConcurrencyConflict) {
		logger.Log.Errorw("payment event failed", "external_code", ev.ExternalCode, "error", err)
	} else {
		logger.Log.Warnw("payment event rejected", "external_code", ev.ExternalCode, "error", err)
	}
	return err
}
