package handlers

//go:generate mockgen -source=webhook.go -destination=mock_webhook.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// PaymentEventProcessor defines the interface that the service must implement.
type PaymentEventProcessor interface {
	Process(ctx context.Context, ev services.PaymentEvent) (*services.WebhookResult, error)
}

// PaymentWebhookRequest represents a settled payment reported by the provider
// swagger:model PaymentWebhookRequest
type PaymentWebhookRequest struct {
	// Provider reference, unique per settled payment
	// required: true
	ExternalCode string `json:"external_code"`

	// Wallet owner
	// required: true
	UserID uuid.UUID `json:"user_id"`

	// Amount, positive
	// required: true
	Amount decimal.Decimal `json:"amount"`

	// Transaction type
	// required: true
	// default: TOPUP
	Type models.TransactionType `json:"type"`

	TripID      *uuid.UUID `json:"trip_id,omitempty"`
	PostID      *uuid.UUID `json:"post_id,omitempty"`
	Description string     `json:"description"`
}

// PaymentWebhookResponse represents the outcome of a provider event
// swagger:model PaymentWebhookResponse
type PaymentWebhookResponse struct {
	// Ledger record, absent for duplicates
	Transaction *models.TransactionDB `json:"transaction,omitempty"`

	// True when the external code was already applied or in flight
	Duplicate bool `json:"duplicate"`
}

// NewPaymentWebhookHandler returns an HTTP handler applying provider payment events.
// @Summary Payment provider webhook
// @Description Apply a settled payment once per external code. Redeliveries answer 200 with duplicate=true.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared secret"
// @Param request body handlers.PaymentWebhookRequest true "Payment Event"
// @Success 200 {object} handlers.PaymentWebhookResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid event"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet, trip or post not found"
// @Router /webhooks/payments [post]
func NewPaymentWebhookHandler(svc PaymentEventProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PaymentWebhookRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.UserID == uuid.Nil {
			logger.Log.Warnw("payment event without user", "external_code", req.ExternalCode)
			writeBadRequest(w, "user_id is required")
			return
		}

		res, err := svc.Process(r.Context(), services.PaymentEvent{
			ExternalCode: req.ExternalCode,
			UserID:       req.UserID,
			Amount:       req.Amount,
			Type:         req.Type,
			TripID:       req.TripID,
			PostID:       req.PostID,
			Description:  req.Description,
		})
		if err != nil {
			logger.Log.Errorw("failed to process payment event", "external_code", req.ExternalCode, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PaymentWebhookResponse{
			Transaction: res.Transaction,
			Duplicate:   res.Duplicate,
		})
	}
}
