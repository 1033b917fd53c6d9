package handlers

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// TopupCreator credits the caller's wallet.
type TopupCreator interface {
	CreateTopup(ctx context.Context, req services.PaymentRequest) (*models.TransactionDB, error)
}

// PaymentCreator debits the caller's wallet for a trip or post.
type PaymentCreator interface {
	CreatePayment(ctx context.Context, req services.PaymentRequest) (*models.TransactionDB, error)
}

// PayoutCreator credits the caller's wallet with a trip payout.
type PayoutCreator interface {
	CreatePayout(ctx context.Context, req services.PaymentRequest) (*models.TransactionDB, error)
}

// LedgerRequest represents the JSON body of topup, payment and payout requests
// swagger:model LedgerRequest
type LedgerRequest struct {
	// Amount, positive
	// required: true
	// default: 100.00
	Amount decimal.Decimal `json:"amount"`

	// Transaction type; the operation default applies when empty
	// default: DRIVER_SERVICE_PAYMENT
	Type models.TransactionType `json:"type,omitempty"`

	// Trip the money belongs to
	TripID *uuid.UUID `json:"trip_id,omitempty"`

	// Post to reopen once the money moved
	PostID *uuid.UUID `json:"post_id,omitempty"`

	// Free-form note stored on the ledger record
	Description string `json:"description"`
}

type ledgerFunc func(ctx context.Context, req services.PaymentRequest) (*models.TransactionDB, error)

func newLedgerHandler(op string, create ledgerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req LedgerRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !req.Amount.IsPositive() {
			logger.Log.Warnw("invalid amount", "operation", op, "amount", req.Amount)
			writeBadRequest(w, "Amount must be positive")
			return
		}

		txn, err := create(r.Context(), services.PaymentRequest{
			UserID:      userID,
			Amount:      req.Amount,
			Type:        req.Type,
			TripID:      req.TripID,
			PostID:      req.PostID,
			Description: req.Description,
		})
		if err != nil {
			logger.Log.Errorw("ledger operation failed", "operation", op, "userID", userID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txn)
	}
}

// NewTopupHandler returns an HTTP handler crediting the caller's wallet.
// @Summary Top up wallet
// @Description Credit the caller's wallet with a TOPUP record.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.LedgerRequest true "Topup Request"
// @Success 200 {object} models.TransactionDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or type"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallet/topup [post]
// @Security BearerAuth
func NewTopupHandler(svc TopupCreator) http.HandlerFunc {
	return newLedgerHandler("topup", svc.CreateTopup)
}

// NewPaymentHandler returns an HTTP handler debiting the caller's wallet.
// @Summary Pay for a trip or post
// @Description Debit the caller's wallet with PAYMENT or DRIVER_SERVICE_PAYMENT. A DRIVER_SERVICE_PAYMENT on a trip awaiting owner payment moves it to READY_FOR_VEHICLE_HANDOVER and marks its assignments paid.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.LedgerRequest true "Payment Request"
// @Success 200 {object} models.TransactionDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, type or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet, trip or post not found"
// @Failure 409 {object} handlers.ErrorResponse "Wallet inactive or invalid transition"
// @Router /wallet/payment [post]
// @Security BearerAuth
func NewPaymentHandler(svc PaymentCreator) http.HandlerFunc {
	return newLedgerHandler("payment", svc.CreatePayment)
}

// NewPayoutHandler returns an HTTP handler crediting a trip payout.
// @Summary Pay out a trip
// @Description Credit the caller's wallet with OWNER_PAYOUT or DRIVER_PAYOUT and advance the trip's final payout states.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.LedgerRequest true "Payout Request"
// @Success 200 {object} models.TransactionDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or type"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet or trip not found"
// @Failure 409 {object} handlers.ErrorResponse "Wallet inactive or invalid transition"
// @Router /wallet/payout [post]
// @Security BearerAuth
func NewPayoutHandler(svc PayoutCreator) http.HandlerFunc {
	return newLedgerHandler("payout", svc.CreatePayout)
}
