package handlers

//go:generate mockgen -source=withdraw.go -destination=mock_withdraw.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// WithdrawRequester defines the interface that the service must implement.
type WithdrawRequester interface {
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.TransactionDB, error)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw, positive
	// required: true
	// default: 50.00
	Amount decimal.Decimal `json:"amount"`

	// Free-form note stored on the ledger record
	Description string `json:"description"`
}

// NewWithdrawHandler returns an HTTP handler for withdrawing funds from the caller's wallet.
// @Summary Withdraw funds
// @Description Debit the caller's wallet. Fails without side effects when the balance is too low.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.TransactionDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Failure 409 {object} handlers.ErrorResponse "Wallet inactive"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req WithdrawRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !req.Amount.IsPositive() {
			logger.Log.Warnw("invalid withdraw amount", "amount", req.Amount)
			writeBadRequest(w, "Amount must be positive")
			return
		}

		txn, err := svc.RequestWithdrawal(r.Context(), userID, req.Amount, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to withdraw funds", "userID", userID, "amount", req.Amount, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txn)
	}
}
