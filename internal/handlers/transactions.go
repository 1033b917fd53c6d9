package handlers

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// HistoryReader defines the interface that the service must implement.
type HistoryReader interface {
	History(ctx context.Context, userID uuid.UUID) (*services.LedgerStatement, error)
}

// TransactionsResponse represents the caller's ledger
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Wallet as stored
	Wallet *models.WalletDB `json:"wallet"`

	// Ledger records, oldest first
	Transactions []models.TransactionDB `json:"transactions"`

	// Balance rebuilt by folding the ledger
	ReplayedBalance decimal.Decimal `json:"replayed_balance"`

	// Whether the ledger chain and the stored balance agree
	Consistent bool `json:"consistent"`
}

// NewTransactionsHandler returns an HTTP handler listing the caller's ledger.
// @Summary Wallet history
// @Description List the caller's transactions in creation order with the replayed balance.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallet/transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		st, err := svc.History(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to load wallet history", "userID", userID, "error", err)
			writeError(w, err)
			return
		}

		txns := st.Transactions
		if txns == nil {
			txns = []models.TransactionDB{}
		}

		writeJSON(w, http.StatusOK, TransactionsResponse{
			Wallet:          st.Wallet,
			Transactions:    txns,
			ReplayedBalance: st.ReplayedBalance,
			Consistent:      st.Consistent,
		})
	}
}
