package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType identifies why a wallet balance changed.
type TransactionType string

// Supported transaction types
const (
	TransactionTypeTopup                TransactionType = "TOPUP"
	TransactionTypeWithdrawal           TransactionType = "WITHDRAWAL"
	TransactionTypePayment              TransactionType = "PAYMENT"
	TransactionTypeDriverServicePayment TransactionType = "DRIVER_SERVICE_PAYMENT"
	TransactionTypeOwnerPayout          TransactionType = "OWNER_PAYOUT"
	TransactionTypeDriverPayout         TransactionType = "DRIVER_PAYOUT"
)

// TransactionStatus is the settlement state of a ledger record.
type TransactionStatus string

// Supported transaction statuses
const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// TransactionDB is an append-only ledger record. BalanceAfter always equals BalanceBefore + Amount.
type TransactionDB struct {
	TransactionID uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	WalletID      uuid.UUID         `json:"wallet_id" db:"wallet_id"`
	TripID        *uuid.UUID        `json:"trip_id,omitempty" db:"trip_id"`
	PostID        *uuid.UUID        `json:"post_id,omitempty" db:"post_id"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"` // Signed: negative for debits
	BalanceBefore decimal.Decimal   `json:"balance_before" db:"balance_before"`
	BalanceAfter  decimal.Decimal   `json:"balance_after" db:"balance_after"`
	Type          TransactionType   `json:"type" db:"type"`
	Status        TransactionStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
	Description   string            `json:"description" db:"description"`
	ExternalCode  *string           `json:"external_code,omitempty" db:"external_code"`
}

// TransactionEvent is the message published to Kafka after a ledger record is committed.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"` // TransactionID is the ledger record identifier.
	UserID        string `json:"user_id"`        // UserID is the wallet owner.
	WalletID      string `json:"wallet_id"`
	TripID        string `json:"trip_id,omitempty"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`        // Amount is the signed decimal amount.
	BalanceAfter  string `json:"balance_after"` // BalanceAfter is the wallet balance once the record applied.
	Timestamp     int64  `json:"timestamp"`     // Timestamp is the Unix timestamp (in seconds) of CreatedAt.
}
