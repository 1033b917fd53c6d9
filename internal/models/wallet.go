package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletStatus is the lifecycle state of a wallet.
type WalletStatus string

// Supported wallet statuses
const (
	WalletStatusActive   WalletStatus = "ACTIVE"
	WalletStatusInactive WalletStatus = "INACTIVE"
	WalletStatusFrozen   WalletStatus = "FROZEN"
)

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID      uuid.UUID       `json:"wallet_id" db:"wallet_id"`             // Unique wallet identifier
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`                 // Identifier of the wallet's owner, one wallet per user
	Balance       decimal.Decimal `json:"balance" db:"balance"`                 // Spendable balance
	FrozenBalance decimal.Decimal `json:"frozen_balance" db:"frozen_balance"`   // Funds held aside, not consulted by debits
	Currency      string          `json:"currency" db:"currency"`               // Currency code
	Status        WalletStatus    `json:"status" db:"status"`                   // ACTIVE, INACTIVE or FROZEN
	LastUpdatedAt time.Time       `json:"last_updated_at" db:"last_updated_at"` // Timestamp of the last balance mutation
}

// IsActive reports whether the wallet accepts balance changes.
func (w *WalletDB) IsActive() bool {
	return w.Status == WalletStatusActive
}
