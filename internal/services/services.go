package services

//go:generate mockgen -source=services.go -destination=mock_services.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Transactor runs fn inside one storage transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WalletStore reads and mutates wallets.
type WalletStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	UpdateBalance(ctx context.Context, walletID uuid.UUID, balance decimal.Decimal, updatedAt time.Time) error
}

// TransactionStore appends and lists ledger records.
type TransactionStore interface {
	Insert(ctx context.Context, txn *models.TransactionDB) error
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]models.TransactionDB, error)
}

// TripStore reads and moves trips.
type TripStore interface {
	GetByIDForUpdate(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error)
	UpdateStatus(ctx context.Context, tripID uuid.UUID, from, to models.TripStatus, at time.Time) error
}

// AssignmentStore updates driver assignments.
type AssignmentStore interface {
	MarkPaidByTripID(ctx context.Context, tripID uuid.UUID, at time.Time) (int64, error)
}

// PostStore reopens marketplace listings.
type PostStore interface {
	Reopen(ctx context.Context, postID uuid.UUID, at time.Time) (models.PostKind, error)
}

// WorkSessionStore stores driver work sessions.
type WorkSessionStore interface {
	Create(ctx context.Context, s *models.DriverWorkSessionDB) error
	GetByID(ctx context.Context, sessionID uuid.UUID) (*models.DriverWorkSessionDB, error)
	GetActiveByDriverID(ctx context.Context, driverID uuid.UUID) (*models.DriverWorkSessionDB, error)
	ListOverlapping(ctx context.Context, driverID uuid.UUID, from, to time.Time) ([]models.DriverWorkSessionDB, error)
	Complete(ctx context.Context, sessionID uuid.UUID, endTime time.Time, durationInHours float64) error
}

// ExternalCodeClaimer holds short-lived claims on payment provider references.
type ExternalCodeClaimer interface {
	Claim(ctx context.Context, code string) (bool, error)
	Release(ctx context.Context, code string) error
}

// ExternalCodeLookup checks committed ledger records for a provider reference.
type ExternalCodeLookup interface {
	ExistsByExternalCode(ctx context.Context, code string) (bool, error)
}

// BalanceChanger applies one balance change to the ledger.
type BalanceChanger interface {
	ExecuteBalanceChange(ctx context.Context, change BalanceChange) (*models.TransactionDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}
