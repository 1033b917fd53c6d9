package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	debitTypes = map[models.TransactionType]struct{}{
		models.TransactionTypeWithdrawal:           {},
		models.TransactionTypePayment:              {},
		models.TransactionTypeDriverServicePayment: {},
	}
	creditTypes = map[models.TransactionType]struct{}{
		models.TransactionTypeTopup:        {},
		models.TransactionTypeOwnerPayout:  {},
		models.TransactionTypeDriverPayout: {},
	}
)

// SignedAmount turns a positive magnitude into the signed amount applied to the
// wallet: debits are negative, credits positive.
func SignedAmount(typ models.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	if !isWholeCents(amount) {
		return decimal.Zero, ErrSubCentAmount
	}
	if _, ok := debitTypes[typ]; ok {
		return amount.Neg(), nil
	}
	if _, ok := creditTypes[typ]; ok {
		return amount, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidType, typ)
}

// isWholeCents reports whether amount fits the two fractional digits of a stored balance.
func isWholeCents(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(2))
}

// BalanceChange is one request to mutate a wallet. Amount is signed.
type BalanceChange struct {
	UserID       uuid.UUID
	Amount       decimal.Decimal
	Type         models.TransactionType
	TripID       *uuid.UUID
	PostID       *uuid.UUID
	Description  string
	ExternalCode *string
}

// PaymentRequest is the input of the public ledger operations. Amount is a positive magnitude.
type PaymentRequest struct {
	UserID       uuid.UUID
	Amount       decimal.Decimal
	Type         models.TransactionType
	TripID       *uuid.UUID
	PostID       *uuid.UUID
	Description  string
	ExternalCode *string
}

// LedgerStatement is a wallet with its full ledger and the balance rebuilt from it.
type LedgerStatement struct {
	Wallet          *models.WalletDB
	Transactions    []models.TransactionDB
	ReplayedBalance decimal.Decimal
	Consistent      bool
}

// LedgerService moves money between wallets and records every change.
type LedgerService struct {
	tx          Transactor
	wallets     WalletStore
	txns        TransactionStore
	trips       TripStore
	assignments AssignmentStore
	posts       PostStore
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	tx Transactor,
	wallets WalletStore,
	txns TransactionStore,
	trips TripStore,
	assignments AssignmentStore,
	posts PostStore,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		tx:          tx,
		wallets:     wallets,
		txns:        txns,
		trips:       trips,
		assignments: assignments,
		posts:       posts,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// ExecuteBalanceChange applies a signed amount to the user's wallet, records the
// ledger entry, reopens the referenced post and runs the trip cascade registered
// for the transaction type. Either all of it commits or none of it does.
func (s *LedgerService) ExecuteBalanceChange(ctx context.Context, change BalanceChange) (*models.TransactionDB, error) {
	start := time.Now()
	defer func() {
		metrics.LedgerDuration.WithLabelValues(string(change.Type)).Observe(time.Since(start).Seconds())
	}()

	if change.Amount.IsZero() {
		return nil, s.fail(change, ErrInvalidAmount)
	}
	if !isWholeCents(change.Amount) {
		return nil, s.fail(change, ErrSubCentAmount)
	}

	var (
		record *models.TransactionDB
		wallet *models.WalletDB
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		w, err := s.wallets.GetByUserIDForUpdate(ctx, change.UserID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWalletNotFound
		}
		if err != nil {
			return err
		}
		if !w.IsActive() {
			return ErrWalletInactive
		}
		if change.Amount.IsNegative() && change.Amount.Abs().GreaterThan(w.Balance) {
			return &InsufficientFundsError{Balance: w.Balance, Requested: change.Amount.Abs()}
		}

		// Entries of one wallet must sort in commit order; the row lock orders
		// writers, the clock may not.
		now := s.now().UTC().Truncate(time.Microsecond)
		if !now.After(w.LastUpdatedAt) {
			now = w.LastUpdatedAt.Add(time.Microsecond)
		}
		after := w.Balance.Add(change.Amount)
		if err := s.wallets.UpdateBalance(ctx, w.WalletID, after, now); err != nil {
			return err
		}

		txn := &models.TransactionDB{
			TransactionID: uuid.New(),
			WalletID:      w.WalletID,
			TripID:        change.TripID,
			PostID:        change.PostID,
			Amount:        change.Amount,
			BalanceBefore: w.Balance,
			BalanceAfter:  after,
			Type:          change.Type,
			Status:        models.TransactionStatusCompleted,
			CreatedAt:     now,
			CompletedAt:   &now,
			Description:   change.Description,
			ExternalCode:  change.ExternalCode,
		}
		if err := s.txns.Insert(ctx, txn); err != nil {
			if errors.Is(err, repositories.ErrDuplicateExternalCode) {
				return fmt.Errorf("%w: %w", ErrExternalCodeApplied, err)
			}
			return err
		}

		if change.PostID != nil {
			if _, err := s.posts.Reopen(ctx, *change.PostID, now); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrPostNotFound
				}
				return err
			}
		}

		if err := s.applyCascade(ctx, change.Type, change.TripID, now); err != nil {
			return err
		}

		record, wallet = txn, w
		return nil
	})
	if err != nil {
		return nil, s.fail(change, classify(err))
	}

	logger.Log.Infow("balance change committed",
		"transaction_id", record.TransactionID,
		"user_id", change.UserID,
		"type", change.Type,
		"amount", record.Amount.String(),
		"balance_after", record.BalanceAfter.String(),
	)
	metrics.LedgerOperations.WithLabelValues(string(change.Type), metrics.OutcomeSuccess).Inc()
	s.publishTransaction(ctx, wallet.UserID, record)

	return record, nil
}

func (s *LedgerService) fail(change BalanceChange, err error) error {
	code := Code(err)
	metrics.LedgerOperations.WithLabelValues(string(change.Type), code).Inc()
	if errors.Is(err, ErrSystem) || errors.Is(err, ErrConcurrencyConflict) {
		logger.Log.Errorw("balance change failed", "user_id", change.UserID, "type", change.Type, "code", code, "error", err)
	} else {
		logger.Log.Warnw("balance change rejected", "user_id", change.UserID, "type", change.Type, "code", code, "error", err)
	}
	return err
}

// publishTransaction publishes a committed ledger record to Kafka. Failures are logged only.
func (s *LedgerService) publishTransaction(ctx context.Context, userID uuid.UUID, txn *models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		UserID:        userID.String(),
		WalletID:      txn.WalletID.String(),
		Type:          string(txn.Type),
		Amount:        txn.Amount.String(),
		BalanceAfter:  txn.BalanceAfter.String(),
		Timestamp:     txn.CreatedAt.Unix(),
	}
	if txn.TripID != nil {
		event.TripID = txn.TripID.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		metrics.KafkaPublishErrors.Inc()
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.WalletID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
		metrics.KafkaPublishErrors.Inc()
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", event.Amount)
	}
}

// RequestWithdrawal debits amount from the user's wallet.
func (s *LedgerService) RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.TransactionDB, error) {
	return s.create(ctx, PaymentRequest{
		UserID:      userID,
		Amount:      amount,
		Type:        models.TransactionTypeWithdrawal,
		Description: description,
	}, models.TransactionTypeWithdrawal)
}

// CreateTopup credits the user's wallet.
func (s *LedgerService) CreateTopup(ctx context.Context, req PaymentRequest) (*models.TransactionDB, error) {
	return s.create(ctx, req, models.TransactionTypeTopup)
}

// CreatePayment debits the user's wallet with PAYMENT (default) or DRIVER_SERVICE_PAYMENT.
func (s *LedgerService) CreatePayment(ctx context.Context, req PaymentRequest) (*models.TransactionDB, error) {
	return s.create(ctx, req, models.TransactionTypePayment, models.TransactionTypeDriverServicePayment)
}

// CreatePayout credits the user's wallet with OWNER_PAYOUT or DRIVER_PAYOUT.
func (s *LedgerService) CreatePayout(ctx context.Context, req PaymentRequest) (*models.TransactionDB, error) {
	return s.create(ctx, req, models.TransactionTypeOwnerPayout, models.TransactionTypeDriverPayout)
}

// create validates the request type against allowed, where allowed[0] is the
// default for an empty type, signs the amount and executes the change.
func (s *LedgerService) create(ctx context.Context, req PaymentRequest, allowed ...models.TransactionType) (*models.TransactionDB, error) {
	typ := req.Type
	if typ == "" {
		typ = allowed[0]
	}

	permitted := false
	for _, a := range allowed {
		if typ == a {
			permitted = true
			break
		}
	}
	if !permitted {
		err := fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
		logger.Log.Warnw("balance change rejected", "user_id", req.UserID, "type", req.Type, "error", err)
		return nil, err
	}

	amount, err := SignedAmount(typ, req.Amount)
	if err != nil {
		logger.Log.Warnw("balance change rejected", "user_id", req.UserID, "type", typ, "amount", req.Amount.String(), "error", err)
		return nil, err
	}

	return s.ExecuteBalanceChange(ctx, BalanceChange{
		UserID:       req.UserID,
		Amount:       amount,
		Type:         typ,
		TripID:       req.TripID,
		PostID:       req.PostID,
		Description:  req.Description,
		ExternalCode: req.ExternalCode,
	})
}

// History returns the user's wallet and its ledger oldest first, replayed from a zero opening balance.
func (s *LedgerService) History(ctx context.Context, userID uuid.UUID) (*LedgerStatement, error) {
	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to load wallet", "user_id", userID, "error", err)
		return nil, classify(err)
	}

	txns, err := s.txns.ListByWalletID(ctx, wallet.WalletID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "wallet_id", wallet.WalletID, "error", err)
		return nil, classify(err)
	}

	stmt := &LedgerStatement{Wallet: wallet, Transactions: txns}
	replayed, err := ReplayBalance(decimal.Zero, txns)
	if err != nil {
		logger.Log.Errorw("ledger replay failed", "wallet_id", wallet.WalletID, "error", err)
		return stmt, nil
	}
	stmt.ReplayedBalance = replayed
	stmt.Consistent = replayed.Equal(wallet.Balance)
	if !stmt.Consistent {
		logger.Log.Errorw("ledger replay does not match wallet balance",
			"wallet_id", wallet.WalletID,
			"replayed", replayed.String(),
			"balance", wallet.Balance.String(),
		)
	}
	return stmt, nil
}

// ReplayBalance folds txns, ordered by CreatedAt, onto opening. Every record must
// start where the previous one ended and satisfy BalanceAfter = BalanceBefore + Amount.
func ReplayBalance(opening decimal.Decimal, txns []models.TransactionDB) (decimal.Decimal, error) {
	balance := opening
	for i, t := range txns {
		if !t.BalanceBefore.Equal(balance) {
			return balance, fmt.Errorf("%w: record %d (%s) starts at %s, expected %s",
				ErrLedgerInconsistent, i, t.TransactionID, t.BalanceBefore, balance)
		}
		if !t.BalanceBefore.Add(t.Amount).Equal(t.BalanceAfter) {
			return balance, fmt.Errorf("%w: record %d (%s) does not add up",
				ErrLedgerInconsistent, i, t.TransactionID)
		}
		balance = t.BalanceAfter
	}
	return balance, nil
}
