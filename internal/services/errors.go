package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-trip-ledger/internal/dutyclock"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/transactor"
	"github.com/shopspring/decimal"
)

// Error categories. Every error returned by a service matches exactly one of them with errors.Is.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrStateConflict       = errors.New("state conflict")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrComplianceViolation = errors.New("compliance violation")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrSystem              = errors.New("system error")
)

var (
	ErrInvalidAmount          = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrSubCentAmount          = fmt.Errorf("%w: amount has more than two decimal places", ErrValidation)
	ErrInvalidType            = fmt.Errorf("%w: transaction type not allowed for this operation", ErrValidation)
	ErrInvalidStatus          = fmt.Errorf("%w: unknown trip status", ErrValidation)
	ErrMissingExternalCode    = fmt.Errorf("%w: external code is required", ErrValidation)
	ErrWalletNotFound         = fmt.Errorf("wallet %w", ErrNotFound)
	ErrTripNotFound           = fmt.Errorf("trip %w", ErrNotFound)
	ErrPostNotFound           = fmt.Errorf("post %w", ErrNotFound)
	ErrSessionNotFound        = fmt.Errorf("work session %w", ErrNotFound)
	ErrSessionNotOwned        = fmt.Errorf("%w: work session belongs to another driver", ErrUnauthorized)
	ErrWalletInactive         = fmt.Errorf("%w: wallet is not active", ErrStateConflict)
	ErrInvalidTransition      = fmt.Errorf("%w: invalid trip transition", ErrStateConflict)
	ErrSessionAlreadyActive   = fmt.Errorf("%w: driver already has an in-progress work session", ErrStateConflict)
	ErrSessionAlreadyComplete = fmt.Errorf("%w: work session is already completed", ErrStateConflict)
	ErrExternalCodeApplied    = fmt.Errorf("%w: external code already applied", ErrStateConflict)
	ErrLedgerInconsistent     = fmt.Errorf("%w: ledger replay does not match", ErrSystem)
)

// InsufficientFundsError reports a debit larger than the wallet balance.
type InsufficientFundsError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, requested %s", e.Balance.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// ComplianceError carries the duty-hour evaluation that refused a session start.
type ComplianceError struct {
	Result dutyclock.Result
}

func (e *ComplianceError) Error() string {
	return "compliance violation: " + e.Result.Message
}

func (e *ComplianceError) Unwrap() error { return ErrComplianceViolation }

// TransitionError reports a trip status change outside the transition table.
type TransitionError struct {
	From models.TripStatus
	To   models.TripStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid trip transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

var categories = []error{
	ErrValidation,
	ErrNotFound,
	ErrUnauthorized,
	ErrStateConflict,
	ErrInsufficientFunds,
	ErrComplianceViolation,
	ErrConcurrencyConflict,
	ErrSystem,
}

// classify maps storage and infrastructure failures onto the error categories.
// Errors that already belong to a category pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range categories {
		if errors.Is(err, c) {
			return err
		}
	}
	if transactor.IsRetryable(err) {
		return fmt.Errorf("%w: %w", ErrConcurrencyConflict, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request aborted before commit: %w", ErrSystem, err)
	}
	return fmt.Errorf("%w: %w", ErrSystem, err)
}

// Code returns the machine-checkable outcome of err, most specific first.
func Code(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrWalletNotFound):
		return "WALLET_NOT_FOUND"
	case errors.Is(err, ErrWalletInactive):
		return "WALLET_INACTIVE"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrSessionAlreadyActive):
		return "SESSION_ALREADY_ACTIVE"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrStateConflict):
		return "STATE_CONFLICT"
	case errors.Is(err, ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS"
	case errors.Is(err, ErrComplianceViolation):
		return "COMPLIANCE_VIOLATION"
	case errors.Is(err, ErrConcurrencyConflict):
		return "CONCURRENCY_CONFLICT"
	default:
		return "SYSTEM_ERROR"
	}
}
