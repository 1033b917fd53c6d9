package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPaymentCreator(ctrl)
	handler := NewPaymentHandler(mockSvc)

	userID := uuid.New()
	tripID := uuid.New()

	tests := []struct {
		name           string
		reqBody        string
		mockCreate     func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name:    "driver_service_payment",
			reqBody: `{"amount": "700000", "type": "DRIVER_SERVICE_PAYMENT", "trip_id": "` + tripID.String() + `"}`,
			mockCreate: func() {
				mockSvc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req services.PaymentRequest) (*models.TransactionDB, error) {
						assert.Equal(t, userID, req.UserID)
						assert.Equal(t, models.TransactionTypeDriverServicePayment, req.Type)
						require.NotNil(t, req.TripID)
						assert.Equal(t, tripID, *req.TripID)
						assert.True(t, req.Amount.Equal(decimal.NewFromInt(700000)))
						return &models.TransactionDB{TransactionID: uuid.New(), TripID: req.TripID, Type: req.Type}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero_amount",
			reqBody:        `{"amount": 0}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:    "wrong_type",
			reqBody: `{"amount": 10, "type": "TOPUP"}`,
			mockCreate: func() {
				mockSvc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidType)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:    "trip_not_found",
			reqBody: `{"amount": 10, "type": "DRIVER_SERVICE_PAYMENT", "trip_id": "` + tripID.String() + `"}`,
			mockCreate: func() {
				mockSvc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil, services.ErrTripNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:    "inactive_wallet",
			reqBody: `{"amount": 10}`,
			mockCreate: func() {
				mockSvc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil, services.ErrWalletInactive)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "WALLET_INACTIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCreate != nil {
				tt.mockCreate()
			}

			req := httptest.NewRequest(http.MethodPost, "/wallet/payment", bytes.NewReader([]byte(tt.reqBody)))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, asCaller(req, userID))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestTopupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTopupCreator(ctrl)
	handler := NewTopupHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().CreateTopup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req services.PaymentRequest) (*models.TransactionDB, error) {
			assert.Equal(t, userID, req.UserID)
			assert.Empty(t, req.Type)
			return &models.TransactionDB{
				Type:         models.TransactionTypeTopup,
				Amount:       req.Amount,
				BalanceAfter: req.Amount,
			}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/wallet/topup", bytes.NewReader([]byte(`{"amount": "100.50"}`)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, asCaller(req, userID))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.TransactionDB
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.TransactionTypeTopup, got.Type)
	assert.Equal(t, "100.5", got.BalanceAfter.String())
}

func TestPayoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPayoutCreator(ctrl)
	handler := NewPayoutHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req services.PaymentRequest) (*models.TransactionDB, error) {
			assert.Equal(t, models.TransactionTypeDriverPayout, req.Type)
			return nil, &services.TransitionError{From: models.TripStatusCompleted, To: models.TripStatusCompleted}
		})

	req := httptest.NewRequest(http.MethodPost, "/wallet/payout", bytes.NewReader([]byte(`{"amount": 5, "type": "DRIVER_PAYOUT"}`)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, asCaller(req, userID))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", decodeError(t, rec).Code)
}
