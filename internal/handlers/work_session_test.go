package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/dutyclock"
	"github.com/sbilibin2017/gw-trip-ledger/internal/models"
	"github.com/sbilibin2017/gw-trip-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkSessionStarter(ctrl)
	handler := NewStartSessionHandler(mockSvc)

	driverID := uuid.New()
	tripID := uuid.New()

	t.Run("without_body", func(t *testing.T) {
		mockSvc.EXPECT().StartSession(gomock.Any(), driverID, (*uuid.UUID)(nil)).
			Return(&models.DriverWorkSessionDB{SessionID: uuid.New(), DriverID: driverID, Status: models.WorkSessionStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPost, "/work-sessions", http.NoBody)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, asCaller(req, driverID))

		require.Equal(t, http.StatusCreated, rec.Code)
		var got models.DriverWorkSessionDB
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, models.WorkSessionStatusInProgress, got.Status)
	})

	t.Run("with_trip", func(t *testing.T) {
		mockSvc.EXPECT().StartSession(gomock.Any(), driverID, &tripID).
			Return(&models.DriverWorkSessionDB{SessionID: uuid.New(), DriverID: driverID, TripID: &tripID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/work-sessions", bytes.NewReader([]byte(`{"trip_id": "`+tripID.String()+`"}`)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, asCaller(req, driverID))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("already_active", func(t *testing.T) {
		mockSvc.EXPECT().StartSession(gomock.Any(), driverID, gomock.Any()).Return(nil, services.ErrSessionAlreadyActive)

		req := httptest.NewRequest(http.MethodPost, "/work-sessions", http.NoBody)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, asCaller(req, driverID))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "SESSION_ALREADY_ACTIVE", decodeError(t, rec).Code)
	})

	t.Run("weekly_cap", func(t *testing.T) {
		result := dutyclock.Result{HoursToday: 2, HoursThisWeek: 48, CanDrive: false, Message: "weekly limit reached"}
		mockSvc.EXPECT().StartSession(gomock.Any(), driverID, gomock.Any()).Return(nil, &services.ComplianceError{Result: result})

		req := httptest.NewRequest(http.MethodPost, "/work-sessions", http.NoBody)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, asCaller(req, driverID))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		got := decodeError(t, rec)
		assert.Equal(t, "COMPLIANCE_VIOLATION", got.Code)
		require.NotNil(t, got.Eligibility)
		assert.Equal(t, 48.0, got.Eligibility.HoursThisWeek)
	})

	t.Run("invalid_body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/work-sessions", bytes.NewReader([]byte(`{"trip_id": 5}`)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, asCaller(req, driverID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEndSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkSessionEnder(ctrl)
	handler := NewEndSessionHandler(mockSvc)

	driverID := uuid.New()
	sessionID := uuid.New()

	tests := []struct {
		name           string
		sessionParam   string
		mockEnd        func()
		expectedStatus int
	}{
		{
			name:         "success",
			sessionParam: sessionID.String(),
			mockEnd: func() {
				mockSvc.EXPECT().EndSession(gomock.Any(), sessionID, driverID).
					Return(&models.DriverWorkSessionDB{SessionID: sessionID, Status: models.WorkSessionStatusCompleted, DurationInHours: 3.5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_session_id",
			sessionParam:   "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:         "not_owned",
			sessionParam: sessionID.String(),
			mockEnd: func() {
				mockSvc.EXPECT().EndSession(gomock.Any(), sessionID, driverID).Return(nil, services.ErrSessionNotOwned)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:         "not_found",
			sessionParam: sessionID.String(),
			mockEnd: func() {
				mockSvc.EXPECT().EndSession(gomock.Any(), sessionID, driverID).Return(nil, services.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:         "already_completed",
			sessionParam: sessionID.String(),
			mockEnd: func() {
				mockSvc.EXPECT().EndSession(gomock.Any(), sessionID, driverID).Return(nil, services.ErrSessionAlreadyComplete)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockEnd != nil {
				tt.mockEnd()
			}

			req := httptest.NewRequest(http.MethodPost, "/work-sessions/"+tt.sessionParam+"/end", nil)
			req = withURLParam(asCaller(req, driverID), "sessionID", tt.sessionParam)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestEligibilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEligibilityChecker(ctrl)
	handler := NewEligibilityHandler(mockSvc)
	driverID := uuid.New()

	want := dutyclock.Result{HoursToday: 4.5, HoursThisWeek: 20, CanDrive: true}
	mockSvc.EXPECT().CheckEligibility(gomock.Any(), driverID).Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/work-sessions/eligibility", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, asCaller(req, driverID))

	require.Equal(t, http.StatusOK, rec.Code)
	var got dutyclock.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}
