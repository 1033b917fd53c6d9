package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/dutyclock"
	"github.com/sbilibin2017/gw-trip-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: insufficient funds
	Error string `json:"error"`

	// Machine-checkable error code
	// default: INSUFFICIENT_FUNDS
	Code string `json:"code"`

	// Duty-hour totals, present on COMPLIANCE_VIOLATION
	Eligibility *dutyclock.Result `json:"eligibility,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps an error category onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, services.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrComplianceViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrConcurrencyConflict):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error(), Code: services.Code(err)}
	if status == http.StatusInternalServerError {
		resp.Error = "Internal server error"
	}

	var compliance *services.ComplianceError
	if errors.As(err, &compliance) {
		result := compliance.Result
		resp.Eligibility = &result
	}

	writeJSON(w, status, resp)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Code: "VALIDATION_ERROR"})
}

// callerID returns the authenticated user. It answers 401 itself when the
// request carries no claims.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		logger.Log.Errorw("no claims in request context", "uri", r.RequestURI)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Code: "UNAUTHORIZED"})
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Errorw("failed to decode request body", "uri", r.RequestURI, "error", err)
		writeBadRequest(w, "Invalid request body")
		return false
	}
	return true
}
