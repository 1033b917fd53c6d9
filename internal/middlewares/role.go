package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-trip-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
)

// RequireRole admits only callers whose token carries role. It must run after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := jwt.ClaimsFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if claims.Role != role {
				logger.Log.Warnw("role required", "user_id", claims.UserID, "role", claims.Role, "required", role, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"error": "Forbidden", "code": "UNAUTHORIZED"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
