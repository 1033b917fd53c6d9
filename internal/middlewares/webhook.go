package middlewares

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
)

// WebhookSecretHeader carries the shared secret of the payment provider.
const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookSecretMiddleware admits only requests presenting the configured shared secret.
func WebhookSecretMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(WebhookSecretHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				logger.Log.Warnw("webhook rejected", "remote_addr", r.RemoteAddr)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized", "code": "UNAUTHORIZED"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
