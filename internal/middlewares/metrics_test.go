package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	dto "github.com/prometheus/client_model/go"
	"github.com/sbilibin2017/gw-trip-ledger/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Patch("/trips/{tripID}/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	counter := metrics.HTTPRequests.WithLabelValues("/trips/{tripID}/status", http.MethodPatch, "409")
	var before dto.Metric
	require.NoError(t, counter.Write(&before))

	req := httptest.NewRequest(http.MethodPatch, "/trips/5f1c/status", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var after dto.Metric
	require.NoError(t, counter.Write(&after))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, before.GetCounter().GetValue()+1, after.GetCounter().GetValue())
}
