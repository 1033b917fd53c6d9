package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-trip-ledger/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogEncoding)
	assert.False(t, cfg.AutoMigrate)

	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 10, cfg.RedisPoolSize)

	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "ledger.transactions", cfg.KafkaTopic)

	assert.Equal(t, 86400, cfg.ExternalCodeTTLSecond)
	assert.Equal(t, 3, cfg.LedgerMaxRetries)
	assert.Equal(t, "50051", cfg.GRPCHealthPort)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_AUTO_MIGRATE", "true")
	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("KAFKA_TOPIC", "trips.ledger")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("WEBHOOK_SECRET", "hook")
	t.Setenv("EXTERNAL_CODE_TTL_SECOND", "600")
	t.Setenv("LEDGER_MAX_RETRIES", "5")
	t.Setenv("GRPC_HEALTH_PORT", "6000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "trips.ledger", cfg.KafkaTopic)
	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, "hook", cfg.WebhookSecret)
	assert.Equal(t, 600, cfg.ExternalCodeTTLSecond)
	assert.Equal(t, 5, cfg.LedgerMaxRetries)
	assert.Equal(t, "6000", cfg.GRPCHealthPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	os.Clearenv()
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	assert.ErrorContains(t, err, "POSTGRES_PORT")
}

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNewRouter(t *testing.T) {
	cfg := config{AppHost: "localhost", AppPort: "8080", WebhookSecret: "hook", CORSAllowedOrigins: []string{"*"}}
	tokener := jwt.New(jwt.WithSecretKey("router-secret"))
	h := routeHandlers{
		Withdraw: ok, Topup: ok, Payment: ok, Payout: ok, Transactions: ok,
		TripStatus: ok, StartSession: ok, EndSession: ok, Eligibility: ok, Webhook: ok,
	}
	router := newRouter(cfg, tokener, h)

	token, err := tokener.Generate(context.Background(), uuid.New())
	require.NoError(t, err)
	operator, err := tokener.GenerateWithRole(context.Background(), uuid.New(), jwt.RoleOperator)
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/health", nil, http.StatusOK},
		{"metrics is public", http.MethodGet, "/metrics", nil, http.StatusOK},
		{"wallet needs a token", http.MethodPost, "/wallet/withdraw", nil, http.StatusUnauthorized},
		{"wallet with token", http.MethodPost, "/wallet/withdraw", map[string]string{"Authorization": "Bearer " + token}, http.StatusOK},
		{"trip status needs operator", http.MethodPatch, "/trips/" + uuid.NewString() + "/status", map[string]string{"Authorization": "Bearer " + token}, http.StatusForbidden},
		{"trip status as operator", http.MethodPatch, "/trips/" + uuid.NewString() + "/status", map[string]string{"Authorization": "Bearer " + operator}, http.StatusOK},
		{"topup needs operator", http.MethodPost, "/wallet/topup", map[string]string{"Authorization": "Bearer " + token}, http.StatusForbidden},
		{"payout needs operator", http.MethodPost, "/wallet/payout", map[string]string{"Authorization": "Bearer " + token}, http.StatusForbidden},
		{"payout as operator", http.MethodPost, "/wallet/payout", map[string]string{"Authorization": "Bearer " + operator}, http.StatusOK},
		{"payment with token", http.MethodPost, "/wallet/payment", map[string]string{"Authorization": "Bearer " + token}, http.StatusOK},
		{"eligibility with token", http.MethodGet, "/work-sessions/eligibility", map[string]string{"Authorization": "Bearer " + token}, http.StatusOK},
		{"webhook ignores bearer", http.MethodPost, "/webhooks/payments", map[string]string{"Authorization": "Bearer " + token}, http.StatusUnauthorized},
		{"webhook with secret", http.MethodPost, "/webhooks/payments", map[string]string{middlewares.WebhookSecretHeader: "hook"}, http.StatusOK},
		{"unknown route", http.MethodGet, "/wallet/balance", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
