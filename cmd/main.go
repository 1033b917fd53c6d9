package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-trip-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-trip-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-trip-ledger/internal/logger"
	"github.com/sbilibin2017/gw-trip-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-trip-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-trip-ledger/internal/services"
	"github.com/sbilibin2017/gw-trip-ledger/internal/transactor"
	"github.com/sbilibin2017/gw-trip-ledger/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogEncoding string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	WebhookSecret         string
	ExternalCodeTTLSecond int
	LedgerMaxRetries      int

	GRPCHealthPort     string
	CORSAllowedOrigins []string
	AutoMigrate        bool
}

// @title gw-trip-ledger API
// @version 1.0.0
// @description Wallet ledger, trip lifecycle and driver duty-hour service
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, then the process
// environment, and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, s := range strings.Split(getEnv(key, defaultValue), ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("APP_AUTO_MIGRATE", "false")); err != nil {
		return cfg, fmt.Errorf("APP_AUTO_MIGRATE: %w", err)
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "localhost:9092")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "ledger.transactions")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Ledger config
	cfg.WebhookSecret = getEnv("WEBHOOK_SECRET", "")
	if cfg.ExternalCodeTTLSecond, err = getInt("EXTERNAL_CODE_TTL_SECOND", "86400"); err != nil {
		return
	}
	if cfg.LedgerMaxRetries, err = getInt("LEDGER_MAX_RETRIES", "3"); err != nil {
		return
	}

	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")
	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", "*")

	return cfg, nil
}

// routeHandlers are the HTTP endpoints mounted by newRouter.
type routeHandlers struct {
	Withdraw     http.HandlerFunc
	Topup        http.HandlerFunc
	Payment      http.HandlerFunc
	Payout       http.HandlerFunc
	Transactions http.HandlerFunc
	TripStatus   http.HandlerFunc
	StartSession http.HandlerFunc
	EndSession   http.HandlerFunc
	Eligibility  http.HandlerFunc
	Webhook      http.HandlerFunc
}

// newRouter mounts the API behind logging, metrics, CORS and JWT auth.
// The payment webhook is authenticated by shared secret instead of JWT.
func newRouter(cfg config, tokener middlewares.Tokener, h routeHandlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", middlewares.WebhookSecretHeader},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))

		r.Post("/wallet/withdraw", h.Withdraw)
		r.Post("/wallet/payment", h.Payment)
		r.Get("/wallet/transactions", h.Transactions)

		// credits and trip status changes come from back office, not wallet owners
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireRole(jwt.RoleOperator))
			r.Post("/wallet/topup", h.Topup)
			r.Post("/wallet/payout", h.Payout)
			r.Patch("/trips/{tripID}/status", h.TripStatus)
		})

		r.Post("/work-sessions", h.StartSession)
		r.Post("/work-sessions/{sessionID}/end", h.EndSession)
		r.Get("/work-sessions/eligibility", h.Eligibility)
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.WebhookSecretMiddleware(cfg.WebhookSecret))
		r.Post("/webhooks/payments", h.Webhook)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, database, Redis, Kafka, the HTTP API and the
// gRPC health server, and stops all of them on SIGINT/SIGTERM.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.AutoMigrate {
		if err := migrations.Apply(ctx, db); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Log.Info("migrations applied")
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka producer for committed transactions
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	tx := transactor.New(db, transactor.WithMaxRetries(cfg.LedgerMaxRetries))
	getTx := transactor.GetTxFromContext

	// Initialize repositories
	walletRepo := repositories.NewWalletRepository(db, getTx)
	transactionRepo := repositories.NewTransactionRepository(db, getTx)
	tripRepo := repositories.NewTripRepository(db, getTx)
	assignmentRepo := repositories.NewAssignmentRepository(db, getTx)
	postRepo := repositories.NewPostRepository(db, getTx)
	sessionRepo := repositories.NewWorkSessionRepository(db, getTx)
	externalCodeRepo := repositories.NewExternalCodeCacheRepository(rdb, time.Duration(cfg.ExternalCodeTTLSecond)*time.Second)

	// Initialize services
	ledgerService := services.NewLedgerService(tx, walletRepo, transactionRepo, tripRepo, assignmentRepo, postRepo, kafkaWriter)
	tripService := services.NewTripService(tx, tripRepo)
	sessionService := services.NewWorkSessionService(sessionRepo)
	webhookService := services.NewPaymentWebhookService(externalCodeRepo, transactionRepo, ledgerService)

	router := newRouter(cfg, tokener, routeHandlers{
		Withdraw:     handlers.NewWithdrawHandler(ledgerService),
		Topup:        handlers.NewTopupHandler(ledgerService),
		Payment:      handlers.NewPaymentHandler(ledgerService),
		Payout:       handlers.NewPayoutHandler(ledgerService),
		Transactions: handlers.NewTransactionsHandler(ledgerService),
		TripStatus:   handlers.NewTripStatusHandler(tripService),
		StartSession: handlers.NewStartSessionHandler(sessionService),
		EndSession:   handlers.NewEndSessionHandler(sessionService),
		Eligibility:  handlers.NewEligibilityHandler(sessionService),
		Webhook:      handlers.NewPaymentWebhookHandler(webhookService),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	grpcLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("gRPC health listener: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Log.Infof("gRPC health server listening on %s", grpcLis.Addr())
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		if err := grpcServer.Serve(grpcLis); err != nil {
			return fmt.Errorf("gRPC health server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping servers...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("servers stopped gracefully")
	return nil
}
