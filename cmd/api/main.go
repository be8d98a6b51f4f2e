package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quizvault/config"
	httpHandler "quizvault/internal/adapter/http/handler"
	"quizvault/internal/adapter/http/middleware"
	"quizvault/internal/adapter/metrics"
	"quizvault/internal/adapter/provider/google"
	"quizvault/internal/adapter/provider/googleplay"
	"quizvault/internal/adapter/provider/razorpay"
	"quizvault/internal/adapter/storage/memory"
	pgStorage "quizvault/internal/adapter/storage/postgres"
	redisStorage "quizvault/internal/adapter/storage/redis"
	"quizvault/internal/core/ports"
	"quizvault/internal/jobs"
	"quizvault/internal/service"
	"quizvault/pkg/logger"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// storage groups the repositories of whichever backend is configured.
type storage struct {
	users      ports.UserRepository
	wallets    ports.WalletRepository
	unlocks    ports.UnlockRepository
	ledger     ports.LedgerRepository
	payments   ports.PaymentRepository
	audit      ports.AuditRepository
	transactor ports.DBTransactor
	health     ports.HealthChecker
	close      func()
}

func main() {
	cfg, err := config.Load(os.Getenv("QV_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting QuizVault API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.close()

	healthCheckers := []ports.HealthChecker{store.health}

	// Redis backs the replay fast path, order ownership and rate limits.
	// Without it each instance falls back to in-process equivalents.
	var (
		paymentCache   ports.ProcessedPaymentCache
		orderCache     ports.OrderCache
		rateLimitStore ports.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		paymentCache = redisStorage.NewProcessedPaymentCache(rdb)
		orderCache = redisStorage.NewOrderCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, using per-instance order cache and rate limits")
		orderCache = memory.NewOrderCache()
		rateLimitStore = middleware.NewLocalRateLimitStore()
	}

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewRazorpaySignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	googleVerifier, err := google.NewIDTokenVerifier(ctx, cfg.Google.ClientID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Google ID token verifier")
	}
	playVerifier, err := newPlayVerifier(ctx, cfg.Google, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Google Play verifier")
	}
	razorpayClient := razorpay.NewClient(cfg.Razorpay.BaseURL, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.Timeout)

	m := metrics.New()

	rules := service.EconomyRules{
		ExchangeRate:        cfg.Economy.ExchangeRate,
		UnlockCost:          cfg.Economy.UnlockCost,
		RecentLimit:         cfg.Economy.RecentHistoryLimit,
		ProcessedPaymentTTL: cfg.Cache.ProcessedPaymentTTL,
	}
	sink, historyLimit := service.NewLedgerSink(cfg.Economy.HistoryMode, cfg.Economy.RecentHistoryLimit, store.ledger)
	rules.HistoryLimit = historyLimit

	walletSvc := service.NewWalletService(
		store.wallets,
		store.unlocks,
		store.payments,
		sink,
		paymentCache,
		encSvc,
		store.transactor,
		m,
		rules,
		log,
	)
	authSvc := service.NewAuthService(
		store.users,
		store.wallets,
		store.unlocks,
		hashSvc,
		tokenSvc,
		googleVerifier,
		store.transactor,
		log,
	)
	purchaseSvc := service.NewPurchaseService(
		walletSvc,
		playVerifier,
		razorpayClient,
		sigSvc,
		orderCache,
		cfg.Razorpay.Currency,
		cfg.Cache.OrderTTL,
		log,
	)
	auditSvc := service.NewAuditService(store.audit, log)

	scheduler := jobs.NewScheduler(store.wallets, m, log)
	if err := scheduler.Start(ctx, cfg.Jobs.EconomySnapshot); err != nil {
		log.Fatal().Err(err).Msg("Failed to start background jobs")
	}
	defer scheduler.Stop()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		WalletSvc:      walletSvc,
		PurchaseSvc:    purchaseSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		Metrics:        m,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		log.Warn().Msg("Using in-memory storage; all data is lost on restart")
		s := memory.NewStore()
		return &storage{
			users:      memory.NewUserRepository(s),
			wallets:    memory.NewWalletRepository(s),
			unlocks:    memory.NewUnlockRepository(s),
			ledger:     memory.NewLedgerRepository(s),
			payments:   memory.NewPaymentRepository(s),
			audit:      memory.NewAuditRepository(s),
			transactor: s,
			health:     s,
			close:      func() {},
		}, nil
	}

	if cfg.Database.MigrateOnStart {
		if err := pgStorage.Migrate(cfg.Database.MigrateURL(), log); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	log.Info().Msg("PostgreSQL connected")

	return &storage{
		users:      pgStorage.NewUserRepo(pool),
		wallets:    pgStorage.NewWalletRepo(pool),
		unlocks:    pgStorage.NewUnlockRepo(pool),
		ledger:     pgStorage.NewLedgerRepo(pool),
		payments:   pgStorage.NewPaymentRepo(pool),
		audit:      pgStorage.NewAuditRepo(pool),
		transactor: pgStorage.NewTransactor(pool),
		health:     pgStorage.NewHealthCheck(pool),
		close:      pool.Close,
	}, nil
}

func newPlayVerifier(ctx context.Context, cfg config.GoogleConfig, log zerolog.Logger) (ports.PlayPurchaseVerifier, error) {
	if !cfg.VerifyPurchases {
		log.Warn().Msg("Google Play purchase verification is disabled; every purchase token is accepted")
		return googleplay.PassThroughVerifier{}, nil
	}

	var opts []option.ClientOption
	if cfg.PlayCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.PlayCredentialsFile))
	}
	return googleplay.NewVerifier(ctx, cfg.PlayPackageName, log, opts...)
}
