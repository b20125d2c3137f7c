package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/vanshgehlot9/freightledger/internal/adapter/http"
	"github.com/vanshgehlot9/freightledger/internal/adapter/http/handler"
	"github.com/vanshgehlot9/freightledger/internal/adapter/http/middleware"
	postgresRepo "github.com/vanshgehlot9/freightledger/internal/adapter/repository/postgres"
	redisRepo "github.com/vanshgehlot9/freightledger/internal/adapter/repository/redis"
	"github.com/vanshgehlot9/freightledger/internal/infrastructure/config"
	"github.com/vanshgehlot9/freightledger/internal/infrastructure/logger"
	"github.com/vanshgehlot9/freightledger/internal/infrastructure/metrics"
	"github.com/vanshgehlot9/freightledger/internal/infrastructure/postgres"
	"github.com/vanshgehlot9/freightledger/internal/infrastructure/redis"
	"github.com/vanshgehlot9/freightledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Run database migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	deliveryRepo := postgresRepo.NewDeliveryChargeRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	seqRepo := redisRepo.NewSequenceRepository(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	statementUC := usecase.NewStatementUseCase(invoiceRepo, deliveryRepo, paymentRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, seqRepo, idGen)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo, seqRepo, idGen)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, idGen)

	// Initialize handlers
	m := metrics.New()
	statementHandler := handler.NewStatementHandler(statementUC, m)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUC)
	deliveryHandler := handler.NewDeliveryHandler(deliveryUC)
	paymentHandler := handler.NewPaymentHandler(paymentUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		StatementHandler: statementHandler,
		InvoiceHandler:   invoiceHandler,
		DeliveryHandler:  deliveryHandler,
		PaymentHandler:   paymentHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
