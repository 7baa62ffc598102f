package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/loanbridge/origination-service/internal/application/usecase"
	"github.com/loanbridge/origination-service/internal/domain/port"
	"github.com/loanbridge/origination-service/internal/domain/service"
	"github.com/loanbridge/origination-service/internal/infrastructure/adapter"
	"github.com/loanbridge/origination-service/internal/infrastructure/cache"
	"github.com/loanbridge/origination-service/internal/infrastructure/config"
	infrakafka "github.com/loanbridge/origination-service/internal/infrastructure/kafka"
	pgRepo "github.com/loanbridge/origination-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/loanbridge/origination-service/internal/presentation/grpc"
	"github.com/loanbridge/origination-service/internal/presentation/rest"
	"github.com/loanbridge/origination-service/pkg/auth"
	pkgkafka "github.com/loanbridge/origination-service/pkg/kafka"
	"github.com/loanbridge/origination-service/pkg/observability"
	pkgpostgres "github.com/loanbridge/origination-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting origination-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics exporter. The handler is served on the REST surface.
	meterProvider, _, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without them", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	appRepo := pgRepo.NewApplicationRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	uow := pgRepo.NewUnitOfWork(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := infrakafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Optional Redis quote cache.
	var quoteCache port.QuoteCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		quoteCache = cache.NewRedisQuoteCache(redisClient, cfg.Redis.QuoteTTL, logger)
		logger.Info("quote cache enabled", "addr", cfg.Redis.Addr)
	}

	// Optional external risk model. Absent, the in-process engine decides;
	// "stub" runs the in-process engine behind the scorer port so local
	// environments exercise the same code path as a live model deployment.
	var scorer port.RiskScorer
	switch {
	case cfg.RiskModel.BaseURL == "stub":
		scorer = adapter.NewStubRiskScorer()
		logger.Info("stub risk scorer enabled")
	case cfg.RiskModel.BaseURL != "":
		scorer = adapter.NewRiskModelAdapter(adapter.RiskModelConfig{
			BaseURL:        cfg.RiskModel.BaseURL,
			APIKey:         cfg.RiskModel.APIKey,
			TimeoutSeconds: cfg.RiskModel.TimeoutSeconds,
			MaxRetries:     cfg.RiskModel.MaxRetries,
			RetryBackoffMs: cfg.RiskModel.RetryBackoffMs,
		})
		logger.Info("external risk model enabled", "url", cfg.RiskModel.BaseURL)
	}

	assessor := service.NewRiskAssessor()

	// Wire use cases.
	submitAppUC := usecase.NewSubmitApplicationUseCase(appRepo, publisher, assessor, scorer)
	getAppUC := usecase.NewGetApplicationUseCase(appRepo)
	quoteUC := usecase.NewQuoteScheduleUseCase(quoteCache)
	assessRiskUC := usecase.NewAssessRiskUseCase(assessor, scorer)
	disburseUC := usecase.NewDisburseLoanUseCase(appRepo, uow, publisher)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	paymentUC := usecase.NewMakePaymentUseCase(loanRepo, publisher)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtCfg.Secret = cfg.JWT.Secret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewOriginationHandler(
		submitAppUC, getAppUC, quoteUC, assessRiskUC, disburseUC, getLoanUC, paymentUC,
	)
	grpcServer, err := grpcPresentation.NewServer(handler, logger, jwtSvc, grpcPresentation.TLSOptions{
		Enabled:  cfg.TLS.Enabled,
		CertFile: cfg.TLS.CertFile,
		KeyFile:  cfg.TLS.KeyFile,
	})
	if err != nil {
		logger.Error("failed to initialize gRPC server", "error", err)
		os.Exit(1)
	}

	// HTTP server (quotes, pre-qualification, probes, metrics).
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	restHandler := rest.NewHandler(quoteUC, assessRiskUC, logger)
	restHandler.Register(e)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 3)

	// Optional inbound payment consumer.
	if cfg.Kafka.PaymentsTopic != "" {
		paymentConsumer := infrakafka.NewPaymentConsumer(pkgkafka.Config{
			Brokers:       cfg.Kafka.Brokers,
			ConsumerGroup: cfg.Kafka.ConsumerGroup,
		}, cfg.Kafka.PaymentsTopic, paymentUC, logger)
		defer paymentConsumer.Close()

		go func() {
			if err := paymentConsumer.Start(ctx); err != nil {
				errCh <- fmt.Errorf("payment consumer error: %w", err)
			}
		}()
		logger.Info("payment consumer enabled", "topic", cfg.Kafka.PaymentsTopic)
	}

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("origination-service stopped")
}
