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

	"github.com/ouestbank/lending-service/internal/application/usecase"
	"github.com/ouestbank/lending-service/internal/domain/service"
	"github.com/ouestbank/lending-service/internal/infrastructure/config"
	"github.com/ouestbank/lending-service/internal/infrastructure/messaging"
	pgRepo "github.com/ouestbank/lending-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/ouestbank/lending-service/internal/presentation/grpc"
	"github.com/ouestbank/lending-service/internal/presentation/rest"
	"github.com/ouestbank/lending-service/pkg/auth"
	pkgkafka "github.com/ouestbank/lending-service/pkg/kafka"
	"github.com/ouestbank/lending-service/pkg/money"
	"github.com/ouestbank/lending-service/pkg/observability"
	pkgpostgres "github.com/ouestbank/lending-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting lending-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort shutdown

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://"+cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Infrastructure adapters.
	loanRepo := pgRepo.NewLoanRepo(pool)
	installmentRepo := pgRepo.NewInstallmentRepo(pool)
	repaymentRepo := pgRepo.NewRepaymentRepo(pool)
	loanTypeRepo := pgRepo.NewLoanTypeRepo(pool)
	clientDir := pgRepo.NewClientDirectory(pool)
	numberGen := pgRepo.NewNumberGenerator(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	penaltyCurrency, err := money.NewCurrency(cfg.Penalty.Currency)
	if err != nil {
		logger.Error("invalid penalty currency", "error", err)
		os.Exit(1)
	}
	penaltyEngine, err := service.NewPenaltyEngine(service.PenaltyPolicy{
		Rate:       cfg.Penalty.Rate,
		GraceDays:  cfg.Penalty.GraceDays,
		MinPenalty: money.New(cfg.Penalty.MinPenalty, penaltyCurrency),
		MaxPenalty: money.New(cfg.Penalty.MaxPenalty, penaltyCurrency),
	})
	if err != nil {
		logger.Error("invalid penalty policy", "error", err)
		os.Exit(1)
	}

	// Application layer.
	useCases := grpcPresentation.UseCases{
		Simulate:        usecase.NewSimulateLoanUseCase(loanTypeRepo),
		CreateApp:       usecase.NewCreateApplicationUseCase(loanRepo, loanTypeRepo, clientDir, numberGen, publisher),
		Approve:         usecase.NewApproveLoanUseCase(loanRepo, publisher),
		Reject:          usecase.NewRejectLoanUseCase(loanRepo, publisher),
		Delete:          usecase.NewDeleteLoanUseCase(loanRepo),
		GetLoan:         usecase.NewGetLoanUseCase(loanRepo, installmentRepo),
		ListLoans:       usecase.NewListLoansUseCase(loanRepo, installmentRepo),
		GetSchedule:     usecase.NewGetScheduleUseCase(loanRepo, installmentRepo),
		ListUnpaid:      usecase.NewListUnpaidUseCase(loanRepo, installmentRepo),
		ListOverdue:     usecase.NewListOverdueUseCase(installmentRepo),
		RecordRepayment: usecase.NewRecordRepaymentUseCase(loanRepo, installmentRepo, publisher),
		ListRepayments:  usecase.NewListRepaymentsUseCase(repaymentRepo),
		MarkOverdue:     usecase.NewMarkOverdueUseCase(loanRepo, installmentRepo, penaltyEngine, publisher),
	}

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		PublicKeyPEM: cfg.JWT.PublicKeyPEM,
		Issuer:       cfg.JWT.Issuer,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewLendingHandler(useCases)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc, cfg.TLSCertFile, cfg.TLSKeyFile)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadyCheck{
		"postgres": func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

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

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("lending-service stopped")
}
