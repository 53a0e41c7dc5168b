package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	payablespb "github.com/evozago/fluxo-e-dre-sub001/gen/proto/payables/v1"
	"github.com/evozago/fluxo-e-dre-sub001/internal/common"
	"github.com/evozago/fluxo-e-dre-sub001/internal/export"
	"github.com/evozago/fluxo-e-dre-sub001/internal/ingest"
	"github.com/evozago/fluxo-e-dre-sub001/internal/payables"
	repo "github.com/evozago/fluxo-e-dre-sub001/internal/repository"
	svc "github.com/evozago/fluxo-e-dre-sub001/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	documentsRepo := repo.NewFiscalDocumentRepository(entc, logger)
	installmentsRepo := repo.NewInstallmentRepository(entc, logger)

	deriver := payables.NewDeriver(
		payables.FixedOffsetPolicy{Days: cfg.Ingest.DueDateOffsetDays},
		time.Now,
	)
	orchestrator := ingest.NewService(documentsRepo, installmentsRepo, deriver, ingest.Config{
		EnforceUniqueAccessKey: cfg.Ingest.EnforceUniqueAccessKey,
		MaxParallel:            cfg.Ingest.MaxParallel,
	}, logger)
	exporter := export.NewService(installmentsRepo, time.Now, logger)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	payablespb.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(orchestrator, logger))
	payablespb.RegisterPayablesServiceServer(grpcServer, svc.NewPayablesService(installmentsRepo, exporter, time.Now, logger))
	payablespb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsService(documentsRepo, installmentsRepo, time.Now, logger))

	go func() {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	// HTTP upload gateway
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: svc.NewUploadHandler(orchestrator, logger).Router(),
	}
	go func() {
		logger.Info("HTTP serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
