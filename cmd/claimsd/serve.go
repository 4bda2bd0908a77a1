package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/bibbank/claims-dashboard/internal/application/usecase"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/cache"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/memory"
	grpcpresentation "github.com/bibbank/claims-dashboard/internal/presentation/grpc"
	"github.com/bibbank/claims-dashboard/internal/presentation/rest"
	"github.com/bibbank/claims-dashboard/internal/presentation/web"
	"github.com/bibbank/claims-dashboard/pkg/observability"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard, JSON API and gRPC service",
		RunE:  a.runServe,
	}

	cmd.Flags().String("http-port", "8080", "HTTP listen port")
	cmd.Flags().String("grpc-port", "9090", "gRPC listen port")
	_ = a.v.BindPFlag("http_port", cmd.Flags().Lookup("http-port"))
	_ = a.v.BindPFlag("grpc_port", cmd.Flags().Lookup("grpc-port"))

	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := a.cfg
	logger := a.logger

	logger.Info("starting claims-dashboard",
		slog.String("http_port", cfg.HTTPPort),
		slog.String("grpc_port", cfg.GRPCPort),
		slog.String("claims_source", cfg.ClaimsSource),
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: rest.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			logger.Error("meter provider shutdown error", slog.String("error", err.Error()))
		}
	}()

	metrics, err := observability.NewMetrics(meterProvider, rest.ServiceName)
	if err != nil {
		return err
	}

	// Claims store.
	store, cleanup, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	// Domain services.
	evaluator, cached, err := a.newEvaluator(metrics)
	if err != nil {
		return err
	}

	// Use cases.
	listClaims := usecase.NewListClaims(store, evaluator)
	getClaim := usecase.NewGetClaim(store, evaluator)
	approveClaim := usecase.NewApproveClaim(store, evaluator)
	flagClaim := usecase.NewFlagClaim(store)
	riskDistribution := usecase.NewRiskDistribution(store, evaluator)
	buildDashboard := usecase.NewBuildDashboard(store, evaluator)

	// HTTP server.
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var limiter *rate.Limiter
	if cfg.ActionRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.ActionRateLimit), cfg.ActionBurst)
	}

	webServer, err := web.NewServer(web.Options{
		Logger:         logger,
		Health:         rest.NewHealthHandler(logger, readinessChecks(store, cached)),
		MetricsHandler: metricsHandler,
		Metrics:        metrics,
		ActionLimiter:  limiter,
		UseCases: web.UseCases{
			BuildDashboard:   buildDashboard,
			ListClaims:       listClaims,
			GetClaim:         getClaim,
			ApproveClaim:     approveClaim,
			FlagClaim:        flagClaim,
			RiskDistribution: riskDistribution,
		},
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      webServer.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// gRPC server.
	var grpcServer *grpcpresentation.Server
	if cfg.GRPCEnabled {
		grpcHandler := grpcpresentation.NewClaimsServiceHandler(grpcpresentation.UseCases{
			ListClaims:       listClaims,
			GetClaim:         getClaim,
			ApproveClaim:     approveClaim,
			FlagClaim:        flagClaim,
			RiskDistribution: riskDistribution,
		}, metrics, logger)
		grpcServer = grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger,
			grpcpresentation.ServerOptions{Reflection: cfg.GRPCReflection})
	}

	// Start servers.
	errCh := make(chan error, 2)

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Start(); err != nil {
				errCh <- fmt.Errorf("gRPC server error: %w", err)
			}
		}()
	}

	go func() {
		logger.Info("HTTP server starting", slog.String("address", cfg.HTTPAddress()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("claims-dashboard started",
		slog.String("http_address", cfg.HTTPAddress()),
		slog.Bool("grpc_enabled", cfg.GRPCEnabled),
		slog.String("environment", cfg.Environment),
	)

	// Wait for shutdown signal.
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errCh:
		logger.Error("server error", slog.String("error", runErr.Error()))
	}

	// Graceful shutdown.
	logger.Info("shutting down claims-dashboard")

	if grpcServer != nil {
		grpcServer.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("claims-dashboard stopped")
	return runErr
}

func readinessChecks(store *memory.ClaimsStore, cached *cache.CachedEvaluator) map[string]rest.ReadinessCheck {
	checks := map[string]rest.ReadinessCheck{
		"claims_store": func(context.Context) (string, error) {
			return fmt.Sprintf("%d claims", store.Len()), nil
		},
	}
	if cached != nil {
		checks["evaluation_cache"] = func(context.Context) (string, error) {
			return fmt.Sprintf("%d entries", cached.Len()), nil
		}
	}
	return checks
}
