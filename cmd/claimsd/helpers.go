package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/claims-dashboard/internal/domain/port"
	"github.com/bibbank/claims-dashboard/internal/domain/service"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/cache"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/config"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/fixture"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/memory"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/postgres"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/telemetry"
	"github.com/bibbank/claims-dashboard/internal/infrastructure/yamlfile"
	"github.com/bibbank/claims-dashboard/pkg/observability"
)

// openPool connects to the configured database with a bounded timeout.
func (a *app) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(dbCtx, postgres.PoolConfig{DatabaseURL: a.cfg.DatabaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

// loadStore reads claims from the configured source into an immutable store.
// The returned cleanup releases any database pool.
func (a *app) loadStore(ctx context.Context) (*memory.ClaimsStore, func(), error) {
	var (
		loader  port.ClaimLoader
		cleanup = func() {}
	)

	switch a.cfg.ClaimsSource {
	case config.SourceFile:
		loader = yamlfile.NewLoader(a.cfg.ClaimsFile)
	case config.SourcePostgres:
		pool, err := a.openPool(ctx)
		if err != nil {
			return nil, nil, err
		}
		cleanup = pool.Close
		loader = postgres.NewClaimLoader(pool)
	default:
		loader = fixture.NewLoader()
	}

	store, err := memory.Load(ctx, loader, a.logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return store, cleanup, nil
}

// newEvaluator builds the rules evaluator from configured thresholds,
// optionally wrapped with the memoizing cache and metrics. The cache is
// returned separately (nil when disabled) so readiness can report its size.
func (a *app) newEvaluator(metrics *observability.Metrics) (service.Evaluator, *cache.CachedEvaluator, error) {
	rules, err := service.NewRulesEvaluatorWithThresholds(a.cfg.Thresholds())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to configure evaluator: %w", err)
	}

	var (
		evaluator service.Evaluator = rules
		cached    *cache.CachedEvaluator
	)
	if a.cfg.EvaluationCache {
		cached = cache.NewCachedEvaluator(evaluator, a.cfg.EvaluationCacheTTL)
		evaluator = cached
	}
	if metrics != nil {
		evaluator = telemetry.NewInstrumentedEvaluator(evaluator, metrics)
	}
	return evaluator, cached, nil
}
