package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/statline/external/espn"
	"github.com/riskibarqy/statline/external/pfr"
	"github.com/riskibarqy/statline/internal/config"
	"github.com/riskibarqy/statline/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/statline/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/statline/internal/platform/cache"
	"github.com/riskibarqy/statline/internal/platform/fetcher"
	"github.com/riskibarqy/statline/internal/platform/logging"
	"github.com/riskibarqy/statline/internal/platform/resilience"
	"github.com/riskibarqy/statline/internal/usecase"
)

const (
	dbPingTimeout   = 5 * time.Second
	dbMaxOpenConns  = 4
	dbConnMaxIdle   = 5 * time.Minute
	dbDriverName    = "postgres"
	dbSystemPostgre = "postgresql"
)

// Closer releases what a constructor opened.
type Closer func()

func noopCloser() {}

// NewFetcher builds the shared page fetcher, with a page cache when
// PAGE_CACHE_ENABLED is set. Redis is used when REDIS_URL is set and
// reachable; otherwise pages are cached in process.
func NewFetcher(ctx context.Context, cfg config.Config, logger *logging.Logger) (*fetcher.Fetcher, Closer) {
	if logger == nil {
		logger = logging.Default()
	}

	var pageCache fetcher.PageCache
	closeCache := noopCloser
	if cfg.PageCacheEnabled {
		pageCache = cache.NewMemoryPages(cfg.PageCacheTTL)
		if cfg.RedisURL != "" {
			redisPages, err := cache.NewRedisPages(ctx, cfg.RedisURL, cfg.PageCacheTTL, logger)
			if err != nil {
				logger.WarnContext(ctx, "redis page cache unavailable, using in-process cache", "error", err)
			} else {
				pageCache = redisPages
				closeCache = func() {
					if err := redisPages.Close(); err != nil {
						logger.Warn("close redis page cache", "error", err)
					}
				}
			}
		}
	}

	f := fetcher.New(fetcher.Config{
		UserAgent:   cfg.ScraperUserAgent,
		Timeout:     cfg.ScraperTimeout,
		MaxRetries:  cfg.ScraperMaxRetries,
		BackoffBase: cfg.ScraperBackoffBase,
		Pacing:      fetcherPacing(cfg.ScraperPacing),
		Logger:      logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ScraperCircuitEnabled,
			FailureThreshold: cfg.ScraperCircuitFailureCount,
			OpenTimeout:      cfg.ScraperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ScraperCircuitHalfOpenMaxReq,
		},
		Cache: pageCache,
	})

	return f, func() {
		f.Close()
		closeCache()
	}
}

// OpenDB opens the traced Postgres handle and checks it is reachable.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := DatabaseURL(cfg)

	db, err := otelsqlx.Open(dbDriverName, dsn,
		otelsql.WithDBSystem(dbSystemPostgre),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetConnMaxIdleTime(dbConnMaxIdle)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// NewPlayerStatsService wires the single-player ESPN lookup. It never
// touches the database.
func NewPlayerStatsService(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.PlayerStatsService, Closer) {
	f, closeFetcher := NewFetcher(ctx, cfg, logger)

	client := espn.NewClient(espn.ClientConfig{
		Fetcher:    f,
		BaseURL:    cfg.ESPNBaseURL,
		Timeout:    cfg.ESPNTimeout,
		MaxRetries: cfg.ScraperMaxRetries,
		Logger:     logger,
	})

	return usecase.NewPlayerStatsService(client, logger), closeFetcher
}

// NewIngestionService wires the season scraper. A dry run keeps records in
// memory and never opens the database.
func NewIngestionService(ctx context.Context, cfg config.Config, logger *logging.Logger, dryRun bool) (*usecase.IngestionService, Closer, error) {
	f, closeFetcher := NewFetcher(ctx, cfg, logger)

	client := pfr.NewClient(pfr.ClientConfig{
		Fetcher:    f,
		BaseURL:    cfg.PFRBaseURL,
		Timeout:    cfg.ScraperTimeout,
		MaxRetries: cfg.ScraperMaxRetries,
		Logger:     logger,
	})

	dryRunStores := usecase.IngestionStores{
		Players: memory.NewWeeklyStatsRepository(),
		Defense: memory.NewDefenseRepository(),
	}

	if dryRun {
		service := usecase.NewIngestionService(client, usecase.SourceIdentityResolver{}, usecase.IngestionStores{}, dryRunStores, logger)
		return service, closeFetcher, nil
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		closeFetcher()
		return nil, nil, err
	}

	gateway := postgres.NewGateway(db)
	stores := usecase.IngestionStores{
		Players: postgres.NewWeeklyStatsRepository(db, gateway),
		Defense: postgres.NewDefenseRepository(db, gateway),
	}

	service := usecase.NewIngestionService(client, usecase.SourceIdentityResolver{}, stores, dryRunStores, logger)
	return service, func() {
		closeFetcher()
		if err := db.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}, nil
}

// fetcherPacing maps SCRAPER_PACING=0, which disables pacing, onto the
// fetcher's NoPacing.
func fetcherPacing(d time.Duration) time.Duration {
	if d == 0 {
		return fetcher.NoPacing
	}
	return d
}
