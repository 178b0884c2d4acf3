package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/musegrid/server/internal/cache"
	"codeberg.org/musegrid/server/internal/config"
	"codeberg.org/musegrid/server/internal/feed"
	"codeberg.org/musegrid/server/internal/logger"
	"codeberg.org/musegrid/server/musegrid/affinity"
	"codeberg.org/musegrid/server/musegrid/behavior"
	"codeberg.org/musegrid/server/musegrid/catalog"
	"codeberg.org/musegrid/server/musegrid/interactions"
	"codeberg.org/musegrid/server/musegrid/recommend"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// how often the flusher writes buffered interactions to Postgres
const bufferFlushInterval = 5 * time.Second

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// small pool sized for pooler compatibility (PgBouncer in transaction
	// mode also rules out prepared statements, hence the simple protocol)
	poolConfig.MaxConns = int32(config.EnvInt("DB_MAX_CONNS", 5)) //nolint:gosec // G115: bounded tuning knob
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	catalogRepo := catalog.NewRepository(db)
	interactionRepo := interactions.NewRepository(db)
	affinityRepo := affinity.NewRepository(db)
	behaviorRepo := behavior.NewRepository(db)

	// Redis is optional: without it, tracking writes straight to Postgres and
	// profile caching stays in-process
	var buffer *interactions.EventBuffer
	var flusher *interactions.Flusher
	var queue interactions.Queue
	var cacheStore cache.Store

	if cfg.RedisURL != "" {
		buffer, err = interactions.NewEventBuffer(cfg.RedisURL)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize redis buffer: %w", err)
		}

		flusher = interactions.NewFlusher(buffer, interactionRepo, bufferFlushInterval)
		queue = buffer
		cacheStore = cache.NewRedisStore(buffer.Client(), "musegrid")
	} else {
		logger.Warn("REDIS_URL not set, running with direct inserts and in-process cache")
		cacheStore = cache.NewMemoryStore()
	}

	aggregator := behavior.NewAggregator(behaviorRepo, interactionRepo, cacheStore)

	recorder := interactions.NewRecorder(interactionRepo, queue)
	updater := affinity.NewUpdater(affinityRepo, affinityConfigFromEnv())

	engineConfig := recommendConfigFromEnv()
	engine := recommend.NewEngine(catalogRepo, affinityRepo, aggregator, engineConfig)
	facade := recommend.NewFacade(engine, catalogRepo, engineConfig)

	hub := feed.NewHub()

	router := gin.Default()

	server := &Server{
		db:              db,
		config:          cfg,
		catalogRepo:     catalogRepo,
		interactionRepo: interactionRepo,
		affinityRepo:    affinityRepo,
		aggregator:      aggregator,
		recorder:        recorder,
		updater:         updater,
		facade:          facade,
		buffer:          buffer,
		flusher:         flusher,
		cacheStore:      cacheStore,
		hub:             hub,
		router:          router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
