package main

import (
	"codeberg.org/musegrid/server/internal/cache"
	"codeberg.org/musegrid/server/internal/config"
	"codeberg.org/musegrid/server/internal/feed"
	"codeberg.org/musegrid/server/musegrid/affinity"
	"codeberg.org/musegrid/server/musegrid/behavior"
	"codeberg.org/musegrid/server/musegrid/catalog"
	"codeberg.org/musegrid/server/musegrid/interactions"
	"codeberg.org/musegrid/server/musegrid/recommend"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db     *pgxpool.Pool
	config *config.Config

	catalogRepo     *catalog.Repository
	interactionRepo *interactions.Repository
	affinityRepo    *affinity.Repository
	aggregator      *behavior.Aggregator

	recorder *interactions.Recorder
	updater  *affinity.Updater
	facade   *recommend.Facade

	// buffer and flusher are nil when the server runs without Redis
	buffer  *interactions.EventBuffer
	flusher *interactions.Flusher

	cacheStore cache.Store
	hub        *feed.Hub
	router     *gin.Engine
}
