package main

import (
	"os"

	"codeberg.org/musegrid/server/api/rest/health"
	"codeberg.org/musegrid/server/api/rest/interactions"
	"codeberg.org/musegrid/server/api/rest/models"
	"codeberg.org/musegrid/server/api/rest/recommendations"
	"codeberg.org/musegrid/server/api/rest/users"
	"codeberg.org/musegrid/server/api/websocket"
	"codeberg.org/musegrid/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config, os.Getenv("ALLOWED_ORIGINS")))

	router.GET("/health", health.Handler)
	router.GET("/ready", health.ReadyHandler(server.db))
	router.GET("/metrics", metrics.Handler())

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(server))

	{
		v1.GET("/ping", health.PingHandler)
		websocket.RegisterRoutes(v1, server.hub)
		recommendations.RegisterRoutes(v1, server.facade)
		interactions.RegisterRoutes(v1, server.recorder, server.updater, server.catalogRepo, server.hub)
		users.RegisterRoutes(v1, server.aggregator, server.affinityRepo)
		models.RegisterRoutes(v1, server.catalogRepo)
	}
}
