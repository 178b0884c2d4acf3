package main

import (
	"strings"
	"time"

	"codeberg.org/musegrid/server/internal/config"
	"codeberg.org/musegrid/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// builds the CORS middleware: open in development, restricted to
// ALLOWED_ORIGINS in production
func CORSMiddleware(cfg *config.Config, allowedOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	if !cfg.IsProduction() {
		corsConfig.AllowAllOrigins = true
		return cors.New(corsConfig)
	}

	origins := make([]string, 0)
	for _, origin := range strings.Split(allowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	if len(origins) == 0 {
		logger.Warn("ALLOWED_ORIGINS not configured, cross-origin requests will be rejected")
	}

	corsConfig.AllowOrigins = origins

	return cors.New(corsConfig)
}

// builds the per-IP API rate limiter, Redis-backed when available so limits
// hold across instances
func RateLimitMiddleware(server *Server) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  int64(config.EnvInt("RATE_LIMIT_PER_MINUTE", 240)),
	}

	var store limiter.Store

	if server.buffer != nil {
		redisStore, err := redisstore.NewStoreWithOptions(server.buffer.Client(), limiter.StoreOptions{
			Prefix: "musegrid:ratelimit",
		})
		if err != nil {
			logger.ErrorErr(err, "failed to create redis rate limit store, using in-memory store")
			store = memorystore.NewStore()
		} else {
			store = redisStore
		}
	} else {
		store = memorystore.NewStore()
	}

	return mgin.NewMiddleware(limiter.New(store, rate))
}
