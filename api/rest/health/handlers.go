package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: "musegrid",
		Version: "1.0.0",
	})
}

// responds with pong for connectivity checks
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

// ReadyHandler reports whether the database is reachable
func ReadyHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, ReadyResponse{
				Status:   "degraded",
				Database: "unreachable",
			})
			return
		}

		c.JSON(http.StatusOK, ReadyResponse{
			Status:   "ready",
			Database: "ok",
		})
	}
}
