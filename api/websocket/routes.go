package websocket

import (
	"codeberg.org/musegrid/server/internal/feed"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, hub *feed.Hub) {
	router.GET("/feed/live", FeedHandler(hub))
}
