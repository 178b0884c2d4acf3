package recommendations

import (
	"codeberg.org/musegrid/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, provider Provider) {
	router.GET("/recommendations", auth.OptionalAuthMiddleware(), GetRecommendationsHandler(provider))
}
