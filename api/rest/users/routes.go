package users

import (
	"codeberg.org/musegrid/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, analyzer Analyzer, ranker Ranker) {
	usersGroup := router.Group("/users")
	usersGroup.Use(auth.AuthMiddleware())
	{
		usersGroup.GET("/:id/behavior-analytics", BehaviorAnalyticsHandler(analyzer))
		usersGroup.GET("/:id/recommendation-insights", RecommendationInsightsHandler(analyzer, ranker))
	}
}
