package models

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, catalog Catalog) {
	modelsGroup := router.Group("/models")
	{
		modelsGroup.GET("/featured", FeaturedModelsHandler(catalog))
		modelsGroup.GET("/trending", TrendingModelsHandler(catalog))
		modelsGroup.GET("/:id", GetModelHandler(catalog))
		modelsGroup.GET("/:id/similar", SimilarModelsHandler(catalog))
	}
}
