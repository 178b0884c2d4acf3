package models

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"codeberg.org/musegrid/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// FeaturedModelsHandler serves the curated featured list
func FeaturedModelsHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := catalog.Featured(c.Request.Context(), listLimit(c))
		if err != nil {
			errors.InternalError(c, "failed to list featured models", err)
			return
		}

		c.JSON(http.StatusOK, ModelsListResponse{Models: list})
	}
}

// TrendingModelsHandler serves the most-interacted models in a recent window
func TrendingModelsHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		window, ok := trendingWindows[c.DefaultQuery("window", "24h")]
		if !ok {
			errors.ValidationError(c, "invalid window, use 1h, 24h, 7d or 30d", nil)
			return
		}

		list, err := catalog.Trending(c.Request.Context(), window, listLimit(c))
		if err != nil {
			errors.InternalError(c, "failed to list trending models", err)
			return
		}

		c.JSON(http.StatusOK, ModelsListResponse{Models: list})
	}
}

// GetModelHandler serves a single model by id
func GetModelHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseModelID(c)
		if err != nil {
			errors.ValidationError(c, "invalid model id", err)
			return
		}

		model, err := catalog.GetByID(c.Request.Context(), id)
		if err != nil {
			if stderrors.Is(err, pgx.ErrNoRows) {
				errors.NotFound(c, "model")
				return
			}

			errors.InternalError(c, "failed to load model", err)
			return
		}

		c.JSON(http.StatusOK, model)
	}
}

// SimilarModelsHandler serves the embedding-nearest models to a given model
func SimilarModelsHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseModelID(c)
		if err != nil {
			errors.ValidationError(c, "invalid model id", err)
			return
		}

		list, err := catalog.Similar(c.Request.Context(), id, listLimit(c))
		if err != nil {
			if stderrors.Is(err, pgx.ErrNoRows) {
				errors.NotFound(c, "model")
				return
			}

			errors.InternalError(c, "failed to find similar models", err)
			return
		}

		c.JSON(http.StatusOK, SimilarListResponse{Models: list})
	}
}

func parseModelID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}

	if id <= 0 {
		return 0, strconv.ErrRange
	}

	return id, nil
}

func listLimit(c *gin.Context) int {
	raw, ok := c.GetQuery("limit")
	if !ok {
		return defaultListLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxListLimit {
		return defaultListLimit
	}

	return limit
}
