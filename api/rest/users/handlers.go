package users

import (
	"net/http"
	"strconv"

	"codeberg.org/musegrid/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const insightsAffinityLimit = 5

// BehaviorAnalyticsHandler serves GET /users/:id/behavior-analytics
func BehaviorAnalyticsHandler(analyzer Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseUserID(c)
		if err != nil {
			errors.ValidationError(c, "invalid user id", err)
			return
		}

		ctx := c.Request.Context()

		profile, err := analyzer.Profile(ctx, userID)
		if err != nil {
			errors.InternalError(c, "failed to load behavior profile", err)
			return
		}

		patterns, err := analyzer.AnalyzePatterns(ctx, userID)
		if err != nil {
			errors.InternalError(c, "failed to analyze behavior", err)
			return
		}

		c.JSON(http.StatusOK, AnalyticsResponse{
			UserID:   userID,
			Profile:  profile,
			Patterns: patterns,
		})
	}
}

// RecommendationInsightsHandler serves GET /users/:id/recommendation-insights
func RecommendationInsightsHandler(analyzer Analyzer, ranker Ranker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseUserID(c)
		if err != nil {
			errors.ValidationError(c, "invalid user id", err)
			return
		}

		ctx := c.Request.Context()

		profile, err := analyzer.Profile(ctx, userID)
		if err != nil {
			errors.InternalError(c, "failed to load behavior profile", err)
			return
		}

		categories, err := ranker.TopCategories(ctx, userID, insightsAffinityLimit)
		if err != nil {
			errors.InternalError(c, "failed to load category affinities", err)
			return
		}

		providers, err := ranker.TopProviders(ctx, userID, insightsAffinityLimit)
		if err != nil {
			errors.InternalError(c, "failed to load provider affinities", err)
			return
		}

		c.JSON(http.StatusOK, InsightsResponse{
			UserID:        userID,
			Profile:       profile,
			TopCategories: categories,
			TopProviders:  providers,
		})
	}
}

func parseUserID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}

	if id <= 0 {
		return 0, strconv.ErrRange
	}

	return id, nil
}
