package recommendations

import (
	"net/http"
	"strconv"
	"strings"

	"codeberg.org/musegrid/server/internal/auth"
	"codeberg.org/musegrid/server/internal/errors"
	"codeberg.org/musegrid/server/musegrid/recommend"
	"github.com/gin-gonic/gin"
)

// GetRecommendationsHandler serves GET /recommendations. The user id comes
// from the token when present, otherwise from the userId query parameter.
func GetRecommendationsHandler(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authenticated := auth.GetUserID(c)
		if !authenticated {
			parsed, err := strconv.ParseInt(c.Query("userId"), 10, 64)
			if err != nil || parsed <= 0 {
				errors.ValidationError(c, "invalid userId", err)
				return
			}

			userID = parsed
		}

		query := recommend.Query{
			UserID:          userID,
			CurrentCategory: c.Query("currentCategory"),
		}

		if raw, ok := c.GetQuery("limit"); ok {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit <= 0 {
				errors.ValidationError(c, "invalid limit", err)
				return
			}

			query.Limit = limit
		}

		if raw, ok := c.GetQuery("sessionDuration"); ok {
			duration, err := strconv.Atoi(raw)
			if err != nil || duration < 0 {
				errors.ValidationError(c, "invalid sessionDuration", err)
				return
			}

			query.SessionDuration = duration
		}

		excludeIDs, err := parseExcludeIDs(c.Query("excludeIds"))
		if err != nil {
			errors.ValidationError(c, "invalid excludeIds", err)
			return
		}

		query.ExcludeIDs = excludeIDs

		c.JSON(http.StatusOK, provider.Personalized(c.Request.Context(), query))
	}
}

// parses the comma-separated excludeIds query parameter
func parseExcludeIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}
