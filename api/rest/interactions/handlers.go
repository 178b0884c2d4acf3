package interactions

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"codeberg.org/musegrid/server/internal/auth"
	"codeberg.org/musegrid/server/internal/errors"
	"codeberg.org/musegrid/server/internal/feed"
	"codeberg.org/musegrid/server/internal/logger"
	"codeberg.org/musegrid/server/musegrid/interactions"
	"github.com/gin-gonic/gin"
)

// time allowed for the affinity side channel after the response is sent
const sideChannelTimeout = 5 * time.Second

// TrackHandler records one interaction event. Affinity updates and the live
// feed happen after the response: their failure must never fail tracking.
func TrackHandler(recorder Recorder, updater Applier, models ModelSource, hub Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TrackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		// a valid token pins the user id regardless of the body
		if userID, authenticated := auth.GetUserID(c); authenticated {
			req.UserID = userID
		}

		params := interactions.RecordParams{
			UserID:          req.UserID,
			ModelID:         req.ModelID,
			Type:            interactions.InteractionType(req.InteractionType),
			EngagementLevel: req.EngagementLevel,
			SessionDuration: req.SessionDuration,
			DeviceType:      req.DeviceType,
			ReferralSource:  req.ReferralSource,
		}

		id, err := recorder.Record(c.Request.Context(), params)
		if err != nil {
			var verr *interactions.ValidationError
			if stderrors.As(err, &verr) {
				errors.ValidationError(c, fmt.Sprintf("invalid %s", verr.Field), err)
				return
			}

			errors.InternalError(c, "failed to record interaction", err)
			return
		}

		go applySideEffects(updater, models, hub, params)

		c.JSON(http.StatusCreated, TrackResponse{
			Success:       true,
			InteractionID: id,
		})
	}
}

// runs the affinity update and feed publish off the request path
func applySideEffects(updater Applier, models ModelSource, hub Publisher, params interactions.RecordParams) {
	ctx, cancel := context.WithTimeout(context.Background(), sideChannelTimeout)
	defer cancel()

	model, err := models.GetByID(ctx, params.ModelID)
	if err != nil {
		logger.ErrorErr(err, "failed to load model for affinity update",
			"model_id", params.ModelID,
			"user_id", params.UserID,
		)
		return
	}

	interaction := interactions.Interaction{
		UserID:          params.UserID,
		ModelID:         params.ModelID,
		Type:            params.Type,
		EngagementLevel: params.EngagementLevel,
	}
	if interaction.EngagementLevel == 0 {
		interaction.EngagementLevel = interactions.DefaultEngagement
	}

	if err := updater.Apply(ctx, interaction, model); err != nil {
		logger.ErrorErr(err, "failed to apply affinity update",
			"model_id", params.ModelID,
			"user_id", params.UserID,
		)
	}

	hub.Publish(feed.Event{
		Type:            feed.TypeInteraction,
		UserID:          params.UserID,
		ModelID:         model.ID,
		ModelName:       model.Name,
		InteractionType: string(params.Type),
	})
}
