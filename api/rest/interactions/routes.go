package interactions

import (
	"codeberg.org/musegrid/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, recorder Recorder, updater Applier, models ModelSource, hub Publisher) {
	// anonymous tracking is allowed; a valid token pins the user id
	router.POST("/interactions/track", auth.OptionalAuthMiddleware(), TrackHandler(recorder, updater, models, hub))
}
