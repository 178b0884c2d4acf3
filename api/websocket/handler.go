package websocket

import (
	"codeberg.org/musegrid/server/internal/errors"
	"codeberg.org/musegrid/server/internal/feed"
	"codeberg.org/musegrid/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     feed.CheckOrigin,
}

// FeedHandler upgrades the connection and subscribes it to the live activity
// feed. The feed is read-only for clients and requires no authentication.
func FeedHandler(hub *feed.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := feed.GenerateClientID()
		if err != nil {
			errors.InternalError(c, "failed to generate client ID", err)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.ErrorErr(err, "failed to upgrade feed connection", "ip", c.ClientIP())
			return
		}

		client := feed.NewClient(clientID, conn, hub)
		hub.Register <- client

		go client.WritePump()
		go client.ReadPump()

		logger.Info("feed connection established", "client_id", clientID, "ip", c.ClientIP())
	}
}
