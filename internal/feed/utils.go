package feed

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"slices"
	"strings"

	"codeberg.org/musegrid/server/internal/logger"
)

// GenerateClientID returns a random identifier for a feed connection
func GenerateClientID() (string, error) {
	buf := make([]byte, 16)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

// CheckOrigin validates the websocket Origin header. Everything is allowed
// outside production; in production the origin must be listed in
// ALLOWED_ORIGINS.
func CheckOrigin(r *http.Request) bool {
	if os.Getenv("ENVIRONMENT") != "production" {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		logger.Warn("feed connection with no origin header")
		return false
	}

	allowed := allowedOrigins()
	if len(allowed) == 0 {
		logger.Warn("feed origin rejected, ALLOWED_ORIGINS not configured", "origin", origin)
		return false
	}

	if slices.Contains(allowed, origin) {
		return true
	}

	logger.Warn("feed origin rejected", "origin", origin, "allowed_origins", allowed)

	return false
}

func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
