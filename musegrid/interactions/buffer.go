package interactions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"codeberg.org/musegrid/server/internal/logger"
	"github.com/redis/go-redis/v9"
)

const keyPendingEvents = "interactions:pending"

// EventBuffer is a Redis-backed write-behind buffer for interaction events.
// Tracking is a side channel of the primary user action, so the fast path
// only touches Redis; the flusher persists to Postgres.
type EventBuffer struct {
	client *redis.Client
}

// creates a new event buffer with a Redis connection
func NewEventBuffer(redisURL string) (*EventBuffer, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return &EventBuffer{client: client}, nil
}

// returns the underlying Redis client for sharing with other components
func (b *EventBuffer) Client() *redis.Client {
	return b.client
}

// closes the Redis connection
func (b *EventBuffer) Close() error {
	return b.client.Close()
}

// appends one interaction to the pending queue
func (b *EventBuffer) Push(ctx context.Context, interaction Interaction) error {
	payload, err := json.Marshal(interaction)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}

	if err := b.client.RPush(ctx, keyPendingEvents, payload).Err(); err != nil {
		return fmt.Errorf("failed to push interaction to redis: %w", err)
	}

	return nil
}

// removes and returns up to max pending interactions, oldest first.
// Entries that fail to decode are dropped with a log line rather than
// wedging the queue.
func (b *EventBuffer) Drain(ctx context.Context, max int) ([]Interaction, error) {
	payloads, err := b.client.LPopCount(ctx, keyPendingEvents, max).Result()

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to drain interactions from redis: %w", err)
	}

	results := make([]Interaction, 0, len(payloads))

	for _, payload := range payloads {
		var interaction Interaction

		if err := json.Unmarshal([]byte(payload), &interaction); err != nil {
			logger.ErrorErr(err, "dropping undecodable buffered interaction")
			continue
		}

		results = append(results, interaction)
	}

	return results, nil
}

// returns the number of pending interactions
func (b *EventBuffer) Len(ctx context.Context) (int64, error) {
	n, err := b.client.LLen(ctx, keyPendingEvents).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read buffer length: %w", err)
	}

	return n, nil
}
