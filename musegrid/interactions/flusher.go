package interactions

import (
	"context"
	"sync"
	"time"

	"codeberg.org/musegrid/server/internal/logger"
)

const flushBatchSize = 500

// handles periodic flushing of buffered interactions from Redis to Postgres
type Flusher struct {
	buffer   *EventBuffer
	repo     *Repository
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// creates a new flusher that periodically persists buffered interactions
func NewFlusher(buffer *EventBuffer, repo *Repository, interval time.Duration) *Flusher {
	return &Flusher{
		buffer:   buffer,
		repo:     repo,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// begins the background flush loop
func (f *Flusher) Start() {
	f.wg.Add(1)
	go f.run()
	logger.Info("interaction flusher started", "interval", f.interval.String())
}

// gracefully stops the flusher and flushes any remaining events
func (f *Flusher) Stop() {
	close(f.stopCh)
	f.wg.Wait()
	logger.Info("interaction flusher stopped")
}

func (f *Flusher) run() {
	defer f.wg.Done()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			f.flush()
		case <-f.stopCh:
			logger.Info("flushing remaining interactions before shutdown")
			f.flush()
			return
		}
	}
}

func (f *Flusher) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for {
		batch, err := f.buffer.Drain(ctx, flushBatchSize)
		if err != nil {
			logger.ErrorErr(err, "failed to drain interaction buffer")
			return
		}

		if len(batch) == 0 {
			return
		}

		if err := f.repo.InsertBatch(ctx, batch); err != nil {
			// best-effort: events in this batch are lost, per the tracking
			// contract (no retries, log and continue)
			logger.ErrorErr(err, "failed to persist interaction batch", "count", len(batch))
			return
		}

		logger.Debug("flushed interactions", "count", len(batch))

		if len(batch) < flushBatchSize {
			return
		}
	}
}
