package feed

import (
	"encoding/json"
	"time"

	"codeberg.org/musegrid/server/internal/logger"
)

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan Event, 256),
		shutdown:   make(chan struct{}),
	}
}

// starts the hub's main loop
func (h *Hub) Run() {
	h.running = true
	defer func() {
		h.running = false
	}()

	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.Unregister:
			h.unregisterClient(client)

		case event := <-h.Broadcast:
			h.broadcastEvent(event)

		case <-h.shutdown:
			h.closeAllConnections()
			return
		}
	}
}

// Publish enqueues an event without blocking the caller. Under backpressure
// the event is dropped; the feed is best effort.
func (h *Hub) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	select {
	case h.Broadcast <- event:
	default:
		logger.Warn("feed broadcast buffer full, dropping event", "event_type", event.Type)
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	logger.Info("feed client connected", "client_id", client.ID, "clients", len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client.ID]; !exists {
		return
	}

	delete(h.clients, client.ID)
	client.Close()

	logger.Info("feed client disconnected", "client_id", client.ID, "clients", len(h.clients))
}

// sends an event to every connected client, marshaling once. Clients whose
// throttle is exhausted skip the event instead of queueing it.
func (h *Hub) broadcastEvent(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.ErrorErr(err, "failed to marshal feed event", "event_type", event.Type)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, client := range h.clients {
		if !client.limiter.Allow() {
			continue
		}

		if err := client.deliver(payload); err != nil {
			logger.Warn("failed to deliver feed event", "client_id", id, "error", err)
		}
	}
}

// returns the number of connected feed clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

func (h *Hub) Shutdown() {
	if h.running {
		close(h.shutdown)
	}
}

func (h *Hub) closeAllConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	logger.Info("closing all feed connections", "clients", len(h.clients))

	payload, err := json.Marshal(Event{Type: TypeShutdown, OccurredAt: time.Now()})
	if err == nil {
		for _, client := range h.clients {
			client.deliver(payload) //nolint:errcheck,gosec // G104: best effort shutdown notice
		}
	}

	for _, client := range h.clients {
		client.Close()
	}

	h.clients = make(map[string]*Client)
}
