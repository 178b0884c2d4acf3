package feed

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// client connection constants
const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// the feed is server-to-client; inbound frames are pings only
	maxMessageSize = 1024

	sendBufferSize = 64

	// per-client outbound throttle: events beyond this are dropped for that
	// client rather than queued
	eventsPerSecond = 20
	eventBurst      = 40
)

var ErrConnectionClosed = errors.New("connection closed")

// feed event types
const (
	TypeInteraction = "interaction"
	TypeShutdown    = "server_shutdown"
)

// Event is one activity item pushed to every feed subscriber
type Event struct {
	Type            string    `json:"type"`
	UserID          int64     `json:"user_id,omitempty"`
	ModelID         int64     `json:"model_id,omitempty"`
	ModelName       string    `json:"model_name,omitempty"`
	InteractionType string    `json:"interaction_type,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Client is one feed subscriber connection
type Client struct {
	ID string

	conn    *websocket.Conn
	hub     *Hub
	send    chan []byte
	limiter *rate.Limiter

	mu     sync.RWMutex
	closed bool
}

// Hub fans interaction events out to all connected feed clients
type Hub struct {
	clients map[string]*Client

	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan Event

	mu       sync.RWMutex
	running  bool
	shutdown chan struct{}
}
