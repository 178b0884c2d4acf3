package health

import "context"

// Response represents the health check response
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

// PingResponse for connectivity checks
type PingResponse struct {
	Message string `json:"message"`
}

// ReadyResponse reports dependency reachability
type ReadyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Pinger checks a dependency's reachability
type Pinger interface {
	Ping(ctx context.Context) error
}
