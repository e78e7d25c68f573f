package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int    // max results (0 = unlimited)
	Endpoint string // exact endpoint match, empty = all
	RunID    string // restrict to one client run, empty = all
}

// RequestEventData captures a single outbound backend request.
type RequestEventData struct {
	RunID        string
	Pane         string
	Seq          int
	Endpoint     string
	Username     string
	StatusCode   int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestEvent is a stored RequestEventData with its identity and time.
type RequestEvent struct {
	ID        int
	Timestamp time.Time
	RequestEventData
}

// EndpointStats aggregates request outcomes for one endpoint.
type EndpointStats struct {
	Endpoint     string
	Total        int
	Succeeded    int
	AvgLatencyMs float64
}

// SuccessRate returns the fraction of successful requests.
func (s EndpointStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total)
}

// EventRepo provides append and query access to request events.
type EventRepo interface {
	// AppendRequestEvent records one backend call.
	AppendRequestEvent(ctx context.Context, data RequestEventData) error

	// QueryRequestEvents returns events newest first.
	QueryRequestEvents(ctx context.Context, opts QueryOpts) ([]RequestEvent, error)

	// RequestStats aggregates events per endpoint.
	RequestStats(ctx context.Context) ([]EndpointStats, error)
}
