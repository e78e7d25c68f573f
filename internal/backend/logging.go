package backend

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/abhisek/lingo/internal/store"
)

// LoggingClient is a decorator that records every backend request as an
// event and writes it to the diagnostic log.
type LoggingClient struct {
	inner     Client
	eventRepo store.EventRepo
	runID     string
	logger    *slog.Logger
}

// WithLogging wraps a Client with event logging. runID groups the events of
// one client run. repo may be nil, in which case only the slog line is
// written.
func WithLogging(c Client, repo store.EventRepo, runID string, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingClient{inner: c, eventRepo: repo, runID: runID, logger: logger}
}

func (l *LoggingClient) Converse(ctx context.Context, req ConverseRequest) (*ConverseReply, error) {
	start := time.Now()
	reply, err := l.inner.Converse(ctx, req)
	l.record(ctx, EndpointConverse, req.Username, start, err)
	return reply, err
}

func (l *LoggingClient) Assist(ctx context.Context, req AssistRequest) (*AssistReply, error) {
	start := time.Now()
	reply, err := l.inner.Assist(ctx, req)
	l.record(ctx, EndpointAssist, req.Username, start, err)
	return reply, err
}

func (l *LoggingClient) Progress(ctx context.Context, username string) (*Progress, error) {
	start := time.Now()
	reply, err := l.inner.Progress(ctx, username)
	l.record(ctx, "/user/"+url.PathEscape(username)+"/progress", username, start, err)
	return reply, err
}

func (l *LoggingClient) BaseURL() string {
	return l.inner.BaseURL()
}

func (l *LoggingClient) record(ctx context.Context, endpoint, username string, start time.Time, err error) {
	tag := TagFrom(ctx)
	data := store.RequestEventData{
		RunID:     l.runID,
		Pane:      tag.Pane,
		Seq:       tag.Seq,
		Endpoint:  endpoint,
		Username:  username,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.StatusCode = StatusOf(err)
		data.ErrorMessage = err.Error()
	}

	l.logger.Debug("backend request",
		"endpoint", endpoint,
		"pane", data.Pane,
		"seq", data.Seq,
		"latency_ms", data.LatencyMs,
		"success", data.Success,
	)

	if l.eventRepo == nil {
		return
	}
	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendRequestEvent(ctx, data); logErr != nil {
		l.logger.Warn("failed to record request event", "err", logErr)
	}
}
