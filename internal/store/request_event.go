package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on top of SQL built with ent's dialect builder.
type eventRepo struct {
	db *sql.DB
}

var requestEventColumns = []string{
	"id", "created_at_ms", "run_id", "pane", "seq", "endpoint",
	"username", "status_code", "latency_ms", "success", "error_message",
}

func (r *eventRepo) AppendRequestEvent(ctx context.Context, data RequestEventData) error {
	query, args := builder().Insert(requestEventsTable).
		Columns(
			"created_at_ms", "run_id", "pane", "seq", "endpoint",
			"username", "status_code", "latency_ms", "success", "error_message",
		).
		Values(
			time.Now().UnixMilli(), data.RunID, data.Pane, data.Seq, data.Endpoint,
			data.Username, data.StatusCode, data.LatencyMs, data.Success, data.ErrorMessage,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRequestEvents(ctx context.Context, opts QueryOpts) ([]RequestEvent, error) {
	sel := builder().Select(requestEventColumns...).
		From(entsql.Table(requestEventsTable))

	var preds []*entsql.Predicate
	if opts.Endpoint != "" {
		preds = append(preds, entsql.EQ("endpoint", opts.Endpoint))
	}
	if opts.RunID != "" {
		preds = append(preds, entsql.EQ("run_id", opts.RunID))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("id"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query request events: %w", err)
	}
	defer rows.Close()

	var events []RequestEvent
	for rows.Next() {
		var (
			e         RequestEvent
			createdMs int64
		)
		if err := rows.Scan(
			&e.ID, &createdMs, &e.RunID, &e.Pane, &e.Seq, &e.Endpoint,
			&e.Username, &e.StatusCode, &e.LatencyMs, &e.Success, &e.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan request event: %w", err)
		}
		e.Timestamp = time.UnixMilli(createdMs)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) RequestStats(ctx context.Context) ([]EndpointStats, error) {
	query, args := builder().Select(
		"endpoint",
		entsql.As(entsql.Count("*"), "total"),
		entsql.As(entsql.Sum("success"), "succeeded"),
		entsql.As(entsql.Avg("latency_ms"), "avg_latency"),
	).
		From(entsql.Table(requestEventsTable)).
		GroupBy("endpoint").
		OrderBy("endpoint").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query request stats: %w", err)
	}
	defer rows.Close()

	var stats []EndpointStats
	for rows.Next() {
		var s EndpointStats
		if err := rows.Scan(&s.Endpoint, &s.Total, &s.Succeeded, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan request stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request stats: %w", err)
	}
	return stats, nil
}
