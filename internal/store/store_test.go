package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lingo-test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, requestEventsTable,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, requestEventsTable, name)
}

func TestOpenCreatesColumns(t *testing.T) {
	s := openTestStore(t)

	rows, err := s.db.Query(`SELECT name FROM pragma_table_info(?)`, requestEventsTable)
	require.NoError(t, err)
	defer rows.Close()

	var got []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		got = append(got, name)
	}
	require.NoError(t, rows.Err())
	assert.ElementsMatch(t, requestEventColumns, got)
}

func TestOpenWithQueryDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.db")
	s, err := Open(path + "?_pragma=cache_size(-2000)")
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestAppendAndQueryNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, ep := range []string{"/converse/", "/assist/", "/converse/"} {
		err := repo.AppendRequestEvent(ctx, RequestEventData{
			RunID:      "run-1",
			Pane:       "conversation",
			Seq:        i + 1,
			Endpoint:   ep,
			Username:   "dana",
			StatusCode: 200,
			LatencyMs:  int64(10 * (i + 1)),
			Success:    true,
		})
		require.NoError(t, err)
	}

	events, err := repo.QueryRequestEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, 3, events[0].Seq, "newest event first")
	assert.Equal(t, 1, events[2].Seq)
	assert.Equal(t, "dana", events[0].Username)
	assert.True(t, events[0].Success)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestQueryFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendRequestEvent(ctx, RequestEventData{RunID: "a", Endpoint: "/converse/", Success: true}))
	require.NoError(t, repo.AppendRequestEvent(ctx, RequestEventData{RunID: "a", Endpoint: "/assist/", Success: false, ErrorMessage: "boom"}))
	require.NoError(t, repo.AppendRequestEvent(ctx, RequestEventData{RunID: "b", Endpoint: "/assist/", Success: true}))

	byEndpoint, err := repo.QueryRequestEvents(ctx, QueryOpts{Endpoint: "/assist/"})
	require.NoError(t, err)
	assert.Len(t, byEndpoint, 2)

	byRun, err := repo.QueryRequestEvents(ctx, QueryOpts{RunID: "a", Endpoint: "/assist/"})
	require.NoError(t, err)
	require.Len(t, byRun, 1)
	assert.Equal(t, "boom", byRun[0].ErrorMessage)

	limited, err := repo.QueryRequestEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "b", limited[0].RunID)
}

func TestRequestStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []RequestEventData{
		{Endpoint: "/assist/", Success: true, LatencyMs: 100},
		{Endpoint: "/assist/", Success: false, LatencyMs: 300},
		{Endpoint: "/converse/", Success: true, LatencyMs: 50},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendRequestEvent(ctx, e))
	}

	stats, err := repo.RequestStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "/assist/", stats[0].Endpoint)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 1, stats[0].Succeeded)
	assert.InDelta(t, 200.0, stats[0].AvgLatencyMs, 0.001)
	assert.InDelta(t, 0.5, stats[0].SuccessRate(), 0.001)

	assert.Equal(t, "/converse/", stats[1].Endpoint)
	assert.InDelta(t, 1.0, stats[1].SuccessRate(), 0.001)
}

func TestRequestStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.EventRepo().RequestStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-test")
	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-test", "lingo"), dir)
}
