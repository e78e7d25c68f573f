package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/app"
	"github.com/abhisek/lingo/internal/backend"
	"github.com/abhisek/lingo/internal/config"
	"github.com/abhisek/lingo/internal/store"
)

// runApp loads configuration, opens the diagnostic log and event store,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := store.EnsureDir(cfg.LogPath); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogPath, "lingo")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	runID := uuid.NewString()
	logger = logger.With("run", runID)

	repo, closeRepo := openEventRepo(cfg, os.Stderr)
	defer closeRepo()

	logger.Info("starting", "backend", cfg.BackendURL, "record_events", repo != nil)

	client := backend.WithLogging(backend.New(cfg.BackendURL, nil), repo, runID, logger)
	return app.Run(app.Options{
		Client: client,
		Logger: logger,
	})
}

// openEventRepo opens the request-event store when recording is enabled. A
// store that fails to open is reported on w and recording is skipped; the
// returned close func is always safe to call.
func openEventRepo(cfg config.Config, w io.Writer) (store.EventRepo, func()) {
	noop := func() {}
	if !cfg.RecordEvents {
		return nil, noop
	}
	st, err := openStore(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(w, "Request log unavailable:", err)
		fmt.Fprintln(w, "Requests won't be recorded.")
		return nil, noop
	}
	return st.EventRepo(), func() { st.Close() }
}

// openStore opens the request-event database, creating its directory.
func openStore(dbPath string) (*store.Store, error) {
	if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
