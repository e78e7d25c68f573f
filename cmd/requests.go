package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/store"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "Inspect recorded backend requests",
}

var requestsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent backend requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		endpoint, _ := cmd.Flags().GetString("endpoint")
		run, _ := cmd.Flags().GetString("run")

		s, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		events, err := s.EventRepo().QueryRequestEvents(ctx, store.QueryOpts{
			Limit:    limit,
			Endpoint: endpoint,
			RunID:    run,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No requests recorded.")
			return nil
		}

		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)

		fmt.Printf("%-5s  %-19s  %-8s  %-13s  %-4s  %-16s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Run", "Pane", "Seq", "Endpoint", "Status", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			ok := green.Sprint("✓")
			if !e.Success {
				ok = red.Sprint("✗")
			}
			status := "-"
			if e.StatusCode != 0 {
				status = fmt.Sprint(e.StatusCode)
			}
			fmt.Printf("%-5d  %-19s  %-8s  %-13s  %-4d  %-16s  %-6s  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				shortRun(e.RunID),
				e.Pane,
				e.Seq,
				e.Endpoint,
				status,
				e.LatencyMs,
				ok,
			)
			if e.ErrorMessage != "" {
				red.Printf("       %s\n", e.ErrorMessage)
			}
		}
		return nil
	},
}

var requestsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show request counts, success rate and latency per endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().RequestStats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No requests recorded.")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("%-16s  %7s  %7s  %8s  %10s\n", "Endpoint", "Total", "OK", "Rate", "Avg ms")
		fmt.Println(strings.Repeat("─", 56))

		var total, succeeded int
		for _, st := range stats {
			total += st.Total
			succeeded += st.Succeeded
			fmt.Printf("%-16s  %7d  %7d  %s  %10.0f\n",
				st.Endpoint, st.Total, st.Succeeded, rateColor(st.SuccessRate()), st.AvgLatencyMs)
		}

		fmt.Println(strings.Repeat("─", 56))
		all := store.EndpointStats{Total: total, Succeeded: succeeded}
		fmt.Printf("%-16s  %7d  %7d  %s\n", "TOTAL", total, succeeded, rateColor(all.SuccessRate()))
		return nil
	},
}

func init() {
	requestsListCmd.Flags().Int("limit", 20, "Maximum number of requests to show")
	requestsListCmd.Flags().String("endpoint", "", "Only show this endpoint (e.g. /converse/)")
	requestsListCmd.Flags().String("run", "", "Only show requests from this run ID")

	requestsCmd.AddCommand(requestsListCmd)
	requestsCmd.AddCommand(requestsStatsCmd)
}

// openStoreFromFlags opens the event store at the configured path.
func openStoreFromFlags(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return openStore(cfg.DBPath)
}

func shortRun(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func rateColor(rate float64) string {
	s := fmt.Sprintf("%7.1f%%", rate*100)
	switch {
	case rate >= 0.95:
		return color.GreenString(s)
	case rate >= 0.5:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}
