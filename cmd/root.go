package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lingo",
	Short: "Terminal chat client for practicing Hebrew",
	Long:  "Lingo — chat with a Hebrew conversation partner and ask a vocabulary assistant, with per-word mastery tracked by the backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("backend", "", "Backend origin (overrides LINGO_BACKEND_URL, default http://localhost:8000)")
	rootCmd.PersistentFlags().String("db", "", "Path to the request-event SQLite database (overrides LINGO_DB env var)")
	rootCmd.PersistentFlags().String("log", "", "Path to the diagnostic log file (overrides LINGO_LOG env var)")

	rootCmd.AddCommand(requestsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings with flags taking priority over LINGO_*
// environment variables and defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var o config.Overrides
	o.BackendURL, _ = cmd.Flags().GetString("backend")
	o.DBPath, _ = cmd.Flags().GetString("db")
	o.LogPath, _ = cmd.Flags().GetString("log")
	return config.Load(o)
}
