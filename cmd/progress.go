package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingo/internal/backend"
)

var progressCmd = &cobra.Command{
	Use:   "progress <username>",
	Short: "Show a learner's vocabulary progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		repo, closeRepo := openEventRepo(cfg, cmd.ErrOrStderr())
		defer closeRepo()

		client := backend.WithLogging(backend.New(cfg.BackendURL, nil), repo, uuid.NewString(), nil)
		p, err := client.Progress(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch progress from %s: %w", client.BaseURL(), err)
		}

		printProgress(args[0], p)
		return nil
	},
}

func printProgress(username string, p *backend.Progress) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	bold.Printf("Progress for %s\n", username)
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("Total words:      %d\n", p.Stats.TotalWords)
	fmt.Printf("Mastered:         %s\n", green.Sprint(p.Stats.MasteredWords))
	fmt.Printf("Reinforcing:      %s\n", yellow.Sprint(p.Stats.ReinforcementWords))
	fmt.Printf("Position:         %d\n", p.Stats.CurrentPosition)
	fmt.Printf("Completion:       %.1f%%\n", p.Stats.CompletionPercentage)

	printWordList(green, "Mastered", p.WordStatus.Mastered)
	printWordList(yellow, "Needs reinforcement", p.WordStatus.NeedsReinforcement)
	printWordList(cyan, "New", p.WordStatus.New)
}

func printWordList(c *color.Color, title string, words []string) {
	fmt.Println()
	c.Printf("%s (%d)\n", title, len(words))
	if len(words) == 0 {
		fmt.Println("  (none)")
		return
	}
	fmt.Println("  " + strings.Join(words, ", "))
}
