package assistant

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/transcript"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// renderHeader renders the sidebar title block.
func renderHeader(width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Hebrew Assistant")
	sub := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Ask questions about Hebrew language")
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border).
		Render(title + "\n" + sub)
}

// renderWords lists the detected vocabulary with its mastery score. Words
// missing from the mastery map show 0%.
func renderWords(e transcript.Entry, width int) string {
	if !e.HasWords() {
		return ""
	}

	lines := []string{"Words detected:"}
	for _, word := range e.WordsAffected {
		lines = append(lines, renderWordLine(e, word, width))
	}
	return theme.WordsBox.Render(strings.Join(lines, "\n"))
}

func renderWordLine(e transcript.Entry, word string, width int) string {
	label := fmt.Sprintf("Mastery: %d%%", e.MasteryPercent(word))
	w := lipgloss.NewStyle().Foreground(theme.Text).Render(word)

	gap := width - lipgloss.Width(w) - lipgloss.Width(label) - 2
	if gap < 1 {
		gap = 1
	}
	line := w + strings.Repeat(" ", gap) + label

	barWidth := width - 2
	if barWidth > 24 {
		barWidth = 24
	}
	bar := components.NewProgressBar("", e.MasteryOf(word), false, barWidth).View()
	return line + "\n" + bar
}
