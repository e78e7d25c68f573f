package components

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/transcript"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// bubbleRatio is the share of the log width a single message may occupy.
const bubbleRatio = 0.8

// Annotator renders extra lines below an entry, or "" for none.
type Annotator func(e transcript.Entry, width int) string

// ChatLog is a scrolling transcript view. Every SetEntries call re-renders
// the log and scrolls to the newest entry.
type ChatLog struct {
	vp       viewport.Model
	annotate Annotator
	entries  []transcript.Entry
	empty    string
}

// NewChatLog creates an empty log. annotate may be nil. emptyHint is shown
// when there are no entries.
func NewChatLog(annotate Annotator, emptyHint string) ChatLog {
	c := ChatLog{
		vp:       viewport.New(viewport.WithWidth(40), viewport.WithHeight(10)),
		annotate: annotate,
		empty:    emptyHint,
	}
	c.refresh()
	return c
}

// SetSize resizes the log, keeping the newest entry in view.
func (c *ChatLog) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if c.vp.Width() == width && c.vp.Height() == height {
		return
	}
	c.vp.SetWidth(width)
	c.vp.SetHeight(height)
	c.refresh()
}

// SetEntries replaces the rendered entries and scrolls to the bottom.
func (c *ChatLog) SetEntries(entries []transcript.Entry) {
	c.entries = entries
	c.refresh()
}

// Update forwards scroll keys and mouse wheel events to the viewport.
func (c ChatLog) Update(msg tea.Msg) (ChatLog, tea.Cmd) {
	var cmd tea.Cmd
	c.vp, cmd = c.vp.Update(msg)
	return c, cmd
}

// View renders the visible part of the log.
func (c ChatLog) View() string {
	return c.vp.View()
}

func (c *ChatLog) refresh() {
	width := c.vp.Width()
	if len(c.entries) == 0 {
		c.vp.SetContent(theme.Hint.Render(c.empty))
		return
	}

	blocks := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		blocks = append(blocks, RenderEntry(e, width, c.annotate))
	}
	c.vp.SetContent(strings.Join(blocks, "\n\n"))
	c.vp.GotoBottom()
}

// RenderEntry renders one transcript entry as a chat bubble: learner turns
// right-aligned, replies left-aligned.
func RenderEntry(e transcript.Entry, width int, annotate Annotator) string {
	maxW := int(float64(width) * bubbleRatio)
	if maxW < 8 {
		maxW = width
	}

	style := theme.AssistantBubble
	align := lipgloss.Left
	if e.Role == transcript.RoleUser {
		style = theme.UserBubble
		align = lipgloss.Right
	}

	bw := lipgloss.Width(e.Text) + style.GetHorizontalFrameSize()
	if bw > maxW {
		bw = maxW
	}
	bubble := style.Width(bw).Render(e.Text)

	block := bubble
	if annotate != nil {
		if extra := annotate(e, maxW); extra != "" {
			block = lipgloss.JoinVertical(lipgloss.Left, bubble, extra)
		}
	}

	return lipgloss.PlaceHorizontal(width, align, block)
}
