// Package chatpane holds the state shared by the conversation and assistant
// panes: a transcript, an input box and a scrolling log.
package chatpane

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/transcript"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// Core owns one pane's transcript. Entries are only appended from the
// owning pane's Update, so no locking is needed even with several requests
// in flight.
type Core struct {
	transcript transcript.Transcript
	input      components.TextInput
	log        components.ChatLog
	seq        int
	pending    int
}

// NewCore creates an empty, unfocused pane core.
func NewCore(placeholder, emptyHint string, annotate components.Annotator) *Core {
	return &Core{
		input: components.NewTextInput("", placeholder, 0),
		log:   components.NewChatLog(annotate, emptyHint),
	}
}

// Submit takes the current input as a learner turn. Blank input is a no-op
// and returns ok=false. Otherwise the user entry is appended, the input is
// cleared and the next request sequence number is returned.
func (c *Core) Submit() (text string, seq int, ok bool) {
	if c.input.IsBlank() {
		return "", 0, false
	}
	text = c.input.Value()
	c.append(transcript.UserEntry(text))
	c.input.Reset()

	c.seq++
	c.pending++
	return text, c.seq, true
}

// Resolve appends the reply (or fallback) entry for a finished request.
// Replies are appended in the order they complete.
func (c *Core) Resolve(e transcript.Entry) {
	if c.pending > 0 {
		c.pending--
	}
	c.append(e)
}

func (c *Core) append(e transcript.Entry) {
	c.transcript.Append(e)
	c.log.SetEntries(c.transcript.Entries())
}

// Entries returns the transcript in display order.
func (c *Core) Entries() []transcript.Entry {
	return c.transcript.Entries()
}

// Pending returns the number of requests still awaiting a reply.
func (c *Core) Pending() int {
	return c.pending
}

// Input exposes the input box.
func (c *Core) Input() *components.TextInput {
	return &c.input
}

// Focus gives the input keyboard focus.
func (c *Core) Focus() tea.Cmd {
	return c.input.Focus()
}

// Blur removes keyboard focus.
func (c *Core) Blur() {
	c.input.Blur()
}

// Focused reports whether the pane has keyboard focus.
func (c *Core) Focused() bool {
	return c.input.Focused()
}

// Forward routes a non-submit message: scroll keys go to the log,
// everything else to the input.
func (c *Core) Forward(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			c.log, cmd = c.log.Update(msg)
			return cmd
		}
	}
	if _, ok := msg.(tea.MouseWheelMsg); ok {
		var cmd tea.Cmd
		c.log, cmd = c.log.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders header (may be empty), log and input box within the given
// size.
func (c *Core) View(header string, width, height int) string {
	box := theme.PaneBlurred
	if c.Focused() {
		box = theme.PaneFocused
	}
	innerWidth := width - box.GetHorizontalFrameSize()
	c.input.SetWidth(innerWidth)
	inputBox := box.Width(width).Render(c.input.View())

	logHeight := height - lipgloss.Height(inputBox)
	if header != "" {
		logHeight -= lipgloss.Height(header)
	}
	c.log.SetSize(width, logHeight)

	parts := make([]string, 0, 3)
	if header != "" {
		parts = append(parts, header)
	}
	parts = append(parts,
		lipgloss.NewStyle().Height(logHeight).Render(c.log.View()),
		inputBox,
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
