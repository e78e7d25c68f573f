// Package workspace is the active-session screen: the conversation pane
// and the assistant sidebar side by side.
package workspace

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/backend"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/screens/assistant"
	"github.com/abhisek/lingo/internal/screens/conversation"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/ui/layout"
)

// Focus identifies which pane receives key presses.
type Focus int

const (
	FocusConversation Focus = iota
	FocusAssistant
)

// Workspace holds both panes for one identity. The panes share nothing but
// the identity and the backend client.
type Workspace struct {
	identity     session.Identity
	conversation *conversation.Pane
	assistant    *assistant.Pane
	focus        Focus
}

var _ screen.Screen = (*Workspace)(nil)
var _ screen.KeyHintProvider = (*Workspace)(nil)
var _ screen.StatusProvider = (*Workspace)(nil)

// New creates the workspace with the conversation pane focused.
func New(identity session.Identity, client backend.Client, logger *slog.Logger) *Workspace {
	return &Workspace{
		identity:     identity,
		conversation: conversation.New(identity, client, logger),
		assistant:    assistant.New(identity, client, logger),
	}
}

func (w *Workspace) Init() tea.Cmd {
	return w.conversation.Focus()
}

func (w *Workspace) Title() string {
	return "Practice"
}

// Status shows who is learning, as whom, and how many replies are still
// outstanding across both panes.
func (w *Workspace) Status() string {
	who := w.identity.Username
	if w.identity.HasRoleplay() {
		who = fmt.Sprintf("%s as %s", w.identity.Username, w.identity.Roleplay)
	}
	if n := w.conversation.Pending() + w.assistant.Pending(); n > 0 {
		who = fmt.Sprintf("⋯ %d waiting · %s", n, who)
	}
	return who + "  "
}

func (w *Workspace) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Switch pane"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *Workspace) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "tab" || msg.String() == "shift+tab" {
			return w, w.toggleFocus()
		}
		return w, w.updateFocused(msg)

	case tea.MouseWheelMsg:
		return w, w.updateFocused(msg)
	}

	// Replies and other async messages are only understood by the pane
	// that issued them; the other ignores them.
	_, c1 := w.conversation.Update(msg)
	_, c2 := w.assistant.Update(msg)
	return w, tea.Batch(c1, c2)
}

func (w *Workspace) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if w.focus == FocusAssistant {
		_, cmd = w.assistant.Update(msg)
	} else {
		_, cmd = w.conversation.Update(msg)
	}
	return cmd
}

func (w *Workspace) toggleFocus() tea.Cmd {
	if w.focus == FocusConversation {
		w.focus = FocusAssistant
		w.conversation.Blur()
		return w.assistant.Focus()
	}
	w.focus = FocusConversation
	w.assistant.Blur()
	return w.conversation.Focus()
}

func (w *Workspace) View(width, height int) string {
	mainWidth, sidebarWidth := layout.SplitWidths(width)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		w.conversation.View(mainWidth, height),
		w.assistant.View(sidebarWidth, height),
	)
}
