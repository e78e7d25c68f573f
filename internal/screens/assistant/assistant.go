// Package assistant implements the sidebar pane for vocabulary and grammar
// questions. Replies may carry per-word mastery scores computed by the
// backend; the pane only displays them.
package assistant

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/backend"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/screens/chatpane"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/transcript"
	"github.com/abhisek/lingo/internal/ui/layout"
)

// PaneName tags requests issued by this pane.
const PaneName = "assistant"

// FallbackReply replaces the reply when a request fails for any reason.
const FallbackReply = "Sorry, there was an error processing your question."

// Pane is the assistant pane.
type Pane struct {
	identity session.Identity
	client   backend.Client
	logger   *slog.Logger
	core     *chatpane.Core
}

var _ screen.Screen = (*Pane)(nil)
var _ screen.KeyHintProvider = (*Pane)(nil)

// New creates an assistant pane scoped to identity.
func New(identity session.Identity, client backend.Client, logger *slog.Logger) *Pane {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pane{
		identity: identity,
		client:   client,
		logger:   logger.With("pane", PaneName),
		core:     chatpane.NewCore("Ask about Hebrew...", "Ask what a word means or how to say something.", renderWords),
	}
}

func (p *Pane) Init() tea.Cmd {
	return nil
}

func (p *Pane) Title() string {
	return "Hebrew Assistant"
}

func (p *Pane) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
	}
}

// Focus gives the pane keyboard focus.
func (p *Pane) Focus() tea.Cmd {
	return p.core.Focus()
}

// Blur removes keyboard focus.
func (p *Pane) Blur() {
	p.core.Blur()
}

// Entries returns the transcript in display order.
func (p *Pane) Entries() []transcript.Entry {
	return p.core.Entries()
}

// Pending returns the number of unanswered requests.
func (p *Pane) Pending() int {
	return p.core.Pending()
}

func (p *Pane) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		p.handleReply(msg)
		return p, nil

	case tea.KeyPressMsg:
		if !p.core.Focused() {
			return p, nil
		}
		if msg.String() == "enter" {
			return p, p.submit()
		}
	}

	return p, p.core.Forward(msg)
}

func (p *Pane) View(width, height int) string {
	return p.core.View(renderHeader(width), width, height)
}

func (p *Pane) submit() tea.Cmd {
	text, seq, ok := p.core.Submit()
	if !ok {
		return nil
	}

	client := p.client
	req := backend.AssistRequest{
		Query:    text,
		Username: p.identity.Username,
	}
	return func() tea.Msg {
		ctx := backend.WithTag(context.Background(), backend.Tag{Pane: PaneName, Seq: seq})
		reply, err := client.Assist(ctx, req)
		return replyMsg{Seq: seq, Reply: reply, Err: err}
	}
}

func (p *Pane) handleReply(msg replyMsg) {
	if msg.Err != nil || msg.Reply == nil {
		p.logger.Error("assistant request failed", "seq", msg.Seq, "err", msg.Err)
		p.core.Resolve(transcript.AssistantEntry(FallbackReply))
		return
	}

	p.core.Resolve(transcript.Entry{
		Role:          transcript.RoleAssistant,
		Text:          msg.Reply.Response,
		WordsAffected: msg.Reply.WordsAffected,
		Mastery:       msg.Reply.UpdatedMastery,
	})
}
