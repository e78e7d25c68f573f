package conversation

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/backend"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/transcript"
)

// fakeClient answers /converse/ with a canned reply and records requests.
type fakeClient struct {
	mu       sync.Mutex
	requests []backend.ConverseRequest
	tags     []backend.Tag
	reply    func(req backend.ConverseRequest) (*backend.ConverseReply, error)
}

func (f *fakeClient) Converse(ctx context.Context, req backend.ConverseRequest) (*backend.ConverseReply, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.tags = append(f.tags, backend.TagFrom(ctx))
	f.mu.Unlock()
	if f.reply == nil {
		return &backend.ConverseReply{Response: "echo: " + req.UserMessage}, nil
	}
	return f.reply(req)
}

func (f *fakeClient) Assist(context.Context, backend.AssistRequest) (*backend.AssistReply, error) {
	return nil, errors.New("not used")
}

func (f *fakeClient) Progress(context.Context, string) (*backend.Progress, error) {
	return nil, errors.New("not used")
}

func (f *fakeClient) BaseURL() string { return "http://fake" }

func newTestPane(t *testing.T, roleplay string, client *fakeClient) *Pane {
	t.Helper()
	id, ok := session.NewIdentity("dana", roleplay)
	if !ok {
		t.Fatal("identity should be valid")
	}
	p := New(id, client, nil)
	p.Focus()
	return p
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// typeAndSubmit sets the input and presses Enter, returning the send command.
func typeAndSubmit(p *Pane, text string) tea.Cmd {
	p.core.Input().SetValue(text)
	_, cmd := p.Update(enter())
	return cmd
}

func TestBlankInputIsNoOp(t *testing.T) {
	client := &fakeClient{}
	p := newTestPane(t, "", client)

	for _, text := range []string{"", "   ", "\t"} {
		if cmd := typeAndSubmit(p, text); cmd != nil {
			t.Errorf("blank input %q should not produce a command", text)
		}
	}
	if len(p.Entries()) != 0 {
		t.Errorf("expected empty transcript, got %d entries", len(p.Entries()))
	}
	if p.Pending() != 0 {
		t.Errorf("expected no pending requests, got %d", p.Pending())
	}
}

func TestSubmitAppendsUserThenReply(t *testing.T) {
	client := &fakeClient{reply: func(backend.ConverseRequest) (*backend.ConverseReply, error) {
		return &backend.ConverseReply{Response: "hi"}, nil
	}}
	p := newTestPane(t, "", client)

	cmd := typeAndSubmit(p, "hello")
	if cmd == nil {
		t.Fatal("expected a send command")
	}

	entries := p.Entries()
	if len(entries) != 1 || entries[0].Role != transcript.RoleUser || entries[0].Text != "hello" {
		t.Fatalf("expected user entry 'hello', got %+v", entries)
	}
	if p.core.Input().Value() != "" {
		t.Errorf("input should be cleared after submit, got %q", p.core.Input().Value())
	}
	if p.Pending() != 1 {
		t.Errorf("expected 1 pending request, got %d", p.Pending())
	}

	p.Update(cmd())

	entries = p.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Role != transcript.RoleAssistant || entries[1].Text != "hi" {
		t.Errorf("expected assistant entry 'hi', got %+v", entries[1])
	}
	if p.Pending() != 0 {
		t.Errorf("expected no pending requests, got %d", p.Pending())
	}
}

func TestRequestCarriesIdentity(t *testing.T) {
	client := &fakeClient{}
	p := newTestPane(t, "Harry Potter", client)

	typeAndSubmit(p, "shalom")()

	if len(client.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(client.requests))
	}
	req := client.requests[0]
	if req.Username != "dana" || req.UserMessage != "shalom" {
		t.Errorf("unexpected request %+v", req)
	}
	if req.RolePlay == nil || *req.RolePlay != "Harry Potter" {
		t.Errorf("expected role_play 'Harry Potter', got %v", req.RolePlay)
	}
	if client.tags[0].Pane != PaneName || client.tags[0].Seq != 1 {
		t.Errorf("unexpected tag %+v", client.tags[0])
	}
}

func TestRequestWithoutRoleplaySendsNil(t *testing.T) {
	client := &fakeClient{}
	p := newTestPane(t, "", client)

	typeAndSubmit(p, "shalom")()

	if client.requests[0].RolePlay != nil {
		t.Errorf("expected nil role_play, got %q", *client.requests[0].RolePlay)
	}
}

func TestFailureAppendsSingleFallback(t *testing.T) {
	client := &fakeClient{reply: func(backend.ConverseRequest) (*backend.ConverseReply, error) {
		return nil, &backend.ErrRequestFailed{Endpoint: backend.EndpointConverse, StatusCode: 500}
	}}
	p := newTestPane(t, "", client)

	p.Update(typeAndSubmit(p, "hello")())

	entries := p.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Role != transcript.RoleAssistant || entries[1].Text != FallbackReply {
		t.Errorf("expected fallback entry, got %+v", entries[1])
	}
}

func TestSequentialTurnsAlternate(t *testing.T) {
	client := &fakeClient{}
	p := newTestPane(t, "", client)

	const turns = 4
	for i := 0; i < turns; i++ {
		p.Update(typeAndSubmit(p, "turn")())
	}

	entries := p.Entries()
	if len(entries) != 2*turns {
		t.Fatalf("expected %d entries, got %d", 2*turns, len(entries))
	}
	for i, e := range entries {
		want := transcript.RoleUser
		if i%2 == 1 {
			want = transcript.RoleAssistant
		}
		if e.Role != want {
			t.Errorf("entry %d: expected role %q, got %q", i, want, e.Role)
		}
	}
}

func TestRepliesAppendInCompletionOrder(t *testing.T) {
	client := &fakeClient{}
	p := newTestPane(t, "", client)

	first := typeAndSubmit(p, "one")
	second := typeAndSubmit(p, "two")
	if p.Pending() != 2 {
		t.Fatalf("expected 2 pending requests, got %d", p.Pending())
	}

	// Second request finishes first.
	p.Update(second())
	p.Update(first())

	var texts []string
	for _, e := range p.Entries() {
		texts = append(texts, e.Text)
	}
	want := []string{"one", "two", "echo: two", "echo: one"}
	if len(texts) != len(want) {
		t.Fatalf("expected %v, got %v", want, texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestUnfocusedPaneIgnoresKeys(t *testing.T) {
	client := &fakeClient{}
	p := newTestPane(t, "", client)
	p.Blur()

	if cmd := typeAndSubmit(p, "hello"); cmd != nil {
		t.Error("unfocused pane should not submit")
	}
	if len(p.Entries()) != 0 {
		t.Errorf("expected empty transcript, got %d entries", len(p.Entries()))
	}
}

func TestViewShowsEmptyHint(t *testing.T) {
	p := newTestPane(t, "", &fakeClient{})
	view := p.View(60, 20)
	if !containsText(view, "Start the conversation") {
		t.Error("empty pane should show its hint")
	}
}
