package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *stubScreen) View(int, int) string {
	return s.title
}

func (s *stubScreen) Title() string {
	return s.title
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestViewRendersActive(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "second"}})

	if got := r.View(80, 24); got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	counter := &countingScreen{}
	r.Update(ReplaceScreenMsg{Screen: counter})
	r.Update(struct{}{})
	r.Update(struct{}{})

	if counter.updates != 2 {
		t.Errorf("expected 2 forwarded updates, got %d", counter.updates)
	}
}

// countingScreen counts the messages it receives.
type countingScreen struct {
	stubScreen
	updates int
}

func (c *countingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	c.updates++
	return c, nil
}
