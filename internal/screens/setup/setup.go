// Package setup implements the profile form shown before a session starts.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/layout"
	"github.com/abhisek/lingo/internal/ui/theme"
)

const (
	fieldUsername = iota
	fieldRoleplay
	fieldSubmit
	fieldCount
)

const formWidth = 48

// submitMsg is emitted by the Start Learning button.
type submitMsg struct{}

// Factory builds the active-session screen for a confirmed identity.
type Factory func(session.Identity) screen.Screen

// SetupScreen collects the username and optional roleplay character.
type SetupScreen struct {
	username  components.TextInput
	roleplay  components.TextInput
	button    components.Button
	focus     int
	factory   Factory
	submitted bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup form. factory is called once, with the confirmed
// identity, when the form is submitted with a username.
func New(factory Factory) *SetupScreen {
	s := &SetupScreen{
		username: components.NewTextInput("Username", "", 64),
		roleplay: components.NewTextInput("Roleplay Character (optional)", "e.g., Harry Potter", 128),
		button: components.NewButton("Start Learning", func() tea.Cmd {
			return func() tea.Msg { return submitMsg{} }
		}),
		factory: factory,
	}
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.setFocus(fieldUsername)
}

func (s *SetupScreen) Title() string {
	return "Setup Your Learning Profile"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Move"},
		{Key: "Enter", Description: "Start Learning"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		return s, s.submit()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if s.focus == fieldSubmit {
				var cmd tea.Cmd
				s.button, cmd = s.button.Update(msg)
				return s, cmd
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldUsername:
		s.username, cmd = s.username.Update(msg)
	case fieldRoleplay:
		s.roleplay, cmd = s.roleplay.Update(msg)
	}
	return s, cmd
}

// submit validates the form and hands off to the session screen. Only the
// first successful submit transitions.
func (s *SetupScreen) submit() tea.Cmd {
	if s.submitted {
		return nil
	}
	identity, ok := session.NewIdentity(s.username.Value(), s.roleplay.Value())
	if !ok {
		return s.setFocus(fieldUsername)
	}

	s.submitted = true
	next := s.factory(identity)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SetupScreen) setFocus(field int) tea.Cmd {
	s.focus = field
	s.username.Blur()
	s.roleplay.Blur()
	s.button.Focused = false

	switch field {
	case fieldUsername:
		return s.username.Focus()
	case fieldRoleplay:
		return s.roleplay.Focus()
	default:
		s.button.Focused = true
		return nil
	}
}

func (s *SetupScreen) View(width, height int) string {
	w := formWidth
	if width-4 < w {
		w = width - 4
	}
	s.username.SetWidth(w)
	s.roleplay.SetWidth(w)

	var sections []string
	sections = append(sections,
		theme.Title.Width(w).Render("Setup Your Learning Profile"),
		theme.Subtitle.Width(w).Render("Practice Hebrew with a conversation partner"),
		"",
		s.username.View(),
		"",
		s.roleplay.View(),
		"",
		s.button.View(),
	)

	card := theme.Card.Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
