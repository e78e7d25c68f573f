package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Lingo styling.
type TextInput struct {
	Model textinput.Model
	Label string
}

// NewTextInput creates a new styled, unfocused text input. charLimit 0 means
// unlimited.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Update handles messages. Unfocused inputs ignore key presses.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label (if any) above the input line.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.Label == "" {
		return view
	}
	style := theme.Label
	if t.Model.Focused() {
		style = style.Foreground(theme.Primary)
	}
	return style.Render(t.Label) + "\n" + view
}

// SetWidth sets the visible width of the input line.
func (t *TextInput) SetWidth(w int) {
	w -= lipgloss.Width(t.Model.Prompt) + 1
	if w < 1 {
		w = 1
	}
	t.Model.SetWidth(w)
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// IsBlank reports whether the value is empty or whitespace only.
func (t TextInput) IsBlank() bool {
	return strings.TrimSpace(t.Model.Value()) == ""
}

// Reset clears the value.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
