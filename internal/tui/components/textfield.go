package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextField is a labeled text input field.
type TextField struct {
	label    string
	input    textinput.Model
	focused  bool
	required bool
	err      error
	styles   textFieldStyles
}

type textFieldStyles struct {
	Label        lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	Error        lipgloss.Style
	Required     lipgloss.Style
}

func defaultTextFieldStyles() textFieldStyles {
	return textFieldStyles{
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Input:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedInput: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Required:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// NewTextField creates a new text field.
func NewTextField(label, placeholder string) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 40

	return TextField{
		label:  label,
		input:  ti,
		styles: defaultTextFieldStyles(),
	}
}

// WithRequired marks the field as required.
func (t TextField) WithRequired(required bool) TextField {
	t.required = required
	return t
}

// WithValue sets the initial value.
func (t TextField) WithValue(value string) TextField {
	t.input.SetValue(value)
	return t
}

// WithPassword masks the typed value.
func (t TextField) WithPassword() TextField {
	t.input.EchoMode = textinput.EchoPassword
	t.input.EchoCharacter = '•'
	return t
}

// Focus focuses the text field.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus from the text field.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
}

// Update implements tea.Model.
func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if t.err != nil && strings.TrimSpace(t.input.Value()) != "" {
		t.err = nil
	}
	return t, cmd
}

// View implements tea.Model.
func (t TextField) View() string {
	var b strings.Builder

	labelText := t.label
	if t.required {
		labelText += t.styles.Required.Render(" *")
	}
	b.WriteString(t.styles.Label.Render(labelText))
	b.WriteString("\n")

	inputStyle := t.styles.Input
	if t.focused {
		inputStyle = t.styles.FocusedInput
	}
	b.WriteString(inputStyle.Render(t.input.View()))

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(t.styles.Error.Render(t.err.Error()))
	}

	return b.String()
}

// Value returns the current value.
func (t TextField) Value() string {
	return t.input.Value()
}

// Validate runs validation and returns any error.
func (t *TextField) Validate() error {
	if t.required && strings.TrimSpace(t.input.Value()) == "" {
		t.err = ErrFieldRequired
		return t.err
	}
	t.err = nil
	return nil
}

// ErrFieldRequired is returned when a required field is empty.
var ErrFieldRequired = fieldError("this field is required")

type fieldError string

func (e fieldError) Error() string { return string(e) }
