package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form collects several text fields. Enter advances to the next field and
// submits on the last one; esc cancels.
type Form struct {
	title     string
	subtitle  string
	fields    []TextField
	focusIdx  int
	submitted bool
	cancelled bool
	keyMap    formKeyMap
	styles    formStyles
}

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

type formStyles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func defaultFormStyles() formStyles {
	return formStyles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

// NewForm creates a form with the first field focused.
func NewForm(title string, fields ...TextField) Form {
	f := Form{
		title:  title,
		fields: fields,
		keyMap: defaultFormKeyMap(),
		styles: defaultFormStyles(),
	}
	if len(f.fields) > 0 {
		f.fields[0].Focus()
	}
	return f
}

// WithSubtitle sets a line shown under the title.
func (f Form) WithSubtitle(subtitle string) Form {
	f.subtitle = subtitle
	return f
}

// WithFocus moves focus to field idx.
func (f Form) WithFocus(idx int) Form {
	if idx < 0 || idx >= len(f.fields) {
		return f
	}
	f.fields = append([]TextField(nil), f.fields...)
	f.fields[f.focusIdx].Blur()
	f.focusIdx = idx
	f.fields[idx].Focus()
	return f
}

// Init implements tea.Model.
func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.keyMap.Cancel):
			f.cancelled = true
			return f, tea.Quit
		case key.Matches(msg, f.keyMap.Next):
			return f.nextField()
		case key.Matches(msg, f.keyMap.Prev):
			return f.prevField()
		case key.Matches(msg, f.keyMap.Submit):
			if f.focusIdx < len(f.fields)-1 {
				return f.nextField()
			}
			if f.validate() {
				f.submitted = true
				return f, tea.Quit
			}
			return f, nil
		}
	}

	if f.focusIdx >= len(f.fields) {
		return f, nil
	}
	f.fields = append([]TextField(nil), f.fields...)
	var cmd tea.Cmd
	f.fields[f.focusIdx], cmd = f.fields[f.focusIdx].Update(msg)
	return f, cmd
}

func (f Form) nextField() (tea.Model, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	f.fields = append([]TextField(nil), f.fields...)
	if err := f.fields[f.focusIdx].Validate(); err != nil {
		return f, nil
	}
	if f.focusIdx < len(f.fields)-1 {
		f.fields[f.focusIdx].Blur()
		f.focusIdx++
		return f, f.fields[f.focusIdx].Focus()
	}
	return f, nil
}

func (f Form) prevField() (tea.Model, tea.Cmd) {
	if f.focusIdx > 0 {
		f.fields = append([]TextField(nil), f.fields...)
		f.fields[f.focusIdx].Blur()
		f.focusIdx--
		return f, f.fields[f.focusIdx].Focus()
	}
	return f, nil
}

func (f *Form) validate() bool {
	f.fields = append([]TextField(nil), f.fields...)
	valid := true
	for i := range f.fields {
		if err := f.fields[i].Validate(); err != nil {
			valid = false
		}
	}
	return valid
}

// View implements tea.Model.
func (f Form) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render(f.title))
	b.WriteString("\n")
	if f.subtitle != "" {
		b.WriteString(f.styles.Subtitle.Render(f.subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, field := range f.fields {
		b.WriteString(field.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n\n")
		}
	}

	b.WriteString(f.styles.Help.Render("\ntab next • shift+tab prev • enter submit • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Submitted returns true if the form was submitted.
func (f Form) Submitted() bool {
	return f.submitted
}

// Cancelled returns true if the form was cancelled.
func (f Form) Cancelled() bool {
	return f.cancelled
}

// FocusIndex returns the index of the focused field.
func (f Form) FocusIndex() int {
	return f.focusIdx
}

// FieldValue returns the value of a field by index.
func (f Form) FieldValue(idx int) string {
	if idx >= 0 && idx < len(f.fields) {
		return f.fields[idx].Value()
	}
	return ""
}
