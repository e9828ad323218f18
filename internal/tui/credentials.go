package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vvka-141/metsgen/internal/tui/components"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

const (
	fieldUsername = iota
	fieldPassword
)

// CredentialsForm is the bubbletea model that asks for repository
// credentials. A prefilled username moves focus to the password field.
type CredentialsForm struct {
	form components.Form
}

// NewCredentialsForm creates the form for repoURL.
func NewCredentialsForm(repoURL, username string) CredentialsForm {
	form := components.NewForm("Repository credentials",
		components.NewTextField("Username", "drupal user").
			WithRequired(true).
			WithValue(username),
		components.NewTextField("Password", "").
			WithPassword(),
	).WithSubtitle(repoURL)

	if username != "" {
		form = form.WithFocus(fieldPassword)
	}
	return CredentialsForm{form: form}
}

// Init implements tea.Model.
func (m CredentialsForm) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model.
func (m CredentialsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.form.Update(msg)
	m.form = updated.(components.Form)
	return m, cmd
}

// View implements tea.Model.
func (m CredentialsForm) View() string {
	if m.form.Submitted() || m.form.Cancelled() {
		return ""
	}
	return BoxStyle.Render(m.form.View())
}

// Submitted reports whether the user confirmed the form.
func (m CredentialsForm) Submitted() bool {
	return m.form.Submitted()
}

// Cancelled reports whether the user dismissed the form.
func (m CredentialsForm) Cancelled() bool {
	return m.form.Cancelled()
}

// Credentials returns the entered values.
func (m CredentialsForm) Credentials() metsgen.Credentials {
	return metsgen.Credentials{
		Username: strings.TrimSpace(m.form.FieldValue(fieldUsername)),
		Password: m.form.FieldValue(fieldPassword),
	}
}

// FormPrompter asks for credentials with a full-screen form.
type FormPrompter struct {
	repoURL  string
	username string
}

// NewFormPrompter creates a FormPrompter. username prefills the form.
func NewFormPrompter(repoURL, username string) *FormPrompter {
	return &FormPrompter{repoURL: repoURL, username: username}
}

// Credentials runs the form until it is submitted or cancelled.
func (p *FormPrompter) Credentials(ctx context.Context) (metsgen.Credentials, error) {
	program := tea.NewProgram(
		NewCredentialsForm(p.repoURL, p.username),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return metsgen.Credentials{}, fmt.Errorf("%w: %w", metsgen.ErrCredentials, ctx.Err())
		}
		return metsgen.Credentials{}, fmt.Errorf("%w: %w", metsgen.ErrCredentials, err)
	}

	form, ok := final.(CredentialsForm)
	if !ok || !form.Submitted() {
		return metsgen.Credentials{}, fmt.Errorf("%w: prompt cancelled", metsgen.ErrCredentials)
	}
	return form.Credentials(), nil
}

// LinePrompter asks for credentials on plain terminal lines. The password
// is read without echo.
type LinePrompter struct {
	username     string
	in           io.Reader
	out          io.Writer
	readPassword func() ([]byte, error)
}

// NewLinePrompter creates a LinePrompter on stdin and stderr. A non-empty
// username skips the username prompt.
func NewLinePrompter(username string) *LinePrompter {
	return &LinePrompter{
		username: username,
		in:       os.Stdin,
		out:      os.Stderr,
		readPassword: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	}
}

// Credentials prompts for any missing username, then the password.
func (p *LinePrompter) Credentials(ctx context.Context) (metsgen.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return metsgen.Credentials{}, fmt.Errorf("%w: %w", metsgen.ErrCredentials, err)
	}

	username := p.username
	if username == "" {
		fmt.Fprint(p.out, "Username: ")
		line, err := readLine(p.in)
		if err != nil {
			return metsgen.Credentials{}, fmt.Errorf("%w: read username: %w", metsgen.ErrCredentials, err)
		}
		username = strings.TrimSpace(line)
		if username == "" {
			return metsgen.Credentials{}, fmt.Errorf("%w: username is required", metsgen.ErrCredentials)
		}
	}

	fmt.Fprint(p.out, "Password: ")
	password, err := p.readPassword()
	fmt.Fprintln(p.out)
	if err != nil {
		return metsgen.Credentials{}, fmt.Errorf("%w: read password: %w", metsgen.ErrCredentials, err)
	}

	return metsgen.Credentials{Username: username, Password: string(password)}, nil
}

// readLine reads up to and excluding the next newline one byte at a time,
// so input typed ahead of the password prompt stays unread on the terminal.
// EOF ends the line.
func readLine(r io.Reader) (string, error) {
	var (
		line []byte
		b    [1]byte
	)
	for {
		n, err := r.Read(b[:])
		if n > 0 {
			if b[0] == '\n' {
				return string(line), nil
			}
			line = append(line, b[0])
		}
		if errors.Is(err, io.EOF) {
			return string(line), nil
		}
		if err != nil {
			return "", err
		}
	}
}

var (
	_ metsgen.CredentialsProvider = (*FormPrompter)(nil)
	_ metsgen.CredentialsProvider = (*LinePrompter)(nil)
)
