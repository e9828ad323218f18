package metsgen

import "context"

// Credentials are the basic-auth credentials used for authenticated
// repository requests (node and members documents in live-fetch mode).
type Credentials struct {
	Username string
	Password string
}

// IsZero reports whether no username was supplied.
func (c Credentials) IsZero() bool {
	return c.Username == ""
}

// CredentialsProvider obtains repository credentials, usually by prompting.
//
// Implementations:
//   - tui.FormPrompter: bubbletea form with a masked password field
//   - tui.LinePrompter: plain line prompt using term.ReadPassword
//   - cli.envCredentials: METSGEN_USERNAME / METSGEN_PASSWORD
type CredentialsProvider interface {
	// Credentials returns the credentials to use for the whole run.
	// Returns an error wrapping ErrCredentials if the user cancels or
	// no credentials can be obtained.
	Credentials(ctx context.Context) (Credentials, error)
}
