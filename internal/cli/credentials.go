package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/vvka-141/metsgen/internal/config"
	"github.com/vvka-141/metsgen/internal/tui"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

const (
	envUsername = "METSGEN_USERNAME"
	envPassword = "METSGEN_PASSWORD"
)

// envCredentials supplies credentials from METSGEN_USERNAME and
// METSGEN_PASSWORD, with username as the fallback user name.
type envCredentials struct {
	username string
}

func (e envCredentials) Credentials(_ context.Context) (metsgen.Credentials, error) {
	creds := metsgen.Credentials{
		Username: os.Getenv(envUsername),
		Password: os.Getenv(envPassword),
	}
	if creds.Username == "" {
		creds.Username = e.username
	}
	if creds.Username == "" || creds.Password == "" {
		return metsgen.Credentials{}, fmt.Errorf("%w: %s and %s must both be set", metsgen.ErrCredentials, envUsername, envPassword)
	}
	return creds, nil
}

// resolveUsername picks the user name to prefill: flag, then environment,
// then metsgen.yaml.
func resolveUsername(flagValue string, projectCfg *config.ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(envUsername); env != "" {
		return env
	}
	if projectCfg != nil {
		return projectCfg.Username
	}
	return ""
}

// selectCredentialsProvider prefers environment credentials, then the
// full-screen form, then a plain line prompt. Replaced in tests.
var selectCredentialsProvider = func(repoURL, username string) (metsgen.CredentialsProvider, error) {
	if os.Getenv(envPassword) != "" {
		return envCredentials{username: username}, nil
	}
	switch {
	case tui.IsInteractive():
		return tui.NewFormPrompter(repoURL, username), nil
	case tui.StdinIsTerminal():
		return tui.NewLinePrompter(username), nil
	}
	return nil, fmt.Errorf("%w: no terminal to prompt on; set %s and %s", metsgen.ErrCredentials, envUsername, envPassword)
}

var _ metsgen.CredentialsProvider = envCredentials{}
