package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metsgen/internal/config"
	"github.com/vvka-141/metsgen/pkg/metsgen"
)

func TestEnvCredentials(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		pass     string
		fallback string
		want     metsgen.Credentials
		wantErr  bool
	}{
		{"both set", "archivist", "hunter2", "", metsgen.Credentials{Username: "archivist", Password: "hunter2"}, false},
		{"env user wins over fallback", "archivist", "hunter2", "other", metsgen.Credentials{Username: "archivist", Password: "hunter2"}, false},
		{"fallback user", "", "hunter2", "curator", metsgen.Credentials{Username: "curator", Password: "hunter2"}, false},
		{"missing password", "archivist", "", "", metsgen.Credentials{}, true},
		{"missing user", "", "hunter2", "", metsgen.Credentials{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envUsername, tt.user)
			t.Setenv(envPassword, tt.pass)

			creds, err := envCredentials{username: tt.fallback}.Credentials(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, metsgen.ErrCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, creds)
		})
	}
}

func TestResolveUsername(t *testing.T) {
	projectCfg := &config.ProjectConfig{Username: "from-file"}

	t.Setenv(envUsername, "")
	assert.Equal(t, "from-flag", resolveUsername("from-flag", projectCfg))
	assert.Equal(t, "from-file", resolveUsername("", projectCfg))
	assert.Equal(t, "", resolveUsername("", nil))

	t.Setenv(envUsername, "from-env")
	assert.Equal(t, "from-env", resolveUsername("", projectCfg))
	assert.Equal(t, "from-flag", resolveUsername("from-flag", projectCfg))
}

func TestSelectCredentialsProvider_PrefersEnvironment(t *testing.T) {
	t.Setenv(envPassword, "hunter2")

	provider, err := selectCredentialsProvider("https://repo.example.edu", "archivist")
	require.NoError(t, err)
	assert.IsType(t, envCredentials{}, provider)
}
