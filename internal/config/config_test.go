package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("INPUT_DIR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "./data/input", cfg.InputDir)
	assert.Equal(t, "./data/output", cfg.OutputDir)
	assert.Equal(t, "manager", cfg.InviteRole)
	assert.Equal(t, "1", cfg.InviteRoleCode)
	assert.Equal(t, "Welcome to the Pennsieve Hackathon", cfg.InviteMessage)
	assert.Equal(t, "", cfg.APIKey)
}

func TestLoadFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "dev.env")
	content := "# comment\nAPI_KEY=file-key\nPENNSIEVE_HOST=https://api.pennsieve.io\nORG_ID=N:organization:abc\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "https://api.pennsieve.io", cfg.Host)
	assert.Equal(t, "N:organization:abc", cfg.OrgID)
}

func TestEnvOverridesEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "dev.env")
	require.NoError(t, os.WriteFile(envFile, []byte("API_KEY=file-key\n"), 0o644))
	t.Setenv("API_KEY", "env-key")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestRequire(t *testing.T) {
	cfg := &Config{Host: "https://api.pennsieve.io"}

	err := cfg.Require("PENNSIEVE_HOST", "API_KEY")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ConfigMissingError))
	assert.Contains(t, err.Error(), "API_KEY")

	cfg.APIKey = "k"
	cfg.OrgID = "o"
	assert.NoError(t, cfg.Require("API_KEY", "PENNSIEVE_HOST", "ORG_ID"))
}
