package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kherge/go.carli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JOURNAL_CONFIG", "")

	cfg, _, err := config.Load(nil)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Database)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	configContent := []byte(`
database = "/path/to/journal.db"
limit = 25
log_level = "debug"
`)
	configPath := filepath.Join(t.TempDir(), "journal.toml")
	require.NoError(t, os.WriteFile(configPath, configContent, 0o600))

	t.Setenv("JOURNAL_CONFIG", configPath)

	cfg, _, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/path/to/journal.db", cfg.Database)
	assert.Equal(t, 25, cfg.Limit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFlagsOverrideConfigFile(t *testing.T) {
	configContent := []byte(`
limit = 25
`)
	configPath := filepath.Join(t.TempDir(), "journal.toml")
	require.NoError(t, os.WriteFile(configPath, configContent, 0o600))

	t.Setenv("JOURNAL_CONFIG", configPath)

	cfg, _, err := config.Load([]string{"--limit", "3", "--log-level", "info"})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRemainingArgsSelectSubcommand(t *testing.T) {
	t.Setenv("JOURNAL_CONFIG", "")

	_, flags, err := config.Load([]string{"--limit", "3", "add", "a note"})
	require.NoError(t, err)

	assert.Equal(t, []string{"add", "a note"}, flags.Args())
}

func TestLoadInvalidConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "journal.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("not valid toml ["), 0o600))

	t.Setenv("JOURNAL_CONFIG", configPath)

	_, _, err := config.Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv("JOURNAL_CONFIG", "")

	_, _, err := config.Load([]string{"--log-level", "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoadInvalidLimit(t *testing.T) {
	t.Setenv("JOURNAL_CONFIG", "")

	_, _, err := config.Load([]string{"--limit", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid limit")
}
