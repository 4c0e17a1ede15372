package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"saconnect/internal/state"
)

// setConfigDir points the user config dir at a temp dir for testing.
func setConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_NoFileReturnsDefault(t *testing.T) {
	setConfigDir(t)

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.Equal(t, state.DefaultFontScale, config.FontScale())
	assert.Equal(t, time.Second, config.Transition())
	assert.Equal(t, 3*time.Second, config.NoticeTimeout())
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
songs_path: /srv/songs.yaml
font:
  max: 30
auth:
  allow_guest: false
  accounts:
    - username: ravi
      display_name: Captain Ravi
      password_hash: "$2a$10$abc"
`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/songs.yaml", config.SongsPath)
	assert.Equal(t, 30.0, config.Font.Max)
	assert.Equal(t, 16.0, config.Font.Min)
	assert.Equal(t, 22.0, config.Font.Default)
	assert.False(t, config.Auth.AllowGuest)

	accounts := config.Accounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, "ravi", accounts[0].Username)
	assert.Equal(t, "Captain Ravi", accounts[0].DisplayName)
}

func TestLoad_DefaultLocation(t *testing.T) {
	setConfigDir(t)
	path, err := GetConfigFilePath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0644))

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoad_CorruptYAML(t *testing.T) {
	path := writeConfig(t, "font: [unclosed")

	config, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"zero step", func(c *Config) { c.Font.Step = 0 }, "font.step"},
		{"min above max", func(c *Config) { c.Font.Min = 50 }, "font.min"},
		{"default outside", func(c *Config) { c.Font.Default = 41 }, "font.default"},
		{"negative transition", func(c *Config) { c.TransitionMS = -1 }, "transition_ms"},
		{"zero notice", func(c *Config) { c.NoticeSeconds = 0 }, "notice_seconds"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"account without hash", func(c *Config) {
			c.Auth.Accounts = []Account{{Username: "ravi"}}
		}, "auth.accounts[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}
