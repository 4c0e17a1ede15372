package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	"saconnect/internal/auth"
	"saconnect/internal/state"
)

// Config holds application-wide configuration settings.
type Config struct {
	SongsPath     string `yaml:"songs_path"`
	LogFile       string `yaml:"log_file"`
	LogLevel      string `yaml:"log_level"`
	Font          Font   `yaml:"font"`
	TransitionMS  int    `yaml:"transition_ms"`
	NoticeSeconds int    `yaml:"notice_seconds"`
	Auth          Auth   `yaml:"auth"`
}

// Font bounds the lyric zoom.
type Font struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Default float64 `yaml:"default"`
}

// Auth configures the local sign-in provider.
type Auth struct {
	AllowGuest bool      `yaml:"allow_guest"`
	Accounts   []Account `yaml:"accounts"`
}

// Account is one configured user.
type Account struct {
	Username     string `yaml:"username"`
	DisplayName  string `yaml:"display_name"`
	PasswordHash string `yaml:"password_hash"`
}

const (
	configFileName   = "config.yaml"
	appConfigDirName = "saconnect"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Font: Font{
			Min:     state.DefaultFontScale.Min,
			Max:     state.DefaultFontScale.Max,
			Step:    state.DefaultFontScale.Step,
			Default: state.DefaultFontScale.Value,
		},
		TransitionMS:  1000,
		NoticeSeconds: 3,
		Auth:          Auth{AllowGuest: true},
	}
}

// GetConfigFilePath returns the absolute path to the default configuration file.
func GetConfigFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appConfigDirName, configFileName), nil
}

// Load reads the configuration at path, or the default location when path
// is empty. A missing file yields Default(). Fields absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := GetConfigFilePath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the value ranges.
func (c *Config) Validate() error {
	f := c.Font
	switch {
	case f.Step <= 0:
		return fmt.Errorf("font.step must be positive, got %v", f.Step)
	case f.Min >= f.Max:
		return fmt.Errorf("font.min (%v) must be below font.max (%v)", f.Min, f.Max)
	case f.Default < f.Min || f.Default > f.Max:
		return fmt.Errorf("font.default (%v) must be within [%v, %v]", f.Default, f.Min, f.Max)
	case c.TransitionMS < 0:
		return fmt.Errorf("transition_ms must not be negative")
	case c.NoticeSeconds <= 0:
		return fmt.Errorf("notice_seconds must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for i, a := range c.Auth.Accounts {
		if a.Username == "" || a.PasswordHash == "" {
			return fmt.Errorf("auth.accounts[%d]: username and password_hash are required", i)
		}
	}
	return nil
}

// FontScale converts the font section to the session's zoom bounds.
func (c *Config) FontScale() state.FontScale {
	return state.FontScale{Min: c.Font.Min, Max: c.Font.Max, Step: c.Font.Step, Value: c.Font.Default}
}

// Transition is the atmosphere animation length.
func (c *Config) Transition() time.Duration {
	return time.Duration(c.TransitionMS) * time.Millisecond
}

// NoticeTimeout is how long a transient notice stays on screen.
func (c *Config) NoticeTimeout() time.Duration {
	return time.Duration(c.NoticeSeconds) * time.Second
}

// Accounts converts the configured users for the local authenticator.
func (c *Config) Accounts() []auth.Account {
	out := make([]auth.Account, len(c.Auth.Accounts))
	for i, a := range c.Auth.Accounts {
		out[i] = auth.Account{Username: a.Username, DisplayName: a.DisplayName, PasswordHash: a.PasswordHash}
	}
	return out
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log_level %q", name)
	}
	return level, nil
}
