package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/mcoot/othello/internal/model"
)

// configFile is resolved against the XDG config directories
const configFile = "othello/config.json"

// Environment variables read by the CLI
const (
	EnvServer = "OTHELLO_SERVER"
	EnvOutput = "OTHELLO_OUTPUT"
	EnvBot    = "OTHELLO_BOT"
	EnvConfig = "OTHELLO_CONFIG"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string `json:"server"`
	Output    string `json:"output"`
	Bot       string `json:"bot"` // Strategy for the local play opponent
	Verbose   bool   `json:"-"`

	// Path is the config file that was loaded, if any
	Path string `json:"-"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: "http://localhost:8080",
		Output:    "text",
		Bot:       model.DefaultBotStrategy,
		Verbose:   false,
	}
}

// LoadConfig layers the config file and then the environment over the defaults.
// Flags are applied on top by cobra.
func LoadConfig(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if path := configPath(getenv); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if v := getenv(EnvServer); v != "" {
		cfg.ServerURL = v
	}
	if v := getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := getenv(EnvBot); v != "" {
		cfg.Bot = v
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later in a confusing way
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if !model.IsValidBotStrategy(c.Bot) {
		return fmt.Errorf("%w: %q", model.ErrUnknownStrategy, c.Bot)
	}
	return nil
}

// Save writes the config to path, or to the user's XDG config file when path is empty
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		var err error
		path, err = xdg.ConfigFile(configFile)
		if err != nil {
			return "", err
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, append(data, '\n'), 0o600)
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // No config file is fine
		}
		return err
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	c.Path = path
	return nil
}

// configPath returns OTHELLO_CONFIG if set, otherwise the first existing XDG config file
func configPath(getenv func(string) string) string {
	if p := getenv(EnvConfig); p != "" {
		return p
	}
	p, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return "" // Not found in any XDG directory
	}
	return p
}
