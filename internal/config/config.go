// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Board   BoardConfig   `toml:"board"`
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Server  ServerConfig  `toml:"server"`
}

// BoardConfig holds the board geometry and timer settings.
type BoardConfig struct {
	Rows             int    `toml:"rows"`
	StationWidth     int    `toml:"station_width"`
	PollInterval     string `toml:"poll_interval"`     // e.g., "30s"
	TerminusInterval string `toml:"terminus_interval"` // e.g., "2.5s"
	BlinkInterval    string `toml:"blink_interval"`    // arrival marker blink
}

// APIConfig holds the departure feed settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Sender  string `toml:"sender"`
	Timeout string `toml:"timeout"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds colours shared by the terminal and web boards.
type UIConfig struct {
	LEDColor   string `toml:"led_color"`  // lit dots, "#rrggbb"
	Background string `toml:"background"` // board background, "#rrggbb"
}

// ServerConfig holds the settings of "tafel serve".
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Rows:             2,
			StationWidth:     17,
			PollInterval:     "30s",
			TerminusInterval: "2.5s",
			BlinkInterval:    "500ms",
		},
		API: APIConfig{
			BaseURL: "https://www.wienerlinien.at/ogd_realtime/monitor",
			Sender:  "wien-tafel",
			Timeout: "10s",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			LEDColor:   "#ffb000",
			Background: "#1a1a1a",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tafel.db"
	}
	return filepath.Join(home, ".local", "share", "tafel", "tafel.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tafel", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TAFEL_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TAFEL_ROWS: %w", err)
		}
		cfg.Board.Rows = n
	}
	if v := os.Getenv("TAFEL_POLL_INTERVAL"); v != "" {
		cfg.Board.PollInterval = v
	}
	if v := os.Getenv("TAFEL_TERMINUS_INTERVAL"); v != "" {
		cfg.Board.TerminusInterval = v
	}

	if v := os.Getenv("TAFEL_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("TAFEL_API_SENDER"); v != "" {
		cfg.API.Sender = v
	}

	if v := os.Getenv("TAFEL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("TAFEL_LED_COLOR"); v != "" {
		cfg.UI.LEDColor = v
	}

	if v := os.Getenv("TAFEL_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Board.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", c.Board.Rows)
	}
	if c.Board.StationWidth < 1 {
		return fmt.Errorf("station_width must be at least 1, got %d", c.Board.StationWidth)
	}
	for field, v := range map[string]string{
		"poll_interval":     c.Board.PollInterval,
		"terminus_interval": c.Board.TerminusInterval,
		"blink_interval":    c.Board.BlinkInterval,
		"timeout":           c.API.Timeout,
	} {
		if err := validateDuration(v, field); err != nil {
			return err
		}
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Sender == "" {
		return errors.New("sender must be set")
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}

	if err := validateColor(c.UI.LEDColor, "led_color"); err != nil {
		return err
	}
	if err := validateColor(c.UI.Background, "background"); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return errors.New("addr must be set")
	}
	return nil
}

// validateDuration checks that d parses and is positive.
func validateDuration(d, field string) error {
	v, err := time.ParseDuration(d)
	if err != nil {
		return fmt.Errorf("%s must be a duration like \"30s\", got %q", field, d)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %q", field, d)
	}
	return nil
}

// validateColor checks if a colour string is in #rrggbb format.
func validateColor(c, field string) error {
	if len(c) != 7 || c[0] != '#' || !isHex(c[1:]) {
		return fmt.Errorf("%s must be in #rrggbb format, got %q", field, c)
	}
	return nil
}

func isHex(s string) bool {
	for _, c := range strings.ToLower(s) {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// duration parses a validated duration field.
func duration(d string) time.Duration {
	v, _ := time.ParseDuration(d)
	return v
}

// PollInterval returns the departure refresh period.
func (c *Config) PollInterval() time.Duration { return duration(c.Board.PollInterval) }

// TerminusInterval returns the terminus language switch period.
func (c *Config) TerminusInterval() time.Duration { return duration(c.Board.TerminusInterval) }

// BlinkInterval returns the arrival marker blink period.
func (c *Config) BlinkInterval() time.Duration { return duration(c.Board.BlinkInterval) }

// Timeout returns the per-request feed timeout.
func (c *Config) Timeout() time.Duration { return duration(c.API.Timeout) }

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
