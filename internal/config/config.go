package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultMRUSize     = 4
	DefaultProduct     = "Deskkit"
	DefaultSplashDelay = 1500 * time.Millisecond
)

type Config struct {
	Locale   string `toml:"locale"`
	Product  string `toml:"product"`
	LogLevel string `toml:"log_level"`
	JSONLogs bool   `toml:"json_logs"`

	MRUSize    int    `toml:"mru_size"`
	RecentFile string `toml:"recent_file"`

	Export Export      `toml:"export"`
	Load   LoadOptions `toml:"load"`
	Splash Splash      `toml:"splash"`
}

// Export controls which optional export commands appear. Unsupported lists
// kinds that are always shown disabled.
type Export struct {
	Vector      bool     `toml:"vector"`
	Spreadsheet bool     `toml:"spreadsheet"`
	Unsupported []string `toml:"unsupported"`
}

// LoadOptions mirrors Export for the load commands.
type LoadOptions struct {
	Samples     bool     `toml:"samples"`
	Reload      bool     `toml:"reload"`
	Unsupported []string `toml:"unsupported"`
}

type Splash struct {
	Enabled    bool     `toml:"enabled"`
	MinDisplay Duration `toml:"min_display"`
}

// Duration decodes TOML strings such as "1.5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func DefaultConfig() Config {
	return Config{
		Product:    DefaultProduct,
		LogLevel:   "info",
		MRUSize:    DefaultMRUSize,
		RecentFile: defaultRecentFile(),
		Export: Export{
			Vector:      true,
			Spreadsheet: false,
		},
		Load: LoadOptions{
			Samples: false,
			Reload:  true,
		},
		Splash: Splash{
			Enabled:    true,
			MinDisplay: Duration{DefaultSplashDelay},
		},
	}
}

func defaultRecentFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "deskkit", "recent.yaml")
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("DESKKIT_LOCALE"); ok {
		c.Locale = v
	}
	if v, ok := lookup("DESKKIT_PRODUCT"); ok {
		c.Product = v
	}
	if v, ok := lookup("DESKKIT_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("DESKKIT_JSON_LOGS"); ok {
		c.JSONLogs = v == "true"
	}
	if v, ok := lookup("DESKKIT_RECENT_FILE"); ok {
		c.RecentFile = v
	}
	if v, ok := lookup("DESKKIT_MRU_SIZE"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("DESKKIT_MRU_SIZE: %w", err)
		}
		c.MRUSize = n
	}
	if v, ok := lookup("DESKKIT_EXPORT_UNSUPPORTED"); ok {
		c.Export.Unsupported = splitList(v)
	}
	if v, ok := lookup("DESKKIT_LOAD_UNSUPPORTED"); ok {
		c.Load.Unsupported = splitList(v)
	}
	if v, ok := lookup("DESKKIT_NO_SPLASH"); ok && v == "true" {
		c.Splash.Enabled = false
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c Config) Validate() error {
	if c.MRUSize <= 0 {
		return fmt.Errorf("mru_size must be positive, got %d", c.MRUSize)
	}
	if c.RecentFile == "" {
		return errors.New("recent_file must be set")
	}
	if c.Splash.MinDisplay.Duration < 0 {
		return fmt.Errorf("splash.min_display must not be negative, got %s", c.Splash.MinDisplay)
	}
	return nil
}
