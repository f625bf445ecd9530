package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Config drives the fluentcat CLI. Values come from, in increasing
// precedence: defaults, an optional fluentcat.toml, FLUENTCAT_* environment
// variables.
type Config struct {
	// LocalesDir is the directory holding the *.ftl resources.
	LocalesDir string `toml:"locales_dir"`
	// DefaultLocale is the fallback locale for rendering.
	DefaultLocale string `toml:"default_locale"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

const defaultFile = "fluentcat.toml"

// Load loads the configuration and validates it. path may be empty, in
// which case fluentcat.toml is used when present.
func Load(path string) (*Config, error) {
	// .env is optional; variables may come from the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		LocalesDir:    "locales",
		DefaultLocale: "en",
		LogLevel:      "info",
	}

	if path == "" {
		if _, err := os.Stat(defaultFile); err == nil {
			path = defaultFile
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if v := os.Getenv("FLUENTCAT_LOCALES_DIR"); v != "" {
		cfg.LocalesDir = v
	}
	if v := os.Getenv("FLUENTCAT_DEFAULT_LOCALE"); v != "" {
		cfg.DefaultLocale = v
	}
	if v := os.Getenv("FLUENTCAT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		return fmt.Errorf("config: locales_dir must not be empty")
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: invalid default_locale %q: %w", c.DefaultLocale, err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return nil
}
