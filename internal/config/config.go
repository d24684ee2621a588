// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env.local"

// Config holds every setting the clients read at startup.
type Config struct {
	APIBase      string `env:"BOOKREVIEW_API_BASE"      envDefault:"http://localhost:5000"`
	LogFile      string `env:"BOOKREVIEW_LOG_FILE"`
	LogLevel     string `env:"BOOKREVIEW_LOG_LEVEL"     envDefault:"info"`
	OTelEndpoint string `env:"BOOKREVIEW_OTEL_ENDPOINT"`
	ServiceName  string `env:"BOOKREVIEW_SERVICE_NAME"  envDefault:"bookreview"`
}

// Load reads the dotenv files (missing files are skipped), then parses the
// environment and validates the result. Variables already set in the
// process environment win over dotenv values.
// With no files given, DotEnvFile is used.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DotEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIBase = strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the API base is an absolute http(s) URL.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIBase)
	if err != nil {
		return fmt.Errorf("BOOKREVIEW_API_BASE %q: %w", c.APIBase, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("BOOKREVIEW_API_BASE %q: scheme must be http or https", c.APIBase)
	}
	if u.Host == "" {
		return fmt.Errorf("BOOKREVIEW_API_BASE %q: missing host", c.APIBase)
	}
	return nil
}
