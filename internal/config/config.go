// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Cache   CacheConfig   `toml:"cache"`
	Status  StatusConfig  `toml:"status"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`

	// Optional rotating log file; empty means stdout only.
	LogFile       string `toml:"log_file"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
}

type CatalogConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
	Region string `toml:"region"`
}

// CacheConfig overrides the per-kind cache TTLs. Zero values keep the
// built-in defaults.
type CacheConfig struct {
	ScreeningTTL    time.Duration `toml:"screening_ttl"`
	RerunTTL        time.Duration `toml:"rerun_ttl"`
	RerunFailureTTL time.Duration `toml:"rerun_failure_ttl"`
	SeasonTTL       time.Duration `toml:"season_ttl"`
	MetaTTL         time.Duration `toml:"meta_ttl"`
	MetaFailureTTL  time.Duration `toml:"meta_failure_ttl"`

	// ScreeningWarmInterval is how often the daemon rebuilds the screening
	// snapshot in the background so reads rarely pay for a rebuild.
	ScreeningWarmInterval time.Duration `toml:"screening_warm_interval"`
}

type StatusConfig struct {
	RerunThresholdDays int `toml:"rerun_threshold_days"`
	NowWindowDays      int `toml:"now_window_days"`
	RerunMinGapMonths  int `toml:"rerun_min_gap_months"`
}

// Load reads, substitutes, parses and validates the configuration file.
// Unresolved ${ENV} references and validation failures are aggregated into
// a single *ConfigError so the operator sees everything at once.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8590
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Catalog.Region == "" {
		cfg.Catalog.Region = "KR"
	}

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
// and reports the names it could not resolve.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	replaced := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return replaced, missing
}
