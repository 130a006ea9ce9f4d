package config

import (
	"fmt"
	"regexp"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var regionPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Catalog validation
	if c.Catalog.URL == "" {
		errs = append(errs, "catalog.url: required")
	}
	if c.Catalog.APIKey == "" {
		errs = append(errs, "catalog.api_key: required")
	}
	if c.Catalog.Region != "" && !regionPattern.MatchString(c.Catalog.Region) {
		errs = append(errs, fmt.Sprintf("catalog.region: must be a two-letter uppercase code, got %q", c.Catalog.Region))
	}

	// Cache validation
	if c.Cache.ScreeningTTL < 0 || c.Cache.RerunTTL < 0 || c.Cache.RerunFailureTTL < 0 ||
		c.Cache.SeasonTTL < 0 || c.Cache.MetaTTL < 0 || c.Cache.MetaFailureTTL < 0 {
		errs = append(errs, "cache: TTLs must not be negative")
	}

	// Status thresholds
	if c.Status.RerunThresholdDays < 0 {
		errs = append(errs, fmt.Sprintf("status.rerun_threshold_days: must not be negative, got %d", c.Status.RerunThresholdDays))
	}
	if c.Status.NowWindowDays < 0 {
		errs = append(errs, fmt.Sprintf("status.now_window_days: must not be negative, got %d", c.Status.NowWindowDays))
	}
	if c.Status.RerunMinGapMonths < 0 {
		errs = append(errs, fmt.Sprintf("status.rerun_min_gap_months: must not be negative, got %d", c.Status.RerunMinGapMonths))
	}

	return errs
}
