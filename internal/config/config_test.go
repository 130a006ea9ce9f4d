package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9000
log_level = "debug"

[catalog]
url = "https://catalog.example.com"
api_key = "secret"
region = "KR"

[cache]
screening_ttl = "30m"
rerun_ttl = "168h"

[status]
rerun_threshold_days = 180
now_window_days = 90
rerun_min_gap_months = 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "https://catalog.example.com", cfg.Catalog.URL)
	assert.Equal(t, 30*time.Minute, cfg.Cache.ScreeningTTL)
	assert.Equal(t, 168*time.Hour, cfg.Cache.RerunTTL)
	assert.Equal(t, 180, cfg.Status.RerunThresholdDays)
	assert.Equal(t, 4, cfg.Status.RerunMinGapMonths)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[catalog]
url = "https://catalog.example.com"
api_key = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8590, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "KR", cfg.Catalog.Region)
	assert.Zero(t, cfg.Cache.ScreeningTTL, "TTL defaults live in the resolver, not the config")
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("MARQUEE_API_KEY", "from-env")

	path := writeConfig(t, `
[catalog]
url = "https://catalog.example.com"
api_key = "${MARQUEE_API_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Catalog.APIKey)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[catalog]
url = "https://catalog.example.com"
api_key = "${MARQUEE_NO_SUCH_VAR}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Missing, "MARQUEE_NO_SUCH_VAR")
}

func TestLoad_ValidationErrors(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 70000

[catalog]
url = ""
api_key = ""
region = "kor"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, cerr.Errors, 4)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "catalog.url")
	assert.Contains(t, err.Error(), "catalog.api_key")
	assert.Contains(t, err.Error(), "catalog.region")
}

func TestValidate_NegativeThresholds(t *testing.T) {
	cfg := &Config{}
	cfg.Catalog.URL = "https://catalog.example.com"
	cfg.Catalog.APIKey = "secret"
	cfg.Status.RerunThresholdDays = -1

	errs := cfg.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "rerun_threshold_days")
}
