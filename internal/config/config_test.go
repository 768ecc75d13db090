package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "store"
password = "secret"

[logs]
level = "debug"

[scheduling]
horizon_days = 14
poll_interval_seconds = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 14, cfg.Scheduling.HorizonDays)
	assert.Equal(t, 30*time.Second, cfg.Scheduling.PollInterval())
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=store sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, "[server\nhttp_port = 1"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, "[scheduling]\nslot_interval_minutes = 30\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "missing db host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "horizon too large", mutate: func(c *Config) { c.Scheduling.HorizonDays = domain.MaxHorizonDays + 1 }},
		{name: "slot interval differs", mutate: func(c *Config) { c.Scheduling.SlotIntervalMinutes = domain.SlotIntervalMinutes + 1 }},
		{name: "zero poll interval", mutate: func(c *Config) { c.Scheduling.PollIntervalSeconds = 0 }},
		{name: "metrics without path", mutate: func(c *Config) { c.Metrics.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestDefault_MatchesEngineConstants(t *testing.T) {
	cfg := Default()

	assert.Equal(t, domain.SlotIntervalMinutes, cfg.Scheduling.SlotIntervalMinutes)
	assert.Equal(t, domain.DefaultHorizonDays, cfg.Scheduling.HorizonDays)

	cfg.Scheduling.HorizonDays = domain.MaxHorizonDays
	assert.NoError(t, cfg.Validate(), "upper horizon bound is inclusive")
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, "config.toml", Path("config.toml"))

	t.Setenv(EnvConfigPath, "/etc/store/config.toml")
	assert.Equal(t, "/etc/store/config.toml", Path("config.toml"))
}
