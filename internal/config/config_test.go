package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fortune/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "fortune", cfg.Database.DatabaseName)
	require.Equal(t, "Asia/Shanghai", cfg.Fortune.Timezone)
	require.Equal(t, 0, cfg.Fortune.DayResetOffsetSeconds)
	require.Equal(t, 365*24*time.Hour, cfg.Fortune.HistoryWindow)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, 30*time.Second, cfg.Redis.LeaderboardTTL)
	require.Equal(t, 5, cfg.RateLimit.RegisterPerMinute)
	require.Equal(t, 10, cfg.RateLimit.LoginPerMinute)
	require.Equal(t, time.Minute, cfg.Worker.ActivityUniquePeriod)
	require.Equal(t, 720*time.Hour, cfg.JWT.TTL)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "America/New_York")
	t.Setenv("DAY_RESET_OFFSET_SECONDS", "-3600")

	cfg, err := config.Load(writeConfig(t, `
fortune:
  timezone: Europe/Berlin
  dayResetOffsetSeconds: 7200
  historyWindow: 720h
redis:
  addr: localhost:6379
  leaderboardTTL: 1m
`))
	require.NoError(t, err)

	require.Equal(t, "America/New_York", cfg.Fortune.Timezone)
	require.Equal(t, -3600, cfg.Fortune.DayResetOffsetSeconds)
	require.Equal(t, 720*time.Hour, cfg.Fortune.HistoryWindow)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, time.Minute, cfg.Redis.LeaderboardTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
