package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/config"
)

// chdir switches the working directory for the duration of the test so that
// Load does not pick up a .env from the repository.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "inputs", cfg.InputDir)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Cache.Enabled)
	require.Equal(t, ".aoc-cache", cfg.Cache.Dir)
	require.Positive(t, cfg.Workers)
}

func TestLoad_LayersOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Cleanup(func() { os.Unsetenv("AOC_CACHE_PREFIX") })

	yml := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(`
input_dir: puzzles
workers: 3
log:
  level: debug
cache:
  enabled: true
  ttl: 2h
  redis_url: redis://localhost:6379/0
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AOC_CACHE_PREFIX=fromdotenv\n"), 0o644))
	t.Setenv("AOC_WORKERS", "5")

	cfg, err := config.Load(yml)
	require.NoError(t, err)
	require.Equal(t, "puzzles", cfg.InputDir)
	require.Equal(t, 5, cfg.Workers)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 2*time.Hour, cfg.Cache.TTL)
	require.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	require.Equal(t, "fromdotenv", cfg.Cache.Prefix)
}

func TestLoad_MissingYAML(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := config.Load("does-not-exist.yaml")
	require.Error(t, err)
}

func TestLoad_BadEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AOC_WORKERS", "many")
	_, err := config.Load("")
	require.Error(t, err)
}
