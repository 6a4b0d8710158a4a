package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesPaths(t *testing.T) {
	t.Parallel()
	cfg, err := New("data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", DefaultDBName), cfg.DBPath)
	assert.Equal(t, filepath.Join("data", "current-player.json"), cfg.SelectionPath)
	assert.Equal(t, 5*time.Second, cfg.BusyTimeout)
}

func TestNewRejectsEmptyDataDir(t *testing.T) {
	t.Parallel()
	_, err := New("  ")
	assert.Error(t, err)
}

func TestLoadReadsFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hypersomnia.yaml")
	content := "data_dir: " + dir + "\nlog_level: debug\nbusy_timeout: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("HYPERSOMNIA_ENVIRONMENT", "production")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.BusyTimeout)
	assert.Equal(t, filepath.Join(dir, DefaultDBName), cfg.DBPath)
}

func TestLoadEnvironmentOverridesDBPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("HYPERSOMNIA_DB_PATH", dbPath)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dbPath, cfg.DBPath)
	assert.Equal(t, defaultDataDir, cfg.DataDir)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	t.Parallel()
	cfg := Config{DataDir: "d", DBPath: "d/x.db"}
	assert.Error(t, cfg.Validate())
	cfg.BusyTimeout = time.Second
	assert.NoError(t, cfg.Validate())
}

func TestResolveDerivesPathsAfterOverride(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := Resolve(Config{DataDir: dir, BusyTimeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultDBName), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "current-player.json"), cfg.SelectionPath)

	_, err = Resolve(Config{BusyTimeout: time.Second})
	assert.Error(t, err)
}
