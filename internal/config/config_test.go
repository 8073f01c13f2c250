package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("SERVER_ADDR", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "your_projects/locker.json", cfg.Locker.Path)
	require.False(t, cfg.Locker.Watch)
	require.Equal(t, "your_projects", cfg.Assets.Dir)
	require.Equal(t, "/your_projects", cfg.Assets.Prefix)
	require.Equal(t, "Lance Locker • Portfolio", cfg.Site.Title)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.File)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOCKER_LOCKER_PATH", "/srv/locker.yaml")
	t.Setenv("LOCKER_LOCKER_WATCH", "true")
	t.Setenv("LOCKER_ASSETS_PREFIX", "files/")
	t.Setenv("SERVER_ADDR", ":9000")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/srv/locker.yaml", cfg.Locker.Path)
	require.True(t, cfg.Locker.Watch)
	require.Equal(t, "/files", cfg.Assets.Prefix)
	require.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoadPortFallback(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Server.Addr)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PORT", "")
	t.Setenv("SERVER_ADDR", "")
	body := "server:\n  addr: \":7070\"\nsite:\n  title: Ada's Shop\ndev: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, "Ada's Shop", cfg.Site.Title)
	require.True(t, cfg.Dev)
	require.NotEmpty(t, cfg.File)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
