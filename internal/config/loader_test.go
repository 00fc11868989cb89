package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HISTFILE", "/tmp/histfile")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "/tmp/histfile", cfg.HistoryFile)
	assert.Equal(t, "dark", cfg.Browse.Theme)
	assert.True(t, cfg.Merge.Backup)
}

func TestLoadFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", "/home/tester")

	path := filepath.Join(dir, appName, "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`
history_file: ~/.histfile
log_level: debug
browse:
  theme: light
merge:
  dedupe: true
`), 0644))

	defaultPath, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, path, defaultPath)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.histfile", cfg.HistoryFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "light", cfg.Browse.Theme)
	assert.Equal(t, 5000, cfg.Browse.MaxEntries)
	assert.True(t, cfg.Merge.Dedupe)
	assert.True(t, cfg.Merge.Backup)
}

func TestLoadExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("browse:\n  theme: neon\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "browse.theme")

	require.NoError(t, os.WriteFile(path, []byte("browse: [\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse")
}
