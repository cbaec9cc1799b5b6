package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-go/tagkit/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "tagkit", cfg.Metrics.Namespace)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
	assert.False(t, cfg.Pretty)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Path())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
pretty: true
log:
  level: debug
metrics:
  enabled: true
`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "tagkit", cfg.Metrics.Namespace)
	assert.Equal(t, path, cfg.Path())
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o644))
		_, err := LoadFile(path)
		var te *errors.TagkitError
		require.True(t, stderrors.As(err, &te))
		assert.Equal(t, errors.CodeConfig, te.Code)
	})

	t.Run("bad level", func(t *testing.T) {
		path := filepath.Join(dir, "level.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, errors.FromError(err).Detail, "loud")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
