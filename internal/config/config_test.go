package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := []byte(`
api:
  base_url: https://example.test
  timeout: 3s
defaults:
  user_id: 7
log:
  file: /tmp/postboard.log
`)
		assert.NoError(t, os.WriteFile(path, data, 0o644))

		cfg, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, "https://example.test", cfg.API.BaseURL)
		assert.Equal(t, Duration(3*time.Second), cfg.API.Timeout)
		assert.Equal(t, 7, cfg.Defaults.UserID)
		assert.Equal(t, "/tmp/postboard.log", cfg.Log.File)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.NoError(t, err)
		assert.Equal(t, defaultBaseURL, cfg.API.BaseURL)
		assert.Equal(t, Duration(defaultTimeout), cfg.API.Timeout)
		assert.Equal(t, defaultUserID, cfg.Defaults.UserID)
		assert.Equal(t, "", cfg.Log.File)
	})

	t.Run("partial config gets defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("log:\n  file: app.log\n"), 0o644))

		cfg, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, defaultBaseURL, cfg.API.BaseURL)
		assert.Equal(t, Duration(defaultTimeout), cfg.API.Timeout)
		assert.Equal(t, "app.log", cfg.Log.File)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("api: [broken"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("api:\n  timeout: soon\n"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
