package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
)

// clearEnv unsets every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvConfigPath, config.EnvPerPage, config.EnvMaxVisible,
		config.EnvVariant, config.EnvLogLevel, config.EnvLogFormat,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, config.CurrentSchemaVersion, cfg.SchemaVersion)
	assert.Equal(t, 10, cfg.Pagination.PerPage)
	assert.Equal(t, 7, cfg.Pagination.MaxVisiblePages)
	assert.Equal(t, config.DefaultVariant, cfg.Pagination.Variant)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("file values", func(t *testing.T) {
		path := writeConfig(t, `
schema_version: 1.4.2
pagination:
  per_page: 25
  max_visible_pages: 5
  variant: compact
logging:
  level: debug
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Pagination.PerPage)
		assert.Equal(t, 5, cfg.Pagination.MaxVisiblePages)
		assert.Equal(t, "compact", cfg.Pagination.Variant)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
	})

	t.Run("env path", func(t *testing.T) {
		path := writeConfig(t, "pagination:\n  per_page: 3\n  max_visible_pages: 3\n")
		t.Setenv(config.EnvConfigPath, path)
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Pagination.PerPage)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "pagination: [oops"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})

	t.Run("unsupported schema", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "schema_version: 2.0.0\n"))
		require.ErrorIs(t, err, config.ErrUnsupportedSchema)
	})

	t.Run("malformed schema", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "schema_version: banana\n"))
		require.ErrorIs(t, err, config.ErrInvalidSchema)
	})

	t.Run("out of range pagination", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "pagination:\n  per_page: 0\n  max_visible_pages: 5\n"))
		require.ErrorIs(t, err, config.ErrInvalidPagination)
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvPerPage:    "40",
		config.EnvMaxVisible: " 11 ",
		config.EnvVariant:    "Minimal",
		config.EnvLogLevel:   "warn",
		config.EnvLogFormat:  "json",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := config.New()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 40, cfg.Pagination.PerPage)
	assert.Equal(t, 11, cfg.Pagination.MaxVisiblePages)
	assert.Equal(t, "minimal", cfg.Pagination.Variant)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	env[config.EnvPerPage] = "many"
	err := config.New().ApplyEnv(lookup)
	require.ErrorIs(t, err, config.ErrInvalidEnvValue)
}

func TestApplyEnv_EmptyValuesAreUnset(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == config.EnvMaxVisible {
			return "  ", true
		}
		return "", true
	}

	cfg := config.New()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, config.New(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.Pagination.PerPage = 15
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGlobalConfig(t *testing.T) {
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	assert.Equal(t, config.New(), config.GetGlobalConfig())

	cfg := config.New()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "pagenav.log")
	config.SetGlobalConfig(cfg)
	assert.Same(t, cfg, config.GetGlobalConfig())

	require.NoError(t, config.EnsureLogDir())
	_, err := os.Stat(filepath.Dir(cfg.Logging.File))
	require.NoError(t, err)
}

func TestToLoggingConfig(t *testing.T) {
	stderr := config.LoggingConfig{Level: "debug", Format: "json"}
	assert.Equal(t, logging.Config{Level: "debug", Format: "json", Output: logging.OutputStderr}, stderr.ToLoggingConfig())

	file := config.LoggingConfig{Level: "info", File: "/tmp/pagenav.log", MaxSizeMB: 5, MaxBackups: 2}
	got := file.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/pagenav.log", got.File)
	assert.Equal(t, 5, got.MaxSizeMB)
	assert.Equal(t, 2, got.MaxBackups)
	assert.Zero(t, got.MaxAgeDays)
}

func TestDefaultPathFromEnv(t *testing.T) {
	custom := func(key string) (string, bool) {
		if key == config.EnvConfigPath {
			return "/etc/pagenav.yaml", true
		}
		return "", false
	}
	assert.Equal(t, "/etc/pagenav.yaml", config.DefaultPathFromEnv(custom))

	unset := func(string) (string, bool) { return "", false }
	path := config.DefaultPathFromEnv(unset)
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, ".pagenav", filepath.Base(filepath.Dir(path)))
}
