package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sparsead/ad"
	"github.com/katalvlaran/sparsead/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ad.DefaultTolerance, cfg.Check.Tolerance)
	assert.Equal(t, ad.DefaultStep, cfg.Check.Step)
	assert.Equal(t, "checked", cfg.Engine.AccessMode)
	assert.Equal(t, sparse.Checked, cfg.AccessMode())
	assert.Len(t, cfg.CheckOptions(), 2)
	assert.Len(t, cfg.BatchOptions(nil), 4)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparsead.yaml")
	data := []byte("check:\n  tolerance: 1e-4\nengine:\n  access_mode: trusted\nbatch:\n  workers: 9\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1e-4, cfg.Check.Tolerance)
	assert.Equal(t, ad.DefaultStep, cfg.Check.Step, "unset keys keep defaults")
	assert.Equal(t, sparse.Trusted, cfg.AccessMode())
	assert.Equal(t, 9, cfg.Batch.Workers)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("check: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.yaml")
	want := Default()
	want.Batch.Workers = 2
	want.Logging.Level = "debug"
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("values replace file settings", func(t *testing.T) {
		t.Setenv(EnvTolerance, "0.01")
		t.Setenv(EnvStep, "1e-3")
		t.Setenv(EnvAccessMode, "trusted")
		t.Setenv(EnvWorkers, "3")
		t.Setenv(EnvLogLevel, "warn")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 0.01, cfg.Check.Tolerance)
		assert.Equal(t, 1e-3, cfg.Check.Step)
		assert.Equal(t, "trusted", cfg.Engine.AccessMode)
		assert.Equal(t, 3, cfg.Batch.Workers)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("unparsable numbers fail", func(t *testing.T) {
		t.Setenv(EnvWorkers, "many")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tolerance", func(c *Config) { c.Check.Tolerance = 0 }},
		{"negative step", func(c *Config) { c.Check.Step = -1 }},
		{"unknown access mode", func(c *Config) { c.Engine.AccessMode = "fast" }},
		{"no workers", func(c *Config) { c.Batch.Workers = 0 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Batch.Workers = -2
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
	cfg = Default()
	cfg.Engine.AccessMode = "fast"
	assert.ErrorIs(t, cfg.Validate(), sparse.ErrSyntax)
}

func TestLogger(t *testing.T) {
	cfg := Default()
	l, err := cfg.Logger(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = cfg.Logger(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	cfg.Logging.Level = "loud"
	_, err = cfg.Logger(false)
	assert.Error(t, err)
}
