package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/pathgeom"
)

func TestLoadConfig(t *testing.T) {
	want := Config{
		Tolerance:    0.5,
		AbsTol:       0.01,
		RelTol:       1e-9,
		Method:       "subdivision",
		MaxIntervals: 50,
		Strict:       true,
		LogLevel:     "debug",
	}

	cfg, err := LoadConfig(writeFile(t, "config.toml", `
tolerance = 0.5
abs_tol = 0.01
rel_tol = 1e-9
method = "subdivision"
max_intervals = 50
strict = true
log_level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, want, cfg)

	for _, name := range []string{"config.yaml", "config.YML"} {
		cfg, err = LoadConfig(writeFile(t, name, `
tolerance: 0.5
abs_tol: 0.01
rel_tol: 1.0e-9
method: subdivision
max_intervals: 50
strict: true
log_level: debug
`))
		require.NoError(t, err, name)
		assert.Equal(t, want, cfg, name)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "config.toml", "strict = true\n"))
	require.NoError(t, err)
	want := DefaultConfig()
	want.Strict = true
	assert.Equal(t, want, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "config.ini", "tolerance = 1\n"))
	assert.ErrorContains(t, err, `unsupported config format ".ini"`)

	_, err = LoadConfig(writeFile(t, "config.toml", "tolerance = \n"))
	assert.ErrorContains(t, err, "parsing config")

	_, err = LoadConfig(writeFile(t, "config.yaml", "tolerance: [1\n"))
	assert.ErrorContains(t, err, "parsing config")

	_, err = LoadConfig("missing.yaml")
	assert.ErrorContains(t, err, "reading config")
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		modify func(*Config)
		err    string
	}{
		{func(cfg *Config) { cfg.Tolerance = 0 }, "tolerance must be positive"},
		{func(cfg *Config) { cfg.Tolerance = -1 }, "tolerance must be positive"},
		{func(cfg *Config) { cfg.AbsTol = -1 }, "can't be negative"},
		{func(cfg *Config) { cfg.MaxIntervals = -1 }, "max_intervals can't be negative"},
		{func(cfg *Config) { cfg.Method = "euler" }, "unknown arc length method"},
		{func(cfg *Config) { cfg.LogLevel = "loud" }, "log_level"},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.modify(&cfg)
		assert.ErrorContains(t, cfg.Validate(), c.err)
	}
}

func TestConfigLengthOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tolerance = 0.25
	cfg.Method = "Subdivision"
	opts, err := cfg.LengthOptions()
	require.NoError(t, err)
	assert.Equal(t, pathgeom.LengthOptions{Method: pathgeom.Subdivision, AbsTol: 0.25}, opts)

	cfg.AbsTol = 1e-6
	opts, err = cfg.LengthOptions()
	require.NoError(t, err)
	assert.Equal(t, 1e-6, opts.AbsTol)

	cfg.LogLevel = "INFO"
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}
