package main

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"honnef.co/go/pathgeom"
)

// Config holds the settings shared by all commands. It can be loaded from
// a TOML or YAML file; command line flags take precedence.
type Config struct {
	// Tolerance is the flattening tolerance and the default accuracy of
	// length queries.
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
	// AbsTol and RelTol override the requested error of length queries.
	AbsTol       float64 `toml:"abs_tol" yaml:"abs_tol"`
	RelTol       float64 `toml:"rel_tol" yaml:"rel_tol"`
	Method       string  `toml:"method" yaml:"method"`
	MaxIntervals int     `toml:"max_intervals" yaml:"max_intervals"`
	// Strict rejects discontinuous paths instead of bridging gaps.
	Strict   bool   `toml:"strict" yaml:"strict"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Tolerance: pathgeom.DefaultTolerance,
		Method:    pathgeom.Quadrature.String(),
		LogLevel:  "warn",
	}
}

// LoadConfig reads a config file. The format is chosen by the file
// extension. Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, errors.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if !(cfg.Tolerance > 0) || math.IsInf(cfg.Tolerance, 1) {
		return errors.Errorf("tolerance must be positive, got %g", cfg.Tolerance)
	}
	if cfg.AbsTol < 0 || cfg.RelTol < 0 {
		return errors.Errorf("abs_tol and rel_tol can't be negative")
	}
	if cfg.MaxIntervals < 0 {
		return errors.Errorf("max_intervals can't be negative, got %d", cfg.MaxIntervals)
	}
	if _, err := cfg.LengthOptions(); err != nil {
		return err
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

func (cfg Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, errors.Wrap(err, "log_level")
	}
	return l, nil
}

func (cfg Config) LengthOptions() (pathgeom.LengthOptions, error) {
	m, err := pathgeom.ParseArclenMethod(cfg.Method)
	if err != nil {
		return pathgeom.LengthOptions{}, err
	}
	opts := pathgeom.LengthOptions{
		Method:       m,
		AbsTol:       cfg.AbsTol,
		RelTol:       cfg.RelTol,
		MaxIntervals: cfg.MaxIntervals,
	}
	if opts.AbsTol == 0 {
		opts.AbsTol = cfg.Tolerance
	}
	return opts, nil
}
