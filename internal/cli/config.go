package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvdist/edt"
	"github.com/katalvlaran/lvdist/textgrid"
)

// Config holds the transform settings that can come from a TOML file.
//
//	workers     = 4
//	unreachable = "clamp"
//	infinity    = 1e20
//	sqrt        = true
//	scale       = [0.0, 255.0]
//	format      = "csv"
type Config struct {
	Workers     int       `toml:"workers"`
	Unreachable string    `toml:"unreachable"`
	Infinity    float64   `toml:"infinity"`
	Sqrt        bool      `toml:"sqrt"`
	Scale       []float64 `toml:"scale"`
	Format      string    `toml:"format"`
}

// defaultConfig mirrors the library defaults.
func defaultConfig() Config {
	return Config{
		Workers:     edt.DefaultWorkers,
		Unreachable: edt.DefaultUnreachable.String(),
		Infinity:    edt.DefaultInfinity,
		Format:      textgrid.FormatText.String(),
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// validate checks the values the edt and textgrid constructors would otherwise panic or fail on.
func (c Config) validate() error {
	if _, err := edt.ParsePolicy(c.Unreachable); err != nil {
		return err
	}
	if _, err := textgrid.ParseFormat(c.Format); err != nil {
		return err
	}
	if !(c.Infinity > 0) || math.IsInf(c.Infinity, 0) {
		return fmt.Errorf("infinity must be finite and > 0, got %g", c.Infinity)
	}
	if c.Scale != nil && len(c.Scale) != 2 {
		return fmt.Errorf("scale needs exactly two values [lo, hi], got %d", len(c.Scale))
	}
	return nil
}

// options converts the config into edt options.
func (c Config) options() ([]edt.Option, error) {
	policy, err := edt.ParsePolicy(c.Unreachable)
	if err != nil {
		return nil, err
	}
	return []edt.Option{
		edt.WithInfinity(c.Infinity),
		edt.WithWorkers(c.Workers),
		edt.WithUnreachable(policy),
	}, nil
}
