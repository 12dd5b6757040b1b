// Package config loads the tunable constants left as named
// parameters rather than hard constants: the ordering
// heuristic's thresholds and the default worker count. Grounded on
// graph-clustering-backend/src2/config's nested Config/Default-then-overlay
// shape, backed by github.com/BurntSushi/toml instead of environment
// variables since these are per-run tunables, not deployment secrets.
package config

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable constant a pivotscale run reads.
type Config struct {
	Ordering OrderingConfig `toml:"ordering"`
	Runtime  RuntimeConfig  `toml:"runtime"`
}

// OrderingConfig parameterizes the heuristic selector and
// the approximate core ordering's epsilon.
type OrderingConfig struct {
	LargeNThreshold int     `toml:"large_n_threshold"`
	ParamA          float64 `toml:"param_a"`
	ParamB          float64 `toml:"param_b"`
	Epsilon         float64 `toml:"epsilon"`
}

// RuntimeConfig controls the worker-pool fan-out width.
type RuntimeConfig struct {
	// NumWorkers is the worker count for directionalization and pivot
	// enumeration. 0 means runtime.NumCPU().
	NumWorkers int `toml:"num_workers"`
}

// Default returns the hardcoded defaults: large_n_threshold
// 1_000_000, param_a 0.0015, param_b 0.1, epsilon -0.5,
// mirroring the original's hardcoded constants in ordering.h.
func Default() *Config {
	return &Config{
		Ordering: OrderingConfig{
			LargeNThreshold: 1_000_000,
			ParamA:          0.0015,
			ParamB:          0.1,
			Epsilon:         -0.5,
		},
		Runtime: RuntimeConfig{
			NumWorkers: 0,
		},
	}
}

// Load overlays a TOML file at path on top of Default(). Fields absent from
// the file keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvedWorkers returns NumWorkers, substituting runtime.NumCPU() for the
// "auto" sentinel value 0.
func (c *Config) ResolvedWorkers() int {
	if c.Runtime.NumWorkers > 0 {
		return c.Runtime.NumWorkers
	}
	return runtime.NumCPU()
}
