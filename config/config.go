// SPDX-License-Identifier: MIT
// Package: config
//
// config.go - run configuration for the netrand command.
//
// Precedence (lowest to highest):
//   • Default()
//   • YAML file (unknown keys rejected)
//   • .env file, loaded into the process environment (never overrides
//     variables that are already set)
//   • NETRAND_* environment variables
//   • command-line flags (applied by the caller)

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NETRAND_"

// Modes understood by the ensemble runner.
const (
	ModeRandomize = "randomize"
	ModeConfModel = "confmodel"
)

// ErrInvalidConfig marks a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds every knob of a netrand run.
type Config struct {
	Rounds          int    `yaml:"rounds"`
	Limit           int    `yaml:"limit"`
	Seed            int64  `yaml:"seed"`
	Weighted        bool   `yaml:"weighted"`
	MaxProposals    int    `yaml:"max_proposals"`
	AttemptsPerEdge int    `yaml:"attempts_per_edge"`
	Mode            string `yaml:"mode"`
	Samples         int    `yaml:"samples"`
	Workers         int    `yaml:"workers"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	MetricsFile     string `yaml:"metrics_file"`
}

// Default returns the documented defaults: 10 rounds, limit 15, seed 1.
func Default() *Config {
	return &Config{
		Rounds:          10,
		Limit:           15,
		Seed:            1,
		MaxProposals:    randomize.DefaultMaxProposals,
		AttemptsPerEdge: 100,
		Mode:            ModeRandomize,
		Samples:         10,
		Workers:         0,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load builds a Config from defaults, the optional YAML file at path, the
// optional dotenv file at envFile and the NETRAND_* environment. Empty paths
// are skipped. The result is validated.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: env file %s: %w", envFile, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode overlays YAML from r onto c. An empty document is not an error.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ApplyEnv overlays NETRAND_<FIELD> variables found through lookup.
// Field names are the YAML keys upper-cased (NETRAND_ROUNDS, NETRAND_LOG_LEVEL).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"ROUNDS":            &c.Rounds,
		"LIMIT":             &c.Limit,
		"MAX_PROPOSALS":     &c.MaxProposals,
		"ATTEMPTS_PER_EDGE": &c.AttemptsPerEdge,
		"SAMPLES":           &c.Samples,
		"WORKERS":           &c.Workers,
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, ErrInvalidConfig)
			}
			*dst = n
		}
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvPrefix + "WEIGHTED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sWEIGHTED=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.Weighted = b
	}
	strs := map[string]*string{
		"MODE":         &c.Mode,
		"LOG_LEVEL":    &c.LogLevel,
		"LOG_FORMAT":   &c.LogFormat,
		"METRICS_FILE": &c.MetricsFile,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	return nil
}

// Validate checks every field against its domain. Limit is only checked for
// being positive; clamping to the network size happens once it is known.
func (c *Config) Validate() error {
	switch {
	case c.Rounds < 0:
		return fmt.Errorf("config: rounds=%d: %w", c.Rounds, ErrInvalidConfig)
	case c.Limit < 1:
		return fmt.Errorf("config: limit=%d: %w", c.Limit, ErrInvalidConfig)
	case c.MaxProposals < 1:
		return fmt.Errorf("config: max_proposals=%d: %w", c.MaxProposals, ErrInvalidConfig)
	case c.AttemptsPerEdge < 0:
		return fmt.Errorf("config: attempts_per_edge=%d: %w", c.AttemptsPerEdge, ErrInvalidConfig)
	case c.Mode != ModeRandomize && c.Mode != ModeConfModel:
		return fmt.Errorf("config: mode=%q: %w", c.Mode, ErrInvalidConfig)
	case c.Samples < 1:
		return fmt.Errorf("config: samples=%d: %w", c.Samples, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("config: workers=%d: %w", c.Workers, ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("config: log_format=%q: %w", c.LogFormat, ErrInvalidConfig)
	}

	return nil
}

// ClampLimit returns Limit bounded to [1, n] for a network of n nodes.
func (c *Config) ClampLimit(n int) int {
	return max(1, min(c.Limit, n))
}
