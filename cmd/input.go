package cmd

import (
	"github.com/spf13/pflag"

	"github.com/anhncs/CommunityDetectionCodes/config"
)

// Input contains the flag values of every command
type Input struct {
	configFile  string
	envFile     string
	logLevel    string
	logFormat   string
	metricsFile string
	seed        int64
	weighted    bool

	output string
	dot    bool

	rounds       int
	limit        int
	maxProposals int

	attemptsPerEdge int

	mode    string
	samples int
	workers int
	outDir  string
}

// overrides maps a flag name to the config field it replaces.
func (i *Input) overrides() map[string]func(*config.Config) {
	return map[string]func(*config.Config){
		"log-level":         func(c *config.Config) { c.LogLevel = i.logLevel },
		"log-format":        func(c *config.Config) { c.LogFormat = i.logFormat },
		"metrics-file":      func(c *config.Config) { c.MetricsFile = i.metricsFile },
		"seed":              func(c *config.Config) { c.Seed = i.seed },
		"weighted":          func(c *config.Config) { c.Weighted = i.weighted },
		"rounds":            func(c *config.Config) { c.Rounds = i.rounds },
		"limit":             func(c *config.Config) { c.Limit = i.limit },
		"max-proposals":     func(c *config.Config) { c.MaxProposals = i.maxProposals },
		"attempts-per-edge": func(c *config.Config) { c.AttemptsPerEdge = i.attemptsPerEdge },
		"mode":              func(c *config.Config) { c.Mode = i.mode },
		"samples":           func(c *config.Config) { c.Samples = i.samples },
		"workers":           func(c *config.Config) { c.Workers = i.workers },
	}
}

// Config loads the file and environment layers and applies the flags that
// were set explicitly on the command line.
func (i *Input) Config(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(i.configFile, i.envFile)
	if err != nil {
		return nil, err
	}
	set := i.overrides()
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := set[f.Name]; ok {
			apply(cfg)
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
