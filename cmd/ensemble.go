package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/anhncs/CommunityDetectionCodes/edgelist"
	"github.com/anhncs/CommunityDetectionCodes/ensemble"
	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

// manifestName is written next to the samples of an ensemble run.
const manifestName = "manifest.yaml"

// manifest describes an ensemble output directory.
type manifest struct {
	RunID             string           `yaml:"run_id"`
	Mode              string           `yaml:"mode"`
	Nodes             int              `yaml:"nodes"`
	Edges             int              `yaml:"edges"`
	ConnectedFraction float64          `yaml:"connected_fraction"`
	MeanTriesPerSwap  float64          `yaml:"mean_tries_per_swap,omitempty"`
	Samples           []manifestSample `yaml:"samples"`
}

type manifestSample struct {
	File      string `yaml:"file"`
	Seed      int64  `yaml:"seed"`
	Connected bool   `yaml:"connected"`
	Rollbacks int    `yaml:"rollbacks,omitempty"`
	Swaps     int    `yaml:"swaps,omitempty"`
}

func newEnsembleCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensemble [edge list]",
		Short: "Draw several independent null-model samples into a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newEnsembleAction(ctx, input),
	}
	cmd.Flags().StringVarP(&input.outDir, "out-dir", "d", "", "directory receiving the samples and "+manifestName)
	cmd.Flags().StringVarP(&input.mode, "mode", "m", "randomize", "null model: randomize or confmodel")
	cmd.Flags().IntVarP(&input.samples, "samples", "n", 10, "number of samples; sample k uses seed+k")
	cmd.Flags().IntVarP(&input.workers, "workers", "j", 0, "samples drawn at once (0 means one per CPU)")
	cmd.Flags().IntVarP(&input.rounds, "rounds", "r", 10, "randomize: verified rounds per sample")
	cmd.Flags().IntVarP(&input.limit, "limit", "l", 15, "randomize: initial traversal budget")
	cmd.Flags().IntVar(&input.maxProposals, "max-proposals", randomize.DefaultMaxProposals, "randomize: proposals allowed per accepted swap")
	cmd.Flags().IntVar(&input.attemptsPerEdge, "attempts-per-edge", 100, "confmodel: swap attempts per edge")
	cmd.Flags().BoolVar(&input.dot, "dot", false, "write Graphviz DOT samples")
	_ = cmd.MarkFlagRequired("out-dir")

	return cmd
}

func newEnsembleAction(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := input.Config(cmd.Flags())
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		net, err := readNetwork(cmd, inputPath(args), cfg.Weighted)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(input.outDir, 0o755); err != nil {
			return err
		}
		m := newRunMetrics(cfg.MetricsFile)

		rep, err := ensemble.Run(ctx, net.Graph, ensemble.Params{
			Mode:            ensemble.Mode(cfg.Mode),
			Samples:         cfg.Samples,
			Seed:            cfg.Seed,
			Rounds:          cfg.Rounds,
			Limit:           cfg.ClampLimit(net.Graph.Size()),
			MaxProposals:    cfg.MaxProposals,
			AttemptsPerEdge: cfg.AttemptsPerEdge,
		},
			ensemble.WithWorkers(cfg.Workers),
			ensemble.WithLogger(logger),
			ensemble.WithRecorder(m.recorder()),
		)
		if err != nil {
			return err
		}

		man := manifest{
			RunID:             rep.RunID,
			Mode:              string(rep.Mode),
			Nodes:             net.Graph.Size(),
			Edges:             net.Graph.NumEdges(),
			ConnectedFraction: rep.ConnectedFraction,
			MeanTriesPerSwap:  rep.MeanTriesPerSwap,
		}
		ext := ".edges"
		if input.dot {
			ext = ".dot"
		}
		for _, s := range rep.Samples {
			name := fmt.Sprintf("sample-%03d%s", s.Index, ext)
			out := &edgelist.Network{Graph: s.Graph, Names: net.Names, Index: net.Index}
			if err := writeNetwork(cmd, filepath.Join(input.outDir, name), out, cfg.Weighted, input.dot); err != nil {
				return err
			}
			ms := manifestSample{File: name, Seed: s.Seed, Connected: s.Connected, Swaps: s.Swaps}
			if s.Result != nil {
				ms.Rollbacks = s.Result.Rollbacks
			}
			man.Samples = append(man.Samples, ms)
		}
		if err := writeManifest(filepath.Join(input.outDir, manifestName), &man); err != nil {
			return err
		}

		return m.flush()
	}
}

func writeManifest(path string, man *manifest) error {
	b, err := yaml.Marshal(man)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
