package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anhncs/CommunityDetectionCodes/core"
	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

func newRandomizeCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "randomize [edge list]",
		Short: "Rewire a connected network keeping degrees and connectivity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newRandomizeAction(ctx, input),
	}
	cmd.Flags().IntVarP(&input.rounds, "rounds", "r", 10, "number of verified rounds (E swaps each)")
	cmd.Flags().IntVarP(&input.limit, "limit", "l", 15, "initial traversal budget, clamped to [1, N]")
	cmd.Flags().IntVar(&input.maxProposals, "max-proposals", randomize.DefaultMaxProposals, "proposals allowed per accepted swap")
	addOutputFlags(cmd, input)

	return cmd
}

func newRandomizeAction(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
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
		m := newRunMetrics(cfg.MetricsFile)

		res, err := randomize.Randomize(net.Graph, core.NewGenerator(cfg.Seed), cfg.Rounds, cfg.ClampLimit(net.Graph.Size()),
			randomize.WithContext(ctx),
			randomize.WithLogger(logger),
			randomize.WithRecorder(m.recorder()),
			randomize.WithMaxProposals(cfg.MaxProposals),
		)
		if err != nil {
			return err
		}
		logger.WithFields(log.Fields{
			"run_id":         res.RunID,
			"nodes":          net.Graph.Size(),
			"edges":          net.Graph.NumEdges(),
			"rollbacks":      res.Rollbacks,
			"final_limit":    res.FinalLimit,
			"tries_per_swap": res.MeanTriesPerSwap,
		}).Debug("randomize: summary")

		if err := writeNetwork(cmd, input.output, net, cfg.Weighted, input.dot); err != nil {
			return err
		}

		return m.flush()
	}
}
