package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anhncs/CommunityDetectionCodes/confmodel"
	"github.com/anhncs/CommunityDetectionCodes/core"
)

func newConfModelCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confmodel [edge list]",
		Short: "Sample a simple graph with the same degree sequence (connectivity not kept)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  newConfModelAction(ctx, input),
	}
	cmd.Flags().IntVar(&input.attemptsPerEdge, "attempts-per-edge", 100, "swap attempts per edge")
	addOutputFlags(cmd, input)

	return cmd
}

func newConfModelAction(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
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

		links := net.Graph.NumEdges()
		attempts := cfg.AttemptsPerEdge * links
		swaps, err := confmodel.SampleSimple(net.Graph, core.NewGenerator(cfg.Seed), attempts,
			confmodel.WithContext(ctx), confmodel.WithLogger(logger))
		if err != nil {
			return err
		}
		if m != nil {
			m.rec.ObserveChain(attempts, swaps)
		}
		logger.WithFields(log.Fields{
			"attempts":  attempts,
			"swaps":     swaps,
			"untouched": confmodel.UntouchedEdges(links, swaps),
		}).Info("confmodel: done")

		if err := writeNetwork(cmd, input.output, net, cfg.Weighted, input.dot); err != nil {
			return err
		}

		return m.flush()
	}
}
