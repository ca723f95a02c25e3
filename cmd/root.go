package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anhncs/CommunityDetectionCodes/config"
	"github.com/anhncs/CommunityDetectionCodes/edgelist"
	"github.com/anhncs/CommunityDetectionCodes/metrics"
	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	rootCmd := createRootCommand(ctx, &Input{}, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "netrand",
		Short:        "Randomize networks while keeping node degrees (and, by default, connectivity).",
		Version:      version,
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&input.configFile, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&input.envFile, "env-file", "", "path to a dotenv file with NETRAND_* variables")
	pf.StringVar(&input.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&input.logFormat, "log-format", "text", "log format (text or json)")
	pf.StringVar(&input.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")
	pf.Int64VarP(&input.seed, "seed", "s", 1, "random seed")
	pf.BoolVarP(&input.weighted, "weighted", "w", false, "edge lists carry a third weight column")

	rootCmd.AddCommand(
		newRandomizeCommand(ctx, input),
		newConfModelCommand(ctx, input),
		newEnsembleCommand(ctx, input),
		newStatsCommand(input),
	)

	return rootCmd
}

// newLogger builds the logger for one command from the resolved config.
func newLogger(cfg *config.Config, out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return logger, nil
}

// runMetrics is the optional Prometheus sink of a command.
type runMetrics struct {
	reg  *prometheus.Registry
	rec  *metrics.Recorder
	path string
}

func newRunMetrics(path string) *runMetrics {
	if path == "" {
		return nil
	}
	reg := prometheus.NewRegistry()

	return &runMetrics{reg: reg, rec: metrics.New(reg), path: path}
}

// recorder returns nil (not a typed nil) when metrics are off.
func (m *runMetrics) recorder() randomize.Recorder {
	if m == nil {
		return nil
	}
	return m.rec
}

func (m *runMetrics) flush() error {
	if m == nil {
		return nil
	}
	return metrics.WriteTextfile(m.path, m.reg)
}

// readNetwork reads an edge list from path, or from stdin when path is "" or "-".
func readNetwork(cmd *cobra.Command, path string, weighted bool) (*edgelist.Network, error) {
	var opts []edgelist.Option
	if weighted {
		opts = append(opts, edgelist.WithWeights())
	}
	if path == "" || path == "-" {
		return edgelist.Read(cmd.InOrStdin(), opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	net, err := edgelist.Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return net, nil
}

// writeNetwork writes net to path, or to stdout when path is "" or "-".
func writeNetwork(cmd *cobra.Command, path string, net *edgelist.Network, weighted, asDOT bool) error {
	w := cmd.OutOrStdout()
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if asDOT {
		return edgelist.WriteDOT(w, net, "netrand")
	}

	return edgelist.Write(w, net, weighted)
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func addOutputFlags(cmd *cobra.Command, input *Input) {
	cmd.Flags().StringVarP(&input.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&input.dot, "dot", false, "write Graphviz DOT instead of an edge list")
}
