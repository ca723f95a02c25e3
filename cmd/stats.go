package cmd

import (
	"slices"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/anhncs/CommunityDetectionCodes/bfs"
	"github.com/anhncs/CommunityDetectionCodes/core"
)

// networkStats is the YAML document printed by the stats command.
type networkStats struct {
	Nodes      int         `yaml:"nodes"`
	Edges      int         `yaml:"edges"`
	Duplicates int         `yaml:"duplicates"`
	Components int         `yaml:"components"`
	Largest    int         `yaml:"largest_component"`
	Isolated   int         `yaml:"isolated"`
	// Diameter is a double-sweep lower bound for the largest component.
	Diameter   int         `yaml:"diameter_lower_bound"`
	Degree     degreeStats `yaml:"degree"`
}

type degreeStats struct {
	Min  int     `yaml:"min"`
	Max  int     `yaml:"max"`
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

func newStatsCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [edge list]",
		Short: "Print size, connectivity and degree statistics of a network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := input.Config(cmd.Flags())
			if err != nil {
				return err
			}
			net, err := readNetwork(cmd, inputPath(args), cfg.Weighted)
			if err != nil {
				return err
			}
			st, err := computeStats(net.Graph)
			if err != nil {
				return err
			}
			st.Duplicates = net.Duplicates

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(st)
		},
	}
}

func computeStats(g *core.Graph) (networkStats, error) {
	st := networkStats{
		Nodes:    g.Size(),
		Edges:    g.NumEdges(),
		Isolated: len(g.IsolatedNodes()),
	}
	cc := topo.ConnectedComponents(core.Undirected(g))
	st.Components = len(cc)
	start := -1
	for _, c := range cc {
		if len(c) > st.Largest {
			st.Largest = len(c)
			start = int(c[0].ID())
		}
	}
	if start >= 0 {
		d, err := diameterLowerBound(g, start)
		if err != nil {
			return st, err
		}
		st.Diameter = d
	}

	degrees := g.DegreeSequence()
	if len(degrees) == 0 {
		return st, nil
	}
	xs := make([]float64, len(degrees))
	for i, d := range degrees {
		xs[i] = float64(d)
	}
	st.Degree = degreeStats{Min: slices.Min(degrees), Max: slices.Max(degrees)}
	st.Degree.Mean, st.Degree.Std = stat.MeanStdDev(xs, nil)

	return st, nil
}

// diameterLowerBound runs two BFS sweeps: from start, then from the last node
// the first sweep reached. The depth of the second sweep's last node is a
// lower bound on the diameter of start's component (exact on trees).
func diameterLowerBound(g *core.Graph, start int) (int, error) {
	first, err := bfs.BFS(g, start)
	if err != nil {
		return 0, err
	}
	far := first.Order[len(first.Order)-1]
	second, err := bfs.BFS(g, far)
	if err != nil {
		return 0, err
	}

	return second.Depth[second.Order[len(second.Order)-1]], nil
}
