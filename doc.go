// Package netrand builds randomized null models of undirected networks.
//
// A randomized surrogate keeps every node's degree and, by default, the
// network's connectivity, so community structure found in the original (for
// example by clique percolation) can be compared against chance.
//
// Packages:
//
//	core/      - int-indexed undirected graph store, Generator, gonum view
//	bfs/       - full and bounded (lock-step, two-sided) breadth-first search
//	randomize/ - connectivity-preserving pair swaps and the round orchestrator
//	confmodel/ - configuration-model sampler (degrees only)
//	ensemble/  - many independent samples in parallel
//	builder/   - deterministic fixtures: cycles, grids, rings of cliques, ...
//	edgelist/  - edge-list reader/writer and DOT export
//	metrics/   - Prometheus diagnostics for swaps and verifications
//	config/    - YAML / dotenv / NETRAND_* run configuration
//	cmd/       - the netrand command line
//
// Quick start:
//
//	g := builder.MustBuild(nil, builder.RingOfCliques(4, 5))
//	res, err := randomize.Randomize(g, core.NewGenerator(1), 10, 15)
//
// or, from a shell:
//
//	netrand randomize network.edges -o surrogate.edges --rounds 10 --limit 15
//
//	go install github.com/anhncs/CommunityDetectionCodes/cmd/netrand@latest
package netrand
