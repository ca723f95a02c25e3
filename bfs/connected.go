// File: connected.go
// Role: Exact global connectivity: Connected and Components.
// Complexity: O(N + E) time, O(N) space.

package bfs

import "github.com/anhncs/CommunityDetectionCodes/core"

// Connected reports whether every node of g is reachable from node 0.
// The empty graph and the single-node graph are connected. A nil graph is not.
func Connected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	n := g.Size()
	if n <= 1 {
		return true
	}
	seen := make([]bool, n)

	return sweep(g, 0, seen, nil) == n
}

// Components returns the connected components of g. Components are listed in
// order of their smallest node; nodes inside a component appear in BFS order.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.Size()
	seen := make([]bool, n)
	var out [][]int
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		comp := make([]int, 0, 1)
		sweep(g, s, seen, &comp)
		out = append(out, comp)
	}

	return out
}

// sweep marks everything reachable from s in seen and returns how many nodes
// it marked. When order is non-nil, visited nodes are appended to it.
func sweep(g *core.Graph, s int, seen []bool, order *[]int) int {
	queue := []int{s}
	seen[s] = true
	count := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		count++
		if order != nil {
			*order = append(*order, u)
		}
		for v := range g.Neighbors(u) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return count
}
