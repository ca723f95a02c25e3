package core_test

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/core"
)

// ExampleGraph_SetEdge shows edge toggling through the NoEdge sentinel.
func ExampleGraph_SetEdge() {
	//	0───1
	//	│   │
	//	3───2
	g := core.NewGraph(4)
	for i := 0; i < 4; i++ {
		g.SetEdge(i, (i+1)%4, core.DefaultWeight)
	}
	fmt.Println(g.NumEdges(), g.DegreeSequence())

	g.SetEdge(0, 1, core.NoEdge)
	fmt.Println(g.NumEdges(), g.HasEdge(1, 0), g.DegreeSequence())
	// Output:
	// 4 [2 2 2 2]
	// 3 false [1 1 2 2]
}
