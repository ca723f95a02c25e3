package builder_test

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/builder"
)

// ExampleRingOfCliques builds three 4-cliques joined in a ring.
func ExampleRingOfCliques() {
	g, err := builder.BuildGraph(nil, builder.RingOfCliques(3, 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Size(), g.NumEdges(), g.DegreeSequence())
	// Output: 12 21 [4 3 3 4 4 3 3 4 4 3 3 4]
}
