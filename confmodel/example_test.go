package confmodel_test

import (
	"fmt"

	"github.com/anhncs/CommunityDetectionCodes/builder"
	"github.com/anhncs/CommunityDetectionCodes/confmodel"
	"github.com/anhncs/CommunityDetectionCodes/core"
)

// ExampleSampleSimple rewires a grid while keeping its degree sequence.
func ExampleSampleSimple() {
	g := builder.MustBuild(nil, builder.Grid(4, 4))
	degrees := fmt.Sprint(g.DegreeSequence())

	n, err := confmodel.SampleSimple(g, core.NewGenerator(9), 10*g.NumEdges(), quiet())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n > 0, g.NumEdges(), fmt.Sprint(g.DegreeSequence()) == degrees)
	// Output: true 24 true
}
