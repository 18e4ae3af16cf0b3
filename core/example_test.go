package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seedspread/core"
)

// ExampleGraph demonstrates creation, mirrored insertion and sealing.
func ExampleGraph() {
	// 1) Create a 3-vertex graph:
	g, _ := core.NewGraph(3)

	// 2) Add edges; each one is mirrored:
	_ = g.AddEdge(0, 1, 0.5)
	_ = g.AddEdge(1, 2, 0.25)

	// 3) Inspect the middle vertex:
	nbrs, _ := g.Neighbors(1)
	fmt.Println("Neighbors(1):", nbrs)

	// 4) Seal; the graph is now read-only:
	g.Seal()
	err := g.AddEdge(0, 2, 1)
	fmt.Println("sealed:", errors.Is(err, core.ErrSealed))

	// Output:
	// Neighbors(1): [{0 0.5} {2 0.25}]
	// sealed: true
}
