package cayley_test

import (
	"fmt"

	"github.com/arbelos/burnside/cayley"
	"github.com/arbelos/burnside/classical"
)

// ExampleBuild turns C6 into its Cayley graph w.r.t. a single rotation:
// a 6-cycle whose word metric is the circular distance.
func ExampleBuild() {
	g, _ := classical.Cyclic(6)
	cg, _ := cayley.Build(g)

	lengths := make([]int, cg.Order())
	for v := range lengths {
		lengths[v], _ = cg.WordLength(v)
	}
	fmt.Println("degree:", cg.Degree())
	fmt.Println("word lengths:", lengths)
	fmt.Println("diameter:", cg.Diameter())
	// Output:
	// degree: 2
	// word lengths: [0 1 1 2 2 3]
	// diameter: 3
}
