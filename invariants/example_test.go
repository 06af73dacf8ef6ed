package invariants_test

import (
	"fmt"

	"github.com/arbelos/burnside/classical"
	"github.com/arbelos/burnside/invariants"
)

// ExampleCommutingProbability evaluates the degree of commutativity of
// the dihedral group D4, which attains the 5/8 bound for nonabelian
// groups.
func ExampleCommutingProbability() {
	d4, _ := classical.Dihedral(4)
	p, _ := invariants.CommutingProbability(d4)
	fmt.Printf("%.3f\n", p)
	// Output:
	// 0.625
}
