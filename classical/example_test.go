package classical_test

import (
	"fmt"

	"github.com/arbelos/burnside/classical"
	"github.com/arbelos/burnside/gf"
)

// ExampleBuild walks the linear families over GF(3), showing how the
// projective quotients shrink the order: PGL divides out the q−1
// scalars, PSL additionally the determinant classes.
func ExampleBuild() {
	f, _ := gf.New(3, 1)
	for _, fam := range []classical.Family{
		classical.FamilyGL, classical.FamilySL,
		classical.FamilyPGL, classical.FamilyPSL,
	} {
		g, err := classical.Build(fam, 2, f)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s(2,3): %d\n", fam, g.Order())
	}
	// Output:
	// GL(2,3): 48
	// SL(2,3): 24
	// PGL(2,3): 24
	// PSL(2,3): 12
}

// ExampleO builds the isometry group of x² + y² over GF(3). The form is
// anisotropic there, so the group is dihedral of order 2(q+1) = 8.
func ExampleO() {
	f, _ := gf.New(3, 1)
	o, _ := classical.O(2, f)
	so, _ := classical.SO(2, f)
	fmt.Println("|O(2,3)| =", o.Order())
	fmt.Println("|SO(2,3)| =", so.Order())
	// Output:
	// |O(2,3)| = 8
	// |SO(2,3)| = 4
}

// ExampleDihedral builds the symmetries of a pentagon: five rotations
// and five reflections.
func ExampleDihedral() {
	d5, _ := classical.Dihedral(5)
	fmt.Println("order:", d5.Order())
	// Output:
	// order: 10
}
