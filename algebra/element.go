package algebra

// Kind discriminates the algebraic family an Element belongs to.
type Kind int

const (
	// KindPermutation — bijections of {0, …, n-1} under composition.
	KindPermutation Kind = iota
	// KindFieldMatrix — invertible matrices over a finite field.
	KindFieldMatrix
	// KindQuaternion — unit quaternions under the Hamilton product.
	KindQuaternion
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindPermutation:
		return "permutation"
	case KindFieldMatrix:
		return "field-matrix"
	case KindQuaternion:
		return "quaternion"
	default:
		return "unknown"
	}
}

// Element is one immutable group element. Implementations guarantee that
// Compose is associative, Inverse is a two-sided inverse, and Key returns
// equal strings exactly for Equal elements (after projective
// canonicalization where applicable).
type Element interface {
	// Kind reports the algebraic family of the element.
	Kind() Kind
	// Compose returns the product receiver∘other, or ErrIncompatibleKind
	// when kinds or parameters differ.
	Compose(other Element) (Element, error)
	// Inverse returns the group inverse.
	Inverse() Element
	// Equal reports whether other is the same group element.
	Equal(other Element) bool
	// Key returns the canonical hash key of the element.
	Key() string
	// IsIdentity reports whether the element is the identity.
	IsIdentity() bool
	// String renders a human-readable form.
	String() string
}

// Order returns the multiplicative order of e: the least k >= 1 with
// e^k = identity. Runs in O(order) compositions.
func Order(e Element) int {
	ord := 1
	cur := e
	for !cur.IsIdentity() {
		next, err := cur.Compose(e)
		if err != nil {
			// an element is always composable with itself
			panic("algebra: element incompatible with itself: " + err.Error())
		}
		cur = next
		ord++
	}
	return ord
}

// Conjugate returns g·x·g⁻¹.
func Conjugate(g, x Element) (Element, error) {
	gx, err := g.Compose(x)
	if err != nil {
		return nil, err
	}
	return gx.Compose(g.Inverse())
}

// Commutator returns a·b·a⁻¹·b⁻¹.
func Commutator(a, b Element) (Element, error) {
	ab, err := a.Compose(b)
	if err != nil {
		return nil, err
	}
	abi, err := ab.Compose(a.Inverse())
	if err != nil {
		return nil, err
	}
	return abi.Compose(b.Inverse())
}
