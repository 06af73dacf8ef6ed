package algebra

import (
	"fmt"
	"strconv"
	"strings"
)

// Perm is a permutation of {0, …, n-1}, stored as its image table.
// The zero value is not valid; use NewPerm, IdentityPerm or PermFromCycles.
type Perm struct {
	images []int
}

// NewPerm builds a permutation from an image table: element i maps to
// images[i]. Fails with ErrInvalidElement unless images is a bijection.
func NewPerm(images []int) (Perm, error) {
	n := len(images)
	if n == 0 {
		return Perm{}, fmt.Errorf("%w: empty image table", ErrInvalidElement)
	}
	seen := make([]bool, n)
	for _, v := range images {
		if v < 0 || v >= n || seen[v] {
			return Perm{}, fmt.Errorf("%w: images %v are not a bijection", ErrInvalidElement, images)
		}
		seen[v] = true
	}
	return Perm{images: append([]int(nil), images...)}, nil
}

// IdentityPerm returns the identity on n letters.
func IdentityPerm(n int) Perm {
	images := make([]int, n)
	for i := range images {
		images[i] = i
	}
	return Perm{images: images}
}

// PermFromCycles builds a permutation on n letters from disjoint cycles of
// 0-based points, e.g. PermFromCycles(4, [][]int{{0, 1, 2}}) is the 3-cycle
// (1 2 3) fixing the fourth letter. Fails with ErrInvalidElement on
// out-of-range or repeated points.
func PermFromCycles(n int, cycles [][]int) (Perm, error) {
	images := make([]int, n)
	for i := range images {
		images[i] = i
	}
	touched := make([]bool, n)
	for _, cyc := range cycles {
		for i, pt := range cyc {
			if pt < 0 || pt >= n || touched[pt] {
				return Perm{}, fmt.Errorf("%w: bad cycle point %d", ErrInvalidElement, pt)
			}
			touched[pt] = true
			images[pt] = cyc[(i+1)%len(cyc)]
		}
	}
	return Perm{images: images}, nil
}

// Degree returns the number of letters the permutation acts on.
func (p Perm) Degree() int { return len(p.images) }

// Image returns the image of point i.
func (p Perm) Image(i int) int { return p.images[i] }

// Images returns a copy of the image table.
func (p Perm) Images() []int { return append([]int(nil), p.images...) }

// Kind reports KindPermutation.
func (p Perm) Kind() Kind { return KindPermutation }

// Compose returns p∘q: the permutation sending i to p(q(i)).
func (p Perm) Compose(other Element) (Element, error) {
	q, ok := other.(Perm)
	if !ok || q.Degree() != p.Degree() {
		return nil, fmt.Errorf("%w: %s∘%s", ErrIncompatibleKind, p.Kind(), other.Kind())
	}
	out := make([]int, len(p.images))
	for i := range out {
		out[i] = p.images[q.images[i]]
	}
	return Perm{images: out}, nil
}

// Inverse returns the inverse permutation.
func (p Perm) Inverse() Element {
	out := make([]int, len(p.images))
	for i, v := range p.images {
		out[v] = i
	}
	return Perm{images: out}
}

// Equal reports whether other is the same permutation.
func (p Perm) Equal(other Element) bool {
	q, ok := other.(Perm)
	if !ok || q.Degree() != p.Degree() {
		return false
	}
	for i, v := range p.images {
		if q.images[i] != v {
			return false
		}
	}
	return true
}

// Key returns the canonical hash key.
func (p Perm) Key() string {
	var b strings.Builder
	b.Grow(3 * len(p.images))
	b.WriteByte('p')
	for _, v := range p.images {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// IsIdentity reports whether every point is fixed.
func (p Perm) IsIdentity() bool {
	for i, v := range p.images {
		if i != v {
			return false
		}
	}
	return true
}

// Cycles returns the cycle decomposition as 0-based cycles of length >= 2,
// ordered by smallest moved point.
func (p Perm) Cycles() [][]int {
	var cycles [][]int
	seen := make([]bool, len(p.images))
	for start := range p.images {
		if seen[start] || p.images[start] == start {
			continue
		}
		var cyc []int
		for pt := start; !seen[pt]; pt = p.images[pt] {
			seen[pt] = true
			cyc = append(cyc, pt)
		}
		cycles = append(cycles, cyc)
	}
	return cycles
}

// Sign returns +1 for even permutations and -1 for odd ones.
func (p Perm) Sign() int {
	sign := 1
	for _, cyc := range p.Cycles() {
		if len(cyc)%2 == 0 {
			sign = -sign
		}
	}
	return sign
}

// String renders 1-based cycle notation, "()" for the identity.
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, cyc := range cycles {
		b.WriteByte('(')
		for i, pt := range cyc {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(pt + 1))
		}
		b.WriteByte(')')
	}
	return b.String()
}
