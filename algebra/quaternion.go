package algebra

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// quatEps bounds the numeric drift tolerated before two unit quaternions
// are considered distinct; keyGrid is the quantization step used by Key.
// Elements of finite quaternion subgroups have algebraic components whose
// round-off error stays far below both.
const (
	quatEps = 1e-9
	keyGrid = 1e-6
)

// Quaternion is a unit quaternion element. The spin flavour keeps q and −q
// distinct (binary/dicyclic groups, Spin representations); the rotation
// flavour identifies them, modelling the induced element of SO(3).
type Quaternion struct {
	q        quat.Number
	rotation bool
}

// NewQuaternion normalizes q to unit length and returns it as a spin
// element. Fails with ErrInvalidElement for the zero quaternion.
func NewQuaternion(q quat.Number) (Quaternion, error) {
	return newQuaternion(q, false)
}

// NewRotation normalizes q and returns it as a rotation element, with q
// and −q identified.
func NewRotation(q quat.Number) (Quaternion, error) {
	return newQuaternion(q, true)
}

func newQuaternion(q quat.Number, rotation bool) (Quaternion, error) {
	a := quat.Abs(q)
	if a < quatEps || math.IsNaN(a) || math.IsInf(a, 0) {
		return Quaternion{}, fmt.Errorf("%w: quaternion has no direction", ErrInvalidElement)
	}
	out := Quaternion{q: quat.Scale(1/a, q), rotation: rotation}
	if rotation {
		out.q = canonicalSign(out.q)
	}
	return out, nil
}

// IdentityQuaternion returns the identity of the requested flavour.
func IdentityQuaternion(rotation bool) Quaternion {
	return Quaternion{q: quat.Number{Real: 1}, rotation: rotation}
}

// canonicalSign flips q so its first non-negligible component is positive.
// Pure function; used only for the rotation flavour.
func canonicalSign(q quat.Number) quat.Number {
	for _, c := range []float64{q.Real, q.Imag, q.Jmag, q.Kmag} {
		if c > quatEps {
			return q
		}
		if c < -quatEps {
			return quat.Scale(-1, q)
		}
	}
	return q
}

// Number returns the underlying gonum quaternion.
func (e Quaternion) Number() quat.Number { return e.q }

// Rotation reports whether q and −q are identified.
func (e Quaternion) Rotation() bool { return e.rotation }

// Kind reports KindQuaternion.
func (e Quaternion) Kind() Kind { return KindQuaternion }

// Compose returns the Hamilton product e·other, renormalized to stop
// round-off drift from accumulating along long products.
func (e Quaternion) Compose(other Element) (Element, error) {
	o, ok := other.(Quaternion)
	if !ok || o.rotation != e.rotation {
		return nil, fmt.Errorf("%w: %s·%s", ErrIncompatibleKind, e.Kind(), other.Kind())
	}
	prod := quat.Mul(e.q, o.q)
	prod = quat.Scale(1/quat.Abs(prod), prod)
	if e.rotation {
		prod = canonicalSign(prod)
	}
	return Quaternion{q: prod, rotation: e.rotation}, nil
}

// Inverse returns the conjugate, which inverts unit quaternions.
func (e Quaternion) Inverse() Element {
	inv := quat.Conj(e.q)
	if e.rotation {
		inv = canonicalSign(inv)
	}
	return Quaternion{q: inv, rotation: e.rotation}
}

// Equal reports equality within the numeric tolerance (after sign
// canonicalization for rotations).
func (e Quaternion) Equal(other Element) bool {
	o, ok := other.(Quaternion)
	if !ok || o.rotation != e.rotation {
		return false
	}
	d := quat.Sub(e.q, o.q)
	return quat.Abs(d) < quatEps
}

// Key returns the canonical hash key: components quantized to the keyGrid.
func (e Quaternion) Key() string {
	var b strings.Builder
	b.WriteByte('q')
	if e.rotation {
		b.WriteByte('R')
	}
	for _, c := range []float64{e.q.Real, e.q.Imag, e.q.Jmag, e.q.Kmag} {
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(int64(math.Round(c/keyGrid)), 10))
	}
	return b.String()
}

// IsIdentity reports whether the element is 1 (or ±1 for rotations, which
// canonicalize to 1).
func (e Quaternion) IsIdentity() bool {
	return e.Equal(IdentityQuaternion(e.rotation))
}

// RotationMatrix returns the 3×3 rotation matrix the unit quaternion acts
// by on ℝ³.
func (e Quaternion) RotationMatrix() *mat.Dense {
	w, x, y, z := e.q.Real, e.q.Imag, e.q.Jmag, e.q.Kmag
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}

// String renders the quaternion as "a+bi+cj+dk" with three decimals.
func (e Quaternion) String() string {
	return fmt.Sprintf("%.3f%+.3fi%+.3fj%+.3fk", e.q.Real, e.q.Imag, e.q.Jmag, e.q.Kmag)
}
