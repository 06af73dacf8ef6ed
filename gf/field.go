package gf

// MaxOrder bounds the size of constructible fields. Log/exp tables are
// O(q) ints; 65536 matches the largest field the closure engine can
// plausibly materialize matrix groups over.
const MaxOrder = 1 << 16

// Field is a finite field GF(p^m). Elements are ints in [0, q): for m > 1
// the base-p digits of an element are its polynomial coefficients, lowest
// degree first. Fields are immutable once constructed.
type Field struct {
	p int // characteristic
	m int // extension degree
	q int // order, p^m

	// poly holds the monic primitive polynomial used for reduction,
	// coefficients c[0..m] with c[m] == 1. nil for prime fields.
	poly []int

	// exp[i] = g^i for the primitive element g; log is its inverse on
	// [1, q). log[0] is unused.
	exp []int
	log []int
}

// New constructs GF(p^m). It fails with ErrNotPrime, ErrBadExtension or
// ErrFieldTooLarge on invalid parameters. Construction is deterministic:
// the lexicographically first primitive polynomial (and smallest primitive
// root, for m == 1) is always chosen.
func New(p, m int) (*Field, error) {
	if !isPrime(p) {
		return nil, ErrNotPrime
	}
	if m < 1 {
		return nil, ErrBadExtension
	}
	q := 1
	for i := 0; i < m; i++ {
		q *= p
		if q > MaxOrder {
			return nil, ErrFieldTooLarge
		}
	}
	f := &Field{p: p, m: m, q: q}
	if m == 1 {
		f.buildPrimeTables()
	} else if err := f.buildExtensionTables(); err != nil {
		return nil, err
	}
	return f, nil
}

// Order returns q = p^m, the number of field elements.
func (f *Field) Order() int { return f.q }

// Char returns the characteristic p.
func (f *Field) Char() int { return f.p }

// Degree returns the extension degree m.
func (f *Field) Degree() int { return f.m }

// Zero returns the additive identity.
func (f *Field) Zero() int { return 0 }

// One returns the multiplicative identity.
func (f *Field) One() int { return 1 }

// Generator returns a primitive element: a generator of the multiplicative
// group of the field. For GF(2) that group is trivial and 1 is returned.
func (f *Field) Generator() int {
	if f.q == 2 {
		return 1
	}
	return f.exp[1]
}

// Basis returns the GF(p)-basis {1, x, x², …, x^(m-1)} of the field as
// elements, i.e. the powers p^i. Transvection generators for SL(n, q)
// range over this basis.
func (f *Field) Basis() []int {
	b := make([]int, f.m)
	v := 1
	for i := 0; i < f.m; i++ {
		b[i] = v
		v *= f.p
	}
	return b
}

// Add returns a+b. Inputs must lie in [0, q).
func (f *Field) Add(a, b int) int {
	if f.m == 1 {
		return (a + b) % f.p
	}
	sum, mul := 0, 1
	for i := 0; i < f.m; i++ {
		sum += ((a%f.p + b%f.p) % f.p) * mul
		mul *= f.p
		a /= f.p
		b /= f.p
	}
	return sum
}

// Neg returns the additive inverse of a.
func (f *Field) Neg(a int) int {
	if f.m == 1 {
		return (f.p - a) % f.p
	}
	sum, mul := 0, 1
	for i := 0; i < f.m; i++ {
		sum += ((f.p - a%f.p) % f.p) * mul
		mul *= f.p
		a /= f.p
	}
	return sum
}

// Sub returns a-b.
func (f *Field) Sub(a, b int) int { return f.Add(a, f.Neg(b)) }

// Mul returns a·b via the log/exp tables.
func (f *Field) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(f.log[a]+f.log[b])%(f.q-1)]
}

// Inv returns a⁻¹, or ErrDivByZero when a is zero.
func (f *Field) Inv(a int) (int, error) {
	if a == 0 {
		return 0, ErrDivByZero
	}
	return f.exp[(f.q-1-f.log[a])%(f.q-1)], nil
}

// Div returns a/b, or ErrDivByZero when b is zero.
func (f *Field) Div(a, b int) (int, error) {
	bi, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, bi), nil
}

// Pow returns a^k for k >= 0, with a^0 == 1 (including 0^0).
func (f *Field) Pow(a, k int) int {
	if k == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return f.exp[(f.log[a]*k)%(f.q-1)]
}

// buildPrimeTables fills exp/log for GF(p) using the smallest primitive
// root modulo p.
func (f *Field) buildPrimeTables() {
	f.exp = make([]int, f.q-1)
	f.log = make([]int, f.q)
	if f.p == 2 {
		// the multiplicative group is trivial
		f.exp[0] = 1
		f.log[1] = 0
		return
	}
	for g := 2; g < f.p; g++ {
		if multiplicativeOrder(g, f.p) == f.p-1 {
			v := 1
			for i := 0; i < f.p-1; i++ {
				f.exp[i] = v
				f.log[v] = i
				v = (v * g) % f.p
			}
			return
		}
	}
}

// buildExtensionTables searches monic degree-m polynomials over GF(p) in
// lexicographic coefficient order and keeps the first primitive one: its
// root x then generates the multiplicative group, so walking powers of x
// fills the exp table in one pass.
func (f *Field) buildExtensionTables() error {
	coeffs := make([]int, f.m) // c[0..m-1]; leading coefficient fixed to 1
	for {
		if coeffs[0] != 0 && f.tryPolynomial(coeffs) {
			f.poly = append(append([]int{}, coeffs...), 1)
			return nil
		}
		if !nextCoeffs(coeffs, f.p) {
			break
		}
	}
	// every GF(p^m) has a primitive polynomial; exhausting the search
	// space means the parameters escaped validation
	return ErrBadExtension
}

// tryPolynomial attempts to build the tables with x as generator modulo
// the monic polynomial with low coefficients c. Reports success iff the
// powers of x enumerate all q-1 nonzero elements before returning to 1.
func (f *Field) tryPolynomial(c []int) bool {
	exp := make([]int, f.q-1)
	log := make([]int, f.q)
	for i := range log {
		log[i] = -1
	}
	cur := make([]int, f.m)
	cur[0] = 1 // the element 1
	for i := 0; i < f.q-1; i++ {
		v := f.undigits(cur)
		if v == 0 || log[v] != -1 {
			return false // hit zero or a cycle shorter than q-1
		}
		exp[i] = v
		log[v] = i
		cur = f.mulByX(cur, c)
	}
	if f.undigits(cur) != 1 {
		return false
	}
	f.exp = exp
	f.log = log
	return true
}

// mulByX multiplies the coefficient vector d by x and reduces by the monic
// polynomial with low coefficients c.
func (f *Field) mulByX(d, c []int) []int {
	out := make([]int, f.m)
	top := d[f.m-1]
	copy(out[1:], d[:f.m-1])
	if top != 0 {
		for i := 0; i < f.m; i++ {
			out[i] = (out[i] + (f.p-c[i])*top) % f.p
		}
	}
	return out
}

// undigits folds a coefficient vector back into an element.
func (f *Field) undigits(d []int) int {
	v, mul := 0, 1
	for i := 0; i < f.m; i++ {
		v += d[i] * mul
		mul *= f.p
	}
	return v
}

// nextCoeffs advances c through base-p counting; false once exhausted.
func nextCoeffs(c []int, p int) bool {
	for i := 0; i < len(c); i++ {
		c[i]++
		if c[i] < p {
			return true
		}
		c[i] = 0
	}
	return false
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func multiplicativeOrder(g, p int) int {
	v, ord := g%p, 1
	for v != 1 {
		v = (v * g) % p
		ord++
	}
	return ord
}
