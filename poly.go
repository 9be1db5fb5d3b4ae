package pathgeom

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Poly is a polynomial in power basis. Poly[i] is the coefficient of x^i.
type Poly []float64

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Eval evaluates p at x using Horner's scheme.
func (p Poly) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Deriv returns the derivative of p.
func (p Poly) Deriv() Poly {
	if len(p) <= 1 {
		return Poly{0}
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}
	return out
}

func (p Poly) Add(o Poly) Poly {
	out := make(Poly, max(len(p), len(o)))
	copy(out, p)
	for i, c := range o {
		out[i] += c
	}
	return out
}

func (p Poly) Sub(o Poly) Poly {
	out := make(Poly, max(len(p), len(o)))
	copy(out, p)
	for i, c := range o {
		out[i] -= c
	}
	return out
}

func (p Poly) Mul(o Poly) Poly {
	if len(p) == 0 || len(o) == 0 {
		return Poly{0}
	}
	out := make(Poly, len(p)+len(o)-1)
	for i, a := range p {
		for j, b := range o {
			out[i+j] += a * b
		}
	}
	return out
}

func (p Poly) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteString(" + ")
		}
		switch i {
		case 0:
			fmt.Fprintf(&sb, "%g", c)
		case 1:
			fmt.Fprintf(&sb, "%gx", c)
		default:
			fmt.Fprintf(&sb, "%gx^%d", c, i)
		}
	}
	return sb.String()
}

// rootEpsilon is the bracket width at which RootsIn stops refining a root.
const rootEpsilon = 1e-12

// RootsIn returns the real roots of p in [lo, hi] in increasing order.
//
// Roots are isolated recursively: the roots of p' split [lo, hi] into
// intervals on which p is monotonic, and each interval with a sign change is
// refined with [SolveITP]. Roots of even multiplicity are only found when they
// coincide with a critical point, which they always do in exact arithmetic.
func (p Poly) RootsIn(lo, hi float64) []float64 {
	deg := p.Degree()
	if deg <= 0 || lo > hi {
		return nil
	}
	p = p[:deg+1]
	if deg == 1 {
		x := -p[0] / p[1]
		if x >= lo && x <= hi {
			return []float64{x}
		}
		return nil
	}

	bounds := []float64{lo}
	for _, x := range p.Deriv().RootsIn(lo, hi) {
		if x > bounds[len(bounds)-1] && x < hi {
			bounds = append(bounds, x)
		}
	}
	bounds = append(bounds, hi)

	var roots []float64
	add := func(x float64) {
		if n := len(roots); n > 0 && math.Abs(roots[n-1]-x) <= rootEpsilon {
			return
		}
		roots = append(roots, x)
	}
	scale := 0.0
	for _, c := range p {
		scale = max(scale, math.Abs(c))
	}
	zero := func(y float64) bool {
		return math.Abs(y) <= scale*1e-14
	}
	for i := 0; i+1 < len(bounds); i++ {
		a, b := bounds[i], bounds[i+1]
		ya, yb := p.Eval(a), p.Eval(b)
		if zero(ya) {
			add(a)
			continue
		}
		if zero(yb) {
			// Handled as the start of the next interval, or below for hi.
			continue
		}
		if math.Signbit(ya) == math.Signbit(yb) {
			continue
		}
		f := p.Eval
		if ya > 0 {
			f = func(x float64) float64 { return -p.Eval(x) }
			ya, yb = -ya, -yb
		}
		add(SolveITP(f, a, b, rootEpsilon, 1, 0.2, ya, yb))
	}
	if zero(p.Eval(hi)) {
		add(hi)
	}
	slices.Sort(roots)
	return roots
}
