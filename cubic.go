package pathgeom

import (
	"sort"
)

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at t by repeated linear interpolation.
func (c CubicBez) Eval(t float64) Point {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)
	return ab.Lerp(bd, t)
}

// Deriv returns the first derivative at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

// Accel returns the second derivative at t.
func (c CubicBez) Accel(t float64) Vec2 {
	return c.Differentiate().Deriv(t)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.Split(0.5)
}

// Split splits the cubic at t, using de Casteljau.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)
	pm := ab.Lerp(bd, t)
	return CubicBez{c.P0, a, ab, pm}, CubicBez{pm, bd, d, c.P3}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Subsegment returns the part of c between t0 and t1. If t1 < t0 the result
// runs backwards.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the hodograph of c. Its points are to be interpreted
// as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// Nearest finds the nearest point on c to pt.
//
// The derivative of the squared distance is a quintic. Its roots are found
// by sampling the unit interval and refining each sign change with
// safeguarded Newton iteration.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	seg := c.Seg()
	bx := seg.Coefficients(X)
	by := seg.Coefficients(Y)
	bx[0] -= pt.X
	by[0] -= pt.Y
	// Half the derivative of |B(t) - pt|².
	f := bx.Mul(bx.Deriv()).Add(by.Mul(by.Deriv()))
	df := f.Deriv()

	var best option[float64]
	bestT := 0.0
	consider := func(t float64) {
		r := c.Eval(t).Sub(pt).Hypot2()
		if !best.isSet || r < best.value {
			best.set(r)
			bestT = t
		}
	}
	consider(0)
	consider(1)

	const samples = 16
	prevT, prevY := 0.0, f.Eval(0)
	for i := 1; i <= samples; i++ {
		t := float64(i) / samples
		y := f.Eval(t)
		// Splitting the interval at the critical points of f brackets pairs
		// of roots that are closer together than the samples.
		lo, ylo := prevT, prevY
		for _, x := range append(df.RootsIn(prevT, t), t) {
			yx := f.Eval(x)
			if ylo < 0 && yx >= 0 {
				// Distance goes from decreasing to increasing: a local
				// minimum is bracketed.
				consider(newtonBracketed(f, df, lo, x))
			}
			lo, ylo = x, yx
		}
		if i < samples {
			if r, ok := newtonFrom(f, df, t); ok {
				consider(r)
			}
		}
		prevT, prevY = t, y
	}
	return best.value, bestT
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// Return polynomial coefficients given cubic bezier coordinates.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}
