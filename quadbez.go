package pathgeom

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Eval evaluates the curve at t by repeated linear interpolation.
func (q QuadBez) Eval(t float64) Point {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	return a.Lerp(b, t)
}

// Deriv returns the first derivative at t.
func (q QuadBez) Deriv(t float64) Vec2 {
	return q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t).Mul(2)
}

// Accel returns the second derivative, which is constant.
func (q QuadBez) Accel() Vec2 {
	return Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2)).Mul(2)
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	return q.Split(0.5)
}

// Split splits the curve at t, using de Casteljau.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	pm := a.Lerp(b, t)
	return QuadBez{q.P0, a, pm}, QuadBez{pm, b, q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// Nearest finds the nearest point, using an analytical algorithm based on
// cubic root finding: the derivative of the squared distance is a cubic in t.
func (q QuadBez) Nearest(pt Point) (distSq, outT float64) {
	var best option[float64]
	bestT := 0.0
	consider := func(t float64, p Point) {
		r := p.Sub(pt).Hypot2()
		if !best.isSet || r < best.value {
			best.set(r)
			bestT = t
		}
	}

	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)
	for _, t := range roots[:n] {
		if t > 0.0 && t < 1.0 {
			consider(t, q.Eval(t))
		}
	}
	// The endpoints are always candidates, so that the result is never worse
	// than either of them.
	consider(0.0, q.P0)
	consider(1.0, q.P2)
	return best.value, bestT
}

func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

// Return polynomial coefficients given quadratic bezier coordinates.
func quadBezCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	p0 := x0
	p1 := 2.0*x1 - 2.0*x0
	p2 := x2 - 2.0*x1 + x0
	return p0, p1, p2
}
