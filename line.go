package pathgeom

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// intersectChords intersects the line segments a and b, returning the
// parameters on both. Nearly parallel segments report no intersection.
func intersectChords(a, b Line) (ta, tb float64, ok bool) {
	ad := a.P1.Sub(a.P0)
	bd := b.P1.Sub(b.P0)
	det := ad.Cross(bd)
	// Normalized so that the parallelism test doesn't depend on the scale of
	// the input.
	norm := ad.Hypot() * bd.Hypot()
	if norm == 0 || 1+det/norm == 1 {
		return 0, 0, false
	}
	d := b.P0.Sub(a.P0)
	inv := 1 / det
	ta = d.Cross(bd) * inv
	tb = d.Cross(ad) * inv
	if ta < 0 || ta > 1 || tb < 0 || tb > 1 {
		return 0, 0, false
	}
	return ta, tb, true
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Deriv returns the derivative, which is constant.
func (l Line) Deriv(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

// Nearest returns the squared distance and the parameter of the point on l
// closest to pt.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) Subdivide() (Line, Line) {
	return l.Split(0.5)
}

// Split splits the line at t.
func (l Line) Split(t float64) (Line, Line) {
	pm := l.Eval(t)
	return Line{l.P0, pm}, Line{pm, l.P1}
}

func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

// Raise returns a cubic Bézier with the same parametrization as l.
func (l Line) Raise() CubicBez {
	return CubicBez{
		l.P0,
		l.P0.Lerp(l.P1, 1.0/3.0),
		l.P0.Lerp(l.P1, 2.0/3.0),
		l.P1,
	}
}

func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
