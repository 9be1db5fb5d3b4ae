package pathgeom

import (
	"math"
)

// Winding returns the contribution of seg to the winding number of pt. It
// counts the crossings of seg with the ray from pt towards negative x:
// downwards crossings count +1 and upwards crossings -1, so that a
// counter-clockwise loop around pt winds once.
//
// Each crossing includes the lower end of its y range and excludes the upper
// one. A ray through the joint of two segments thus counts once, and one
// that only touches a vertex doesn't count at all.
func (seg Segment) Winding(pt Point) int {
	box := seg.ControlBox()
	if pt.Y < box.Y0 || pt.Y >= box.Y1 || pt.X < box.X0 {
		return 0
	}
	ex, n := seg.Extrema()
	var w int
	rest, t0 := seg, 0.0
	for _, t := range ex[:n] {
		// Split rather than taking subsegments, so that consecutive pieces
		// share their endpoints exactly.
		var piece Segment
		piece, rest = rest.Split((t - t0) / (1 - t0))
		w += piece.monotoneWinding(pt)
		t0 = t
	}
	return w + rest.monotoneWinding(pt)
}

// monotoneWinding is Winding for segments that are monotonic in y.
func (seg Segment) monotoneWinding(pt Point) int {
	start, end := seg.Start(), seg.End()
	var sign int
	switch {
	case end.Y > start.Y:
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	case end.Y < start.Y:
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	default:
		return 0
	}
	box := seg.ControlBox()
	if pt.X < box.X0 {
		return 0
	}
	if pt.X >= box.X1 {
		return sign
	}

	var t float64
	if seg.Kind == LineKind {
		t = (pt.Y - start.Y) / (end.Y - start.Y)
	} else {
		p := seg.Coefficients(Y)
		p[0] -= pt.Y
		if roots := p.RootsIn(0, 1); len(roots) > 0 {
			t = roots[0]
		} else if math.Abs(pt.Y-end.Y) < math.Abs(pt.Y-start.Y) {
			// The crossing is lost to rounding at one of the ends.
			t = 1
		}
	}
	if seg.Eval(t).X <= pt.X {
		return sign
	}
	return 0
}

// SignedArea returns the area between seg and the origin, using Green's
// theorem. Summed over a closed path, this is the area the path encloses,
// positive if it runs counter-clockwise.
func (seg Segment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		panic(badKind(seg.Kind))
	}
}

func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

func (q QuadBez) SignedArea() float64 {
	v := q.P0.X*(2.0*q.P1.Y+q.P2.Y) +
		2.0*(q.P1.X*(q.P2.Y-q.P0.Y)) -
		q.P2.X*(q.P0.Y+2.0*q.P1.Y)
	return v * (1.0 / 6.0)
}

func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// closingLine returns the line from the end of p back to its start. Open
// paths are treated as closed by it for the purposes of area and winding.
func (p Path) closingLine() Line {
	return Line{p.End(), p.Start()}
}

// Winding returns the winding number of p around pt. An open path is
// treated as if closed by a line from its end to its start. Points on the
// path count as inside on its left and bottom edges, as described by
// [Segment.Winding].
func (p Path) Winding(pt Point) int {
	var w int
	for _, seg := range p.segs {
		w += seg.Winding(pt)
	}
	if !p.closed {
		w += p.closingLine().Seg().Winding(pt)
	}
	return w
}

// SignedArea returns the area enclosed by p, positive if p runs
// counter-clockwise. An open path is closed as by [Path.Winding]. Regions
// the path winds around more than once count multiple times.
func (p Path) SignedArea() float64 {
	var area float64
	for _, seg := range p.segs {
		area += seg.SignedArea()
	}
	if !p.closed {
		area += p.closingLine().SignedArea()
	}
	return area
}
