package pathgeom

import (
	"fmt"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// Extrema methods. Four is enough for cubic Béziers.
const MaxExtrema = 4

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment represents a segment of a path. This type acts as a tagged union
// over all possible segments ([Line], [QuadBez], and [CubicBez]). Only the
// first Degree()+1 points are meaningful.
//
// Segments are parametrized over [0, 1].
type Segment struct {
	// We don't use an interface so that segments don't have to be allocated
	// and so that Line, QuadBez and CubicBez methods can return their own
	// types.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func badKind(k SegmentKind) string {
	return fmt.Sprintf("unhandled segment kind %v", k)
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind. The
// parametrization is preserved, so seg.Cubic().Eval(t) == seg.Eval(t).
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Raise()
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		panic(badKind(seg.Kind))
	}
}

// Degree returns the polynomial degree of the segment.
func (seg Segment) Degree() int {
	switch seg.Kind {
	case LineKind:
		return 1
	case QuadKind:
		return 2
	case CubicKind:
		return 3
	default:
		panic(badKind(seg.Kind))
	}
}

// ControlPoints returns the segment's control points.
func (seg Segment) ControlPoints() ([4]Point, int) {
	return [4]Point{seg.P0, seg.P1, seg.P2, seg.P3}, seg.Degree() + 1
}

func (seg Segment) IsInf() bool {
	pts, n := seg.ControlPoints()
	for _, pt := range pts[:n] {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

func (seg Segment) IsNaN() bool {
	pts, n := seg.ControlPoints()
	for _, pt := range pts[:n] {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		panic(badKind(seg.Kind))
	}
}

// withStart returns seg with its first control point replaced.
func (seg Segment) withStart(pt Point) Segment {
	seg.P0 = pt
	return seg
}

// Eval evaluates the segment at t, using de Casteljau.
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		panic(badKind(seg.Kind))
	}
}

// Deriv returns the first derivative at t.
func (seg Segment) Deriv(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Deriv(t)
	case QuadKind:
		return seg.Quad().Deriv(t)
	case CubicKind:
		return seg.Cubic().Deriv(t)
	default:
		panic(badKind(seg.Kind))
	}
}

// Accel returns the second derivative at t.
func (seg Segment) Accel(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return Vec2{}
	case QuadKind:
		return seg.Quad().Accel()
	case CubicKind:
		return seg.Cubic().Accel(t)
	default:
		panic(badKind(seg.Kind))
	}
}

// Derivative returns the hodograph, a segment of one degree less whose points
// are to be interpreted as vectors. The derivative of a line is constant and
// is represented as a line with two equal points.
func (seg Segment) Derivative() Segment {
	switch seg.Kind {
	case LineKind:
		d := Point(seg.P1.Sub(seg.P0))
		return Line{d, d}.Seg()
	case QuadKind:
		return seg.Quad().Differentiate().Seg()
	case CubicKind:
		return seg.Cubic().Differentiate().Seg()
	default:
		panic(badKind(seg.Kind))
	}
}

// Curvature returns the signed curvature at t. It is infinite where the
// derivative vanishes.
func (seg Segment) Curvature(t float64) float64 {
	d := seg.Deriv(t)
	dd := seg.Accel(t)
	h := d.Hypot()
	return d.Cross(dd) / (h * h * h)
}

// Coefficients returns the power basis coefficients of the segment along an
// axis, so that seg.Coefficients(X).Eval(t) == seg.Eval(t).X.
func (seg Segment) Coefficients(axis Axis) Poly {
	x0, x1, x2, x3 := seg.P0.Coord(axis), seg.P1.Coord(axis), seg.P2.Coord(axis), seg.P3.Coord(axis)
	switch seg.Kind {
	case LineKind:
		return Poly{x0, x1 - x0}
	case QuadKind:
		c0, c1, c2 := quadBezCoefficients(x0, x1, x2)
		return Poly{c0, c1, c2}
	case CubicKind:
		c0, c1, c2, c3 := cubicBezCoefficients(x0, x1, x2, x3)
		return Poly{c0, c1, c2, c3}
	default:
		panic(badKind(seg.Kind))
	}
}

// Split splits the segment at t, using de Casteljau. The two halves share
// the point seg.Eval(t).
func (seg Segment) Split(t float64) (Segment, Segment) {
	switch seg.Kind {
	case LineKind:
		a, b := seg.Line().Split(t)
		return a.Seg(), b.Seg()
	case QuadKind:
		a, b := seg.Quad().Split(t)
		return a.Seg(), b.Seg()
	case CubicKind:
		a, b := seg.Cubic().Split(t)
		return a.Seg(), b.Seg()
	default:
		panic(badKind(seg.Kind))
	}
}

// Subdivide splits the segment into halves.
func (seg Segment) Subdivide() (Segment, Segment) {
	return seg.Split(0.5)
}

// Subsegment returns the part of seg between start and end. If end < start,
// the result runs backwards.
func (seg Segment) Subsegment(start, end float64) Segment {
	var out Segment
	switch seg.Kind {
	case LineKind:
		out = seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		out = seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		out = seg.Cubic().Subsegment(start, end).Seg()
	default:
		panic(badKind(seg.Kind))
	}
	// Pin the endpoints to the exact ends when the full range is requested,
	// so that trimmed segments stay continuous with their neighbours.
	switch start {
	case 0:
		out = out.withStart(seg.P0)
	case 1:
		out = out.withStart(seg.End())
	}
	switch end {
	case 0:
		out = out.withEnd(seg.P0)
	case 1:
		out = out.withEnd(seg.End())
	}
	return out
}

func (seg Segment) withEnd(pt Point) Segment {
	switch seg.Kind {
	case LineKind:
		seg.P1 = pt
	case QuadKind:
		seg.P2 = pt
	case CubicKind:
		seg.P3 = pt
	default:
		panic(badKind(seg.Kind))
	}
	return seg
}

// Reverse returns a new Segment describing the same curve as this one, but with the
// points reversed.
func (seg Segment) Reverse() Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Reverse().Seg()
	case QuadKind:
		return seg.Quad().Reverse().Seg()
	case CubicKind:
		return seg.Cubic().Reverse().Seg()
	default:
		panic(badKind(seg.Kind))
	}
}

// Extrema returns the parameters in (0, 1) at which either coordinate has a
// local extremum, in increasing order.
func (seg Segment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return [MaxExtrema]float64{}, 0
	case QuadKind:
		return seg.Quad().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		panic(badKind(seg.Kind))
	}
}

// ControlBox returns the bounding box of the control points. It always
// contains the curve.
func (seg Segment) ControlBox() Rect {
	pts, n := seg.ControlPoints()
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:n] {
		r = r.UnionPoint(pt)
	}
	return r
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// segment.
func (seg Segment) BoundingBox() Rect {
	bbox := NewRectFromPoints(seg.Start(), seg.End())
	ex, n := seg.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(seg.Eval(t))
	}
	return bbox
}

// Nearest returns the squared distance and parameter of the point on seg
// closest to pt.
func (seg Segment) Nearest(pt Point) (distSq, t float64) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Nearest(pt)
	case QuadKind:
		return seg.Quad().Nearest(pt)
	case CubicKind:
		return seg.Cubic().Nearest(pt)
	default:
		panic(badKind(seg.Kind))
	}
}

// chord returns the line from the segment's start to its end.
func (seg Segment) chord() Line {
	return Line{seg.Start(), seg.End()}
}

func (seg Segment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("Line(%v, %v)", seg.P0, seg.P1)
	case QuadKind:
		return fmt.Sprintf("Quad(%v, %v, %v)", seg.P0, seg.P1, seg.P2)
	case CubicKind:
		return fmt.Sprintf("Cubic(%v, %v, %v, %v)", seg.P0, seg.P1, seg.P2, seg.P3)
	default:
		return badKind(seg.Kind)
	}
}
