package pathgeom

import (
	"math"
)

// secondDifferences returns the second differences of the control polygon.
// Lines have none.
func (seg Segment) secondDifferences() ([2]Vec2, int) {
	switch seg.Kind {
	case LineKind:
		return [2]Vec2{}, 0
	case QuadKind:
		return [2]Vec2{
			Vec2(seg.P0).Add(Vec2(seg.P2)).Sub(Vec2(seg.P1).Mul(2)),
		}, 1
	case CubicKind:
		return [2]Vec2{
			Vec2(seg.P0).Add(Vec2(seg.P2)).Sub(Vec2(seg.P1).Mul(2)),
			Vec2(seg.P1).Add(Vec2(seg.P3)).Sub(Vec2(seg.P2).Mul(2)),
		}, 2
	default:
		panic(badKind(seg.Kind))
	}
}

// flatness measures how far the segment is from being a straight line, as
// the sum of the L1 norms of the control polygon's second differences. The
// distance between the curve and its chord is at most 3/4 of this.
func (seg Segment) flatness() float64 {
	dd, n := seg.secondDifferences()
	var sum float64
	for _, d := range dd[:n] {
		sum += d.L1()
	}
	return sum
}

// invEpsilon is the inverse of the target relative accuracy of
// [subdivisionDepth].
const invEpsilon = 1 << 14

// subdivisionDepth estimates, using Wang's formula, how many times the
// segment has to be bisected for its pieces to be indistinguishable from
// their chords.
func (seg Segment) subdivisionDepth() int {
	dd, n := seg.secondDifferences()
	var l0 float64
	for _, d := range dd[:n] {
		l0 = max(l0, d.MaxAbs())
	}
	if l0*0.75*math.Sqrt2+1 == 1 {
		return 0
	}
	// log4(x) = log2(x) / 2
	return int(math.Ceil(math.Log2(math.Sqrt2*6.0/8.0*invEpsilon*l0) / 2))
}

// degenerate returns a [*DegenerateCurveError] if seg can't be subdivided
// meaningfully.
func (seg Segment) degenerate() error {
	switch {
	case seg.IsNaN():
		return &DegenerateCurveError{Reason: "NaN control point"}
	case seg.IsInf():
		return &DegenerateCurveError{Reason: "infinite control point"}
	}
	pts, n := seg.ControlPoints()
	for _, pt := range pts[1:n] {
		if pt != pts[0] {
			return nil
		}
	}
	return &DegenerateCurveError{Reason: "all control points coincide"}
}
