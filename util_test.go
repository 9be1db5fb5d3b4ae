package pathgeom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those nested in points, vectors and
// locations, up to an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// sCubic is the S-shaped cubic used throughout the tests.
var sCubic = CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}

func mustPath(t testing.TB, segs ...Segment) Path {
	t.Helper()
	p, err := NewPath(segs...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func assertNear(t *testing.T, p0, p1 Point, epsilon float64) {
	t.Helper()
	if d := p0.Distance(p1); d > epsilon {
		t.Errorf("%v != %v (distance %g > %g)", p0, p1, d, epsilon)
	}
}

// testSegments covers every segment kind, including a cubic with a loop.
var testSegments = []Segment{
	Line{Pt(1, 2), Pt(4, -2)}.Seg(),
	QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}.Seg(),
	sCubic.Seg(),
	CubicBez{Pt(0, 0), Pt(100, 100), Pt(0, 100), Pt(100, 0)}.Seg(),
}

// cmpPath compares paths by their segments.
var cmpPath = cmp.Comparer(func(a, b Path) bool {
	return cmp.Equal(a.segs, b.segs) && a.closed == b.closed
})
