package pathgeom

import (
	"errors"
	"math"
	"testing"
)

// polylineLength measures the segment with n uniformly spaced samples.
func polylineLength(seg Segment, n int) float64 {
	var l float64
	prev := seg.Eval(0)
	for i := 1; i <= n; i++ {
		pt := seg.Eval(float64(i) / float64(n))
		l += pt.Distance(prev)
		prev = pt
	}
	return l
}

func TestLengthSCurve(t *testing.T) {
	p := mustPath(t, sCubic.Seg())
	want := polylineLength(sCubic.Seg(), 20000)
	for _, method := range []ArclenMethod{Quadrature, Subdivision} {
		t.Run(method.String(), func(t *testing.T) {
			got, abserr, err := LengthOpt(p, LengthOptions{Method: method, AbsTol: 1e-3})
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-want) > 1e-2 {
				t.Errorf("got length %g, want %g", got, want)
			}
			if method == Quadrature && abserr > 1e-3 {
				t.Errorf("error estimate %g exceeds the tolerance", abserr)
			}
		})
	}
}

func TestQuadBezLength(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 10 {
		accuracy := math.Pow(0.1, float64(i))
		est, _, err := SegmentLength(q.Seg(), LengthOptions{AbsTol: accuracy})
		if err != nil {
			t.Fatalf("accuracy %g: %v", accuracy, err)
		}
		if error := math.Abs(est - want); error > accuracy {
			t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
		}
	}
}

func TestQuadBezLengthPathological(t *testing.T) {
	q := QuadBez{
		Pt(-1.0, 0.0),
		Pt(1.03, 0.0),
		Pt(1.0, 0.0),
	}
	const want = 2.0008737864167325 // A rough empirical calculation
	const accuracy = 1e-11
	est, _, err := SegmentLength(q.Seg(), LengthOptions{AbsTol: accuracy})
	if err != nil {
		t.Fatal(err)
	}
	if error := math.Abs(est - want); error > accuracy {
		t.Errorf("got error %g for desired accuracy of %g", error, accuracy)
	}
}

func TestLengthPrecisionNotAchieved(t *testing.T) {
	p := mustPath(t, sCubic.Seg())
	l, _, err := LengthOpt(p, LengthOptions{AbsTol: 1e-300, MaxIntervals: 4})
	if !errors.Is(err, ErrPrecisionNotAchieved) {
		t.Fatalf("got error %v, want precision not achieved", err)
	}
	var perr *PrecisionNotAchievedError
	if !errors.As(err, &perr) || perr.Requested != 1e-300 {
		t.Errorf("got error %#v", err)
	}
	// The estimate is still usable.
	want := polylineLength(sCubic.Seg(), 20000)
	if math.Abs(l-want) > 1 {
		t.Errorf("got length %g, want about %g", l, want)
	}
}

func TestLengthAt(t *testing.T) {
	p := testPath(t)
	total, _, err := Length(p, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	l, err := LengthAt(p, p.EndLocation(), 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, total, l, approx(1e-8))

	l, err = LengthAt(p, Location{1, 0}, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 10.0, l, approx(1e-12))

	if _, err := LengthAt(p, Location{5, 0}, 1e-9); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got error %v, want out of range", err)
	}
}

func TestLocationAtLength(t *testing.T) {
	p := testPath(t)
	total, _, err := Length(p, 1e-9)
	if err != nil {
		t.Fatal(err)
	}

	loc, err := LocationAtLength(p, 5, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Location{0, 0.5}, loc, approx(1e-12))

	prev := Location{}
	for i := 1; i <= 20; i++ {
		s := total * float64(i) / 20
		loc, err := LocationAtLength(p, s, 1e-9)
		if err != nil {
			t.Fatalf("%g: %v", s, err)
		}
		if !prev.Before(loc) {
			t.Errorf("location %v at %g doesn't come after %v", loc, s, prev)
		}
		prev = loc
		back, err := LengthAt(p, loc, 1e-9)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(back-s) > 1e-6 {
			t.Errorf("length at %v is %g, want %g", loc, back, s)
		}
	}
	diff(t, p.EndLocation(), prev, approx(1e-9))
}

func TestLocationAtLengthOutOfRange(t *testing.T) {
	p := testPath(t)
	total, _, _ := Length(p, 1e-9)
	for _, s := range []float64{-1, total + 1, math.NaN()} {
		_, err := LocationAtLength(p, s, 1e-9)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%g: got error %v, want out of range", s, err)
		}
	}
}

func TestLocationAtLengthBoundary(t *testing.T) {
	p := testPath(t)
	loc, err := LocationAtLength(p, 10, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Location{1, 0}, loc)

	loc, err = LocationAtLength(p, 0, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Location{0, 0}, loc)

	// The end of the last segment has no following segment.
	line := mustPath(t, Line{Pt(0, 0), Pt(10, 0)}.Seg())
	loc, err = LocationAtLength(line, 10, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Location{0, 1}, loc)
}

func TestLocationAtLengthPrecision(t *testing.T) {
	p := mustPath(t, sCubic.Seg())
	loc, err := LocationAtLength(p, 100, 1e-300)
	var perr *PrecisionNotAchievedError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want a precision error", err)
	}
	diff(t, 1e-300, perr.Requested)
	if loc.Index != 0 || !(loc.T > 0 && loc.T < 1) {
		t.Fatalf("got location %v", loc)
	}
	l, err := LengthAt(p, loc, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l-100) > 1e-6 {
		t.Errorf("length at %v is %g, want 100", loc, l)
	}

	locs, err := UniformLocations(p, 4, 1e-300)
	if !errors.Is(err, ErrPrecisionNotAchieved) {
		t.Errorf("got error %v, want a precision error", err)
	}
	if len(locs) != 5 {
		t.Errorf("got %d locations, want 5", len(locs))
	}
	parts, err := Divide(p, 4, 1e-300)
	if !errors.Is(err, ErrPrecisionNotAchieved) {
		t.Errorf("got error %v, want a precision error", err)
	}
	if len(parts) != 4 {
		t.Errorf("got %d parts, want 4", len(parts))
	}
}

func TestLocationAtLengthOpt(t *testing.T) {
	p := testPath(t)
	total, _, err := Length(p, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	want, err := LocationAtLength(p, total/2, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	got, err := LocationAtLengthOpt(p, total/2, LengthOptions{Method: Subdivision, AbsTol: 1e-7})
	if err != nil {
		t.Fatal(err)
	}
	wantPt, _ := p.At(want)
	gotPt, _ := p.At(got)
	assertNear(t, wantPt, gotPt, 1e-3)
}

func TestSubpathLength(t *testing.T) {
	p := mustPath(t, sCubic.Seg(), Line{Pt(100, 0), Pt(100, -50)}.Seg())
	total, _, err := Length(p, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	s1, s2 := 0.2*total, 0.9*total
	a, err := LocationAtLength(p, s1, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	b, err := LocationAtLength(p, s2, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := p.Subpath(a, b)
	if err != nil {
		t.Fatal(err)
	}
	l, _, err := Length(sub, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l-(s2-s1)) > 1e-6 {
		t.Errorf("subpath has length %g, want %g", l, s2-s1)
	}
}

func TestDivide(t *testing.T) {
	p := testPath(t)
	total, _, err := Length(p, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	const n = 7
	parts, err := Divide(p, n, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != n {
		t.Fatalf("got %d parts, want %d", len(parts), n)
	}
	for i, part := range parts {
		l, _, err := Length(part, 1e-9)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(l-total/n) > 1e-6 {
			t.Errorf("part %d has length %g, want %g", i, l, total/n)
		}
		if i > 0 && parts[i-1].End() != part.Start() {
			t.Errorf("part %d starts at %v, previous part ends at %v", i, part.Start(), parts[i-1].End())
		}
	}
	diff(t, p.Start(), parts[0].Start())
	diff(t, p.End(), parts[n-1].End())

	if _, err := Divide(p, 0, 1e-9); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got error %v, want out of range", err)
	}
}

func TestParseArclenMethod(t *testing.T) {
	for _, m := range []ArclenMethod{Quadrature, Subdivision} {
		got, err := ParseArclenMethod(m.String())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, m, got)
	}
	if _, err := ParseArclenMethod("simpson"); err == nil {
		t.Error("expected an error for an unknown method")
	}
}

func BenchmarkLength(b *testing.B) {
	p := mustPath(b, sCubic.Seg())
	for b.Loop() {
		Length(p, 1e-6)
	}
}
