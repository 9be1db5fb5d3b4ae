package pathgeom

import (
	"errors"
	"math"
	"testing"
)

func TestBuilderDrawing(t *testing.T) {
	b := NewBuilder(BuilderOptions{})
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.QuadTo(Pt(15, 0), Pt(15, 5))
	b.CubicTo(Pt(15, 10), Pt(10, 10), Pt(5, 10))
	b.Close()
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := []Segment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		QuadBez{Pt(10, 0), Pt(15, 0), Pt(15, 5)}.Seg(),
		CubicBez{Pt(15, 5), Pt(15, 10), Pt(10, 10), Pt(5, 10)}.Seg(),
		Line{Pt(5, 10), Pt(0, 0)}.Seg(),
	}
	var got []Segment
	for _, seg := range p.Segments() {
		got = append(got, seg)
	}
	diff(t, want, got)
	if !p.Closed() {
		t.Error("path should be closed")
	}
	if p.End() != p.Start() {
		t.Errorf("closed path ends at %v, starts at %v", p.End(), p.Start())
	}
}

func TestBuilderCloseWithoutGap(t *testing.T) {
	b := NewBuilder(BuilderOptions{})
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.LineTo(Pt(0, 1))
	b.LineTo(Pt(0, 0))
	b.Close()
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if n := p.TotalSegmentCount(); n != 3 {
		t.Errorf("got %d segments, want 3", n)
	}
}

func TestBuilderStrictDiscontinuity(t *testing.T) {
	b := NewBuilder(BuilderOptions{Strict: true})
	if err := b.Push(Line{Pt(0, 0), Pt(1, 0)}.Seg()); err != nil {
		t.Fatal(err)
	}
	err := b.Push(Line{Pt(2, 0), Pt(3, 0)}.Seg())
	if !errors.Is(err, ErrDiscontinuity) {
		t.Fatalf("got error %v, want a discontinuity", err)
	}
	var derr *DiscontinuityError
	if !errors.As(err, &derr) {
		t.Fatalf("got error of type %T", err)
	}
	diff(t, &DiscontinuityError{Index: 1, Want: Pt(1, 0), Got: Pt(2, 0)}, derr)

	// The rejected segment isn't part of the path.
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if n := p.TotalSegmentCount(); n != 1 {
		t.Errorf("got %d segments, want 1", n)
	}
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder(BuilderOptions{Strict: true})
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.MoveTo(Pt(5, 5))
	b.LineTo(Pt(6, 6))
	b.LineTo(Pt(7, 7))
	if _, err := b.Build(); !errors.Is(err, ErrDiscontinuity) {
		t.Errorf("got error %v, want a discontinuity", err)
	}
}

func TestBuilderBridgesGaps(t *testing.T) {
	b := NewBuilder(BuilderOptions{})
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.MoveTo(Pt(5, 5))
	b.LineTo(Pt(6, 6))
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Line{Pt(1, 0), Pt(5, 5)}.Seg(), p.Segment(1))
	if n := p.TotalSegmentCount(); n != 3 {
		t.Errorf("got %d segments, want 3", n)
	}
}

func TestBuilderEpsilon(t *testing.T) {
	b := NewBuilder(BuilderOptions{Strict: true, Epsilon: 1e-6})
	if err := b.Push(Line{Pt(0, 0), Pt(1, 0)}.Seg()); err != nil {
		t.Fatal(err)
	}
	if err := b.Push(Line{Pt(1+1e-9, 1e-9), Pt(2, 0)}.Seg()); err != nil {
		t.Fatal(err)
	}
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if p.Segment(1).Start() != Pt(1, 0) {
		t.Errorf("start wasn't snapped, got %v", p.Segment(1).Start())
	}
}

func TestBuilderErrors(t *testing.T) {
	if _, err := NewBuilder(BuilderOptions{}).Build(); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got error %v, want %v", err, ErrEmptyPath)
	}

	b := NewBuilder(BuilderOptions{})
	b.LineTo(Pt(1, 1))
	b.Close()
	if err := b.Push(Line{Pt(0, 0), Pt(2, 2)}.Seg()); !errors.Is(err, ErrPathClosed) {
		t.Errorf("got error %v, want %v", err, ErrPathClosed)
	}

	if _, err := NewPath(); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got error %v, want %v", err, ErrEmptyPath)
	}
	_, err := NewPath(Line{Pt(0, 0), Pt(1, 0)}.Seg(), Line{Pt(0, 1), Pt(1, 1)}.Seg())
	if !errors.Is(err, ErrDiscontinuity) {
		t.Errorf("got error %v, want a discontinuity", err)
	}
}

func TestBuilderArcTo(t *testing.T) {
	b := NewBuilder(BuilderOptions{ArcTolerance: 1e-6})
	b.MoveTo(Pt(10, 0))
	// Upper half of the circle of radius 10 around the origin.
	b.ArcTo(Vec(10, 10), 0, false, true, Pt(-10, 0))
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if p.Start() != Pt(10, 0) || p.End() != Pt(-10, 0) {
		t.Errorf("arc runs from %v to %v", p.Start(), p.End())
	}
	for pt := range Polyline(p, 1e-4) {
		if r := Vec2(pt).Hypot(); math.Abs(r-10) > 1e-3 {
			t.Errorf("%v is %g away from the center, want 10", pt, r)
		}
		if pt.Y < -1e-9 {
			t.Errorf("%v is on the wrong half of the circle", pt)
		}
	}

	b = NewBuilder(BuilderOptions{})
	b.MoveTo(Pt(0, 0))
	b.ArcTo(Vec(0, 5), 0, false, true, Pt(3, 4))
	b.ArcTo(Vec(5, 5), 0, false, true, Pt(3, 4))
	p, err = b.Build()
	if err != nil {
		t.Fatal(err)
	}
	// A zero radius draws a line and a zero-length arc draws nothing.
	diff(t, 1, p.TotalSegmentCount())
	diff(t, Line{Pt(0, 0), Pt(3, 4)}.Seg(), p.Segment(0))
}

func TestBuilderArcToNonFinite(t *testing.T) {
	for _, end := range []Point{Pt(math.NaN(), 0), Pt(math.Inf(1), 0)} {
		b := NewBuilder(BuilderOptions{})
		b.MoveTo(Pt(0, 0))
		b.ArcTo(Vec(10, 10), 0, false, true, end)
		p, err := b.Build()
		if err != nil {
			t.Fatal(err)
		}
		if p.TotalSegmentCount() != 1 || p.Segment(0).Kind != LineKind {
			t.Errorf("arc to %v: got %v, want a single line", end, p)
		}
	}

	b := NewBuilder(BuilderOptions{})
	b.MoveTo(Pt(0, 0))
	b.ArcTo(Vec(math.Inf(1), 10), 0, false, true, Pt(3, 4))
	p, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1, p.TotalSegmentCount())
	diff(t, Line{Pt(0, 0), Pt(3, 4)}.Seg(), p.Segment(0))
}
