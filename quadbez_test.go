package pathgeom

import (
	"fmt"
	"math"
	"testing"
)

// parabola is y = x² on [-1, 1].
var parabola = QuadBez{Pt(-1, 1), Pt(0, -1), Pt(1, 1)}

func TestQuadBezSubsegment(t *testing.T) {
	q := testSegments[1].Quad()
	for _, r := range [][2]float64{{0.1, 0.8}, {0, 0.5}, {0.3, 1}, {0.9, 0.2}} {
		sub := q.Subsegment(r[0], r[1])
		for i := range 11 {
			u := float64(i) / 10
			assertNear(t, q.Eval(r[0]+u*(r[1]-r[0])), sub.Eval(u), 1e-12)
		}
	}
}

func TestQuadBezSplit(t *testing.T) {
	left, right := parabola.Split(0.25)
	diff(t, parabola.Start(), left.Start())
	diff(t, left.End(), right.Start())
	diff(t, parabola.End(), right.End())
	assertNear(t, parabola.Eval(0.125), left.Eval(0.5), 1e-12)
	assertNear(t, parabola.Eval(0.625), right.Eval(0.5), 1e-12)
}

func TestQuadBezDerivatives(t *testing.T) {
	const h = 1e-6
	q := testSegments[1].Quad()
	d := q.Differentiate()
	for i := range 11 {
		u := float64(i) / 10
		fd := q.Eval(u + h).Sub(q.Eval(u - h)).Mul(1 / (2 * h))
		if e := Vec2(d.Eval(u)).Sub(fd).Hypot(); e > 1e-6 {
			t.Errorf("hodograph at %g is off by %g", u, e)
		}
		diff(t, Vec2(d.Eval(u)), q.Deriv(u), approx(1e-12))
	}
	diff(t, Vec(0, 8), parabola.Accel())
}

func TestQuadBezRaise(t *testing.T) {
	q := testSegments[1].Quad()
	c := q.Raise()
	for i := range 11 {
		u := float64(i) / 10
		assertNear(t, q.Eval(u), c.Eval(u), 1e-12)
		diff(t, q.Deriv(u), c.Deriv(u), approx(1e-12))
	}
}

func TestQuadBezNearest(t *testing.T) {
	cases := []struct {
		q    QuadBez
		pt   Point
		want float64
	}{
		{parabola, Pt(0, 0), 0.5},
		{parabola, Pt(0, 0.1), 0.5},
		{parabola, Pt(0, -0.1), 0.5},
		{parabola, Pt(0.5, 0.25), 0.75},
		{parabola, Pt(1, 1), 1},
		{parabola, Pt(1.1, 1.1), 1},
		{parabola, Pt(-1.1, 1.1), 0},
		// Collinear control points make the cubic term of the distance
		// derivative vanish.
		{QuadBez{Pt(-1, 0), Pt(0, 0), Pt(1, 0)}, Pt(0, 0), 0.5},
		{QuadBez{Pt(-1, 0), Pt(0, 0), Pt(1, 0)}, Pt(0, 1), 0.5},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.pt), func(t *testing.T) {
			distSq, got := c.q.Nearest(c.pt)
			if math.Abs(got-c.want) > 1e-6 {
				t.Errorf("got t=%v, want %v", got, c.want)
			}
			if want := c.q.Eval(c.want).Sub(c.pt).Hypot2(); math.Abs(distSq-want) > 1e-9 {
				t.Errorf("got squared distance %v, want %v", distSq, want)
			}
		})
	}
}

func TestQuadBezExtrema(t *testing.T) {
	extrema, n := parabola.Extrema()
	diff(t, []float64{0.5}, extrema[:n], approx(1e-6))

	extrema, n = QuadBez{Pt(0, 0.5), Pt(1, 1), Pt(0.5, 0)}.Extrema()
	diff(t, []float64{1.0 / 3.0, 2.0 / 3.0}, extrema[:n], approx(1e-6))

	if _, n := (QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 2)}).Extrema(); n != 0 {
		t.Errorf("monotone curve has %d extrema", n)
	}
}
