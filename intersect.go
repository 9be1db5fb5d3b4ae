package pathgeom

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"honnef.co/go/pathgeom/internal/logging"
)

// maxIntersectDepth bounds the number of bisections per curve in
// [FindIntersections], regardless of the depth estimated from the curve.
const maxIntersectDepth = 32

// maxIntersectPairs bounds the number of piece pairs [FindIntersections]
// examines. Only curves that run within the flattening accuracy of each
// other for long stretches get near it.
const maxIntersectPairs = 1 << 18

// intersectionEpsilon is the parameter distance within which two
// intersections are considered the same.
const intersectionEpsilon = 1e-6

// coincidenceTolerance is the distance, relative to the size of the
// segments, within which two segments are considered to trace the same
// curve.
const coincidenceTolerance = 1e-9

// touchSine is the sine of the angle below which two pieces meeting end to
// end are considered to continue each other rather than cross.
const touchSine = 1e-6

// Intersection is a point where two segments meet, given by the parameters
// on both segments.
type Intersection struct {
	TA, TB float64
}

// FindIntersections returns the intersections of a and b, sorted by TA and
// then TB.
//
// Both segments are converted to cubics and recursively bisected, discarding
// pairs of pieces whose control boxes don't overlap. The number of
// bisections follows from Wang's formula so that the remaining pieces are
// flat, at which point their chords are intersected. Intersections closer
// than 1e-6 in both parameters are merged into one.
//
// Where a and b trace the same curve, no intersections are reported, and
// neither are the points where the shared stretch begins and ends. This
// includes a segment intersected with itself. Chords of pieces that meet
// end to end with parallel tangents don't count as crossing. Segments that
// are points or have non-finite control points have no intersections.
func FindIntersections(a, b Segment) []Intersection {
	for _, seg := range [2]Segment{a, b} {
		if err := seg.degenerate(); err != nil {
			logging.Logger().Debug("skipping segment in intersection",
				slog.String("segment", seg.String()),
				slog.Any("error", err))
			return nil
		}
	}
	if !a.ControlBox().Overlaps(b.ControlBox()) {
		return nil
	}

	x := intersector{budget: maxIntersectPairs}
	if first, last, ok := coincidentRange(a, b); ok {
		logging.Logger().Debug("skipping coincident stretch",
			slog.Float64("t0", first.t), slog.Float64("t1", last.t),
			slog.Float64("u0", first.u), slog.Float64("u1", last.u))
		// The pieces are pinned to the points where the stretch begins and
		// ends, so that they meet the other segment exactly there.
		if first.t > 0 {
			x.find(a.Subsegment(0, first.t).withEnd(first.pt), 0, first.t, b, 0, 1)
		}
		if last.t < 1 {
			x.find(a.Subsegment(last.t, 1).withStart(last.pt), last.t, 1, b, 0, 1)
		}
		shared := a.Subsegment(first.t, last.t).withStart(first.pt).withEnd(last.pt)
		lo, hi := first, last
		if lo.u > hi.u {
			lo, hi = hi, lo
		}
		if lo.u > 0 {
			x.find(shared, first.t, last.t, b.Subsegment(0, lo.u).withEnd(lo.pt), 0, lo.u)
		}
		if hi.u < 1 {
			x.find(shared, first.t, last.t, b.Subsegment(hi.u, 1).withStart(hi.pt), hi.u, 1)
		}
	} else {
		x.find(a, 0, 1, b, 0, 1)
	}
	if x.budget < 0 {
		logging.Logger().Debug("intersection budget exhausted",
			slog.String("a", a.String()),
			slog.String("b", b.String()),
			slog.Int("pairs", maxIntersectPairs),
			slog.Int("found", len(x.out)))
	}
	return dedupIntersections(x.out)
}

// coincidence is a point that lies on both segments.
type coincidence struct {
	t, u float64
	// pt is the endpoint of a or b that was found on the other segment.
	pt Point
}

// coincidentRange looks for a stretch along which a and b trace the same
// curve. Such a stretch begins and ends at endpoints of a or b, so these are
// looked up on the other segment. If the parts between the matches have the
// same control points, they are the same curve. first and last are ordered
// by their parameter on a; b may run in either direction.
func coincidentRange(a, b Segment) (first, last coincidence, ok bool) {
	tol := coincidenceTolerance * max(a.ControlBox().MaxExtent(), b.ControlBox().MaxExtent())
	boxA := a.ControlBox().Inflate(tol, tol)
	boxB := b.ControlBox().Inflate(tol, tol)
	var matches []coincidence
	for _, m := range [2]coincidence{{u: 0, pt: b.Start()}, {u: 1, pt: b.End()}} {
		if !boxA.Contains(m.pt) {
			continue
		}
		if d, t := a.Nearest(m.pt); d <= tol*tol {
			m.t = t
			matches = append(matches, m)
		}
	}
	for _, m := range [2]coincidence{{t: 0, pt: a.Start()}, {t: 1, pt: a.End()}} {
		if !boxB.Contains(m.pt) {
			continue
		}
		if d, u := b.Nearest(m.pt); d <= tol*tol {
			m.u = u
			matches = append(matches, m)
		}
	}
	if len(matches) < 2 {
		return coincidence{}, coincidence{}, false
	}
	first, last = matches[0], matches[0]
	for _, m := range matches[1:] {
		if m.t < first.t {
			first = m
		}
		if m.t > last.t {
			last = m
		}
	}
	if last.t-first.t <= intersectionEpsilon || math.Abs(last.u-first.u) <= intersectionEpsilon {
		return coincidence{}, coincidence{}, false
	}
	pa := a.Subsegment(first.t, last.t).Cubic()
	pb := b.Subsegment(first.u, last.u).Cubic()
	if pa.P0.Distance(pb.P0) > tol || pa.P1.Distance(pb.P1) > tol ||
		pa.P2.Distance(pb.P2) > tol || pa.P3.Distance(pb.P3) > tol {
		return coincidence{}, coincidence{}, false
	}
	return first, last, true
}

// intersector collects the chord intersections of recursively bisected
// pieces.
type intersector struct {
	out []Intersection
	// budget is the number of piece pairs left to examine. It goes negative
	// once exhausted.
	budget int
}

// find intersects a and b, which span [t0, t1] and [u0, u1] of the
// segments passed to FindIntersections.
func (x *intersector) find(a Segment, t0, t1 float64, b Segment, u0, u1 float64) {
	if !a.ControlBox().Overlaps(b.ControlBox()) {
		return
	}
	depthA, depthB := a.subdivisionDepth(), b.subdivisionDepth()
	if depthA > maxIntersectDepth || depthB > maxIntersectDepth {
		logging.Logger().Debug("intersection depth capped",
			slog.Int("depthA", depthA),
			slog.Int("depthB", depthB),
			slog.Int("max", maxIntersectDepth))
	}
	x.recurse(
		a.Cubic().Seg(), t0, t1, min(depthA, maxIntersectDepth),
		b.Cubic().Seg(), u0, u1, min(depthB, maxIntersectDepth))
}

func (x *intersector) recurse(
	a Segment, t0, t1 float64, depthA int,
	b Segment, u0, u1 float64, depthB int,
) {
	if x.budget <= 0 {
		x.budget = -1
		return
	}
	x.budget--

	switch {
	case depthA > 0 && depthB > 0:
		a0, a1 := a.Subdivide()
		b0, b1 := b.Subdivide()
		tm := 0.5 * (t0 + t1)
		um := 0.5 * (u0 + u1)
		for _, pa := range [2]struct {
			seg    Segment
			t0, t1 float64
		}{{a0, t0, tm}, {a1, tm, t1}} {
			boxA := pa.seg.ControlBox()
			if boxA.Overlaps(b0.ControlBox()) {
				x.recurse(pa.seg, pa.t0, pa.t1, depthA-1, b0, u0, um, depthB-1)
			}
			if boxA.Overlaps(b1.ControlBox()) {
				x.recurse(pa.seg, pa.t0, pa.t1, depthA-1, b1, um, u1, depthB-1)
			}
		}
	case depthA > 0:
		a0, a1 := a.Subdivide()
		tm := 0.5 * (t0 + t1)
		boxB := b.ControlBox()
		if a0.ControlBox().Overlaps(boxB) {
			x.recurse(a0, t0, tm, depthA-1, b, u0, u1, depthB)
		}
		if a1.ControlBox().Overlaps(boxB) {
			x.recurse(a1, tm, t1, depthA-1, b, u0, u1, depthB)
		}
	case depthB > 0:
		b0, b1 := b.Subdivide()
		um := 0.5 * (u0 + u1)
		boxA := a.ControlBox()
		if boxA.Overlaps(b0.ControlBox()) {
			x.recurse(a, t0, t1, depthA, b0, u0, um, depthB-1)
		}
		if boxA.Overlaps(b1.ControlBox()) {
			x.recurse(a, t0, t1, depthA, b1, um, u1, depthB-1)
		}
	default:
		ta, tb, ok := intersectChords(a.chord(), b.chord())
		if !ok || continuesAtEnds(a, b, ta, tb) {
			return
		}
		x.out = append(x.out, Intersection{
			TA: t0 + (t1-t0)*ta,
			TB: u0 + (u1-u0)*tb,
		})
	}
}

// continuesAtEnds reports whether the chord intersection at ta and tb is an
// endpoint of both pieces at which their tangents are parallel. Neighbouring
// pieces of one curve meet like this.
func continuesAtEnds(a, b Segment, ta, tb float64) bool {
	const eps = 1e-9
	end := func(t float64) (float64, bool) {
		switch {
		case t <= eps:
			return 0, true
		case t >= 1-eps:
			return 1, true
		default:
			return 0, false
		}
	}
	sa, okA := end(ta)
	sb, okB := end(tb)
	if !okA || !okB {
		return false
	}
	da, db := a.Deriv(sa), b.Deriv(sb)
	norm := da.Hypot() * db.Hypot()
	return norm != 0 && math.Abs(da.Cross(db)) <= touchSine*norm
}

// dedupIntersections sorts the intersections and merges those within
// intersectionEpsilon of an already kept one. Neighbouring pieces share
// their endpoints, so an intersection there is found more than once.
func dedupIntersections(xs []Intersection) []Intersection {
	if len(xs) == 0 {
		return nil
	}
	slices.SortFunc(xs, func(a, b Intersection) int {
		if c := cmp.Compare(a.TA, b.TA); c != 0 {
			return c
		}
		return cmp.Compare(a.TB, b.TB)
	})
	out := xs[:1]
	for _, x := range xs[1:] {
		dup := false
		// Duplicates differ by less than epsilon in TA, so only the tail of
		// out can match.
		for i := len(out) - 1; i >= 0 && x.TA-out[i].TA <= intersectionEpsilon; i-- {
			if math.Abs(x.TB-out[i].TB) <= intersectionEpsilon {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, x)
		}
	}
	return out
}

// PathIntersection is a point where two paths meet.
type PathIntersection struct {
	A, B Location
}

// PathIntersections returns the intersections of all pairs of segments of p
// and q, ordered by their location on p. An intersection at a joint between
// two segments is reported once, at the start of the later segment.
func PathIntersections(p, q Path) []PathIntersection {
	var out []PathIntersection
	for i, sa := range p.Segments() {
		boxA := sa.ControlBox()
		for j, sb := range q.Segments() {
			if !boxA.Overlaps(sb.ControlBox()) {
				continue
			}
			for _, x := range FindIntersections(sa, sb) {
				out = append(out, PathIntersection{
					A: p.atJoint(Location{Index: i, T: x.TA}),
					B: q.atJoint(Location{Index: j, T: x.TB}),
				})
			}
		}
	}
	slices.SortStableFunc(out, func(x, y PathIntersection) int {
		if x.A.Before(y.A) {
			return -1
		}
		if y.A.Before(x.A) {
			return 1
		}
		return 0
	})
	// Pairs at a joint are found from the segments on both sides.
	kept := out[:0]
	for _, x := range out {
		dup := false
		for i := len(kept) - 1; i >= 0 && kept[i].A.Index == x.A.Index && x.A.T-kept[i].A.T <= intersectionEpsilon; i-- {
			if kept[i].B.Index == x.B.Index && math.Abs(kept[i].B.T-x.B.T) <= intersectionEpsilon {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, x)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// atJoint moves locations within intersectionEpsilon of the end of a segment
// to the start of the next one. The end of a closed path wraps around to its
// start.
func (p Path) atJoint(loc Location) Location {
	if loc.T < 1-intersectionEpsilon {
		return loc
	}
	switch {
	case loc.Index < len(p.segs)-1:
		return Location{Index: loc.Index + 1}
	case p.closed:
		return Location{}
	default:
		return loc
	}
}
