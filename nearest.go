package pathgeom

import (
	"cmp"
	"math"
	"slices"
)

const (
	// nearestEpsilon is the parameter accuracy of nearest point refinement.
	nearestEpsilon      = 1e-12
	maxNewtonIterations = 50
)

// NearestLocation returns the location on p closest to pt and the distance
// between the two.
//
// Segments are visited in order of the distance of their control boxes to
// pt, which bounds the distance to the curve from below. The search stops
// once that bound exceeds the best distance found.
func NearestLocation(p Path, pt Point) (Location, float64) {
	type candidate struct {
		index int
		bound float64
	}
	cands := make([]candidate, p.TotalSegmentCount())
	for i, seg := range p.Segments() {
		cands[i] = candidate{i, seg.ControlBox().Distance(pt)}
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(a.bound, b.bound)
	})

	best := Location{}
	bestDist := math.Inf(1)
	for _, c := range cands {
		if c.bound > bestDist {
			break
		}
		distSq, t := p.Segment(c.index).Nearest(pt)
		if d := math.Sqrt(distSq); d < bestDist {
			bestDist = d
			best = Location{Index: c.index, T: t}
		}
	}
	return best, bestDist
}

// newtonBracketed finds a root of f in [lo, hi], given f(lo) < 0 < f(hi).
// Newton steps that leave the bracket are replaced by bisection.
func newtonBracketed(f, df Poly, lo, hi float64) float64 {
	x := 0.5 * (lo + hi)
	for range maxNewtonIterations {
		fx := f.Eval(x)
		if fx == 0 {
			return x
		}
		if fx < 0 {
			lo = x
		} else {
			hi = x
		}
		next := 0.5 * (lo + hi)
		if d := df.Eval(x); d != 0 {
			if nx := x - fx/d; nx > lo && nx < hi {
				next = nx
			}
		}
		if math.Abs(next-x) < nearestEpsilon {
			return next
		}
		x = next
	}
	return x
}

// newtonFrom runs unbracketed Newton iteration on f from x. It fails if the
// iteration leaves [0, 1] or doesn't converge.
func newtonFrom(f, df Poly, x float64) (float64, bool) {
	for range maxNewtonIterations {
		d := df.Eval(x)
		if d == 0 {
			return 0, false
		}
		next := x - f.Eval(x)/d
		if !(next >= 0 && next <= 1) {
			return 0, false
		}
		if math.Abs(next-x) < nearestEpsilon {
			return next, true
		}
		x = next
	}
	return 0, false
}
