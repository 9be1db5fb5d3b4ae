package pathgeom

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"honnef.co/go/pathgeom/internal/logging"
)

// ArclenMethod selects how the length of curved segments is computed.
type ArclenMethod int

const (
	// Quadrature integrates the speed |B'(t)| with adaptive Gauss–Kronrod
	// quadrature.
	Quadrature ArclenMethod = iota
	// Subdivision bisects curves until they are flat and sums the chord
	// lengths.
	Subdivision
)

func (m ArclenMethod) String() string {
	switch m {
	case Quadrature:
		return "quadrature"
	case Subdivision:
		return "subdivision"
	default:
		return fmt.Sprintf("ArclenMethod(%d)", int(m))
	}
}

// ParseArclenMethod parses the names returned by [ArclenMethod.String].
func ParseArclenMethod(s string) (ArclenMethod, error) {
	switch strings.ToLower(s) {
	case "quadrature", "":
		return Quadrature, nil
	case "subdivision":
		return Subdivision, nil
	default:
		return 0, fmt.Errorf("unknown arc length method %q", s)
	}
}

// maxSubdivisionLengthDepth bounds the recursion of the Subdivision method.
const maxSubdivisionLengthDepth = 30

// LengthOptions specifies settings for [LengthOpt] and related functions.
type LengthOptions struct {
	Method ArclenMethod
	// AbsTol is the requested absolute error of the whole path's length.
	// For the Subdivision method it is the flatness below which pieces are
	// measured by their chord. Zero means DefaultTolerance.
	AbsTol float64
	// RelTol is the requested error relative to the length. It only applies
	// to the Quadrature method.
	RelTol float64
	// MaxIntervals is the maximum number of subintervals the Quadrature
	// method splits a segment into. Zero means DefaultMaxIntervals.
	MaxIntervals int
}

func (opts LengthOptions) withDefaults() LengthOptions {
	if opts.AbsTol <= 0 {
		opts.AbsTol = DefaultTolerance
	}
	if opts.MaxIntervals <= 0 {
		opts.MaxIntervals = DefaultMaxIntervals
	}
	return opts
}

// Length returns the length of p and an estimate of the absolute error,
// using the Quadrature method with the given absolute tolerance.
//
// If the tolerance couldn't be met, err is a [*PrecisionNotAchievedError]
// and the returned values are the best estimate and its error.
func Length(p Path, tolerance float64) (length, abserr float64, err error) {
	return LengthOpt(p, LengthOptions{AbsTol: tolerance})
}

// LengthOpt is like [Length] but accepts options.
func LengthOpt(p Path, opts LengthOptions) (length, abserr float64, err error) {
	lens, abserr, ok := segmentLengths(p, opts.withDefaults())
	for _, l := range lens {
		length += l
	}
	if !ok {
		return length, abserr, precisionError(opts.withDefaults().AbsTol, abserr)
	}
	return length, abserr, nil
}

func precisionError(requested, achieved float64) error {
	logging.Logger().Debug("arc length precision not achieved",
		slog.Float64("requested", requested),
		slog.Float64("achieved", achieved))
	return &PrecisionNotAchievedError{Requested: requested, Achieved: achieved}
}

// segmentLengths returns the length of every segment, the total error and
// whether all segments met their share of the tolerance.
func segmentLengths(p Path, opts LengthOptions) (lens []float64, abserr float64, ok bool) {
	n := p.TotalSegmentCount()
	segOpts := opts
	if opts.Method == Quadrature {
		segOpts.AbsTol = opts.AbsTol / float64(n)
	}
	lens = make([]float64, n)
	ok = true
	for i, seg := range p.Segments() {
		l, e, segOK := segmentLength(seg, 0, 1, segOpts)
		lens[i] = l
		abserr += e
		ok = ok && segOK
	}
	return lens, abserr, ok
}

// SegmentLength returns the length of seg and an estimate of the absolute
// error. Errors are reported as by [Length].
func SegmentLength(seg Segment, opts LengthOptions) (length, abserr float64, err error) {
	opts = opts.withDefaults()
	length, abserr, ok := segmentLength(seg, 0, 1, opts)
	if !ok {
		return length, abserr, precisionError(opts.AbsTol, abserr)
	}
	return length, abserr, nil
}

// segmentLength measures seg between t0 and t1, with t0 <= t1.
func segmentLength(seg Segment, t0, t1 float64, opts LengthOptions) (length, abserr float64, ok bool) {
	if seg.Kind == LineKind {
		return seg.Line().Length() * (t1 - t0), 0, true
	}
	switch opts.Method {
	case Quadrature:
		speed := func(t float64) float64 { return seg.Deriv(t).Hypot() }
		return integrate(speed, t0, t1, opts.AbsTol, opts.RelTol, opts.MaxIntervals)
	case Subdivision:
		if t0 != 0 || t1 != 1 {
			seg = seg.Subsegment(t0, t1)
		}
		return subdivisionLength(seg, opts.AbsTol, 0)
	default:
		panic(fmt.Sprintf("unhandled arc length method %v", opts.Method))
	}
}

// subdivisionLength sums the chords of flat pieces of seg. The error is
// bounded by the difference between the control polygon and chord lengths
// of the pieces, as the curve's length lies between the two.
func subdivisionLength(seg Segment, tolerance float64, depth int) (length, abserr float64, ok bool) {
	if !(seg.flatness() >= tolerance) || depth >= maxSubdivisionLengthDepth {
		pts, n := seg.ControlPoints()
		var poly float64
		for i := 1; i < n; i++ {
			poly += pts[i].Distance(pts[i-1])
		}
		chord := seg.chord().Length()
		return chord, poly - chord, depth < maxSubdivisionLengthDepth
	}
	s0, s1 := seg.Subdivide()
	l0, e0, ok0 := subdivisionLength(s0, tolerance, depth+1)
	l1, e1, ok1 := subdivisionLength(s1, tolerance, depth+1)
	return l0 + l1, e0 + e1, ok0 && ok1
}

// LengthAt returns the length of p from its start up to loc.
func LengthAt(p Path, loc Location, tolerance float64) (float64, error) {
	if err := p.Validate(loc); err != nil {
		return 0, err
	}
	opts := LengthOptions{AbsTol: tolerance}.withDefaults()
	segOpts := opts
	segOpts.AbsTol = opts.AbsTol / float64(loc.Index+1)
	var length, abserr float64
	ok := true
	for i := range loc.Index {
		l, e, segOK := segmentLength(p.Segment(i), 0, 1, segOpts)
		length += l
		abserr += e
		ok = ok && segOK
	}
	l, e, segOK := segmentLength(p.Segment(loc.Index), 0, loc.T, segOpts)
	length += l
	abserr += e
	if !(ok && segOK) {
		return length, precisionError(opts.AbsTol, abserr)
	}
	return length, nil
}

// LocationAtLength returns the location at arc length s from the start of
// p. Lengths outside of [0, Length(p)] result in an [*OutOfRangeError]. A
// length at the end of a segment maps to the start of the next one.
//
// If the tolerance couldn't be met, the location is still returned, along
// with a [*PrecisionNotAchievedError].
func LocationAtLength(p Path, s float64, tolerance float64) (Location, error) {
	return LocationAtLengthOpt(p, s, LengthOptions{AbsTol: tolerance})
}

// LocationAtLengthOpt is like [LocationAtLength] but accepts options.
func LocationAtLengthOpt(p Path, s float64, opts LengthOptions) (Location, error) {
	opts = opts.withDefaults()
	lens, abserr, ok := segmentLengths(p, opts)
	loc, solveErr, solveOK, err := locationAtLength(p, lens, s, opts)
	if err != nil {
		return Location{}, err
	}
	if !(ok && solveOK) {
		return loc, precisionError(opts.AbsTol, abserr+solveErr)
	}
	return loc, nil
}

// locationAtLength maps s to a location, given the lengths of p's segments.
// It also returns the error of the lengths measured while solving and
// whether they met their tolerance.
func locationAtLength(p Path, lens []float64, s float64, opts LengthOptions) (loc Location, abserr float64, ok bool, err error) {
	var total float64
	for _, l := range lens {
		total += l
	}
	if !(s >= 0 && s <= total) {
		return Location{}, 0, false, &OutOfRangeError{Quantity: "arc length", Value: s, Min: 0, Max: total}
	}

	remaining := s
	last := len(lens) - 1
	for i, l := range lens {
		if remaining < l || i == last {
			t, e, solveOK := solveForLength(p.Segment(i), min(remaining, l), l, opts)
			return Location{Index: i, T: t}, e, solveOK, nil
		}
		remaining -= l
	}
	panic("unreachable")
}

// solveForLength solves for the parameter of seg at which the arc length
// from the start is target, given the segment's total length. It also
// returns the accumulated error of the measurements and whether all of them
// met their tolerance.
//
// This uses the ITP method, as provided by [SolveITP]. Each evaluation only
// measures the piece between the previous evaluation point and the current one.
func solveForLength(seg Segment, target, total float64, opts LengthOptions) (t, abserr float64, ok bool) {
	if target <= 0 {
		return 0, 0, true
	}
	if target >= total {
		return 1, 0, true
	}
	if seg.Kind == LineKind {
		return target / total, 0, true
	}

	epsilon := max(opts.AbsTol/total, 1e-14)
	n := 1.0 - min(math.Ceil(math.Log2(epsilon)), 0.0)
	inner := opts
	inner.AbsTol = opts.AbsTol / n

	ok = true
	tLast := 0.0
	lenLast := 0.0
	measure := func(t0, t1 float64) float64 {
		l, e, segOK := segmentLength(seg, t0, t1, inner)
		abserr += e
		ok = ok && segOK
		return l
	}
	f := func(t float64) float64 {
		if t > tLast {
			lenLast += measure(tLast, t)
		} else {
			lenLast -= measure(t, tLast)
		}
		tLast = t
		return lenLast - target
	}
	t = SolveITP(f, 0.0, 1.0, epsilon, 1, 0.2, -target, total-target)
	return t, abserr, ok
}

// UniformLocations returns n+1 locations that divide p into n pieces of
// equal length. The first and last locations are the ends of the path.
// Precision errors are reported as by [LocationAtLength].
func UniformLocations(p Path, n int, tolerance float64) ([]Location, error) {
	return UniformLocationsOpt(p, n, LengthOptions{AbsTol: tolerance})
}

// UniformLocationsOpt is like [UniformLocations] but accepts options.
func UniformLocationsOpt(p Path, n int, opts LengthOptions) ([]Location, error) {
	if n < 1 {
		return nil, &OutOfRangeError{Quantity: "piece count", Value: float64(n), Min: 1, Max: math.Inf(1)}
	}
	opts = opts.withDefaults()
	lens, abserr, ok := segmentLengths(p, opts)
	var total float64
	for _, l := range lens {
		total += l
	}

	out := make([]Location, n+1)
	for i := 1; i < n; i++ {
		loc, e, locOK, err := locationAtLength(p, lens, total*float64(i)/float64(n), opts)
		if err != nil {
			return nil, err
		}
		abserr += e
		ok = ok && locOK
		out[i] = loc
	}
	out[n] = p.EndLocation()
	if !ok {
		return out, precisionError(opts.AbsTol, abserr)
	}
	return out, nil
}

// Divide splits p into n subpaths of equal length. Precision errors are
// reported as by [LocationAtLength], along with the subpaths.
func Divide(p Path, n int, tolerance float64) ([]Path, error) {
	return DivideOpt(p, n, LengthOptions{AbsTol: tolerance})
}

// DivideOpt is like [Divide] but accepts options.
func DivideOpt(p Path, n int, opts LengthOptions) ([]Path, error) {
	locs, err := UniformLocationsOpt(p, n, opts)
	var perr *PrecisionNotAchievedError
	if err != nil && !errors.As(err, &perr) {
		return nil, err
	}
	out := make([]Path, n)
	for i := range n {
		sub, err := p.Subpath(locs[i], locs[i+1])
		if err != nil {
			return nil, err
		}
		out[i] = sub
	}
	if perr != nil {
		return out, perr
	}
	return out, nil
}
