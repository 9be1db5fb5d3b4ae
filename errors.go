package pathgeom

import (
	"errors"
	"fmt"
)

// Error categories. Errors returned by this package can be tested against
// these with errors.Is; the concrete types carry the details and can be
// extracted with errors.As.
var (
	ErrDiscontinuity        = errors.New("discontinuous path")
	ErrOutOfRange           = errors.New("value out of range")
	ErrDegenerateCurve      = errors.New("degenerate curve")
	ErrPrecisionNotAchieved = errors.New("precision not achieved")

	// ErrEmptyPath is returned when building a path without any segments.
	ErrEmptyPath = errors.New("path has no segments")
)

// DiscontinuityError is returned when a segment doesn't start where the path
// currently ends.
type DiscontinuityError struct {
	// Index is the index the segment would have had in the path.
	Index int
	// Want is the end point of the path, Got the start of the segment.
	Want, Got Point
}

func (e *DiscontinuityError) Error() string {
	return fmt.Sprintf("segment %d starts at %v, but the path ends at %v", e.Index, e.Got, e.Want)
}

func (e *DiscontinuityError) Unwrap() error { return ErrDiscontinuity }

// OutOfRangeError is returned when a requested arc length, segment index or
// curve parameter lies outside of its valid domain.
type OutOfRangeError struct {
	// Quantity names what was out of range, e.g. "arc length".
	Quantity string
	Value    float64
	Min, Max float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %g outside of [%g, %g]", e.Quantity, e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// DegenerateCurveError describes a numerically degenerate configuration,
// such as parallel chords or zero-length tangents. It is handled locally by
// the algorithms and only surfaces in debug logs.
type DegenerateCurveError struct {
	Reason string
}

func (e *DegenerateCurveError) Error() string {
	return "degenerate curve: " + e.Reason
}

func (e *DegenerateCurveError) Unwrap() error { return ErrDegenerateCurve }

// PrecisionNotAchievedError is returned alongside a best-effort result when an
// adaptive algorithm exhausted its budget before reaching the requested
// accuracy. The result is still usable.
type PrecisionNotAchievedError struct {
	Requested float64
	Achieved  float64
}

func (e *PrecisionNotAchievedError) Error() string {
	return fmt.Sprintf("requested error bound %g, achieved %g", e.Requested, e.Achieved)
}

func (e *PrecisionNotAchievedError) Unwrap() error { return ErrPrecisionNotAchieved }
