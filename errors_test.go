package pathgeom

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
		msg      string
	}{
		{
			&DiscontinuityError{Index: 2, Want: Pt(1, 1), Got: Pt(2, 2)},
			ErrDiscontinuity,
			"segment 2 starts at (2, 2), but the path ends at (1, 1)",
		},
		{
			&OutOfRangeError{Quantity: "arc length", Value: 12, Min: 0, Max: 10},
			ErrOutOfRange,
			"arc length 12 outside of [0, 10]",
		},
		{
			&DegenerateCurveError{Reason: "parallel chords"},
			ErrDegenerateCurve,
			"degenerate curve: parallel chords",
		},
		{
			&PrecisionNotAchievedError{Requested: 1e-9, Achieved: 1e-6},
			ErrPrecisionNotAchieved,
			"requested error bound 1e-09, achieved 1e-06",
		},
	}
	for _, tt := range tests {
		diff(t, tt.msg, tt.err.Error())
		wrapped := fmt.Errorf("query: %w", tt.err)
		if !errors.Is(wrapped, tt.sentinel) {
			t.Errorf("%v doesn't match %v", wrapped, tt.sentinel)
		}
		for _, other := range []error{ErrDiscontinuity, ErrOutOfRange, ErrDegenerateCurve, ErrPrecisionNotAchieved} {
			if other != tt.sentinel && errors.Is(tt.err, other) {
				t.Errorf("%v unexpectedly matches %v", tt.err, other)
			}
		}
	}
}
