package pathgeom

import (
	"iter"
	"log/slog"

	"honnef.co/go/pathgeom/internal/logging"
)

// maxFlattenDepth bounds the recursion of the flattener. A segment
// bisected this often is emitted as is.
const maxFlattenDepth = 24

// Polyline returns an iterator over the points of a polyline approximating
// p. The first point is the start of the path. Lines contribute their end
// point; curves are bisected until the flatness of each piece is below
// tolerance, and contribute the end point of every piece.
//
// The polyline deviates from the path by less than tolerance.
func Polyline(p Path, tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !yield(p.Start()) {
			return
		}
		for _, seg := range p.Segments() {
			if !flattenSegment(seg, tolerance, 0, yield) {
				return
			}
		}
	}
}

// ToPolyline returns the points of [Polyline] as a slice.
func ToPolyline(p Path, tolerance float64) []Point {
	var out []Point
	for pt := range Polyline(p, tolerance) {
		out = append(out, pt)
	}
	return out
}

func flattenSegment(seg Segment, tolerance float64, depth int, yield func(Point) bool) bool {
	// NaN flatness counts as flat.
	if seg.Kind == LineKind || !(seg.flatness() >= tolerance) {
		return yield(seg.End())
	}
	if depth >= maxFlattenDepth {
		logging.Logger().Debug("flattening depth limit reached",
			slog.Int("depth", depth),
			slog.Float64("flatness", seg.flatness()),
			slog.Float64("tolerance", tolerance))
		return yield(seg.End())
	}
	s0, s1 := seg.Subdivide()
	return flattenSegment(s0, tolerance, depth+1, yield) &&
		flattenSegment(s1, tolerance, depth+1, yield)
}
