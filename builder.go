package pathgeom

import (
	"errors"
	"log/slog"

	"honnef.co/go/pathgeom/internal/logging"
)

// ErrPathClosed is returned when adding segments to a builder after Close.
var ErrPathClosed = errors.New("segment added after Close")

// DefaultArcTolerance is the tolerance used by [Builder.ArcTo] when
// BuilderOptions.ArcTolerance is zero.
const DefaultArcTolerance = 1e-3

// BuilderOptions specifies optional settings for [NewBuilder].
type BuilderOptions struct {
	// Strict rejects segments that don't start at the current end of the
	// path with a [*DiscontinuityError]. Otherwise, the gap is bridged with a
	// line.
	Strict bool
	// Epsilon is the distance per coordinate within which a segment's start
	// is considered equal to the path's end. Such starts are snapped to the
	// end. A value of 0 requires exact equality.
	Epsilon float64
	// ArcTolerance is the maximum deviation of the cubics emitted by
	// [Builder.ArcTo] from the true arc.
	ArcTolerance float64
}

// Builder constructs a [Path]. Use the drawing methods (MoveTo, LineTo, ...)
// or Push, then call Build.
//
// Drawing methods don't return errors. The first error is remembered and
// returned by Build, and any further drawing is ignored.
type Builder struct {
	opts BuilderOptions
	segs []Segment
	// pending is the point set by MoveTo that the next segment starts at.
	pending option[Point]
	closed  bool
	err     error
}

func NewBuilder(opts BuilderOptions) *Builder {
	if opts.ArcTolerance <= 0 {
		opts.ArcTolerance = DefaultArcTolerance
	}
	return &Builder{opts: opts}
}

// Push appends a segment to the path.
//
// The first segment determines the start of the path. Subsequent segments
// must start where the path currently ends, within BuilderOptions.Epsilon. In
// strict mode a [*DiscontinuityError] is returned otherwise; in non-strict
// mode a connecting line is inserted first.
func (b *Builder) Push(seg Segment) error {
	if b.closed {
		return ErrPathClosed
	}
	if len(b.segs) == 0 {
		b.segs = append(b.segs, seg)
		return nil
	}
	end := b.segs[len(b.segs)-1].End()
	if start := seg.Start(); start != end {
		if start.ApproxEqual(end, b.opts.Epsilon) {
			seg = seg.withStart(end)
		} else if b.opts.Strict {
			return &DiscontinuityError{Index: len(b.segs), Want: end, Got: start}
		} else {
			logging.Logger().Debug("bridging discontinuity",
				slog.Int("index", len(b.segs)),
				slog.String("from", end.String()),
				slog.String("to", start.String()))
			b.segs = append(b.segs, Line{end, start}.Seg())
		}
	}
	b.segs = append(b.segs, seg)
	return nil
}

// current returns the point the next segment starts at. Before any drawing,
// this is the origin.
func (b *Builder) current() Point {
	if b.pending.isSet {
		return b.pending.value
	}
	if len(b.segs) == 0 {
		return Point{}
	}
	return b.segs[len(b.segs)-1].End()
}

func (b *Builder) push(seg Segment) {
	if b.err != nil {
		return
	}
	if err := b.Push(seg); err != nil {
		b.err = err
		return
	}
	b.pending = option[Point]{}
}

// MoveTo sets the start of the next segment. Moving anywhere but the current
// end of a non-empty path makes the next segment discontinuous, which is
// handled as described by [Builder.Push].
func (b *Builder) MoveTo(pt Point) {
	b.pending.set(pt)
}

func (b *Builder) LineTo(pt Point) {
	b.push(Line{b.current(), pt}.Seg())
}

func (b *Builder) QuadTo(p1, p2 Point) {
	b.push(QuadBez{b.current(), p1, p2}.Seg())
}

func (b *Builder) CubicTo(p1, p2, p3 Point) {
	b.push(CubicBez{b.current(), p1, p2, p3}.Seg())
}

// ArcTo appends an elliptical arc in SVG endpoint parametrization,
// approximated with cubic Béziers. As in SVG, a zero radius produces a
// straight line and a zero-length arc is omitted. Arcs with non-finite
// inputs are drawn as lines, too.
func (b *Builder) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, end Point) {
	start := b.current()
	arc, ok := ArcFromEndpoints(start, radii, xRotation, largeArc, sweep, end)
	var cubics []CubicBez
	if ok {
		for c := range arc.Cubics(b.opts.ArcTolerance) {
			cubics = append(cubics, c)
		}
	}
	if len(cubics) == 0 {
		if start != end {
			b.LineTo(end)
		}
		return
	}
	// Pin the ends exactly; the sampled ellipse is only accurate up to
	// rounding.
	cubics[0].P0 = start
	cubics[len(cubics)-1].P3 = end
	for _, c := range cubics {
		b.push(c.Seg())
	}
}

// Close marks the path as closed. If the path doesn't end where it starts,
// Build appends a closing line.
func (b *Builder) Close() {
	b.closed = true
}

// Build returns the path. It returns the first error encountered while
// drawing, or [ErrEmptyPath] if no segment was added.
func (b *Builder) Build() (Path, error) {
	if b.err != nil {
		return Path{}, b.err
	}
	if len(b.segs) == 0 {
		return Path{}, ErrEmptyPath
	}
	segs := make([]Segment, len(b.segs), len(b.segs)+1)
	copy(segs, b.segs)
	if b.closed {
		if start, end := segs[0].Start(), segs[len(segs)-1].End(); start != end {
			segs = append(segs, Line{end, start}.Seg())
		}
	}
	return Path{segs: segs, closed: b.closed}, nil
}
