package pathgeom

import (
	"fmt"
	"iter"
	"strings"
)

// Path is a non-empty sequence of segments in which every segment starts
// where the previous one ends.
//
// A closed path additionally ends where it starts. If the segments given to
// the [Builder] didn't already return to the start, the closing line is part
// of the path and counted by [Path.TotalSegmentCount].
//
// Paths are immutable once built and safe for concurrent use. The zero Path
// is not valid; use [NewPath] or a [Builder].
type Path struct {
	segs   []Segment
	closed bool
}

// Location identifies a point on a path by segment index and the parameter
// within that segment.
type Location struct {
	Index int
	T     float64
}

func (loc Location) String() string {
	return fmt.Sprintf("%d:%g", loc.Index, loc.T)
}

// Before reports whether loc comes strictly before o along the path.
func (loc Location) Before(o Location) bool {
	if loc.Index != o.Index {
		return loc.Index < o.Index
	}
	return loc.T < o.T
}

// NewPath returns a path consisting of segs. Consecutive segments have to
// share their end and start points exactly.
func NewPath(segs ...Segment) (Path, error) {
	b := NewBuilder(BuilderOptions{Strict: true})
	for _, seg := range segs {
		if err := b.Push(seg); err != nil {
			return Path{}, err
		}
	}
	return b.Build()
}

// TotalSegmentCount returns the number of segments, including the closing
// segment of a closed path.
func (p Path) TotalSegmentCount() int {
	return len(p.segs)
}

// Segment returns the i-th segment. It panics if i is out of range.
func (p Path) Segment(i int) Segment {
	return p.segs[i]
}

// Segments returns an iterator over the path's segments and their indices.
func (p Path) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i, seg := range p.segs {
			if !yield(i, seg) {
				return
			}
		}
	}
}

// Closed reports whether the path was closed.
func (p Path) Closed() bool {
	return p.closed
}

func (p Path) Start() Point {
	return p.segs[0].Start()
}

func (p Path) End() Point {
	return p.segs[len(p.segs)-1].End()
}

// EndLocation returns the location of the path's end point.
func (p Path) EndLocation() Location {
	return Location{Index: len(p.segs) - 1, T: 1}
}

// Validate returns an [*OutOfRangeError] if loc doesn't address a point on
// the path.
func (p Path) Validate(loc Location) error {
	if loc.Index < 0 || loc.Index >= len(p.segs) {
		return &OutOfRangeError{
			Quantity: "segment index",
			Value:    float64(loc.Index),
			Min:      0,
			Max:      float64(len(p.segs) - 1),
		}
	}
	if !(loc.T >= 0 && loc.T <= 1) {
		return &OutOfRangeError{Quantity: "parameter", Value: loc.T, Min: 0, Max: 1}
	}
	return nil
}

// At returns the point at loc.
func (p Path) At(loc Location) (Point, error) {
	if err := p.Validate(loc); err != nil {
		return Point{}, err
	}
	return p.segs[loc.Index].Eval(loc.T), nil
}

// TangentAt returns the first derivative at loc. The derivative is with
// respect to the segment's own parameter and isn't normalized.
func (p Path) TangentAt(loc Location) (Vec2, error) {
	if err := p.Validate(loc); err != nil {
		return Vec2{}, err
	}
	return p.segs[loc.Index].Deriv(loc.T), nil
}

// AccelAt returns the second derivative at loc.
func (p Path) AccelAt(loc Location) (Vec2, error) {
	if err := p.Validate(loc); err != nil {
		return Vec2{}, err
	}
	return p.segs[loc.Index].Accel(loc.T), nil
}

// BoundingBox returns the smallest rectangle that encloses the path.
func (p Path) BoundingBox() Rect {
	bbox := p.segs[0].BoundingBox()
	for _, seg := range p.segs[1:] {
		bbox = bbox.Union(seg.BoundingBox())
	}
	return bbox
}

// ControlBox returns the bounding box of all control points. It is never
// smaller than [Path.BoundingBox].
func (p Path) ControlBox() Rect {
	bbox := p.segs[0].ControlBox()
	for _, seg := range p.segs[1:] {
		bbox = bbox.Union(seg.ControlBox())
	}
	return bbox
}

// Reverse returns the path traversed in the opposite direction. Location
// (i, t) on p corresponds to (n-1-i, 1-t) on the result.
func (p Path) Reverse() Path {
	out := make([]Segment, len(p.segs))
	for i, seg := range p.segs {
		out[len(p.segs)-1-i] = seg.Reverse()
	}
	return Path{segs: out, closed: p.closed}
}

// Subpath returns the portion of the path between a and b. If b comes before
// a, the portion is returned reversed. If a equals b, the result is a single
// degenerate line at that point.
//
// Segments strictly between a and b are copied; the segments at a and b are
// trimmed. The result is never closed.
func (p Path) Subpath(a, b Location) (Path, error) {
	if err := p.Validate(a); err != nil {
		return Path{}, err
	}
	if err := p.Validate(b); err != nil {
		return Path{}, err
	}
	if b.Before(a) {
		sub, err := p.Subpath(b, a)
		if err != nil {
			return Path{}, err
		}
		return sub.Reverse(), nil
	}
	if a == b {
		pt := p.segs[a.Index].Eval(a.T)
		return Path{segs: []Segment{Line{pt, pt}.Seg()}}, nil
	}
	if a.Index == b.Index {
		return Path{segs: []Segment{p.segs[a.Index].Subsegment(a.T, b.T)}}, nil
	}

	out := make([]Segment, 0, b.Index-a.Index+1)
	if a.T < 1 {
		out = append(out, p.segs[a.Index].Subsegment(a.T, 1))
	}
	out = append(out, p.segs[a.Index+1:b.Index]...)
	if b.T > 0 || len(out) == 0 {
		out = append(out, p.segs[b.Index].Subsegment(0, b.T))
	}
	return Path{segs: out}, nil
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("Path{")
	for i, seg := range p.segs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(seg.String())
	}
	if p.closed {
		sb.WriteString(", closed")
	}
	sb.WriteString("}")
	return sb.String()
}
