package pathtext

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/pathgeom"
)

// Format returns the text representation of p.
//
// See [Write] for a version that writes to an [io.Writer] instead of
// returning a string.
func Format(p pathgeom.Path, opts Options) string {
	sb := &strings.Builder{}
	Write(sb, p, opts)
	return sb.String()
}

// Write writes the text representation of p to w. Parsing the output
// reproduces p exactly, as long as MaxPrecision is 0.
//
// The output only uses absolute commands. The closing line of a closed path
// is written as Z.
func Write(w io.Writer, p pathgeom.Path, opts Options) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	pt := func(pt pathgeom.Point) string {
		return format(pt.X) + "," + format(pt.Y)
	}

	n := p.TotalSegmentCount()
	if p.Closed() && n > 1 {
		// Z reproduces a closing line.
		if last := p.Segment(n - 1); last.Kind == pathgeom.LineKind && last.End() == p.Start() {
			n--
		}
	}
	writef("M%s", pt(p.Start()))
	for i := range n {
		seg := p.Segment(i)
		switch seg.Kind {
		case pathgeom.LineKind:
			writef(" L%s", pt(seg.P1))
		case pathgeom.QuadKind:
			writef(" Q%s %s", pt(seg.P1), pt(seg.P2))
		case pathgeom.CubicKind:
			writef(" C%s %s %s", pt(seg.P1), pt(seg.P2), pt(seg.P3))
		default:
			panic(fmt.Sprintf("unhandled segment kind %v", seg.Kind))
		}
	}
	if p.Closed() {
		writef(" Z")
	}
	return err
}

// WriteAll writes several paths separated by spaces.
func WriteAll(w io.Writer, paths []pathgeom.Path, opts Options) error {
	for i, p := range paths {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := Write(w, p, opts); err != nil {
			return err
		}
	}
	return nil
}
