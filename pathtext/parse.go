package pathtext

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
	tstrconv "github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/pathgeom"
)

// SyntaxError describes malformed input to [Parse].
type SyntaxError struct {
	// Offset is the byte offset in the input at which the error was detected.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Options specifies optional settings for [Parse], [Write] and [Format].
type Options struct {
	// Builder configures the builders used by Parse.
	Builder pathgeom.BuilderOptions
	// Join makes Parse return a single path. Moves within the input become
	// discontinuities, which are bridged or rejected according to
	// Builder.Strict, and Z only closes the path if it is the last command.
	Join bool

	// MaxPrecision is the maximum number of decimal places Write uses for
	// coordinates. A value of 0 chooses the shortest representation that
	// round trips.
	MaxPrecision int
}

var argCounts = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'Q': 4,
	'C': 6,
	'A': 7,
	'Z': 0,
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t'
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

type parser struct {
	in   []byte
	pos  int
	opts Options

	paths []pathgeom.Path
	b     *pathgeom.Builder
	// cur is the current point, start the start of the current subpath.
	cur, start pathgeom.Point
	// closing is set by Z in join mode until the next command arrives.
	closing bool
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.in) && isSeparator(p.in[p.pos]) {
		p.pos++
	}
}

// number consumes a number. Its extent follows the compact SVG syntax, in
// which "-.5.5" are two numbers; the value is converted with correct
// rounding so that formatted paths parse back exactly.
func (p *parser) number() (float64, bool) {
	_, n := tstrconv.ParseFloat(p.in[p.pos:])
	if n == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(p.in[p.pos:p.pos+n]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	p.pos += n
	return v, true
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) flush() error {
	if p.b == nil {
		return nil
	}
	path, err := p.b.Build()
	p.b = nil
	if errors.Is(err, pathgeom.ErrEmptyPath) {
		// A lone move.
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "path %d", len(p.paths))
	}
	p.paths = append(p.paths, path)
	return nil
}

func (p *parser) builder() *pathgeom.Builder {
	if p.b == nil {
		p.b = pathgeom.NewBuilder(p.opts.Builder)
		p.b.MoveTo(p.cur)
	}
	return p.b
}

// Parse parses paths in the text format. Without Options.Join, every M and
// every command following a Z starts a new path. Empty input results in no
// paths.
func Parse(s string, opts Options) ([]pathgeom.Path, error) {
	p := &parser{in: []byte(s), opts: opts}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.paths, nil
}

func (p *parser) parse() error {
	var args [7]float64
	var prev byte
	for {
		p.skipSeparators()
		if p.pos >= len(p.in) {
			break
		}

		cmd := prev
		if !isNumberStart(p.in[p.pos]) {
			cmd = p.in[p.pos]
			if _, ok := argCounts[upper(cmd)]; !ok {
				return p.errorf("unknown command %q", cmd)
			}
			p.pos++
			p.skipSeparators()
		} else if prev == 0 {
			return p.errorf("path has to start with a command")
		} else if upper(prev) == 'Z' {
			return p.errorf("numbers can't follow %q", prev)
		}

		n := argCounts[upper(cmd)]
		for j := range n {
			if upper(cmd) == 'A' && (j == 3 || j == 4) {
				if p.pos < len(p.in) && (p.in[p.pos] == '0' || p.in[p.pos] == '1') {
					args[j] = float64(p.in[p.pos] - '0')
					p.pos++
				} else {
					return p.errorf("arc flags have to be 0 or 1 in command %q", cmd)
				}
			} else {
				num, ok := p.number()
				if !ok {
					return p.errorf("command %q takes %d numbers, got %d", cmd, n, j)
				}
				args[j] = num
			}
			p.skipSeparators()
		}

		if err := p.apply(cmd, args); err != nil {
			return err
		}
		prev = cmd
		switch cmd {
		case 'M':
			prev = 'L'
		case 'm':
			prev = 'l'
		}
	}
	if p.closing {
		p.b.Close()
	}
	return p.flush()
}

func (p *parser) apply(cmd byte, args [7]float64) error {
	pt := func(i int) pathgeom.Point {
		q := pathgeom.Pt(args[i], args[i+1])
		if cmd >= 'a' && cmd <= 'z' {
			q = q.Translate(pathgeom.Vec2(p.cur))
		}
		return q
	}

	if p.closing && upper(cmd) != 'Z' {
		p.closing = false
		if p.cur != p.start {
			p.b.LineTo(p.start)
		}
		p.cur = p.start
	}

	switch upper(cmd) {
	case 'M':
		to := pt(0)
		if p.opts.Join {
			p.builder().MoveTo(to)
		} else {
			if err := p.flush(); err != nil {
				return err
			}
			p.cur = to
			p.builder()
		}
		p.cur, p.start = to, to
	case 'L':
		to := pt(0)
		p.builder().LineTo(to)
		p.cur = to
	case 'H':
		to := pathgeom.Pt(args[0], p.cur.Y)
		if cmd == 'h' {
			to.X += p.cur.X
		}
		p.builder().LineTo(to)
		p.cur = to
	case 'V':
		to := pathgeom.Pt(p.cur.X, args[0])
		if cmd == 'v' {
			to.Y += p.cur.Y
		}
		p.builder().LineTo(to)
		p.cur = to
	case 'Q':
		c, to := pt(0), pt(2)
		p.builder().QuadTo(c, to)
		p.cur = to
	case 'C':
		c1, c2, to := pt(0), pt(2), pt(4)
		p.builder().CubicTo(c1, c2, to)
		p.cur = to
	case 'A':
		radii := pathgeom.Vec(args[0], args[1])
		rot := args[2] * math.Pi / 180
		to := pt(5)
		p.builder().ArcTo(radii, rot, args[3] == 1, args[4] == 1, to)
		p.cur = to
	case 'Z':
		if p.b == nil {
			if len(p.paths) == 0 {
				return p.errorf("nothing to close")
			}
			// Repeated close.
			return nil
		}
		if p.opts.Join {
			p.closing = true
			return nil
		}
		p.b.Close()
		if err := p.flush(); err != nil {
			return err
		}
		p.cur = p.start
	}
	return nil
}
