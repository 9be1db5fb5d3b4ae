package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"honnef.co/go/pathgeom"
	"honnef.co/go/pathgeom/pathtext"
)

// parsePath parses a command line argument into a single path.
func (s *settings) parsePath(arg string) (pathgeom.Path, error) {
	paths, err := pathtext.Parse(arg, pathtext.Options{
		Builder: pathgeom.BuilderOptions{Strict: s.cfg.Strict},
		Join:    true,
	})
	if err != nil {
		return pathgeom.Path{}, errors.Wrapf(err, "parsing path %q", arg)
	}
	if len(paths) == 0 {
		return pathgeom.Path{}, errors.Errorf("path %q has no segments", arg)
	}
	return paths[0], nil
}

func parseFloat(arg, what string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", what)
	}
	return v, nil
}

// warnPrecision logs precision errors, which come with usable results, and
// returns any other error.
func (s *settings) warnPrecision(err error, msg string) error {
	var perr *pathgeom.PrecisionNotAchievedError
	if errors.As(err, &perr) {
		s.logger.Warn(msg, "requested", perr.Requested, "achieved", perr.Achieved)
		return nil
	}
	return err
}

func checkArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return errors.Errorf("%s takes %d arguments, got %d", c.Command.Name, n, c.NArg())
	}
	return nil
}

func cmdLength(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "length",
		Usage:     "Print the arc length of a path",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "error",
				Usage: "Also print the estimated absolute error",
			},
		},
		Action: func(c *cli.Context) error {
			if err := checkArgs(c, 1); err != nil {
				return err
			}
			p, err := s.parsePath(c.Args().First())
			if err != nil {
				return err
			}
			opts, err := s.cfg.LengthOptions()
			if err != nil {
				return err
			}
			length, abserr, err := pathgeom.LengthOpt(p, opts)
			if err := s.warnPrecision(err, "length is less accurate than requested"); err != nil {
				return err
			}
			if c.Bool("error") {
				_, err = fmt.Fprintf(c.App.Writer, "%g %g\n", length, abserr)
			} else {
				_, err = fmt.Fprintf(c.App.Writer, "%g\n", length)
			}
			return err
		},
	}
}

func cmdAtLength(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "at-length",
		Usage:     "Print the locations and points at arc lengths along a path",
		ArgsUsage: "<path> <length>...",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return errors.Errorf("at-length takes a path and at least one length")
			}
			p, err := s.parsePath(c.Args().First())
			if err != nil {
				return err
			}
			opts, err := s.cfg.LengthOptions()
			if err != nil {
				return err
			}
			for _, arg := range c.Args().Tail() {
				l, err := parseFloat(arg, "length")
				if err != nil {
					return err
				}
				loc, err := pathgeom.LocationAtLengthOpt(p, l, opts)
				if err := s.warnPrecision(err, "location is less accurate than requested"); err != nil {
					return err
				}
				pt, err := p.At(loc)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(c.App.Writer, "%v %v\n", loc, pt); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func cmdDivide(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "divide",
		Usage:     "Split a path into pieces of equal length",
		ArgsUsage: "<path> <n>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "precision",
				Usage: "Maximum number of decimal places (0 for exact output)",
			},
		},
		Action: func(c *cli.Context) error {
			if err := checkArgs(c, 2); err != nil {
				return err
			}
			p, err := s.parsePath(c.Args().Get(0))
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return errors.Wrap(err, "invalid piece count")
			}
			lengthOpts, err := s.cfg.LengthOptions()
			if err != nil {
				return err
			}
			pieces, err := pathgeom.DivideOpt(p, n, lengthOpts)
			if err := s.warnPrecision(err, "pieces are less accurate than requested"); err != nil {
				return err
			}
			opts := pathtext.Options{MaxPrecision: c.Int("precision")}
			for _, piece := range pieces {
				if err := pathtext.Write(c.App.Writer, piece, opts); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(c.App.Writer); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func cmdNearest(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "nearest",
		Usage:     "Print the location on a path closest to a point",
		ArgsUsage: "<path> <x> <y>",
		Action: func(c *cli.Context) error {
			if err := checkArgs(c, 3); err != nil {
				return err
			}
			p, err := s.parsePath(c.Args().Get(0))
			if err != nil {
				return err
			}
			x, err := parseFloat(c.Args().Get(1), "x")
			if err != nil {
				return err
			}
			y, err := parseFloat(c.Args().Get(2), "y")
			if err != nil {
				return err
			}
			loc, dist := pathgeom.NearestLocation(p, pathgeom.Pt(x, y))
			pt, err := p.At(loc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "%v %g %v\n", loc, dist, pt)
			return err
		},
	}
}

func cmdFlatten(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "flatten",
		Usage:     "Approximate a path with lines",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "precision",
				Usage: "Maximum number of decimal places (0 for exact output)",
			},
		},
		Action: func(c *cli.Context) error {
			if err := checkArgs(c, 1); err != nil {
				return err
			}
			p, err := s.parsePath(c.Args().First())
			if err != nil {
				return err
			}
			var b *pathgeom.Builder
			for pt := range pathgeom.Polyline(p, s.cfg.Tolerance) {
				if b == nil {
					b = pathgeom.NewBuilder(pathgeom.BuilderOptions{})
					b.MoveTo(pt)
				} else {
					b.LineTo(pt)
				}
			}
			poly, err := b.Build()
			if err != nil {
				return err
			}
			if err := pathtext.Write(c.App.Writer, poly, pathtext.Options{MaxPrecision: c.Int("precision")}); err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer)
			return err
		},
	}
}

func cmdIntersect(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "intersect",
		Usage:     "Print the intersections of two paths",
		ArgsUsage: "<path> <path>",
		Action: func(c *cli.Context) error {
			if err := checkArgs(c, 2); err != nil {
				return err
			}
			p, err := s.parsePath(c.Args().Get(0))
			if err != nil {
				return err
			}
			q, err := s.parsePath(c.Args().Get(1))
			if err != nil {
				return err
			}
			for _, x := range pathgeom.PathIntersections(p, q) {
				pt, err := p.At(x.A)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(c.App.Writer, "%v %v %v\n", x.A, x.B, pt); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func cmdBBox(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "bbox",
		Usage:     "Print the tight bounding box of a path as x0 y0 x1 y1",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if err := checkArgs(c, 1); err != nil {
				return err
			}
			p, err := s.parsePath(c.Args().First())
			if err != nil {
				return err
			}
			r := p.BoundingBox()
			_, err = fmt.Fprintf(c.App.Writer, "%g %g %g %g\n", r.X0, r.Y0, r.X1, r.Y1)
			return err
		},
	}
}
