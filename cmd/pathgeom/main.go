// Command pathgeom runs geometric queries on paths given in the SVG-like
// text format of package pathtext.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"honnef.co/go/pathgeom"
)

func main() {
	_ = RunApp(NewApp(), os.Args...)
}

// settings is the resolved configuration of a single run.
type settings struct {
	cfg    Config
	logger *slog.Logger
}

func appFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load settings from a .toml or .yaml file",
		},
		&cli.Float64Flag{
			Name:    "tolerance",
			Aliases: []string{"t"},
			Value:   pathgeom.DefaultTolerance,
			Usage:   "Flattening tolerance and accuracy of length queries",
		},
		&cli.StringFlag{
			Name:  "method",
			Value: pathgeom.Quadrature.String(),
			Usage: "Arc length method (quadrature or subdivision)",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Reject paths with gaps instead of bridging them with lines",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "Minimum level of log messages written to stderr",
		},
	}
}

// before loads the config file, applies flags that were set explicitly and
// installs the logger.
func (s *settings) before(c *cli.Context) error {
	cfg := DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = LoadConfig(path)
		if err != nil {
			return err
		}
	}
	if c.IsSet("tolerance") {
		cfg.Tolerance = c.Float64("tolerance")
	}
	if c.IsSet("method") {
		cfg.Method = c.String("method")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	s.cfg = cfg
	s.logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
	pathgeom.SetLogger(s.logger)
	return nil
}

func (s *settings) after(c *cli.Context) error {
	pathgeom.SetLogger(nil)
	return nil
}

func NewApp() *cli.App {
	s := &settings{cfg: DefaultConfig(), logger: slog.New(slog.DiscardHandler)}

	app := cli.NewApp()
	app.Name = "pathgeom"
	app.Usage = "Query lengths, intersections and nearest points of 2D paths"
	app.Description = `Paths are given in the SVG path syntax (M, L, H, V, Q, C, A and Z, plus
their relative forms). Every argument forms a single path; moves inside it
are bridged with lines unless --strict is set.`
	app.Flags = appFlags()
	app.Before = s.before
	app.After = s.after
	app.Commands = []*cli.Command{
		cmdLength(s),
		cmdAtLength(s),
		cmdDivide(s),
		cmdNearest(s),
		cmdFlatten(s),
		cmdIntersect(s),
		cmdBBox(s),
	}
	return app
}

// RunApp runs app and reports errors on its ErrWriter.
func RunApp(app *cli.App, args ...string) error {
	err := app.Run(args)
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "flag provided but not defined:") {
		// cli already printed the usage error
		cli.OsExiter(1)
		return err
	}
	_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	cli.OsExiter(1)
	return err
}
