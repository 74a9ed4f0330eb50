/*
affine decomposes, interpolates and plays back pairs of affine 4x4
matrices described in a TOML scene file.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spaghettifunk/affine/engine"
	"github.com/spaghettifunk/affine/engine/animation"
	"github.com/spaghettifunk/affine/engine/core"
	"github.com/spaghettifunk/affine/engine/math"
	"github.com/spaghettifunk/affine/engine/scene"
)

const usage = `usage: affine [-log-level level] <command> [flags]

commands:
  init         write the sample scene
  decompose    print the components of A and B
  interpolate  print the interpolated matrix C
  edges        print the unit cube edges transformed by C
  play         play the scene back frame by frame
`

var errUsage = errors.New("invalid usage")

func main() {
	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	global := flag.NewFlagSet("affine", flag.ContinueOnError)
	logLevel := global.String("log-level", "info", "Log level: debug, info, warn or error")
	if err := global.Parse(args); err != nil {
		return errUsage
	}

	level, err := core.LogParseLevel(*logLevel)
	if err != nil {
		return err
	}
	core.LogSetLevel(level)

	if global.NArg() == 0 {
		return errUsage
	}

	command, rest := global.Arg(0), global.Args()[1:]
	switch command {
	case "init":
		return runInit(rest, stdout)
	case "decompose":
		return runDecompose(rest, stdout)
	case "interpolate":
		return runInterpolate(rest, stdout)
	case "edges":
		return runEdges(rest, stdout)
	case "play":
		return runPlay(ctx, rest, stdout, level)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func runInit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	path := "scene.toml"
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists, use -force to overwrite", path)
	}
	if err := scene.Default().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return nil
}

func runDecompose(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("decompose", flag.ContinueOnError)
	scenePath := fs.String("scene", "", "Path to the scene file (default: sample scene)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	s, err := loadScene(*scenePath)
	if err != nil {
		return err
	}
	a, b, err := s.Matrices()
	if err != nil {
		return err
	}

	printEndpoint(stdout, "A", a)
	fmt.Fprintln(stdout)
	printEndpoint(stdout, "B", b)
	return nil
}

func runInterpolate(args []string, stdout io.Writer) error {
	s, t, mask, err := parseEvalFlags("interpolate", args)
	if err != nil {
		return err
	}
	a, b, err := s.Matrices()
	if err != nil {
		return err
	}

	c := math.Interpolate(a, b, t, mask)
	fmt.Fprintf(stdout, "C at t=%g\n%s\n%s\n", t, c, math.Decompose(c))
	return nil
}

func runEdges(args []string, stdout io.Writer) error {
	s, t, mask, err := parseEvalFlags("edges", args)
	if err != nil {
		return err
	}
	a, b, err := s.Matrices()
	if err != nil {
		return err
	}

	for i, e := range math.CubeEdges(math.Interpolate(a, b, t, mask)) {
		fmt.Fprintf(stdout, "%2d %s -> %s (%.4f)\n", i, e.From, e.To, e.Length())
	}
	return nil
}

func runPlay(ctx context.Context, args []string, stdout io.Writer, level core.LogLevel) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	scenePath := fs.String("scene", "", "Path to the scene file (default: sample scene)")
	watch := fs.Bool("watch", false, "Reload the scene file when it changes")
	frames := fs.Uint64("frames", 0, "Stop after N frames (default: run until interrupted)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *watch && *scenePath == "" {
		return fmt.Errorf("%w: -watch requires -scene", errUsage)
	}

	e, err := engine.New(&engine.ApplicationConfig{
		Name:      "affine",
		LogLevel:  level,
		ScenePath: *scenePath,
		Watch:     *watch,
		MaxFrames: *frames,
	}, engine.Hooks{
		FnOnFrame: func(f animation.Frame) error {
			_, err := fmt.Fprintf(stdout, "%4d t=%.4f %s\n", f.Index, f.T, f.Components)
			return err
		},
	})
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return err
	}

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

func parseEvalFlags(name string, args []string) (*scene.Scene, float32, math.InterpolationMask, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	scenePath := fs.String("scene", "", "Path to the scene file (default: sample scene)")
	tFlag := fs.Float64("t", 0, "Interpolation parameter (default: the scene t)")
	maskFlag := fs.String("mask", "", "Channels to interpolate, any of t, r and s (default: the scene mask)")
	if err := fs.Parse(args); err != nil {
		return nil, 0, math.InterpolationMask{}, errUsage
	}

	s, err := loadScene(*scenePath)
	if err != nil {
		return nil, 0, math.InterpolationMask{}, err
	}

	t, mask := s.T, s.Mask
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			t = float32(*tFlag)
		case "mask":
			mask, flagErr = parseMask(*maskFlag)
		}
	})
	if flagErr != nil {
		return nil, 0, math.InterpolationMask{}, flagErr
	}
	return s, t, mask, nil
}

// parseMask reads a channel list such as "tr" or "s". "-" selects none.
func parseMask(value string) (math.InterpolationMask, error) {
	var mask math.InterpolationMask
	if value == "-" {
		return mask, nil
	}
	for _, r := range strings.ToLower(value) {
		switch r {
		case 't':
			mask.Translate = true
		case 'r':
			mask.Rotate = true
		case 's':
			mask.Scale = true
		default:
			return mask, fmt.Errorf("%w: unknown mask channel %q", errUsage, r)
		}
	}
	return mask, nil
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default(), nil
	}
	return scene.Load(path)
}

func printEndpoint(w io.Writer, name string, mt math.Mat4) {
	report := math.Inspect(mt)
	fmt.Fprintf(w, "%s\n%s\n%s\ndeterminant %.6f\n", name, mt, math.Decompose(mt), report.Determinant)
	for _, issue := range report.Issues() {
		fmt.Fprintf(w, "warning: %s\n", issue)
	}
}
