// Command fov-ascii reads a raster map and prints what is visible from its '@' tile
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/shadowcast/fov"
	"github.com/lixenwraith/shadowcast/grid"
	"github.com/lixenwraith/shadowcast/status"
)

var (
	xFlag      = flag.Int("x", -1, "Source column (default: the '@' tile)")
	yFlag      = flag.Int("y", -1, "Source row (default: the '@' tile)")
	radiusFlag = flag.Int("radius", 10, "Light radius")
	shapeFlag  = flag.String("shape", "circle-precalculate", "Shape: circle-precalculate, square, circle, octagon")
	applyFlag  = flag.String("opaque", "apply", "Light opaque tiles: apply, noapply")
	dirFlag    = flag.String("dir", "", "Cast a beam in this direction instead of a circle")
	angleFlag  = flag.Float64("angle", 90, "Beam angle in degrees")
	countsFlag = flag.Bool("counts", false, "Print per-tile lighting counts instead of the map")
	statsFlag  = flag.Bool("stats", false, "Print request counters after the map")
)

// options is one parsed invocation
type options struct {
	x, y   int
	radius int
	beam   bool
	dir    fov.Direction
	angle  float32
	counts bool
	stats  bool
	s      *fov.Settings
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: fov-ascii [flags] [raster-file]\nReads stdin when no file is given.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	opts, err := parseOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fov-ascii: %v\n", err)
		os.Exit(2)
	}

	var m *grid.Map
	if path := flag.Arg(0); path != "" && path != "-" {
		m, err = grid.LoadFile(path)
	} else {
		m, err = grid.Load(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fov-ascii: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, m, opts); err != nil {
		fmt.Fprintf(os.Stderr, "fov-ascii: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions() (options, error) {
	opts := options{
		x:      *xFlag,
		y:      *yFlag,
		radius: *radiusFlag,
		angle:  float32(*angleFlag),
		counts: *countsFlag,
		stats:  *statsFlag,
	}
	shape, err := fov.ParseShape(*shapeFlag)
	if err != nil {
		return opts, err
	}
	apply, err := fov.ParseOpaqueApply(*applyFlag)
	if err != nil {
		return opts, err
	}
	opts.s = &fov.Settings{Shape: shape, OpaqueApply: apply}

	if *dirFlag != "" {
		if opts.dir, err = fov.ParseDirection(*dirFlag); err != nil {
			return opts, err
		}
		if !(opts.angle > 0) {
			return opts, fmt.Errorf("beam angle %v must be positive", *angleFlag)
		}
		opts.beam = true
	}
	return opts, nil
}

// run lights m from the chosen source and writes the result to w
func run(w io.Writer, m *grid.Map, opts options) error {
	x, y := opts.x, opts.y
	if (x < 0) != (y < 0) {
		return fmt.Errorf("pass both -x and -y, or neither")
	}
	if x < 0 {
		if !m.HasStart {
			return fmt.Errorf("no '@' in the map; pass -x and -y")
		}
		x, y = m.Start.X, m.Start.Y
	}
	if !m.InBounds(x, y) {
		return fmt.Errorf("source (%d,%d) is outside the %dx%d map", x, y, m.Width, m.Height)
	}

	reg := status.NewRegistry()
	probe := status.NewProbe(reg, m)
	if opts.beam {
		probe.Beam(opts.s, x, y, opts.radius, opts.dir, opts.angle)
	} else {
		probe.Circle(opts.s, x, y, opts.radius)
	}

	if opts.counts {
		fmt.Fprintln(w, strings.Join(m.CountRows(), "\n"))
	} else {
		m.Light(x, y)
		fmt.Fprint(w, m.Render(x, y))
	}
	if opts.stats {
		for _, line := range reg.Lines() {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}
