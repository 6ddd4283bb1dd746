package main

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/shadowcast/config"
	"github.com/lixenwraith/shadowcast/fov"
	"github.com/lixenwraith/shadowcast/grid"
	"github.com/lixenwraith/shadowcast/render"
	"github.com/lixenwraith/shadowcast/status"
)

const (
	angleStep = 5
	minAngle  = 5
	maxAngle  = 360

	helpText = "arrows/keypad move  =/- radius  [/] angle  b beam  a opaque  c/o/p/s shape  m memory  M sound  r new map  y copy  q quit"
)

// cuePlayer is the part of audio.Cues the game uses
type cuePlayer interface {
	Bump()
	Toggle(on bool)
	SetMuted(muted bool)
	Muted() bool
}

// copyText writes to the system clipboard
var copyText = clipboard.WriteAll

// game holds the demo state. Every key handler finishes with recompute,
// so the map lighting always matches the current state
type game struct {
	cfg      *config.Config
	settings *fov.Settings
	reg      *status.Registry
	probe    *status.Probe
	cues     cuePlayer

	m      *grid.Map
	px, py int

	radius int
	beam   bool
	dir    fov.Direction
	angle  float32
	memory bool

	message string
	help    bool
	lastMs  *status.Gauge
}

func newGame(cfg *config.Config, cues cuePlayer) (*game, error) {
	g := &game{
		cfg:      cfg,
		settings: &fov.Settings{},
		reg:      status.NewRegistry(),
		cues:     cues,
		radius:   cfg.FOV.Radius,
		beam:     cfg.FOV.Beam,
		angle:    float32(cfg.FOV.Angle),
		memory:   cfg.Demo.Memory,
	}
	if err := cfg.Apply(g.settings); err != nil {
		return nil, err
	}
	dir, err := cfg.Direction()
	if err != nil {
		return nil, err
	}
	g.dir = dir
	g.lastMs = g.reg.Gauge("fov.last.ms")

	m, err := cfg.BuildMap()
	if err != nil {
		return nil, fmt.Errorf("build map: %w", err)
	}
	if err := g.setMap(m); err != nil {
		return nil, err
	}
	return g, nil
}

// setMap installs m and places the player on its start or the floor nearest its centre
func (g *game) setMap(m *grid.Map) error {
	start := grid.Point{X: m.Width / 2, Y: m.Height / 2}
	if m.HasStart {
		start = m.Start
	}
	p, ok := m.NearestFloor(start)
	if !ok {
		return fmt.Errorf("map %dx%d has no floor", m.Width, m.Height)
	}
	g.m = m
	g.probe = status.NewProbe(g.reg, m)
	g.px, g.py = p.X, p.Y
	g.recompute()
	return nil
}

// recompute lights the map from the player's tile
func (g *game) recompute() {
	if !g.memory {
		g.m.Forget()
	}
	start := time.Now()
	if g.beam {
		g.probe.Beam(g.settings, g.px, g.py, g.radius, g.dir, g.angle)
	} else {
		g.probe.Circle(g.settings, g.px, g.py, g.radius)
	}
	elapsed := time.Since(start)
	g.m.Light(g.px, g.py)

	g.lastMs.Set(float64(elapsed.Microseconds()) / 1000)
	tests, lit := g.probe.Last()
	log.Printf("fov at (%d,%d) r=%d beam=%v: %d tests, %d lit in %v", g.px, g.py, g.radius, g.beam, tests, lit, elapsed)
}

// move steps toward d. In beam mode a new direction only turns the beam
func (g *game) move(d fov.Direction) {
	if g.beam && d != g.dir {
		g.dir = d
		return
	}
	g.dir = d
	dx, dy := d.Offset()
	nx, ny := g.px+dx, g.py+dy
	if g.m.Opaque(nx, ny) {
		g.cues.Bump()
		g.message = "bump"
		return
	}
	g.px, g.py = nx, ny
}

func (g *game) toggle(name string, on bool) {
	g.cues.Toggle(on)
	state := "off"
	if on {
		state = "on"
	}
	g.message = name + " " + state
}

var runeDirections = map[rune]fov.Direction{
	'6': fov.East, '3': fov.SouthEast, '2': fov.South, '1': fov.SouthWest,
	'4': fov.West, '7': fov.NorthWest, '8': fov.North, '9': fov.NorthEast,
}

var keyDirections = map[tcell.Key]fov.Direction{
	tcell.KeyRight: fov.East, tcell.KeyPgDn: fov.SouthEast, tcell.KeyDown: fov.South, tcell.KeyEnd: fov.SouthWest,
	tcell.KeyLeft: fov.West, tcell.KeyHome: fov.NorthWest, tcell.KeyUp: fov.North, tcell.KeyPgUp: fov.NorthEast,
}

var runeShapes = map[rune]fov.Shape{
	'c': fov.ShapeCircle,
	'o': fov.ShapeOctagon,
	'p': fov.ShapeCirclePrecalculate,
	's': fov.ShapeSquare,
}

// handleKey applies one key press and reports whether the demo should quit
func (g *game) handleKey(ev *tcell.EventKey) bool {
	g.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		if d, ok := keyDirections[ev.Key()]; ok {
			g.move(d)
			g.recompute()
		}
		return false
	}

	r := ev.Rune()
	if d, ok := runeDirections[r]; ok {
		g.move(d)
		g.recompute()
		return false
	}
	if shape, ok := runeShapes[r]; ok {
		g.settings.Shape = shape
		g.message = "shape " + shape.String()
		g.recompute()
		return false
	}

	switch r {
	case 'q':
		return true
	case '=', '+':
		g.radius++
	case '-':
		g.radius = max(1, g.radius-1)
	case ']':
		g.angle = min(maxAngle, g.angle+angleStep)
	case '[':
		g.angle = max(minAngle, g.angle-angleStep)
	case 'b':
		g.beam = !g.beam
		g.toggle("beam", g.beam)
	case 'a':
		if g.settings.OpaqueApply == fov.OpaqueApplyLighting {
			g.settings.OpaqueApply = fov.OpaqueNoApply
		} else {
			g.settings.OpaqueApply = fov.OpaqueApplyLighting
		}
		g.toggle("opaque apply", g.settings.OpaqueApply == fov.OpaqueApplyLighting)
	case 'm':
		g.memory = !g.memory
		g.toggle("memory", g.memory)
	case 'M':
		muted := !g.cues.Muted()
		g.cues.SetMuted(muted)
		g.toggle("sound", !muted)
		return false
	case 'r':
		g.regenerate()
		return false
	case 'y':
		if err := copyText(g.m.Render(g.px, g.py)); err != nil {
			g.message = "copy failed: " + err.Error()
			log.Printf("clipboard: %v", err)
		} else {
			g.message = "copied"
		}
		return false
	case 'h', '?':
		g.help = !g.help
		return false
	default:
		return false
	}
	g.recompute()
	return false
}

// regenerate builds a fresh map; generated maps get a new random seed
func (g *game) regenerate() {
	cfg := *g.cfg
	cfg.Map.Seed = 0
	m, err := cfg.BuildMap()
	if err == nil {
		err = g.setMap(m)
	}
	if err != nil {
		g.message = err.Error()
		log.Printf("regenerate: %v", err)
		return
	}
	g.message = "new map"
}

func (g *game) status() render.Status {
	tests, lit := g.probe.Last()
	msg := g.message
	if g.help {
		msg = helpText
	}
	return render.Status{
		Shape:       g.settings.Shape,
		OpaqueApply: g.settings.OpaqueApply,
		Radius:      g.radius,
		Beam:        g.beam,
		Direction:   g.dir,
		Angle:       g.angle,
		Tests:       tests,
		Lit:         lit,
		Message:     msg,
	}
}

// draw renders the whole frame
func (g *game) draw(v *render.View) {
	v.Draw(g.m, g.px, g.py)
	v.DrawStatus(g.status().String())
}
