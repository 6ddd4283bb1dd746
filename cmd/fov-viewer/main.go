// Command fov-viewer shows the field of view on a generated map in a window.
// Click a floor tile to move the light there
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/shadowcast/config"
	"github.com/lixenwraith/shadowcast/fov"
	"github.com/lixenwraith/shadowcast/grid"
	"github.com/lixenwraith/shadowcast/render"
	"github.com/lixenwraith/shadowcast/status"
)

const (
	tileSize  = 8
	hudHeight = 20
	maxCols   = 160
	maxRows   = 90
)

var (
	configPath = flag.String("config", "", "TOML config file")
	seedFlag   = flag.Int64("seed", 0, "Map seed (0 = random)")
)

var hudColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// Viewer is the ebiten.Game: a map, a light source, and the request state
type Viewer struct {
	cfg      *config.Config
	settings *fov.Settings
	reg      *status.Registry
	probe    *status.Probe

	m      *grid.Map
	px, py int

	radius int
	beam   bool
	dir    fov.Direction
	angle  float32

	cols, rows int
	message    string
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fov-viewer: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seedFlag != 0 {
		cfg.Map.Seed = *seedFlag
	}

	v, err := newViewer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fov-viewer: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("fov-viewer")
	ebiten.SetWindowSize(v.cols*tileSize, v.rows*tileSize+hudHeight)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func newViewer(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:      cfg,
		settings: &fov.Settings{},
		reg:      status.NewRegistry(),
		radius:   cfg.FOV.Radius,
		beam:     cfg.FOV.Beam,
		angle:    float32(cfg.FOV.Angle),
	}
	if err := cfg.Apply(v.settings); err != nil {
		return nil, err
	}
	dir, err := cfg.Direction()
	if err != nil {
		return nil, err
	}
	v.dir = dir

	m, err := cfg.BuildMap()
	if err != nil {
		return nil, err
	}
	if err := v.setMap(m); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Viewer) setMap(m *grid.Map) error {
	start := grid.Point{X: m.Width / 2, Y: m.Height / 2}
	if m.HasStart {
		start = m.Start
	}
	p, ok := m.NearestFloor(start)
	if !ok {
		return fmt.Errorf("map %dx%d has no floor", m.Width, m.Height)
	}
	v.m = m
	v.probe = status.NewProbe(v.reg, m)
	v.px, v.py = p.X, p.Y
	v.cols, v.rows = min(m.Width, maxCols), min(m.Height, maxRows)
	v.recompute()
	return nil
}

func (v *Viewer) recompute() {
	if !v.cfg.Demo.Memory {
		v.m.Forget()
	}
	if v.beam {
		v.probe.Beam(v.settings, v.px, v.py, v.radius, v.dir, v.angle)
	} else {
		v.probe.Circle(v.settings, v.px, v.py, v.radius)
	}
	v.m.Light(v.px, v.py)
}

var keyDirections = map[ebiten.Key]fov.Direction{
	ebiten.KeyArrowRight: fov.East, ebiten.KeyNumpad3: fov.SouthEast,
	ebiten.KeyArrowDown: fov.South, ebiten.KeyNumpad1: fov.SouthWest,
	ebiten.KeyArrowLeft: fov.West, ebiten.KeyNumpad7: fov.NorthWest,
	ebiten.KeyArrowUp: fov.North, ebiten.KeyNumpad9: fov.NorthEast,
}

var keyShapes = map[ebiten.Key]fov.Shape{
	ebiten.KeyC: fov.ShapeCircle,
	ebiten.KeyO: fov.ShapeOctagon,
	ebiten.KeyP: fov.ShapeCirclePrecalculate,
	ebiten.KeyS: fov.ShapeSquare,
}

// Update handles one tick of input
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	changed := false
	for k, d := range keyDirections {
		if inpututil.IsKeyJustPressed(k) {
			v.step(d)
			changed = true
		}
	}
	for k, s := range keyShapes {
		if inpututil.IsKeyJustPressed(k) {
			v.settings.Shape = s
			changed = true
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		v.beam = !v.beam
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		if v.settings.OpaqueApply == fov.OpaqueApplyLighting {
			v.settings.OpaqueApply = fov.OpaqueNoApply
		} else {
			v.settings.OpaqueApply = fov.OpaqueApplyLighting
		}
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		v.radius++
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		v.radius = max(1, v.radius-1)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		v.angle = min(360, v.angle+5)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		v.angle = max(5, v.angle-5)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		cfg := *v.cfg
		cfg.Map.Seed = 0
		if m, err := cfg.BuildMap(); err == nil {
			if err := v.setMap(m); err != nil {
				v.message = err.Error()
			}
		}
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.teleport(ebiten.CursorPosition())
		changed = true
	}

	if changed {
		v.recompute()
	}
	return nil
}

// step moves toward d; in beam mode a new direction only turns the beam
func (v *Viewer) step(d fov.Direction) {
	v.message = ""
	if v.beam && d != v.dir {
		v.dir = d
		return
	}
	v.dir = d
	dx, dy := d.Offset()
	if v.m.Opaque(v.px+dx, v.py+dy) {
		v.message = "bump"
		return
	}
	v.px, v.py = v.px+dx, v.py+dy
}

// teleport moves the light to the clicked floor tile
func (v *Viewer) teleport(cx, cy int) {
	ox, oy := render.Viewport(v.m.Width, v.m.Height, v.cols, v.rows, v.px, v.py)
	x, y := ox+cx/tileSize, oy+cy/tileSize
	if cy >= v.rows*tileSize || v.m.Opaque(x, y) {
		return
	}
	v.px, v.py = x, y
	v.message = ""
}

// Draw paints lit and remembered tiles as squares, then the HUD line
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundRGBA())

	ox, oy := render.Viewport(v.m.Width, v.m.Height, v.cols, v.rows, v.px, v.py)
	for sy := 0; sy < v.rows; sy++ {
		for sx := 0; sx < v.cols; sx++ {
			c, ok := render.CellRGBA(v.m, ox+sx, oy+sy, v.px, v.py)
			if !ok {
				continue
			}
			size := float32(tileSize - 1)
			if !v.m.Opaque(ox+sx, oy+sy) && (ox+sx != v.px || oy+sy != v.py) {
				size = tileSize / 2
			}
			off := (tileSize - size) / 2
			vector.FillRect(screen, float32(sx*tileSize)+off, float32(sy*tileSize)+off, size, size, c, false)
		}
	}

	tests, lit := v.probe.Last()
	hud := render.Status{
		Shape:       v.settings.Shape,
		OpaqueApply: v.settings.OpaqueApply,
		Radius:      v.radius,
		Beam:        v.beam,
		Direction:   v.dir,
		Angle:       v.angle,
		Tests:       tests,
		Lit:         lit,
		Message:     v.message,
	}
	text.Draw(screen, hud.String(), basicfont.Face7x13, 4, v.rows*tileSize+14, hudColor)
}

// Layout keeps one pixel per logical pixel
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cols * tileSize, v.rows*tileSize + hudHeight
}
