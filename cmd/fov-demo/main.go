// Command fov-demo walks a player through a generated map in the terminal,
// lighting what the player can see with recursive shadow casting
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/shadowcast/audio"
	"github.com/lixenwraith/shadowcast/config"
	"github.com/lixenwraith/shadowcast/render"
)

var (
	// configPath names an optional TOML file; flags set explicitly override it
	configPath = flag.String("config", "", "TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/fov-demo.log")
	dumpConfig = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")

	shapeFlag  = flag.String("shape", "", "Shape: circle-precalculate, square, circle, octagon")
	radiusFlag = flag.Int("radius", 0, "Light radius")
	beamFlag   = flag.Bool("beam", false, "Start in beam mode")
	dirFlag    = flag.String("dir", "", "Beam direction: east, southeast, ..., northeast")
	angleFlag  = flag.Float64("angle", 0, "Beam angle in degrees")
	mapFlag    = flag.String("map", "", "Map generator: cave, maze, or a raster file path")
	seedFlag   = flag.Int64("seed", 0, "Map seed (0 = random)")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: finalize the screen so the terminal is usable again
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFOV-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fov-demo: %v\n", err)
		os.Exit(1)
	}
	if *dumpConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "fov-demo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cues := audio.NewCues(cfg.Demo.Volume)
	if cfg.Demo.Sound {
		// Non-fatal, the demo runs without sound
		if err := cues.Init(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer cues.Close()

	g, err := newGame(cfg, cues)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fov-demo: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	run(screen, g)
}

// run is the event loop: draw, wait for a key, repeat
func run(screen tcell.Screen, g *game) {
	view := render.NewView(screen)
	for {
		screen.Clear()
		g.draw(view)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if g.handleKey(ev) {
				return
			}
		}
	}
}

// loadConfig reads the config file, if any, then applies flags the user set
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			cfg.FOV.Shape = *shapeFlag
		case "radius":
			cfg.FOV.Radius = *radiusFlag
		case "beam":
			cfg.FOV.Beam = *beamFlag
		case "dir":
			cfg.FOV.Direction = *dirFlag
		case "angle":
			cfg.FOV.Angle = *angleFlag
		case "map":
			switch *mapFlag {
			case config.GeneratorCave, config.GeneratorMaze:
				cfg.Map.Generator = *mapFlag
			default:
				cfg.Map.Generator = config.GeneratorFile
				cfg.Map.File = *mapFlag
			}
		case "seed":
			cfg.Map.Seed = *seedFlag
		case "mute":
			cfg.Demo.Sound = !*muteFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
