package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/cellbridge/bridge"
	"github.com/lixenwraith/cellbridge/config"
	"github.com/lixenwraith/cellbridge/engine"
	"github.com/lixenwraith/cellbridge/input"
	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/logging"
	"github.com/lixenwraith/cellbridge/render"
	"github.com/lixenwraith/cellbridge/status"
	"github.com/lixenwraith/cellbridge/terminal"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// loadConfig reads the config file if given and applies flag overrides
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.ColorMode = opts.colorMode
	}
	if flags.Changed("fps") {
		cfg.FPS = opts.fps
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("aspect") {
		cfg.Theme.AspectRatio = opts.aspect
	}
	return cfg, cfg.Validate()
}

// resolveAspect prefers the configured ratio, then the terminal's pixel geometry
func resolveAspect(configured float32, logger *log.Logger) float32 {
	if configured > 0 {
		return configured
	}
	if ar, ok := terminal.DetectAspectRatio(os.Stdout.Fd()); ok {
		logger.Info("detected cell aspect ratio", "ratio", ar)
		return ar
	}
	return terminal.DefaultAspectRatio
}

func run(parent context.Context, cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logger, logFile, err := logging.Setup(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}
	theme.AspectRatio = resolveAspect(theme.AspectRatio, logger)

	keymap, err := cfg.ResolveKeymap()
	if err != nil {
		return err
	}
	mode, _ := terminal.ParseColorMode(cfg.ColorMode)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.Tcell().EnableMouse()

	world := engine.NewWorld()
	bridgeEngine := bridge.Use(world, bridge.Config{
		ArenaSize:      cfg.ArenaSize,
		FrameArenaSize: cfg.FrameArenaSize,
		Logger:         logger,
	})

	cols, rows := screen.Size()
	buffer := terminal.NewBuffer(cols, rows)
	backend := render.NewBackend(buffer, theme, terminal.NewPalette(mode), logger)
	if err := backend.Attach(bridgeEngine); err != nil {
		return err
	}
	world.AddSystem(engine.PhasePostFrame, render.NewPresenter(backend, buffer, screen))

	collector := input.NewCollector(0)
	input.NewScrollSystem(collector, input.NewScrollResolver(keymap), bridgeEngine.Layout()).Install(world)

	scene := buildScene(world, opts.rows)
	scene.resize(world, cols, rows, theme.AspectRatio)

	var themes <-chan render.Theme
	if opts.watch && opts.configPath != "" {
		if themes, err = config.WatchTheme(ctx, opts.configPath, logger); err != nil {
			logger.Warn("theme watch disabled", "err", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := screen.Events(ctx)

	clock := engine.NewPausableClock(nil)
	loop := engine.NewLoop(world, clock, engine.IntervalForFPS(cfg.FPS))
	loop.BeforeFrame(func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					cancel()
					return
				}
				handleEvent(ev, eventTargets{
					cancel:    cancel,
					clock:     clock,
					collector: collector,
					layout:    bridgeEngine.Layout(),
					scene:     scene,
					world:     world,
					screen:    screen,
					buffer:    buffer,
					aspect:    backend.Theme().AspectRatio,
				})
			case t, ok := <-themes:
				if !ok {
					themes = nil
					continue
				}
				if t.AspectRatio == 0 {
					t.AspectRatio = backend.Theme().AspectRatio
				}
				backend.SetTheme(t)
				scene.resize(world, scene.cols, scene.rows, t.AspectRatio)
			default:
				return
			}
		}
	})

	logger.Info("demo started", "cols", cols, "rows", rows, "aspect", theme.AspectRatio, "color", mode)
	err = loop.Run(ctx)

	reg := engine.MustGetResource[*status.Registry](world.Resources)
	reg.Dump(func(key, value string) {
		logger.Debug("stat", "key", key, "value", value)
	})
	return err
}

type eventTargets struct {
	cancel    context.CancelFunc
	clock     *engine.PausableClock
	collector *input.Collector
	layout    *layout.Context
	scene     *scene
	world     *engine.World
	screen    *terminal.Screen
	buffer    *terminal.Buffer
	aspect    float32
}

func handleEvent(ev tcell.Event, t eventTargets) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			t.cancel()
			return
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
			t.clock.Toggle()
			return
		}
		if ks, ok := input.FromTcell(ev); ok {
			t.collector.Push(ks)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		t.layout.SetPointerState(layout.Vector2{X: float32(x) / t.aspect, Y: float32(y)}, ev.Buttons()&tcell.Button1 != 0)
		switch {
		case ev.Buttons()&tcell.WheelDown != 0:
			t.collector.Push(input.KeyState{AxisY: 1})
		case ev.Buttons()&tcell.WheelUp != 0:
			t.collector.Push(input.KeyState{AxisY: -1})
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.buffer.Resize(cols, rows)
		t.scene.resize(t.world, cols, rows, t.aspect)
		t.screen.Sync()
	}
}
