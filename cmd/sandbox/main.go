package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/hubastard/tinyui/engine/config"
	"github.com/hubastard/tinyui/engine/core"
	glbackend "github.com/hubastard/tinyui/engine/gfx/gl"
	"github.com/hubastard/tinyui/engine/gfx/soft"
	"github.com/hubastard/tinyui/engine/platform"
	"github.com/hubastard/tinyui/engine/profiler"
	"github.com/hubastard/tinyui/engine/text"
	"github.com/hubastard/tinyui/engine/ui"
)

// GLFW calls, Destroy included, must stay on the main thread.
func init() { runtime.LockOSThread() }

type App struct {
	cfg    *config.Config
	logger *slog.Logger
	font   *text.Font
	frames *profiler.Recorder
	debug  *LayerDebug
}

func (a *App) OnStart(e *core.Engine) error {
	w, h := e.Window.FramebufferSize()
	a.debug = &LayerDebug{
		cfg:    a.cfg,
		ctx:    ui.New(a.font, a.cfg.Options(a.logger)...),
		input:  core.NewInput(),
		soft:   soft.New(a.font, w, h),
		frames: a.frames,
	}
	e.Layers.Push(a.debug)
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}

func (a *App) OnShutdown(e *core.Engine) {
	a.logger.Info("sandbox exit", "uptime", e.Uptime(), "avg_frame_ms", profiler.Milliseconds(a.frames.Average()))
}

func loadFont(fc config.FontConfig) (*text.Font, error) {
	switch fc.Path {
	case "":
		return text.Default(), nil
	case "go":
		return text.ParseTTF(goregular.TTF, fc.Size)
	default:
		return text.LoadTTF(fc.Path, fc.Size)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := loadFont(cfg.Font)
	if err != nil {
		return fmt.Errorf("font: %w", err)
	}
	defer f.Close()

	app := &App{cfg: cfg, logger: logger, font: f, frames: profiler.NewRecorder(120)}
	engineCfg := core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		ClearColor: cfg.ClearColor(),
		Logger:     logger,
	}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, nil)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	newRenderer := func(w core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(w, cfg)
	}
	defer func() {
		if win != nil {
			win.Destroy()
		}
	}()

	return core.Run(app, engineCfg, newWindow, newRenderer)
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}
