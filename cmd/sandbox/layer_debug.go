package main

import (
	"time"

	"github.com/hubastard/tinyui/engine/assets"
	"github.com/hubastard/tinyui/engine/colors"
	"github.com/hubastard/tinyui/engine/config"
	"github.com/hubastard/tinyui/engine/core"
	"github.com/hubastard/tinyui/engine/gfx/soft"
	"github.com/hubastard/tinyui/engine/profiler"
	"github.com/hubastard/tinyui/engine/scratch"
	"github.com/hubastard/tinyui/engine/ui"
)

var movies = []string{
	"Kill Bill",
	"2001: A Space Oddysey",
	"Sunset Limited",
	"Micmacs",
	"Requiem for a Dream",
	"Do the right thing",
	"The Drop",
	"Glengarry Glen Ross",
	"Star Wars: Return of the Jedi",
	"Scream",
	"Napoleon Dynamite",
	"Black Dynamite",
}

// ------- The demo windows, rasterized on the CPU -------
type LayerDebug struct {
	cfg    *config.Config
	ctx    *ui.Context
	input  *core.Input
	soft   *soft.Renderer
	frames *profiler.Recorder
	buf    *scratch.Arena

	lastFrame  time.Time
	lastHot    uint32
	lastActive uint32
	lastPopup  uint32

	clicks   int
	value0   float32
	value1   float32
	movie    int
	checked  bool
	snapshot bool
	stats    bool
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.buf = scratch.New(1 << 10)
	l.checked = true
	l.stats = true
	winW, winH := e.Window.Size()
	fbW, fbH := e.Window.FramebufferSize()
	l.input.SetViewport(winW, winH, fbW, fbH)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	if !l.lastFrame.IsZero() {
		l.frames.Add(now.Sub(l.lastFrame))
	}
	l.lastFrame = now

	winW, winH := e.Window.Size()
	fbW, fbH := e.Window.FramebufferSize()
	l.input.SetViewport(winW, winH, fbW, fbH)
	l.input.Flush(l.ctx)

	// The previous frame's strings are no longer referenced once Begin
	// drops the old command stream.
	l.buf.Reset()
	l.ctx.Begin()
	l.build(e, fbH)
	if err := l.ctx.End(); err != nil {
		e.Logger.Warn("ui frame dropped", "err", err)
		return
	}

	l.soft.Clear(l.cfg.ClearColor())
	if err := l.soft.Render(l.ctx.Commands()); err != nil {
		e.Logger.Warn("rasterize", "err", err)
	}
	e.Renderer.Present(l.soft.Frame())

	if l.snapshot {
		l.snapshot = false
		name := "tinyui-" + now.Format("20060102-150405") + ".png"
		if err := assets.SavePNG(name, l.soft.Frame()); err != nil {
			e.Logger.Error("screenshot", "err", err)
		} else {
			e.Logger.Info("screenshot saved", "path", name)
		}
	}
}

func (l *LayerDebug) text(format string, args ...any) {
	l.colored(colors.White, format, args...)
}

func (l *LayerDebug) colored(c colors.Color, format string, args ...any) {
	s, err := l.buf.Sprintf(format, args...)
	if err != nil {
		s = "..."
	}
	l.ctx.Text(s, c)
}

func (l *LayerDebug) build(e *core.Engine, top int) {
	c := l.ctx
	c.OpenWindow("Debug Window", 10, top)
	if w := c.FindWindow(ui.Hash("Debug Window", 0)); w != nil {
		l.text("z-index %d", w.ZIndex())
		x, y := c.Pointer().X, c.Pointer().Y
		l.text("Mouse Pos: (%d, %d)", x, y)
		l.text("This window's ID: 0x%x", uint32(w.ID()))
	}
	l.colored(colors.Blue, "hot 0x%x active 0x%x popup 0x%x", l.lastHot, l.lastActive, l.lastPopup)
	avg := profiler.Milliseconds(l.frames.Average())
	frameColor := colors.Green
	if avg > 1000.0/60 {
		frameColor = colors.Red
	}
	l.colored(frameColor, "Frame: %.2f ms", avg)

	c.Inline()
	if c.Button("Click me") == ui.InteractionPressAndReleased {
		l.clicks++
	}
	if n, err := l.buf.Int(l.clicks); err == nil {
		c.Text(n, colors.Yellow)
	}
	c.Inline()

	c.Number("Value1", 1, &l.value1)
	c.Slider("Value0", 123, -10, &l.value0)
	l.value0 = float32(int(l.value0))

	if c.Dropdown("Dropdown", movies, &l.movie) {
		e.Logger.Info("movie selected", "title", movies[l.movie])
	}

	c.Inline()
	c.Button("button 1")
	c.Button("button 2")
	c.Inline()
	c.Button("button 3")
	c.CheckBox("CheckBox", &l.checked)
	c.CloseWindow()

	if l.stats {
		c.OpenWindow("Stats", 400, top)
		c.Text("Memory", colors.Yellow)
		l.text("Heap: %.2f MB", float64(profiler.MemoryUsage())/(1<<20))
		l.text("Allocs: %d", profiler.MemoryAllocs())
		l.text("Goroutines: %d", profiler.NumGoroutine())
		c.Text("Frames", colors.Yellow)
		l.text("Windows: %d", len(c.Windows()))
		l.text("Worst frame: %.2f ms", profiler.Milliseconds(l.frames.Max()))
		l.text("Uptime: %d s", int(e.Uptime().Seconds()))
		c.CloseWindow()
	}

	// Shown next frame, as hot and active settle during End.
	popup, _ := c.PopupID()
	l.lastHot, l.lastActive, l.lastPopup = uint32(c.Hot()), uint32(c.Active()), uint32(popup)
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	l.input.Handle(ev)
	switch v := ev.(type) {
	case core.EventKey:
		if !v.Down {
			return false
		}
		switch v.Key {
		case core.KeyEscape:
			e.Quit()
			return true
		case core.KeyF12:
			l.snapshot = true
			return true
		case core.KeyP:
			l.stats = !l.stats
			return true
		}
	case core.EventResize:
		if v.W > 0 && v.H > 0 {
			l.soft.Resize(v.W, v.H)
		}
	}
	return false
}
