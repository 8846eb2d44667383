package core

import (
	"math"

	"github.com/hubastard/tinyui/engine/ui"
)

// PointerSink receives pointer input once per frame. *ui.Context implements
// it.
type PointerSink interface {
	SetPointerPosition(x, y int)
	SetPointerButton(x, y int, button ui.MouseButton, t ui.Transition)
	AddScroll(delta int)
}

type buttonTransition struct {
	button ui.MouseButton
	t      ui.Transition
	x, y   int
}

const maxQueuedButtons = 8

// Input collects platform events between frames and hands them to the UI in
// the UI's conventions: framebuffer pixels, y up, one button transition per
// frame.
type Input struct {
	keys map[Key]bool

	mouseX, mouseY float64 // window coordinates, y down
	moved          bool

	winW, winH int
	fbW, fbH   int

	// Transitions wait here so a press and release within one frame are
	// delivered on consecutive frames instead of overwriting each other.
	buttons [maxQueuedButtons]buttonTransition
	head, n int

	wheel float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

// SetViewport records the window and framebuffer sizes used to convert
// pointer coordinates.
func (in *Input) SetViewport(winW, winH, fbW, fbH int) {
	in.winW, in.winH = winW, winH
	in.fbW, in.fbH = fbW, fbH
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
		in.moved = true
	case EventMouseButton:
		b, ok := uiButton(e.Button)
		if !ok {
			return
		}
		t := ui.Released
		if e.Down {
			t = ui.Pressed
		}
		x, y := in.Pointer()
		in.queue(buttonTransition{button: b, t: t, x: x, y: y})
	case EventScroll:
		in.wheel += e.Yoff
	}
}

func (in *Input) queue(bt buttonTransition) {
	if in.n == maxQueuedButtons {
		// Drop the oldest; the pointer is far ahead of the frame rate anyway.
		in.head = (in.head + 1) % maxQueuedButtons
		in.n--
	}
	in.buttons[(in.head+in.n)%maxQueuedButtons] = bt
	in.n++
}

// Flush delivers the pending input to sink. Call it once per frame before
// ui.Context.Begin.
func (in *Input) Flush(sink PointerSink) {
	if in.moved {
		x, y := in.Pointer()
		sink.SetPointerPosition(x, y)
		in.moved = false
	}
	if in.n > 0 {
		bt := in.buttons[in.head]
		in.head = (in.head + 1) % maxQueuedButtons
		in.n--
		sink.SetPointerButton(bt.x, bt.y, bt.button, bt.t)
	}
	// Wheel up scrolls back toward the top, so the sign flips. Fractions
	// from smooth-scrolling devices carry over to the next frame.
	if whole := math.Trunc(in.wheel); whole != 0 {
		sink.AddScroll(-int(whole))
		in.wheel -= whole
	}
}

// Pointer returns the pointer in framebuffer pixels with y up.
func (in *Input) Pointer() (int, int) {
	sx, sy := 1.0, 1.0
	if in.winW > 0 && in.winH > 0 && in.fbW > 0 && in.fbH > 0 {
		sx = float64(in.fbW) / float64(in.winW)
		sy = float64(in.fbH) / float64(in.winH)
	}
	x := int(math.Floor(in.mouseX * sx))
	y := in.fbH - 1 - int(math.Floor(in.mouseY*sy))
	return x, y
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }

func uiButton(b MouseButton) (ui.MouseButton, bool) {
	switch b {
	case MouseLeft:
		return ui.MouseLeft, true
	case MouseRight:
		return ui.MouseRight, true
	case MouseMiddle:
		return ui.MouseMiddle, true
	case MouseBack:
		return ui.MouseBackward, true
	case MouseForward:
		return ui.MouseForward, true
	default:
		return 0, false
	}
}
