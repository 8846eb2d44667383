package ui

import (
	"errors"
	"log/slog"

	"github.com/hubastard/tinyui/engine/scratch"
)

// TextMeasurer is the font capability the engine consumes. Widths and the
// line height are in pixels.
type TextMeasurer interface {
	MeasureWidth(text string) int
	LineHeight() int
}

// Context is the whole engine state for one UI session. It is not safe for
// concurrent use; every call happens on the thread building the frame.
type Context struct {
	text   TextMeasurer
	style  Style
	cap    Capacity
	logger *slog.Logger

	input inputLatch

	// Focus
	hot, active    ID
	somethingIsHot bool
	activeSeen     bool

	popup popupState

	// Windows persist for the session. The table never reallocates, so the
	// depth order can hold pointers into it.
	zIndex   int
	windows  []Window
	depth    []*Window // bottom-to-top
	selected *Window

	cmds cmdBuffer

	arena *scratch.Arena
	err   error
	ended bool
}

type Option func(*Context)

func WithStyle(s Style) Option { return func(c *Context) { c.style = s } }

func WithCapacity(cp Capacity) Option { return func(c *Context) { c.cap = cp } }

func WithLogger(l *slog.Logger) Option { return func(c *Context) { c.logger = l } }

// New builds a Context. All containers are allocated here, once.
func New(text TextMeasurer, opts ...Option) *Context {
	c := &Context{
		text:   text,
		style:  DefaultStyle(),
		cap:    DefaultCapacity(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.windows = make([]Window, 0, c.cap.Windows)
	c.depth = make([]*Window, 0, c.cap.Windows)
	c.cmds.init(c.cap.Commands, c.cap.Refs)
	c.arena = scratch.New(c.cap.Text)
	return c
}

func (c *Context) Style() Style { return c.style }

// Hot returns the widget under the pointer that would activate on press.
func (c *Context) Hot() ID { return c.hot }

// Active returns the widget holding interaction focus.
func (c *Context) Active() ID { return c.active }

// Err returns the error that broke the current frame, if any.
func (c *Context) Err() error { return c.err }

// Begin starts a frame: per-frame buffers are cleared and a latched press
// promotes the window under it.
func (c *Context) Begin() {
	c.err = nil
	c.ended = false
	c.selected = nil
	c.somethingIsHot = false
	c.activeSeen = false
	c.cmds.reset()
	c.arena.Reset()

	if !c.pressed() {
		return
	}
	p := c.input.event.pos
	if c.popup.live && c.popup.rect.Contains(p) {
		return
	}
	if c.popup.live {
		c.popup.dead = true
	}
	c.promote(p)
}

// End finishes the frame: references are sorted for replay, one-shot input
// is cleared and focus that nobody reclaimed is dropped. It returns the
// first error recorded during the frame; the command stream of a failed
// frame is empty.
func (c *Context) End() error {
	const op = "End"
	if c.err == nil {
		switch {
		case c.selected != nil:
			c.fail(op, ErrUnclosedBlock)
		case c.cmds.rev >= 0:
			c.fail(op, ErrUnclosedBlock)
		case c.cmds.fwd >= 0:
			c.cmds.closeBlock(false)
		}
	}
	if c.err == nil {
		c.cmds.sort()
	}

	if !c.somethingIsHot {
		c.hot = 0
	}
	if c.active != 0 && !c.activeSeen && c.released() {
		c.active = 0
	}
	c.input.consume()

	if c.popup.dead || !c.popup.seen {
		c.popup = popupState{}
	}
	c.popup.seen = false

	c.selected = nil
	c.ended = true
	return c.err
}

// fail records err for op unless the frame already failed.
func (c *Context) fail(op string, err error) {
	if c.err != nil {
		return
	}
	c.err = &Error{Op: op, Err: err}
	c.logger.Warn("ui frame failed", "op", op, "err", err)
}

// IsCapacityError reports whether err came from an exhausted container.
func IsCapacityError(err error) bool {
	return errors.Is(err, ErrWindowTableFull) ||
		errors.Is(err, ErrCommandBufferFull) ||
		errors.Is(err, ErrCommandRefsFull) ||
		errors.Is(err, ErrTextArenaFull)
}
