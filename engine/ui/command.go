package ui

import (
	"cmp"
	"iter"
	"math"
	"slices"

	"github.com/hubastard/tinyui/engine/colors"
)

// Kind tags a Command. The set is closed; renderers switch over it.
type Kind uint8

const (
	CommandPushClip Kind = iota + 1
	CommandPopClip
	CommandRect
	CommandText
	CommandIcon

	commandBlock // header of a block, never surfaced by replay
)

func (k Kind) String() string {
	switch k {
	case CommandPushClip:
		return "push-clip"
	case CommandPopClip:
		return "pop-clip"
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandIcon:
		return "icon"
	case commandBlock:
		return "block"
	default:
		return "unknown"
	}
}

type Icon int

const (
	IconResize Icon = iota
	IconCollapse
	IconExpand
)

// Command is one drawing primitive. Which fields are meaningful depends on
// Kind: PushClip uses Rect; Rect uses Rect and Color; Text adds Text; Icon
// adds Icon. Text points into host memory or the frame's text arena and is
// only valid until the next Begin.
type Command struct {
	Kind  Kind
	Rect  Rect
	Color colors.Color
	Text  string
	Icon  Icon

	// block header
	count   int
	reverse bool
}

// Sort keys for blocks that are not windows.
const (
	looseKey = math.MinInt // content drawn outside any window, beneath them
	popupKey = math.MaxInt // popups, above every window
)

type cmdRef struct {
	index int // block header position
	key   int
}

// cmdBuffer is one fixed arena filled from both ends. Windows and loose
// content grow forward from the front; the popup grows backward from the
// back. At most one block is open per direction.
type cmdBuffer struct {
	items []Command
	front int // next forward slot
	back  int // next backward slot
	fwd   int // header of the open forward block, -1 if none
	rev   int // header of the open backward block, -1 if none
	loose bool
	refs  []cmdRef

	// replay cursor
	next      int
	pos       int
	remaining int
	reading   bool // reverse
}

func (b *cmdBuffer) init(capacity, refs int) {
	b.items = make([]Command, capacity)
	b.refs = make([]cmdRef, 0, refs)
	b.reset()
}

func (b *cmdBuffer) reset() {
	b.front = 0
	b.back = len(b.items) - 1
	b.fwd = -1
	b.rev = -1
	b.loose = false
	b.refs = b.refs[:0]
	b.next, b.pos, b.remaining, b.reading = 0, 0, 0, false
}

func (b *cmdBuffer) full() bool { return b.front > b.back }

// write appends cmd in the direction of the innermost open block.
func (b *cmdBuffer) write(cmd Command) int {
	if b.rev >= 0 {
		i := b.back
		b.items[i] = cmd
		b.back--
		return i
	}
	i := b.front
	b.items[i] = cmd
	b.front++
	return i
}

// openBlock writes a block header and registers its sort reference.
func (b *cmdBuffer) openBlock(reverse bool, key int) error {
	if len(b.refs) == cap(b.refs) {
		return ErrCommandRefsFull
	}
	if b.full() {
		return ErrCommandBufferFull
	}
	hdr := Command{Kind: commandBlock, reverse: reverse}
	if reverse {
		b.rev = b.back
		b.items[b.back] = hdr
		b.back--
	} else {
		b.fwd = b.front
		b.items[b.front] = hdr
		b.front++
	}
	idx := b.fwd
	if reverse {
		idx = b.rev
	}
	b.refs = append(b.refs, cmdRef{index: idx, key: key})
	return nil
}

// closeBlock stores the member count: the distance, in the block's own
// direction, between the write cursor and the header.
func (b *cmdBuffer) closeBlock(reverse bool) {
	if reverse {
		b.items[b.rev].count = b.rev - 1 - b.back
		b.rev = -1
		return
	}
	b.items[b.fwd].count = b.front - b.fwd - 1
	b.fwd = -1
	b.loose = false
}

func (b *cmdBuffer) sort() {
	// Window keys are unique; stability keeps loose blocks in emission order.
	slices.SortStableFunc(b.refs, func(x, y cmdRef) int { return cmp.Compare(x.key, y.key) })
}

func (b *cmdBuffer) nextCommand() (Command, bool) {
	for b.remaining == 0 {
		if b.next >= len(b.refs) {
			return Command{}, false
		}
		hdr := b.refs[b.next].index
		b.next++
		b.remaining = b.items[hdr].count
		b.reading = b.items[hdr].reverse
		if b.reading {
			b.pos = hdr - 1
		} else {
			b.pos = hdr + 1
		}
	}
	cmd := b.items[b.pos]
	if b.reading {
		b.pos--
	} else {
		b.pos++
	}
	b.remaining--
	return cmd, true
}

// emit appends cmd to the open block. Outside any window a loose block is
// opened on demand.
func (c *Context) emit(op string, cmd Command) {
	if c.err != nil {
		return
	}
	b := &c.cmds
	if b.rev < 0 && b.fwd < 0 {
		if err := b.openBlock(false, looseKey); err != nil {
			c.fail(op, err)
			return
		}
		b.loose = true
	}
	if b.full() {
		c.fail(op, ErrCommandBufferFull)
		return
	}
	b.write(cmd)
}

// beginBlock opens a window (forward) or popup (backward) block. An open
// loose block is closed first; any other open block in the same direction
// is misuse.
func (c *Context) beginBlock(op string, reverse bool, key int) bool {
	if c.err != nil {
		return false
	}
	b := &c.cmds
	if reverse && b.rev >= 0 || !reverse && b.fwd >= 0 && !b.loose {
		c.fail(op, ErrNestedBlock)
		return false
	}
	if !reverse && b.loose {
		b.closeBlock(false)
	}
	if err := b.openBlock(reverse, key); err != nil {
		c.fail(op, err)
		return false
	}
	return true
}

func (c *Context) endBlock(reverse bool) {
	if c.err != nil {
		return
	}
	c.cmds.closeBlock(reverse)
}

// NextCommand yields the frame's commands block by block in ascending
// z-order. It is valid between End and the next Begin, and is not
// restartable. A failed frame yields nothing.
func (c *Context) NextCommand() (Command, bool) {
	if !c.ended || c.err != nil {
		return Command{}, false
	}
	return c.cmds.nextCommand()
}

// Commands is NextCommand as a range-over-func iterator.
func (c *Context) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for {
			cmd, ok := c.NextCommand()
			if !ok || !yield(cmd) {
				return
			}
		}
	}
}
