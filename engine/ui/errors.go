package ui

import "errors"

// Capacity exhaustion.
var (
	ErrWindowTableFull   = errors.New("window table full")
	ErrCommandBufferFull = errors.New("command buffer full")
	ErrCommandRefsFull   = errors.New("command reference list full")
	ErrTextArenaFull     = errors.New("text arena full")
)

// Invalid configuration value.
var ErrInvalidTextAlign = errors.New("invalid text alignment")

// Structural misuse.
var (
	ErrNestedBlock   = errors.New("block opened while another block is open")
	ErrNoWindow      = errors.New("no window selected")
	ErrUnclosedBlock = errors.New("block left open at end of frame")
)

// Error records which operation broke a frame. The first Error of a frame is
// sticky: later operations are skipped and End returns it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "ui: " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }
