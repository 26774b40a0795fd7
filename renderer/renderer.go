// Package renderer defines the capability the PPU draws through. The
// core never depends on a concrete windowing toolkit; cmd/gintendo is
// the only place a Backend implementation (internal/render/ebitenbackend)
// gets wired to a real window.
package renderer

// Layer distinguishes where a blitted 8x8 tile sits relative to the
// background: sprites can draw behind it (Behind) or in front of it
// (Front); the background itself is always Background.
type Layer uint8

const (
	Background Layer = iota
	Behind
	Front
)

func (l Layer) String() string {
	switch l {
	case Background:
		return "Background"
	case Behind:
		return "Behind"
	case Front:
		return "Front"
	default:
		return "Unknown"
	}
}

// Tile is an 8x8 block of NES palette indices, row-major. Bit 7 of a
// nonzero entry is set by the PPU as an opaqueness marker so a
// backend can tell "palette index 0, drawn" from "transparent" when it
// composites sprite layers against the background; callers wanting
// the bare palette index should mask with 0x7F (or 0x3F, since NES
// palette indices are 6 bits).
type Tile [64]byte

// Backend is the abstract rendering sink the PPU draws a frame into.
// Exactly one frame's worth of calls happens between a SetBackground
// and the matching Draw: SetBackground once, then zero or more
// SetSymbol calls in no particular draw order, then Draw to flush.
type Backend interface {
	SetBackground(color byte)
	SetSymbol(layer Layer, x, y int, pixels Tile)
	Draw()
}

// Null is a Backend that discards everything; useful for CPU-only
// tests that don't care about pixels.
type Null struct{}

func (Null) SetBackground(byte)             {}
func (Null) SetSymbol(Layer, int, int, Tile) {}
func (Null) Draw()                          {}
