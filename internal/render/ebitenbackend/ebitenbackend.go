// Package ebitenbackend is the reference renderer.Backend
// implementation: it accumulates a frame's worth of SetSymbol blits
// into an ebiten.Image and presents it as an ebiten.Game.
//
// Grounded in the teacher's console.Bus (bdwalton-gintendo's
// console/bus.go), which played double duty as both the CPU/PPU bus
// and the ebiten.Game the main loop ran -- here that second role is
// split out into its own package so the core's renderer.Backend
// interface stays free of ebiten types, per the capability-interface
// split the expanded design calls for. The 64-entry NES system
// palette is the teacher's own SYSTEM_PALETTE table from ppu/ppu.go,
// relocated here since only a concrete backend needs RGB values --
// the ppu package itself only ever deals in raw palette indices.
package ebitenbackend

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bdwalton/gintendo/console"
	"github.com/bdwalton/gintendo/renderer"
)

const (
	width  = 256
	height = 240
)

// systemPalette maps a 6-bit NES palette index to its approximate RGB
// value, the same 64-entry table NES emulators universally ship.
var systemPalette = [64]color.RGBA{
	{0x80, 0x80, 0x80, 0xff}, {0x00, 0x3D, 0xA6, 0xff}, {0x00, 0x12, 0xB0, 0xff}, {0x44, 0x00, 0x96, 0xff}, {0xA1, 0x00, 0x5E, 0xff},
	{0xC7, 0x00, 0x28, 0xff}, {0xBA, 0x06, 0x00, 0xff}, {0x8C, 0x17, 0x00, 0xff}, {0x5C, 0x2F, 0x00, 0xff}, {0x10, 0x45, 0x00, 0xff},
	{0x05, 0x4A, 0x00, 0xff}, {0x00, 0x47, 0x2E, 0xff}, {0x00, 0x41, 0x66, 0xff}, {0x00, 0x00, 0x00, 0xff}, {0x05, 0x05, 0x05, 0xff},
	{0x05, 0x05, 0x05, 0xff}, {0xC7, 0xC7, 0xC7, 0xff}, {0x00, 0x77, 0xFF, 0xff}, {0x21, 0x55, 0xFF, 0xff}, {0x82, 0x37, 0xFA, 0xff},
	{0xEB, 0x2F, 0xB5, 0xff}, {0xFF, 0x29, 0x50, 0xff}, {0xFF, 0x22, 0x00, 0xff}, {0xD6, 0x32, 0x00, 0xff}, {0xC4, 0x62, 0x00, 0xff},
	{0x35, 0x80, 0x00, 0xff}, {0x05, 0x8F, 0x00, 0xff}, {0x00, 0x8A, 0x55, 0xff}, {0x00, 0x99, 0xCC, 0xff}, {0x21, 0x21, 0x21, 0xff},
	{0x09, 0x09, 0x09, 0xff}, {0x09, 0x09, 0x09, 0xff}, {0xFF, 0xFF, 0xFF, 0xff}, {0x0F, 0xD7, 0xFF, 0xff}, {0x69, 0xA2, 0xFF, 0xff},
	{0xD4, 0x80, 0xFF, 0xff}, {0xFF, 0x45, 0xF3, 0xff}, {0xFF, 0x61, 0x8B, 0xff}, {0xFF, 0x88, 0x33, 0xff}, {0xFF, 0x9C, 0x12, 0xff},
	{0xFA, 0xBC, 0x20, 0xff}, {0x9F, 0xE3, 0x0E, 0xff}, {0x2B, 0xF0, 0x35, 0xff}, {0x0C, 0xF0, 0xA4, 0xff}, {0x05, 0xFB, 0xFF, 0xff},
	{0x5E, 0x5E, 0x5E, 0xff}, {0x0D, 0x0D, 0x0D, 0xff}, {0x0D, 0x0D, 0x0D, 0xff}, {0xFF, 0xFF, 0xFF, 0xff}, {0xA6, 0xFC, 0xFF, 0xff},
	{0xB3, 0xEC, 0xFF, 0xff}, {0xDA, 0xAB, 0xEB, 0xff}, {0xFF, 0xA8, 0xF9, 0xff}, {0xFF, 0xAB, 0xB3, 0xff}, {0xFF, 0xD2, 0xB0, 0xff},
	{0xFF, 0xEF, 0xA6, 0xff}, {0xFF, 0xF7, 0x9C, 0xff}, {0xD7, 0xE8, 0x95, 0xff}, {0xA6, 0xED, 0xAF, 0xff}, {0xA2, 0xF2, 0xDA, 0xff},
	{0x99, 0xFF, 0xFC, 0xff}, {0xDD, 0xDD, 0xDD, 0xff}, {0x11, 0x11, 0x11, 0xff}, {0x11, 0x11, 0x11, 0xff},
}

func rgbaFor(palIdx byte) color.RGBA {
	return systemPalette[palIdx&0x3F]
}

// Backend is a renderer.Backend that draws into an in-memory
// ebiten.Image. One Backend should back exactly one window.
type Backend struct {
	img *ebiten.Image
}

var _ renderer.Backend = (*Backend)(nil)

// New constructs a Backend sized for one NES frame.
func New() *Backend {
	return &Backend{img: ebiten.NewImage(width, height)}
}

// SetBackground implements renderer.Backend.
func (b *Backend) SetBackground(col byte) {
	b.img.Fill(rgbaFor(col))
}

// SetSymbol implements renderer.Backend. The layer argument is not
// used: tiles are painted in call order, each opaque pixel over
// whatever the image already holds, so a Behind-layer sprite covers the
// background tiles drawn before it rather than sitting under them.
func (b *Backend) SetSymbol(layer renderer.Layer, x, y int, pixels renderer.Tile) {
	for row := 0; row < 8; row++ {
		py := y + row
		if py < 0 || py >= height {
			continue
		}
		for col := 0; col < 8; col++ {
			px := x + col
			if px < 0 || px >= width {
				continue
			}
			p := pixels[row*8+col]
			if p&0x80 == 0 {
				continue // transparent
			}
			b.img.Set(px, py, rgbaFor(p))
		}
	}
}

// Draw implements renderer.Backend. Presentation to an actual window
// happens in Game.Draw below, once per ebiten frame; this method is a
// no-op since the Backend's SetSymbol/SetBackground calls already
// mutated img directly.
func (b *Backend) Draw() {}

// Game is the ebiten.Game implementor that drives a Console one frame
// per ebiten.Update call and presents the Backend's accumulated image
// in Draw. Splitting this from Backend keeps renderer.Backend's Draw()
// (no args) from colliding with ebiten.Game's Draw(screen) -- Go
// doesn't allow two methods of the same name with different
// signatures on one type.
type Game struct {
	backend *Backend
	cons    *console.Console
}

var _ ebiten.Game = (*Game)(nil)

// NewGame constructs a Game that drives cons and presents backend's
// framebuffer. cons must have been constructed with backend as its
// renderer.Backend.
func NewGame(cons *console.Console, backend *Backend) *Game {
	return &Game{backend: backend, cons: cons}
}

// Layout implements ebiten.Game: force ebiten to scale the fixed NES
// resolution rather than resize the emulated picture.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return width, height
}

// Update implements ebiten.Game: advances the emulator by one frame.
func (g *Game) Update() error {
	g.cons.RunFrame()
	return nil
}

// Draw implements ebiten.Game, presenting the backend's accumulated
// frame image.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.backend.img, nil)
}
