// Package ppu implements the NES Picture Processing Unit: the 8
// memory-mapped registers the CPU sees at $2000-$2007, and the
// once-per-frame construction of a video frame from nametables,
// pattern tables, OAM, and palette RAM.
//
// Grounded in the teacher's ppu package (bdwalton-gintendo's
// ppu/ppu.go and ppu/register.go) for the register bit layout and the
// system palette idea, but reshaped from the teacher's dot-by-dot
// Tick(n) scanline renderer into a whole-frame-per-Update() renderer,
// since that's the architecture this core's spec calls for.
package ppu

import (
	"github.com/bdwalton/gintendo/internal/nlog"
	"github.com/bdwalton/gintendo/renderer"
	"github.com/bdwalton/gintendo/timing"
)

// Bus is everything the PPU needs from its owner: the decoded PPU
// address space (pattern tables, nametables, palette RAM) and OAM,
// plus the ability to signal an NMI toward the CPU.
type Bus interface {
	ReadVideoMem(addr uint16) uint8
	WriteVideoMem(addr uint16, val uint8)
	ReadSpriteMem(i uint8) uint8
	WriteSpriteMem(i uint8, val uint8)
	GenerateNMI()
}

const (
	regControl1   = 0
	regControl2   = 1
	regState      = 2
	regSprMemAddr = 3
	regSprMemData = 4
	regScroll     = 5
	regVidMemAddr = 6
	regVidMemData = 7
)

// CONTROL1 bits.
const (
	ctrl1NametableMask     = 0x03
	ctrl1AddrIncrement     = 1 << 2
	ctrl1SpritePatternBase = 1 << 3
	ctrl1BGPatternBase     = 1 << 4
	ctrl1SpriteSize        = 1 << 5
	ctrl1NMIEnable         = 1 << 7
)

// CONTROL2 bits.
const (
	ctrl2FullBGVisible     = 1 << 1
	ctrl2AllSpritesVisible = 1 << 2
	ctrl2BGEnable          = 1 << 3
	ctrl2SpriteEnable      = 1 << 4
)

// STATE bits.
const (
	stateWriteDisabled  = 1 << 4
	stateSpriteOverflow = 1 << 5
	stateSprite0Hit     = 1 << 6
	stateVBlank         = 1 << 7
)

const paletteBase = 0x3F00

// PPU holds only register and latch state; all pixel/attribute/OAM
// storage lives behind Bus.
type PPU struct {
	bus    Bus
	mode   timing.Mode
	logger nlog.Logger

	ctrl1, ctrl2 uint8

	oamAddr     uint8
	videoAddr   uint16
	writeToggle bool // shared by SCROLL and VIDMEM_ADDR, per real hardware
	scrollV     uint8
	scrollH     uint8

	videoReadDelay bool
	bufferData     uint8

	writeDisabled  bool
	spriteOverflow bool
	sprite0Hit     bool
	vblank         bool
}

// New constructs a PPU wired to bus for the given timing mode.
// logger may be nlog.NoOp().
func New(bus Bus, mode timing.Mode, logger nlog.Logger) *PPU {
	return &PPU{bus: bus, mode: mode, logger: logger}
}

// Reset clears PPU flags and latches, as required when the host calls
// the emulator-wide reset.
func (p *PPU) Reset() {
	p.ctrl1, p.ctrl2 = 0, 0
	p.oamAddr = 0
	p.videoAddr = 0
	p.writeToggle = false
	p.scrollV, p.scrollH = 0, 0
	p.videoReadDelay = false
	p.bufferData = 0
	p.writeDisabled = false
	p.spriteOverflow = false
	p.sprite0Hit = false
	p.vblank = false
}

func (p *PPU) addrIncrement() uint16 {
	if p.ctrl1&ctrl1AddrIncrement != 0 {
		return 32
	}
	return 1
}

func (p *PPU) nmiEnabled() bool { return p.ctrl1&ctrl1NMIEnable != 0 }

// Update builds one frame into backend and, if NMI generation is
// enabled, asks the bus to raise NMI for the CPU to service on its
// next instruction boundary.
func (p *PPU) Update(backend renderer.Backend) {
	p.vblank = false
	p.buildImage(backend)
	p.vblank = true
	if p.nmiEnabled() {
		p.bus.GenerateNMI()
	}
}

func (p *PPU) buildImage(backend renderer.Backend) {
	backend.SetBackground(p.bus.ReadVideoMem(paletteBase))

	if p.ctrl2&ctrl2BGEnable != 0 {
		p.renderBackground(backend)
	}

	p.sprite0Hit = false
	if p.ctrl2&ctrl2SpriteEnable != 0 {
		p.renderSprites(backend)
	}

	backend.Draw()
}

// Snapshot exposes PPU register state for introspection (a debugger),
// per the re-architecture guidance replacing ad-hoc friend access.
type Snapshot struct {
	ActivePage        uint16
	BGPatternBase     uint16
	SpritePatternBase uint16
	BigSprites        bool
	ScrollV, ScrollH  uint8
	NMIEnabled        bool
	BGEnabled         bool
	SpritesEnabled    bool
	VBlank            bool
}

func (p *PPU) Snapshot() Snapshot {
	bases := [4]uint16{0x2000, 0x2400, 0x2800, 0x2C00}
	bgBase := uint16(0)
	if p.ctrl1&ctrl1BGPatternBase != 0 {
		bgBase = 0x1000
	}
	sprBase := uint16(0)
	if p.ctrl1&ctrl1SpritePatternBase != 0 {
		sprBase = 0x1000
	}
	return Snapshot{
		ActivePage:        bases[p.ctrl1&ctrl1NametableMask],
		BGPatternBase:     bgBase,
		SpritePatternBase: sprBase,
		BigSprites:        p.ctrl1&ctrl1SpriteSize != 0,
		ScrollV:           p.scrollV,
		ScrollH:           p.scrollH,
		NMIEnabled:        p.nmiEnabled(),
		BGEnabled:         p.ctrl2&ctrl2BGEnable != 0,
		SpritesEnabled:    p.ctrl2&ctrl2SpriteEnable != 0,
		VBlank:            p.vblank,
	}
}
