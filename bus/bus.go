// Package bus is the central address decoder linking the CPU, PPU,
// and cartridge: it owns CPU RAM, PPU VRAM/OAM/palette, and dispatches
// every memory access either locally or to whichever peripheral
// handles that range.
//
// Grounded in the teacher's console.Bus (bdwalton-gintendo's
// console/bus.go): same switch-on-address-range shape for Read/Write,
// same mirroring arithmetic, rebuilt against this module's own
// cpu6502/ppu/cartridge package split instead of mos6502/ppu/mappers.
package bus

import (
	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/cpu6502"
	"github.com/bdwalton/gintendo/internal/nlog"
	"github.com/bdwalton/gintendo/ppu"
	"github.com/bdwalton/gintendo/timing"
)

const (
	ramSize       = 0x0800
	ramMirrorMask = ramSize - 1
	nametableSize = 0x0800
	paletteSize   = 0x20
	oamSize       = 256

	ramEnd     = 0x1FFF
	ppuRegEnd  = 0x3FFF
	ioRegEnd   = 0x401F
	expandEnd  = 0x5FFF
	cartRAMEnd = 0x7FFF
)

// Bus links a CPU, a PPU, and a Cartridge and owns the memory they
// don't own themselves.
type Bus struct {
	mode   timing.Mode
	logger nlog.Logger

	ram        [ramSize]uint8
	nametables [nametableSize]uint8
	palette    [paletteSize]uint8
	oam        [oamSize]uint8

	cpu  *cpu6502.CPU
	ppu  *ppu.PPU
	cart *cartridge.Cartridge
}

// New constructs a Bus and the CPU and PPU wired to it, per the
// construction order the design calls for: Bus first (the owning
// hub), then CPU and PPU holding non-owning references back to it.
// A Cartridge is bound later via InjectCartridge. logger may be nil,
// in which case a no-op logger is used.
func New(mode timing.Mode, logger nlog.Logger) *Bus {
	if logger == nil {
		logger = nlog.NoOp()
	}
	b := &Bus{mode: mode, logger: logger}
	b.cpu = cpu6502.New(b)
	b.ppu = ppu.New(b, mode, logger)
	return b
}

func (b *Bus) CPU() *cpu6502.CPU { return b.cpu }
func (b *Bus) PPU() *ppu.PPU     { return b.ppu }
func (b *Bus) Mode() timing.Mode { return b.mode }

// InjectCartridge rebinds the cartridge reference and clears PPU
// nametable/palette state that depended on the previous cartridge's
// contents.
func (b *Bus) InjectCartridge(c *cartridge.Cartridge) {
	b.cart = c
	b.nametables = [nametableSize]uint8{}
	b.palette = [paletteSize]uint8{}
}

// Reset reinitializes the CPU and clears PPU flags, as the emulator's
// top-level reset requires.
func (b *Bus) Reset() {
	b.cpu.Reset()
	b.ppu.Reset()
}

// Read implements cpu6502.Bus: the full CPU-visible $0000-$FFFF space.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&ramMirrorMask]
	case addr <= ppuRegEnd:
		v, err := b.ppu.ReadRegister(ppuRegisterIndex(addr))
		if err != nil {
			b.logger.Errorf("ppu register read $%04X: %v", addr, err)
			return 0
		}
		return v
	case addr <= ioRegEnd:
		return 0
	case addr <= expandEnd:
		return 0
	case addr <= cartRAMEnd:
		v, err := b.cart.ReadRAM(addr)
		if err != nil {
			return 0
		}
		return v
	default:
		v, err := b.cart.ReadROM(addr)
		if err != nil {
			b.logger.Errorf("rom read $%04X: %v", addr, err)
			return 0
		}
		return v
	}
}

// Write implements cpu6502.Bus.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramEnd:
		b.ram[addr&ramMirrorMask] = val
	case addr <= ppuRegEnd:
		if err := b.ppu.WriteRegister(ppuRegisterIndex(addr), val); err != nil {
			b.logger.Errorf("ppu register write $%04X: %v", addr, err)
		}
	case addr <= ioRegEnd:
		// APU / I/O: unused in this core.
	case addr <= expandEnd:
		// expansion ROM: unused.
	case addr <= cartRAMEnd:
		if err := b.cart.WriteRAM(addr, val); err != nil {
			b.logger.Errorf("cart ram write $%04X: %v", addr, err)
		}
	default:
		// DefaultMapper has no bank-control registers to write; see
		// SPEC_FULL.md §9A for why this is a silent no-op rather than an
		// error.
	}
}

func ppuRegisterIndex(addr uint16) uint8 {
	return uint8((addr - 0x2000) % 8)
}
