package bus

import "github.com/bdwalton/gintendo/cartridge"

const (
	patternTableEnd = 0x1FFF
	nametableMirror = 0x3000
	paletteStart    = 0x3F00
	videoSpan       = 0x4000
)

// ReadVideoMem implements ppu.Bus: the full PPU-visible $0000-$3FFF
// space (pattern tables via the cartridge, nametables with mirroring,
// palette RAM with its own mirroring).
func (b *Bus) ReadVideoMem(addr uint16) uint8 {
	a := addr % videoSpan
	switch {
	case a <= patternTableEnd:
		v, err := b.cart.ReadVROM(a)
		if err != nil {
			b.logger.Errorf("chr read $%04X: %v", a, err)
			return 0
		}
		return v
	case a < nametableMirror:
		return b.nametables[b.nametableIndex(a)]
	case a < paletteStart:
		return b.nametables[b.nametableIndex(a-0x1000)]
	default:
		return b.palette[paletteIndex(a)]
	}
}

// WriteVideoMem implements ppu.Bus.
func (b *Bus) WriteVideoMem(addr uint16, val uint8) {
	a := addr % videoSpan
	switch {
	case a <= patternTableEnd:
		if err := b.cart.WriteVROM(a, val); err != nil {
			b.logger.Errorf("chr write $%04X: %v", a, err)
		}
	case a < nametableMirror:
		b.nametables[b.nametableIndex(a)] = val
	case a < paletteStart:
		b.nametables[b.nametableIndex(a-0x1000)] = val
	default:
		b.palette[paletteIndex(a)] = val
	}
}

// nametableIndex maps a $2000-$2FFF nametable address onto the 2KiB
// backing array according to the cartridge's mirroring mode.
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
func (b *Bus) nametableIndex(addr uint16) uint16 {
	rel := addr - 0x2000
	if b.cart.Mirroring() == cartridge.Vertical {
		return rel % 0x0800
	}
	if rel >= 0x0800 {
		return 0x0400 + (rel-0x0800)%0x0400
	}
	return rel % 0x0400
}

// paletteIndex maps a $3F00-$3FFF address onto the 32-byte palette
// RAM, aliasing the sprite backdrop entries onto the background ones.
func paletteIndex(addr uint16) uint16 {
	i := (addr - paletteStart) % 0x20
	switch i {
	case 0x10, 0x14, 0x18, 0x1C:
		i -= 0x10
	}
	return i
}

// ReadSpriteMem implements ppu.Bus: direct OAM indexing.
func (b *Bus) ReadSpriteMem(i uint8) uint8 { return b.oam[i] }

// WriteSpriteMem implements ppu.Bus.
func (b *Bus) WriteSpriteMem(i uint8, val uint8) { b.oam[i] = val }

// GenerateNMI implements ppu.Bus: forwards to the CPU, which services
// the pending interrupt at its next instruction boundary.
func (b *Bus) GenerateNMI() { b.cpu.TriggerNMI() }
