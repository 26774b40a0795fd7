package ppu

import "github.com/bdwalton/gintendo/internal/neserr"

// WriteRegister handles a CPU write to one of the 8 PPU registers (n
// already reduced mod 8 by the bus). Writes to read-only registers
// are reported as IllegalOperation; the bus logs and discards them,
// since a CPU write has no error channel of its own.
func (p *PPU) WriteRegister(n uint8, v uint8) error {
	switch n {
	case regControl1:
		p.ctrl1 = v
	case regControl2:
		p.ctrl2 = v
	case regSprMemAddr:
		p.oamAddr = v
	case regSprMemData:
		p.bus.WriteSpriteMem(p.oamAddr, v)
		p.oamAddr++
	case regScroll:
		if !p.writeToggle {
			p.scrollV = v
		} else {
			p.scrollH = v
		}
		p.writeToggle = !p.writeToggle
	case regVidMemAddr:
		if !p.writeToggle {
			p.videoAddr = (p.videoAddr & 0x00FF) | uint16(v)<<8
		} else {
			p.videoAddr = (p.videoAddr & 0xFF00) | uint16(v)
			p.videoReadDelay = true
		}
		p.writeToggle = !p.writeToggle
	case regVidMemData:
		p.bus.WriteVideoMem(p.videoAddr, v)
		p.videoAddr += p.addrIncrement()
	default:
		return neserr.Newf(neserr.IllegalOperation, "write to read-only PPU register %d", n)
	}
	return nil
}

// ReadRegister handles a CPU read of one of the 8 PPU registers.
func (p *PPU) ReadRegister(n uint8) (uint8, error) {
	switch n {
	case regState:
		v := p.stateByte()
		p.vblank = false
		p.writeToggle = false
		return v, nil
	case regSprMemData:
		v := p.bus.ReadSpriteMem(p.oamAddr)
		p.oamAddr++
		return v, nil
	case regVidMemData:
		return p.readVideoData(), nil
	default:
		return 0, neserr.Newf(neserr.IllegalOperation, "read of write-only PPU register %d", n)
	}
}

func (p *PPU) stateByte() uint8 {
	var v uint8
	if p.writeDisabled {
		v |= stateWriteDisabled
	}
	if p.spriteOverflow {
		v |= stateSpriteOverflow
	}
	if p.sprite0Hit {
		v |= stateSprite0Hit
	}
	if p.vblank {
		v |= stateVBlank
	}
	return v
}

// readVideoData implements the one-shot-delayed VRAM read: the first
// read of non-palette space after a VIDMEM_ADDR write returns the
// previously buffered byte and leaves the address where it is, so the
// read after it returns the byte at that address; palette reads are
// always immediate.
func (p *PPU) readVideoData() uint8 {
	addr := p.videoAddr

	if addr >= paletteBase {
		p.videoAddr += p.addrIncrement()
		return p.bus.ReadVideoMem(addr)
	}

	if p.videoReadDelay {
		p.videoReadDelay = false
		return p.bufferData
	}

	v := p.bus.ReadVideoMem(addr)
	p.bufferData = v
	p.videoAddr += p.addrIncrement()
	return v
}
