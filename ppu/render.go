package ppu

import "github.com/bdwalton/gintendo/renderer"

var nametableBases = [4]uint16{0x2000, 0x2400, 0x2800, 0x2C00}

func neighborH(page uint16) uint16 { return page ^ 0x0400 }
func neighborV(page uint16) uint16 { return page ^ 0x0800 }

func (p *PPU) bgPatternBase() uint16 {
	if p.ctrl1&ctrl1BGPatternBase != 0 {
		return 0x1000
	}
	return 0
}

func (p *PPU) renderBackground(backend renderer.Backend) {
	activeBase := nametableBases[p.ctrl1&ctrl1NametableMask]
	patternBase := p.bgPatternBase()
	skipEdges := p.mode.SkipTopBottomRows()

	for row := 0; row < 30; row++ {
		if skipEdges && (row == 0 || row == 29) {
			continue
		}
		for col := 0; col < 32; col++ {
			effX := col*8 + int(p.scrollH)
			effY := row*8 + int(p.scrollV)
			page := activeBase
			if effX >= 256 {
				effX -= 256
				page = neighborH(page)
			}
			if effY >= 240 {
				effY -= 240
				page = neighborV(page)
			}
			tileCol := effX / 8
			tileRow := effY / 8

			ntAddr := page + uint16(tileRow*32+tileCol)
			tileIndex := p.bus.ReadVideoMem(ntAddr)

			attrAddr := page + 960 + uint16((tileRow/4)*8+(tileCol/4))
			attrByte := p.bus.ReadVideoMem(attrAddr)
			quadrant := uint((tileRow%4)/2*2 + (tileCol%4)/2)
			paletteGroup := (attrByte >> (quadrant * 2)) & 0x03

			tile := p.expandTile(patternBase, tileIndex, uint16(paletteGroup)*4, paletteBase, false, false)
			x := col*8 - int(p.scrollH)%8
			y := row*8 - int(p.scrollV)%8
			backend.SetSymbol(renderer.Background, x, y, tile)
		}
	}
}

const spritePaletteBase = 0x3F10

func (p *PPU) renderSprites(backend renderer.Backend) {
	bigSprites := p.ctrl1&ctrl1SpriteSize != 0
	sprPatternBase8x8 := uint16(0)
	if p.ctrl1&ctrl1SpritePatternBase != 0 {
		sprPatternBase8x8 = 0x1000
	}

	for i := 63; i >= 0; i-- {
		base := uint8(i * 4)
		y := p.bus.ReadSpriteMem(base)
		tileIndex := p.bus.ReadSpriteMem(base + 1)
		attrs := p.bus.ReadSpriteMem(base + 2)
		x := p.bus.ReadSpriteMem(base + 3)

		paletteGroup := uint16(attrs&0x03) * 4
		behind := attrs&0x20 != 0
		flipH := attrs&0x40 != 0
		flipV := attrs&0x80 != 0

		layer := renderer.Front
		if behind {
			layer = renderer.Behind
		}

		if bigSprites {
			patternBase := uint16(0)
			if tileIndex&0x01 != 0 {
				patternBase = 0x1000
			}
			top := tileIndex &^ 0x01
			bottom := top + 1
			if flipV {
				top, bottom = bottom, top
			}
			topTile := p.expandTile(patternBase, top, paletteGroup, spritePaletteBase, flipH, flipV)
			bottomTile := p.expandTile(patternBase, bottom, paletteGroup, spritePaletteBase, flipH, flipV)
			backend.SetSymbol(layer, int(x), int(y), topTile)
			backend.SetSymbol(layer, int(x), int(y)+8, bottomTile)
		} else {
			tile := p.expandTile(sprPatternBase8x8, tileIndex, paletteGroup, spritePaletteBase, flipH, flipV)
			backend.SetSymbol(layer, int(x), int(y), tile)
		}

		if i == 0 {
			p.sprite0Hit = true
		}
	}
}

// expandTile decodes an 8x8 two-bitplane tile at patternBase +
// tileIndex*16 into a renderer.Tile, resolving each pixel's 2 pattern
// bits plus the given palette group offset against palette RAM at
// paletteBase. A transparent (pattern-bits-zero) pixel has its
// opaqueness bit left clear.
func (p *PPU) expandTile(patternBase uint16, tileIndex uint8, paletteGroup, paletteBase uint16, flipH, flipV bool) renderer.Tile {
	var tile renderer.Tile
	addr := patternBase + uint16(tileIndex)*16

	for y := 0; y < 8; y++ {
		srcY := y
		if flipV {
			srcY = 7 - y
		}
		lo := p.bus.ReadVideoMem(addr + uint16(srcY))
		hi := p.bus.ReadVideoMem(addr + uint16(srcY) + 8)

		for x := 0; x < 8; x++ {
			bitPos := uint(7 - x)
			if flipH {
				bitPos = uint(x)
			}
			patternBits := ((hi>>bitPos)&1)<<1 | (lo>>bitPos)&1

			colorAddr := paletteBase + paletteGroup + uint16(patternBits)
			sys := p.bus.ReadVideoMem(colorAddr) & 0x3F
			if patternBits != 0 {
				sys |= 0x80
			}
			tile[y*8+x] = sys
		}
	}

	return tile
}
