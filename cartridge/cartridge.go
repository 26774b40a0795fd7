// Package cartridge owns the immutable ROM data loaded from an iNES
// image -- PRG-ROM and CHR-ROM banks plus the nametable mirroring mode
// -- and the Mapper that knows how to translate addresses against
// them. Grounded in the teacher's nesrom.ROM (bdwalton-gintendo's
// nesrom/nesrom.go), but split so that mapper dispatch lives in the
// mapper package rather than being duplicated per-ROM-format as the
// teacher's nesrom/ines/nesformat trio did.
package cartridge

import (
	"github.com/bdwalton/gintendo/mapper"
)

// Mirroring selects how the two physical nametables are mapped across
// the four logical nametable slots $2000/$2400/$2800/$2C00.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
)

func (m Mirroring) String() string {
	if m == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cartridge is the loaded ROM image: immutable banks plus the mapper
// that knows how to read them. CPU and PPU never see this type
// directly -- the Bus is the only thing that holds one.
type Cartridge struct {
	mirror Mirroring
	mapper mapper.Mapper
}

// New builds a Cartridge from already-split PRG/CHR banks, selecting
// the mapper implementation registered for mapperID.
func New(prgBanks [][]byte, chrBank []byte, mirror Mirroring, mapperID uint8) (*Cartridge, error) {
	m, err := mapper.Get(mapperID, prgBanks, chrBank)
	if err != nil {
		return nil, err
	}
	return &Cartridge{mirror: mirror, mapper: m}, nil
}

func (c *Cartridge) Mirroring() Mirroring { return c.mirror }
func (c *Cartridge) MapperName() string   { return c.mapper.Name() }

// ReadROM reads a PRG-ROM byte for a CPU address in $8000-$FFFF.
func (c *Cartridge) ReadROM(addr uint16) (uint8, error) {
	return c.mapper.ReadROM(addr)
}

// ReadVROM/WriteVROM access the CHR pattern tables for a PPU address
// in $0000-$1FFF.
func (c *Cartridge) ReadVROM(addr uint16) (uint8, error) {
	return c.mapper.ReadVROM(addr)
}

func (c *Cartridge) WriteVROM(addr uint16, val uint8) error {
	return c.mapper.WriteVROM(addr, val)
}

// ReadRAM/WriteRAM access cartridge RAM at $6000-$7FFF, where present.
func (c *Cartridge) ReadRAM(addr uint16) (uint8, error) {
	return c.mapper.ReadRAM(addr)
}

func (c *Cartridge) WriteRAM(addr uint16, val uint8) error {
	return c.mapper.WriteRAM(addr, val)
}

// Flash writes raw bytes directly into the PRG-ROM banks; see
// mapper.Mapper.Flash.
func (c *Cartridge) Flash(addr uint16, data []byte) error {
	return c.mapper.Flash(addr, data)
}
