// Package mapper implements the cartridge-side address translation
// that decides how CPU and PPU addresses select ROM/RAM banks. It
// keeps the teacher's registry shape (mappers.RegisterMapper/Get in
// bdwalton-gintendo's mappers/mapper_basics.go) so new mapper numbers
// can be added by registering a Factory at init time, without
// touching the cartridge or ROM loader.
package mapper

import (
	"fmt"

	"github.com/bdwalton/gintendo/internal/neserr"
)

// Mapper translates CPU addresses $8000-$FFFF to PRG-ROM bytes and PPU
// addresses $0000-$1FFF to CHR bytes, and owns the banks backing both.
type Mapper interface {
	ID() uint8
	Name() string

	// ReadROM reads a PRG-ROM byte at a CPU address in $8000-$FFFF.
	// Addresses below $8000 are IllegalArgument.
	ReadROM(addr uint16) (uint8, error)

	// ReadVROM/WriteVROM access the CHR pattern tables at a PPU
	// address in $0000-$1FFF.
	ReadVROM(addr uint16) (uint8, error)
	WriteVROM(addr uint16, val uint8) error

	// ReadRAM/WriteRAM access cartridge RAM at $6000-$7FFF, if the
	// mapper has any. Mappers without cart RAM return IllegalOperation.
	ReadRAM(addr uint16) (uint8, error)
	WriteRAM(addr uint16, val uint8) error

	// Flash writes data directly into the PRG-ROM banks starting at
	// addr, which must be $8000 or $C000. A span crossing $C000 is
	// split across both PRG windows; a span that doesn't fit even
	// after splitting is SizeOverflow.
	Flash(addr uint16, data []byte) error
}

// Factory constructs a Mapper from the PRG-ROM bank list (1 or 2 16KiB
// banks) and the CHR bank (8KiB, possibly absent -- nil/empty means
// CHR-RAM).
type Factory func(prgBanks [][]byte, chrBank []byte) (Mapper, error)

var registry = map[uint8]Factory{}

// Register adds a Factory for the given iNES mapper number. It panics
// on a duplicate id, mirroring the teacher's RegisterMapper.
func Register(id uint8, f Factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mapper id %d already registered", id))
	}
	registry[id] = f
}

// Get builds the Mapper registered for id, or an UnsupportedMapper
// error if nothing is registered there.
func Get(id uint8, prgBanks [][]byte, chrBank []byte) (Mapper, error) {
	f, ok := registry[id]
	if !ok {
		return nil, neserr.Newf(neserr.UnsupportedMapper, "mapper %d is not implemented", id)
	}
	return f(prgBanks, chrBank)
}
