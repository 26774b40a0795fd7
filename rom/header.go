package rom

import "github.com/bdwalton/gintendo/cartridge"

const headerSize = 16

var magic = [4]byte{'N', 'E', 'S', 0x1A}

// flags6 bit identifiers, from the iNES header.
const (
	flag6Mirroring = 0x01 // 0: horizontal, 1: vertical
	flag6Battery   = 0x02
	flag6Trainer   = 0x04
	flag6FourScr   = 0x08
)

type header struct {
	prgBanks uint8 // count of 16KiB PRG-ROM banks
	chrBanks uint8 // count of 8KiB CHR-ROM banks
	flags6   uint8
	flags7   uint8
}

func parseHeader(b [headerSize]byte) (header, error) {
	if b[0] != magic[0] || b[1] != magic[1] || b[2] != magic[2] || b[3] != magic[3] {
		return header{}, errIllegalArgument("not an iNES file: bad magic bytes %v", b[0:4])
	}
	return header{
		prgBanks: b[4],
		chrBanks: b[5],
		flags6:   b[6],
		flags7:   b[7],
	}, nil
}

func (h header) hasTrainer() bool { return h.flags6&flag6Trainer != 0 }

// mirroring reads the header's mirroring bit. Four-screen VRAM (the
// other flags6 bit) isn't supported by any mapper this core registers.
func (h header) mirroring() cartridge.Mirroring {
	if h.flags6&flag6Mirroring != 0 {
		return cartridge.Vertical
	}
	return cartridge.Horizontal
}

// mapperNumber reads the 4-bit mapper number from the upper nibble of
// flags6. The upper nibble of flags7 (the high nibble of the mapper
// number in later iNES revisions) and NES 2.0's extra mapper bits are
// not read. Any value other than 0 surfaces as UnsupportedMapper.
func (h header) mapperNumber() uint8 {
	return h.flags6 >> 4
}
