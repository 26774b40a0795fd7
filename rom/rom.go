// Package rom parses the iNES ROM format into a cartridge.Cartridge.
// Grounded in the teacher's nesrom.New (bdwalton-gintendo's
// nesrom/nesrom.go), consolidating what that repo had spread across
// three near-duplicate generations (nesrom, ines, nesformat) into one
// loader on top of the cartridge/mapper split.
package rom

import (
	"fmt"
	"io"
	"os"

	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/internal/neserr"
)

const (
	trainerSize = 512
	prgBankSize = 16384
	chrBankSize = 8192
)

func errIllegalArgument(format string, args ...any) error {
	return neserr.Newf(neserr.IllegalArgument, format, args...)
}

// Load reads and parses the iNES file at path.
func Load(path string) (*cartridge.Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errIllegalArgument("couldn't open ROM file %q: %v", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse reads an iNES image from r and builds a Cartridge from it.
func Parse(r io.Reader) (*cartridge.Cartridge, error) {
	var hb [headerSize]byte
	if _, err := io.ReadFull(r, hb[:]); err != nil {
		return nil, errIllegalArgument("couldn't read 16-byte iNES header: %v", err)
	}

	h, err := parseHeader(hb)
	if err != nil {
		return nil, err
	}

	if h.prgBanks == 0 {
		return nil, errIllegalArgument("ROM declares zero PRG-ROM banks")
	}

	if h.hasTrainer() {
		trainer := make([]byte, trainerSize)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, errIllegalArgument("couldn't read %d-byte trainer: %v", trainerSize, err)
		}
	}

	prgBanks := make([][]byte, h.prgBanks)
	for i := range prgBanks {
		b := make([]byte, prgBankSize)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, errIllegalArgument("couldn't read PRG-ROM bank %d: %v", i, err)
		}
		prgBanks[i] = b
	}

	var chrBank []byte
	if h.chrBanks > 0 {
		// This core renders from a single 8KiB pattern-table space;
		// a ROM with more than one CHR bank would need a mapper with
		// CHR bank-switching, which is out of scope (mapper 0 only),
		// so only the first bank is read and the remainder is
		// consumed to keep the stream positioned correctly for any
		// trailer data a caller might read afterward.
		chrBank = make([]byte, chrBankSize)
		if _, err := io.ReadFull(r, chrBank); err != nil {
			return nil, errIllegalArgument("couldn't read CHR-ROM bank 0: %v", err)
		}
		for i := 1; i < int(h.chrBanks); i++ {
			if _, err := io.CopyN(io.Discard, r, chrBankSize); err != nil {
				return nil, errIllegalArgument("couldn't skip CHR-ROM bank %d: %v", i, err)
			}
		}
	}

	cart, err := cartridge.New(prgBanks, chrBank, h.mirroring(), h.mapperNumber())
	if err != nil {
		return nil, err
	}
	return cart, nil
}
