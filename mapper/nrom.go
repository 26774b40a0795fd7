package mapper

import (
	"github.com/bdwalton/gintendo/internal/neserr"
)

const (
	id0           = 0
	prgBankSize   = 16384
	chrBankSize   = 8192
	prgWindowMask = prgBankSize - 1
)

func init() {
	Register(id0, newNROM)
}

// nrom is "DefaultMapper": mapper 0, the simplest NES cartridge wiring.
// $8000-$BFFF maps to the first PRG bank, $C000-$FFFF to the last (the
// same bank, if there's only one); there's no bank switching and no
// cartridge RAM.
type nrom struct {
	prg         [][]byte // one or two 16KiB banks
	chr         []byte   // 8KiB pattern table data
	chrWritable bool     // true when the cart has CHR-RAM (no CHR-ROM in the header)
}

func newNROM(prgBanks [][]byte, chrBank []byte) (Mapper, error) {
	if len(prgBanks) == 0 {
		return nil, neserr.New(neserr.IllegalArgument, "NROM requires at least one PRG-ROM bank")
	}
	for i, b := range prgBanks {
		if len(b) != prgBankSize {
			return nil, neserr.Newf(neserr.IllegalArgument, "PRG bank %d is %d bytes, want %d", i, len(b), prgBankSize)
		}
	}

	m := &nrom{prg: prgBanks}
	if len(chrBank) == 0 {
		m.chr = make([]byte, chrBankSize)
		m.chrWritable = true
	} else {
		if len(chrBank) != chrBankSize {
			return nil, neserr.Newf(neserr.IllegalArgument, "CHR bank is %d bytes, want %d", len(chrBank), chrBankSize)
		}
		m.chr = chrBank
	}

	return m, nil
}

func (m *nrom) ID() uint8    { return id0 }
func (m *nrom) Name() string { return "NROM" }

func (m *nrom) ReadROM(addr uint16) (uint8, error) {
	if addr < 0x8000 {
		return 0, neserr.Newf(neserr.IllegalArgument, "ReadROM: address $%04X is below $8000", addr)
	}

	bank := 0
	if addr >= 0xC000 {
		bank = len(m.prg) - 1
	}
	return m.prg[bank][addr&prgWindowMask], nil
}

func (m *nrom) ReadVROM(addr uint16) (uint8, error) {
	if addr > 0x1FFF {
		return 0, neserr.Newf(neserr.IllegalArgument, "ReadVROM: address $%04X is above $1FFF", addr)
	}
	return m.chr[addr], nil
}

func (m *nrom) WriteVROM(addr uint16, val uint8) error {
	if addr > 0x1FFF {
		return neserr.Newf(neserr.IllegalArgument, "WriteVROM: address $%04X is above $1FFF", addr)
	}
	if m.chrWritable {
		m.chr[addr] = val
	}
	// Writes to real CHR-ROM don't latch anything; NROM has no bank
	// control to drive with them.
	return nil
}

func (m *nrom) ReadRAM(addr uint16) (uint8, error) {
	return 0, neserr.Newf(neserr.IllegalOperation, "NROM has no cartridge RAM (read $%04X)", addr)
}

func (m *nrom) WriteRAM(addr uint16, val uint8) error {
	return neserr.Newf(neserr.IllegalOperation, "NROM has no cartridge RAM (write $%04X)", addr)
}

func (m *nrom) Flash(addr uint16, data []byte) error {
	if addr != 0x8000 && addr != 0xC000 {
		return neserr.Newf(neserr.IllegalArgument, "Flash: address $%04X is not $8000 or $C000", addr)
	}

	bank := 0
	if addr == 0xC000 {
		bank = len(m.prg) - 1
	}
	dst := m.prg[bank]

	if len(data) <= len(dst) {
		copy(dst, data)
		return nil
	}

	if addr != 0x8000 {
		return neserr.Newf(neserr.SizeOverflow, "Flash: %d bytes at $%04X exceeds the %d byte window", len(data), addr, len(dst))
	}

	// The payload spans both PRG windows: fill $8000-$BFFF and
	// recurse the remainder into $C000-$FFFF.
	copy(dst, data[:len(dst)])
	return m.Flash(0xC000, data[len(dst):])
}
