package mapper

import (
	"testing"

	"github.com/bdwalton/gintendo/internal/neserr"
)

func bank(fill byte) []byte {
	b := make([]byte, prgBankSize)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestNROMSingleBankMirrorsBothWindows(t *testing.T) {
	m, err := newNROM([][]byte{bank(0x42)}, nil)
	if err != nil {
		t.Fatalf("newNROM: %v", err)
	}

	lo, err := m.ReadROM(0x8000)
	if err != nil || lo != 0x42 {
		t.Errorf("ReadROM($8000) = (%#02x, %v), want (0x42, nil)", lo, err)
	}
	hi, err := m.ReadROM(0xC000)
	if err != nil || hi != 0x42 {
		t.Errorf("ReadROM($C000) = (%#02x, %v), want (0x42, nil)", hi, err)
	}
}

func TestNROMTwoBanksDistinct(t *testing.T) {
	m, err := newNROM([][]byte{bank(0x11), bank(0x22)}, nil)
	if err != nil {
		t.Fatalf("newNROM: %v", err)
	}

	if v, _ := m.ReadROM(0x8000); v != 0x11 {
		t.Errorf("ReadROM($8000) = %#02x, want 0x11", v)
	}
	if v, _ := m.ReadROM(0xC000); v != 0x22 {
		t.Errorf("ReadROM($C000) = %#02x, want 0x22", v)
	}
}

func TestNROMReadROMBelow8000IsIllegalArgument(t *testing.T) {
	m, _ := newNROM([][]byte{bank(0)}, nil)
	if _, err := m.ReadROM(0x1000); !neserr.Is(err, neserr.IllegalArgument) {
		t.Errorf("ReadROM($1000) error = %v, want IllegalArgument", err)
	}
}

func TestNROMRAMIsIllegalOperation(t *testing.T) {
	m, _ := newNROM([][]byte{bank(0)}, nil)
	if _, err := m.ReadRAM(0x6000); !neserr.Is(err, neserr.IllegalOperation) {
		t.Errorf("ReadRAM error = %v, want IllegalOperation", err)
	}
	if err := m.WriteRAM(0x6000, 1); !neserr.Is(err, neserr.IllegalOperation) {
		t.Errorf("WriteRAM error = %v, want IllegalOperation", err)
	}
}

func TestNROMChrRAMWhenNoChrBank(t *testing.T) {
	m, _ := newNROM([][]byte{bank(0)}, nil)
	if err := m.WriteVROM(0x0010, 0x99); err != nil {
		t.Fatalf("WriteVROM: %v", err)
	}
	if v, _ := m.ReadVROM(0x0010); v != 0x99 {
		t.Errorf("ReadVROM($0010) = %#02x, want 0x99", v)
	}
}

func TestNROMChrROMWritesAreNoOps(t *testing.T) {
	chr := make([]byte, chrBankSize)
	chr[5] = 0x7

	m, _ := newNROM([][]byte{bank(0)}, chr)
	if err := m.WriteVROM(5, 0xFF); err != nil {
		t.Fatalf("WriteVROM: %v", err)
	}
	if v, _ := m.ReadVROM(5); v != 0x7 {
		t.Errorf("ReadVROM(5) = %#02x, want 0x7 (write should be a no-op)", v)
	}
}

func TestFlashSingleWindow(t *testing.T) {
	m, _ := newNROM([][]byte{bank(0), bank(0)}, nil)
	payload := []byte{1, 2, 3, 4}

	if err := m.Flash(0x8000, payload); err != nil {
		t.Fatalf("Flash: %v", err)
	}
	for i, want := range payload {
		if v, _ := m.ReadROM(0x8000 + uint16(i)); v != want {
			t.Errorf("ReadROM($%04X) = %#02x, want %#02x", 0x8000+i, v, want)
		}
	}
	// The $C000 window should be untouched.
	if v, _ := m.ReadROM(0xC000); v != 0 {
		t.Errorf("ReadROM($C000) = %#02x, want 0 (untouched)", v)
	}
}

func TestFlashSplitsAcrossC000(t *testing.T) {
	m, _ := newNROM([][]byte{bank(0), bank(0)}, nil)
	payload := make([]byte, prgBankSize+3)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	if err := m.Flash(0x8000, payload); err != nil {
		t.Fatalf("Flash: %v", err)
	}
	for i := 0; i < prgBankSize; i++ {
		if v, _ := m.ReadROM(0x8000 + uint16(i)); v != payload[i] {
			t.Fatalf("ReadROM($%04X) = %#02x, want %#02x", 0x8000+i, v, payload[i])
		}
	}
	for i := 0; i < 3; i++ {
		if v, _ := m.ReadROM(0xC000 + uint16(i)); v != payload[prgBankSize+i] {
			t.Fatalf("ReadROM($%04X) = %#02x, want %#02x", 0xC000+i, v, payload[prgBankSize+i])
		}
	}
}

func TestFlashOversizeIsSizeOverflow(t *testing.T) {
	m, _ := newNROM([][]byte{bank(0)}, nil)
	payload := make([]byte, 2*prgBankSize+1)

	if err := m.Flash(0x8000, payload); !neserr.Is(err, neserr.SizeOverflow) {
		t.Errorf("Flash error = %v, want SizeOverflow", err)
	}
}

func TestFlashBadAddrIsIllegalArgument(t *testing.T) {
	m, _ := newNROM([][]byte{bank(0)}, nil)
	if err := m.Flash(0x9000, []byte{1}); !neserr.Is(err, neserr.IllegalArgument) {
		t.Errorf("Flash($9000) error = %v, want IllegalArgument", err)
	}
}

func TestGetUnsupportedMapper(t *testing.T) {
	if _, err := Get(99, [][]byte{bank(0)}, nil); !neserr.Is(err, neserr.UnsupportedMapper) {
		t.Errorf("Get(99) error = %v, want UnsupportedMapper", err)
	}
}

func TestGetRegisteredMapper(t *testing.T) {
	m, err := Get(0, [][]byte{bank(0)}, nil)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if m.Name() != "NROM" {
		t.Errorf("Name() = %q, want NROM", m.Name())
	}
}
