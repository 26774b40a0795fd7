package cartridge

import (
	"testing"

	"github.com/bdwalton/gintendo/internal/neserr"
)

func prgBank(fill byte) []byte {
	b := make([]byte, 16384)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestNewSelectsRegisteredMapper(t *testing.T) {
	c, err := New([][]byte{prgBank(0xAB)}, nil, Vertical, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Mirroring() != Vertical {
		t.Errorf("Mirroring() = %v, want Vertical", c.Mirroring())
	}
	if c.MapperName() != "NROM" {
		t.Errorf("MapperName() = %q, want NROM", c.MapperName())
	}
	if v, err := c.ReadROM(0x8000); err != nil || v != 0xAB {
		t.Errorf("ReadROM($8000) = (%#02x, %v), want (0xAB, nil)", v, err)
	}
}

func TestNewUnsupportedMapper(t *testing.T) {
	if _, err := New([][]byte{prgBank(0)}, nil, Horizontal, 255); !neserr.Is(err, neserr.UnsupportedMapper) {
		t.Errorf("New with mapper 255 error = %v, want UnsupportedMapper", err)
	}
}

func TestMirroringString(t *testing.T) {
	if Horizontal.String() != "horizontal" {
		t.Errorf("Horizontal.String() = %q", Horizontal.String())
	}
	if Vertical.String() != "vertical" {
		t.Errorf("Vertical.String() = %q", Vertical.String())
	}
}
