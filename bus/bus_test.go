package bus

import (
	"testing"

	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/timing"
)

func newTestCart(t *testing.T, mirror cartridge.Mirroring) *cartridge.Cartridge {
	t.Helper()
	prg := make([]byte, 16384)
	// No CHR-ROM bank: the mapper backs the pattern tables with CHR-RAM.
	c, err := cartridge.New([][]byte{prg}, nil, mirror, 0)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	return c
}

func newTestBus(t *testing.T, mirror cartridge.Mirroring) *Bus {
	t.Helper()
	b := New(timing.NTSC, nil)
	b.InjectCartridge(newTestCart(t, mirror))
	return b
}

func TestRAMMirrors(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	b.Write(0x0042, 0x99)

	for _, k := range []uint16{1, 2, 3} {
		addr := 0x0042 + k*0x0800
		if got := b.Read(addr); got != 0x99 {
			t.Errorf("Read($%04X) = %#02x, want 0x99 (RAM mirror of $0042)", addr, got)
		}
	}
}

func TestPPURegisterMirrorsEvery8Bytes(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	// CONTROL1 ($2000) is write-only; writing through the mirror at
	// $2008 must hit the same register as $2000.
	b.Write(0x2008, 0x80)

	b.WriteVideoMem(0, 0) // no-op, just exercises video path existence
	if b.ppu.Snapshot().NMIEnabled != true {
		t.Errorf("mirrored write to $2008 did not set NMI enable via CONTROL1")
	}
}

func TestPaletteMirrorBoundaryScenario(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	b.WriteVideoMem(0x3F10, 0x3F)

	if got := b.ReadVideoMem(0x3F00); got != 0x3F {
		t.Errorf("ReadVideoMem($3F00) = %#02x, want 0x3F (aliased from $3F10)", got)
	}
}

func TestNametableMirroringHorizontal(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	b.WriteVideoMem(0x2000, 0x11)
	// Horizontal mirroring: $2000 and $2400 are the same physical table.
	if got := b.ReadVideoMem(0x2400); got != 0x11 {
		t.Errorf("ReadVideoMem($2400) = %#02x, want 0x11 under horizontal mirroring", got)
	}
	if got := b.ReadVideoMem(0x2800); got == 0x11 {
		t.Errorf("ReadVideoMem($2800) should be the other physical table under horizontal mirroring")
	}
}

func TestNametableMirroringVertical(t *testing.T) {
	b := newTestBus(t, cartridge.Vertical)
	b.WriteVideoMem(0x2000, 0x22)
	// Vertical mirroring: $2000 and $2800 are the same physical table.
	if got := b.ReadVideoMem(0x2800); got != 0x22 {
		t.Errorf("ReadVideoMem($2800) = %#02x, want 0x22 under vertical mirroring", got)
	}
}

func TestNametableMirrorRegion(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	b.WriteVideoMem(0x2000, 0x33)
	if got := b.ReadVideoMem(0x3000); got != 0x33 {
		t.Errorf("ReadVideoMem($3000) = %#02x, want 0x33 ($3000-$3EFF mirrors $2000-$2EFF)", got)
	}
}

func TestCHRRAMReadWrite(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	b.WriteVideoMem(0x0010, 0x55)
	if got := b.ReadVideoMem(0x0010); got != 0x55 {
		t.Errorf("ReadVideoMem($0010) = %#02x, want 0x55", got)
	}
}

func TestOAMReadWrite(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	b.WriteSpriteMem(0x20, 0xAA)
	if got := b.ReadSpriteMem(0x20); got != 0xAA {
		t.Errorf("ReadSpriteMem(0x20) = %#02x, want 0xAA", got)
	}
}

func TestGenerateNMITriggersCPU(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	b.Reset()
	b.GenerateNMI()
	if got := b.cpu.NMICount(); got != 0 {
		// NMI is only serviced on the next Run(), not immediately.
		t.Errorf("NMICount() = %d before any Run(), want 0 (pending, not yet serviced)", got)
	}
	b.cpu.Run(10)
	if got := b.cpu.NMICount(); got != 1 {
		t.Errorf("NMICount() after Run() = %d, want 1", got)
	}
}

func TestCartRAMWriteIsSilentlyIgnoredWithoutCartRAM(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	b.Write(0x6000, 0x42)
	if got := b.Read(0x6000); got != 0 {
		t.Errorf("Read($6000) = %#02x, want 0 (NROM has no cart RAM)", got)
	}
}

func TestMapperROMWriteIsSilentNoOp(t *testing.T) {
	b := newTestBus(t, cartridge.Horizontal)
	before := b.Read(0x8000)
	b.Write(0x8000, 0xFF)
	if got := b.Read(0x8000); got != before {
		t.Errorf("Read($8000) changed after write, want silent no-op (before=%#02x after=%#02x)", before, got)
	}
}
