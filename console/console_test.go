package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bdwalton/gintendo/cpu6502"
	"github.com/bdwalton/gintendo/renderer"
	"github.com/bdwalton/gintendo/timing"
)

const (
	prgBankSize = 16384
	chrBankSize = 8192
)

// writeTestROM builds a single-PRG-bank, single-CHR-bank iNES file
// whose reset vector ($FFFC/D, which aliases $3FFC/D within the bank
// since there's only one PRG window) points at $8000, and whose PRG
// bank is prefilled with fill before that vector is stamped in.
func writeTestROM(t *testing.T, fill byte) string {
	t.Helper()

	h := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := bytes.Repeat([]byte{fill}, prgBankSize)
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	chr := make([]byte, chrBankSize)

	data := append(append(append([]byte{}, h...), prg...), chr...)

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadROMAndRunFrameAdvancesCycles(t *testing.T) {
	path := writeTestROM(t, 0xEA) // NOP forever

	c := New(timing.NTSC, renderer.Null{}, nil)
	if err := c.LoadROM(path); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}

	spent := c.RunFrame()
	if spent <= 0 {
		t.Errorf("RunFrame() spent %d cycles, want > 0", spent)
	}
	if spent > timing.NTSC.CyclesPerFrame() {
		t.Errorf("RunFrame() spent %d cycles, want <= %d", spent, timing.NTSC.CyclesPerFrame())
	}
	if c.CPU().State() != cpu6502.Running {
		t.Errorf("CPU state = %v, want Running (NOPs never halt)", c.CPU().State())
	}
}

func TestRunStopsWhenCPUHalts(t *testing.T) {
	path := writeTestROM(t, 0x00) // BRK forever

	c := New(timing.NTSC, renderer.Null{}, nil)
	if err := c.LoadROM(path); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c.Run(ctx)

	if c.CPU().State() != cpu6502.Halted {
		t.Errorf("CPU state = %v, want Halted after a BRK-only ROM", c.CPU().State())
	}
}

func TestRunRespectsContextCancellation(t *testing.T) {
	path := writeTestROM(t, 0xEA) // NOP forever, never halts on its own

	c := New(timing.NTSC, renderer.Null{}, nil)
	if err := c.LoadROM(path); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestSetCyclesPerFrameOverridesBudget(t *testing.T) {
	path := writeTestROM(t, 0xEA) // NOP forever

	c := New(timing.NTSC, renderer.Null{}, nil)
	if err := c.LoadROM(path); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	c.SetCyclesPerFrame(4)

	if spent := c.RunFrame(); spent > 4 {
		t.Errorf("RunFrame() spent %d cycles, want <= 4 (overridden budget)", spent)
	}
}

func TestResetReloadsVectorWithoutReloadingROM(t *testing.T) {
	path := writeTestROM(t, 0xEA)

	c := New(timing.NTSC, renderer.Null{}, nil)
	if err := c.LoadROM(path); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	c.RunFrame()
	c.Reset()

	if got := c.CPU().Snapshot().PC; got != 0x8000 {
		t.Errorf("PC after Reset = %#04x, want $8000", got)
	}
}
