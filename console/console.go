// Package console is the host-facing session driver: it wires a Bus,
// CPU, and PPU together, loads a ROM into them, and drives the
// run-a-frame/render-a-frame loop a caller (the CLI, a test, a future
// debugger) repeats.
//
// Grounded in the teacher's console.machine (bdwalton-gintendo's
// console/machine.go), which played the same role for mos6502/ppu --
// constructed both, wired WritePPU/ReadPPU between them, and exposed a
// BIOS() REPL loop. The REPL is dropped (see DESIGN.md); RunFrame/Run
// replace it with the plain per-frame tick the spec calls for.
package console

import (
	"context"

	"github.com/bdwalton/gintendo/bus"
	"github.com/bdwalton/gintendo/cpu6502"
	"github.com/bdwalton/gintendo/internal/nlog"
	"github.com/bdwalton/gintendo/ppu"
	"github.com/bdwalton/gintendo/renderer"
	"github.com/bdwalton/gintendo/rom"
	"github.com/bdwalton/gintendo/timing"
)

// Console owns a wired Bus/CPU/PPU and drives them one frame at a
// time. It holds no cartridge of its own; LoadROM installs one on the
// Bus.
type Console struct {
	bus     *bus.Bus
	backend renderer.Backend
	logger  nlog.Logger

	// cyclesOverride, when nonzero, replaces the timing mode's default
	// per-frame CPU cycle budget.
	cyclesOverride int
}

// New constructs a Console in the given timing mode, rendering into
// backend and logging through logger. logger may be nil (a no-op
// logger is used); backend may be renderer.Null{} for headless runs.
func New(mode timing.Mode, backend renderer.Backend, logger nlog.Logger) *Console {
	if logger == nil {
		logger = nlog.NoOp()
	}
	if backend == nil {
		backend = renderer.Null{}
	}
	return &Console{
		bus:     bus.New(mode, logger),
		backend: backend,
		logger:  logger,
	}
}

// LoadROM parses the iNES file at path and installs it as the active
// cartridge, then resets the CPU/PPU so the ROM starts from its reset
// vector.
func (c *Console) LoadROM(path string) error {
	cart, err := rom.Load(path)
	if err != nil {
		return err
	}
	c.bus.InjectCartridge(cart)
	c.bus.Reset()
	c.logger.Infof("loaded ROM %q (mapper %s, mirroring %s)", path, cart.MapperName(), cart.Mirroring())
	return nil
}

// Reset re-initializes the CPU and PPU without reloading the
// cartridge.
func (c *Console) Reset() { c.bus.Reset() }

// SetCyclesPerFrame overrides the timing mode's default per-frame CPU
// cycle budget (0 restores the mode's default). Grounded in the
// CLI's -clk flag, which lets a caller run a nonstandard budget for
// testing or a slow-motion debug session.
func (c *Console) SetCyclesPerFrame(n int) { c.cyclesOverride = n }

func (c *Console) cyclesPerFrame() int {
	if c.cyclesOverride > 0 {
		return c.cyclesOverride
	}
	return c.bus.Mode().CyclesPerFrame()
}

// CPU exposes the CPU's introspection surface (state, registers, NMI
// and RTI counters) per the spec's debugger-facing outputs.
func (c *Console) CPU() *cpu6502.CPU { return c.bus.CPU() }

// PPU exposes the PPU's introspection surface (active page, pattern
// bases, scroll, visibility flags).
func (c *Console) PPU() *ppu.PPU { return c.bus.PPU() }

// RunFrame executes one CPU6502.Run(cyclesPerFrame) followed by one
// PPU.Update(), the per-frame tick order the spec requires: CPU writes
// to $2000-$3FFF within the slice become visible to the PPU's own
// build-the-frame pass immediately after, and any NMI the PPU raises
// during Update is serviced by the CPU at the start of next frame's
// Run.
func (c *Console) RunFrame() int {
	spent := c.bus.CPU().Run(c.cyclesPerFrame())
	c.bus.PPU().Update(c.backend)
	return spent
}

// Run calls RunFrame in a loop until ctx is cancelled or the CPU
// leaves the Running state (halted by BRK, or Errored by an illegal
// opcode). It checks ctx between frames only -- RunFrame itself never
// blocks on a channel or context, matching the spec's single-threaded
// cooperative scheduling model.
func (c *Console) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		c.RunFrame()
		if c.bus.CPU().State() != cpu6502.Running {
			return
		}
	}
}
