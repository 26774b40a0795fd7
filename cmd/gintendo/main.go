// Command gintendo is the reference CLI driver: it loads an iNES ROM,
// wires glog and an ebiten window, and runs the emulator until the
// window closes.
//
// Grounded in the teacher's root gintendo.go, with the ebiten.Game
// role moved from the bus into internal/render/ebitenbackend and the
// driving goroutine folded into ebiten's own Update callback instead
// of a separate goroutine racing ebiten.RunGame's, since
// ebitenbackend.Game.Update already calls Console.RunFrame once per
// ebiten tick.
package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bdwalton/gintendo/console"
	"github.com/bdwalton/gintendo/internal/nlog/glogadapter"
	"github.com/bdwalton/gintendo/internal/render/ebitenbackend"
	"github.com/bdwalton/gintendo/timing"

	"github.com/golang/glog"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")
	clk     = flag.Int("clk", 0, "CPU cycle budget per frame; 0 uses the mode's default.")
	mode    = flag.String("mode", "ntsc", "Timing mode: ntsc or pal.")
)

func parseMode() timing.Mode {
	if *mode == "pal" {
		return timing.PAL
	}
	return timing.NTSC
}

func main() {
	flag.Parse()
	defer glog.Flush()

	logger := glogadapter.New()
	backend := ebitenbackend.New()
	cons := console.New(parseMode(), backend, logger)

	if *romFile == "" {
		glog.Fatalf("-nes_rom is required")
	}
	if err := cons.LoadROM(*romFile); err != nil {
		glog.Fatalf("invalid ROM: %v", err)
	}
	if *clk > 0 {
		cons.SetCyclesPerFrame(*clk)
	}

	ebiten.SetWindowSize(512, 480)
	ebiten.SetWindowTitle("Gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(ebitenbackend.NewGame(cons, backend)); err != nil {
		glog.Fatalf("%v", err)
	}
}
