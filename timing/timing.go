// Package timing carries the NTSC/PAL distinction shared by the bus,
// the PPU and the host-facing console driver, so that none of them has
// to import the others just to agree on which region they're emulating.
package timing

// Mode selects a video timing standard.
type Mode uint8

const (
	NTSC Mode = iota
	PAL
)

func (m Mode) String() string {
	if m == PAL {
		return "PAL"
	}
	return "NTSC"
}

// CPU cycles available per rendered frame. These aren't stated in the
// sources this core was distilled from; they're the conventional NES
// figures (NTSC: 1.789773MHz / 60.0988Hz, PAL: 1.662607MHz / 50.007Hz).
const (
	CyclesPerFrameNTSC = 29780
	CyclesPerFramePAL  = 33247
)

// CyclesPerFrame returns the CPU cycle budget a host should hand to
// CPU6502.Run once per frame in this mode.
func (m Mode) CyclesPerFrame() int {
	if m == PAL {
		return CyclesPerFramePAL
	}
	return CyclesPerFrameNTSC
}

// SkipTopBottomRows reports whether the PPU should skip the first and
// last rows of the 32x30 background tile grid while rendering. NTSC
// NES display crops those rows on a real television; PAL sets have a
// taller visible picture and don't, per the convention this core
// adopts (the sources are silent on PAL row skipping).
func (m Mode) SkipTopBottomRows() bool {
	return m == NTSC
}
