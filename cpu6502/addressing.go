package cpu6502

// Mode identifies a 6502 addressing mode.
type Mode uint8

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

func pageCrossed(a, b uint16) bool { return a&0xFF00 != b&0xFF00 }

// operandAddr resolves the effective address for mode, reading operand
// bytes starting at the current PC without advancing it -- step()
// advances PC past the operand afterward, once it knows the handler
// didn't itself redirect control flow (a branch, JMP, JSR, RTS, RTI).
//
// ABS,X / ABS,Y / (IND),Y add a page-cross penalty cycle uniformly,
// whether the instruction reads or writes; real hardware only pays it
// unconditionally for writes, but sub-instruction cycle accuracy isn't
// a goal here.
func (c *CPU) operandAddr(mode Mode) uint16 {
	switch mode {
	case Immediate:
		return c.PC
	case ZeroPage:
		return uint16(c.read(c.PC))
	case ZeroPageX:
		return uint16(c.read(c.PC) + c.X)
	case ZeroPageY:
		return uint16(c.read(c.PC) + c.Y)
	case Absolute:
		return c.read16(c.PC)
	case AbsoluteX:
		base := c.read16(c.PC)
		addr := base + uint16(c.X)
		if pageCrossed(base, addr) {
			c.penalty++
		}
		return addr
	case AbsoluteY:
		base := c.read16(c.PC)
		addr := base + uint16(c.Y)
		if pageCrossed(base, addr) {
			c.penalty++
		}
		return addr
	case Indirect:
		ptr := c.read16(c.PC)
		return c.read16Bugged(ptr)
	case IndirectX:
		zp := c.read(c.PC) + c.X
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		return hi<<8 | lo
	case IndirectY:
		zp := c.read(c.PC)
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		if pageCrossed(base, addr) {
			c.penalty++
		}
		return addr
	case Relative:
		off := int8(c.read(c.PC))
		return c.PC + 1 + uint16(off)
	default:
		panic("cpu6502: operandAddr called with a mode that has no operand address")
	}
}

// branch resolves the relative target unconditionally (to consume the
// operand byte the same way a taken branch would) and, if cond holds,
// redirects PC there and charges the taken (+1) and page-cross (+1)
// penalties.
func (c *CPU) branch(cond bool) {
	target := c.operandAddr(Relative)
	if !cond {
		return
	}
	next := c.PC + 1 // address following the full 2-byte branch instruction
	c.penalty++
	if pageCrossed(next, target) {
		c.penalty++
	}
	c.PC = target
}
