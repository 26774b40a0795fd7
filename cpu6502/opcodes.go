package cpu6502

type execFunc func(c *CPU, mode Mode)

type opEntry struct {
	name     string
	mode     Mode
	bytes    uint8
	cycles   uint8
	official bool
	exec     execFunc
}

var opcodeTable [256]opEntry

func set(op byte, name string, mode Mode, bytes, cycles uint8, official bool, fn execFunc) {
	opcodeTable[op] = opEntry{name: name, mode: mode, bytes: bytes, cycles: cycles, official: official, exec: fn}
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opEntry{name: "???", mode: Implied, bytes: 1, cycles: 2, official: false, exec: (*CPU).illegal}
	}

	set(0x69, "ADC", Immediate, 2, 2, true, (*CPU).ADC)
	set(0x65, "ADC", ZeroPage, 2, 3, true, (*CPU).ADC)
	set(0x75, "ADC", ZeroPageX, 2, 4, true, (*CPU).ADC)
	set(0x6D, "ADC", Absolute, 3, 4, true, (*CPU).ADC)
	set(0x7D, "ADC", AbsoluteX, 3, 4, true, (*CPU).ADC)
	set(0x79, "ADC", AbsoluteY, 3, 4, true, (*CPU).ADC)
	set(0x61, "ADC", IndirectX, 2, 6, true, (*CPU).ADC)
	set(0x71, "ADC", IndirectY, 2, 5, true, (*CPU).ADC)

	set(0x29, "AND", Immediate, 2, 2, true, (*CPU).AND)
	set(0x25, "AND", ZeroPage, 2, 3, true, (*CPU).AND)
	set(0x35, "AND", ZeroPageX, 2, 4, true, (*CPU).AND)
	set(0x2D, "AND", Absolute, 3, 4, true, (*CPU).AND)
	set(0x3D, "AND", AbsoluteX, 3, 4, true, (*CPU).AND)
	set(0x39, "AND", AbsoluteY, 3, 4, true, (*CPU).AND)
	set(0x21, "AND", IndirectX, 2, 6, true, (*CPU).AND)
	set(0x31, "AND", IndirectY, 2, 5, true, (*CPU).AND)

	set(0x0A, "ASL", Accumulator, 1, 2, true, (*CPU).ASL)
	set(0x06, "ASL", ZeroPage, 2, 5, true, (*CPU).ASL)
	set(0x16, "ASL", ZeroPageX, 2, 6, true, (*CPU).ASL)
	set(0x0E, "ASL", Absolute, 3, 6, true, (*CPU).ASL)
	set(0x1E, "ASL", AbsoluteX, 3, 7, true, (*CPU).ASL)

	set(0x90, "BCC", Relative, 2, 2, true, (*CPU).BCC)
	set(0xB0, "BCS", Relative, 2, 2, true, (*CPU).BCS)
	set(0xF0, "BEQ", Relative, 2, 2, true, (*CPU).BEQ)
	set(0x30, "BMI", Relative, 2, 2, true, (*CPU).BMI)
	set(0xD0, "BNE", Relative, 2, 2, true, (*CPU).BNE)
	set(0x10, "BPL", Relative, 2, 2, true, (*CPU).BPL)
	set(0x50, "BVC", Relative, 2, 2, true, (*CPU).BVC)
	set(0x70, "BVS", Relative, 2, 2, true, (*CPU).BVS)

	set(0x24, "BIT", ZeroPage, 2, 3, true, (*CPU).BIT)
	set(0x2C, "BIT", Absolute, 3, 4, true, (*CPU).BIT)

	set(0x00, "BRK", Implied, 1, 7, true, (*CPU).BRK)

	set(0x18, "CLC", Implied, 1, 2, true, (*CPU).CLC)
	set(0xD8, "CLD", Implied, 1, 2, true, (*CPU).CLD)
	set(0x58, "CLI", Implied, 1, 2, true, (*CPU).CLI)
	set(0xB8, "CLV", Implied, 1, 2, true, (*CPU).CLV)
	set(0x38, "SEC", Implied, 1, 2, true, (*CPU).SEC)
	set(0xF8, "SED", Implied, 1, 2, true, (*CPU).SED)
	set(0x78, "SEI", Implied, 1, 2, true, (*CPU).SEI)

	set(0xC9, "CMP", Immediate, 2, 2, true, (*CPU).CMP)
	set(0xC5, "CMP", ZeroPage, 2, 3, true, (*CPU).CMP)
	set(0xD5, "CMP", ZeroPageX, 2, 4, true, (*CPU).CMP)
	set(0xCD, "CMP", Absolute, 3, 4, true, (*CPU).CMP)
	set(0xDD, "CMP", AbsoluteX, 3, 4, true, (*CPU).CMP)
	set(0xD9, "CMP", AbsoluteY, 3, 4, true, (*CPU).CMP)
	set(0xC1, "CMP", IndirectX, 2, 6, true, (*CPU).CMP)
	set(0xD1, "CMP", IndirectY, 2, 5, true, (*CPU).CMP)

	set(0xE0, "CPX", Immediate, 2, 2, true, (*CPU).CPX)
	set(0xE4, "CPX", ZeroPage, 2, 3, true, (*CPU).CPX)
	set(0xEC, "CPX", Absolute, 3, 4, true, (*CPU).CPX)

	set(0xC0, "CPY", Immediate, 2, 2, true, (*CPU).CPY)
	set(0xC4, "CPY", ZeroPage, 2, 3, true, (*CPU).CPY)
	set(0xCC, "CPY", Absolute, 3, 4, true, (*CPU).CPY)

	set(0xC6, "DEC", ZeroPage, 2, 5, true, (*CPU).DEC)
	set(0xD6, "DEC", ZeroPageX, 2, 6, true, (*CPU).DEC)
	set(0xCE, "DEC", Absolute, 3, 6, true, (*CPU).DEC)
	set(0xDE, "DEC", AbsoluteX, 3, 7, true, (*CPU).DEC)

	set(0xE6, "INC", ZeroPage, 2, 5, true, (*CPU).INC)
	set(0xF6, "INC", ZeroPageX, 2, 6, true, (*CPU).INC)
	set(0xEE, "INC", Absolute, 3, 6, true, (*CPU).INC)
	set(0xFE, "INC", AbsoluteX, 3, 7, true, (*CPU).INC)

	set(0xCA, "DEX", Implied, 1, 2, true, (*CPU).DEX)
	set(0x88, "DEY", Implied, 1, 2, true, (*CPU).DEY)
	set(0xE8, "INX", Implied, 1, 2, true, (*CPU).INX)
	set(0xC8, "INY", Implied, 1, 2, true, (*CPU).INY)

	set(0x49, "EOR", Immediate, 2, 2, true, (*CPU).EOR)
	set(0x45, "EOR", ZeroPage, 2, 3, true, (*CPU).EOR)
	set(0x55, "EOR", ZeroPageX, 2, 4, true, (*CPU).EOR)
	set(0x4D, "EOR", Absolute, 3, 4, true, (*CPU).EOR)
	set(0x5D, "EOR", AbsoluteX, 3, 4, true, (*CPU).EOR)
	set(0x59, "EOR", AbsoluteY, 3, 4, true, (*CPU).EOR)
	set(0x41, "EOR", IndirectX, 2, 6, true, (*CPU).EOR)
	set(0x51, "EOR", IndirectY, 2, 5, true, (*CPU).EOR)

	set(0x09, "ORA", Immediate, 2, 2, true, (*CPU).ORA)
	set(0x05, "ORA", ZeroPage, 2, 3, true, (*CPU).ORA)
	set(0x15, "ORA", ZeroPageX, 2, 4, true, (*CPU).ORA)
	set(0x0D, "ORA", Absolute, 3, 4, true, (*CPU).ORA)
	set(0x1D, "ORA", AbsoluteX, 3, 4, true, (*CPU).ORA)
	set(0x19, "ORA", AbsoluteY, 3, 4, true, (*CPU).ORA)
	set(0x01, "ORA", IndirectX, 2, 6, true, (*CPU).ORA)
	set(0x11, "ORA", IndirectY, 2, 5, true, (*CPU).ORA)

	set(0x4C, "JMP", Absolute, 3, 3, true, (*CPU).JMP)
	set(0x6C, "JMP", Indirect, 3, 5, true, (*CPU).JMP)
	set(0x20, "JSR", Absolute, 3, 6, true, (*CPU).JSR)
	set(0x60, "RTS", Implied, 1, 6, true, (*CPU).RTS)
	set(0x40, "RTI", Implied, 1, 6, true, (*CPU).RTI)

	set(0xA9, "LDA", Immediate, 2, 2, true, (*CPU).LDA)
	set(0xA5, "LDA", ZeroPage, 2, 3, true, (*CPU).LDA)
	set(0xB5, "LDA", ZeroPageX, 2, 4, true, (*CPU).LDA)
	set(0xAD, "LDA", Absolute, 3, 4, true, (*CPU).LDA)
	set(0xBD, "LDA", AbsoluteX, 3, 4, true, (*CPU).LDA)
	set(0xB9, "LDA", AbsoluteY, 3, 4, true, (*CPU).LDA)
	set(0xA1, "LDA", IndirectX, 2, 6, true, (*CPU).LDA)
	set(0xB1, "LDA", IndirectY, 2, 5, true, (*CPU).LDA)

	set(0xA2, "LDX", Immediate, 2, 2, true, (*CPU).LDX)
	set(0xA6, "LDX", ZeroPage, 2, 3, true, (*CPU).LDX)
	set(0xB6, "LDX", ZeroPageY, 2, 4, true, (*CPU).LDX)
	set(0xAE, "LDX", Absolute, 3, 4, true, (*CPU).LDX)
	set(0xBE, "LDX", AbsoluteY, 3, 4, true, (*CPU).LDX)

	set(0xA0, "LDY", Immediate, 2, 2, true, (*CPU).LDY)
	set(0xA4, "LDY", ZeroPage, 2, 3, true, (*CPU).LDY)
	set(0xB4, "LDY", ZeroPageX, 2, 4, true, (*CPU).LDY)
	set(0xAC, "LDY", Absolute, 3, 4, true, (*CPU).LDY)
	set(0xBC, "LDY", AbsoluteX, 3, 4, true, (*CPU).LDY)

	set(0x4A, "LSR", Accumulator, 1, 2, true, (*CPU).LSR)
	set(0x46, "LSR", ZeroPage, 2, 5, true, (*CPU).LSR)
	set(0x56, "LSR", ZeroPageX, 2, 6, true, (*CPU).LSR)
	set(0x4E, "LSR", Absolute, 3, 6, true, (*CPU).LSR)
	set(0x5E, "LSR", AbsoluteX, 3, 7, true, (*CPU).LSR)

	set(0x2A, "ROL", Accumulator, 1, 2, true, (*CPU).ROL)
	set(0x26, "ROL", ZeroPage, 2, 5, true, (*CPU).ROL)
	set(0x36, "ROL", ZeroPageX, 2, 6, true, (*CPU).ROL)
	set(0x2E, "ROL", Absolute, 3, 6, true, (*CPU).ROL)
	set(0x3E, "ROL", AbsoluteX, 3, 7, true, (*CPU).ROL)

	set(0x6A, "ROR", Accumulator, 1, 2, true, (*CPU).ROR)
	set(0x66, "ROR", ZeroPage, 2, 5, true, (*CPU).ROR)
	set(0x76, "ROR", ZeroPageX, 2, 6, true, (*CPU).ROR)
	set(0x6E, "ROR", Absolute, 3, 6, true, (*CPU).ROR)
	set(0x7E, "ROR", AbsoluteX, 3, 7, true, (*CPU).ROR)

	set(0xE9, "SBC", Immediate, 2, 2, true, (*CPU).SBC)
	set(0xE5, "SBC", ZeroPage, 2, 3, true, (*CPU).SBC)
	set(0xF5, "SBC", ZeroPageX, 2, 4, true, (*CPU).SBC)
	set(0xED, "SBC", Absolute, 3, 4, true, (*CPU).SBC)
	set(0xFD, "SBC", AbsoluteX, 3, 4, true, (*CPU).SBC)
	set(0xF9, "SBC", AbsoluteY, 3, 4, true, (*CPU).SBC)
	set(0xE1, "SBC", IndirectX, 2, 6, true, (*CPU).SBC)
	set(0xF1, "SBC", IndirectY, 2, 5, true, (*CPU).SBC)

	set(0x85, "STA", ZeroPage, 2, 3, true, (*CPU).STA)
	set(0x95, "STA", ZeroPageX, 2, 4, true, (*CPU).STA)
	set(0x8D, "STA", Absolute, 3, 4, true, (*CPU).STA)
	set(0x9D, "STA", AbsoluteX, 3, 5, true, (*CPU).STA)
	set(0x99, "STA", AbsoluteY, 3, 5, true, (*CPU).STA)
	set(0x81, "STA", IndirectX, 2, 6, true, (*CPU).STA)
	set(0x91, "STA", IndirectY, 2, 6, true, (*CPU).STA)

	set(0x86, "STX", ZeroPage, 2, 3, true, (*CPU).STX)
	set(0x96, "STX", ZeroPageY, 2, 4, true, (*CPU).STX)
	set(0x8E, "STX", Absolute, 3, 4, true, (*CPU).STX)

	set(0x84, "STY", ZeroPage, 2, 3, true, (*CPU).STY)
	set(0x94, "STY", ZeroPageX, 2, 4, true, (*CPU).STY)
	set(0x8C, "STY", Absolute, 3, 4, true, (*CPU).STY)

	set(0x48, "PHA", Implied, 1, 3, true, (*CPU).PHA)
	set(0x08, "PHP", Implied, 1, 3, true, (*CPU).PHP)
	set(0x68, "PLA", Implied, 1, 4, true, (*CPU).PLA)
	set(0x28, "PLP", Implied, 1, 4, true, (*CPU).PLP)

	set(0xAA, "TAX", Implied, 1, 2, true, (*CPU).TAX)
	set(0xA8, "TAY", Implied, 1, 2, true, (*CPU).TAY)
	set(0xBA, "TSX", Implied, 1, 2, true, (*CPU).TSX)
	set(0x8A, "TXA", Implied, 1, 2, true, (*CPU).TXA)
	set(0x9A, "TXS", Implied, 1, 2, true, (*CPU).TXS)
	set(0x98, "TYA", Implied, 1, 2, true, (*CPU).TYA)

	set(0xEA, "NOP", Implied, 1, 2, true, (*CPU).NOP)

	// A handful of commonly-emitted unofficial NOPs, included only so
	// the official flag has something real to distinguish -- their
	// behavioral accuracy isn't a goal.
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(op, "NOP", Implied, 1, 2, false, (*CPU).NOP)
	}
}
