package cpu

import "fmt"

// Mode is an enumeration of the 6502 addressing modes.
type Mode int

const (
	MODE_IMPLIED     Mode = iota // No operand or operates on registers only.
	MODE_ACCUMULATOR             // Operates on A (shifts/rotates).
	MODE_IMMEDIATE               // #i
	MODE_ZP                      // d
	MODE_ZPX                     // d,x
	MODE_ZPY                     // d,y
	MODE_ABSOLUTE                // a
	MODE_ABSOLUTEX               // a,x
	MODE_ABSOLUTEY               // a,y
	MODE_INDIRECTX               // (d,x)
	MODE_INDIRECTY               // (d),y
	MODE_INDIRECT                // (a) - JMP only
	MODE_RELATIVE                // *+r - branches only
)

var modeNames = map[Mode]string{
	MODE_IMPLIED:     "Implied",
	MODE_ACCUMULATOR: "Accumulator",
	MODE_IMMEDIATE:   "Immediate",
	MODE_ZP:          "ZeroPage",
	MODE_ZPX:         "ZeroPage,X",
	MODE_ZPY:         "ZeroPage,Y",
	MODE_ABSOLUTE:    "Absolute",
	MODE_ABSOLUTEX:   "Absolute,X",
	MODE_ABSOLUTEY:   "Absolute,Y",
	MODE_INDIRECTX:   "(Indirect,X)",
	MODE_INDIRECTY:   "(Indirect),Y",
	MODE_INDIRECT:    "Indirect",
	MODE_RELATIVE:    "Relative",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Operands returns the number of bytes following the opcode for this mode.
func (m Mode) Operands() int {
	switch m {
	case MODE_IMPLIED, MODE_ACCUMULATOR:
		return 0
	case MODE_ABSOLUTE, MODE_ABSOLUTEX, MODE_ABSOLUTEY, MODE_INDIRECT:
		return 2
	}
	return 1
}

// operandAddr computes the effective address for the given mode. PC must point at the
// first byte after the opcode. PC isn't changed here, the fetch-execute loop
// advances past the operands once the instruction completes.
//
// Implied, accumulator and relative modes have no effective address and
// return PC which is where a relative offset lives.
func (p *Processor) operandAddr(mode Mode) uint16 {
	switch mode {
	case MODE_ZP:
		return uint16(p.Ram.Read(p.PC))
	case MODE_ZPX:
		return uint16(p.Ram.Read(p.PC) + p.X)
	case MODE_ZPY:
		return uint16(p.Ram.Read(p.PC) + p.Y)
	case MODE_ABSOLUTE:
		return p.Ram.ReadAddr(p.PC)
	case MODE_ABSOLUTEX:
		return p.Ram.ReadAddr(p.PC) + uint16(p.X)
	case MODE_ABSOLUTEY:
		return p.Ram.ReadAddr(p.PC) + uint16(p.Y)
	case MODE_INDIRECTX:
		// The pointer itself never leaves zero page.
		return p.Ram.ReadZPAddr(p.Ram.Read(p.PC) + p.X)
	case MODE_INDIRECTY:
		return p.Ram.ReadZPAddr(p.Ram.Read(p.PC)) + uint16(p.Y)
	case MODE_INDIRECT:
		// NMOS bug: the high byte comes from the same page as the low byte
		// so (0x30FF) reads 0x30FF and 0x3000.
		ptr := p.Ram.ReadAddr(p.PC)
		lo := p.Ram.Read(ptr)
		hi := p.Ram.Read((ptr & 0xFF00) + uint16(uint8(ptr&0xFF)+1))
		return (uint16(hi) << 8) + uint16(lo)
	}
	// Immediate (and everything without a memory operand).
	return p.PC
}

// operand returns the value the instruction works on. For accumulator mode this is A.
func (p *Processor) operand(mode Mode) uint8 {
	if mode == MODE_ACCUMULATOR {
		return p.A
	}
	return p.Ram.Read(p.operandAddr(mode))
}
