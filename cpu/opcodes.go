package cpu

// Opcode descriptions/timing/etc:
// http://obelisk.me.uk/6502/reference.html
//
// Only the documented NMOS opcodes are present. Anything else is an illegal
// opcode and stops execution.

// BRK is the opcode which halts the fetch-execute loop.
const BRK = uint8(0x00)

// Opcode describes one opcode byte. Length includes the opcode itself.
type Opcode struct {
	Code     uint8
	Mnemonic string
	Length   uint8
	Cycles   uint8
	Mode     Mode
	exec     func(*Processor, Mode)
}

var opcodes [256]*Opcode

func op(code uint8, mnemonic string, mode Mode, cycles uint8, exec func(*Processor, Mode)) *Opcode {
	return &Opcode{
		Code:     code,
		Mnemonic: mnemonic,
		Length:   uint8(1 + mode.Operands()),
		Cycles:   cycles,
		Mode:     mode,
		exec:     exec,
	}
}

func init() {
	for _, o := range []*Opcode{
		op(0x69, "ADC", MODE_IMMEDIATE, 2, (*Processor).iADC),
		op(0x65, "ADC", MODE_ZP, 3, (*Processor).iADC),
		op(0x75, "ADC", MODE_ZPX, 4, (*Processor).iADC),
		op(0x6D, "ADC", MODE_ABSOLUTE, 4, (*Processor).iADC),
		op(0x7D, "ADC", MODE_ABSOLUTEX, 4, (*Processor).iADC),
		op(0x79, "ADC", MODE_ABSOLUTEY, 4, (*Processor).iADC),
		op(0x61, "ADC", MODE_INDIRECTX, 6, (*Processor).iADC),
		op(0x71, "ADC", MODE_INDIRECTY, 5, (*Processor).iADC),

		op(0x29, "AND", MODE_IMMEDIATE, 2, (*Processor).iAND),
		op(0x25, "AND", MODE_ZP, 3, (*Processor).iAND),
		op(0x35, "AND", MODE_ZPX, 4, (*Processor).iAND),
		op(0x2D, "AND", MODE_ABSOLUTE, 4, (*Processor).iAND),
		op(0x3D, "AND", MODE_ABSOLUTEX, 4, (*Processor).iAND),
		op(0x39, "AND", MODE_ABSOLUTEY, 4, (*Processor).iAND),
		op(0x21, "AND", MODE_INDIRECTX, 6, (*Processor).iAND),
		op(0x31, "AND", MODE_INDIRECTY, 5, (*Processor).iAND),

		op(0x0A, "ASL", MODE_ACCUMULATOR, 2, (*Processor).iASL),
		op(0x06, "ASL", MODE_ZP, 5, (*Processor).iASL),
		op(0x16, "ASL", MODE_ZPX, 6, (*Processor).iASL),
		op(0x0E, "ASL", MODE_ABSOLUTE, 6, (*Processor).iASL),
		op(0x1E, "ASL", MODE_ABSOLUTEX, 7, (*Processor).iASL),

		op(0x90, "BCC", MODE_RELATIVE, 2, (*Processor).iBCC),
		op(0xB0, "BCS", MODE_RELATIVE, 2, (*Processor).iBCS),
		op(0xF0, "BEQ", MODE_RELATIVE, 2, (*Processor).iBEQ),
		op(0x30, "BMI", MODE_RELATIVE, 2, (*Processor).iBMI),
		op(0xD0, "BNE", MODE_RELATIVE, 2, (*Processor).iBNE),
		op(0x10, "BPL", MODE_RELATIVE, 2, (*Processor).iBPL),
		op(0x50, "BVC", MODE_RELATIVE, 2, (*Processor).iBVC),
		op(0x70, "BVS", MODE_RELATIVE, 2, (*Processor).iBVS),

		op(0x24, "BIT", MODE_ZP, 3, (*Processor).iBIT),
		op(0x2C, "BIT", MODE_ABSOLUTE, 4, (*Processor).iBIT),

		op(0x00, "BRK", MODE_IMPLIED, 7, (*Processor).iBRK),

		op(0x18, "CLC", MODE_IMPLIED, 2, (*Processor).iCLC),
		op(0xD8, "CLD", MODE_IMPLIED, 2, (*Processor).iCLD),
		op(0x58, "CLI", MODE_IMPLIED, 2, (*Processor).iCLI),
		op(0xB8, "CLV", MODE_IMPLIED, 2, (*Processor).iCLV),

		op(0xC9, "CMP", MODE_IMMEDIATE, 2, (*Processor).iCMP),
		op(0xC5, "CMP", MODE_ZP, 3, (*Processor).iCMP),
		op(0xD5, "CMP", MODE_ZPX, 4, (*Processor).iCMP),
		op(0xCD, "CMP", MODE_ABSOLUTE, 4, (*Processor).iCMP),
		op(0xDD, "CMP", MODE_ABSOLUTEX, 4, (*Processor).iCMP),
		op(0xD9, "CMP", MODE_ABSOLUTEY, 4, (*Processor).iCMP),
		op(0xC1, "CMP", MODE_INDIRECTX, 6, (*Processor).iCMP),
		op(0xD1, "CMP", MODE_INDIRECTY, 5, (*Processor).iCMP),

		op(0xE0, "CPX", MODE_IMMEDIATE, 2, (*Processor).iCPX),
		op(0xE4, "CPX", MODE_ZP, 3, (*Processor).iCPX),
		op(0xEC, "CPX", MODE_ABSOLUTE, 4, (*Processor).iCPX),

		op(0xC0, "CPY", MODE_IMMEDIATE, 2, (*Processor).iCPY),
		op(0xC4, "CPY", MODE_ZP, 3, (*Processor).iCPY),
		op(0xCC, "CPY", MODE_ABSOLUTE, 4, (*Processor).iCPY),

		op(0xC6, "DEC", MODE_ZP, 5, (*Processor).iDEC),
		op(0xD6, "DEC", MODE_ZPX, 6, (*Processor).iDEC),
		op(0xCE, "DEC", MODE_ABSOLUTE, 6, (*Processor).iDEC),
		op(0xDE, "DEC", MODE_ABSOLUTEX, 7, (*Processor).iDEC),
		op(0xCA, "DEX", MODE_IMPLIED, 2, (*Processor).iDEX),
		op(0x88, "DEY", MODE_IMPLIED, 2, (*Processor).iDEY),

		op(0x49, "EOR", MODE_IMMEDIATE, 2, (*Processor).iEOR),
		op(0x45, "EOR", MODE_ZP, 3, (*Processor).iEOR),
		op(0x55, "EOR", MODE_ZPX, 4, (*Processor).iEOR),
		op(0x4D, "EOR", MODE_ABSOLUTE, 4, (*Processor).iEOR),
		op(0x5D, "EOR", MODE_ABSOLUTEX, 4, (*Processor).iEOR),
		op(0x59, "EOR", MODE_ABSOLUTEY, 4, (*Processor).iEOR),
		op(0x41, "EOR", MODE_INDIRECTX, 6, (*Processor).iEOR),
		op(0x51, "EOR", MODE_INDIRECTY, 5, (*Processor).iEOR),

		op(0xE6, "INC", MODE_ZP, 5, (*Processor).iINC),
		op(0xF6, "INC", MODE_ZPX, 6, (*Processor).iINC),
		op(0xEE, "INC", MODE_ABSOLUTE, 6, (*Processor).iINC),
		op(0xFE, "INC", MODE_ABSOLUTEX, 7, (*Processor).iINC),
		op(0xE8, "INX", MODE_IMPLIED, 2, (*Processor).iINX),
		op(0xC8, "INY", MODE_IMPLIED, 2, (*Processor).iINY),

		op(0x4C, "JMP", MODE_ABSOLUTE, 3, (*Processor).iJMP),
		op(0x6C, "JMP", MODE_INDIRECT, 5, (*Processor).iJMP),
		op(0x20, "JSR", MODE_ABSOLUTE, 6, (*Processor).iJSR),

		op(0xA9, "LDA", MODE_IMMEDIATE, 2, (*Processor).iLDA),
		op(0xA5, "LDA", MODE_ZP, 3, (*Processor).iLDA),
		op(0xB5, "LDA", MODE_ZPX, 4, (*Processor).iLDA),
		op(0xAD, "LDA", MODE_ABSOLUTE, 4, (*Processor).iLDA),
		op(0xBD, "LDA", MODE_ABSOLUTEX, 4, (*Processor).iLDA),
		op(0xB9, "LDA", MODE_ABSOLUTEY, 4, (*Processor).iLDA),
		op(0xA1, "LDA", MODE_INDIRECTX, 6, (*Processor).iLDA),
		op(0xB1, "LDA", MODE_INDIRECTY, 5, (*Processor).iLDA),

		op(0xA2, "LDX", MODE_IMMEDIATE, 2, (*Processor).iLDX),
		op(0xA6, "LDX", MODE_ZP, 3, (*Processor).iLDX),
		op(0xB6, "LDX", MODE_ZPY, 4, (*Processor).iLDX),
		op(0xAE, "LDX", MODE_ABSOLUTE, 4, (*Processor).iLDX),
		op(0xBE, "LDX", MODE_ABSOLUTEY, 4, (*Processor).iLDX),

		op(0xA0, "LDY", MODE_IMMEDIATE, 2, (*Processor).iLDY),
		op(0xA4, "LDY", MODE_ZP, 3, (*Processor).iLDY),
		op(0xB4, "LDY", MODE_ZPX, 4, (*Processor).iLDY),
		op(0xAC, "LDY", MODE_ABSOLUTE, 4, (*Processor).iLDY),
		op(0xBC, "LDY", MODE_ABSOLUTEX, 4, (*Processor).iLDY),

		op(0x4A, "LSR", MODE_ACCUMULATOR, 2, (*Processor).iLSR),
		op(0x46, "LSR", MODE_ZP, 5, (*Processor).iLSR),
		op(0x56, "LSR", MODE_ZPX, 6, (*Processor).iLSR),
		op(0x4E, "LSR", MODE_ABSOLUTE, 6, (*Processor).iLSR),
		op(0x5E, "LSR", MODE_ABSOLUTEX, 7, (*Processor).iLSR),

		op(0xEA, "NOP", MODE_IMPLIED, 2, (*Processor).iNOP),

		op(0x09, "ORA", MODE_IMMEDIATE, 2, (*Processor).iORA),
		op(0x05, "ORA", MODE_ZP, 3, (*Processor).iORA),
		op(0x15, "ORA", MODE_ZPX, 4, (*Processor).iORA),
		op(0x0D, "ORA", MODE_ABSOLUTE, 4, (*Processor).iORA),
		op(0x1D, "ORA", MODE_ABSOLUTEX, 4, (*Processor).iORA),
		op(0x19, "ORA", MODE_ABSOLUTEY, 4, (*Processor).iORA),
		op(0x01, "ORA", MODE_INDIRECTX, 6, (*Processor).iORA),
		op(0x11, "ORA", MODE_INDIRECTY, 5, (*Processor).iORA),

		op(0x48, "PHA", MODE_IMPLIED, 3, (*Processor).iPHA),
		op(0x08, "PHP", MODE_IMPLIED, 3, (*Processor).iPHP),
		op(0x68, "PLA", MODE_IMPLIED, 4, (*Processor).iPLA),
		op(0x28, "PLP", MODE_IMPLIED, 4, (*Processor).iPLP),

		op(0x2A, "ROL", MODE_ACCUMULATOR, 2, (*Processor).iROL),
		op(0x26, "ROL", MODE_ZP, 5, (*Processor).iROL),
		op(0x36, "ROL", MODE_ZPX, 6, (*Processor).iROL),
		op(0x2E, "ROL", MODE_ABSOLUTE, 6, (*Processor).iROL),
		op(0x3E, "ROL", MODE_ABSOLUTEX, 7, (*Processor).iROL),

		op(0x6A, "ROR", MODE_ACCUMULATOR, 2, (*Processor).iROR),
		op(0x66, "ROR", MODE_ZP, 5, (*Processor).iROR),
		op(0x76, "ROR", MODE_ZPX, 6, (*Processor).iROR),
		op(0x6E, "ROR", MODE_ABSOLUTE, 6, (*Processor).iROR),
		op(0x7E, "ROR", MODE_ABSOLUTEX, 7, (*Processor).iROR),

		op(0x40, "RTI", MODE_IMPLIED, 6, (*Processor).iRTI),
		op(0x60, "RTS", MODE_IMPLIED, 6, (*Processor).iRTS),

		op(0xE9, "SBC", MODE_IMMEDIATE, 2, (*Processor).iSBC),
		op(0xE5, "SBC", MODE_ZP, 3, (*Processor).iSBC),
		op(0xF5, "SBC", MODE_ZPX, 4, (*Processor).iSBC),
		op(0xED, "SBC", MODE_ABSOLUTE, 4, (*Processor).iSBC),
		op(0xFD, "SBC", MODE_ABSOLUTEX, 4, (*Processor).iSBC),
		op(0xF9, "SBC", MODE_ABSOLUTEY, 4, (*Processor).iSBC),
		op(0xE1, "SBC", MODE_INDIRECTX, 6, (*Processor).iSBC),
		op(0xF1, "SBC", MODE_INDIRECTY, 5, (*Processor).iSBC),

		op(0x38, "SEC", MODE_IMPLIED, 2, (*Processor).iSEC),
		op(0xF8, "SED", MODE_IMPLIED, 2, (*Processor).iSED),
		op(0x78, "SEI", MODE_IMPLIED, 2, (*Processor).iSEI),

		op(0x85, "STA", MODE_ZP, 3, (*Processor).iSTA),
		op(0x95, "STA", MODE_ZPX, 4, (*Processor).iSTA),
		op(0x8D, "STA", MODE_ABSOLUTE, 4, (*Processor).iSTA),
		op(0x9D, "STA", MODE_ABSOLUTEX, 5, (*Processor).iSTA),
		op(0x99, "STA", MODE_ABSOLUTEY, 5, (*Processor).iSTA),
		op(0x81, "STA", MODE_INDIRECTX, 6, (*Processor).iSTA),
		op(0x91, "STA", MODE_INDIRECTY, 6, (*Processor).iSTA),

		op(0x86, "STX", MODE_ZP, 3, (*Processor).iSTX),
		op(0x96, "STX", MODE_ZPY, 4, (*Processor).iSTX),
		op(0x8E, "STX", MODE_ABSOLUTE, 4, (*Processor).iSTX),

		op(0x84, "STY", MODE_ZP, 3, (*Processor).iSTY),
		op(0x94, "STY", MODE_ZPX, 4, (*Processor).iSTY),
		op(0x8C, "STY", MODE_ABSOLUTE, 4, (*Processor).iSTY),

		op(0xAA, "TAX", MODE_IMPLIED, 2, (*Processor).iTAX),
		op(0xA8, "TAY", MODE_IMPLIED, 2, (*Processor).iTAY),
		op(0xBA, "TSX", MODE_IMPLIED, 2, (*Processor).iTSX),
		op(0x8A, "TXA", MODE_IMPLIED, 2, (*Processor).iTXA),
		op(0x9A, "TXS", MODE_IMPLIED, 2, (*Processor).iTXS),
		op(0x98, "TYA", MODE_IMPLIED, 2, (*Processor).iTYA),
	} {
		if opcodes[o.Code] != nil {
			panic("duplicate opcode " + o.Mnemonic)
		}
		opcodes[o.Code] = o
	}
}

// Lookup returns the descriptor for an opcode byte. ok is false for illegal opcodes.
func Lookup(code uint8) (Opcode, bool) {
	o := opcodes[code]
	if o == nil {
		return Opcode{}, false
	}
	return *o, true
}

// Opcodes returns every legal opcode ordered by opcode byte.
func Opcodes() []Opcode {
	var out []Opcode
	for _, o := range opcodes {
		if o != nil {
			out = append(out, *o)
		}
	}
	return out
}
