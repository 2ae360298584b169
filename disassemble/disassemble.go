// Package disassemble implements a disassembler for 6502 opcodes
package disassemble

import (
	"fmt"

	"github.com/AbdellatifTensai/NesEmulator/cpu"
	"github.com/AbdellatifTensai/NesEmulator/memory"
)

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. This does not interpret the instructions so LDA, JMP, LDA in memory
// will disassemble as that sequence and not follow the JMP.
// Opcodes the CPU treats as illegal are shown as ??? and take one byte.
func Step(pc uint16, r memory.Bank) (string, int) {
	pc1 := r.Read(pc + 1)
	// Setup a 16 bit value so it can be added the the PC for branch offsets.
	// Sign extend it as needed.
	pc116 := uint16(int16(int8(pc1)))
	pc2 := r.Read(pc + 2)

	o := r.Read(pc)
	out := fmt.Sprintf("%.4X %.2X ", pc, o)
	op, ok := cpu.Lookup(o)
	if !ok {
		out += "        ???           "
		return out, 1
	}

	switch op.Mode {
	case cpu.MODE_IMMEDIATE:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", pc1, op.Mnemonic, pc1)
	case cpu.MODE_ZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", pc1, op.Mnemonic, pc1)
	case cpu.MODE_ZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", pc1, op.Mnemonic, pc1)
	case cpu.MODE_ZPY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", pc1, op.Mnemonic, pc1)
	case cpu.MODE_INDIRECTX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", pc1, op.Mnemonic, pc1)
	case cpu.MODE_INDIRECTY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", pc1, op.Mnemonic, pc1)
	case cpu.MODE_ABSOLUTE:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", pc1, pc2, op.Mnemonic, pc2, pc1)
	case cpu.MODE_ABSOLUTEX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", pc1, pc2, op.Mnemonic, pc2, pc1)
	case cpu.MODE_ABSOLUTEY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", pc1, pc2, op.Mnemonic, pc2, pc1)
	case cpu.MODE_INDIRECT:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", pc1, pc2, op.Mnemonic, pc2, pc1)
	case cpu.MODE_ACCUMULATOR:
		out += fmt.Sprintf("        %s A         ", op.Mnemonic)
	case cpu.MODE_IMPLIED:
		out += fmt.Sprintf("        %s           ", op.Mnemonic)
	case cpu.MODE_RELATIVE:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", pc1, op.Mnemonic, pc1, pc+pc116+2)
	default:
		panic(fmt.Sprintf("Invalid mode: %d", op.Mode))
	}
	return out, int(op.Length)
}

// Range disassembles count bytes starting at pc returning one line per instruction.
// The last instruction may extend past count bytes.
func Range(pc uint16, count int, r memory.Bank) []string {
	var out []string
	for cnt := 0; cnt < count; {
		dis, off := Step(pc, r)
		out = append(out, dis)
		pc += uint16(off)
		cnt += off
	}
	return out
}
