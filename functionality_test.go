// Package functionality does basic end-end verification
// of the 6502 with a simple memory map
package functionality

import (
	"errors"
	"strings"
	"testing"

	"github.com/AbdellatifTensai/NesEmulator/cpu"
	"github.com/AbdellatifTensai/NesEmulator/disassemble"
	"github.com/AbdellatifTensai/NesEmulator/listing"
	"github.com/AbdellatifTensai/NesEmulator/memory"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

const RESET = uint16(0x1FFE)

// regs is the visible register state compared after each run.
type regs struct {
	A, X, Y, S, P uint8
	PC            uint16
}

func snapshot(c *cpu.Processor) regs {
	return regs{c.A, c.X, c.Y, c.S, c.P, c.PC}
}

func setup(t *testing.T) (*cpu.Processor, *memory.Flat) {
	t.Helper()
	r := memory.NewFlat()
	c, err := cpu.Init(r)
	if err != nil {
		t.Fatalf("Can't initialize cpu - %v", err)
	}
	return c, r
}

func assemble(t *testing.T, l string) []uint8 {
	t.Helper()
	p, err := listing.Parse(strings.NewReader(l))
	if err != nil {
		t.Fatalf("Can't assemble listing - %v", err)
	}
	if got, want := p.Origin, cpu.LOAD_ADDRESS; got != want {
		t.Fatalf("Listing origin got %.4X want %.4X", got, want)
	}
	return p.Bytes
}

func TestNOP(t *testing.T) {
	tests := []struct {
		name string
		halt uint8
	}{
		{"0x02 halt", 0x02},
		{"0x12 halt", 0x12},
		{"0x22 halt", 0x22},
		{"0x32 halt", 0x32},
		{"0x42 halt", 0x42},
		{"0x52 halt", 0x52},
		{"0x62 halt", 0x62},
		{"0x72 halt", 0x72},
		{"0x92 halt", 0x92},
		{"0xB2 halt", 0xB2},
		{"0xD2 halt", 0xD2},
		{"0xF2 halt", 0xF2},
	}
	for _, test := range tests {
		c, r := setup(t)
		// Fill with NOPs, put an illegal opcode in the NMI vector and point reset
		// at RESET so the sled runs from there up to NMI_VECTOR.
		fill := make([]uint8, 0x10000)
		for i := range fill {
			fill[i] = 0xEA
		}
		r.Load(0x0000, fill)
		r.Write(cpu.NMI_VECTOR, test.halt)
		r.Write(cpu.NMI_VECTOR+1, test.halt)
		r.WriteAddr(cpu.RESET_VECTOR, RESET)
		c.Reset()
		if got, want := c.PC, RESET; got != want {
			t.Errorf("%s: Reset vector isn't correct. Got 0x%.4X, want 0x%.4X", test.name, got, want)
			continue
		}
		want := snapshot(c)
		canonical := r.Range(0x0000, 0xFFFF)

		err := c.Run()
		var e cpu.IllegalOpcode
		if !errors.As(err, &e) {
			t.Errorf("%s: Didn't stop due to illegal opcode: %T - %v", test.name, err, err)
			continue
		}
		if diff := deep.Equal(e, cpu.IllegalOpcode{Opcode: test.halt, PC: cpu.NMI_VECTOR}); diff != nil {
			t.Errorf("%s: wrong fault: %v", test.name, diff)
		}
		// 2 cycles for every NOP between RESET and NMI_VECTOR.
		if got, want := c.Cycles, uint64(cpu.NMI_VECTOR-RESET)*2; got != want {
			t.Errorf("%s: Invalid cycle count. Got %d want %d", test.name, got, want)
		}
		// NOPs only move PC. The fetch of the illegal opcode leaves it one past.
		want.PC = cpu.NMI_VECTOR + 1
		if diff := deep.Equal(snapshot(c), want); diff != nil {
			t.Errorf("%s: Registers changed: %v\n%s", test.name, diff, spew.Sdump(c))
		}
		if diff := deep.Equal(r.Range(0x0000, 0xFFFF), canonical); diff != nil {
			t.Errorf("%s: Memory changed unexpectedly: %v", test.name, diff)
		}
		if got, want := c.State(), cpu.STATE_HALTED; got != want {
			t.Errorf("%s: state got %v want %v", test.name, got, want)
		}
	}
}

const multiply = `; 7 * 6 by repeated addition, result in A and $10
8000 A9 00	LDA #$00
8002 A2 06	LDX #$06
8004 18		CLC
8005 69 07	ADC #$07
8007 CA		DEX
8008 D0 FA	BNE $8004
800A 85 10	STA $10
800C 00		BRK
`

const subroutine = `; JSR into a subroutine and come back
8000 20 06 80	JSR $8006
8003 E8		INX
8004 00		BRK
8005 EA		NOP
8006 A2 41	LDX #$41
8008 60		RTS
`

const tableSum = `; Sum the 4 bytes at $0300 through a zero page pointer
8000 A9 00	LDA #$00
8002 85 20	STA $20
8004 A9 03	LDA #$03
8006 85 21	STA $21
8008 A0 03	LDY #$03
800A A9 00	LDA #$00
800C 18		CLC
800D 71 20	ADC ($20),Y
800F 88		DEY
8010 10 FB	BPL $800D
8012 85 22	STA $22
8014 00		BRK
`

const stackRoundTrip = `; Push A, clobber it and pull it back with flags intact
8000 A9 C3	LDA #$C3
8002 48		PHA
8003 08		PHP
8004 A9 00	LDA #$00
8006 28		PLP
8007 68		PLA
8008 00		BRK
`

func TestPrograms(t *testing.T) {
	tests := []struct {
		name  string
		prog  string
		setup func(r *memory.Flat)
		want  regs
		from  uint16
		mem   []uint8
	}{
		{
			name: "multiply",
			prog: multiply,
			want: regs{A: 0x2A, X: 0x00, Y: 0x00, S: 0xFD, P: cpu.P_ZERO, PC: 0x800D},
			from: 0x0010,
			mem:  []uint8{0x2A},
		},
		{
			name: "subroutine",
			prog: subroutine,
			want: regs{A: 0x00, X: 0x42, Y: 0x00, S: 0xFD, P: 0x00, PC: 0x8005},
			// Return address (0x8002) is left behind on the stack.
			from: 0x01FC,
			mem:  []uint8{0x02, 0x80},
		},
		{
			name: "table sum",
			prog: tableSum,
			setup: func(r *memory.Flat) {
				r.Load(0x0300, []uint8{0x01, 0x02, 0x03, 0x04})
			},
			want: regs{A: 0x0A, X: 0x00, Y: 0xFF, S: 0xFD, P: cpu.P_NEGATIVE, PC: 0x8015},
			from: 0x0020,
			mem:  []uint8{0x00, 0x03, 0x0A},
		},
		{
			name: "stack round trip",
			prog: stackRoundTrip,
			// PLA of 0xC3 sets N. PLP restored S1 and cleared B.
			want: regs{A: 0xC3, X: 0x00, Y: 0x00, S: 0xFD, P: cpu.P_NEGATIVE | cpu.P_S1, PC: 0x8009},
			from: 0x01FC,
			mem:  []uint8{0xB0, 0xC3},
		},
	}
	for _, test := range tests {
		c, r := setup(t)
		if test.setup != nil {
			test.setup(r)
		}
		if err := c.LoadResetRun(assemble(t, test.prog)); err != nil {
			t.Errorf("%s: run error - %v\n%s", test.name, err, spew.Sdump(c))
			continue
		}
		if diff := deep.Equal(snapshot(c), test.want); diff != nil {
			t.Errorf("%s: registers: %v", test.name, diff)
		}
		got := c.ReadRange(test.from, test.from+uint16(len(test.mem))-1)
		if diff := deep.Equal(got, test.mem); diff != nil {
			t.Errorf("%s: memory at %.4X: %v", test.name, test.from, diff)
		}
	}
}

func TestTrace(t *testing.T) {
	c, _ := setup(t)
	if err := c.Load(assemble(t, multiply)); err != nil {
		t.Fatalf("Load error - %v", err)
	}
	c.Reset()
	var trace []string
	for c.State() != cpu.STATE_HALTED {
		dis, _ := disassemble.Step(c.PC, c.Ram)
		trace = append(trace, dis)
		if err := c.Step(); err != nil {
			t.Fatalf("Step error - %v\n%s", err, strings.Join(trace, "\n"))
		}
	}
	// LDA, LDX, 6 loops of CLC/ADC/DEX/BNE, STA and BRK.
	if got, want := len(trace), 2+6*4+2; got != want {
		t.Errorf("Executed %d instructions, want %d\n%s", got, want, strings.Join(trace, "\n"))
	}
	if !strings.HasPrefix(trace[0], "8000 A9 00") || !strings.Contains(trace[0], "LDA") {
		t.Errorf("First trace line wrong: %q", trace[0])
	}
	if last := trace[len(trace)-1]; !strings.HasPrefix(last, "800C 00") || !strings.Contains(last, "BRK") {
		t.Errorf("Last trace line wrong: %q", last)
	}
}

func TestRerun(t *testing.T) {
	// Running the same program twice on the same CPU gives the same result.
	c, _ := setup(t)
	prog := assemble(t, subroutine)
	var got []regs
	for i := 0; i < 2; i++ {
		if err := c.LoadResetRun(prog); err != nil {
			t.Fatalf("run %d error - %v", i, err)
		}
		got = append(got, snapshot(c))
	}
	if diff := deep.Equal(got[0], got[1]); diff != nil {
		t.Errorf("Reruns differ: %v", diff)
	}
}
