package disassemble

import (
	"testing"

	"github.com/AbdellatifTensai/NesEmulator/memory"
	"github.com/go-test/deep"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name  string
		pc    uint16
		bytes []uint8
		want  string
		count int
	}{
		{"immediate", 0x8000, []uint8{0xA9, 0x01}, "8000 A9 01      LDA #01       ", 2},
		{"indirect", 0x8000, []uint8{0x6C, 0xFF, 0x30}, "8000 6C FF 30   JMP (30FF)    ", 3},
		{"accumulator", 0x8000, []uint8{0x0A}, "8000 0A         ASL A         ", 1},
		{"relative backwards", 0x8003, []uint8{0xD0, 0xFD}, "8003 D0 FD      BNE FD (8002) ", 2},
		{"illegal", 0x8000, []uint8{0x02}, "8000 02         ???           ", 1},
		{"implied", 0x8000, []uint8{0xAA}, "8000 AA         TAX           ", 1},
		{"indirect y", 0x8000, []uint8{0xB1, 0x20}, "8000 B1 20      LDA (20),Y    ", 2},
	}
	for _, test := range tests {
		r := memory.NewFlat()
		r.Load(test.pc, test.bytes)
		got, cnt := Step(test.pc, r)
		if got != test.want {
			t.Errorf("%s: got %q want %q", test.name, got, test.want)
		}
		if cnt != test.count {
			t.Errorf("%s: count got %d want %d", test.name, cnt, test.count)
		}
	}
}

func TestRange(t *testing.T) {
	r := memory.NewFlat()
	// LDA #$05, TAX, BRK
	r.Load(0x8000, []uint8{0xA9, 0x05, 0xAA, 0x00})
	want := []string{
		"8000 A9 05      LDA #05       ",
		"8002 AA         TAX           ",
		"8003 00         BRK           ",
	}
	if diff := deep.Equal(Range(0x8000, 4, r), want); diff != nil {
		t.Errorf("Range wrong: %v", diff)
	}
}
