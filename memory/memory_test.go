package memory

import (
	"testing"

	"github.com/go-test/deep"
)

func TestReadWriteAddr(t *testing.T) {
	f := NewFlat()
	f.WriteAddr(0x1234, 0xBEEF)
	if got, want := f.Read(0x1234), uint8(0xEF); got != want {
		t.Errorf("low byte wrong. Got %.2X and want %.2X", got, want)
	}
	if got, want := f.Read(0x1235), uint8(0xBE); got != want {
		t.Errorf("high byte wrong. Got %.2X and want %.2X", got, want)
	}
	if got, want := f.ReadAddr(0x1234), uint16(0xBEEF); got != want {
		t.Errorf("ReadAddr wrong. Got %.4X and want %.4X", got, want)
	}

	// 0xFFFF wraps to 0x0000 for the high byte.
	f.Write(0xFFFF, 0x34)
	f.Write(0x0000, 0x12)
	if got, want := f.ReadAddr(0xFFFF), uint16(0x1234); got != want {
		t.Errorf("ReadAddr at top of memory wrong. Got %.4X and want %.4X", got, want)
	}
}

func TestReadZPAddr(t *testing.T) {
	f := NewFlat()
	f.Write(0x00FF, 0xAA)
	f.Write(0x0000, 0x55)
	f.Write(0x0100, 0x77)
	if got, want := f.ReadZPAddr(0xFF), uint16(0x55AA); got != want {
		t.Errorf("ReadZPAddr didn't wrap in zero page. Got %.4X and want %.4X", got, want)
	}
	if got, want := f.ReadAddr(0x00FF), uint16(0x77AA); got != want {
		t.Errorf("ReadAddr shouldn't wrap in zero page. Got %.4X and want %.4X", got, want)
	}
}

func TestLoadAndRange(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
		data []uint8
		from uint16
		to   uint16
		want []uint8
	}{
		{
			name: "simple",
			addr: 0x8000,
			data: []uint8{0xA9, 0x01, 0x00},
			from: 0x8000,
			to:   0x8003,
			want: []uint8{0xA9, 0x01, 0x00, 0x00},
		},
		{
			name: "wraps at top",
			addr: 0xFFFE,
			data: []uint8{0x01, 0x02, 0x03},
			from: 0x0000,
			to:   0x0000,
			want: []uint8{0x03},
		},
		{
			name: "inverted range",
			addr: 0x0000,
			data: []uint8{0x01},
			from: 0x0010,
			to:   0x0001,
			want: []uint8{},
		},
		{
			name: "last byte",
			addr: 0xFFFF,
			data: []uint8{0xEE},
			from: 0xFFFE,
			to:   0xFFFF,
			want: []uint8{0x00, 0xEE},
		},
	}
	for _, test := range tests {
		f := NewFlat()
		f.Load(test.addr, test.data)
		if diff := deep.Equal(f.Range(test.from, test.to), test.want); diff != nil {
			t.Errorf("%s: range mismatch: %v", test.name, diff)
		}
	}
}

func TestPowerOn(t *testing.T) {
	f := NewFlat()
	f.Load(0x0000, []uint8{0x01, 0x02})
	f.PowerOn()
	if diff := deep.Equal(f.Range(0x0000, 0x0001), []uint8{0x00, 0x00}); diff != nil {
		t.Errorf("PowerOn didn't clear memory: %v", diff)
	}
}
