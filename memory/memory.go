// Package memory defines the basic interfaces for working
// with a 6502 family memory map along with a flat 64k
// implementation suitable for running raw programs.
package memory

// Bank is the minimal view of memory needed to read and write bytes.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is simply a no-op without
	// any error.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to all zeros.
	PowerOn()
}

// Ram extends Bank with the 16 bit little endian helpers the CPU uses
// for vectors and pointers.
type Ram interface {
	Bank
	// ReadAddr returns the 16 bit value stored little endian at addr and addr+1.
	// addr+1 wraps at 0xFFFF.
	ReadAddr(addr uint16) uint16
	// ReadZPAddr is the same as ReadAddr except the high byte is read from
	// addr+1 within zero page. i.e. 0xFF reads its high byte from 0x00.
	ReadZPAddr(addr uint8) uint16
	// WriteAddr stores val little endian (low byte first) at addr and addr+1.
	WriteAddr(addr uint16, val uint16)
}

// Flat is a 64k RAM with no mirroring or ROM regions.
type Flat struct {
	addr [65536]uint8
}

// NewFlat returns a zero filled Flat.
func NewFlat() *Flat {
	return &Flat{}
}

// Read implements the interface for memory.Bank.
func (f *Flat) Read(addr uint16) uint8 {
	return f.addr[addr]
}

// Write implements the interface for memory.Bank.
func (f *Flat) Write(addr uint16, val uint8) {
	f.addr[addr] = val
}

// PowerOn implements the interface for memory.Bank and zeros all memory.
func (f *Flat) PowerOn() {
	for i := range f.addr {
		f.addr[i] = 0x00
	}
}

// ReadAddr implements the interface for memory.Ram.
func (f *Flat) ReadAddr(addr uint16) uint16 {
	return (uint16(f.addr[addr+1]) << 8) + uint16(f.addr[addr])
}

// ReadZPAddr implements the interface for memory.Ram.
func (f *Flat) ReadZPAddr(addr uint8) uint16 {
	return (uint16(f.addr[addr+1]) << 8) + uint16(f.addr[addr])
}

// WriteAddr implements the interface for memory.Ram.
func (f *Flat) WriteAddr(addr uint16, val uint16) {
	f.addr[addr] = uint8(val & 0xFF)
	f.addr[addr+1] = uint8((val & 0xFF00) >> 8)
}

// Load copies data into memory starting at addr. Anything past 0xFFFF
// wraps around to the bottom of memory.
func (f *Flat) Load(addr uint16, data []uint8) {
	for i, b := range data {
		f.addr[addr+uint16(i)] = b
	}
}

// Range returns a copy of memory from..to inclusive. If to is below from
// an empty slice is returned.
func (f *Flat) Range(from, to uint16) []uint8 {
	if to < from {
		return []uint8{}
	}
	out := make([]uint8, int(to)-int(from)+1)
	copy(out, f.addr[from:int(to)+1])
	return out
}
