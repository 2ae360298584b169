// Package cpu defines the 6502 architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation.
//
// Execution is instruction at a time rather than clock accurate. Each opcode
// carries its documented base cycle count but that is only accumulated as
// metadata and never used to schedule anything. Decimal mode can be set and
// cleared but ADC/SBC always do binary math.
package cpu

import (
	"fmt"

	"github.com/AbdellatifTensai/NesEmulator/memory"
)

// RunState is an enumeration of the states the fetch-execute loop moves through.
type RunState int

const (
	STATE_UNIMPLEMENTED RunState = iota // Start of valid state enumerations.
	STATE_RESET                         // Registers reset, nothing executed yet.
	STATE_RUNNING                       // At least one instruction has executed.
	STATE_HALTED                        // BRK or running off the top of memory. Also set on a fault.
	STATE_MAX                           // End of state enumerations.
)

func (s RunState) String() string {
	switch s {
	case STATE_RESET:
		return "Reset"
	case STATE_RUNNING:
		return "Running"
	case STATE_HALTED:
		return "Halted"
	}
	return fmt.Sprintf("RunState(%d)", int(s))
}

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	// LOAD_ADDRESS is where LoadResetRun places programs and points the reset vector.
	LOAD_ADDRESS = uint16(0x8000)
	// MAX_PROGRAM is the largest program which fits between LOAD_ADDRESS and the vectors.
	MAX_PROGRAM = int(NMI_VECTOR - LOAD_ADDRESS)

	STACK_PAGE  = uint16(0x0100)
	STACK_RESET = uint8(0xFD)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1 when pushed.
	P_B         = uint8(0x10) // Only set in the pushed copy from PHP.
	P_DECIMAL   = uint8(0x8)
	P_INTERRUPT = uint8(0x4)
	P_ZERO      = uint8(0x2)
	P_CARRY     = uint8(0x1)
)

// Processor holds the complete 6502 register state and the memory it operates on.
// A single Processor is not safe for concurrent use.
type Processor struct {
	A      uint8  // Accumulator register
	X      uint8  // X register
	Y      uint8  // Y register
	S      uint8  // Stack pointer
	P      uint8  // Processor status register
	PC     uint16 // Program counter
	Ram    memory.Ram
	Cycles uint64 // Sum of base cycles for every executed opcode.

	state  RunState
	fault  error // Set when an illegal opcode stops the run.
	jumped bool  // Set by instructions which load PC themselves.
}

// A few custom error types to distinguish why the CPU stopped

// IllegalOpcode represents an opcode with no entry in the opcode table.
type IllegalOpcode struct {
	Opcode uint8
	PC     uint16 // Address the opcode was fetched from.
}

// Error implements the interface for error types.
func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("0x%.2X at 0x%.4X is an illegal opcode", e.Opcode, e.PC)
}

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// ProgramTooLarge is returned when a program won't fit between LOAD_ADDRESS and the vectors.
type ProgramTooLarge struct {
	Size int
	Max  int
}

// Error implements the interface for error types.
func (e ProgramTooLarge) Error() string {
	return fmt.Sprintf("program of %d bytes exceeds max of %d", e.Size, e.Max)
}

// Init will create a new CPU using the given memory and return it in powered on state.
// The memory passed in will also be powered on.
func Init(r memory.Ram) (*Processor, error) {
	if r == nil {
		return nil, InvalidCPUState{"nil memory"}
	}
	p := &Processor{
		Ram: r,
	}
	p.Ram.PowerOn()
	p.PowerOn()
	return p, nil
}

// PowerOn will reset the CPU to specific power on state. Registers and flags are zero
// and the stack pointer is at STACK_RESET. The starting PC value is loaded from
// the reset vector.
func (p *Processor) PowerOn() {
	p.Reset()
}

// Reset zeros A, X, Y and P, puts the stack where it ends up after the 6502 reset
// sequence (as if PC/P had been pushed from 0x00) and loads PC from the reset vector.
// Any previous halt or fault is cleared.
func (p *Processor) Reset() {
	p.A = 0
	p.X = 0
	p.Y = 0
	p.P = 0
	p.S = STACK_RESET
	p.PC = p.Ram.ReadAddr(RESET_VECTOR)
	p.Cycles = 0
	p.state = STATE_RESET
	p.fault = nil
	p.jumped = false
}

// Load copies the program to LOAD_ADDRESS and points the reset vector at it.
func (p *Processor) Load(program []uint8) error {
	if len(program) > MAX_PROGRAM {
		return ProgramTooLarge{len(program), MAX_PROGRAM}
	}
	for i, b := range program {
		p.Ram.Write(LOAD_ADDRESS+uint16(i), b)
	}
	p.Ram.WriteAddr(RESET_VECTOR, LOAD_ADDRESS)
	return nil
}

// LoadResetRun loads the program, resets the CPU so PC comes from the reset vector and
// then runs until the CPU halts. A non-nil error means the run faulted.
func (p *Processor) LoadResetRun(program []uint8) error {
	if err := p.Load(program); err != nil {
		return err
	}
	p.Reset()
	return p.Run()
}

// Run executes instructions until the CPU halts. It returns nil on a normal halt
// (BRK or running off the top of memory) and the fault otherwise.
func (p *Processor) Run() error {
	for p.state != STATE_HALTED {
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes one instruction. Once halted every call returns an error until Reset.
func (p *Processor) Step() error {
	if p.state == STATE_HALTED {
		if p.fault != nil {
			return InvalidCPUState{fmt.Sprintf("faulted: %v", p.fault)}
		}
		return InvalidCPUState{"halted"}
	}
	p.state = STATE_RUNNING

	start := p.PC
	op := p.Ram.Read(p.PC)
	p.PC++
	o, ok := Lookup(op)
	if !ok {
		p.state = STATE_HALTED
		p.fault = IllegalOpcode{Opcode: op, PC: start}
		return p.fault
	}
	p.Cycles += uint64(o.Cycles)
	if o.Code == BRK {
		p.state = STATE_HALTED
		return nil
	}

	p.jumped = false
	o.exec(p, o.Mode)
	if p.jumped {
		return nil
	}
	// Anything past the top of memory stops the run.
	next := uint32(start) + uint32(o.Length)
	p.PC = uint16(next)
	if next > 0xFFFF {
		p.state = STATE_HALTED
	}
	return nil
}

// State returns where the CPU is in the fetch-execute cycle.
func (p *Processor) State() RunState {
	return p.state
}

// Fault returns the error which stopped the last run (if any).
func (p *Processor) Fault() error {
	return p.fault
}

// ReadRange returns a copy of memory from..to inclusive. If to is below from an
// empty slice is returned.
func (p *Processor) ReadRange(from, to uint16) []uint8 {
	if to < from {
		return []uint8{}
	}
	out := make([]uint8, 0, int(to)-int(from)+1)
	for a := int(from); a <= int(to); a++ {
		out = append(out, p.Ram.Read(uint16(a)))
	}
	return out
}

// Flag returns whether all bits in mask are set in P.
func (p *Processor) Flag(mask uint8) bool {
	return p.P&mask == mask
}

// SetFlag sets or clears the bits in mask.
func (p *Processor) SetFlag(mask uint8, set bool) {
	if set {
		p.P |= mask
	} else {
		p.P &^= mask
	}
}

// String returns the registers and flags in a single line.
func (p *Processor) String() string {
	flags := []byte("nv-bdizc")
	for i := 0; i < 8; i++ {
		if p.P&(0x80>>i) != 0 {
			flags[i] -= 'a' - 'A'
		}
	}
	// Bit 5 has no name.
	flags[2] = '-'
	return fmt.Sprintf("A=%.2X X=%.2X Y=%.2X S=%.2X P=%.2X[%s] PC=%.4X", p.A, p.X, p.Y, p.S, p.P, flags, p.PC)
}
