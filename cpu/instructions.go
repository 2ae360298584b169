package cpu

// zeroCheck sets the Z flag based on the register contents.
func (p *Processor) zeroCheck(reg uint8) {
	if reg == 0 {
		p.P |= P_ZERO
	} else {
		p.P &^= P_ZERO
	}
}

// negativeCheck sets the N flag based on the register contents.
func (p *Processor) negativeCheck(reg uint8) {
	if (reg & P_NEGATIVE) == 0x80 {
		p.P |= P_NEGATIVE
	} else {
		p.P &^= P_NEGATIVE
	}
}

// carryCheck sets the C flag if the result of an 8 bit ALU operation
// (passed as a 16 bit result) caused a carry out by generating a value >= 0x100.
func (p *Processor) carryCheck(res uint16) {
	if res >= 0x100 {
		p.P |= P_CARRY
	} else {
		p.P &^= P_CARRY
	}
}

// overflowCheck sets the V flag if the result of the ALU operation
// caused a two's complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Processor) overflowCheck(reg uint8, arg uint8, res uint8) {
	// If the originals signs differ from the end sign bit
	if (reg^res)&(arg^res)&0x80 != 0x00 {
		p.P |= P_OVERFLOW
	} else {
		p.P &^= P_OVERFLOW
	}
}

// loadRegister takes the val and inserts it into the register passed in. It then does
// Z and N checks against the new value.
func (p *Processor) loadRegister(reg *uint8, val uint8) {
	*reg = val
	p.zeroCheck(*reg)
	p.negativeCheck(*reg)
}

// pushStack pushes the given byte onto the stack and adjusts the stack pointer accordingly.
func (p *Processor) pushStack(val uint8) {
	p.Ram.Write(STACK_PAGE+uint16(p.S), val)
	p.S--
}

// popStack pops the top byte off the stack and adjusts the stack pointer accordingly.
func (p *Processor) popStack() uint8 {
	p.S++
	return p.Ram.Read(STACK_PAGE + uint16(p.S))
}

// pushAddr pushes a 16 bit value high byte first so it pops low byte first.
func (p *Processor) pushAddr(val uint16) {
	p.pushStack(uint8((val & 0xFF00) >> 8))
	p.pushStack(uint8(val & 0xFF))
}

// popAddr pops a 16 bit value pushed by pushAddr.
func (p *Processor) popAddr() uint16 {
	lo := p.popStack()
	hi := p.popStack()
	return (uint16(hi) << 8) + uint16(lo)
}

// jump loads PC and tells the fetch-execute loop not to advance past the operands.
func (p *Processor) jump(addr uint16) {
	p.PC = addr
	p.jumped = true
}

// modify runs a read-modify-write operation against A or the memory operand
// and returns the original and new values.
func (p *Processor) modify(mode Mode, f func(uint8) uint8) (uint8, uint8) {
	if mode == MODE_ACCUMULATOR {
		old := p.A
		p.A = f(old)
		return old, p.A
	}
	addr := p.operandAddr(mode)
	old := p.Ram.Read(addr)
	new := f(old)
	p.Ram.Write(addr, new)
	return old, new
}

// performBranch computes the new PC from the signed offset which is relative
// to the instruction after the branch.
func (p *Processor) performBranch(taken bool) {
	if !taken {
		return
	}
	off := p.Ram.Read(p.PC)
	p.jump(p.PC + 1 + uint16(int16(int8(off))))
}

// iADC implements the ADC instruction and sets all associated flags.
// Decimal mode is ignored and binary math is always done.
func (p *Processor) iADC(mode Mode) {
	p.addWithCarry(p.operand(mode))
}

// iSBC implements the SBC instruction which in binary mode is simply ones
// complement the arg and ADC.
func (p *Processor) iSBC(mode Mode) {
	p.addWithCarry(^p.operand(mode))
}

func (p *Processor) addWithCarry(arg uint8) {
	// Pull the carry bit out which thankfully is the low bit so can be
	// used directly.
	carry := p.P & P_CARRY
	sum := p.A + arg + carry
	p.overflowCheck(p.A, arg, sum)
	// Yes, could do bit checks here like the hardware but
	// just treating as uint16 math is simpler to code.
	p.carryCheck(uint16(p.A) + uint16(arg) + uint16(carry))

	// Now set the accumulator so the other flag checks are against the result.
	p.loadRegister(&p.A, sum)
}

func (p *Processor) iAND(mode Mode) {
	p.loadRegister(&p.A, p.A&p.operand(mode))
}

func (p *Processor) iORA(mode Mode) {
	p.loadRegister(&p.A, p.A|p.operand(mode))
}

func (p *Processor) iEOR(mode Mode) {
	p.loadRegister(&p.A, p.A^p.operand(mode))
}

// iBIT implements the BIT instruction for AND'ing against A
// and setting N/V based on the value. A is unchanged.
func (p *Processor) iBIT(mode Mode) {
	val := p.operand(mode)
	p.zeroCheck(p.A & val)
	p.negativeCheck(val)
	// Copy V from bit 6
	p.SetFlag(P_OVERFLOW, val&P_OVERFLOW != 0x00)
}

// iASL implements the ASL instruction on either A or memory.
func (p *Processor) iASL(mode Mode) {
	old, new := p.modify(mode, func(v uint8) uint8 { return v << 1 })
	p.carryCheck(uint16(old) << 1)
	p.zeroCheck(new)
	p.negativeCheck(new)
}

// iLSR implements the LSR instruction on either A or memory.
func (p *Processor) iLSR(mode Mode) {
	old, new := p.modify(mode, func(v uint8) uint8 { return v >> 1 })
	// Get bit0 from orig but in a 16 bit value and then shift it up into
	// the carry position
	p.carryCheck(uint16(old&0x01) << 8)
	p.zeroCheck(new)
	p.negativeCheck(new)
}

// iROL implements the ROL instruction on either A or memory.
func (p *Processor) iROL(mode Mode) {
	carry := p.P & P_CARRY
	old, new := p.modify(mode, func(v uint8) uint8 { return (v << 1) | carry })
	p.carryCheck(uint16(old) << 1)
	p.zeroCheck(new)
	p.negativeCheck(new)
}

// iROR implements the ROR instruction on either A or memory.
func (p *Processor) iROR(mode Mode) {
	carry := (p.P & P_CARRY) << 7
	old, new := p.modify(mode, func(v uint8) uint8 { return (v >> 1) | carry })
	// Just see if carry is set or not.
	p.carryCheck((uint16(old) << 8) & 0x0100)
	p.zeroCheck(new)
	p.negativeCheck(new)
}

func (p *Processor) iINC(mode Mode) {
	_, new := p.modify(mode, func(v uint8) uint8 { return v + 1 })
	p.zeroCheck(new)
	p.negativeCheck(new)
}

func (p *Processor) iDEC(mode Mode) {
	_, new := p.modify(mode, func(v uint8) uint8 { return v - 1 })
	p.zeroCheck(new)
	p.negativeCheck(new)
}

func (p *Processor) iINX(Mode) { p.loadRegister(&p.X, p.X+1) }
func (p *Processor) iINY(Mode) { p.loadRegister(&p.Y, p.Y+1) }
func (p *Processor) iDEX(Mode) { p.loadRegister(&p.X, p.X-1) }
func (p *Processor) iDEY(Mode) { p.loadRegister(&p.Y, p.Y-1) }

// compare implements the logic for all CMP/CPX/CPY instructions and
// sets flags accordingly from the results.
func (p *Processor) compare(reg uint8, val uint8) {
	p.zeroCheck(reg - val)
	p.negativeCheck(reg - val)
	// A-M done as 2's complement addition by ones complement and add 1
	// This way we get valid sign extension and a carry bit test.
	p.carryCheck(uint16(reg) + uint16(^val) + uint16(1))
}

func (p *Processor) iCMP(mode Mode) { p.compare(p.A, p.operand(mode)) }
func (p *Processor) iCPX(mode Mode) { p.compare(p.X, p.operand(mode)) }
func (p *Processor) iCPY(mode Mode) { p.compare(p.Y, p.operand(mode)) }

func (p *Processor) iLDA(mode Mode) { p.loadRegister(&p.A, p.operand(mode)) }
func (p *Processor) iLDX(mode Mode) { p.loadRegister(&p.X, p.operand(mode)) }
func (p *Processor) iLDY(mode Mode) { p.loadRegister(&p.Y, p.operand(mode)) }

// Stores never change flags.
func (p *Processor) iSTA(mode Mode) { p.Ram.Write(p.operandAddr(mode), p.A) }
func (p *Processor) iSTX(mode Mode) { p.Ram.Write(p.operandAddr(mode), p.X) }
func (p *Processor) iSTY(mode Mode) { p.Ram.Write(p.operandAddr(mode), p.Y) }

func (p *Processor) iTAX(Mode) { p.loadRegister(&p.X, p.A) }
func (p *Processor) iTAY(Mode) { p.loadRegister(&p.Y, p.A) }
func (p *Processor) iTXA(Mode) { p.loadRegister(&p.A, p.X) }
func (p *Processor) iTYA(Mode) { p.loadRegister(&p.A, p.Y) }
func (p *Processor) iTSX(Mode) { p.loadRegister(&p.X, p.S) }

// iTXS is the only transfer which leaves flags alone.
func (p *Processor) iTXS(Mode) { p.S = p.X }

func (p *Processor) iBCC(Mode) { p.performBranch(p.P&P_CARRY == 0x00) }
func (p *Processor) iBCS(Mode) { p.performBranch(p.P&P_CARRY != 0x00) }
func (p *Processor) iBNE(Mode) { p.performBranch(p.P&P_ZERO == 0x00) }
func (p *Processor) iBEQ(Mode) { p.performBranch(p.P&P_ZERO != 0x00) }
func (p *Processor) iBPL(Mode) { p.performBranch(p.P&P_NEGATIVE == 0x00) }
func (p *Processor) iBMI(Mode) { p.performBranch(p.P&P_NEGATIVE != 0x00) }
func (p *Processor) iBVC(Mode) { p.performBranch(p.P&P_OVERFLOW == 0x00) }
func (p *Processor) iBVS(Mode) { p.performBranch(p.P&P_OVERFLOW != 0x00) }

func (p *Processor) iCLC(Mode) { p.P &^= P_CARRY }
func (p *Processor) iCLD(Mode) { p.P &^= P_DECIMAL }
func (p *Processor) iCLI(Mode) { p.P &^= P_INTERRUPT }
func (p *Processor) iCLV(Mode) { p.P &^= P_OVERFLOW }
func (p *Processor) iSEC(Mode) { p.P |= P_CARRY }
func (p *Processor) iSED(Mode) { p.P |= P_DECIMAL }
func (p *Processor) iSEI(Mode) { p.P |= P_INTERRUPT }

// iJMP implements both absolute and indirect JMP.
func (p *Processor) iJMP(mode Mode) {
	p.jump(p.operandAddr(mode))
}

// iJSR pushes the address of the last byte of the JSR (i.e. return address - 1)
// and jumps. RTS accounts for this by adding one to the popped PC value.
func (p *Processor) iJSR(mode Mode) {
	p.pushAddr(p.PC + 1)
	p.jump(p.operandAddr(mode))
}

// iRTS implements the RTS instruction and pops the PC off the stack adding one to it.
func (p *Processor) iRTS(Mode) {
	p.jump(p.popAddr() + 1)
}

// iRTI pops the flags and then the PC. Unlike RTS there's no adjustment to PC.
func (p *Processor) iRTI(Mode) {
	p.pullFlags()
	p.jump(p.popAddr())
}

func (p *Processor) iPHA(Mode) { p.pushStack(p.A) }

func (p *Processor) iPLA(Mode) { p.loadRegister(&p.A, p.popStack()) }

// iPHP pushes P with both B and the unused bit set as the NMOS parts do.
func (p *Processor) iPHP(Mode) {
	p.pushStack(p.P | P_S1 | P_B)
}

func (p *Processor) iPLP(Mode) { p.pullFlags() }

func (p *Processor) pullFlags() {
	p.P = p.popStack()
	// The actual flags register always has S1 set to one
	p.P |= P_S1
	// And the B bit is never set in the register
	p.P &^= P_B
}

func (p *Processor) iNOP(Mode) {}

// iBRK is never run by the fetch-execute loop since BRK halts before executing.
// It's here so the opcode table has an action for every entry.
func (p *Processor) iBRK(Mode) {}
