package mos6502

type operation uint8

const (
	opHLT operation = iota
	opADC
	opAND
	opASL
	opBCC
	opBCS
	opBEQ
	opBIT
	opBMI
	opBNE
	opBPL
	opBRK
	opBVC
	opBVS
	opCLC
	opCLD
	opCLI
	opCLV
	opCMP
	opCPX
	opCPY
	opDEC
	opDEX
	opDEY
	opEOR
	opINC
	opINX
	opINY
	opJMP
	opJSR
	opLDA
	opLDX
	opLDY
	opLSR
	opNOP
	opORA
	opPHA
	opPHP
	opPLA
	opPLP
	opROL
	opROR
	opRTI
	opRTS
	opSBC
	opSEC
	opSED
	opSEI
	opSTA
	opSTX
	opSTY
	opTAX
	opTAY
	opTSX
	opTXA
	opTXS
	opTYA
)

var opNames = [...]string{
	opHLT: "???",
	opADC: "ADC", opAND: "AND", opASL: "ASL", opBCC: "BCC", opBCS: "BCS",
	opBEQ: "BEQ", opBIT: "BIT", opBMI: "BMI", opBNE: "BNE", opBPL: "BPL",
	opBRK: "BRK", opBVC: "BVC", opBVS: "BVS", opCLC: "CLC", opCLD: "CLD",
	opCLI: "CLI", opCLV: "CLV", opCMP: "CMP", opCPX: "CPX", opCPY: "CPY",
	opDEC: "DEC", opDEX: "DEX", opDEY: "DEY", opEOR: "EOR", opINC: "INC",
	opINX: "INX", opINY: "INY", opJMP: "JMP", opJSR: "JSR", opLDA: "LDA",
	opLDX: "LDX", opLDY: "LDY", opLSR: "LSR", opNOP: "NOP", opORA: "ORA",
	opPHA: "PHA", opPHP: "PHP", opPLA: "PLA", opPLP: "PLP", opROL: "ROL",
	opROR: "ROR", opRTI: "RTI", opRTS: "RTS", opSBC: "SBC", opSEC: "SEC",
	opSED: "SED", opSEI: "SEI", opSTA: "STA", opSTX: "STX", opSTY: "STY",
	opTAX: "TAX", opTAY: "TAY", opTSX: "TSX", opTXA: "TXA", opTXS: "TXS",
	opTYA: "TYA",
}

func (op operation) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "???"
}

// execute runs the behavior of in. Operands are resolved here so that every
// instruction consumes its operand bytes the same way.
//
// Control flow: the engine increments PC after every instruction, so every
// jump, call, branch and return stores target-1 in PC.
func (c *CPU) execute(in instr) {
	m := c.resolve(in.mode)

	switch in.op {
	// load / store
	case opLDA:
		c.a = c.load(m)
		c.setFlagsZN(c.a)
	case opLDX:
		c.x = c.load(m)
		c.setFlagsZN(c.x)
	case opLDY:
		c.y = c.load(m)
		c.setFlagsZN(c.y)
	case opSTA:
		c.store(m, c.a)
	case opSTX:
		c.store(m, c.x)
	case opSTY:
		c.store(m, c.y)

	// transfers
	case opTAX:
		c.x = c.a
		c.setFlagsZN(c.x)
	case opTAY:
		c.y = c.a
		c.setFlagsZN(c.y)
	case opTSX:
		c.x = c.sp
		c.setFlagsZN(c.x)
	case opTXA:
		c.a = c.x
		c.setFlagsZN(c.a)
	case opTXS:
		c.sp = c.x
	case opTYA:
		c.a = c.y
		c.setFlagsZN(c.a)

	// arithmetic and logic
	case opADC:
		c.adc(c.load(m))
	case opSBC:
		c.sbc(c.load(m))
	case opAND:
		c.a &= c.load(m)
		c.setFlagsZN(c.a)
	case opORA:
		c.a |= c.load(m)
		c.setFlagsZN(c.a)
	case opEOR:
		c.a ^= c.load(m)
		c.setFlagsZN(c.a)
	case opBIT:
		c.bit(c.load(m))
	case opCMP:
		c.compare(c.a, c.load(m))
	case opCPX:
		c.compare(c.x, c.load(m))
	case opCPY:
		c.compare(c.y, c.load(m))

	// increments and decrements
	case opINC:
		r := c.load(m) + 1
		c.store(m, r)
		c.setFlagsZN(r)
	case opDEC:
		r := c.load(m) - 1
		c.store(m, r)
		c.setFlagsZN(r)
	case opINX:
		c.x++
		c.setFlagsZN(c.x)
	case opINY:
		c.y++
		c.setFlagsZN(c.y)
	case opDEX:
		c.x--
		c.setFlagsZN(c.x)
	case opDEY:
		c.y--
		c.setFlagsZN(c.y)

	// shifts and rotates
	case opASL:
		c.store(m, c.asl(c.load(m)))
	case opLSR:
		c.store(m, c.lsr(c.load(m)))
	case opROL:
		c.store(m, c.rol(c.load(m)))
	case opROR:
		c.store(m, c.ror(c.load(m)))

	// branches
	case opBCC:
		c.branchIf(!c.getFlag(FlagC), m)
	case opBCS:
		c.branchIf(c.getFlag(FlagC), m)
	case opBEQ:
		c.branchIf(c.getFlag(FlagZ), m)
	case opBNE:
		c.branchIf(!c.getFlag(FlagZ), m)
	case opBMI:
		c.branchIf(c.getFlag(FlagN), m)
	case opBPL:
		c.branchIf(!c.getFlag(FlagN), m)
	case opBVS:
		c.branchIf(c.getFlag(FlagV), m)
	case opBVC:
		c.branchIf(!c.getFlag(FlagV), m)

	// jumps, calls and interrupts
	case opJMP:
		c.pc = m.addr - 1
	case opJSR:
		// PC is on the last operand byte, which is what RTS expects
		c.stackPush16(c.pc)
		c.pc = m.addr - 1
	case opRTS:
		c.pc = c.stackPop16()
	case opBRK:
		c.brk()
	case opRTI:
		c.p = (c.stackPop8() | FlagU) & ^FlagB
		c.pc = c.stackPop16() - 1

	// stack
	case opPHA:
		c.stackPush8(c.a)
	case opPHP:
		c.stackPush8(c.p | FlagB | FlagU)
	case opPLA:
		c.a = c.stackPop8()
		c.setFlagsZN(c.a)
	case opPLP:
		c.p = (c.stackPop8() | FlagU) & ^FlagB

	// flags
	case opCLC:
		c.setFlag(FlagC, false)
	case opCLD:
		c.setFlag(FlagD, false)
	case opCLI:
		c.setFlag(FlagI, false)
	case opCLV:
		c.setFlag(FlagV, false)
	case opSEC:
		c.setFlag(FlagC, true)
	case opSED:
		c.setFlag(FlagD, true)
	case opSEI:
		c.setFlag(FlagI, true)

	case opNOP, opHLT:
	}
}

// adc adds with carry. The decimal flag is ignored.
func (c *CPU) adc(m uint8) {
	r16 := uint16(c.a) + uint16(m)
	if c.getFlag(FlagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(FlagC, r16 > 0xff)
	c.setFlag(FlagV, isSameSign(c.a, m) && !isSameSign(c.a, r8))
	c.setFlagsZN(r8)
	c.a = r8
}

// sbc subtracts with borrow. Carry set means no borrow happened.
func (c *CPU) sbc(m uint8) {
	r16 := uint16(c.a) - uint16(m)
	if !c.getFlag(FlagC) {
		r16--
	}
	r8 := uint8(r16)
	c.setFlag(FlagC, r16 < 0x100)
	c.setFlag(FlagV, !isSameSign(c.a, m) && !isSameSign(c.a, r8))
	c.setFlagsZN(r8)
	c.a = r8
}

func (c *CPU) compare(reg, m uint8) {
	c.setFlag(FlagC, reg >= m)
	c.setFlagsZN(reg - m)
}

func (c *CPU) bit(m uint8) {
	c.setFlag(FlagZ, c.a&m == 0)
	c.setFlag(FlagN, m&FlagN > 0)
	c.setFlag(FlagV, m&FlagV > 0)
}

func (c *CPU) asl(m uint8) uint8 {
	c.setFlag(FlagC, m&0x80 > 0)
	r := m << 1
	c.setFlagsZN(r)
	return r
}

func (c *CPU) lsr(m uint8) uint8 {
	c.setFlag(FlagC, m&0x1 > 0)
	r := m >> 1
	c.setFlagsZN(r)
	return r
}

func (c *CPU) rol(m uint8) uint8 {
	r := m << 1
	if c.getFlag(FlagC) {
		r |= 0x1
	}
	c.setFlag(FlagC, m&0x80 > 0)
	c.setFlagsZN(r)
	return r
}

func (c *CPU) ror(m uint8) uint8 {
	r := m >> 1
	if c.getFlag(FlagC) {
		r |= 0x80
	}
	c.setFlag(FlagC, m&0x1 > 0)
	c.setFlagsZN(r)
	return r
}

// branchIf commits the target computed by the relative resolver.
// A branch that is not taken falls through at the end of the step.
func (c *CPU) branchIf(condition bool, target operand) {
	if !condition {
		return
	}
	c.pc = target.addr
}

func (c *CPU) brk() {
	c.pc++ // padding byte
	c.stackPush16(c.pc + 1)
	c.stackPush8(c.p | FlagB | FlagU)
	c.setFlag(FlagI, true)
	c.pc = c.read16(vectorIRQ) - 1
}
