package mos6502

import "fmt"

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeIND                      // Indirect
	addrModeINDX                     // Indirect X
	addrModeINDY                     // Indirect Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

type operandKind uint8

const (
	operandNone operandKind = iota
	operandMemory
	operandAccumulator
)

// operand is the location an instruction works on: a memory address or
// the accumulator. Implied instructions get operandNone and must not touch it.
type operand struct {
	kind operandKind
	addr uint16
}

func memOperand(addr uint16) operand {
	return operand{kind: operandMemory, addr: addr}
}

func (c *CPU) load(op operand) uint8 {
	switch op.kind {
	case operandMemory:
		return c.read8(op.addr)
	case operandAccumulator:
		return c.a
	}
	panic("load from implied operand")
}

func (c *CPU) store(op operand, data uint8) {
	switch op.kind {
	case operandMemory:
		c.write8(op.addr, data)
		return
	case operandAccumulator:
		c.a = data
		return
	}
	panic("store to implied operand")
}

// fetch8 consumes the next operand byte.
func (c *CPU) fetch8() uint8 {
	c.pc++
	return c.read8(c.pc)
}

// fetch16 consumes the next two operand bytes as a little-endian word.
func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return lo | hi<<8
}

func (c *CPU) crossPage(base, addr uint16) {
	if isDiffPage(base, addr) {
		c.penalty++
	}
}

// resolve consumes the operand bytes of the current instruction and returns
// its operand. PC is left on the last byte consumed.
func (c *CPU) resolve(mode addrMode) operand {
	switch mode {
	case addrModeIMM:
		c.pc++
		return memOperand(c.pc)

	case addrModeZP:
		return memOperand(uint16(c.fetch8()))

	case addrModeZPX:
		// the sum stays in page 0
		return memOperand(uint16(c.fetch8() + c.x))

	case addrModeZPY:
		return memOperand(uint16(c.fetch8() + c.y))

	case addrModeABS:
		return memOperand(c.fetch16())

	case addrModeABSX:
		base := c.fetch16()
		addr := base + uint16(c.x)
		c.crossPage(base, addr)
		return memOperand(addr)

	case addrModeABSY:
		base := c.fetch16()
		addr := base + uint16(c.y)
		c.crossPage(base, addr)
		return memOperand(addr)

	case addrModeIND:
		ptr := c.fetch16()
		hi := ptr + 1
		if ptr&0x00ff == 0x00ff { // simulate 6502 bug
			hi = ptr & 0xff00
		}
		return memOperand(uint16(c.read8(ptr)) | uint16(c.read8(hi))<<8)

	case addrModeINDX:
		zp := c.fetch8() + c.x
		lo := uint16(c.read8(uint16(zp)))
		hi := uint16(c.read8(uint16(zp + 1)))
		return memOperand(lo | hi<<8)

	case addrModeINDY:
		zp := c.fetch8()
		lo := uint16(c.read8(uint16(zp)))
		hi := uint16(c.read8(uint16(zp + 1)))
		base := lo | hi<<8
		addr := base + uint16(c.y)
		c.crossPage(base, addr)
		return memOperand(addr)

	case addrModeREL:
		offset := int8(c.fetch8())
		// PC is on the offset byte here; with the end-of-step increment
		// the branch lands on offset + the address after the instruction.
		return memOperand(c.pc + uint16(offset))

	case addrModeACC:
		return operand{kind: operandAccumulator}

	case addrModeIMP:
		return operand{}
	}

	panic(fmt.Sprintf("unsupported addressing mode %d", mode))
}
