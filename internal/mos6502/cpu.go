package mos6502

import "strings"

const (
	FlagC = uint8(1 << iota) // Carry
	FlagZ                    // Zero
	FlagI                    // Interrupt Disable
	FlagD                    // Decimal Mode
	FlagB                    // Break Command
	FlagU                    // Unused
	FlagV                    // Overflow
	FlagN                    // Negative
)

// CPU holds the processor state. PC always points at the last byte the
// current instruction consumed; the engine moves it to the next opcode
// once the instruction is done.
type CPU struct {
	a       uint8
	x       uint8
	y       uint8
	p       uint8
	sp      uint8
	pc      uint16
	mem     ReadWriter
	cycles  uint64 // total cycles consumed
	penalty uint8  // page crossing cycles of the current instruction
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func NewCPU(mem ReadWriter) *CPU {
	c := &CPU{
		mem: mem,
	}
	c.Reset()
	return c
}

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(FlagZ, value == 0)
	c.setFlag(FlagN, value&FlagN > 0)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(StackStart | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(StackStart|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.stackPush8(hi)
	c.stackPush8(lo)
}

// Reset the CPU to its initial state. Memory is not touched.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = 0x00 | FlagU | FlagI
	c.sp = 0xfd
	c.pc = ProgramStart
	c.cycles = 0
	c.penalty = 0
}

// step executes in, moves PC past it and returns the cycles it took.
func (c *CPU) step(in instr) uint64 {
	c.penalty = 0
	c.execute(in)
	c.pc++

	n := uint64(in.cycles) + uint64(c.penalty)
	c.cycles += n
	return n
}

// Registers is a snapshot of the processor state.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	P  uint8
	SP uint8
	PC uint16
}

func (c CPU) registers() Registers {
	return Registers{A: c.a, X: c.x, Y: c.y, P: c.p, SP: c.sp, PC: c.pc}
}

// StatusString renders P as NV-BDIZC, lower case for cleared flags.
func (r Registers) StatusString() string {
	const names = "CZIDB-VN"
	var b strings.Builder
	for i := 7; i >= 0; i-- {
		ch := names[i]
		if r.P&(1<<i) == 0 && ch != '-' {
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}
