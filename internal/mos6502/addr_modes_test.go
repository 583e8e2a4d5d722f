package mos6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	type testArgs struct {
		mode            addrMode
		operandBytes    []uint8
		x, y            uint8
		mem             map[uint16]uint8
		expected        operand
		expectedPC      uint16
		expectedPenalty uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c, mem := newTestCPU(append([]uint8{0xea}, in.operandBytes...)...)
		for addr, data := range in.mem {
			mem.Write8(addr, data)
		}
		c.x = in.x
		c.y = in.y

		got := c.resolve(in.mode)

		assert.Equal(t, in.expected, got, "operand")
		assert.Equal(t, in.expectedPC, c.pc, "PC")
		assert.Equal(t, in.expectedPenalty, c.penalty, "page crossing penalty")
	}

	t.Run("immediate", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeIMM,
			operandBytes: []uint8{0x42},
			expected:     memOperand(ProgramStart + 1),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("zero page", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeZP,
			operandBytes: []uint8{0x42},
			expected:     memOperand(0x0042),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("zero page X wraps within page 0", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeZPX,
			operandBytes: []uint8{0xf0},
			x:            0x20,
			expected:     memOperand(0x0010),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("zero page Y wraps within page 0", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeZPY,
			operandBytes: []uint8{0xff},
			y:            0x01,
			expected:     memOperand(0x0000),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("absolute", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeABS,
			operandBytes: []uint8{0x34, 0x12},
			expected:     memOperand(0x1234),
			expectedPC:   ProgramStart + 2,
		})
	})

	t.Run("absolute X same page", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeABSX,
			operandBytes: []uint8{0x00, 0x12},
			x:            0xff,
			expected:     memOperand(0x12ff),
			expectedPC:   ProgramStart + 2,
		})
	})

	t.Run("absolute X page crossed", func(t *testing.T) {
		testDo(t, testArgs{
			mode:            addrModeABSX,
			operandBytes:    []uint8{0x01, 0x12},
			x:               0xff,
			expected:        memOperand(0x1300),
			expectedPC:      ProgramStart + 2,
			expectedPenalty: 1,
		})
	})

	t.Run("absolute Y wraps around the address space", func(t *testing.T) {
		testDo(t, testArgs{
			mode:            addrModeABSY,
			operandBytes:    []uint8{0xff, 0xff},
			y:               0x02,
			expected:        memOperand(0x0001),
			expectedPC:      ProgramStart + 2,
			expectedPenalty: 1,
		})
	})

	t.Run("indirect", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeIND,
			operandBytes: []uint8{0x20, 0x30},
			mem:          map[uint16]uint8{0x3020: 0xcd, 0x3021: 0xab},
			expected:     memOperand(0xabcd),
			expectedPC:   ProgramStart + 2,
		})
	})

	t.Run("indirect page wrap bug", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeIND,
			operandBytes: []uint8{0xff, 0x30},
			mem:          map[uint16]uint8{0x30ff: 0x00, 0x3000: 0x40, 0x3100: 0x50},
			expected:     memOperand(0x4000),
			expectedPC:   ProgramStart + 2,
		})
	})

	t.Run("indexed indirect", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeINDX,
			operandBytes: []uint8{0x20},
			x:            0x04,
			mem:          map[uint16]uint8{0x0024: 0x74, 0x0025: 0x20},
			expected:     memOperand(0x2074),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("indexed indirect wraps within page 0", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeINDX,
			operandBytes: []uint8{0xff},
			x:            0x01,
			mem:          map[uint16]uint8{0x0000: 0x34, 0x0001: 0x12, 0x0100: 0x99, 0x0101: 0x99},
			expected:     memOperand(0x1234),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("indexed indirect high byte wraps", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeINDX,
			operandBytes: []uint8{0xfe},
			x:            0x01,
			mem:          map[uint16]uint8{0x00ff: 0x34, 0x0000: 0x12, 0x0100: 0x99},
			expected:     memOperand(0x1234),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("indirect indexed", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeINDY,
			operandBytes: []uint8{0x86},
			y:            0x10,
			mem:          map[uint16]uint8{0x0086: 0x28, 0x0087: 0x40},
			expected:     memOperand(0x4038),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("indirect indexed page crossed", func(t *testing.T) {
		testDo(t, testArgs{
			mode:            addrModeINDY,
			operandBytes:    []uint8{0xff},
			y:               0x01,
			mem:             map[uint16]uint8{0x00ff: 0xff, 0x0000: 0x20},
			expected:        memOperand(0x2100),
			expectedPC:      ProgramStart + 1,
			expectedPenalty: 1,
		})
	})

	t.Run("relative forward", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeREL,
			operandBytes: []uint8{0x10},
			expected:     memOperand(ProgramStart + 1 + 0x10),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("relative backward", func(t *testing.T) {
		testDo(t, testArgs{
			mode:         addrModeREL,
			operandBytes: []uint8{0xfc}, // -4
			expected:     memOperand(ProgramStart + 1 - 4),
			expectedPC:   ProgramStart + 1,
		})
	})

	t.Run("accumulator", func(t *testing.T) {
		testDo(t, testArgs{
			mode:       addrModeACC,
			expected:   operand{kind: operandAccumulator},
			expectedPC: ProgramStart,
		})
	})

	t.Run("implied", func(t *testing.T) {
		testDo(t, testArgs{
			mode:       addrModeIMP,
			expected:   operand{},
			expectedPC: ProgramStart,
		})
	})
}

func TestOperand_Accumulator(t *testing.T) {
	c, mem := newTestCPU()
	c.a = 0x12

	op := operand{kind: operandAccumulator}
	assert.Equal(t, uint8(0x12), c.load(op))

	c.store(op, 0x34)
	assert.Equal(t, uint8(0x34), c.a)
	assert.Equal(t, uint8(0), mem.Read8(0), "memory must not be touched")
}

func TestOperand_ImpliedPanics(t *testing.T) {
	c, _ := newTestCPU()
	assert.Panics(t, func() { c.load(operand{}) })
	assert.Panics(t, func() { c.store(operand{}, 0) })
}

func TestAddrMode_String(t *testing.T) {
	assert.Equal(t, "INDY", addrModeINDY.String())
	assert.Equal(t, "???", addrMode(0).String())
}
