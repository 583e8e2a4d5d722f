package mos6502

import (
	"errors"
	"fmt"
)

// $0000-$00FF: Zero page
// $0100-$01FF: Stack page
// $0200-$7FFF: RAM
// $8000-$FFFF: Program (ROM) region, including the vectors at $FFFA-$FFFF
const (
	memSizeBytes = 0x10000

	StackStart = uint16(0x0100)
	StackEnd   = uint16(0x01FF)

	ProgramStart = uint16(0x8000)
	ProgramEnd   = uint16(0xFFFF)

	vectorIRQ = uint16(0xFFFE)
)

// ErrProgramTooLarge is returned by Load when an image does not fit into the
// program region.
var ErrProgramTooLarge = errors.New("program does not fit into the program region")

type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// Memory is the flat 64 KiB address space of the emulated machine.
type Memory struct {
	data [memSizeBytes]uint8
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *Memory) Write8(addr uint16, data uint8) {
	m.data[addr] = data
}

// Read16 reads a little-endian word. addr+1 wraps at the top of the address space.
func (m *Memory) Read16(addr uint16) uint16 {
	return uint16(m.data[addr]) | uint16(m.data[addr+1])<<8
}

func programCapacity() int {
	return int(ProgramEnd) - int(ProgramStart) + 1
}

// Load copies program into the program region. Memory is left untouched
// if the image is too large.
func (m *Memory) Load(program []byte) error {
	if len(program) > programCapacity() {
		return fmt.Errorf("%d bytes, capacity %d: %w", len(program), programCapacity(), ErrProgramTooLarge)
	}
	copy(m.data[ProgramStart:], program)
	return nil
}

// Clear zeroes the whole address space.
func (m *Memory) Clear() {
	m.data = [memSizeBytes]uint8{}
}
