package mos6502

import "fmt"

// disassembleAt renders the instruction at pc and returns its encoded size.
func disassembleAt(mem ReadWriter, pc uint16) (string, uint8) {
	in := instructions[mem.Read8(pc)]
	if in.halts() {
		return fmt.Sprintf("$%04X: ???", pc), 1
	}

	read16 := func(addr uint16) uint16 {
		return uint16(mem.Read8(addr)) | uint16(mem.Read8(addr+1))<<8
	}
	next := pc + 1

	var s string
	switch in.mode {
	case addrModeIMM:
		s = fmt.Sprintf("$%04X: %s #$%02X {%s}", pc, in.name, mem.Read8(next), in.mode)
	case addrModeZP:
		s = fmt.Sprintf("$%04X: %s $%02X {%s}", pc, in.name, mem.Read8(next), in.mode)
	case addrModeZPX:
		s = fmt.Sprintf("$%04X: %s $%02X,X {%s}", pc, in.name, mem.Read8(next), in.mode)
	case addrModeZPY:
		s = fmt.Sprintf("$%04X: %s $%02X,Y {%s}", pc, in.name, mem.Read8(next), in.mode)
	case addrModeABS:
		s = fmt.Sprintf("$%04X: %s $%04X {%s}", pc, in.name, read16(next), in.mode)
	case addrModeABSX:
		s = fmt.Sprintf("$%04X: %s $%04X,X {%s}", pc, in.name, read16(next), in.mode)
	case addrModeABSY:
		s = fmt.Sprintf("$%04X: %s $%04X,Y {%s}", pc, in.name, read16(next), in.mode)
	case addrModeIND:
		s = fmt.Sprintf("$%04X: %s ($%04X) {%s}", pc, in.name, read16(next), in.mode)
	case addrModeINDX:
		s = fmt.Sprintf("$%04X: %s ($%02X,X) {%s}", pc, in.name, mem.Read8(next), in.mode)
	case addrModeINDY:
		s = fmt.Sprintf("$%04X: %s ($%02X),Y {%s}", pc, in.name, mem.Read8(next), in.mode)
	case addrModeREL:
		offset := int8(mem.Read8(next))
		s = fmt.Sprintf("$%04X: %s $%04X {%s}", pc, in.name, pc+2+uint16(offset), in.mode)
	case addrModeACC:
		s = fmt.Sprintf("$%04X: %s A {%s}", pc, in.name, in.mode)
	default:
		s = fmt.Sprintf("$%04X: %s {%s}", pc, in.name, in.mode)
	}
	return s, in.size
}

// disassemble returns the instructions between from and to (inclusive),
// keyed by address.
func disassemble(mem ReadWriter, from, to uint16) map[uint16]string {
	disasm := make(map[uint16]string)

	addr := uint32(from)
	for addr <= uint32(to) {
		s, size := disassembleAt(mem, uint16(addr))
		disasm[uint16(addr)] = s
		addr += uint32(size)
	}

	return disasm
}
