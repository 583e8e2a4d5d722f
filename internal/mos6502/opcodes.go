package mos6502

type instr struct {
	name   string
	opcode uint8
	size   uint8
	cycles uint8
	mode   addrMode
	op     operation
}

// Instruction is the read-only view of an instruction table entry.
type Instruction struct {
	Name   string
	Opcode uint8
	Size   uint8
	Cycles uint8
	Mode   string
}

// instructions maps every opcode to its descriptor. It is built once and
// never written afterwards.
var instructions = newInstructionTable()

// Lookup returns the descriptor of opcode.
func Lookup(opcode uint8) Instruction {
	in := instructions[opcode]
	return Instruction{
		Name:   in.name,
		Opcode: in.opcode,
		Size:   in.size,
		Cycles: in.cycles,
		Mode:   in.mode.String(),
	}
}

func (in instr) halts() bool {
	return in.op == opHLT
}

func newInstructionTable() [0x100]instr {
	var t [0x100]instr

	// unmapped opcodes halt the engine
	for i := range t {
		t[i] = instr{op: opHLT, mode: addrModeIMP, size: 1, cycles: 1}
	}

	t[0x00] = instr{op: opBRK, mode: addrModeIMP, size: 1, cycles: 7}
	t[0x01] = instr{op: opORA, mode: addrModeINDX, size: 2, cycles: 6}
	t[0x05] = instr{op: opORA, mode: addrModeZP, size: 2, cycles: 3}
	t[0x06] = instr{op: opASL, mode: addrModeZP, size: 2, cycles: 5}
	t[0x08] = instr{op: opPHP, mode: addrModeIMP, size: 1, cycles: 3}
	t[0x09] = instr{op: opORA, mode: addrModeIMM, size: 2, cycles: 2}
	t[0x0a] = instr{op: opASL, mode: addrModeACC, size: 1, cycles: 2}
	t[0x0d] = instr{op: opORA, mode: addrModeABS, size: 3, cycles: 4}
	t[0x0e] = instr{op: opASL, mode: addrModeABS, size: 3, cycles: 6}
	t[0x10] = instr{op: opBPL, mode: addrModeREL, size: 2, cycles: 2}
	t[0x11] = instr{op: opORA, mode: addrModeINDY, size: 2, cycles: 5}
	t[0x15] = instr{op: opORA, mode: addrModeZPX, size: 2, cycles: 4}
	t[0x16] = instr{op: opASL, mode: addrModeZPX, size: 2, cycles: 6}
	t[0x18] = instr{op: opCLC, mode: addrModeIMP, size: 1, cycles: 2}
	t[0x19] = instr{op: opORA, mode: addrModeABSY, size: 3, cycles: 4}
	t[0x1d] = instr{op: opORA, mode: addrModeABSX, size: 3, cycles: 4}
	t[0x1e] = instr{op: opASL, mode: addrModeABSX, size: 3, cycles: 7}
	t[0x20] = instr{op: opJSR, mode: addrModeABS, size: 3, cycles: 6}
	t[0x21] = instr{op: opAND, mode: addrModeINDX, size: 2, cycles: 6}
	t[0x24] = instr{op: opBIT, mode: addrModeZP, size: 2, cycles: 3}
	t[0x25] = instr{op: opAND, mode: addrModeZP, size: 2, cycles: 3}
	t[0x26] = instr{op: opROL, mode: addrModeZP, size: 2, cycles: 5}
	t[0x28] = instr{op: opPLP, mode: addrModeIMP, size: 1, cycles: 4}
	t[0x29] = instr{op: opAND, mode: addrModeIMM, size: 2, cycles: 2}
	t[0x2a] = instr{op: opROL, mode: addrModeACC, size: 1, cycles: 2}
	t[0x2c] = instr{op: opBIT, mode: addrModeABS, size: 3, cycles: 4}
	t[0x2d] = instr{op: opAND, mode: addrModeABS, size: 3, cycles: 4}
	t[0x2e] = instr{op: opROL, mode: addrModeABS, size: 3, cycles: 6}
	t[0x30] = instr{op: opBMI, mode: addrModeREL, size: 2, cycles: 2}
	t[0x31] = instr{op: opAND, mode: addrModeINDY, size: 2, cycles: 5}
	t[0x35] = instr{op: opAND, mode: addrModeZPX, size: 2, cycles: 4}
	t[0x36] = instr{op: opROL, mode: addrModeZPX, size: 2, cycles: 6}
	t[0x38] = instr{op: opSEC, mode: addrModeIMP, size: 1, cycles: 2}
	t[0x39] = instr{op: opAND, mode: addrModeABSY, size: 3, cycles: 4}
	t[0x3d] = instr{op: opAND, mode: addrModeABSX, size: 3, cycles: 4}
	t[0x3e] = instr{op: opROL, mode: addrModeABSX, size: 3, cycles: 7}
	t[0x40] = instr{op: opRTI, mode: addrModeIMP, size: 1, cycles: 6}
	t[0x41] = instr{op: opEOR, mode: addrModeINDX, size: 2, cycles: 6}
	t[0x45] = instr{op: opEOR, mode: addrModeZP, size: 2, cycles: 3}
	t[0x46] = instr{op: opLSR, mode: addrModeZP, size: 2, cycles: 5}
	t[0x48] = instr{op: opPHA, mode: addrModeIMP, size: 1, cycles: 3}
	t[0x49] = instr{op: opEOR, mode: addrModeIMM, size: 2, cycles: 2}
	t[0x4a] = instr{op: opLSR, mode: addrModeACC, size: 1, cycles: 2}
	t[0x4c] = instr{op: opJMP, mode: addrModeABS, size: 3, cycles: 3}
	t[0x4d] = instr{op: opEOR, mode: addrModeABS, size: 3, cycles: 4}
	t[0x4e] = instr{op: opLSR, mode: addrModeABS, size: 3, cycles: 6}
	t[0x50] = instr{op: opBVC, mode: addrModeREL, size: 2, cycles: 2}
	t[0x51] = instr{op: opEOR, mode: addrModeINDY, size: 2, cycles: 5}
	t[0x55] = instr{op: opEOR, mode: addrModeZPX, size: 2, cycles: 4}
	t[0x56] = instr{op: opLSR, mode: addrModeZPX, size: 2, cycles: 6}
	t[0x58] = instr{op: opCLI, mode: addrModeIMP, size: 1, cycles: 2}
	t[0x59] = instr{op: opEOR, mode: addrModeABSY, size: 3, cycles: 4}
	t[0x5d] = instr{op: opEOR, mode: addrModeABSX, size: 3, cycles: 4}
	t[0x5e] = instr{op: opLSR, mode: addrModeABSX, size: 3, cycles: 7}
	t[0x60] = instr{op: opRTS, mode: addrModeIMP, size: 1, cycles: 6}
	t[0x61] = instr{op: opADC, mode: addrModeINDX, size: 2, cycles: 6}
	t[0x65] = instr{op: opADC, mode: addrModeZP, size: 2, cycles: 3}
	t[0x66] = instr{op: opROR, mode: addrModeZP, size: 2, cycles: 5}
	t[0x68] = instr{op: opPLA, mode: addrModeIMP, size: 1, cycles: 4}
	t[0x69] = instr{op: opADC, mode: addrModeIMM, size: 2, cycles: 2}
	t[0x6a] = instr{op: opROR, mode: addrModeACC, size: 1, cycles: 2}
	t[0x6c] = instr{op: opJMP, mode: addrModeIND, size: 3, cycles: 5}
	t[0x6d] = instr{op: opADC, mode: addrModeABS, size: 3, cycles: 4}
	t[0x6e] = instr{op: opROR, mode: addrModeABS, size: 3, cycles: 6}
	t[0x70] = instr{op: opBVS, mode: addrModeREL, size: 2, cycles: 2}
	t[0x71] = instr{op: opADC, mode: addrModeINDY, size: 2, cycles: 5}
	t[0x75] = instr{op: opADC, mode: addrModeZPX, size: 2, cycles: 4}
	t[0x76] = instr{op: opROR, mode: addrModeZPX, size: 2, cycles: 6}
	t[0x78] = instr{op: opSEI, mode: addrModeIMP, size: 1, cycles: 2}
	t[0x79] = instr{op: opADC, mode: addrModeABSY, size: 3, cycles: 4}
	t[0x7d] = instr{op: opADC, mode: addrModeABSX, size: 3, cycles: 4}
	t[0x7e] = instr{op: opROR, mode: addrModeABSX, size: 3, cycles: 7}
	t[0x81] = instr{op: opSTA, mode: addrModeINDX, size: 2, cycles: 6}
	t[0x84] = instr{op: opSTY, mode: addrModeZP, size: 2, cycles: 3}
	t[0x85] = instr{op: opSTA, mode: addrModeZP, size: 2, cycles: 3}
	t[0x86] = instr{op: opSTX, mode: addrModeZP, size: 2, cycles: 3}
	t[0x88] = instr{op: opDEY, mode: addrModeIMP, size: 1, cycles: 2}
	t[0x8a] = instr{op: opTXA, mode: addrModeIMP, size: 1, cycles: 2}
	t[0x8c] = instr{op: opSTY, mode: addrModeABS, size: 3, cycles: 4}
	t[0x8d] = instr{op: opSTA, mode: addrModeABS, size: 3, cycles: 4}
	t[0x8e] = instr{op: opSTX, mode: addrModeABS, size: 3, cycles: 4}
	t[0x90] = instr{op: opBCC, mode: addrModeREL, size: 2, cycles: 2}
	t[0x91] = instr{op: opSTA, mode: addrModeINDY, size: 2, cycles: 6}
	t[0x94] = instr{op: opSTY, mode: addrModeZPX, size: 2, cycles: 4}
	t[0x95] = instr{op: opSTA, mode: addrModeZPX, size: 2, cycles: 4}
	t[0x96] = instr{op: opSTX, mode: addrModeZPY, size: 2, cycles: 4}
	t[0x98] = instr{op: opTYA, mode: addrModeIMP, size: 1, cycles: 2}
	t[0x99] = instr{op: opSTA, mode: addrModeABSY, size: 3, cycles: 5}
	t[0x9a] = instr{op: opTXS, mode: addrModeIMP, size: 1, cycles: 2}
	t[0x9d] = instr{op: opSTA, mode: addrModeABSX, size: 3, cycles: 5}
	t[0xa0] = instr{op: opLDY, mode: addrModeIMM, size: 2, cycles: 2}
	t[0xa1] = instr{op: opLDA, mode: addrModeINDX, size: 2, cycles: 6}
	t[0xa2] = instr{op: opLDX, mode: addrModeIMM, size: 2, cycles: 2}
	t[0xa4] = instr{op: opLDY, mode: addrModeZP, size: 2, cycles: 3}
	t[0xa5] = instr{op: opLDA, mode: addrModeZP, size: 2, cycles: 3}
	t[0xa6] = instr{op: opLDX, mode: addrModeZP, size: 2, cycles: 3}
	t[0xa8] = instr{op: opTAY, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xa9] = instr{op: opLDA, mode: addrModeIMM, size: 2, cycles: 2}
	t[0xaa] = instr{op: opTAX, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xac] = instr{op: opLDY, mode: addrModeABS, size: 3, cycles: 4}
	t[0xad] = instr{op: opLDA, mode: addrModeABS, size: 3, cycles: 4}
	t[0xae] = instr{op: opLDX, mode: addrModeABS, size: 3, cycles: 4}
	t[0xb0] = instr{op: opBCS, mode: addrModeREL, size: 2, cycles: 2}
	t[0xb1] = instr{op: opLDA, mode: addrModeINDY, size: 2, cycles: 5}
	t[0xb4] = instr{op: opLDY, mode: addrModeZPX, size: 2, cycles: 4}
	t[0xb5] = instr{op: opLDA, mode: addrModeZPX, size: 2, cycles: 4}
	t[0xb6] = instr{op: opLDX, mode: addrModeZPY, size: 2, cycles: 4}
	t[0xb8] = instr{op: opCLV, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xb9] = instr{op: opLDA, mode: addrModeABSY, size: 3, cycles: 4}
	t[0xba] = instr{op: opTSX, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xbc] = instr{op: opLDY, mode: addrModeABSX, size: 3, cycles: 4}
	t[0xbd] = instr{op: opLDA, mode: addrModeABSX, size: 3, cycles: 4}
	t[0xbe] = instr{op: opLDX, mode: addrModeABSY, size: 3, cycles: 4}
	t[0xc0] = instr{op: opCPY, mode: addrModeIMM, size: 2, cycles: 2}
	t[0xc1] = instr{op: opCMP, mode: addrModeINDX, size: 2, cycles: 6}
	t[0xc4] = instr{op: opCPY, mode: addrModeZP, size: 2, cycles: 3}
	t[0xc5] = instr{op: opCMP, mode: addrModeZP, size: 2, cycles: 3}
	t[0xc6] = instr{op: opDEC, mode: addrModeZP, size: 2, cycles: 5}
	t[0xc8] = instr{op: opINY, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xc9] = instr{op: opCMP, mode: addrModeIMM, size: 2, cycles: 2}
	t[0xca] = instr{op: opDEX, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xcc] = instr{op: opCPY, mode: addrModeABS, size: 3, cycles: 4}
	t[0xcd] = instr{op: opCMP, mode: addrModeABS, size: 3, cycles: 4}
	t[0xce] = instr{op: opDEC, mode: addrModeABS, size: 3, cycles: 6}
	t[0xd0] = instr{op: opBNE, mode: addrModeREL, size: 2, cycles: 2}
	t[0xd1] = instr{op: opCMP, mode: addrModeINDY, size: 2, cycles: 5}
	t[0xd5] = instr{op: opCMP, mode: addrModeZPX, size: 2, cycles: 4}
	t[0xd6] = instr{op: opDEC, mode: addrModeZPX, size: 2, cycles: 6}
	t[0xd8] = instr{op: opCLD, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xd9] = instr{op: opCMP, mode: addrModeABSY, size: 3, cycles: 4}
	t[0xdd] = instr{op: opCMP, mode: addrModeABSX, size: 3, cycles: 4}
	t[0xde] = instr{op: opDEC, mode: addrModeABSX, size: 3, cycles: 7}
	t[0xe0] = instr{op: opCPX, mode: addrModeIMM, size: 2, cycles: 2}
	t[0xe1] = instr{op: opSBC, mode: addrModeINDX, size: 2, cycles: 6}
	t[0xe4] = instr{op: opCPX, mode: addrModeZP, size: 2, cycles: 3}
	t[0xe5] = instr{op: opSBC, mode: addrModeZP, size: 2, cycles: 3}
	t[0xe6] = instr{op: opINC, mode: addrModeZP, size: 2, cycles: 5}
	t[0xe8] = instr{op: opINX, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xe9] = instr{op: opSBC, mode: addrModeIMM, size: 2, cycles: 2}
	t[0xea] = instr{op: opNOP, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xec] = instr{op: opCPX, mode: addrModeABS, size: 3, cycles: 4}
	t[0xed] = instr{op: opSBC, mode: addrModeABS, size: 3, cycles: 4}
	t[0xee] = instr{op: opINC, mode: addrModeABS, size: 3, cycles: 6}
	t[0xf0] = instr{op: opBEQ, mode: addrModeREL, size: 2, cycles: 2}
	t[0xf1] = instr{op: opSBC, mode: addrModeINDY, size: 2, cycles: 5}
	t[0xf5] = instr{op: opSBC, mode: addrModeZPX, size: 2, cycles: 4}
	t[0xf6] = instr{op: opINC, mode: addrModeZPX, size: 2, cycles: 6}
	t[0xf8] = instr{op: opSED, mode: addrModeIMP, size: 1, cycles: 2}
	t[0xf9] = instr{op: opSBC, mode: addrModeABSY, size: 3, cycles: 4}
	t[0xfd] = instr{op: opSBC, mode: addrModeABSX, size: 3, cycles: 4}
	t[0xfe] = instr{op: opINC, mode: addrModeABSX, size: 3, cycles: 7}

	for i := range t {
		t[i].opcode = uint8(i)
		t[i].name = t[i].op.String()
	}
	return t
}
