package mos6502

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_CPU_SingleStepTest runs the per-opcode JSON suites from
// github.com/SingleStepTests/65x02 (6502/v1) when SINGLE_STEP_TEST_DIR points at them.
func Test_CPU_SingleStepTest(t *testing.T) {
	t.Parallel()

	type cpuState struct {
		PC uint16 `json:"pc"`
		S  uint8  `json:"s"`
		A  uint8  `json:"a"`
		X  uint8  `json:"x"`
		Y  uint8  `json:"y"`
		P  uint8  `json:"p"`

		// [address, value] pairs
		RAM [][]uint16 `json:"ram"`
	}

	type testInstance struct {
		Name    string   `json:"name"`
		Initial cpuState `json:"initial"`
		Final   cpuState `json:"final"`

		// [address, value, "read"|"write"] triples
		Cycles [][]any `json:"cycles"`
	}

	dir := os.Getenv("SINGLE_STEP_TEST_DIR")
	if dir == "" {
		t.Skip("skipping test because SINGLE_STEP_TEST_DIR is not set")
		return
	}

	files, err := os.ReadDir(dir)
	require.NoError(t, err)

	mem := newSingleStepMem(t)
	doTest := func(t *testing.T, test testInstance) {
		mem.reset()
		for _, addrVal := range test.Initial.RAM {
			mem.set(addrVal[0], uint8(addrVal[1]))
		}
		for _, cyc := range test.Cycles {
			if cyc[2].(string) != "write" {
				continue
			}
			mem.allow(uint16(cyc[0].(float64)), uint8(cyc[1].(float64)))
		}

		c := NewCPU(mem)
		c.pc = test.Initial.PC
		c.sp = test.Initial.S
		c.a = test.Initial.A
		c.x = test.Initial.X
		c.y = test.Initial.Y
		c.p = test.Initial.P

		c.step(instructions[c.read8(c.pc)])

		require.Equal(t, test.Final.PC, c.pc, "%s: PC", test.Name)
		require.Equal(t, test.Final.S, c.sp, "%s: S", test.Name)
		require.Equal(t, test.Final.A, c.a, "%s: A", test.Name)
		require.Equal(t, test.Final.X, c.x, "%s: X", test.Name)
		require.Equal(t, test.Final.Y, c.y, "%s: Y", test.Name)
		require.Equal(t, test.Final.P, c.p, "%s: P", test.Name)

		for _, addrVal := range test.Final.RAM {
			require.Equal(t, uint8(addrVal[1]), mem.data[addrVal[0]], "%s: memory at %04X", test.Name, addrVal[0])
		}
	}

	var tests []testInstance
	for _, file := range files {
		opcode, err := strconv.ParseUint(filepath.Base(file.Name())[:2], 16, 8)
		if err != nil {
			t.Fatalf("failed to parse opcode from file name %s: %v", file.Name(), err)
		}

		t.Run(file.Name(), func(t *testing.T) {
			in := instructions[opcode]
			if in.halts() {
				t.Skipf("skipping test for opcode %02X because it is not supported", opcode)
				return
			}

			fileData, err := os.ReadFile(filepath.Join(dir, file.Name()))
			require.NoError(t, err)

			tests = tests[:0]
			require.NoError(t, json.Unmarshal(fileData, &tests), file.Name())

			for _, test := range tests {
				// decimal arithmetic is not emulated
				if (in.op == opADC || in.op == opSBC) && test.Initial.P&FlagD != 0 {
					continue
				}
				doTest(t, test)
			}
		})
	}
}

// singleStepMem fails the test on any write the recorded bus cycles don't contain.
type singleStepMem struct {
	t       *testing.T
	data    []uint8
	allowed map[uint32]struct{}
}

func newSingleStepMem(t *testing.T) *singleStepMem {
	return &singleStepMem{
		t:       t,
		data:    make([]uint8, memSizeBytes),
		allowed: make(map[uint32]struct{}),
	}
}

func (m *singleStepMem) key(addr uint16, data uint8) uint32 {
	return uint32(addr) | uint32(data)<<16
}

func (m *singleStepMem) allow(addr uint16, data uint8) {
	m.allowed[m.key(addr, data)] = struct{}{}
}

func (m *singleStepMem) set(addr uint16, data uint8) {
	m.data[addr] = data
}

func (m *singleStepMem) reset() {
	clear(m.data)
	clear(m.allowed)
}

func (m *singleStepMem) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *singleStepMem) Write8(addr uint16, data uint8) {
	if _, ok := m.allowed[m.key(addr, data)]; !ok {
		m.t.Fatalf("not allowed write to address %04X with value %02X", addr, data)
	}
	m.data[addr] = data
}
