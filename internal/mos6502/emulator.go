package mos6502

import (
	"context"
	"fmt"
	"log"
	"time"
)

type State uint8

const (
	Running State = iota
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Clock paces execution. Wait blocks for the time the given number of
// cycles takes on the real chip.
type Clock interface {
	Wait(cycles uint64)
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func(cycles uint64)

func (f ClockFunc) Wait(cycles uint64) {
	f(cycles)
}

type sleepClock struct {
	period time.Duration
}

func (s sleepClock) Wait(cycles uint64) {
	time.Sleep(time.Duration(cycles) * s.period)
}

type Config struct {
	// Deterministic turns off the timing delay and lets BRK run its
	// interrupt sequence instead of halting the engine.
	Deterministic bool

	// ClockPeriod is the duration of one cycle. 1µs emulates a 1 MHz part.
	ClockPeriod time.Duration

	// Trace logs every instruction before it is executed.
	Trace bool

	Logger *log.Logger
}

func DefaultConfig() Config {
	return Config{
		ClockPeriod: time.Microsecond,
		Logger:      log.Default(),
	}
}

type Option func(*Emulator)

// WithClock replaces the sleeping clock built from Config.ClockPeriod.
func WithClock(clock Clock) Option {
	return func(e *Emulator) {
		e.clock = clock
	}
}

// Emulator is one execution session. It owns its CPU and memory; sessions
// share nothing and are not safe for concurrent use.
type Emulator struct {
	cfg   Config
	cpu   *CPU
	mem   *Memory
	clock Clock
	log   *log.Logger

	state      State
	haltOpcode uint8
}

func New(cfg Config, opts ...Option) *Emulator {
	if cfg.ClockPeriod <= 0 {
		cfg.ClockPeriod = time.Microsecond
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	e := &Emulator{
		cfg:   cfg,
		mem:   NewMemory(),
		clock: sleepClock{period: cfg.ClockPeriod},
		log:   cfg.Logger,
	}
	e.cpu = NewCPU(e.mem)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load installs program at the start of the program region and resets the CPU.
// The session is left as it was if the image does not fit.
func (e *Emulator) Load(program []byte) error {
	if err := e.mem.Load(program); err != nil {
		return fmt.Errorf("couldn't load program: %w", err)
	}
	e.log.Printf("loaded %d bytes at $%04X\n", len(program), ProgramStart)
	e.Reset()
	return nil
}

// Reset puts the CPU in its initial state and the engine in Running.
func (e *Emulator) Reset() {
	e.cpu.Reset()
	e.state = Running
	e.haltOpcode = 0
}

// Step executes one instruction and reports whether execution may continue.
func (e *Emulator) Step() bool {
	if e.state == Halted {
		return false
	}

	pc := e.cpu.pc
	opcode := e.cpu.read8(pc)
	in := instructions[opcode]
	if in.halts() || (in.op == opBRK && !e.cfg.Deterministic) {
		e.state = Halted
		e.haltOpcode = opcode
		e.log.Printf("opcode %02X (%s). PC: %04X. halting...\n", opcode, in.name, pc)
		return false
	}

	if e.cfg.Trace {
		e.trace(pc)
	}

	cycles := e.cpu.step(in)
	if !e.cfg.Deterministic {
		e.clock.Wait(cycles)
	}
	return true
}

// Run executes instructions until the engine halts or PC leaves the
// program region.
func (e *Emulator) Run() error {
	return e.RunContext(context.Background())
}

// RunContext is Run that also stops, between two instructions, once ctx is done.
func (e *Emulator) RunContext(ctx context.Context) error {
	for e.state == Running && inProgramRegion(e.cpu.pc) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !e.Step() {
			break
		}
	}
	return nil
}

func inProgramRegion(addr uint16) bool {
	return addr >= ProgramStart && addr <= ProgramEnd
}

func (e *Emulator) trace(pc uint16) {
	s, _ := disassembleAt(e.mem, pc)
	r := e.cpu.registers()
	e.log.Printf("%-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d\n",
		s, r.A, r.X, r.Y, r.P, r.SP, e.cpu.cycles)
}

func (e *Emulator) State() State {
	return e.state
}

// HaltOpcode returns the opcode that halted the engine.
func (e *Emulator) HaltOpcode() (uint8, bool) {
	return e.haltOpcode, e.state == Halted
}

// Cycles returns the cycles consumed since the last reset, page crossing
// penalties included.
func (e *Emulator) Cycles() uint64 {
	return e.cpu.cycles
}

func (e *Emulator) Registers() Registers {
	return e.cpu.registers()
}

func (e *Emulator) A() uint8       { return e.cpu.a }
func (e *Emulator) X() uint8       { return e.cpu.x }
func (e *Emulator) Y() uint8       { return e.cpu.y }
func (e *Emulator) SP() uint8      { return e.cpu.sp }
func (e *Emulator) PC() uint16     { return e.cpu.pc }
func (e *Emulator) P() uint8       { return e.cpu.p }
func (e *Emulator) SetA(v uint8)   { e.cpu.a = v }
func (e *Emulator) SetX(v uint8)   { e.cpu.x = v }
func (e *Emulator) SetY(v uint8)   { e.cpu.y = v }
func (e *Emulator) SetSP(v uint8)  { e.cpu.sp = v }
func (e *Emulator) SetPC(v uint16) { e.cpu.pc = v }
func (e *Emulator) SetP(v uint8)   { e.cpu.p = v }

func (e *Emulator) Flag(flag uint8) bool {
	return e.cpu.getFlag(flag)
}

func (e *Emulator) SetFlag(flag uint8, v bool) {
	e.cpu.setFlag(flag, v)
}

func (e *Emulator) Read8(addr uint16) uint8 {
	return e.mem.Read8(addr)
}

func (e *Emulator) Write8(addr uint16, data uint8) {
	e.mem.Write8(addr, data)
}

// Disassemble returns the instructions between from and to, keyed by address.
func (e *Emulator) Disassemble(from, to uint16) map[uint16]string {
	return disassemble(e.mem, from, to)
}
