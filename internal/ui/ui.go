package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/mos6502/internal/mos6502"
)

// P - pause
// R - one step and stop
// Backspace - reset

const (
	tps = 60

	codePanelWidth  = 320
	memPanelWidth   = 420
	screenHeight    = 480
	disasmLines     = 10
	memDumpRowBytes = 16
)

var (
	codePanelColor = color.RGBA{50, 50, 50, 255}
	memPanelColor  = color.RGBA{30, 30, 40, 255}
)

// UI is a debug monitor: it drives the emulator from the ebiten game loop
// and shows registers, code around PC, zero page and stack page.
type UI struct {
	emu    *mos6502.Emulator
	disasm map[uint16]string

	// cycles executed per frame when not paused
	cyclesPerFrame uint64
	paused         bool
}

func New(emu *mos6502.Emulator, cyclesPerSecond uint64) *UI {
	return &UI{
		emu:            emu,
		disasm:         emu.Disassemble(mos6502.ProgramStart, mos6502.ProgramEnd),
		cyclesPerFrame: max(1, cyclesPerSecond/tps),
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.paused = !ui.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ui.emu.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.paused = true
		ui.emu.Step()
		return nil
	}

	if !ui.paused {
		ui.runFrame()
	}
	return nil
}

func (ui *UI) runFrame() {
	start := ui.emu.Cycles()
	for ui.emu.Cycles()-start < ui.cyclesPerFrame {
		pc := ui.emu.PC()
		if pc < mos6502.ProgramStart || !ui.emu.Step() {
			return
		}
	}
}

func (ui *UI) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, codePanelWidth, screenHeight, codePanelColor, false)
	ebitenutil.DebugPrintAt(screen, ui.codePanel(), 0, 0)

	vector.DrawFilledRect(screen, codePanelWidth, 0, memPanelWidth, screenHeight, memPanelColor, false)
	ebitenutil.DebugPrintAt(screen, ui.memPanel(), codePanelWidth, 0)
}

func (ui *UI) codePanel() string {
	r := ui.emu.Registers()

	var s strings.Builder
	fmt.Fprintf(&s, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&s, " STATE: %s", ui.emu.State())
	if opcode, halted := ui.emu.HaltOpcode(); halted {
		fmt.Fprintf(&s, " (opcode %02X)", opcode)
	}
	if ui.paused {
		s.WriteString(" [PAUSED]")
	}
	s.WriteString("\n")
	fmt.Fprintf(&s, " STATUS: %s\n", r.StatusString())
	fmt.Fprintf(&s, " PC: $%04X  SP: $%02X\n", r.PC, r.SP)
	fmt.Fprintf(&s, " A: $%02X [%03d]", r.A, r.A)
	fmt.Fprintf(&s, " X: $%02X [%03d]", r.X, r.X)
	fmt.Fprintf(&s, " Y: $%02X [%03d]\n", r.Y, r.Y)
	fmt.Fprintf(&s, " CYCLES: %d\n\n", ui.emu.Cycles())

	var before []string
	for addr := int(r.PC) - 1; addr >= int(mos6502.ProgramStart) && len(before) < disasmLines/2; addr-- {
		if line, ok := ui.disasm[uint16(addr)]; ok {
			before = append(before, line)
		}
	}
	for i := len(before) - 1; i >= 0; i-- {
		s.WriteString(" " + before[i] + "\n")
	}
	s.WriteString(ui.linesFrom(r.PC))

	return s.String()
}

// linesFrom disassembles live memory so self-modifying code shows up.
func (ui *UI) linesFrom(pc uint16) string {
	var s strings.Builder
	addr := uint32(pc)
	for i := 0; i < disasmLines/2 && addr <= uint32(mos6502.ProgramEnd); i++ {
		line := ui.emu.Disassemble(uint16(addr), uint16(addr))[uint16(addr)]
		prefix := " "
		if i == 0 {
			prefix = "*"
		}
		s.WriteString(prefix + line + "\n")
		addr += uint32(mos6502.Lookup(ui.emu.Read8(uint16(addr))).Size)
	}
	return s.String()
}

func (ui *UI) memPanel() string {
	var s strings.Builder
	s.WriteString(" ZERO PAGE\n")
	ui.dump(&s, 0x0000, 0x00ff)
	s.WriteString("\n STACK\n")
	ui.dump(&s, mos6502.StackStart, mos6502.StackEnd)
	return s.String()
}

func (ui *UI) dump(s *strings.Builder, from, to uint16) {
	sp := mos6502.StackStart | uint16(ui.emu.SP())
	for row := uint32(from); row <= uint32(to); row += memDumpRowBytes {
		fmt.Fprintf(s, " $%04X:", row)
		for addr := row; addr < row+memDumpRowBytes; addr++ {
			sep := " "
			if uint16(addr) == sp {
				sep = ">"
			}
			fmt.Fprintf(s, "%s%02X", sep, ui.emu.Read8(uint16(addr)))
		}
		s.WriteString("\n")
	}
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return codePanelWidth + memPanelWidth, screenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize((codePanelWidth+memPanelWidth)*2, screenHeight*2)
	ebiten.SetWindowTitle("mos6502")
	ebiten.SetTPS(tps)
	return ebiten.RunGame(ui)
}
