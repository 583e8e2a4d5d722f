package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/nevisdale/mos6502/internal/mos6502"
	"github.com/nevisdale/mos6502/internal/rom"
	"github.com/nevisdale/mos6502/internal/ui"
	"github.com/pkg/profile"
)

func main() {
	var (
		deterministic = flag.Bool("deterministic", false, "no timing delays; BRK runs the interrupt sequence instead of halting")
		clockPeriod   = flag.Duration("clock", time.Microsecond, "duration of one CPU cycle")
		trace         = flag.Bool("trace", false, "log every instruction before it is executed")
		withUI        = flag.Bool("ui", false, "open the debug monitor")
		profileMode   = flag.String("profile", "", "write a profile to the current directory: cpu or mem")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode: %s\n", *profileMode)
	}

	img, err := rom.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("couldn't load image: %s\n", err)
	}
	log.Printf("image %s: format %s\n", flag.Arg(0), img.Format)

	cfg := mos6502.DefaultConfig()
	cfg.Deterministic = *deterministic
	cfg.ClockPeriod = *clockPeriod
	cfg.Trace = *trace

	var opts []mos6502.Option
	if *withUI {
		// the monitor paces execution per frame
		opts = append(opts, mos6502.WithClock(mos6502.ClockFunc(func(uint64) {})))
	}

	emu := mos6502.New(cfg, opts...)
	if err := emu.Load(img.Program); err != nil {
		log.Fatalf("%s\n", err)
	}

	if *withUI {
		cyclesPerSecond := uint64(time.Second / max(*clockPeriod, time.Nanosecond))
		if err := ui.RunUI(ui.New(emu, cyclesPerSecond)); err != nil {
			log.Fatalf("ui error: %s\n", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if err := emu.RunContext(ctx); err != nil {
		log.Printf("stopped: %s\n", err)
	}

	r := emu.Registers()
	log.Printf("state %s after %d cycles in %s\n", emu.State(), emu.Cycles(), time.Since(start))
	log.Printf("A:%02X X:%02X Y:%02X P:%02X [%s] SP:%02X PC:%04X\n", r.A, r.X, r.Y, r.P, r.StatusString(), r.SP, r.PC)
}
