package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	host "nescore/host/sdl"
	"nescore/ines"
	"nescore/mapper"
	"nescore/nes"
)

// runEmulator loads args.RomPath, wires up the SDL host, and runs until
// the window closes. Must run inside sdl.Main (see main.go), matching
// arl-nestor's own run.go structure.
func runEmulator(args Run) {
	rom, err := ines.Open(args.RomPath)
	checkf(err, "failed to open rom")

	m, err := mapper.New(rom)
	checkf(err, "failed to build mapper")

	sys := nes.New(m)
	sys.PowerUp()

	if args.Trace != nil {
		sys.CPU.SetTraceOutput(args.Trace)
		defer args.Trace.Close()
	}

	if args.CPUProfile != "" {
		f, err := os.Create(args.CPUProfile)
		checkf(err, "failed to create cpu profile file")
		checkf(pprof.StartCPUProfile(f), "failed to start cpu profile")
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("CPU profile written to", args.CPUProfile)
		}()
	}

	cfg := loadConfig(args.Config)

	disp, err := host.NewDisplay("nescore - "+args.RomPath, cfg.Video.Scale, !cfg.Video.DisableVSync)
	checkf(err, "failed to create display")

	var audio *host.Audio
	if !cfg.Audio.Disabled {
		audio, err = host.NewAudio(cfg.Audio.Volume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio disabled: %s\n", err)
		}
	}

	input := host.NewInput(cfg.Input.Pad1.Scancodes(), cfg.Input.Pad2.Scancodes())

	checkf(host.Run(sys, disp, audio, input), "emulation loop error")
}
