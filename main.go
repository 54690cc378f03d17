package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"nescore/ines"
	"nescore/mapper"
)

// version is stamped at build time in a full release pipeline; kept as a
// plain constant here since this tree has none.
const version = "0.1.0-dev"

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case romInfosMode:
		runRomInfos(cli.RomInfos)
	case versionMode:
		fmt.Println("nescore", version)
	default:
		sdl.Main(func() { runEmulator(cli.Run) })
	}
}

func runRomInfos(args RomInfos) {
	rom, err := ines.Open(args.RomPath)
	checkf(err, "failed to open rom")

	fmt.Printf("PRG:       %d x 16 KiB\n", rom.PRGBanks())
	if rom.CHRBanks() == 0 {
		fmt.Printf("CHR:       none (CHR RAM)\n")
	} else {
		fmt.Printf("CHR:       %d x 8 KiB\n", rom.CHRBanks())
	}
	fmt.Printf("Mapper:    %d (%s)\n", rom.Mapper(), mapper.Name(rom.Mapper()))
	fmt.Printf("Mirroring: %s\n", rom.MirroringMode())
	fmt.Printf("Battery:   %v\n", rom.HasPersistent())
	fmt.Printf("Trainer:   %v\n", rom.HasTrainer())
}
