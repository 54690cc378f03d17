// Package nes implements the cycle-timed CPU/PPU/APU co-execution engine
// of an NTSC Nintendo Entertainment System: the 6502 instruction
// interpreter, the scanline PPU, the four-channel APU, and the shared bus
// that ties them together.
package nes

import (
	"nescore/ines"
	"nescore/mapper"
)

// Mapper is the cartridge board's address-mapping capability, as seen by
// the CPU bus and the PPU's CHR/nametable-mirroring access.
type Mapper = mapper.Mapper

// Mirroring is the cartridge's nametable mirroring mode.
type Mirroring = ines.Mirroring

const (
	mirrorHorizontal = ines.Horizontal
	mirrorVertical   = ines.Vertical
	mirrorSingle0    = ines.SingleScreenA
	mirrorSingle1    = ines.SingleScreenB
)

// Bus is the memory-port capability the CPU dispatch loop needs from the
// rest of the system. System implements it. Read and Write do not advance
// the PPU or APU; System.Step advances them after each CPU.Step by the
// cycle count that step reports.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

const (
	frameWidth  = 256
	frameHeight = 240

	// CPUFrequency is the NTSC 6502 clock, in Hz.
	CPUFrequency = 1789773

	// sampleRate is the fixed output rate of the APU's downsampler.
	sampleRate = 44100
)
