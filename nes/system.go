package nes

import (
	"nescore/internal/log"
	"nescore/nes/apu"
)

// System owns the CPU, PPU, APU, cartridge mapper, work RAM, and the two
// controller ports, and is the sole implementation of Bus: every memory
// access funnels through here so cycle ticking of the PPU/APU stays
// centralized (§9's "cyclic ownership" design note — an owning container
// rather than components holding back-pointers to each other).
type System struct {
	CPU *CPU
	ppu *PPU
	apu *apu.APU

	mapper Mapper
	ram    ram

	controllers [2]controller
}

// New constructs a System wired to the given cartridge mapper but does
// not yet power it on; call PowerUp before Step/StepFrame.
func New(m Mapper) *System {
	s := &System{mapper: m, apu: apu.New()}
	s.ppu = newPPU(m, s.onNMI)
	s.CPU = newCPU(s)
	return s
}

func (s *System) onNMI() { s.CPU.NMI() }

// PowerUp performs the hard-reset sequence on every component.
func (s *System) PowerUp() {
	s.ppu.Reset()
	s.apu.Reset()
	s.CPU.Reset(true)
}

// Reset performs either the power-cycle (hard=true) or console
// reset-button (hard=false) sequence. PPU and APU state doesn't survive
// a reset on real hardware either way; only the CPU distinguishes them.
func (s *System) Reset(hard bool) {
	s.ppu.Reset()
	s.apu.Reset()
	s.CPU.Reset(hard)
}

// SendInput updates one button on controller port pad (0 or 1). Like
// the rest of System, it must only be called from the emulation thread
// between StepFrame calls — the host polls its input devices and calls
// this synchronously, never concurrently with Step/StepFrame (§5).
func (s *System) SendInput(pad, button int, pressed bool) {
	s.controllers[pad].setButton(button, pressed)
}

// StepFrame runs the CPU until the PPU reports a completed frame.
func (s *System) StepFrame() {
	for !s.ppu.FrameReady() {
		s.Step()
	}
}

// Step runs exactly one CPU instruction (or interrupt service sequence)
// and then advances the PPU and APU by the matching number of dots and
// cycles in one batch: 3 PPU dots and 1 APU cycle per CPU cycle CPU.Step
// reports having spent. Bus accesses themselves never tick anything, so
// every CPU cycle — opcode-table cost, page-cross penalty, branch-taken
// penalty, interrupt-service cycles, stolen OAM DMA cycles, all of
// it — is accounted for exactly once and PPU/APU timing can never drift
// from CPU.Cycles (§9).
func (s *System) Step() int {
	cycles := s.CPU.Step()
	for i := 0; i < cycles*3; i++ {
		s.ppu.Tick()
	}
	for i := 0; i < cycles; i++ {
		s.apu.Tick()
	}
	return cycles
}

// Frame returns the PPU's current framebuffer, indexed [y*256+x], each
// entry a packed 0x00RRGGBB color.
func (s *System) Frame() []uint32 { return s.ppu.Frame() }

// DrainAudio copies up to len(dst) pending mixed samples into dst.
func (s *System) DrainAudio(dst []int16) int { return s.apu.Drain(dst) }

func (s *System) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return s.ram.read(addr)
	case addr < 0x4000:
		return s.ppu.ReadRegister(uint8(addr & 7))
	case addr == 0x4015:
		return s.apu.ReadStatus()
	case addr == 0x4016:
		return s.controllers[0].read()
	case addr == 0x4017:
		return s.controllers[1].read()
	case addr < 0x4018:
		log.ModIO.WarnZ("read from write-only register").Hex16("addr", addr).End()
		return 0
	case addr < 0x6000:
		return 0
	default:
		return s.mapper.Read(addr)
	}
}

// Peek reads a byte the way Read does, but without any of Read's side
// effects (PPU register latches, controller shift registers, buffered
// VRAM reads). Used by the CPU's instruction tracer so enabling it never
// perturbs emulation state or steals bus cycles that aren't really
// spent.
func (s *System) Peek(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return s.ram.read(addr)
	case addr < 0x6000:
		return 0
	default:
		return s.mapper.Read(addr)
	}
}

func (s *System) Write(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		s.ram.write(addr, v)
	case addr < 0x4000:
		s.ppu.WriteRegister(uint8(addr&7), v)
	case addr == 0x4014:
		s.startOAMDMA(v)
	case addr == 0x4016:
		s.controllers[0].write(v)
		s.controllers[1].write(v)
	case addr == 0x4017:
		s.apu.WriteRegister(addr, v)
	case addr < 0x4018:
		s.apu.WriteRegister(addr, v)
	case addr < 0x6000:
		// unused expansion space
	default:
		s.mapper.Write(addr, v, s.CPU.Cycles)
	}
}

// startOAMDMA runs the $4014-triggered 256-byte copy from page (v<<8) to
// PPU OAM. On real hardware it steals 513 CPU cycles (514 if triggered
// on an odd CPU cycle); charging that straight onto CPU.Cycles, rather
// than ticking the bus an equivalent number of times here, is what keeps
// Step's PPU/APU batch in lockstep with the CPU even through a DMA (§9).
// The 256-byte copy itself is a single synchronous burst since nothing
// else observes the bus mid-transfer.
func (s *System) startOAMDMA(page uint8) {
	cycles := uint64(513)
	if s.CPU.Cycles%2 == 1 {
		cycles++
	}
	s.CPU.Cycles += cycles

	var buf [256]uint8
	base := uint16(page) << 8
	for i := range buf {
		buf[i] = s.Read(base + uint16(i))
	}
	s.ppu.WriteOAMDMA(buf)
}
