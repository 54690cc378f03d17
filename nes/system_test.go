package nes

import "testing"

// nullMapper is the minimal Mapper for System-level tests: flat PRG/CHR
// RAM, no bank switching.
type nullMapper struct {
	prg [0x8000]uint8
	chr [0x2000]uint8
}

func (m *nullMapper) Read(addr uint16) uint8                   { return m.prg[addr&0x7FFF] }
func (m *nullMapper) Write(addr uint16, v uint8, cycle uint64) { m.prg[addr&0x7FFF] = v }
func (m *nullMapper) PPURead(addr uint16) uint8                { return m.chr[addr&0x1FFF] }
func (m *nullMapper) PPUWrite(addr uint16, v uint8)             { m.chr[addr&0x1FFF] = v }
func (m *nullMapper) Mirroring() Mirroring                      { return mirrorVertical }

func newTestSystem() *System {
	s := New(&nullMapper{})
	s.PowerUp()
	return s
}

func TestRAMMirroredAcrossFourRegions(t *testing.T) {
	s := newTestSystem()
	s.Write(0x0000, 0x42)

	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := s.Read(mirror); got != 0x42 {
			t.Fatalf("Read(%#x) = %#x, want 0x42 (mirrors $0000)", mirror, got)
		}
	}
}

func TestControllerStrobeAndShiftRegister(t *testing.T) {
	s := newTestSystem()
	s.SendInput(0, ButtonA, true)
	s.SendInput(0, ButtonRight, true)

	s.Write(0x4016, 1) // strobe high: shift continuously reloads
	s.Write(0x4016, 0) // falling edge: freeze for serial read

	// Button order is A, B, Select, Start, Up, Down, Left, Right.
	want := []uint8{1, 0, 0, 0, 0, 0, 0, 1}
	for i, w := range want {
		if got := s.Read(0x4016) & 1; got != w {
			t.Fatalf("bit %d = %d, want %d", i, got, w)
		}
	}

	// Past the eighth read, real hardware keeps returning 1.
	if got := s.Read(0x4016) & 1; got != 1 {
		t.Fatalf("ninth read = %d, want 1", got)
	}
}

func TestControllerPortsAreIndependent(t *testing.T) {
	s := newTestSystem()
	s.SendInput(1, ButtonA, true)

	s.Write(0x4016, 1)
	s.Write(0x4016, 0)

	if got := s.Read(0x4016) & 1; got != 0 {
		t.Fatalf("port 0 bit 0 = %d, want 0 (only port 1 button was pressed)", got)
	}
	if got := s.Read(0x4017) & 1; got != 1 {
		t.Fatalf("port 1 bit 0 = %d, want 1", got)
	}
}

func TestOAMDMACopiesPageIntoOAM(t *testing.T) {
	s := newTestSystem()
	for i := 0; i < 256; i++ {
		s.Write(0x0200+uint16(i), uint8(i))
	}
	s.CPU.Cycles = 2 // even: no extra alignment cycle
	before := s.CPU.Cycles

	s.Write(0x4014, 0x02) // DMA from page $02

	if elapsed := s.CPU.Cycles - before; elapsed != 513 {
		t.Fatalf("OAM DMA took %d CPU cycles, want 513", elapsed)
	}
	if s.ppu.oam[0x10] != 0x10 {
		t.Fatalf("oam[0x10] = %#x, want 0x10", s.ppu.oam[0x10])
	}
}

func TestOAMDMAOddCycleAlignmentCostsExtraCycle(t *testing.T) {
	s := newTestSystem()
	s.CPU.Cycles = 1 // force the odd-cycle alignment path
	before := s.CPU.Cycles

	s.Write(0x4014, 0x02)

	if elapsed := s.CPU.Cycles - before; elapsed != 514 {
		t.Fatalf("OAM DMA starting on an odd cycle took %d CPU cycles, want 514", elapsed)
	}
}

// TestSystemStepKeepsPPULockedToCPUCycles is the regression test for the
// bug where per-bus-access ticking drifted from the CPU's own cycle
// accounting: Step must report the CPU.Cycles delta and advance the PPU
// by exactly 3 dots per CPU cycle spent.
func TestSystemStepKeepsPPULockedToCPUCycles(t *testing.T) {
	s := newTestSystem()
	s.CPU.PC = 0x0300
	s.Write(0x0300, 0xE8) // INX: implied addressing, 2 cycles, 1 byte

	beforeCycles := s.CPU.Cycles
	beforeDots := s.ppu.Scanline*numDots + s.ppu.Dot

	cycles := s.Step()

	if got := s.CPU.Cycles - beforeCycles; got != uint64(cycles) {
		t.Fatalf("CPU.Cycles advanced by %d, Step reported %d", got, cycles)
	}
	afterDots := s.ppu.Scanline*numDots + s.ppu.Dot
	wantDots := (beforeDots + cycles*3) % (numScanlines * numDots)
	if afterDots != wantDots {
		t.Fatalf("PPU advanced to dot index %d, want %d (%d CPU cycles x 3)", afterDots, wantDots, cycles)
	}
}
