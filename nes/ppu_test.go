package nes

import "testing"

// stubMapper is a minimal Mapper for PPU-only tests: flat CHR RAM, fixed
// mirroring, PRG reads unused.
type stubMapper struct {
	chr  [0x2000]uint8
	mirr Mirroring
}

func (m *stubMapper) Read(addr uint16) uint8                   { return 0 }
func (m *stubMapper) Write(addr uint16, v uint8, cycle uint64) {}
func (m *stubMapper) PPURead(addr uint16) uint8                { return m.chr[addr&0x1FFF] }
func (m *stubMapper) PPUWrite(addr uint16, v uint8)             { m.chr[addr&0x1FFF] = v }
func (m *stubMapper) Mirroring() Mirroring                      { return m.mirr }

func newTestPPU() *PPU {
	return newPPU(&stubMapper{mirr: mirrorVertical}, nil)
}

func TestPPUStatusReadClearsVblankAndLatch(t *testing.T) {
	p := newTestPPU()
	p.status = statusVblank
	p.w = true

	v := p.ReadRegister(2)

	if v&statusVblank == 0 {
		t.Fatal("returned status should still report vblank set")
	}
	if p.status&statusVblank != 0 {
		t.Fatal("vblank flag should be cleared after the read")
	}
	if p.w {
		t.Fatal("address latch should be reset after reading PPUSTATUS")
	}
}

func TestPPUAddrDataRoundTrip(t *testing.T) {
	p := newTestPPU()

	// $2006 write high then low byte of $23C0 (a nametable address).
	p.WriteRegister(6, 0x23)
	p.WriteRegister(6, 0xC0)
	if p.v != 0x23C0 {
		t.Fatalf("v = %#x, want 0x23C0", p.v)
	}

	p.WriteRegister(7, 0x42)
	if p.v != 0x23C1 {
		t.Fatalf("v after write = %#x, want increment by 1", p.v)
	}

	// Re-point at the same address and read it back. The first PPUDATA
	// read returns the buffered value from before the write address was
	// set (empty here), the second returns the byte just written.
	p.WriteRegister(6, 0x23)
	p.WriteRegister(6, 0xC0)
	p.ReadRegister(7)
	got := p.ReadRegister(7)
	if got != 0x42 {
		t.Fatalf("PPUDATA read = %#x, want 0x42", got)
	}
}

func TestPPUCtrlIncrement32(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(0, ctrlIncr32)
	p.WriteRegister(6, 0x20)
	p.WriteRegister(6, 0x00)

	p.WriteRegister(7, 0xFF)

	if p.v != 0x2020 {
		t.Fatalf("v = %#x, want 0x2020 (incremented by 32)", p.v)
	}
}

func TestPPUOAMDATARoundTrip(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(3, 0x10) // OAMADDR
	p.WriteRegister(4, 0x99) // OAMDATA

	if p.oam[0x10] != 0x99 {
		t.Fatalf("oam[0x10] = %#x, want 0x99", p.oam[0x10])
	}
	if p.oamAddr != 0x11 {
		t.Fatalf("oamAddr = %#x, want 0x11 (auto-increment)", p.oamAddr)
	}
}

func TestPPUNMIOnVblankOnset(t *testing.T) {
	var fired bool
	p := newPPU(&stubMapper{mirr: mirrorVertical}, func() { fired = true })
	p.ctrl = ctrlNMI
	p.Scanline, p.Dot = 241, 1

	p.Tick()

	if !fired {
		t.Fatal("NMI callback should fire at scanline 241, dot 1")
	}
	if p.status&statusVblank == 0 {
		t.Fatal("vblank flag should be set at scanline 241, dot 1")
	}
}

func TestPPUFrameReadyAfterFullSweep(t *testing.T) {
	p := newTestPPU()
	for i := 0; i < numScanlines*numDots; i++ {
		p.Tick()
	}
	if !p.FrameReady() {
		t.Fatal("FrameReady should be true after one full 262x341 sweep")
	}
	if p.FrameReady() {
		t.Fatal("FrameReady should clear itself once read")
	}
}

func TestPaletteMirroring(t *testing.T) {
	p := newTestPPU()
	p.writePaletteRAM(0x00, 0x0F)
	// $3F10 mirrors the universal background entry at $3F00.
	if got := p.readPaletteRAM(0x10); got != 0x0F {
		t.Fatalf("palette[0x10] = %#x, want 0x0F (mirrors universal bg)", got)
	}
}
