package mapper

import (
	"bytes"
	"testing"

	"nescore/ines"
)

func romWith(prgBanks, chrBanks int, mapperNum uint8) *ines.Rom {
	h := make([]byte, 16)
	copy(h, ines.Magic)
	h[4] = byte(prgBanks)
	h[5] = byte(chrBanks)
	h[6] = (mapperNum & 0x0F) << 4
	h[7] = mapperNum & 0xF0

	rom := new(ines.Rom)
	body := append(h, make([]byte, prgBanks*16384+chrBanks*8192)...)
	if _, err := rom.ReadFrom(bytes.NewReader(body)); err != nil {
		panic(err)
	}
	return rom
}

func TestNewUnsupportedMapper(t *testing.T) {
	rom := romWith(1, 1, 200)
	if _, err := New(rom); err == nil {
		t.Fatal("expected error for unsupported mapper")
	}
}

func TestNROMBankMirroring(t *testing.T) {
	rom := romWith(1, 1, 0)
	copy(rom.PRG, []byte{0xAA, 0xBB})
	m, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	// single 16 KiB bank must be visible at both $8000 and $C000.
	if got := m.Read(0x8000); got != 0xAA {
		t.Fatalf("Read($8000) = %#x, want 0xAA", got)
	}
	if got := m.Read(0xC000); got != 0xAA {
		t.Fatalf("Read($C000) = %#x, want 0xAA (mirrored)", got)
	}
}

func TestUxROMBankSwitch(t *testing.T) {
	rom := romWith(4, 1, 2)
	for i := 0; i < 4; i++ {
		rom.PRG[i*0x4000] = byte(i)
	}
	m, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Read(0xC000); got != 3 {
		t.Fatalf("fixed last bank: Read($C000) = %d, want 3", got)
	}
	m.Write(0x8000, 2, 0)
	if got := m.Read(0x8000); got != 2 {
		t.Fatalf("after bank switch: Read($8000) = %d, want 2", got)
	}
}

func TestMMC1RegisterShiftSequence(t *testing.T) {
	rom := romWith(4, 2, 1)
	m, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	mm := m.(*mmc1)

	// Write CTRL=0b10011 (5 bits, LSB first) to select horizontal
	// mirroring (low 2 bits = 11) and CHR mode 1 (4KB banks, bit 4).
	bits := []uint8{1, 1, 0, 0, 1}
	for i, b := range bits {
		m.Write(0x8000, b, uint64(i*4))
	}
	if mm.mirroring != ines.Horizontal {
		t.Fatalf("mirroring = %v, want horizontal", mm.mirroring)
	}
	if mm.chrmode != 1 {
		t.Fatalf("chrmode = %d, want 1", mm.chrmode)
	}
}

func TestMMC1ResetBit(t *testing.T) {
	rom := romWith(4, 2, 1)
	m, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	mm := m.(*mmc1)
	m.Write(0x8000, 0x01, 0)
	m.Write(0x8000, 0x80, 10) // reset bit set
	if mm.shiftCount != 0 {
		t.Fatalf("shiftCount after reset = %d, want 0", mm.shiftCount)
	}
	if mm.prgmode != 0b11 {
		t.Fatalf("prgmode after reset = %d, want 3", mm.prgmode)
	}
}
