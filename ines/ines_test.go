package ines

import (
	"bytes"
	"path/filepath"
	"testing"
)

// buildHeader returns a minimal valid iNES header plus the given number of
// PRG/CHR banks, flags6 and flags7 set as given.
func buildHeader(prgBanks, chrBanks int, flags6, flags7 byte) []byte {
	h := make([]byte, 16)
	copy(h, Magic)
	h[4] = byte(prgBanks)
	h[5] = byte(chrBanks)
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestDecodeMapperNumber(t *testing.T) {
	// mapper 1 (MMC1): low nibble in flags6 bit 4-7, high nibble in flags7.
	buf := buildHeader(2, 1, 0x10, 0x00)
	buf = append(buf, make([]byte, 2*16384+8192)...)

	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(buf)); err != nil {
		t.Fatal(err)
	}
	if got, want := rom.Mapper(), uint8(1); got != want {
		t.Fatalf("Mapper() = %d, want %d", got, want)
	}

	// mapper 66 (GxROM): high nibble from flags7.
	buf2 := buildHeader(2, 1, 0x20, 0x40)
	buf2 = append(buf2, make([]byte, 2*16384+8192)...)
	rom2 := new(Rom)
	if _, err := rom2.ReadFrom(bytes.NewReader(buf2)); err != nil {
		t.Fatal(err)
	}
	if got, want := rom2.Mapper(), uint8(66); got != want {
		t.Fatalf("Mapper() = %d, want %d", got, want)
	}
}

func TestMirroringMode(t *testing.T) {
	cases := []struct {
		flags6 byte
		want   Mirroring
	}{
		{0x00, Horizontal},
		{0x01, Vertical},
		{0x08, FourScreen},
		{0x09, FourScreen},
	}
	for _, c := range cases {
		buf := buildHeader(1, 1, c.flags6, 0)
		buf = append(buf, make([]byte, 16384+8192)...)
		rom := new(Rom)
		if _, err := rom.ReadFrom(bytes.NewReader(buf)); err != nil {
			t.Fatal(err)
		}
		if got := rom.MirroringMode(); got != c.want {
			t.Errorf("flags6=%#x: MirroringMode() = %v, want %v", c.flags6, got, c.want)
		}
	}
}

func TestDecodeBadMagic(t *testing.T) {
	buf := buildHeader(1, 1, 0, 0)
	buf[0] = 'X'
	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(buf)); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestDecodeTruncatedPRG(t *testing.T) {
	buf := buildHeader(2, 1, 0, 0)
	buf = append(buf, make([]byte, 16384)...) // only one PRG bank's worth of data
	rom := new(Rom)
	if _, err := rom.ReadFrom(bytes.NewReader(buf)); err == nil {
		t.Fatal("expected error for truncated PRG section")
	}
}

func TestRomOpenCorpus(t *testing.T) {
	dir := filepath.Join("..", "testdata", "nes-test-roms", "instr_test-v5", "rom_singles")
	paths := []string{
		"01-basics.nes", "02-implied.nes", "03-immediate.nes", "04-zero_page.nes",
		"05-zp_xy.nes", "06-absolute.nes", "07-abs_xy.nes", "08-ind_x.nes",
		"09-ind_y.nes", "10-branches.nes", "11-stack.nes", "12-jmp_jsr.nes",
		"13-rti.nes", "14-rti.nes", "15-brk.nes", "16-special.nes",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rom, err := Open(filepath.Join(dir, path))
			if err != nil {
				t.Skipf("test rom corpus not available: %v", err)
			}
			if rom.PRGBanks() == 0 {
				t.Errorf("%s: PRGBanks() = 0", path)
			}
		})
	}
}
