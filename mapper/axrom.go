package mapper

import "nescore/ines"

// axrom is mapper 7: switchable 32 KiB PRG bank, CHR RAM, and single-screen
// mirroring selected by the PRG bank-select write.
type axrom struct {
	prg  []byte
	chr  []byte
	ram  [0x2000]byte
	bank uint8
	mode ines.Mirroring
}

func newAxROM(rom *ines.Rom) Mapper {
	return &axrom{prg: rom.PRG, chr: chrOrRAM(rom), mode: ines.SingleScreenA}
}

func (m *axrom) Read(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.ram[addr&0x1FFF]
	}
	return m.prg[int(m.bank)*0x8000+int(addr-0x8000)]
}

func (m *axrom) Write(addr uint16, value uint8, cycle uint64) {
	switch {
	case addr < 0x8000:
		m.ram[addr&0x1FFF] = value
	default:
		// 7  bit  0
		// xxxM xPPP
		//    |  +++- select 32 KB PRG ROM bank for $8000-$FFFF
		//    +------ select 1 KB VRAM page for all four nametables
		m.bank = value & 0x07
		if value&0x10 != 0 {
			m.mode = ines.SingleScreenB
		} else {
			m.mode = ines.SingleScreenA
		}
	}
}

func (m *axrom) PPURead(addr uint16) uint8    { return m.chr[addr&0x1FFF] }
func (m *axrom) PPUWrite(addr uint16, v uint8) { m.chr[addr&0x1FFF] = v }
func (m *axrom) Mirroring() ines.Mirroring     { return m.mode }
