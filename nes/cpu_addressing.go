package nes

// addressing modes, numbered as in the canonical 6502 instruction table
// so the numbers line up with nestest-style references.
const (
	modeAbsolute = iota + 1
	modeAbsoluteX
	modeAbsoluteY
	modeAccumulator
	modeImmediate
	modeImplied
	modeIndexedIndirect
	modeIndirect
	modeIndirectIndexed
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
)

// resolveAddress computes the effective address for the instruction at
// PC under mode, and reports whether resolving it crossed a page
// boundary (only some modes charge an extra cycle for that; Step applies
// the charge using the instruction's own pageCycles field).
func (c *CPU) resolveAddress(mode int) (addr uint16, pageCrossed bool) {
	switch mode {
	case modeAbsolute:
		addr = c.read16(c.PC + 1)
	case modeAbsoluteX:
		addr = c.read16(c.PC+1) + uint16(c.X)
		pageCrossed = pagesDiffer(addr-uint16(c.X), addr)
	case modeAbsoluteY:
		addr = c.read16(c.PC+1) + uint16(c.Y)
		pageCrossed = pagesDiffer(addr-uint16(c.Y), addr)
	case modeAccumulator, modeImplied:
		addr = 0
	case modeImmediate:
		addr = c.PC + 1
	case modeIndexedIndirect:
		ptr := uint16(c.read(c.PC+1) + c.X)
		addr = c.read16bug(ptr)
	case modeIndirect:
		addr = c.read16bug(c.read16(c.PC + 1))
	case modeIndirectIndexed:
		ptr := uint16(c.read(c.PC + 1))
		base := c.read16bug(ptr)
		addr = base + uint16(c.Y)
		pageCrossed = pagesDiffer(base, addr)
	case modeRelative:
		offset := uint16(c.read(c.PC + 1))
		if offset < 0x80 {
			addr = c.PC + 2 + offset
		} else {
			addr = c.PC + 2 + offset - 0x100
		}
	case modeZeroPage:
		addr = uint16(c.read(c.PC + 1))
	case modeZeroPageX:
		addr = uint16(c.read(c.PC+1) + c.X)
	case modeZeroPageY:
		addr = uint16(c.read(c.PC+1) + c.Y)
	}
	return addr, pageCrossed
}
