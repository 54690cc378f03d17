package nes

import "fmt"

// ppuPeeker is implemented by buses (System) that can report the PPU's
// current position, for the nestest-format trace line. CPU otherwise
// only depends on Bus, so this is an optional capability probed via a
// type assertion rather than added to Bus itself.
type ppuPeeker interface {
	tracePPU() (scanline, dot int)
}

func (s *System) tracePPU() (int, int) { return s.ppu.Scanline, s.ppu.Dot }

// peeker is implemented by buses (System) that can read a byte without
// Read's side effects — register latches, shift registers, buffered VRAM
// reads. traceLine reads the instruction about to execute through this
// instead of bus.Read, so turning on the tracer never perturbs the
// emulation it's observing.
type peeker interface {
	Peek(addr uint16) uint8
}

// traceLine renders one nestest-log-format line for the instruction
// about to execute at PC: address, raw opcode bytes, disassembly,
// register snapshot, and cycle/PPU position.
func (c *CPU) traceLine() string {
	read := c.read
	if p, ok := c.bus.(peeker); ok {
		read = p.Peek
	}

	opcode := read(c.PC)
	inst := &instructions[opcode]

	bytes := make([]byte, inst.size)
	for i := range bytes {
		bytes[i] = read(c.PC + uint16(i))
	}

	hexBytes := ""
	for _, b := range bytes {
		hexBytes += fmt.Sprintf("%02X ", b)
	}

	asm := fmt.Sprintf("%s%s", inst.name, c.disasmOperand(inst, bytes))

	scanline, dot := 0, 0
	if pp, ok := c.bus.(ppuPeeker); ok {
		scanline, dot = pp.tracePPU()
	}
	if scanline == 261 {
		scanline = -1
	}

	return fmt.Sprintf("%04X  %-9s %-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		c.PC, hexBytes, asm, c.A, c.X, c.Y, uint8(c.P), c.SP, scanline, dot, c.Cycles)
}

// disasmOperand renders the instruction's operand in 6502-assembler
// notation for the addressing mode in play.
func (c *CPU) disasmOperand(inst *instruction, raw []byte) string {
	switch inst.mode {
	case modeImmediate:
		return fmt.Sprintf(" #$%02X", raw[1])
	case modeZeroPage:
		return fmt.Sprintf(" $%02X", raw[1])
	case modeZeroPageX:
		return fmt.Sprintf(" $%02X,X", raw[1])
	case modeZeroPageY:
		return fmt.Sprintf(" $%02X,Y", raw[1])
	case modeAbsolute:
		return fmt.Sprintf(" $%02X%02X", raw[2], raw[1])
	case modeAbsoluteX:
		return fmt.Sprintf(" $%02X%02X,X", raw[2], raw[1])
	case modeAbsoluteY:
		return fmt.Sprintf(" $%02X%02X,Y", raw[2], raw[1])
	case modeIndirect:
		return fmt.Sprintf(" ($%02X%02X)", raw[2], raw[1])
	case modeIndexedIndirect:
		return fmt.Sprintf(" ($%02X,X)", raw[1])
	case modeIndirectIndexed:
		return fmt.Sprintf(" ($%02X),Y", raw[1])
	case modeRelative:
		offset := int8(raw[1])
		target := int(c.PC) + 2 + int(offset)
		return fmt.Sprintf(" $%04X", target)
	case modeAccumulator:
		return " A"
	default:
		return ""
	}
}
