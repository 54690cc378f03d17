package nes

import (
	"fmt"
	"io"

	"nescore/internal/log"
)

// P is the 6502's packed 8-bit status register, bits {N,V,1,B,D,I,Z,C}
// from bit 7 down. Kept as a single byte rather than one bool per flag:
// layout must be byte-exact for PHP/PLP/BRK/RTI, so explicit shift/mask
// beats a struct of bools.
type P uint8

const (
	flagCarry P = 1 << iota
	flagZero
	flagInterrupt
	flagDecimal
	flagBreak
	flagReserved
	flagOverflow
	flagNegative
)

func (p P) has(f P) bool { return p&f == f }

func (p *P) set(f P, on bool) {
	if on {
		*p |= f
	} else {
		*p &^= f
	}
}

func (p *P) setZN(v uint8) {
	p.set(flagZero, v == 0)
	p.set(flagNegative, v&0x80 != 0)
}

// CPU is the MOS 6502 instruction interpreter. It owns no memory itself;
// every access goes through bus. Bus accesses do not tick the PPU or APU:
// Step adds each instruction's cycle cost to Cycles and returns it, and
// System.Step advances the PPU and APU by that count afterwards.
type CPU struct {
	A, X, Y uint8
	PC      uint16
	SP      uint8
	P       P
	Cycles  uint64

	pendingNMI bool
	irqLine    bool // level-triggered; unused by any in-scope mapper, kept for completeness

	bus Bus

	trace io.Writer
}

func newCPU(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset performs the power-up (hard=true) or console reset-button
// (hard=false) sequence. A soft reset leaves A/X/Y untouched: only SP and
// the I flag are perturbed, matching the real reset line's behavior.
func (c *CPU) Reset(hard bool) {
	if hard {
		c.A, c.X, c.Y = 0, 0, 0
		c.SP = 0xFD
		c.P = P(flagInterrupt | flagReserved)
	} else {
		c.SP -= 3
		c.P.set(flagInterrupt, true)
	}
	c.PC = c.read16(0xFFFC)
	c.Cycles = 7
}

// SetPC forces the program counter, used by the nestest golden-log
// harness to start execution at a fixed entry point.
func (c *CPU) SetPC(pc uint16) { c.PC = pc }

// SetTraceOutput makes Step emit one nestest-log-format line per
// instruction to w. Passing nil disables tracing.
func (c *CPU) SetTraceOutput(w io.Writer) { c.trace = w }

// Snapshot is a read-only view of CPU register state, used by tests and
// the tracer.
type Snapshot struct {
	A, X, Y uint8
	PC      uint16
	SP      uint8
	P       P
	Cycles  uint64
}

func (c *CPU) Snapshot() Snapshot {
	return Snapshot{c.A, c.X, c.Y, c.PC, c.SP, c.P, c.Cycles}
}

func (c *CPU) read(addr uint16) uint8         { return c.bus.Read(addr) }
func (c *CPU) write(addr uint16, v uint8)     { c.bus.Write(addr, v) }

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// read16bug reproduces the JMP-indirect page-wrap bug: a pointer at
// $xxFF reads its high byte from $xx00, not $(xx+1)00.
func (c *CPU) read16bug(addr uint16) uint16 {
	lo := c.read(addr)
	hiAddr := (addr & 0xFF00) | uint16(uint8(addr)+1)
	hi := c.read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push(v uint8) {
	c.write(0x100|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull() uint8 {
	c.SP++
	return c.read(0x100 | uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

// statusForPush packs P with the B flag forced per context: PHP/BRK push
// B=1, IRQ/NMI push B=0. Bit 5 (flagReserved) always reads as 1.
func (c *CPU) statusForPush(brk bool) uint8 {
	p := c.P
	p.set(flagBreak, brk)
	p.set(flagReserved, true)
	return uint8(p)
}

// restoreStatus loads P from a pulled byte, forcing bit 5 set and B
// cleared: PLP/RTI never resurrect a pushed B flag as live state.
func (c *CPU) restoreStatus(v uint8) {
	c.P = P(v)
	c.P.set(flagBreak, false)
	c.P.set(flagReserved, true)
}

// NMI requests that the CPU service a non-maskable interrupt at the next
// Step. Called by the PPU on the vblank edge.
func (c *CPU) NMI() { c.pendingNMI = true }

// IRQ requests a level-triggered interrupt; masked by the I flag. No
// in-scope mapper or APU path raises this (the frame-counter IRQ and DMC
// are both out of scope), but the line is modeled for completeness.
func (c *CPU) IRQ() { c.irqLine = true }

func (c *CPU) serviceNMI() {
	c.push16(c.PC)
	c.push(c.statusForPush(false))
	c.P.set(flagInterrupt, true)
	c.PC = c.read16(0xFFFA)
	c.Cycles += 7
}

func (c *CPU) serviceIRQ() {
	c.push16(c.PC)
	c.push(c.statusForPush(false))
	c.P.set(flagInterrupt, true)
	c.PC = c.read16(0xFFFE)
	c.Cycles += 7
}

// Step executes exactly one instruction (or one interrupt service
// sequence) and returns the number of CPU cycles it consumed.
func (c *CPU) Step() int {
	before := c.Cycles

	if c.pendingNMI {
		c.pendingNMI = false
		c.serviceNMI()
		return int(c.Cycles - before)
	}
	if c.irqLine && !c.P.has(flagInterrupt) {
		c.irqLine = false
		c.serviceIRQ()
		return int(c.Cycles - before)
	}

	if c.trace != nil {
		fmt.Fprintln(c.trace, c.traceLine())
	}

	opcode := c.read(c.PC)
	inst := &instructions[opcode]

	addr, pageCrossed := c.resolveAddress(inst.mode)

	c.PC += uint16(inst.size)
	c.Cycles += uint64(inst.cycles)
	if pageCrossed {
		c.Cycles += uint64(inst.pageCycles)
	}

	inst.exec(c, addr, inst.mode)

	return int(c.Cycles - before)
}

func (c *CPU) addBranchCycles(from, to uint16) {
	c.Cycles++
	if pagesDiffer(from, to) {
		c.Cycles++
	}
}

func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

var modCPU = log.ModCPU
