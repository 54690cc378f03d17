package nes

import "testing"

// flatBus is a 64 KiB flat-RAM Bus, standing in for System in tests that
// only care about the CPU's own dispatch logic, not PPU/APU/mapper
// wiring.
type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func newTestCPU() (*CPU, *flatBus) {
	bus := &flatBus{}
	c := newCPU(bus)
	c.SP = 0xFD
	c.P = P(flagReserved)
	return c, bus
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0xA9 // LDA #$00
	bus.mem[0x0201] = 0x00
	c.PC = 0x0200

	c.Step()

	if c.A != 0 {
		t.Fatalf("A = %#x, want 0", c.A)
	}
	if !c.P.has(flagZero) {
		t.Fatal("zero flag not set")
	}
	if c.P.has(flagNegative) {
		t.Fatal("negative flag unexpectedly set")
	}
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0x69 // ADC #$01
	bus.mem[0x0201] = 0x01
	c.PC = 0x0200
	c.A = 0x7F // +127 + 1 overflows into negative

	c.Step()

	if c.A != 0x80 {
		t.Fatalf("A = %#x, want 0x80", c.A)
	}
	if !c.P.has(flagOverflow) {
		t.Fatal("overflow flag not set")
	}
	if c.P.has(flagCarry) {
		t.Fatal("carry flag unexpectedly set")
	}
}

func TestSBCBorrow(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0xE9 // SBC #$01
	bus.mem[0x0201] = 0x01
	c.PC = 0x0200
	c.A = 0x00
	c.P.set(flagCarry, true) // carry set means "no borrow" going in

	c.Step()

	if c.A != 0xFF {
		t.Fatalf("A = %#x, want 0xFF", c.A)
	}
	if c.P.has(flagCarry) {
		t.Fatal("carry flag should be clear: result borrowed")
	}
}

func TestBranchTakenCostsExtraCycle(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0xF0 // BEQ +2
	bus.mem[0x0201] = 0x02
	c.PC = 0x0200
	c.P.set(flagZero, true)

	cycles := c.Step()

	if c.PC != 0x0204 {
		t.Fatalf("PC = %#x, want 0x0204", c.PC)
	}
	if cycles != 3 {
		t.Fatalf("cycles = %d, want 3 (2 base + 1 taken)", cycles)
	}
}

func TestStackPushPull(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0x48 // PHA
	bus.mem[0x0201] = 0xA9 // LDA #$00
	bus.mem[0x0202] = 0x00
	bus.mem[0x0203] = 0x68 // PLA
	c.PC = 0x0200
	c.A = 0x42

	c.Step() // PHA
	c.Step() // LDA #0
	if c.A != 0 {
		t.Fatalf("A = %#x after LDA #0, want 0", c.A)
	}
	c.Step() // PLA
	if c.A != 0x42 {
		t.Fatalf("A = %#x after PLA, want 0x42", c.A)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, bus := newTestCPU()
	// Pointer at $02FF: real hardware reads the high byte from $0200,
	// not $0300.
	bus.mem[0x02FF] = 0x00
	bus.mem[0x0300] = 0x12 // would be read if the bug weren't reproduced
	bus.mem[0x0200] = 0x34
	bus.mem[0x0000] = 0x6C // JMP ($02FF)
	bus.mem[0x0001] = 0xFF
	bus.mem[0x0002] = 0x02
	c.PC = 0x0000

	c.Step()

	if c.PC != 0x3400 {
		t.Fatalf("PC = %#x, want 0x3400 (page-wrap bug reproduced)", c.PC)
	}
}

func TestNMIServicedBeforeNextInstruction(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0xFFFA] = 0x00
	bus.mem[0xFFFB] = 0x80
	bus.mem[0x0200] = 0xEA // NOP, never reached
	c.PC = 0x0200
	c.NMI()

	c.Step()

	if c.PC != 0x8000 {
		t.Fatalf("PC = %#x, want 0x8000 (NMI vector)", c.PC)
	}
	if !c.P.has(flagInterrupt) {
		t.Fatal("I flag should be set after servicing NMI")
	}
}

func TestUndocumentedLAX(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0010] = 0x77
	bus.mem[0x0200] = 0xA7 // LAX $10 (zero page)
	bus.mem[0x0201] = 0x10
	c.PC = 0x0200

	c.Step()

	if c.A != 0x77 || c.X != 0x77 {
		t.Fatalf("A=%#x X=%#x, want both 0x77", c.A, c.X)
	}
}
