package apu

// squareDuty holds the four 8-step waveform sequences selectable via
// $4000/$4004 bits 6-7.
var squareDuty = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

// pulse is one of the two square-wave channels. Sweep is out of scope
// (§4.4): the channel is otherwise a full duty-cycle/timer/length unit
// with a fixed-volume envelope.
type pulse struct {
	length lengthCounter
	timer  timer

	duty    uint8
	dutyPos uint8
	volume  uint8
}

func (p *pulse) writeControl(v uint8) {
	p.duty = v >> 6
	p.length.setHalt(v&0x20 != 0)
	p.volume = v & 0x0F
}

func (p *pulse) writeTimerLow(v uint8)  { p.timer.setPeriodLow(v) }
func (p *pulse) writeLengthAndTimerHigh(v uint8) {
	p.timer.setPeriodHigh(v)
	p.length.load(v >> 3)
	p.dutyPos = 0
}

func (p *pulse) setEnabled(enabled bool) { p.length.setEnabled(enabled) }
func (p *pulse) lengthActive() bool      { return p.length.active() }

func (p *pulse) tickTimer() {
	if p.timer.tick() {
		p.dutyPos = (p.dutyPos + 1) & 7
	}
}

func (p *pulse) tickLength() { p.length.tick() }

// output follows §4.4 exactly: bipolar around the duty sequence, gated
// to silence when the length counter is exhausted or the period is too
// low to produce an audible tone.
func (p *pulse) output() int16 {
	if !p.length.active() || p.timer.period < 8 {
		return 0
	}
	if squareDuty[p.duty][p.dutyPos] != 0 {
		return int16(p.volume)
	}
	return -int16(p.volume)
}
