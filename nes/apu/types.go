// Package apu implements the NES's four non-DMC sound channels (two
// pulse, one triangle, one noise), their shared frame-counter clocking,
// and the lock-free sample ring feeding the host's audio thread.
package apu

// lengthTable is the 32-entry note-length lookup shared by all channels,
// indexed by the top 5 bits written to $4003/$4007/$400B/$400F.
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}
