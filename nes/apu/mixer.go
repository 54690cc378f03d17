package apu

import "sync/atomic"

// ringSize is the sample ring's capacity; a few video frames' worth of
// audio at 44.1kHz, comfortably more than one emulation step_frame
// produces, so the writer never has to block.
const ringSize = 8192

// ring is a single-producer/single-consumer lock-free ring buffer of
// mixed audio samples. The emulation thread is the sole producer (push)
// and owns writeIndex; the host audio thread is the sole consumer
// (Drain) and owns readIndex. Neither side ever writes the other's
// index — push drops the incoming sample on a full buffer instead of
// advancing readIndex itself. No third-party queue in the example
// corpus fits an SPSC byte-cheap int16 ring this well, and sync/atomic
// is exactly what it's for: this is the one place the design
// intentionally stays on the standard library.
type ring struct {
	buf        [ringSize]int16
	writeIndex atomic.Uint64
	readIndex  atomic.Uint64
}

func (r *ring) push(v int16) {
	w := r.writeIndex.Load()
	read := r.readIndex.Load()
	if w-read >= ringSize {
		// Consumer fell behind a full buffer; drop the incoming sample
		// rather than touch the consumer's own index.
		return
	}
	r.buf[w%ringSize] = v
	r.writeIndex.Store(w + 1)
}

// Drain copies up to len(dst) currently available samples into dst and
// returns the count copied.
func (r *ring) Drain(dst []int16) int {
	n := 0
	for n < len(dst) {
		read := r.readIndex.Load()
		if read >= r.writeIndex.Load() {
			break
		}
		dst[n] = r.buf[read%ringSize]
		r.readIndex.Store(read + 1)
		n++
	}
	return n
}

// downsampler accumulates one unit per CPU tick and emits a mixed
// sample whenever the accumulator reaches the CPU-to-audio ratio, per
// §4.4.
type downsampler struct {
	acc float64
}

const cyclesPerSample = 1789773.0 / 44100.0

func (d *downsampler) step(mix func() int16, out *ring) {
	d.acc++
	if d.acc >= cyclesPerSample {
		d.acc -= cyclesPerSample
		out.push(mix())
	}
}
