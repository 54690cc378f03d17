package sdl

import (
	"github.com/arl/blip"
	"github.com/veandco/go-sdl2/sdl"
)

// apuSampleRate is the fixed rate nes/apu's downsampler emits at (§4.4).
const apuSampleRate = 44100

// Audio resamples the APU's fixed-rate mono sample stream to whatever
// rate the opened device actually granted, via blip's band-limited
// synthesis — grounded on arl-nestor/hw/audio.go's AudioMixer, simplified
// to a single already-mixed channel since nes/apu mixes its four
// channels itself rather than exposing per-channel deltas.
type Audio struct {
	deviceID sdl.AudioDeviceID
	buf      *blip.Buffer
	prev     int16
	volume   float64
	out      []int16
}

// NewAudio opens the default playback device and sets up resampling to
// its native rate. volumePercent scales every sample, 0-100.
func NewAudio(volumePercent int) (*Audio, error) {
	want := &sdl.AudioSpec{
		Freq:     apuSampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}
	var obtained sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, want, &obtained, sdl.AUDIO_ALLOW_FREQUENCY_CHANGE)
	if err != nil {
		return nil, err
	}
	sdl.PauseAudioDevice(id, false)

	buf := blip.NewBuffer(int(obtained.Freq)/10 + 1)
	buf.SetRates(apuSampleRate, float64(obtained.Freq))

	return &Audio{deviceID: id, buf: buf, volume: float64(volumePercent) / 100}, nil
}

// Push feeds newly drained APU samples (at apuSampleRate) into the
// resampler and queues whatever output it produces for the device.
func (a *Audio) Push(samples []int16) error {
	for i, s := range samples {
		scaled := int16(float64(s) * a.volume)
		if scaled != a.prev {
			a.buf.AddDelta(uint64(i), int32(scaled)-int32(a.prev))
			a.prev = scaled
		}
	}
	a.buf.EndFrame(len(samples))

	n := a.buf.SamplesAvailable()
	if n == 0 {
		return nil
	}
	if n > len(a.out) {
		a.out = make([]int16, n)
	}
	n = a.buf.ReadSamples(a.out, n, blip.Mono)
	return sdl.QueueAudio(a.deviceID, int16ToBytes(a.out[:n]))
}

func (a *Audio) Close() { sdl.CloseAudioDevice(a.deviceID) }

func int16ToBytes(s []int16) []byte {
	b := make([]byte, len(s)*2)
	for i, v := range s {
		b[i*2] = byte(v)
		b[i*2+1] = byte(v >> 8)
	}
	return b
}
