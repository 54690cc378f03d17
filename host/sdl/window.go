package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"nescore/nes"
)

// Run drives the emulation/video/audio/input loop until the window is
// closed or Escape is pressed. Must run on the thread sdl.Main entered,
// matching arl-nestor's run.go convention of wrapping the whole session
// in sdl.Main.
func Run(sys *nes.System, disp *Display, audio *Audio, input *Input) error {
	defer disp.Close()
	if audio != nil {
		defer audio.Close()
	}

	var samples [4096]int16
	for {
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			switch ev := e.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE && ev.State == sdl.PRESSED {
					return nil
				}
			}
		}

		if input != nil {
			input.Poll(sys.SendInput)
		}

		sys.StepFrame()

		if err := disp.Present(sys.Frame()); err != nil {
			return err
		}

		if audio != nil {
			for {
				n := sys.DrainAudio(samples[:])
				if n == 0 {
					break
				}
				if err := audio.Push(samples[:n]); err != nil {
					return err
				}
				if n < len(samples) {
					break
				}
			}
		}
	}
}
