package sdl

import "github.com/veandco/go-sdl2/sdl"

// Input polls SDL's live keyboard state and translates it into NES
// controller button presses. Two KeyConfig-shaped scancode arrays, one
// per pad, in nes.ButtonX order.
type Input struct {
	pads [2][8]sdl.Scancode
}

func NewInput(pad1, pad2 [8]sdl.Scancode) *Input {
	return &Input{pads: [2][8]sdl.Scancode{pad1, pad2}}
}

// Poll reads the current keyboard state and calls report(pad, button,
// pressed) for every button on every configured pad — report is meant to
// be nes.System.SendInput.
func (in *Input) Poll(report func(pad, button int, pressed bool)) {
	keys := sdl.GetKeyboardState()
	for pad := range in.pads {
		for button, code := range in.pads[pad] {
			report(pad, button, keys[code] != 0)
		}
	}
}
