// Package sdl is the SDL2 host: a window/renderer for the PPU's
// framebuffer, an audio device fed by blip-resampled APU output, and
// keyboard polling translated into controller input. Grounded on
// arl-nestor's hw package, but built on sdl.Renderer/sdl.Texture rather
// than the teacher's raw OpenGL + shader pipeline (go-gl isn't part of
// this tree's dependency set, and SDL's own texture blit covers the same
// "framebuffer on screen" need without it).
package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	frameWidth  = 256
	frameHeight = 240
)

// Display owns the window, renderer, and streaming texture the NES
// framebuffer is blitted into once per frame.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
}

// NewDisplay creates a scale x framebuffer-sized window titled title.
func NewDisplay(title string, scale int, vsync bool) (*Display, error) {
	if scale < 1 {
		scale = 1
	}

	w, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(frameWidth*scale), int32(frameHeight*scale),
		sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	r, err := sdl.CreateRenderer(w, -1, flags)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	if err := r.SetLogicalSize(frameWidth, frameHeight); err != nil {
		r.Destroy()
		w.Destroy()
		return nil, fmt.Errorf("set logical size: %w", err)
	}

	t, err := r.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, frameWidth, frameHeight)
	if err != nil {
		r.Destroy()
		w.Destroy()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &Display{
		window:   w,
		renderer: r,
		texture:  t,
		pixels:   make([]byte, frameWidth*frameHeight*4),
	}, nil
}

// Present blits frame — nes.System.Frame's packed 0x00RRGGBB pixels,
// row-major — onto the window.
func (d *Display) Present(frame []uint32) error {
	for i, px := range frame {
		d.pixels[i*4+0] = byte(px)
		d.pixels[i*4+1] = byte(px >> 8)
		d.pixels[i*4+2] = byte(px >> 16)
		d.pixels[i*4+3] = 0xFF
	}

	if err := d.texture.Update(nil, d.pixels, frameWidth*4); err != nil {
		return err
	}
	if err := d.renderer.Clear(); err != nil {
		return err
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return err
	}
	d.renderer.Present()
	return nil
}

func (d *Display) Close() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
}
