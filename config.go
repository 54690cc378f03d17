package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// KeyConfig maps the eight NES controller buttons, in nes.ButtonX order,
// to SDL keyboard scancodes for one controller port.
type KeyConfig struct {
	A      sdl.Scancode `toml:"a"`
	B      sdl.Scancode `toml:"b"`
	Select sdl.Scancode `toml:"select"`
	Start  sdl.Scancode `toml:"start"`
	Up     sdl.Scancode `toml:"up"`
	Down   sdl.Scancode `toml:"down"`
	Left   sdl.Scancode `toml:"left"`
	Right  sdl.Scancode `toml:"right"`
}

// Scancodes returns cfg's mapping indexed by nes.ButtonX.
func (cfg KeyConfig) Scancodes() [8]sdl.Scancode {
	return [8]sdl.Scancode{cfg.A, cfg.B, cfg.Select, cfg.Start, cfg.Up, cfg.Down, cfg.Left, cfg.Right}
}

type InputConfig struct {
	Pad1 KeyConfig `toml:"pad1"`
	Pad2 KeyConfig `toml:"pad2"`
}

type VideoConfig struct {
	Scale        int  `toml:"scale"`
	DisableVSync bool `toml:"disable_vsync"`
}

type AudioConfig struct {
	Disabled bool `toml:"disabled"`
	Volume   int  `toml:"volume"` // 0-100
}

type Config struct {
	Input InputConfig `toml:"input"`
	Video VideoConfig `toml:"video"`
	Audio AudioConfig `toml:"audio"`
}

var defaultConfig = Config{
	Input: InputConfig{
		Pad1: KeyConfig{
			A: sdl.SCANCODE_X, B: sdl.SCANCODE_Z,
			Select: sdl.SCANCODE_BACKSPACE, Start: sdl.SCANCODE_RETURN,
			Up: sdl.SCANCODE_UP, Down: sdl.SCANCODE_DOWN,
			Left: sdl.SCANCODE_LEFT, Right: sdl.SCANCODE_RIGHT,
		},
	},
	Video: VideoConfig{Scale: 3},
	Audio: AudioConfig{Volume: 100},
}

const configFilename = "config.toml"

var configDir = sync.OnceValue(func() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	dir = filepath.Join(dir, "nescore")
	os.MkdirAll(dir, 0o755)
	return dir
})

// loadConfig reads path (or the user config directory's config.toml when
// path is empty), falling back to defaultConfig whenever the file is
// missing or invalid: a missing config is the common case, not an error.
func loadConfig(path string) Config {
	if path == "" {
		path = filepath.Join(configDir(), configFilename)
	}
	cfg := defaultConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig
	}
	return cfg
}
