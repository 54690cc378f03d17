// Package log provides module-scoped structured logging: each subsystem
// (CPU, PPU, APU, mapper, I/O) logs through its own Module constant so
// verbosity can be tuned per subsystem without touching call sites.
package log

import (
	"fmt"

	"gopkg.in/Sirupsen/logrus.v0"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Module uint

const (
	ModEmu Module = iota
	ModCPU
	ModPPU
	ModAPU
	ModMapper
	ModIO

	modCount
)

var modNames = [modCount]string{"emu", "cpu", "ppu", "apu", "mapper", "io"}

// debugMask enables Debug-level output per module; off by default since
// per-instruction CPU/PPU logging is far too verbose to run by default.
var debugMask uint64

// disabled, when set, silences every module regardless of debugMask; set
// by the --log=no command-line case.
var disabled bool

// ModuleMask is a bitset of Module values, used by the command line's
// --log=mod0,mod1,... flag to enable several modules at once.
type ModuleMask uint64

// ModuleMaskAll enables every known module.
const ModuleMaskAll ModuleMask = (1 << modCount) - 1

// Mask returns the single-bit ModuleMask for m.
func (m Module) Mask() ModuleMask { return ModuleMask(1) << uint(m) }

// ModuleNames returns the names accepted by ModuleByName, in Module order.
func ModuleNames() []string {
	names := make([]string, modCount)
	copy(names, modNames[:])
	return names
}

// ModuleByName looks up a Module by the name printed in ModuleNames.
func ModuleByName(name string) (Module, bool) {
	for i, n := range modNames {
		if n == name {
			return Module(i), true
		}
	}
	return 0, false
}

// EnableDebugModules turns on Debug-level output for every module set in
// mask, replacing whatever was previously enabled.
func EnableDebugModules(mask ModuleMask) {
	disabled = false
	debugMask = uint64(mask)
	logrus.SetLevel(logrus.DebugLevel)
}

// Disable silences every module, overriding any enabled mask.
func Disable() { disabled = true }

func EnableDebug(mods ...Module) {
	for _, m := range mods {
		debugMask |= 1 << uint(m)
	}
}

func (m Module) enabled(lvl Level) bool {
	if disabled {
		return false
	}
	if lvl > DebugLevel {
		return true
	}
	return debugMask&(1<<uint(m)) != 0
}

func (m Module) String() string { return modNames[m] }

func (m Module) Debugf(format string, args ...any) { m.logf(DebugLevel, format, args...) }
func (m Module) Infof(format string, args ...any)  { m.logf(InfoLevel, format, args...) }
func (m Module) Warnf(format string, args ...any)  { m.logf(WarnLevel, format, args...) }
func (m Module) Errorf(format string, args ...any) { m.logf(ErrorLevel, format, args...) }

func (m Module) logf(lvl Level, format string, args ...any) {
	if !m.enabled(lvl) {
		return
	}
	entry := logrus.WithField("mod", m.String())
	msg := fmt.Sprintf(format, args...)
	switch lvl {
	case DebugLevel:
		entry.Debug(msg)
	case InfoLevel:
		entry.Info(msg)
	case WarnLevel:
		entry.Warn(msg)
	default:
		entry.Error(msg)
	}
}

// EntryZ is a structured log builder: fields accumulate in a logrus.Fields
// map, and on a disabled entry the setters skip formatting and storing
// their values. Chain field setters and close with End().
type EntryZ struct {
	mod     Module
	lvl     Level
	msg     string
	live    bool
	fields  logrus.Fields
}

func (m Module) logz(lvl Level, msg string) *EntryZ {
	return &EntryZ{mod: m, lvl: lvl, msg: msg, live: m.enabled(lvl), fields: logrus.Fields{}}
}

func (m Module) DebugZ(msg string) *EntryZ { return m.logz(DebugLevel, msg) }
func (m Module) InfoZ(msg string) *EntryZ  { return m.logz(InfoLevel, msg) }
func (m Module) WarnZ(msg string) *EntryZ  { return m.logz(WarnLevel, msg) }
func (m Module) ErrorZ(msg string) *EntryZ { return m.logz(ErrorLevel, msg) }

func (e *EntryZ) Hex8(key string, v uint8) *EntryZ {
	if e.live {
		e.fields[key] = fmt.Sprintf("%02x", v)
	}
	return e
}

func (e *EntryZ) Hex16(key string, v uint16) *EntryZ {
	if e.live {
		e.fields[key] = fmt.Sprintf("%04x", v)
	}
	return e
}

func (e *EntryZ) Uint(key string, v uint64) *EntryZ {
	if e.live {
		e.fields[key] = v
	}
	return e
}

func (e *EntryZ) Str(key, v string) *EntryZ {
	if e.live {
		e.fields[key] = v
	}
	return e
}

func (e *EntryZ) Err(err error) *EntryZ {
	if e.live {
		e.fields["err"] = err
	}
	return e
}

// End emits the accumulated entry. Call exactly once per EntryZ.
func (e *EntryZ) End() {
	if !e.live {
		return
	}
	entry := logrus.WithField("mod", e.mod.String()).WithFields(e.fields)
	switch e.lvl {
	case DebugLevel:
		entry.Debug(e.msg)
	case InfoLevel:
		entry.Info(e.msg)
	case WarnLevel:
		entry.Warn(e.msg)
	default:
		entry.Error(e.msg)
	}
}
