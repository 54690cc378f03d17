package nes

import "nescore/internal/log"

const (
	numScanlines = 262
	numDots      = 341
)

// spriteSlot is one entry of the 8-wide sprite shift pipeline loaded
// during dots 257-320 of the preceding scanline.
type spriteSlot struct {
	lo, hi   uint8
	attr     uint8
	x        uint8
	isZero   bool
}

// PPU is the NES Picture Processing Unit: a 262-scanline x 341-dot state
// machine producing one 256x240 frame per full sweep, flagged ready when
// the last dot of scanline 261 wraps back to scanline 0.
// It owns nametable/palette RAM and primary OAM; pattern data comes from
// the cartridge mapper's CHR space.
type PPU struct {
	mapper Mapper
	nmi    func() // edge-triggered: called once per vblank onset if enabled

	Scanline int
	Dot      int
	odd      bool

	ctrl, mask, status uint8

	// loopy registers, packed {fineY:3, nametable:2, coarseY:5, coarseX:5}
	v, t uint16
	x    uint8 // fine X, 3 bits
	w    bool  // write toggle

	oam          [256]uint8
	oamAddr      uint8
	secondaryLen int

	sprites [8]spriteSlot

	nametable [2048]uint8
	palette   [32]uint8

	readBuffer uint8

	// background shift pipeline
	bgShiftLo, bgShiftHi uint16
	bgLatchLo, bgLatchHi uint8
	atShiftLo, atShiftHi uint8
	atLatchLo, atLatchHi uint8
	ntByte, atByte       uint8

	frame      [frameWidth * frameHeight]uint32
	frameReady bool
}

const (
	ctrlNMI         = 1 << 7
	ctrlSpriteSize  = 1 << 5
	ctrlBgTable     = 1 << 4
	ctrlSpriteTable = 1 << 3
	ctrlIncr32      = 1 << 2
	ctrlNtMask      = 0b11

	maskShowSprites = 1 << 4
	maskShowBg      = 1 << 3

	statusVblank   = 1 << 7
	statusSprite0  = 1 << 6
	statusOverflow = 1 << 5
)

func newPPU(m Mapper, nmi func()) *PPU {
	return &PPU{mapper: m, nmi: nmi}
}

func (p *PPU) Reset() {
	p.Scanline, p.Dot, p.odd = 0, 0, false
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.v, p.t, p.x = 0, 0, 0
	p.w = false
	p.frameReady = false
}

func (p *PPU) renderingEnabled() bool { return p.mask&(maskShowBg|maskShowSprites) != 0 }

// FrameReady reports and clears the "a complete frame is in Frame()"
// flag; System.StepFrame polls this once per System.Step.
func (p *PPU) FrameReady() bool {
	r := p.frameReady
	p.frameReady = false
	return r
}

func (p *PPU) Frame() []uint32 { return p.frame[:] }

// Tick advances the PPU by one dot. Call three times per CPU cycle.
func (p *PPU) Tick() {
	visible := p.Scanline >= 0 && p.Scanline <= 239
	preRender := p.Scanline == 261

	if (visible || preRender) && p.renderingEnabled() {
		p.renderTick()
	}

	if visible && p.Dot >= 1 && p.Dot <= 256 {
		p.emitPixel()
	}

	if p.Scanline == 241 && p.Dot == 1 {
		p.status |= statusVblank
		if p.ctrl&ctrlNMI != 0 && p.nmi != nil {
			p.nmi()
		}
	}

	if preRender && p.Dot == 1 {
		p.status &^= statusVblank | statusSprite0 | statusOverflow
	}

	p.Dot++
	if p.Dot >= numDots {
		p.Dot = 0
		p.Scanline++
		if p.Scanline >= numScanlines {
			p.Scanline = 0
			p.odd = !p.odd
			p.frameReady = true
		}
	}
}

func (p *PPU) renderTick() {
	d := p.Dot
	switch {
	case d >= 1 && d <= 256:
		p.backgroundFetchStep(d)
		p.shiftSprites()
		if d == 256 {
			p.incrementY()
		}
	case d >= 321 && d <= 336:
		p.backgroundFetchStep(d)
	case d == 257:
		p.copyHorizontal()
		p.evaluateSprites()
	}
	if p.Scanline == 261 && d >= 280 && d <= 304 {
		p.copyVertical()
	}
}

// backgroundFetchStep performs the 8-dot NT/AT/pattern-lo/pattern-hi
// fetch sequence, reloading the shifters every 8 dots and shifting them
// every dot (per §4.3: "each consuming two dots... shift registers
// reloaded and shifted between fetches").
func (p *PPU) backgroundFetchStep(d int) {
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.atShiftLo = (p.atShiftLo << 1) | (p.atLatchLo)
	p.atShiftHi = (p.atShiftHi << 1) | (p.atLatchHi)

	switch d % 8 {
	case 1:
		p.reloadShifters()
		p.ntByte = p.readNametable(0x2000 | (p.v & 0x0FFF))
	case 3:
		p.atByte = p.readNametable(p.attributeAddress())
	case 5:
		p.bgLatchLo = p.readPattern(p.patternAddress(false))
	case 7:
		p.bgLatchHi = p.readPattern(p.patternAddress(true))
	case 0:
		p.incrementX()
	}
}

func (p *PPU) reloadShifters() {
	p.bgShiftLo = (p.bgShiftLo & 0xFF00) | uint16(p.bgLatchLo)
	p.bgShiftHi = (p.bgShiftHi & 0xFF00) | uint16(p.bgLatchHi)
	shift := ((p.v >> 4) & 4) | (p.v & 2)
	attr := (p.atByte >> shift) & 0b11
	if attr&1 != 0 {
		p.atLatchLo = 0xFF
	} else {
		p.atLatchLo = 0
	}
	if attr&2 != 0 {
		p.atLatchHi = 0xFF
	} else {
		p.atLatchHi = 0
	}
}

func (p *PPU) attributeAddress() uint16 {
	v := p.v
	return 0x23C0 | (v & 0x0C00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
}

func (p *PPU) patternAddress(highByte bool) uint16 {
	base := uint16(0)
	if p.ctrl&ctrlBgTable != 0 {
		base = 0x1000
	}
	tile := uint16(p.ntByte)
	fineY := (p.v >> 12) & 7
	off := uint16(0)
	if highByte {
		off = 8
	}
	return base + tile*16 + fineY + off
}

func (p *PPU) readPattern(addr uint16) uint8 { return p.mapper.PPURead(addr) }

func (p *PPU) incrementX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := (p.v & 0x03E0) >> 5
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = (p.v &^ 0x03E0) | (y << 5)
}

func (p *PPU) copyHorizontal() {
	p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
}

func (p *PPU) copyVertical() {
	p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
}

func (p *PPU) shiftSprites() {
	for i := range p.sprites[:p.secondaryLen] {
		if p.sprites[i].x > 0 {
			p.sprites[i].x--
		}
	}
}

// evaluateSprites scans primary OAM for sprites covering the next
// scanline; real hardware's diagonal-copy overflow bug is simplified
// here to a straight count past eight, per §4.3.
func (p *PPU) evaluateSprites() {
	p.secondaryLen = 0
	height := 8
	if p.ctrl&ctrlSpriteSize != 0 {
		height = 16
	}
	next := p.Scanline + 1
	count := 0
	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4])
		if next < y || next >= y+height {
			continue
		}
		if count < 8 {
			p.loadSprite(count, i, next, height, i == 0)
			count++
		} else {
			p.status |= statusOverflow
			break
		}
	}
	p.secondaryLen = count
}

func (p *PPU) loadSprite(slot, oamIndex, scanline, height int, isZero bool) {
	y := p.oam[oamIndex*4]
	tile := p.oam[oamIndex*4+1]
	attr := p.oam[oamIndex*4+2]
	x := p.oam[oamIndex*4+3]

	row := uint16(scanline) - uint16(y)
	flipV := attr&0x80 != 0
	if flipV {
		row = uint16(height) - 1 - row
	}

	var base uint16
	var tileIndex uint16
	if height == 16 {
		base = uint16(tile&1) * 0x1000
		tileIndex = uint16(tile &^ 1)
		if row >= 8 {
			tileIndex++
			row -= 8
		}
	} else {
		base = 0
		if p.ctrl&ctrlSpriteTable != 0 {
			base = 0x1000
		}
		tileIndex = uint16(tile)
	}

	lo := p.mapper.PPURead(base + tileIndex*16 + row)
	hi := p.mapper.PPURead(base + tileIndex*16 + row + 8)
	if attr&0x40 != 0 { // flip horizontal
		lo = reverseBits(lo)
		hi = reverseBits(hi)
	}
	p.sprites[slot] = spriteSlot{lo: lo, hi: hi, attr: attr, x: x, isZero: isZero}
}

func reverseBits(b uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

func (p *PPU) emitPixel() {
	x := p.Dot - 1
	bgPixel, bgOpaque := p.backgroundPixel()
	spPixel, spOpaque, spPriority, spZero := p.spritePixel(x)

	var colorIndex uint8
	switch {
	case !bgOpaque && !spOpaque:
		colorIndex = p.palette[0]
	case !bgOpaque && spOpaque:
		colorIndex = spPixel
	case bgOpaque && !spOpaque:
		colorIndex = bgPixel
	default:
		if spZero && x >= 1 && x <= 254 {
			p.status |= statusSprite0
		}
		if spPriority {
			colorIndex = bgPixel
		} else {
			colorIndex = spPixel
		}
	}

	p.frame[p.Scanline*frameWidth+x] = nesPalette[colorIndex&0x3F]
}

func (p *PPU) backgroundPixel() (color uint8, opaque bool) {
	if p.mask&maskShowBg == 0 {
		return 0, false
	}
	shift := uint(15 - p.x)
	lo := uint8((p.bgShiftLo >> shift) & 1)
	hi := uint8((p.bgShiftHi >> shift) & 1)
	pixel := hi<<1 | lo
	atLo := uint8((uint16(p.atShiftLo) >> shift) & 1)
	atHi := uint8((uint16(p.atShiftHi) >> shift) & 1)
	pal := atHi<<1 | atLo
	if pixel == 0 {
		return p.readPaletteRAM(0), false
	}
	return p.readPaletteRAM(pal<<2 | pixel), true
}

func (p *PPU) spritePixel(x int) (color uint8, opaque, priority, isZero bool) {
	if p.mask&maskShowSprites == 0 {
		return 0, false, false, false
	}
	for i := 0; i < p.secondaryLen; i++ {
		s := &p.sprites[i]
		if s.x != 0 {
			continue
		}
		lo := (s.lo >> 7) & 1
		hi := (s.hi >> 7) & 1
		pixel := hi<<1 | lo
		s.lo <<= 1
		s.hi <<= 1
		if pixel == 0 {
			continue
		}
		pal := s.attr & 0b11
		return p.readPaletteRAM(0x10 | pal<<2 | pixel), true, s.attr&0x20 != 0, s.isZero
	}
	return 0, false, false, false
}

func (p *PPU) readNametable(addr uint16) uint8 {
	return p.nametable[p.mirrorNametable(addr)]
}

func (p *PPU) mirrorNametable(addr uint16) uint16 {
	addr &= 0x0FFF
	table := addr / 0x0400
	offset := addr % 0x0400
	switch p.mapper.Mirroring() {
	case mirrorVertical:
		return (table%2)*0x0400 + offset
	case mirrorSingle0:
		return offset
	case mirrorSingle1:
		return 0x0400 + offset
	default: // horizontal
		return (table/2)*0x0400 + offset
	}
}

func (p *PPU) readPaletteRAM(index uint8) uint8 {
	return p.palette[mirrorPaletteIndex(index)]
}

func (p *PPU) writePaletteRAM(index, value uint8) {
	p.palette[mirrorPaletteIndex(index)] = value & 0x3F
}

// mirrorPaletteIndex aliases the universal-background entries
// $10/$14/$18/$1C onto $00/$04/$08/$0C per §3.
func mirrorPaletteIndex(index uint8) uint8 {
	index &= 0x1F
	if index >= 0x10 && index%4 == 0 {
		index &^= 0x10
	}
	return index
}

var modPPU = log.ModPPU
