package ppu

// Tick advances the PPU by exactly one dot, following the 262-scanline
// x 341-dot grid (scanlines -1..260, with -1 the pre-render line). The
// scheduler calls this three times per CPU cycle.
func (p *PPU) Tick() {
	p.runVisibleOrPrerender()
	p.runVBlankEdge()
	p.advanceDot()
}

func (p *PPU) advanceDot() {
	p.dot++
	// Odd-frame dot skip: the pre-render line's last dot (340) is
	// skipped entirely when rendering is enabled, shortening that
	// frame's pre-render line to 340 dots instead of 341. Dot 339 still
	// ran its tick before this call; the frame counter was already
	// bumped when scanline wrapped 260->-1 into this pre-render line, so
	// it isn't incremented again here.
	if p.scanline == -1 && p.dot == 340 && p.oddFrame && p.renderingEnabled() {
		p.dot = 0
		p.scanline = 0
		return
	}
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frame++
			p.oddFrame = !p.oddFrame
		}
	}
}

func (p *PPU) runVBlankEdge() {
	if p.scanline == 241 && p.dot == 1 {
		p.status |= statusVBlank
		p.FrameReady = true
	}
	if p.scanline == -1 && p.dot == 1 {
		p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
	}
}

func (p *PPU) runVisibleOrPrerender() {
	visible := p.scanline >= 0 && p.scanline <= 239
	prerender := p.scanline == -1
	if !visible && !prerender {
		return
	}
	if !p.renderingEnabled() {
		return
	}

	if (p.dot >= 1 && p.dot <= 256) || (p.dot >= 321 && p.dot <= 336) {
		p.backgroundFetchCycle()
	}
	if p.dot == 256 {
		p.v.incrementY()
	}
	if p.dot == 257 {
		p.v = loopy((uint16(p.v) &^ 0x041F) | (uint16(p.t) & 0x041F))
		if visible || prerender {
			p.evaluateSprites()
		}
	}
	if prerender && p.dot >= 280 && p.dot <= 304 {
		p.v = loopy((uint16(p.v) &^ 0x7BE0) | (uint16(p.t) & 0x7BE0))
	}

	if visible && p.dot >= 1 && p.dot <= 256 {
		p.renderPixel(int(p.dot-1), int(p.scanline))
	}
	if p.dot >= 1 && p.dot <= 336 {
		p.bgShiftLo <<= 1
		p.bgShiftHi <<= 1
		p.atShiftLo = p.atShiftLo<<1 | uint16(p.atLatchLo)
		p.atShiftHi = p.atShiftHi<<1 | uint16(p.atLatchHi)
	}
}

// backgroundFetchCycle reproduces the nesdev fetch timing: a nametable
// byte, attribute byte, and pattern low/high planes are each fetched
// across two dots, with the shift registers reloaded every eighth dot.
func (p *PPU) backgroundFetchCycle() {
	switch (p.dot - 1) % 8 {
	case 1:
		p.ntByte = p.read(p.v.nametableAddr())
	case 3:
		attrAddr := 0x23C0 | (uint16(p.v) & 0x0C00) | ((p.v.coarseY() >> 2) << 3) | (p.v.coarseX() >> 2)
		at := p.read(attrAddr)
		shift := ((p.v.coarseY() & 0x02) << 1) | (p.v.coarseX() & 0x02)
		p.atByte = (at >> shift) & 0x03
	case 5:
		table := uint16(0)
		if p.ctrl&ctrlBGPattern != 0 {
			table = 0x1000
		}
		p.bgLoByte = p.read(table + uint16(p.ntByte)*16 + p.v.fineY())
	case 7:
		table := uint16(0)
		if p.ctrl&ctrlBGPattern != 0 {
			table = 0x1000
		}
		p.bgHiByte = p.read(table + uint16(p.ntByte)*16 + p.v.fineY() + 8)
		p.reloadShiftRegisters()
		p.v.incrementCoarseX()
	}
}

func (p *PPU) reloadShiftRegisters() {
	p.bgShiftLo = (p.bgShiftLo & 0xFF00) | uint16(p.bgLoByte)
	p.bgShiftHi = (p.bgShiftHi & 0xFF00) | uint16(p.bgHiByte)
	p.atLatchLo = p.atByte & 0x01
	p.atLatchHi = (p.atByte >> 1) & 0x01
}

func (p *PPU) backgroundPixel() (color uint8, opaque bool) {
	if p.mask&maskShowBG == 0 {
		return 0, false
	}
	shift := uint(15 - p.fineX)
	lo := uint8((p.bgShiftLo >> shift) & 1)
	hi := uint8((p.bgShiftHi >> shift) & 1)
	patt := hi<<1 | lo
	alo := uint8((p.atShiftLo >> shift) & 1)
	ahi := uint8((p.atShiftHi >> shift) & 1)
	pal := ahi<<1 | alo
	if patt == 0 {
		return p.readPalette(0x3F00), false
	}
	return p.readPalette(0x3F00 + uint16(pal)*4 + uint16(patt)), true
}

func (p *PPU) renderPixel(x, y int) {
	bgColor, bgOpaque := p.backgroundPixel()
	if x < 8 && p.mask&maskShowBGLeft == 0 {
		bgOpaque = false
	}

	spColor, spOpaque, spPriority, spIsZero := p.spritePixel(x)
	if x < 8 && p.mask&maskShowSpriteLeft == 0 {
		spOpaque = false
	}

	if spOpaque && bgOpaque && spIsZero && x != 255 {
		p.status |= statusSprite0Hit
	}

	out := p.readPalette(0x3F00)
	switch {
	case spOpaque && (!bgOpaque || !spPriority):
		out = spColor
	case bgOpaque:
		out = bgColor
	case spOpaque:
		out = spColor
	}
	p.FrameBuffer[y*Width+x] = out
}
