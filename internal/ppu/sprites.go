package ppu

func (p *PPU) spriteHeight() int {
	if p.ctrl&ctrlSpriteSize16 != 0 {
		return 16
	}
	return 8
}

// evaluateSprites scans primary OAM for the up-to-8 sprites visible on
// the scanline that follows the current one and loads their pattern
// data immediately; real hardware spreads this across dots 65-320 of the
// current line and fetches patterns across dots 257-320 of the next, but
// collapsing it to a single pass at dot 257 produces the same picture
// since nothing else observes OAM state in between.
func (p *PPU) evaluateSprites() {
	line := int(p.scanline) + 1
	height := p.spriteHeight()

	p.spriteCount = 0
	p.spriteZeroOnLine = false
	overflow := false

	n := 0
	for n < 64 && p.spriteCount < 8 {
		y := int(p.OAM[n*4])
		if line >= y && line < y+height {
			idx := p.spriteCount
			p.loadSprite(idx, n, y, line, height)
			if n == 0 {
				p.spriteZeroOnLine = true
			}
			p.spriteCount++
		}
		n++
	}

	// Reproduce the diagonal-scan overflow bug: once 8 sprites have been
	// found, the evaluator keeps advancing but (due to a hardware
	// increment bug) reads OAM with both indices sliding, so it often
	// tests non-Y bytes against the Y range and can still set the
	// overflow flag, or miss it, depending on what those bytes contain.
	m := 0
	for n < 64 {
		val := int(p.OAM[n*4+m])
		if line >= val && line < val+height {
			overflow = true
			break
		}
		m = (m + 1) % 4
		n++
	}
	if overflow {
		p.status |= statusSpriteOverflow
	}
}

func (p *PPU) loadSprite(idx, oamIndex, y, line, height int) {
	tileIdx := p.OAM[oamIndex*4+1]
	attr := p.OAM[oamIndex*4+2]
	x := p.OAM[oamIndex*4+3]

	row := line - y
	flipV := attr&0x80 != 0
	flipH := attr&0x40 != 0
	if flipV {
		row = height - 1 - row
	}

	var table, tile uint16
	if height == 16 {
		table = uint16(tileIdx&0x01) * 0x1000
		tile = uint16(tileIdx &^ 1)
		if row >= 8 {
			tile++
			row -= 8
		}
	} else {
		if p.ctrl&ctrlSpritePattern != 0 {
			table = 0x1000
		}
		tile = uint16(tileIdx)
	}

	lo := p.read(table + tile*16 + uint16(row))
	hi := p.read(table + tile*16 + uint16(row) + 8)
	if flipH {
		lo = reverseBits(lo)
		hi = reverseBits(hi)
	}

	p.spritePatternLo[idx] = lo
	p.spritePatternHi[idx] = hi
	p.spriteX[idx] = x
	p.spriteAttr[idx] = attr
	p.spriteIsZero[idx] = oamIndex == 0
}

func reverseBits(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// spritePixel returns the highest-priority opaque sprite pixel at
// column x on the current scanline, if any.
func (p *PPU) spritePixel(x int) (color uint8, opaque bool, behindBG bool, isZero bool) {
	if p.mask&maskShowSprites == 0 {
		return 0, false, false, false
	}
	for i := 0; i < p.spriteCount; i++ {
		offset := x - int(p.spriteX[i])
		if offset < 0 || offset > 7 {
			continue
		}
		bit := uint(7 - offset)
		lo := (p.spritePatternLo[i] >> bit) & 1
		hi := (p.spritePatternHi[i] >> bit) & 1
		patt := hi<<1 | lo
		if patt == 0 {
			continue
		}
		pal := p.spriteAttr[i] & 0x03
		c := p.readPalette(0x3F10 + uint16(pal)*4 + uint16(patt))
		return c, true, p.spriteAttr[i]&0x20 != 0, p.spriteIsZero[i] && p.spriteZeroOnLine
	}
	return 0, false, false, false
}
