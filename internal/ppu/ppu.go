// Package ppu implements a dot-accurate model of the NES 2C02 picture
// processing unit: the 262x341 scanline/dot grid, the background
// shift-register pipeline, sprite evaluation including the diagonal-scan
// overflow bug, sprite-0 hit, VBlank/NMI timing and open-bus behavior.
// The register file and system palette are adapted from the teacher's
// ppu package; the rendering loop itself is new, since the teacher only
// drew static tiles rather than emulating scanline timing.
package ppu

import "nescore/internal/cartridge"

const (
	Width  = 256
	Height = 240
)

// Bus is everything the PPU needs from the rest of the machine: CHR
// pattern-table access and mirroring through the cartridge mapper, plus
// a hook so A12-sensitive mappers (MMC3) can observe every address the
// PPU reads or writes through its bus.
type Bus interface {
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, val uint8)
	Mirroring() cartridge.Mirroring
	TickPPUAddress(addr uint16)
}

// PPU holds all rendering and register state described in spec.md §4.
type PPU struct {
	bus Bus

	nametables   [2048]uint8
	palette      [32]uint8
	OAM          [256]uint8
	secondaryOAM [32]uint8

	ctrl, mask, status uint8
	oamAddr            uint8

	v, t       loopy
	fineX      uint8
	writeLatch bool
	readBuffer uint8
	openBus    uint8

	scanline int32
	dot      int32
	frame    uint64
	oddFrame bool

	ntByte, atByte, bgLoByte, bgHiByte uint8
	bgShiftLo, bgShiftHi               uint16
	atShiftLo, atShiftHi               uint16
	atLatchLo, atLatchHi               uint8

	spriteCount                       int
	spritePatternLo, spritePatternHi  [8]uint8
	spriteX                           [8]uint8
	spriteAttr                        [8]uint8
	spriteIsZero                      [8]bool
	spriteZeroOnLine                  bool
	spriteZeroRendering               bool

	nmiEdgePending bool // never set or read; the CPU finds NMI edges by sampling NMILine()

	FrameBuffer [Width * Height]uint8 // palette index per pixel, emphasis applied at conversion time
	FrameReady  bool
}

// New constructs a PPU wired to bus. Call Reset before running.
func New(bus Bus) *PPU {
	p := &PPU{bus: bus}
	p.Reset()
	return p
}

// Reset puts the PPU in its post-power-on state: rendering disabled,
// scanline parked at the pre-render line, all latches cleared.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t = 0, 0
	p.fineX = 0
	p.writeLatch = false
	p.readBuffer = 0
	p.scanline = -1
	p.dot = 0
	p.frame = 0
	p.oddFrame = false
}

func (p *PPU) renderingEnabled() bool { return p.mask&(maskShowBG|maskShowSprites) != 0 }

// NMILine reports the PPU's NMI output (VBlank flag AND NMI-enable
// control bit) for the CPU to sample as its edge-triggered NMI input.
func (p *PPU) NMILine() bool {
	return p.status&statusVBlank != 0 && p.ctrl&ctrlNMIEnable != 0
}

// --- CPU-facing register file ---

// ReadRegister services a CPU read of $2000-$2007 (already demirrored by
// the bus). Reading a write-only register returns the PPU's open-bus
// latch, which every access refreshes with whatever bits were driven.
func (p *PPU) ReadRegister(reg uint16) uint8 {
	switch reg {
	case RegStatus:
		v := (p.status & 0xE0) | (p.openBus & 0x1F)
		p.status &^= statusVBlank
		p.writeLatch = false
		p.openBus = v
		return v
	case RegOAMData:
		v := p.OAM[p.oamAddr]
		p.openBus = v
		return v
	case RegData:
		var v uint8
		if p.v.nametableAddr() >= 0x3F00 {
			// Palette reads are unbuffered; the buffer instead captures
			// the mirrored nametable byte that "shows through" underneath.
			v = p.readPalette(uint16(p.v)) | (p.openBus & 0xC0)
			p.readBuffer = p.read(uint16(p.v) &^ 0x1000)
		} else {
			v = p.readBuffer
			p.readBuffer = p.read(uint16(p.v))
		}
		p.incrementVRAMAddr()
		p.openBus = v
		return v
	default:
		return p.openBus
	}
}

// WriteRegister services a CPU write of $2000-$2007.
func (p *PPU) WriteRegister(reg uint16, val uint8) {
	p.openBus = val
	switch reg {
	case RegCtrl:
		p.ctrl = val
		p.t = loopy((uint16(p.t) &^ 0x0C00) | (uint16(val&0x03) << 10))
	case RegMask:
		p.mask = val
	case RegOAMAddr:
		p.oamAddr = val
	case RegOAMData:
		p.OAM[p.oamAddr] = val
		p.oamAddr++
	case RegScroll:
		if !p.writeLatch {
			p.fineX = val & 0x07
			p.t.setCoarseX(uint16(val) >> 3)
		} else {
			p.t.setFineY(uint16(val))
			p.t.setCoarseY(uint16(val) >> 3)
		}
		p.writeLatch = !p.writeLatch
	case RegAddr:
		if !p.writeLatch {
			p.t = loopy((uint16(p.t) & 0x00FF) | (uint16(val&0x3F) << 8))
		} else {
			p.t = loopy((uint16(p.t) & 0xFF00) | uint16(val))
			p.v = p.t
			p.bus.TickPPUAddress(uint16(p.v))
		}
		p.writeLatch = !p.writeLatch
	case RegData:
		p.write(uint16(p.v), val)
		p.incrementVRAMAddr()
	}
}

func (p *PPU) incrementVRAMAddr() {
	if p.ctrl&ctrlIncrement32 != 0 {
		p.v = loopy(uint16(p.v) + 32)
	} else {
		p.v = loopy(uint16(p.v) + 1)
	}
	p.bus.TickPPUAddress(uint16(p.v))
}

// --- internal VRAM bus ---

func (p *PPU) nametableOffset(addr uint16) uint16 {
	a := (addr - 0x2000) % 0x1000
	table := a / 0x0400
	off := a % 0x0400
	switch p.bus.Mirroring() {
	case cartridge.MirrorVertical:
		return (table%2)*0x0400 + off
	case cartridge.MirrorHorizontal:
		return (table/2)*0x0400 + off
	case cartridge.MirrorSingleLo:
		return off
	case cartridge.MirrorSingleHi:
		return 0x0400 + off
	default: // four-screen: only the internal 2 KiB exists, so tables 2/3 mirror tables 0/1
		return a % 2048
	}
}

func (p *PPU) read(addr uint16) uint8 {
	addr &= 0x3FFF
	p.bus.TickPPUAddress(addr)
	switch {
	case addr < 0x2000:
		return p.bus.PPURead(addr)
	case addr < 0x3F00:
		return p.nametables[p.nametableOffset(addr)]
	default:
		return p.readPalette(addr)
	}
}

func (p *PPU) write(addr uint16, val uint8) {
	addr &= 0x3FFF
	p.bus.TickPPUAddress(addr)
	switch {
	case addr < 0x2000:
		p.bus.PPUWrite(addr, val)
	case addr < 0x3F00:
		p.nametables[p.nametableOffset(addr)] = val
	default:
		p.writePalette(addr, val)
	}
}

func paletteIndex(addr uint16) uint16 {
	i := (addr - 0x3F00) % 32
	// $3F10/$3F14/$3F18/$3F1C mirror their $3F00-equivalent background
	// entries; sprite palette 0's backdrop is never independently stored.
	if i >= 16 && i%4 == 0 {
		i -= 16
	}
	return i
}

func (p *PPU) readPalette(addr uint16) uint8 { return p.palette[paletteIndex(addr)] }
func (p *PPU) writePalette(addr uint16, val uint8) {
	p.palette[paletteIndex(addr)] = val & 0x3F
}

// RGBA returns pixel (x, y) of the last completed frame as 8-bit RGBA,
// with color emphasis applied.
func (p *PPU) RGBA(x, y int) (r, g, b, a uint8) {
	idx := p.FrameBuffer[y*Width+x] & 0x3F
	rgb := systemPalette[idx]
	rgb = emphasisDarken(rgb, p.mask&maskEmphasizeR != 0, p.mask&maskEmphasizeG != 0, p.mask&maskEmphasizeB != 0)
	return rgb[0], rgb[1], rgb[2], 0xFF
}
