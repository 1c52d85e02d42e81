package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nescore/internal/cartridge"
)

type fakeBus struct {
	chr      [0x2000]uint8
	mirror   cartridge.Mirroring
	tickLog  int
}

func (b *fakeBus) PPURead(addr uint16) uint8     { return b.chr[addr] }
func (b *fakeBus) PPUWrite(addr uint16, v uint8) { b.chr[addr] = v }
func (b *fakeBus) Mirroring() cartridge.Mirroring { return b.mirror }
func (b *fakeBus) TickPPUAddress(addr uint16)    { b.tickLog++ }

func newTestPPU() (*PPU, *fakeBus) {
	bus := &fakeBus{mirror: cartridge.MirrorVertical}
	return New(bus), bus
}

func runDots(p *PPU, n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}

func TestVBlankSetsAtScanline241Dot1(t *testing.T) {
	p, _ := newTestPPU()
	// scanline starts at -1, dot 0; run every dot up to and including
	// scanline 241 dot 1.
	runDots(p, 341*242+2)
	assert.True(t, p.status&statusVBlank != 0)
	assert.True(t, p.NMILine() == (p.ctrl&ctrlNMIEnable != 0))
}

func TestReadingStatusClearsVBlankAndWriteLatch(t *testing.T) {
	p, _ := newTestPPU()
	p.status |= statusVBlank
	p.writeLatch = true
	v := p.ReadRegister(RegStatus)
	assert.NotZero(t, v&statusVBlank)
	assert.False(t, p.writeLatch)
	assert.Zero(t, p.status&statusVBlank)
}

func TestPaletteMirrorSpriteBackdropEntries(t *testing.T) {
	p, _ := newTestPPU()
	p.writePalette(0x3F00, 0x10)
	assert.Equal(t, uint8(0x10), p.readPalette(0x3F10))
}

func TestAddrLatchSequencing(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteRegister(RegAddr, 0x21)
	p.WriteRegister(RegAddr, 0x08)
	assert.Equal(t, uint16(0x2108), uint16(p.v))
}

func TestDataReadIsBuffered(t *testing.T) {
	p, bus := newTestPPU()
	bus.chr[0x0010] = 0x77
	p.v = 0x0010
	first := p.ReadRegister(RegData)
	assert.NotEqual(t, uint8(0x77), first) // stale buffer from before the read
	second := p.ReadRegister(RegData)
	assert.Equal(t, uint8(0x77), second)
}

func TestSaveLoadStateRoundTrip(t *testing.T) {
	p, _ := newTestPPU()
	p.palette[0] = 0x3F
	p.OAM[10] = 0x42
	p.v = 0x1234
	snap := p.SaveState()

	p2, _ := newTestPPU()
	require.NoError(t, p2.LoadState(snap))
	assert.Equal(t, p.palette, p2.palette)
	assert.Equal(t, p.OAM, p2.OAM)
	assert.Equal(t, p.v, p2.v)
}

func TestOverflowBugCanFlagMoreThanEightCandidates(t *testing.T) {
	p, _ := newTestPPU()
	p.mask = maskShowSprites | maskShowBG
	for i := 0; i < 10; i++ {
		p.OAM[i*4] = 10 // all ten overlap scanline 10/11
	}
	p.scanline = 10
	p.evaluateSprites()
	assert.Equal(t, 8, p.spriteCount)
	assert.NotZero(t, p.status&statusSpriteOverflow)
}
