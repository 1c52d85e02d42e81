package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nescore/internal/cartridge"
)

func makeROM(mapperID uint16, prgBanks, chrBanks int, mirror cartridge.Mirroring) *cartridge.ROM {
	prg := make([]byte, prgBanks*16384)
	for i := range prg {
		prg[i] = byte(i)
	}
	var chr []byte
	hasRAM := chrBanks == 0
	if hasRAM {
		chr = make([]byte, 8192)
	} else {
		chr = make([]byte, chrBanks*8192)
	}
	return &cartridge.ROM{MapperID: mapperID, PRG: prg, CHR: chr, Mirroring: mirror, HasCHRRAM: hasRAM}
}

func TestNewUnsupportedMapper(t *testing.T) {
	_, err := New(&cartridge.ROM{MapperID: 9999})
	assert.Error(t, err)
}

func TestNROMMirrors16KPRG(t *testing.T) {
	rom := makeROM(0, 1, 1, cartridge.MirrorVertical)
	m, err := New(rom)
	require.NoError(t, err)

	assert.Equal(t, m.CPURead(0x8000), m.CPURead(0xC000))
	assert.Equal(t, cartridge.MirrorVertical, m.Mirroring())
}

func TestUxROMFixesLastBank(t *testing.T) {
	rom := makeROM(2, 4, 0, cartridge.MirrorHorizontal)
	m, err := New(rom)
	require.NoError(t, err)

	last := rom.PRG[3*16384]
	assert.Equal(t, last, m.CPURead(0xC000))

	m.CPUWrite(0x8000, 2)
	assert.Equal(t, rom.PRG[2*16384], m.CPURead(0x8000))
}

func TestCNROMSwitchesCHRBank(t *testing.T) {
	rom := makeROM(3, 1, 4, cartridge.MirrorHorizontal)
	m, err := New(rom)
	require.NoError(t, err)

	m.CPUWrite(0x8000, 3)
	assert.Equal(t, rom.CHR[3*8192], m.PPURead(0))
}

func TestMMC1PowerOnFixesLastPRGBank(t *testing.T) {
	rom := makeROM(1, 4, 0, cartridge.MirrorHorizontal)
	m, err := New(rom)
	require.NoError(t, err)

	assert.Equal(t, rom.PRG[3*16384], m.CPURead(0xC000))
}

func mmc1Write(m Mapper, addr uint16, val uint8) {
	for i := 0; i < 5; i++ {
		m.CPUWrite(addr, (val>>i)&1)
	}
}

func TestMMC1FiveWriteShiftLatches(t *testing.T) {
	rom := makeROM(1, 4, 0, cartridge.MirrorHorizontal)
	m, err := New(rom)
	require.NoError(t, err)

	mmc1Write(m, 0x8000, 0x1A) // control: 4KiB CHR, PRG mode 2 (fix first)
	mmc1Write(m, 0xE000, 0x01) // PRG bank 1

	assert.Equal(t, rom.PRG[0], m.CPURead(0x8000))
	assert.Equal(t, rom.PRG[1*16384], m.CPURead(0xC000))
}

func TestMMC3PRGModeSwap(t *testing.T) {
	rom := makeROM(4, 8, 0, cartridge.MirrorHorizontal)
	m, err := New(rom)
	require.NoError(t, err)

	m.CPUWrite(0x8000, 6) // select R6
	m.CPUWrite(0x8001, 2) // R6 = bank 2
	assert.Equal(t, rom.PRG[2*8192], m.CPURead(0x8000))

	m.CPUWrite(0x8000, 6|0x40) // swap PRG mode, still targeting R6
	assert.Equal(t, rom.PRG[2*8192], m.CPURead(0xC000))
}

func TestMMC3IRQFiresAfterDebouncedA12Rises(t *testing.T) {
	rom := makeROM(4, 8, 2, cartridge.MirrorHorizontal)
	m, err := New(rom)
	require.NoError(t, err)
	mm := m.(*mmc3)

	mm.irqLatch = 2
	mm.irqCounter = 0
	mm.irqReload = true
	mm.irqEnable = true

	for i := 0; i < mmc3A12Debounce+1; i++ {
		m.TickPPUAddress(0x0000) // A12 low
	}
	m.TickPPUAddress(0x1000) // A12 rises -> reload to latch (2)
	assert.False(t, m.IRQPending())

	for i := 0; i < mmc3A12Debounce+1; i++ {
		m.TickPPUAddress(0x0000)
	}
	m.TickPPUAddress(0x1000) // counter: 2 -> 1
	assert.False(t, m.IRQPending())

	for i := 0; i < mmc3A12Debounce+1; i++ {
		m.TickPPUAddress(0x0000)
	}
	m.TickPPUAddress(0x1000) // counter: 1 -> 0, IRQ fires
	assert.True(t, m.IRQPending())

	m.AcknowledgeIRQ()
	assert.False(t, m.IRQPending())
}

func TestMMC2LatchesCHRBankOnTileFetch(t *testing.T) {
	rom := makeROM(9, 8, 4, cartridge.MirrorVertical)
	m, err := New(rom)
	require.NoError(t, err)

	m.CPUWrite(0xB000, 1) // CHR0/FD bank = 1
	m.CPUWrite(0xC000, 2) // CHR0/FE bank = 2 (power-on default latch)

	assert.Equal(t, rom.CHR[2*4096], m.PPURead(0))

	m.PPURead(0x0FD8) // triggers the FD latch
	assert.Equal(t, rom.CHR[1*4096], m.PPURead(0))
}

func TestSaveStateRoundTrip(t *testing.T) {
	rom := makeROM(4, 8, 2, cartridge.MirrorHorizontal)
	m, err := New(rom)
	require.NoError(t, err)

	m.CPUWrite(0x8000, 2)
	m.CPUWrite(0x8001, 5)
	m.WritePRGRAM(0x0000, 0x42)

	snap := m.SaveState()

	m2, err := New(rom)
	require.NoError(t, err)
	require.NoError(t, m2.LoadState(snap))

	assert.Equal(t, m.CPURead(0x8000), m2.CPURead(0x8000))
	assert.Equal(t, m.ReadPRGRAM(0x0000), m2.ReadPRGRAM(0x0000))
}
