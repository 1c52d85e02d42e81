package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/mapper"
)

// stubMapper is a minimal mapper.Mapper for exercising bus decode logic
// in isolation, without pulling in a real board implementation.
type stubMapper struct {
	prg, chr [0x10000]uint8
	mirror   cartridge.Mirroring
	irq      bool
}

func (m *stubMapper) ID() uint16                        { return 0 }
func (m *stubMapper) CPURead(addr uint16) uint8          { return m.prg[addr] }
func (m *stubMapper) CPUWrite(addr uint16, val uint8)    { m.prg[addr] = val }
func (m *stubMapper) PPURead(addr uint16) uint8          { return m.chr[addr] }
func (m *stubMapper) PPUWrite(addr uint16, val uint8)    { m.chr[addr] = val }
func (m *stubMapper) Mirroring() cartridge.Mirroring     { return m.mirror }
func (m *stubMapper) TickPPUAddress(addr uint16)         {}
func (m *stubMapper) IRQPending() bool                   { return m.irq }
func (m *stubMapper) AcknowledgeIRQ()                    { m.irq = false }
func (m *stubMapper) ReadPRGRAM(addr uint16) uint8       { return m.prg[addr] }
func (m *stubMapper) WritePRGRAM(addr uint16, val uint8) { m.prg[addr] = val }
func (m *stubMapper) Reset()                             {}
func (m *stubMapper) SaveState() []byte                  { return nil }
func (m *stubMapper) LoadState(data []byte) error        { return nil }

var _ mapper.Mapper = (*stubMapper)(nil)

func newTestBus() *Bus {
	b := New(&stubMapper{})
	b.CPU = cpu.New(b)
	b.CPU.PowerOn()
	return b
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus()
	b.Write(0x0000, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x0800))
	assert.Equal(t, uint8(0x42), b.Read(0x1000))
	assert.Equal(t, uint8(0x42), b.Read(0x1800))
}

func TestPPURegisterMirroring(t *testing.T) {
	b := newTestBus()
	b.Write(0x200B, 6)    // $200B mirrors $2003 (OAMADDR): oamAddr = 6
	b.Write(0x200C, 0xCD) // $200C mirrors $2004 (OAMDATA): OAM[6] = $CD
	assert.Equal(t, uint8(0xCD), b.PPU.OAM[6])
}

func TestOAMDMACopiesPageAndStallsCPU(t *testing.T) {
	b := newTestBus()
	for i := 0; i < 256; i++ {
		b.RAM[0x0300+i] = uint8(i)
	}
	b.CPU.AddStallCycles(0) // no-op, keeps parity explicit
	before := b.CPU.Cycles

	b.Write(0x4014, 0x03)

	assert.Equal(t, uint8(0x00), b.PPU.OAM[0])
	assert.Equal(t, uint8(0xFF), b.PPU.OAM[255])
	assert.Equal(t, before, b.CPU.Cycles) // stall is charged as cycles, not applied instantly
}

func TestControllerShiftRegisterOrder(t *testing.T) {
	b := newTestBus()
	b.SetController1(ButtonA | ButtonRight)
	b.Write(0x4016, 1) // strobe high
	b.Write(0x4016, 0) // strobe low: latches state

	assert.Equal(t, uint8(1), b.Read(ctrl1Addr)&0x01) // A
	for i := 0; i < 5; i++ {
		b.Read(ctrl1Addr) // B, Select, Start, Up, Down
	}
	assert.Equal(t, uint8(0), b.Read(ctrl1Addr)&0x01) // Left
	assert.Equal(t, uint8(1), b.Read(ctrl1Addr)&0x01) // Right
}

func TestPeekPokeRejectsOutOfRangeAddress(t *testing.T) {
	b := newTestBus()
	_, err := b.Peek(0x3000)
	assert.Error(t, err)
	assert.NoError(t, b.Poke(0x6000, 0x7))
}

func TestSaveStateRoundTrip(t *testing.T) {
	b := newTestBus()
	b.RAM[10] = 0x55
	b.SetController1(ButtonStart)

	snap := b.SaveState()

	b2 := New(&stubMapper{})
	b2.CPU = cpu.New(b2)
	require.NoError(t, b2.LoadState(snap))
	assert.Equal(t, uint8(0x55), b2.RAM[10])
}

func TestLoadStateRejectsWrongSize(t *testing.T) {
	b := newTestBus()
	assert.Error(t, b.LoadState([]byte{1, 2, 3}))
}
