package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) Read(addr uint16) uint8      { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8)  { b.mem[addr] = v }

func newTestCPU(program []uint8, resetVector uint16) (*CPU, *flatBus) {
	bus := &flatBus{}
	copy(bus.mem[resetVector:], program)
	bus.mem[vectorReset] = uint8(resetVector)
	bus.mem[vectorReset+1] = uint8(resetVector >> 8)
	c := New(bus)
	c.PowerOn()
	return c, bus
}

func TestLDAImmediateSetsZeroAndNegativeFlags(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xA9, 0x00}, 0xC000)
	c.Step()
	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.flag(FlagZero))

	c, _ = newTestCPU([]uint8{0xA9, 0x80}, 0xC000)
	c.Step()
	assert.True(t, c.flag(FlagNegative))
}

func TestADCHandlesCarryAndOverflow(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xA9, 0x7F, 0x69, 0x01}, 0xC000) // LDA #$7F; ADC #$01
	c.Step()
	c.Step()
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.flag(FlagOverflow))
	assert.True(t, c.flag(FlagNegative))
	assert.False(t, c.flag(FlagCarry))
}

func TestBranchPageCrossAddsExtraCycle(t *testing.T) {
	// BNE with a forward offset that pushes PC across a page boundary.
	c, _ := newTestCPU([]uint8{0xD0, 0x7F}, 0xC0F0)
	c.P |= FlagZero // ensure BNE's condition forces no branch first...
	cycles := c.Step()
	assert.Equal(t, 2, cycles) // not taken

	c, _ = newTestCPU([]uint8{0xD0, 0x7F}, 0xC0F0)
	c.P &^= FlagZero
	cycles = c.Step()
	assert.Equal(t, 4, cycles) // taken + page cross
}

func TestAbsoluteIndexedReadPageCrossAddsCycle(t *testing.T) {
	prog := []uint8{0xBD, 0xFF, 0xC0} // LDA $C0FF,X
	c, bus := newTestCPU(prog, 0xC000)
	c.X = 1
	bus.mem[0xC100] = 0x55
	cycles := c.Step()
	assert.Equal(t, 5, cycles)
	assert.Equal(t, uint8(0x55), c.A)
}

func TestStackPushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68}, 0xC000) // LDA #$42; PHA; LDA #$00; PLA
	for i := 0; i < 4; i++ {
		c.Step()
	}
	assert.Equal(t, uint8(0x42), c.A)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	prog := make([]uint8, 0x200)
	prog[0] = 0x20 // JSR $C010
	prog[1] = 0x10
	prog[2] = 0xC0
	prog[3] = 0xEA // NOP (landing spot after RTS)
	prog[0x10] = 0x60 // RTS
	c, _ := newTestCPU(prog, 0xC000)
	c.Step() // JSR
	assert.Equal(t, uint16(0xC010), c.PC)
	c.Step() // RTS
	assert.Equal(t, uint16(0xC003), c.PC)
}

func TestNMITakesPriorityAndVectorsCorrectly(t *testing.T) {
	c, bus := newTestCPU([]uint8{0xEA, 0xEA}, 0xC000) // two NOPs
	bus.mem[vectorNMI] = 0x00
	bus.mem[vectorNMI+1] = 0xD0
	c.SetNMILine(true)
	c.Step() // executes NOP, polls interrupt at its end
	require.True(t, c.pendingInt)
	c.Step() // services the latched NMI
	assert.Equal(t, uint16(0xD000), c.PC)
	assert.True(t, c.flag(FlagIRQOff))
}

func TestIRQIgnoredWhenInterruptDisableSet(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xEA}, 0xC000)
	c.P |= FlagIRQOff
	c.SetIRQLine(true)
	c.Step()
	assert.False(t, c.pendingInt)
}

func TestJAMHaltsCPUUntilReset(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x02}, 0xC000)
	c.Step()
	assert.True(t, c.Jammed())
	assert.Equal(t, 0, c.Step())
	c.Reset()
	assert.False(t, c.Jammed())
}

func TestOAMDMAStallConsumesCyclesWithoutExecuting(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xEA}, 0xC000)
	c.AddStallCycles(513)
	total := 0
	for i := 0; i < 513; i++ {
		total += c.Step()
	}
	assert.Equal(t, 513, total)
	assert.Equal(t, uint16(0xC000), c.PC) // opcode fetch hasn't happened yet
}
