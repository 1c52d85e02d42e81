// Package bus implements the NES CPU address-bus decode logic:
// routing $0000-$FFFF to internal RAM, the PPU register file, the APU,
// the controller port, and the cartridge mapper, plus OAM-DMA and
// DMC-DMA stalls. It is adapted from the teacher's console.Bus, whose
// address-decode switch and OAM-DMA copy loop this generalizes to
// route through the new internal/cpu, internal/ppu, internal/apu and
// internal/mapper packages instead of the teacher's flat ppu/mos6502.
package bus

import (
	"errors"

	"nescore/internal/apu"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/mapper"
	"nescore/internal/ppu"
)

var errBusStateSize = errors.New("bus: save state has wrong length")

const (
	ramSize    = 0x0800
	oamDMAAddr = 0x4014
	ctrl1Addr  = 0x4016
	ctrl2Addr  = 0x4017
)

// Bus wires the CPU's 16-bit address space together. The scheduler
// (the root nescore package's Emulator façade) owns one of these per machine and ticks
// the CPU/PPU/APU against it.
type Bus struct {
	RAM [ramSize]uint8

	PPU    *ppu.PPU
	APU    *apu.APU
	Mapper mapper.Mapper
	CPU    *cpu.CPU

	ctrl1 controller

	openBus uint8
	apuIRQ  bool
}

// New constructs a Bus; the caller must assign CPU after constructing
// the cpu.CPU that wraps it, since the two hold a reference cycle that
// can't be built in one step (spec.md §9).
func New(m mapper.Mapper) *Bus {
	b := &Bus{Mapper: m}
	b.PPU = ppu.New(b)
	b.APU = apu.New(b)
	return b
}

// SetController1 latches this frame's controller byte, held for every
// $4016 read until the next call (spec.md §4.5 step 1).
func (b *Bus) SetController1(state uint8) {
	b.ctrl1.setState(state)
}

// --- cpu.Bus ---

func (b *Bus) Read(addr uint16) uint8 {
	var v uint8
	switch {
	case addr < 0x2000:
		v = b.RAM[addr&0x07FF]
	case addr < 0x4000:
		v = b.PPU.ReadRegister((addr - 0x2000) & 0x0007)
	case addr == 0x4015:
		v = b.APU.ReadStatus()
	case addr == ctrl1Addr:
		v = b.ctrl1.read()
	case addr == ctrl2Addr:
		v = b.openBus // second controller not implemented; pure open bus
	case addr < 0x4018:
		v = b.openBus // write-only APU registers
	case addr < 0x4020:
		v = b.openBus // disabled CPU test registers
	default:
		v = b.Mapper.CPURead(addr)
	}
	b.openBus = v
	return v
}

func (b *Bus) Write(addr uint16, val uint8) {
	b.openBus = val
	switch {
	case addr < 0x2000:
		b.RAM[addr&0x07FF] = val
	case addr < 0x4000:
		b.PPU.WriteRegister((addr-0x2000)&0x0007, val)
	case addr == oamDMAAddr:
		b.doOAMDMA(val)
	case addr == ctrl1Addr:
		b.ctrl1.write(val)
	case addr < 0x4018:
		b.APU.WriteRegister(addr, val)
	case addr < 0x4020:
		// disabled CPU test registers; writes have no effect.
	default:
		b.Mapper.CPUWrite(addr, val)
	}
}

// doOAMDMA performs the 256-byte copy from page val*$100 into OAM. The
// copy itself has no CPU-visible side effects other than its target, so
// unlike the real 513/514-cycle bus-cycle interleave, it's safe to
// perform in one shot; it then charges the CPU the matching 513-cycle
// stall, or 514 when the DMA starts on an odd CPU cycle (spec.md §4.1).
func (b *Bus) doOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		v := b.Read(base + uint16(i))
		b.PPU.WriteRegister(ppu.RegOAMData, v)
	}
	stall := 513
	if b.CPU.Cycles%2 != 0 {
		stall = 514
	}
	b.CPU.AddStallCycles(stall)
}

// --- ppu.Bus ---

func (b *Bus) PPURead(addr uint16) uint8      { return b.Mapper.PPURead(addr) }
func (b *Bus) PPUWrite(addr uint16, val uint8) { b.Mapper.PPUWrite(addr, val) }
func (b *Bus) Mirroring() cartridge.Mirroring { return b.Mapper.Mirroring() }
func (b *Bus) TickPPUAddress(addr uint16) {
	b.Mapper.TickPPUAddress(addr)
	b.updateIRQLine()
}

// --- apu.Bus ---

// ReadPRG services DMC sample fetches, which address PRG space through
// the mapper exactly as a normal CPU read would, but without touching
// RAM/PPU/APU registers (DMC sample addresses stay in $8000-$FFFF).
func (b *Bus) ReadPRG(addr uint16) uint8 { return b.Mapper.CPURead(addr) }
func (b *Bus) StallCPU(cycles int)       { b.CPU.AddStallCycles(cycles) }
func (b *Bus) SetIRQ(asserted bool) {
	b.apuIRQ = asserted
	b.updateIRQLine()
}

func (b *Bus) updateIRQLine() {
	b.CPU.SetIRQLine(b.apuIRQ || b.Mapper.IRQPending())
}

// --- host-facing "silent" memory access (spec.md §4.2, §6.4) ---

// ErrInvalidAddress is returned by Peek/Poke for addresses outside the
// two windows the host API exposes directly.
type ErrInvalidAddress struct{ Addr uint16 }

func (e ErrInvalidAddress) Error() string {
	return "bus: address outside the permitted peek/poke windows"
}

// Peek reads addr through the host-facing silent window, bypassing CPU
// bus side effects entirely.
func (b *Bus) Peek(addr uint16) (uint8, error) {
	switch {
	case addr <= 0x1FFF:
		return b.RAM[addr&0x07FF], nil
	case addr >= 0x6000 && addr <= 0x7FFF:
		return b.Mapper.ReadPRGRAM(addr), nil
	default:
		return 0, ErrInvalidAddress{addr}
	}
}

// Poke writes addr through the host-facing silent window.
func (b *Bus) Poke(addr uint16, val uint8) error {
	switch {
	case addr <= 0x1FFF:
		b.RAM[addr&0x07FF] = val
		return nil
	case addr >= 0x6000 && addr <= 0x7FFF:
		b.Mapper.WritePRGRAM(addr, val)
		return nil
	default:
		return ErrInvalidAddress{addr}
	}
}

// StateSize is the fixed encoded length SaveState always produces:
// 2 KiB RAM, the open-bus and pending-APU-IRQ latches, and the
// controller's state/strobe/shift bytes.
const StateSize = ramSize + 5

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// SaveState serializes internal RAM, the open-bus latch and controller
// shift-register state; the CPU/PPU/APU/mapper have their own blocks
// (spec.md §4.6).
func (b *Bus) SaveState() []byte {
	out := make([]byte, 0, StateSize)
	out = append(out, b.RAM[:]...)
	out = append(out, b.openBus, boolByte(b.apuIRQ))
	out = append(out, b.ctrl1.state, boolByte(b.ctrl1.strobe))
	out = append(out, b.ctrl1.shift)
	return out
}

// LoadState restores a snapshot produced by SaveState.
func (b *Bus) LoadState(data []byte) error {
	if len(data) != StateSize {
		return errBusStateSize
	}
	n := copy(b.RAM[:], data)
	b.openBus = data[n]
	b.apuIRQ = data[n+1] != 0
	b.ctrl1.state = data[n+2]
	b.ctrl1.strobe = data[n+3] != 0
	b.ctrl1.shift = data[n+4]
	return nil
}
