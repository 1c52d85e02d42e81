package mapper

import "nescore/internal/cartridge"

func init() {
	register(7, newAxROM)
}

// axrom implements mapper 7 (AxROM): a single 32 KiB PRG bank selected by
// the low 3 bits of any $8000-$FFFF write; bit 4 of the same write picks
// which physical nametable both logical nametables mirror (single-screen
// mirroring — AxROM boards have no horizontal/vertical wiring at all).
type axrom struct {
	prg     []byte
	chr     []byte // always CHR-RAM on AxROM boards
	ram     prgRAM
	prgBank uint8
	single  cartridge.Mirroring // MirrorSingleLo or MirrorSingleHi
}

func newAxROM(rom *cartridge.ROM) (Mapper, error) {
	return &axrom{prg: rom.PRG, chr: rom.CHR, single: cartridge.MirrorSingleLo}, nil
}

func (m *axrom) ID() uint16 { return 7 }

func (m *axrom) CPURead(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	return m.prg[int(m.prgBank)*32768+int(addr-0x8000)]
}

func (m *axrom) CPUWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		return
	}
	banks := uint8(len(m.prg) / 32768)
	if banks == 0 {
		banks = 1
	}
	m.prgBank = val & (banks - 1)
	if val&0x10 != 0 {
		m.single = cartridge.MirrorSingleHi
	} else {
		m.single = cartridge.MirrorSingleLo
	}
}

func (m *axrom) PPURead(addr uint16) uint8       { return m.chr[int(addr)%len(m.chr)] }
func (m *axrom) PPUWrite(addr uint16, val uint8) { m.chr[int(addr)%len(m.chr)] = val }
func (m *axrom) Mirroring() cartridge.Mirroring  { return m.single }
func (m *axrom) TickPPUAddress(addr uint16)      {}
func (m *axrom) IRQPending() bool                { return false }
func (m *axrom) AcknowledgeIRQ()                 {}

func (m *axrom) ReadPRGRAM(addr uint16) uint8      { return m.ram.read(addr) }
func (m *axrom) WritePRGRAM(addr uint16, val uint8) { m.ram.write(addr, val) }

func (m *axrom) Reset() { m.prgBank = 0; m.single = cartridge.MirrorSingleLo }

func (m *axrom) SaveState() []byte {
	out := make([]byte, 2+len(m.chr)+len(m.ram.data))
	out[0] = m.prgBank
	out[1] = uint8(m.single)
	n := 2 + copy(out[2:], m.chr)
	copy(out[n:], m.ram.data[:])
	return out
}

func (m *axrom) LoadState(data []byte) error {
	if len(data) != 2+len(m.chr)+len(m.ram.data) {
		return errMapperStateSize
	}
	m.prgBank = data[0]
	m.single = cartridge.Mirroring(data[1])
	n := 2 + copy(m.chr, data[2:])
	copy(m.ram.data[:], data[n:])
	return nil
}
