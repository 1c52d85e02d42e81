package mapper

import "nescore/internal/cartridge"

func init() {
	register(2, newUxROM)
}

// uxrom implements mapper 2 (UxROM): an 8-bit PRG bank select at
// $8000-$FFFF selects the 16 KiB bank mapped at $8000-$BFFF; the last
// 16 KiB bank is permanently fixed at $C000-$FFFF. CHR is always 8 KiB
// of RAM (UxROM boards have no CHR-ROM).
type uxrom struct {
	prg     []byte
	chr     []byte
	ram     prgRAM
	mirr    cartridge.Mirroring
	bank    uint8
	lastBnk uint8
}

func newUxROM(rom *cartridge.ROM) (Mapper, error) {
	banks := uint8(rom.PRGBanks16K())
	return &uxrom{prg: rom.PRG, chr: rom.CHR, mirr: rom.Mirroring, lastBnk: banks - 1}, nil
}

func (m *uxrom) ID() uint16 { return 2 }

func (m *uxrom) CPURead(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return 0
	case addr < 0xC000:
		return m.prg[int(m.bank)*16384+int(addr-0x8000)]
	default:
		return m.prg[int(m.lastBnk)*16384+int(addr-0xC000)]
	}
}

func (m *uxrom) CPUWrite(addr uint16, val uint8) {
	if addr >= 0x8000 {
		m.bank = val & (uint8(len(m.prg)/16384) - 1)
	}
}

func (m *uxrom) PPURead(addr uint16) uint8       { return m.chr[int(addr)%len(m.chr)] }
func (m *uxrom) PPUWrite(addr uint16, val uint8) { m.chr[int(addr)%len(m.chr)] = val }
func (m *uxrom) Mirroring() cartridge.Mirroring  { return m.mirr }
func (m *uxrom) TickPPUAddress(addr uint16)      {}
func (m *uxrom) IRQPending() bool                { return false }
func (m *uxrom) AcknowledgeIRQ()                 {}

func (m *uxrom) ReadPRGRAM(addr uint16) uint8      { return m.ram.read(addr) }
func (m *uxrom) WritePRGRAM(addr uint16, val uint8) { m.ram.write(addr, val) }

func (m *uxrom) Reset() { m.bank = 0 }

func (m *uxrom) SaveState() []byte {
	out := make([]byte, 1+len(m.chr)+len(m.ram.data))
	out[0] = m.bank
	n := 1 + copy(out[1:], m.chr)
	copy(out[n:], m.ram.data[:])
	return out
}

func (m *uxrom) LoadState(data []byte) error {
	if len(data) != 1+len(m.chr)+len(m.ram.data) {
		return errMapperStateSize
	}
	m.bank = data[0]
	n := 1 + copy(m.chr, data[1:])
	copy(m.ram.data[:], data[n:])
	return nil
}
