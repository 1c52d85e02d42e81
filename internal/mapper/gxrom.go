package mapper

import "nescore/internal/cartridge"

func init() {
	register(66, newGxROM)
}

// gxrom implements mapper 66 (GxROM): a single $8000-$FFFF write selects
// both a 32 KiB PRG bank (bits 4-5) and an 8 KiB CHR bank (bits 0-1).
type gxrom struct {
	prg     []byte
	chr     []byte
	ram     prgRAM
	mirr    cartridge.Mirroring
	prgBank uint8
	chrBank uint8
}

func newGxROM(rom *cartridge.ROM) (Mapper, error) {
	return &gxrom{prg: rom.PRG, chr: rom.CHR, mirr: rom.Mirroring}, nil
}

func (m *gxrom) ID() uint16 { return 66 }

func (m *gxrom) CPURead(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	return m.prg[int(m.prgBank)*32768+int(addr-0x8000)]
}

func (m *gxrom) CPUWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		return
	}
	m.prgBank = (val >> 4) & 0x03
	m.chrBank = val & 0x03
}

func (m *gxrom) PPURead(addr uint16) uint8 {
	return m.chr[int(m.chrBank)*8192+int(addr)]
}

func (m *gxrom) PPUWrite(addr uint16, val uint8) {
	m.chr[int(m.chrBank)*8192+int(addr)] = val
}

func (m *gxrom) Mirroring() cartridge.Mirroring { return m.mirr }
func (m *gxrom) TickPPUAddress(addr uint16)     {}
func (m *gxrom) IRQPending() bool               { return false }
func (m *gxrom) AcknowledgeIRQ()                {}

func (m *gxrom) ReadPRGRAM(addr uint16) uint8      { return m.ram.read(addr) }
func (m *gxrom) WritePRGRAM(addr uint16, val uint8) { m.ram.write(addr, val) }

func (m *gxrom) Reset() { m.prgBank, m.chrBank = 0, 0 }

func (m *gxrom) SaveState() []byte {
	out := make([]byte, 2+len(m.chr)+len(m.ram.data))
	out[0], out[1] = m.prgBank, m.chrBank
	n := 2 + copy(out[2:], m.chr)
	copy(out[n:], m.ram.data[:])
	return out
}

func (m *gxrom) LoadState(data []byte) error {
	if len(data) != 2+len(m.chr)+len(m.ram.data) {
		return errMapperStateSize
	}
	m.prgBank, m.chrBank = data[0], data[1]
	n := 2 + copy(m.chr, data[2:])
	copy(m.ram.data[:], data[n:])
	return nil
}
