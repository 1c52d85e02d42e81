package mapper

import "nescore/internal/cartridge"

func init() {
	register(1, newMMC1)
}

// mmc1 implements mapper 1: the SxROM/MMC1 serial-shift-register board.
// Every $8000-$FFFF write contributes one bit (LSB first) to a 5-bit
// shift register; the 5th write latches the value into one of four
// registers selected by the address (control, CHR bank 0, CHR bank 1,
// PRG bank). Writing with bit 7 set resets the shifter and forces the
// control register's PRG mode bits to 3 (fixed-last-bank), matching
// real hardware.
type mmc1 struct {
	prg []byte
	chr []byte
	ram prgRAM

	shift    uint8
	shiftCnt uint8

	control uint8 // CPPMM: chr mode(1) prg mode(2) mirroring(2)
	chrBank [2]uint8
	prgBank uint8

	chrRAM bool
}

func newMMC1(rom *cartridge.ROM) (Mapper, error) {
	m := &mmc1{prg: rom.PRG, chr: rom.CHR, chrRAM: rom.HasCHRRAM}
	m.control = 0x0C // power-on: PRG mode 3 (fix last bank at $C000)
	return m, nil
}

func (m *mmc1) ID() uint16 { return 1 }

func (m *mmc1) prgBanks16K() int {
	n := len(m.prg) / 16384
	if n == 0 {
		n = 1
	}
	return n
}

func (m *mmc1) CPURead(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	mode := (m.control >> 2) & 0x03
	bank32 := int(m.prgBank &^ 1)
	last := m.prgBanks16K() - 1

	switch mode {
	case 0, 1: // 32 KiB switching, ignoring the low bank bit
		off := int(addr - 0x8000)
		return m.prg[bank32*16384+off]
	case 2: // fix first bank at $8000, switch $C000
		if addr < 0xC000 {
			return m.prg[int(addr-0x8000)]
		}
		return m.prg[int(m.prgBank)*16384+int(addr-0xC000)]
	default: // 3: switch $8000, fix last bank at $C000
		if addr < 0xC000 {
			return m.prg[int(m.prgBank)*16384+int(addr-0x8000)]
		}
		return m.prg[last*16384+int(addr-0xC000)]
	}
}

func (m *mmc1) CPUWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		return
	}

	if val&0x80 != 0 {
		m.shift, m.shiftCnt = 0, 0
		m.control |= 0x0C
		return
	}

	m.shift |= (val & 1) << m.shiftCnt
	m.shiftCnt++
	if m.shiftCnt < 5 {
		return
	}

	data := m.shift
	m.shift, m.shiftCnt = 0, 0

	switch {
	case addr < 0xA000:
		m.control = data & 0x1F
	case addr < 0xC000:
		m.chrBank[0] = data & 0x1F
	case addr < 0xE000:
		m.chrBank[1] = data & 0x1F
	default:
		m.prgBank = data & 0x0F
	}
}

func (m *mmc1) chr4KBanks() int {
	n := len(m.chr) / 4096
	if n == 0 {
		n = 1
	}
	return n
}

func (m *mmc1) PPURead(addr uint16) uint8 {
	return m.chr[m.chrOffset(addr)]
}

func (m *mmc1) PPUWrite(addr uint16, val uint8) {
	if m.chrRAM {
		m.chr[m.chrOffset(addr)] = val
	}
}

func (m *mmc1) chrOffset(addr uint16) int {
	if m.control&0x10 == 0 {
		// 8 KiB mode: ignore the low bit of chrBank[0]
		bank := int(m.chrBank[0] &^ 1)
		return (bank*4096 + int(addr)) % len(m.chr)
	}
	// 4 KiB mode: independent halves
	if addr < 0x1000 {
		return (int(m.chrBank[0])*4096 + int(addr)) % len(m.chr)
	}
	return (int(m.chrBank[1])*4096 + int(addr-0x1000)) % len(m.chr)
}

func (m *mmc1) Mirroring() cartridge.Mirroring {
	switch m.control & 0x03 {
	case 0:
		return cartridge.MirrorSingleLo
	case 1:
		return cartridge.MirrorSingleHi
	case 2:
		return cartridge.MirrorVertical
	default:
		return cartridge.MirrorHorizontal
	}
}

func (m *mmc1) TickPPUAddress(addr uint16) {}
func (m *mmc1) IRQPending() bool           { return false }
func (m *mmc1) AcknowledgeIRQ()            {}

func (m *mmc1) ReadPRGRAM(addr uint16) uint8      { return m.ram.read(addr) }
func (m *mmc1) WritePRGRAM(addr uint16, val uint8) { m.ram.write(addr, val) }

func (m *mmc1) Reset() {
	m.shift, m.shiftCnt = 0, 0
	m.control |= 0x0C
}

func (m *mmc1) SaveState() []byte {
	out := make([]byte, 6+len(m.chr)+len(m.ram.data))
	out[0], out[1] = m.shift, m.shiftCnt
	out[2] = m.control
	out[3], out[4] = m.chrBank[0], m.chrBank[1]
	out[5] = m.prgBank
	n := 6 + copy(out[6:], m.chr)
	copy(out[n:], m.ram.data[:])
	return out
}

func (m *mmc1) LoadState(data []byte) error {
	if len(data) != 6+len(m.chr)+len(m.ram.data) {
		return errMapperStateSize
	}
	m.shift, m.shiftCnt = data[0], data[1]
	m.control = data[2]
	m.chrBank[0], m.chrBank[1] = data[3], data[4]
	m.prgBank = data[5]
	n := 6 + copy(m.chr, data[6:])
	copy(m.ram.data[:], data[n:])
	return nil
}
