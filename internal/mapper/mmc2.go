package mapper

import "nescore/internal/cartridge"

func init() {
	register(9, newMMC2)
}

// mmc2 implements mapper 9 (MMC2/PxROM, as used by Punch-Out!!): an 8 KiB
// switchable PRG bank at $8000 with the top three 8 KiB banks fixed, and
// two 4 KiB CHR windows that each latch between two registers depending
// on whether the most recently fetched tile id was $FD or $FE. Real
// hardware triggers the latch by observing PPU address reads in the
// ranges $xFD8-$xFDF / $xFE8-$xFEF; we reproduce that exactly in
// PPURead since every tile byte fetch passes through it.
type mmc2 struct {
	prg []byte
	chr []byte
	ram prgRAM

	prgBank uint8
	chr0FD  uint8
	chr0FE  uint8
	chr1FD  uint8
	chr1FE  uint8
	mirror  cartridge.Mirroring

	latch0, latch1 uint8 // 0xFD or 0xFE
}

func newMMC2(rom *cartridge.ROM) (Mapper, error) {
	return &mmc2{prg: rom.PRG, chr: rom.CHR, latch0: 0xFE, latch1: 0xFE, mirror: rom.Mirroring}, nil
}

func (m *mmc2) ID() uint16 { return 9 }

func (m *mmc2) prgBanks8K() int {
	n := len(m.prg) / 8192
	if n == 0 {
		n = 1
	}
	return n
}

func (m *mmc2) CPURead(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	banks := m.prgBanks8K()
	slot := int(addr-0x8000) / 0x2000
	off := int(addr-0x8000) % 0x2000

	var bank int
	switch slot {
	case 0:
		bank = int(m.prgBank)
	case 1:
		bank = banks - 3
	case 2:
		bank = banks - 2
	default:
		bank = banks - 1
	}
	if bank < 0 {
		bank = 0
	}
	return m.prg[(bank%banks)*8192+off]
}

func (m *mmc2) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0xA000 && addr < 0xB000:
		m.prgBank = val & 0x0F
	case addr >= 0xB000 && addr < 0xC000:
		m.chr0FD = val & 0x1F
	case addr >= 0xC000 && addr < 0xD000:
		m.chr0FE = val & 0x1F
	case addr >= 0xD000 && addr < 0xE000:
		m.chr1FD = val & 0x1F
	case addr >= 0xE000 && addr < 0xF000:
		m.chr1FE = val & 0x1F
	case addr >= 0xF000:
		if val&0x01 != 0 {
			m.mirror = cartridge.MirrorHorizontal
		} else {
			m.mirror = cartridge.MirrorVertical
		}
	}
}

func (m *mmc2) PPURead(addr uint16) uint8 {
	val := m.chr[m.chrOffset(addr)]
	m.maybeLatch(addr)
	return val
}

func (m *mmc2) PPUWrite(addr uint16, val uint8) {
	m.chr[m.chrOffset(addr)] = val
}

// maybeLatch updates the tile latch when the PPU fetches a byte from
// one of the trigger ranges, which always follows the corresponding
// tile-id fetch in the rendering pipeline.
func (m *mmc2) maybeLatch(addr uint16) {
	switch {
	case addr >= 0x0FD8 && addr <= 0x0FDF:
		m.latch0 = 0xFD
	case addr >= 0x0FE8 && addr <= 0x0FEF:
		m.latch0 = 0xFE
	case addr >= 0x1FD8 && addr <= 0x1FDF:
		m.latch1 = 0xFD
	case addr >= 0x1FE8 && addr <= 0x1FEF:
		m.latch1 = 0xFE
	}
}

func (m *mmc2) chrOffset(addr uint16) int {
	var bank uint8
	var off int
	if addr < 0x1000 {
		off = int(addr)
		if m.latch0 == 0xFD {
			bank = m.chr0FD
		} else {
			bank = m.chr0FE
		}
	} else {
		off = int(addr - 0x1000)
		if m.latch1 == 0xFD {
			bank = m.chr1FD
		} else {
			bank = m.chr1FE
		}
	}
	banks := len(m.chr) / 4096
	if banks == 0 {
		banks = 1
	}
	return (int(bank)%banks)*4096 + off
}

func (m *mmc2) Mirroring() cartridge.Mirroring { return m.mirror }
func (m *mmc2) TickPPUAddress(addr uint16)     {}
func (m *mmc2) IRQPending() bool               { return false }
func (m *mmc2) AcknowledgeIRQ()                {}

func (m *mmc2) ReadPRGRAM(addr uint16) uint8      { return m.ram.read(addr) }
func (m *mmc2) WritePRGRAM(addr uint16, val uint8) { m.ram.write(addr, val) }

func (m *mmc2) Reset() {
	m.latch0, m.latch1 = 0xFE, 0xFE
}

func (m *mmc2) SaveState() []byte {
	fixed := 8
	out := make([]byte, fixed+len(m.chr)+len(m.ram.data))
	out[0] = m.prgBank
	out[1] = m.chr0FD
	out[2] = m.chr0FE
	out[3] = m.chr1FD
	out[4] = m.chr1FE
	out[5] = uint8(m.mirror)
	out[6] = m.latch0
	out[7] = m.latch1
	n := fixed + copy(out[fixed:], m.chr)
	copy(out[n:], m.ram.data[:])
	return out
}

func (m *mmc2) LoadState(data []byte) error {
	fixed := 8
	if len(data) != fixed+len(m.chr)+len(m.ram.data) {
		return errMapperStateSize
	}
	m.prgBank = data[0]
	m.chr0FD = data[1]
	m.chr0FE = data[2]
	m.chr1FD = data[3]
	m.chr1FE = data[4]
	m.mirror = cartridge.Mirroring(data[5])
	m.latch0 = data[6]
	m.latch1 = data[7]
	n := fixed + copy(m.chr, data[fixed:])
	copy(m.ram.data[:], data[n:])
	return nil
}
