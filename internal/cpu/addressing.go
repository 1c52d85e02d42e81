package cpu

// addrMode identifies one of the 6502's addressing modes.
type addrMode uint8

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

// resolveOperand computes the effective address for mode using the
// bytes at and after c.PC, without advancing PC itself — Step advances
// PC by the opcode's declared size once the instruction has run, unless
// the instruction (a jump or branch) already redirected it. extra is 1
// when a variable-cycle indexed/indirect mode crosses a page boundary;
// callers for store and read-modify-write opcodes, which always pay that
// cycle, ignore it.
func (c *CPU) resolveOperand(mode addrMode) (addr uint16, extra int) {
	switch mode {
	case modeImplied, modeAccumulator:
		return 0, 0
	case modeImmediate:
		return c.PC, 0
	case modeZeroPage:
		return uint16(c.read(c.PC)), 0
	case modeZeroPageX:
		return uint16(c.read(c.PC) + c.X), 0
	case modeZeroPageY:
		return uint16(c.read(c.PC) + c.Y), 0
	case modeAbsolute:
		return c.read16(c.PC), 0
	case modeAbsoluteX:
		base := c.read16(c.PC)
		addr = base + uint16(c.X)
		if !samePage(base, addr) {
			extra = 1
		}
		return addr, extra
	case modeAbsoluteY:
		base := c.read16(c.PC)
		addr = base + uint16(c.Y)
		if !samePage(base, addr) {
			extra = 1
		}
		return addr, extra
	case modeIndirect:
		return c.read16bug(c.read16(c.PC)), 0
	case modeIndirectX:
		zp := c.read(c.PC) + c.X
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		return hi<<8 | lo, 0
	case modeIndirectY:
		zp := c.read(c.PC)
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		if !samePage(base, addr) {
			extra = 1
		}
		return addr, extra
	case modeRelative:
		off := int8(c.read(c.PC))
		base := c.PC + 1
		addr = uint16(int32(base) + int32(off))
		if !samePage(base, addr) {
			extra = 1
		}
		return addr, extra
	}
	return 0, 0
}
