package cpu

// opcode describes one of the 256 possible opcode bytes: its addressing
// mode, total instruction length in bytes, base cycle count (before any
// page-cross penalty resolveOperand reports), and its implementation.
// jam marks the dozen byte values that lock the bus on real silicon.
type opcode struct {
	name   string
	mode   addrMode
	size   uint8
	cycles uint8
	exec   instrFunc
	jam    bool
}

// opcodeTable is the full NMOS 6502 decode table, official opcodes plus
// the documented illegal opcodes the Ricoh 2A03 inherits from the 6502.
// Layout and cycle counts follow the widely published 6502 opcode matrix
// (nesdev.org/6502_cpu.txt, oxyron's "no more secrets" table).
var opcodeTable = map[uint8]opcode{
	0x00: {"BRK", modeImplied, 1, 7, opBRK, false},
	0x01: {"ORA", modeIndirectX, 2, 6, opORA, false},
	0x02: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x03: {"SLO", modeIndirectX, 2, 8, opSLO, false},
	0x04: {"NOP", modeZeroPage, 2, 3, opNOP, false},
	0x05: {"ORA", modeZeroPage, 2, 3, opORA, false},
	0x06: {"ASL", modeZeroPage, 2, 5, opASL, false},
	0x07: {"SLO", modeZeroPage, 2, 5, opSLO, false},
	0x08: {"PHP", modeImplied, 1, 3, opPHP, false},
	0x09: {"ORA", modeImmediate, 2, 2, opORA, false},
	0x0A: {"ASL", modeAccumulator, 1, 2, opASL, false},
	0x0B: {"ANC", modeImmediate, 2, 2, opANC, false},
	0x0C: {"NOP", modeAbsolute, 3, 4, opNOP, false},
	0x0D: {"ORA", modeAbsolute, 3, 4, opORA, false},
	0x0E: {"ASL", modeAbsolute, 3, 6, opASL, false},
	0x0F: {"SLO", modeAbsolute, 3, 6, opSLO, false},

	0x10: {"BPL", modeRelative, 2, 2, opBPL, false},
	0x11: {"ORA", modeIndirectY, 2, 5, opORA, false},
	0x12: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x13: {"SLO", modeIndirectY, 2, 8, opSLO, false},
	0x14: {"NOP", modeZeroPageX, 2, 4, opNOP, false},
	0x15: {"ORA", modeZeroPageX, 2, 4, opORA, false},
	0x16: {"ASL", modeZeroPageX, 2, 6, opASL, false},
	0x17: {"SLO", modeZeroPageX, 2, 6, opSLO, false},
	0x18: {"CLC", modeImplied, 1, 2, opCLC, false},
	0x19: {"ORA", modeAbsoluteY, 3, 4, opORA, false},
	0x1A: {"NOP", modeImplied, 1, 2, opNOP, false},
	0x1B: {"SLO", modeAbsoluteY, 3, 7, opSLO, false},
	0x1C: {"NOP", modeAbsoluteX, 3, 4, opNOP, false},
	0x1D: {"ORA", modeAbsoluteX, 3, 4, opORA, false},
	0x1E: {"ASL", modeAbsoluteX, 3, 7, opASL, false},
	0x1F: {"SLO", modeAbsoluteX, 3, 7, opSLO, false},

	0x20: {"JSR", modeAbsolute, 3, 6, opJSR, false},
	0x21: {"AND", modeIndirectX, 2, 6, opAND, false},
	0x22: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x23: {"RLA", modeIndirectX, 2, 8, opRLA, false},
	0x24: {"BIT", modeZeroPage, 2, 3, opBIT, false},
	0x25: {"AND", modeZeroPage, 2, 3, opAND, false},
	0x26: {"ROL", modeZeroPage, 2, 5, opROL, false},
	0x27: {"RLA", modeZeroPage, 2, 5, opRLA, false},
	0x28: {"PLP", modeImplied, 1, 4, opPLP, false},
	0x29: {"AND", modeImmediate, 2, 2, opAND, false},
	0x2A: {"ROL", modeAccumulator, 1, 2, opROL, false},
	0x2B: {"ANC", modeImmediate, 2, 2, opANC, false},
	0x2C: {"BIT", modeAbsolute, 3, 4, opBIT, false},
	0x2D: {"AND", modeAbsolute, 3, 4, opAND, false},
	0x2E: {"ROL", modeAbsolute, 3, 6, opROL, false},
	0x2F: {"RLA", modeAbsolute, 3, 6, opRLA, false},

	0x30: {"BMI", modeRelative, 2, 2, opBMI, false},
	0x31: {"AND", modeIndirectY, 2, 5, opAND, false},
	0x32: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x33: {"RLA", modeIndirectY, 2, 8, opRLA, false},
	0x34: {"NOP", modeZeroPageX, 2, 4, opNOP, false},
	0x35: {"AND", modeZeroPageX, 2, 4, opAND, false},
	0x36: {"ROL", modeZeroPageX, 2, 6, opROL, false},
	0x37: {"RLA", modeZeroPageX, 2, 6, opRLA, false},
	0x38: {"SEC", modeImplied, 1, 2, opSEC, false},
	0x39: {"AND", modeAbsoluteY, 3, 4, opAND, false},
	0x3A: {"NOP", modeImplied, 1, 2, opNOP, false},
	0x3B: {"RLA", modeAbsoluteY, 3, 7, opRLA, false},
	0x3C: {"NOP", modeAbsoluteX, 3, 4, opNOP, false},
	0x3D: {"AND", modeAbsoluteX, 3, 4, opAND, false},
	0x3E: {"ROL", modeAbsoluteX, 3, 7, opROL, false},
	0x3F: {"RLA", modeAbsoluteX, 3, 7, opRLA, false},

	0x40: {"RTI", modeImplied, 1, 6, opRTI, false},
	0x41: {"EOR", modeIndirectX, 2, 6, opEOR, false},
	0x42: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x43: {"SRE", modeIndirectX, 2, 8, opSRE, false},
	0x44: {"NOP", modeZeroPage, 2, 3, opNOP, false},
	0x45: {"EOR", modeZeroPage, 2, 3, opEOR, false},
	0x46: {"LSR", modeZeroPage, 2, 5, opLSR, false},
	0x47: {"SRE", modeZeroPage, 2, 5, opSRE, false},
	0x48: {"PHA", modeImplied, 1, 3, opPHA, false},
	0x49: {"EOR", modeImmediate, 2, 2, opEOR, false},
	0x4A: {"LSR", modeAccumulator, 1, 2, opLSR, false},
	0x4B: {"ALR", modeImmediate, 2, 2, opALR, false},
	0x4C: {"JMP", modeAbsolute, 3, 3, opJMP, false},
	0x4D: {"EOR", modeAbsolute, 3, 4, opEOR, false},
	0x4E: {"LSR", modeAbsolute, 3, 6, opLSR, false},
	0x4F: {"SRE", modeAbsolute, 3, 6, opSRE, false},

	0x50: {"BVC", modeRelative, 2, 2, opBVC, false},
	0x51: {"EOR", modeIndirectY, 2, 5, opEOR, false},
	0x52: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x53: {"SRE", modeIndirectY, 2, 8, opSRE, false},
	0x54: {"NOP", modeZeroPageX, 2, 4, opNOP, false},
	0x55: {"EOR", modeZeroPageX, 2, 4, opEOR, false},
	0x56: {"LSR", modeZeroPageX, 2, 6, opLSR, false},
	0x57: {"SRE", modeZeroPageX, 2, 6, opSRE, false},
	0x58: {"CLI", modeImplied, 1, 2, opCLI, false},
	0x59: {"EOR", modeAbsoluteY, 3, 4, opEOR, false},
	0x5A: {"NOP", modeImplied, 1, 2, opNOP, false},
	0x5B: {"SRE", modeAbsoluteY, 3, 7, opSRE, false},
	0x5C: {"NOP", modeAbsoluteX, 3, 4, opNOP, false},
	0x5D: {"EOR", modeAbsoluteX, 3, 4, opEOR, false},
	0x5E: {"LSR", modeAbsoluteX, 3, 7, opLSR, false},
	0x5F: {"SRE", modeAbsoluteX, 3, 7, opSRE, false},

	0x60: {"RTS", modeImplied, 1, 6, opRTS, false},
	0x61: {"ADC", modeIndirectX, 2, 6, opADC, false},
	0x62: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x63: {"RRA", modeIndirectX, 2, 8, opRRA, false},
	0x64: {"NOP", modeZeroPage, 2, 3, opNOP, false},
	0x65: {"ADC", modeZeroPage, 2, 3, opADC, false},
	0x66: {"ROR", modeZeroPage, 2, 5, opROR, false},
	0x67: {"RRA", modeZeroPage, 2, 5, opRRA, false},
	0x68: {"PLA", modeImplied, 1, 4, opPLA, false},
	0x69: {"ADC", modeImmediate, 2, 2, opADC, false},
	0x6A: {"ROR", modeAccumulator, 1, 2, opROR, false},
	0x6B: {"ARR", modeImmediate, 2, 2, opARR, false},
	0x6C: {"JMP", modeIndirect, 3, 5, opJMP, false},
	0x6D: {"ADC", modeAbsolute, 3, 4, opADC, false},
	0x6E: {"ROR", modeAbsolute, 3, 6, opROR, false},
	0x6F: {"RRA", modeAbsolute, 3, 6, opRRA, false},

	0x70: {"BVS", modeRelative, 2, 2, opBVS, false},
	0x71: {"ADC", modeIndirectY, 2, 5, opADC, false},
	0x72: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x73: {"RRA", modeIndirectY, 2, 8, opRRA, false},
	0x74: {"NOP", modeZeroPageX, 2, 4, opNOP, false},
	0x75: {"ADC", modeZeroPageX, 2, 4, opADC, false},
	0x76: {"ROR", modeZeroPageX, 2, 6, opROR, false},
	0x77: {"RRA", modeZeroPageX, 2, 6, opRRA, false},
	0x78: {"SEI", modeImplied, 1, 2, opSEI, false},
	0x79: {"ADC", modeAbsoluteY, 3, 4, opADC, false},
	0x7A: {"NOP", modeImplied, 1, 2, opNOP, false},
	0x7B: {"RRA", modeAbsoluteY, 3, 7, opRRA, false},
	0x7C: {"NOP", modeAbsoluteX, 3, 4, opNOP, false},
	0x7D: {"ADC", modeAbsoluteX, 3, 4, opADC, false},
	0x7E: {"ROR", modeAbsoluteX, 3, 7, opROR, false},
	0x7F: {"RRA", modeAbsoluteX, 3, 7, opRRA, false},

	0x80: {"NOP", modeImmediate, 2, 2, opNOP, false},
	0x81: {"STA", modeIndirectX, 2, 6, opSTA, false},
	0x82: {"NOP", modeImmediate, 2, 2, opNOP, false},
	0x83: {"SAX", modeIndirectX, 2, 6, opSAX, false},
	0x84: {"STY", modeZeroPage, 2, 3, opSTY, false},
	0x85: {"STA", modeZeroPage, 2, 3, opSTA, false},
	0x86: {"STX", modeZeroPage, 2, 3, opSTX, false},
	0x87: {"SAX", modeZeroPage, 2, 3, opSAX, false},
	0x88: {"DEY", modeImplied, 1, 2, opDEY, false},
	0x89: {"NOP", modeImmediate, 2, 2, opNOP, false},
	0x8A: {"TXA", modeImplied, 1, 2, opTXA, false},
	0x8B: {"XAA", modeImmediate, 2, 2, opXAA, false},
	0x8C: {"STY", modeAbsolute, 3, 4, opSTY, false},
	0x8D: {"STA", modeAbsolute, 3, 4, opSTA, false},
	0x8E: {"STX", modeAbsolute, 3, 4, opSTX, false},
	0x8F: {"SAX", modeAbsolute, 3, 4, opSAX, false},

	0x90: {"BCC", modeRelative, 2, 2, opBCC, false},
	0x91: {"STA", modeIndirectY, 2, 6, opSTA, false},
	0x92: {"JAM", modeImplied, 1, 2, opJAM, true},
	0x93: {"AHX", modeIndirectY, 2, 6, opAHX, false},
	0x94: {"STY", modeZeroPageX, 2, 4, opSTY, false},
	0x95: {"STA", modeZeroPageX, 2, 4, opSTA, false},
	0x96: {"STX", modeZeroPageY, 2, 4, opSTX, false},
	0x97: {"SAX", modeZeroPageY, 2, 4, opSAX, false},
	0x98: {"TYA", modeImplied, 1, 2, opTYA, false},
	0x99: {"STA", modeAbsoluteY, 3, 5, opSTA, false},
	0x9A: {"TXS", modeImplied, 1, 2, opTXS, false},
	0x9B: {"TAS", modeAbsoluteY, 3, 5, opTAS, false},
	0x9C: {"SHY", modeAbsoluteX, 3, 5, opSHY, false},
	0x9D: {"STA", modeAbsoluteX, 3, 5, opSTA, false},
	0x9E: {"SHX", modeAbsoluteY, 3, 5, opSHX, false},
	0x9F: {"AHX", modeAbsoluteY, 3, 5, opAHX, false},

	0xA0: {"LDY", modeImmediate, 2, 2, opLDY, false},
	0xA1: {"LDA", modeIndirectX, 2, 6, opLDA, false},
	0xA2: {"LDX", modeImmediate, 2, 2, opLDX, false},
	0xA3: {"LAX", modeIndirectX, 2, 6, opLAX, false},
	0xA4: {"LDY", modeZeroPage, 2, 3, opLDY, false},
	0xA5: {"LDA", modeZeroPage, 2, 3, opLDA, false},
	0xA6: {"LDX", modeZeroPage, 2, 3, opLDX, false},
	0xA7: {"LAX", modeZeroPage, 2, 3, opLAX, false},
	0xA8: {"TAY", modeImplied, 1, 2, opTAY, false},
	0xA9: {"LDA", modeImmediate, 2, 2, opLDA, false},
	0xAA: {"TAX", modeImplied, 1, 2, opTAX, false},
	0xAB: {"LXA", modeImmediate, 2, 2, opLXA, false},
	0xAC: {"LDY", modeAbsolute, 3, 4, opLDY, false},
	0xAD: {"LDA", modeAbsolute, 3, 4, opLDA, false},
	0xAE: {"LDX", modeAbsolute, 3, 4, opLDX, false},
	0xAF: {"LAX", modeAbsolute, 3, 4, opLAX, false},

	0xB0: {"BCS", modeRelative, 2, 2, opBCS, false},
	0xB1: {"LDA", modeIndirectY, 2, 5, opLDA, false},
	0xB2: {"JAM", modeImplied, 1, 2, opJAM, true},
	0xB3: {"LAX", modeIndirectY, 2, 5, opLAX, false},
	0xB4: {"LDY", modeZeroPageX, 2, 4, opLDY, false},
	0xB5: {"LDA", modeZeroPageX, 2, 4, opLDA, false},
	0xB6: {"LDX", modeZeroPageY, 2, 4, opLDX, false},
	0xB7: {"LAX", modeZeroPageY, 2, 4, opLAX, false},
	0xB8: {"CLV", modeImplied, 1, 2, opCLV, false},
	0xB9: {"LDA", modeAbsoluteY, 3, 4, opLDA, false},
	0xBA: {"TSX", modeImplied, 1, 2, opTSX, false},
	0xBB: {"LAS", modeAbsoluteY, 3, 4, opLAS, false},
	0xBC: {"LDY", modeAbsoluteX, 3, 4, opLDY, false},
	0xBD: {"LDA", modeAbsoluteX, 3, 4, opLDA, false},
	0xBE: {"LDX", modeAbsoluteY, 3, 4, opLDX, false},
	0xBF: {"LAX", modeAbsoluteY, 3, 4, opLAX, false},

	0xC0: {"CPY", modeImmediate, 2, 2, opCPY, false},
	0xC1: {"CMP", modeIndirectX, 2, 6, opCMP, false},
	0xC2: {"NOP", modeImmediate, 2, 2, opNOP, false},
	0xC3: {"DCP", modeIndirectX, 2, 8, opDCP, false},
	0xC4: {"CPY", modeZeroPage, 2, 3, opCPY, false},
	0xC5: {"CMP", modeZeroPage, 2, 3, opCMP, false},
	0xC6: {"DEC", modeZeroPage, 2, 5, opDEC, false},
	0xC7: {"DCP", modeZeroPage, 2, 5, opDCP, false},
	0xC8: {"INY", modeImplied, 1, 2, opINY, false},
	0xC9: {"CMP", modeImmediate, 2, 2, opCMP, false},
	0xCA: {"DEX", modeImplied, 1, 2, opDEX, false},
	0xCB: {"AXS", modeImmediate, 2, 2, opAXS, false},
	0xCC: {"CPY", modeAbsolute, 3, 4, opCPY, false},
	0xCD: {"CMP", modeAbsolute, 3, 4, opCMP, false},
	0xCE: {"DEC", modeAbsolute, 3, 6, opDEC, false},
	0xCF: {"DCP", modeAbsolute, 3, 6, opDCP, false},

	0xD0: {"BNE", modeRelative, 2, 2, opBNE, false},
	0xD1: {"CMP", modeIndirectY, 2, 5, opCMP, false},
	0xD2: {"JAM", modeImplied, 1, 2, opJAM, true},
	0xD3: {"DCP", modeIndirectY, 2, 8, opDCP, false},
	0xD4: {"NOP", modeZeroPageX, 2, 4, opNOP, false},
	0xD5: {"CMP", modeZeroPageX, 2, 4, opCMP, false},
	0xD6: {"DEC", modeZeroPageX, 2, 6, opDEC, false},
	0xD7: {"DCP", modeZeroPageX, 2, 6, opDCP, false},
	0xD8: {"CLD", modeImplied, 1, 2, opCLD, false},
	0xD9: {"CMP", modeAbsoluteY, 3, 4, opCMP, false},
	0xDA: {"NOP", modeImplied, 1, 2, opNOP, false},
	0xDB: {"DCP", modeAbsoluteY, 3, 7, opDCP, false},
	0xDC: {"NOP", modeAbsoluteX, 3, 4, opNOP, false},
	0xDD: {"CMP", modeAbsoluteX, 3, 4, opCMP, false},
	0xDE: {"DEC", modeAbsoluteX, 3, 7, opDEC, false},
	0xDF: {"DCP", modeAbsoluteX, 3, 7, opDCP, false},

	0xE0: {"CPX", modeImmediate, 2, 2, opCPX, false},
	0xE1: {"SBC", modeIndirectX, 2, 6, opSBC, false},
	0xE2: {"NOP", modeImmediate, 2, 2, opNOP, false},
	0xE3: {"ISC", modeIndirectX, 2, 8, opISC, false},
	0xE4: {"CPX", modeZeroPage, 2, 3, opCPX, false},
	0xE5: {"SBC", modeZeroPage, 2, 3, opSBC, false},
	0xE6: {"INC", modeZeroPage, 2, 5, opINC, false},
	0xE7: {"ISC", modeZeroPage, 2, 5, opISC, false},
	0xE8: {"INX", modeImplied, 1, 2, opINX, false},
	0xE9: {"SBC", modeImmediate, 2, 2, opSBC, false},
	0xEA: {"NOP", modeImplied, 1, 2, opNOP, false},
	0xEB: {"SBC", modeImmediate, 2, 2, opSBC, false},
	0xEC: {"CPX", modeAbsolute, 3, 4, opCPX, false},
	0xED: {"SBC", modeAbsolute, 3, 4, opSBC, false},
	0xEE: {"INC", modeAbsolute, 3, 6, opINC, false},
	0xEF: {"ISC", modeAbsolute, 3, 6, opISC, false},

	0xF0: {"BEQ", modeRelative, 2, 2, opBEQ, false},
	0xF1: {"SBC", modeIndirectY, 2, 5, opSBC, false},
	0xF2: {"JAM", modeImplied, 1, 2, opJAM, true},
	0xF3: {"ISC", modeIndirectY, 2, 8, opISC, false},
	0xF4: {"NOP", modeZeroPageX, 2, 4, opNOP, false},
	0xF5: {"SBC", modeZeroPageX, 2, 4, opSBC, false},
	0xF6: {"INC", modeZeroPageX, 2, 6, opINC, false},
	0xF7: {"ISC", modeZeroPageX, 2, 6, opISC, false},
	0xF8: {"SED", modeImplied, 1, 2, opSED, false},
	0xF9: {"SBC", modeAbsoluteY, 3, 4, opSBC, false},
	0xFA: {"NOP", modeImplied, 1, 2, opNOP, false},
	0xFB: {"ISC", modeAbsoluteY, 3, 7, opISC, false},
	0xFC: {"NOP", modeAbsoluteX, 3, 4, opNOP, false},
	0xFD: {"SBC", modeAbsoluteX, 3, 4, opSBC, false},
	0xFE: {"INC", modeAbsoluteX, 3, 7, opINC, false},
	0xFF: {"ISC", modeAbsoluteX, 3, 7, opISC, false},
}
