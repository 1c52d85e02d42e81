package ppu

import (
	"encoding/binary"
	"errors"
)

var errStateSize = errors.New("ppu: save state has wrong length")

// StateSize is the fixed encoded length SaveState always produces.
const StateSize = 2048 + 32 + 256 + 32 + 2 + 2 + 1 + 1 + 1 + 1 + 4 + 4 + 1 + 1 + 1 + 1 + 8 + 1

// SaveState serializes everything needed to resume rendering from the
// exact dot it was captured at: nametables, palette, OAM, secondary OAM,
// the loopy registers, and scanline/dot/frame position.
func (p *PPU) SaveState() []byte {
	out := make([]byte, 0, StateSize)
	out = append(out, p.nametables[:]...)
	out = append(out, p.palette[:]...)
	out = append(out, p.OAM[:]...)
	out = append(out, p.secondaryOAM[:]...)
	out = appendU16(out, uint16(p.v))
	out = appendU16(out, uint16(p.t))
	out = append(out, p.fineX)
	out = append(out, boolByte(p.writeLatch))
	out = append(out, p.readBuffer, p.openBus)
	out = appendI32(out, p.scanline)
	out = appendI32(out, p.dot)
	out = append(out, p.ctrl, p.mask, p.status, p.oamAddr)
	out = appendU64(out, p.frame)
	out = append(out, boolByte(p.oddFrame))
	return out
}

// LoadState restores a snapshot produced by SaveState. The rendering
// pipeline's shift registers and in-flight fetch latches are not part of
// the snapshot; they are rebuilt over the next few dots exactly as they
// would be after a v/t reload, which is inaudible to the picture output.
func (p *PPU) LoadState(data []byte) error {
	if len(data) != StateSize {
		return errStateSize
	}
	i := 0
	i += copy(p.nametables[:], data[i:])
	i += copy(p.palette[:], data[i:])
	i += copy(p.OAM[:], data[i:])
	i += copy(p.secondaryOAM[:], data[i:])
	p.v = loopy(binary.LittleEndian.Uint16(data[i:]))
	i += 2
	p.t = loopy(binary.LittleEndian.Uint16(data[i:]))
	i += 2
	p.fineX = data[i]
	i++
	p.writeLatch = data[i] != 0
	i++
	p.readBuffer = data[i]
	i++
	p.openBus = data[i]
	i++
	p.scanline = int32(binary.LittleEndian.Uint32(data[i:]))
	i += 4
	p.dot = int32(binary.LittleEndian.Uint32(data[i:]))
	i += 4
	p.ctrl = data[i]
	i++
	p.mask = data[i]
	i++
	p.status = data[i]
	i++
	p.oamAddr = data[i]
	i++
	p.frame = binary.LittleEndian.Uint64(data[i:])
	i += 8
	p.oddFrame = data[i] != 0
	return nil
}

func appendU16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

func appendI32(b []byte, v int32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	return append(b, tmp[:]...)
}

func appendU64(b []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(b, tmp[:]...)
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
