// Package snapshot implements the save-state engine described in
// spec.md §4.6: a versioned, self-describing byte buffer that captures
// every component's state so reloading it reproduces the machine
// bit-for-bit. Each component already knows how to serialize itself
// (internal/cpu, internal/ppu, internal/apu, internal/bus,
// internal/mapper, each with its own SaveState/LoadState that rejects a
// buffer of the wrong length; a mapper block's length depends on the
// board and its cartridge RAM); this package only adds the framing —
// magic, version, and mapper-tag guards — and concatenates the
// component blocks in order.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var magic = [8]byte{'N', 'E', 'S', 'C', 'O', 'R', 'E', '\x00'}

const version uint16 = 2

// ErrBadMagic, ErrVersionMismatch and ErrMapperMismatch are the
// SnapshotError kinds spec.md §7 calls for; ErrTruncated covers a
// buffer too short to contain its own framing.
var (
	ErrBadMagic        = errors.New("snapshot: bad magic")
	ErrVersionMismatch = errors.New("snapshot: version mismatch")
	ErrMapperMismatch  = errors.New("snapshot: mapper id mismatch")
	ErrTruncated       = errors.New("snapshot: truncated buffer")
)

// Component is anything that can serialize and restore its own state;
// internal/cpu.CPU, internal/ppu.PPU, internal/apu.APU, internal/bus.Bus
// and every internal/mapper.Mapper all satisfy it already.
type Component interface {
	SaveState() []byte
	LoadState(data []byte) error
}

// Encode concatenates magic, version, mapperID and each component's
// block, in the fixed order spec.md §4.6 specifies: CPU, PPU, APU,
// bus (RAM/controller/open-bus), then the mapper-specific block (which
// already carries CHR-RAM and PRG-RAM for the boards that have them).
func Encode(mapperID uint16, cpu, ppu, apu, bus, mapper Component) []byte {
	cpuBlock := cpu.SaveState()
	ppuBlock := ppu.SaveState()
	apuBlock := apu.SaveState()
	busBlock := bus.SaveState()
	mapperBlock := mapper.SaveState()

	out := make([]byte, 0, 8+2+2+4*4+len(cpuBlock)+len(ppuBlock)+len(apuBlock)+len(busBlock)+len(mapperBlock))
	out = append(out, magic[:]...)
	out = appendU16(out, version)
	out = appendU16(out, mapperID)
	out = appendBlock(out, cpuBlock)
	out = appendBlock(out, ppuBlock)
	out = appendBlock(out, apuBlock)
	out = appendBlock(out, busBlock)
	out = appendBlock(out, mapperBlock)
	return out
}

// Decode validates magic/version/mapper tag and restores every
// component's block in place. On any error the components are left
// unchanged (spec.md §7 propagation policy).
func Decode(data []byte, mapperID uint16, cpu, ppu, apu, bus, mapper Component) error {
	if len(data) < 12 {
		return ErrTruncated
	}
	if string(data[:8]) != string(magic[:]) {
		return ErrBadMagic
	}
	if binary.LittleEndian.Uint16(data[8:10]) != version {
		return ErrVersionMismatch
	}
	if binary.LittleEndian.Uint16(data[10:12]) != mapperID {
		return ErrMapperMismatch
	}

	rest := data[12:]
	cpuBlock, rest, err := takeBlock(rest)
	if err != nil {
		return err
	}
	ppuBlock, rest, err := takeBlock(rest)
	if err != nil {
		return err
	}
	apuBlock, rest, err := takeBlock(rest)
	if err != nil {
		return err
	}
	busBlock, rest, err := takeBlock(rest)
	if err != nil {
		return err
	}
	mapperBlock, _, err := takeBlock(rest)
	if err != nil {
		return err
	}

	prev := [][]byte{cpu.SaveState(), ppu.SaveState(), apu.SaveState(), bus.SaveState()}
	restore := func(n int) {
		for i, c := range []Component{cpu, ppu, apu, bus}[:n] {
			_ = c.LoadState(prev[i])
		}
	}

	if err := cpu.LoadState(cpuBlock); err != nil {
		return fmt.Errorf("snapshot: cpu block: %w", err)
	}
	if err := ppu.LoadState(ppuBlock); err != nil {
		restore(1)
		return fmt.Errorf("snapshot: ppu block: %w", err)
	}
	if err := apu.LoadState(apuBlock); err != nil {
		restore(2)
		return fmt.Errorf("snapshot: apu block: %w", err)
	}
	if err := bus.LoadState(busBlock); err != nil {
		restore(3)
		return fmt.Errorf("snapshot: bus block: %w", err)
	}
	if err := mapper.LoadState(mapperBlock); err != nil {
		restore(4)
		return fmt.Errorf("snapshot: mapper block: %w", err)
	}
	return nil
}

// Size returns the encoded length Encode would produce for the given
// component blocks, for the host-facing save_state_size() query,
// without needing to actually concatenate them.
func Size(cpu, ppu, apu, bus, mapper Component) int {
	return 12 +
		4 + len(cpu.SaveState()) +
		4 + len(ppu.SaveState()) +
		4 + len(apu.SaveState()) +
		4 + len(bus.SaveState()) +
		4 + len(mapper.SaveState())
}

func appendU16(b []byte, v uint16) []byte { return append(b, byte(v), byte(v>>8)) }

// appendBlock prefixes block with its own length so Decode can slice
// the concatenated buffer back apart without each component needing to
// agree on a fixed size across versions.
func appendBlock(out []byte, block []byte) []byte {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(block)))
	out = append(out, lenBuf[:]...)
	return append(out, block...)
}

func takeBlock(data []byte) (block []byte, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, ErrTruncated
	}
	n := binary.LittleEndian.Uint32(data[:4])
	data = data[4:]
	if uint32(len(data)) < n {
		return nil, nil, ErrTruncated
	}
	return data[:n], data[n:], nil
}
