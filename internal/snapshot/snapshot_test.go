package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeComponent is a Component stand-in that just round-trips a byte
// slice, so Encode/Decode's framing can be tested without pulling in
// the real CPU/PPU/APU/bus/mapper packages.
type fakeComponent struct {
	data []byte
}

func (f *fakeComponent) SaveState() []byte { return append([]byte(nil), f.data...) }
func (f *fakeComponent) LoadState(data []byte) error {
	f.data = append([]byte(nil), data...)
	return nil
}

func newFakes() (cpu, ppu, apu, bus, mapper *fakeComponent) {
	return &fakeComponent{data: []byte{1, 2}},
		&fakeComponent{data: []byte{3, 4, 5}},
		&fakeComponent{data: []byte{}},
		&fakeComponent{data: []byte{6}},
		&fakeComponent{data: []byte{7, 8, 9, 10}}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cpu, ppu, apu, bus, mapper := newFakes()
	buf := Encode(4, cpu, ppu, apu, bus, mapper)

	cpu2, ppu2, apu2, bus2, mapper2 := newFakes()
	cpu2.data, ppu2.data, apu2.data, bus2.data, mapper2.data = nil, nil, nil, nil, nil

	require.NoError(t, Decode(buf, 4, cpu2, ppu2, apu2, bus2, mapper2))
	assert.Equal(t, cpu.data, cpu2.data)
	assert.Equal(t, ppu.data, ppu2.data)
	assert.Equal(t, apu.data, apu2.data)
	assert.Equal(t, bus.data, bus2.data)
	assert.Equal(t, mapper.data, mapper2.data)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	cpu, ppu, apu, bus, mapper := newFakes()
	buf := Encode(4, cpu, ppu, apu, bus, mapper)
	buf[0] ^= 0xFF

	err := Decode(buf, 4, cpu, ppu, apu, bus, mapper)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	cpu, ppu, apu, bus, mapper := newFakes()
	buf := Encode(4, cpu, ppu, apu, bus, mapper)
	buf[8] ^= 0xFF

	err := Decode(buf, 4, cpu, ppu, apu, bus, mapper)
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestDecodeRejectsMapperMismatch(t *testing.T) {
	cpu, ppu, apu, bus, mapper := newFakes()
	buf := Encode(4, cpu, ppu, apu, bus, mapper)

	err := Decode(buf, 66, cpu, ppu, apu, bus, mapper)
	assert.ErrorIs(t, err, ErrMapperMismatch)
}

func TestDecodeRejectsTruncatedBuffer(t *testing.T) {
	cpu, ppu, apu, bus, mapper := newFakes()
	buf := Encode(4, cpu, ppu, apu, bus, mapper)

	err := Decode(buf[:len(buf)-1], 4, cpu, ppu, apu, bus, mapper)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSizeMatchesEncodedLength(t *testing.T) {
	cpu, ppu, apu, bus, mapper := newFakes()
	buf := Encode(4, cpu, ppu, apu, bus, mapper)
	assert.Equal(t, len(buf), Size(cpu, ppu, apu, bus, mapper))
}
