package nescore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNROM assembles a minimal one-bank NROM image: a CPU program that
// spins in an infinite JMP loop at $8000, with every interrupt vector
// also pointed there since nothing in the test enables NMI or IRQ.
func buildNROM(t *testing.T) []byte {
	t.Helper()
	prg := make([]byte, 16384)
	prg[0] = 0x4C // JMP $8000
	prg[1] = 0x00
	prg[2] = 0x80
	for _, off := range []int{0x3FFA, 0x3FFC, 0x3FFE} {
		prg[off] = 0x00
		prg[off+1] = 0x80
	}

	chr := make([]byte, 8192)

	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append(append([]byte{}, header...), prg...)
	data = append(data, chr...)
	return data
}

func TestOpenBytesAndStepProducesAFrame(t *testing.T) {
	emu, err := OpenBytes(buildNROM(t))
	require.NoError(t, err)

	frame, err := emu.Step(1, 0)
	require.NoError(t, err)
	assert.Len(t, frame, FrameWidth*FrameHeight*3)
	assert.False(t, emu.HasCrashed())
}

func TestReadWriteRAMWindow(t *testing.T) {
	emu, err := OpenBytes(buildNROM(t))
	require.NoError(t, err)

	require.NoError(t, emu.Write(0x0010, 0x99))
	v, err := emu.Read(0x0010)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x99), v)
}

func TestReadWriteRejectsOutOfRangeAddress(t *testing.T) {
	emu, err := OpenBytes(buildNROM(t))
	require.NoError(t, err)

	_, err = emu.Read(0x3000)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	emu, err := OpenBytes(buildNROM(t))
	require.NoError(t, err)

	_, err = emu.Step(1, 0)
	require.NoError(t, err)
	require.NoError(t, emu.Write(0x0020, 0x7E))

	snap := emu.Save()
	require.Equal(t, emu.SaveStateSize(), len(snap))

	emu2, err := OpenBytes(buildNROM(t))
	require.NoError(t, err)
	require.NoError(t, emu2.Load(snap))

	v, err := emu2.Read(0x0020)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7E), v)
}

func TestOpenBytesRejectsUnsupportedMapper(t *testing.T) {
	data := buildNROM(t)
	data[7] = 0xF0 // mapper high nibble -> unsupported id

	_, err := OpenBytes(data)
	assert.Error(t, err)
}
