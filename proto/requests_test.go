package proto

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeCirculateWindowUsesItsOwnOpcode guards the fixed opcode bug: the
// reference implementation mistakenly emitted UnmapSubwindows' opcode for
// CirculateWindow.
func TestEncodeCirculateWindowUsesItsOwnOpcode(t *testing.T) {
	buf := EncodeCirculateWindow(binary.LittleEndian, Window(0x100), PlaceOnTop)
	assert.Equal(t, uint8(OpCirculateWindow), buf[0])
	assert.NotEqual(t, uint8(OpUnmapSubwindows), buf[0])
	assert.Equal(t, PlaceOnTop, buf[1])
}

func TestEncodeCreateWindowLengthWordMatchesValueList(t *testing.T) {
	order := binary.LittleEndian
	buf := EncodeCreateWindow(order, CreateWindowArgs{
		Depth:  24,
		Window: 1, Parent: 2,
		Width: 10, Height: 10,
		Class:  ClassInputOutput,
		Visual: 1,
		Values: WindowValue{EventMask: u32p(1), BackPixel: u32p(2)},
	})
	lengthWords := order.Uint16(buf[2:4])
	assert.EqualValues(t, len(buf)/4, lengthWords)
	// 32-byte fixed part plus one 4-byte cell per value.
	assert.EqualValues(t, (32+4*2)/4, lengthWords)
	assert.Equal(t, uint8(OpCreateWindow), buf[0])
	assert.Equal(t, uint8(24), buf[1])

	mask := order.Uint32(buf[28:32])
	assert.Equal(t, CWBackPixel|CWEventMask, mask)
	// ascending bit order: BackPixel (bit1) before EventMask (bit11).
	assert.EqualValues(t, 2, order.Uint32(buf[32:36]))
	assert.EqualValues(t, 1, order.Uint32(buf[36:40]))
}

func TestEncodeSimpleWindowRequestIsEightBytes(t *testing.T) {
	buf := EncodeSimpleWindowRequest(binary.LittleEndian, OpMapWindow, Window(0x42))
	require.Len(t, buf, 8)
	assert.Equal(t, uint8(OpMapWindow), buf[0])
	assert.EqualValues(t, 0x42, binary.LittleEndian.Uint32(buf[4:8]))
}

func TestEncodeInternAtomPadsName(t *testing.T) {
	buf := EncodeInternAtom(binary.LittleEndian, "WM_PROTOCOLS", true)
	order := binary.LittleEndian
	lengthWords := order.Uint16(buf[2:4])
	assert.EqualValues(t, len(buf)/4, lengthWords)
	assert.Equal(t, uint8(1), buf[1]) // onlyIfExists detail
	nameLen := order.Uint16(buf[4:6])
	assert.EqualValues(t, len("WM_PROTOCOLS"), nameLen)
	assert.Equal(t, "WM_PROTOCOLS", string(buf[8:8+nameLen]))
}

func TestEncodeChangePropertyUnitLengthByFormat(t *testing.T) {
	data := []byte{1, 0, 0, 0, 2, 0, 0, 0} // two 32-bit units
	buf := EncodeChangeProperty(binary.LittleEndian, PropModeReplace, Window(1), Atom(2), Atom(3), 32, data)
	order := binary.LittleEndian
	unitLen := order.Uint32(buf[20:24])
	assert.EqualValues(t, 2, unitLen)
}

func TestEncodeBellCarriesSignedPercentInDetail(t *testing.T) {
	buf := EncodeBell(binary.LittleEndian, -50)
	assert.Equal(t, uint8(int8(-50)), buf[1])
}
