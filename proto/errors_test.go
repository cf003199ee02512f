package proto

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorMapsCoreCodes(t *testing.T) {
	cases := []struct {
		code byte
		want Error
	}{
		{ErrRequest, &RequestError{}},
		{ErrWindow, &WindowError{}},
		{ErrAtom, &AtomError{}},
		{ErrLength, &LengthError{}},
		{99, &GenericError{}},
	}
	for _, c := range cases {
		got := NewError(c.code, 1, 0, 0, 0)
		assert.IsType(t, c.want, got)
	}
}

func TestErrorRoundTripsThroughWire(t *testing.T) {
	order := binary.LittleEndian
	original := NewError(ErrWindow, 55, 0xdeadbeef, 3, OpDestroyWindow)
	buf := EncodeMessage(order, original)
	require.Len(t, buf, 32)

	decoded, err := ParseError(order, buf)
	require.NoError(t, err)
	assert.Equal(t, original.Code(), decoded.Code())
	assert.Equal(t, original.Sequence(), decoded.Sequence())
	assert.Equal(t, original.BadValue(), decoded.BadValue())
	assert.Equal(t, original.MinorOpcode(), decoded.MinorOpcode())
	assert.Equal(t, original.MajorOpcode(), decoded.MajorOpcode())
	assert.IsType(t, &WindowError{}, decoded)
}

// TestErrorMinorOpcodeSurvivesAboveOneByte guards against the minor opcode
// field being narrowed to uint8 anywhere in the round trip: it is a CARD16
// on the wire, and extension requests routinely assign minor opcodes above
// 255.
func TestErrorMinorOpcodeSurvivesAboveOneByte(t *testing.T) {
	order := binary.LittleEndian
	original := NewError(ErrRequest, 1, 0, 0x1234, OpNoOperation)
	buf := EncodeMessage(order, original)

	decoded, err := ParseError(order, buf)
	require.NoError(t, err)
	assert.EqualValues(t, 0x1234, decoded.MinorOpcode())
}

func TestParseErrorTooShort(t *testing.T) {
	_, err := ParseError(binary.LittleEndian, make([]byte, 4))
	assert.Error(t, err)
}

func TestErrorImplementsGoError(t *testing.T) {
	var e Error = NewError(ErrAlloc, 1, 0, 0, 0)
	assert.NotEmpty(t, e.Error())
}
