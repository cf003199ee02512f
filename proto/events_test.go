package proto

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeCoreEvent(order binary.ByteOrder, opcode uint8, sent bool, detail uint8, seq uint16) []byte {
	w := NewWriter(order, 32)
	raw := opcode
	if sent {
		raw |= sendEventMask
	}
	w.PutUint8(0, raw)
	w.PutUint8(1, detail)
	w.PutUint16(2, seq)
	return w.Bytes()
}

func TestParseEventFocusInAndFocusOutDecodeDistinctTypes(t *testing.T) {
	order := binary.LittleEndian

	in := encodeCoreEvent(order, EvFocusIn, false, 0, 7)
	ev, err := ParseEvent(order, in)
	require.NoError(t, err)
	focusIn, ok := ev.(*FocusInEvent)
	require.True(t, ok, "FocusIn must decode to *FocusInEvent, got %T", ev)
	assert.EqualValues(t, 7, focusIn.Sequence)

	out := encodeCoreEvent(order, EvFocusOut, false, 0, 8)
	ev, err = ParseEvent(order, out)
	require.NoError(t, err)
	focusOut, ok := ev.(*FocusOutEvent)
	require.True(t, ok, "FocusOut must decode to its own *FocusOutEvent, not be aliased onto FocusInEvent; got %T", ev)
	assert.EqualValues(t, 8, focusOut.Sequence)
}

func TestParseEventSentBitMarksSendEvent(t *testing.T) {
	order := binary.LittleEndian
	buf := encodeCoreEvent(order, EvFocusIn, true, 0, 1)
	ev, err := ParseEvent(order, buf)
	require.NoError(t, err)
	assert.True(t, ev.Sent())
	assert.EqualValues(t, EvFocusIn, ev.EventOpcode())
}

// TestParseEventKeymapNotifyCarriesNoSequence covers the one core event
// whose wire layout has no sequence number field at all: its Sequence
// field always decodes to 0, and the 31-byte keyboard bitmap starts
// immediately at byte 1, not byte 4 like every other event.
func TestParseEventKeymapNotifyCarriesNoSequence(t *testing.T) {
	order := binary.LittleEndian
	buf := make([]byte, 32)
	buf[0] = EvKeymapNotify
	for i := 1; i < 32; i++ {
		buf[i] = byte(i)
	}
	ev, err := ParseEvent(order, buf)
	require.NoError(t, err)
	km, ok := ev.(*KeymapNotifyEvent)
	require.True(t, ok)
	assert.EqualValues(t, 0, km.Sequence)
	assert.Equal(t, buf[1:32], km.Keys[:])
}

func TestParseEventTooShort(t *testing.T) {
	_, err := ParseEvent(binary.LittleEndian, make([]byte, 10))
	assert.Error(t, err)
}

func TestParseEventUnknownOpcode(t *testing.T) {
	buf := make([]byte, 32)
	buf[0] = 200 // not a real core opcode, and not the sent bit alone
	_, err := ParseEvent(binary.LittleEndian, buf)
	assert.Error(t, err)
}
