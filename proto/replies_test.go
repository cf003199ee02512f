package proto

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReplyInternAtom(t *testing.T) {
	order := binary.LittleEndian
	w := NewWriter(order, 32)
	w.PutUint8(0, 1)
	w.PutUint16(2, 9)
	w.PutUint32(8, 77)

	reply, err := ParseReply(order, ReplyInternAtom, w.Bytes(), nil)
	require.NoError(t, err)
	atomReply, ok := reply.(*InternAtomReply)
	require.True(t, ok)
	assert.EqualValues(t, 77, atomReply.Atom)
	assert.EqualValues(t, 9, atomReply.ReplySequence())
}

func TestParseReplyGetGeometry(t *testing.T) {
	order := binary.LittleEndian
	w := NewWriter(order, 32)
	w.PutUint8(0, 1)
	w.PutUint8(1, 24) // depth
	w.PutUint16(2, 3)
	w.PutUint32(8, 0x1000) // root
	w.PutInt16(12, -1)
	w.PutInt16(14, 2)
	w.PutUint16(16, 640)
	w.PutUint16(18, 480)
	w.PutUint16(20, 1)

	reply, err := ParseReply(order, ReplyGetGeometry, w.Bytes(), nil)
	require.NoError(t, err)
	geom, ok := reply.(*GetGeometryReply)
	require.True(t, ok)
	assert.EqualValues(t, 24, geom.Depth)
	assert.EqualValues(t, 0x1000, geom.Root)
	assert.EqualValues(t, -1, geom.X)
	assert.EqualValues(t, 640, geom.Width)
}

func TestParseReplyQueryExtension(t *testing.T) {
	order := binary.LittleEndian
	w := NewWriter(order, 32)
	w.PutUint8(0, 1)
	w.PutUint16(2, 4)
	w.PutBool(8, true)
	w.PutUint8(9, 130)
	w.PutUint8(10, 5)
	w.PutUint8(11, 9)

	reply, err := ParseReply(order, ReplyQueryExtension, w.Bytes(), nil)
	require.NoError(t, err)
	ext, ok := reply.(*QueryExtensionReply)
	require.True(t, ok)
	assert.True(t, ext.Present)
	assert.EqualValues(t, 130, ext.MajorOpcode)
	assert.EqualValues(t, 5, ext.FirstEvent)
	assert.EqualValues(t, 9, ext.FirstError)
}

func TestParseReplyGetPropertyValueLengthByFormat(t *testing.T) {
	order := binary.LittleEndian
	value := []byte{1, 0, 0, 0, 2, 0, 0, 0} // two 32-bit units
	header := NewWriter(order, 32)
	header.PutUint8(0, 1)
	header.PutUint8(1, 32) // format
	header.PutUint16(2, 1)
	header.PutUint32(8, 4)   // type atom
	header.PutUint32(12, 0)  // bytes after
	header.PutUint32(16, 2)  // value length, in format units

	reply, err := ParseReply(order, ReplyGetProperty, header.Bytes(), value)
	require.NoError(t, err)
	prop, ok := reply.(*GetPropertyReply)
	require.True(t, ok)
	assert.EqualValues(t, 32, prop.Format)
	assert.Equal(t, value, prop.Value)
}

func TestParseReplyUnknownKind(t *testing.T) {
	order := binary.LittleEndian
	header := NewWriter(order, 32).Bytes()
	_, err := ParseReply(order, ReplyKind(255), header, nil)
	assert.Error(t, err)
}
