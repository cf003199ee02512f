package proto

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundUp4(t *testing.T) {
	cases := map[int]int{
		0: 0, 1: 4, 2: 4, 3: 4, 4: 4,
		5: 8, 6: 8, 7: 8, 8: 8,
		9: 12, 13: 16,
	}
	for n, want := range cases {
		assert.Equalf(t, want, RoundUp4(n), "RoundUp4(%d)", n)
	}
}

// TestRoundUp4NotLenModLen guards the fixed rounding bug: the reference
// len + len%4 computation is wrong whenever len%4 is 1 or 3 (e.g. len=5
// gives 5+1=6, not the correctly-padded 8). For len%4 of 0 or 2 the two
// formulas coincide (e.g. len=2 gives 4 either way), so those are skipped.
func TestRoundUp4NotLenModLen(t *testing.T) {
	for n := 1; n < 32; n++ {
		if n%4 == 0 || n%4 == 2 {
			continue
		}
		buggy := n + n%4
		assert.NotEqual(t, buggy, RoundUp4(n), "n=%d: RoundUp4 must not match the len+len%%4 bug", n)
	}
}

func TestPad4(t *testing.T) {
	assert.Equal(t, 0, Pad4(0))
	assert.Equal(t, 3, Pad4(1))
	assert.Equal(t, 2, Pad4(2))
	assert.Equal(t, 1, Pad4(3))
	assert.Equal(t, 0, Pad4(4))
}

func TestBufferSequentialDecode(t *testing.T) {
	w := NewWriter(binary.LittleEndian, 16)
	w.PutUint8(0, 7)
	w.PutUint16(1, 1000)
	w.PutUint32(3, 0xdeadbeef)
	w.PutBool(7, true)
	w.PutInt16(8, -5)

	b := NewBuffer(binary.LittleEndian, w.Bytes())
	v8, ok := b.Uint8()
	require.True(t, ok)
	assert.EqualValues(t, 7, v8)

	v16, ok := b.Uint16()
	require.True(t, ok)
	assert.EqualValues(t, 1000, v16)

	v32, ok := b.Uint32()
	require.True(t, ok)
	assert.EqualValues(t, 0xdeadbeef, v32)

	vb, ok := b.Bool()
	require.True(t, ok)
	assert.True(t, vb)

	vi16, ok := b.Int16()
	require.True(t, ok)
	assert.EqualValues(t, -5, vi16)

	require.NoError(t, b.Err())
}

func TestBufferShortReadSticksErr(t *testing.T) {
	b := NewBuffer(binary.LittleEndian, []byte{1, 2})
	_, ok := b.Uint32()
	assert.False(t, ok)
	require.Error(t, b.Err())

	// A subsequent call must not overwrite or clear the first error.
	firstErr := b.Err()
	_, ok = b.Uint8()
	assert.False(t, ok)
	assert.Equal(t, firstErr, b.Err())
}

func TestBufferStringIsNotNulTerminated(t *testing.T) {
	w := NewWriter(binary.LittleEndian, 8)
	w.PutString(0, "abcd")
	b := NewBuffer(binary.LittleEndian, w.Bytes())
	s, ok := b.String(4)
	require.True(t, ok)
	assert.Equal(t, "abcd", s)
}

func TestWriterRoundTripsBothByteOrders(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		w := NewWriter(order, 4)
		w.PutUint32(0, 0x01020304)
		b := NewBuffer(order, w.Bytes())
		v, ok := b.Uint32()
		require.True(t, ok)
		assert.EqualValues(t, 0x01020304, v)
	}
}
