package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32p(v uint32) *uint32 { return &v }
func i32p(v int32) *int32   { return &v }
func boolp(v bool) *bool    { return &v }

// TestWindowValueEncodeAscendingBitOrder sets fields listed out of CW bit
// order (Cursor=bit14, BackPixmap=bit0, EventMask=bit11); the wire cells
// must still come out low-bit-first regardless of which fields were set or
// the order they were listed in.
func TestWindowValueEncodeAscendingBitOrder(t *testing.T) {
	v := WindowValue{
		Cursor:     u32p(9),
		BackPixmap: u32p(1),
		EventMask:  u32p(5),
	}
	mask, cells := v.Encode()
	assert.Equal(t, CWBackPixmap|CWEventMask|CWCursor, mask)
	require.Len(t, cells, 3)
	assert.Equal(t, []uint32{1, 5, 9}, cells)
}

func TestWindowValueEncodeEmpty(t *testing.T) {
	mask, cells := WindowValue{}.Encode()
	assert.Zero(t, mask)
	assert.Empty(t, cells)
}

func TestWindowValueEncodeBoolCells(t *testing.T) {
	v := WindowValue{OverrideRedirect: boolp(true), SaveUnder: boolp(false)}
	mask, cells := v.Encode()
	assert.Equal(t, CWOverrideRedirect|CWSaveUnder, mask)
	// SaveUnder (bit 10) sorts after OverrideRedirect (bit 9).
	assert.Equal(t, []uint32{1, 0}, cells)
}

func TestGraphicsContextValueAscendingBitOrder(t *testing.T) {
	v := GraphicsContextValue{
		ArcMode:    u32p(22),
		Function:   u32p(0),
		Foreground: u32p(2),
	}
	mask, cells := v.Encode()
	assert.Equal(t, GCFunction|GCForeground|GCArcMode, mask)
	assert.Equal(t, []uint32{0, 2, 22}, cells)
}

func TestConfigureWindowValueAscendingBitOrder(t *testing.T) {
	v := ConfigureWindowValue{
		StackMode: u32p(4),
		X:         i32p(-3),
		Height:    u32p(100),
	}
	mask, cells := v.Encode()
	assert.Equal(t, CWX|CWHeight|CWStackMode, mask)
	assert.Equal(t, []uint32{uint32(int32(-3)), 100, 4}, cells)
}

func TestKeyboardControlValueAscendingBitOrder(t *testing.T) {
	v := KeyboardControlValue{
		AutoRepeatMode:  u32p(1),
		KeyClickPercent: i32p(50),
	}
	mask, cells := v.Encode()
	assert.Equal(t, KBKeyClickPercent|KBAutoRepeatMode, mask)
	assert.Equal(t, []uint32{50, 1}, cells)
}
