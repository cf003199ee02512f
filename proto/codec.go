package proto

import (
	"encoding/binary"
	"fmt"
)

// RoundUp4 rounds n up to the next multiple of 4, the unit the X11 wire
// format pads every variable-length field to. It replaces the
// len + len%4 computation found in the reference implementation:
// (n+3) &^ 3 is the canonical rounding, and len + len%4 agrees with it
// only when len%4 is 0 or 2 (for len%4 of 1 or 3 it yields a value that
// is not a multiple of 4, e.g. 5 -> 6, 7 -> 10).
func RoundUp4(n int) int {
	return (n + 3) &^ 3
}

// Pad4 returns the number of padding bytes needed to round n up to a
// multiple of 4.
func Pad4(n int) int {
	return RoundUp4(n) - n
}

// Buffer is a cursor over a decode target. Every read method advances the
// cursor and reports whether enough bytes remained; callers check ok once
// per record rather than after every field.
type Buffer struct {
	order binary.ByteOrder
	buf   []byte
	pos   int
	err   error
}

// NewBuffer wraps buf for sequential decoding in the given byte order.
func NewBuffer(order binary.ByteOrder, buf []byte) *Buffer {
	return &Buffer{order: order, buf: buf}
}

func (b *Buffer) fail(need int) bool {
	if b.err == nil {
		b.err = fmt.Errorf("proto: short buffer: need %d more bytes at offset %d, have %d", need, b.pos, len(b.buf)-b.pos)
	}
	return false
}

// Err returns the first short-read error encountered, if any.
func (b *Buffer) Err() error { return b.err }

// Remaining returns the number of unconsumed bytes.
func (b *Buffer) Remaining() int { return len(b.buf) - b.pos }

// Skip advances the cursor by n bytes without interpreting them.
func (b *Buffer) Skip(n int) bool {
	if b.err != nil {
		return false
	}
	if b.Remaining() < n {
		return b.fail(n)
	}
	b.pos += n
	return true
}

func (b *Buffer) Uint8() (uint8, bool) {
	if b.err != nil || b.Remaining() < 1 {
		return 0, b.fail(1)
	}
	v := b.buf[b.pos]
	b.pos++
	return v, true
}

func (b *Buffer) Int8() (int8, bool) {
	v, ok := b.Uint8()
	return int8(v), ok
}

func (b *Buffer) Bool() (bool, bool) {
	v, ok := b.Uint8()
	return v != 0, ok
}

func (b *Buffer) Uint16() (uint16, bool) {
	if b.err != nil || b.Remaining() < 2 {
		return 0, b.fail(2)
	}
	v := b.order.Uint16(b.buf[b.pos : b.pos+2])
	b.pos += 2
	return v, true
}

func (b *Buffer) Int16() (int16, bool) {
	v, ok := b.Uint16()
	return int16(v), ok
}

func (b *Buffer) Uint32() (uint32, bool) {
	if b.err != nil || b.Remaining() < 4 {
		return 0, b.fail(4)
	}
	v := b.order.Uint32(b.buf[b.pos : b.pos+4])
	b.pos += 4
	return v, true
}

func (b *Buffer) Int32() (int32, bool) {
	v, ok := b.Uint32()
	return int32(v), ok
}

// Bytes returns the next n bytes as a fresh slice (safe to retain past the
// buffer's lifetime).
func (b *Buffer) Bytes(n int) ([]byte, bool) {
	if b.err != nil || b.Remaining() < n {
		return nil, b.fail(n)
	}
	out := make([]byte, n)
	copy(out, b.buf[b.pos:b.pos+n])
	b.pos += n
	return out, true
}

// String reads n bytes and returns them as a string, exactly the STRING8
// wire representation (not NUL-terminated, caller-supplied length).
func (b *Buffer) String(n int) (string, bool) {
	raw, ok := b.Bytes(n)
	if !ok {
		return "", false
	}
	return string(raw), true
}

// Writer accumulates an outgoing request or a test-only reply/event/error
// encoding. Unlike Buffer it never fails: callers size the backing slice
// up front (see Requests' length computations) and Writer panics on
// programmer error (writing past the declared size), which is a bug in
// the caller, not a runtime condition to recover from.
type Writer struct {
	order binary.ByteOrder
	buf   []byte
}

// NewWriter allocates a Writer with a buffer of exactly n bytes.
func NewWriter(order binary.ByteOrder, n int) *Writer {
	return &Writer{order: order, buf: make([]byte, n)}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) PutUint8(off int, v uint8) { w.buf[off] = v }

func (w *Writer) PutBool(off int, v bool) {
	if v {
		w.buf[off] = 1
	} else {
		w.buf[off] = 0
	}
}

func (w *Writer) PutUint16(off int, v uint16) { w.order.PutUint16(w.buf[off:off+2], v) }
func (w *Writer) PutInt16(off int, v int16)    { w.order.PutUint16(w.buf[off:off+2], uint16(v)) }
func (w *Writer) PutUint32(off int, v uint32) { w.order.PutUint32(w.buf[off:off+4], v) }
func (w *Writer) PutInt32(off int, v int32)    { w.order.PutUint32(w.buf[off:off+4], uint32(v)) }

func (w *Writer) PutBytes(off int, v []byte) { copy(w.buf[off:off+len(v)], v) }
func (w *Writer) PutString(off int, v string) { copy(w.buf[off:off+len(v)], v) }
