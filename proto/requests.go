package proto

import "encoding/binary"

// header writes the common opcode/detail/length-in-words request prefix
// and returns the Writer positioned to receive the fixed-size body at
// offset 4. totalBytes must already be rounded up to a multiple of 4.
func header(order binary.ByteOrder, opcode Opcode, detail uint8, totalBytes int) *Writer {
	w := NewWriter(order, totalBytes)
	w.PutUint8(0, uint8(opcode))
	w.PutUint8(1, detail)
	w.PutUint16(2, uint16(totalBytes/4))
	return w
}

// CreateWindowArgs bundles the fixed CreateWindow arguments that precede
// its value list.
type CreateWindowArgs struct {
	Depth                          uint8
	Window, Parent                 Window
	X, Y                           int16
	Width, Height, BorderWidth     uint16
	Class                          uint16
	Visual                         VisualID
	Values                         WindowValue
}

// EncodeCreateWindow builds a CreateWindow request (opcode 1).
func EncodeCreateWindow(order binary.ByteOrder, a CreateWindowArgs) []byte {
	mask, cells := a.Values.Encode()
	size := RoundUp4(32 + 4*len(cells))
	w := header(order, OpCreateWindow, a.Depth, size)
	w.PutUint32(4, uint32(a.Window))
	w.PutUint32(8, uint32(a.Parent))
	w.PutInt16(12, a.X)
	w.PutInt16(14, a.Y)
	w.PutUint16(16, a.Width)
	w.PutUint16(18, a.Height)
	w.PutUint16(20, a.BorderWidth)
	w.PutUint16(22, a.Class)
	w.PutUint32(24, uint32(a.Visual))
	w.PutUint32(28, mask)
	off := 32
	for _, c := range cells {
		w.PutUint32(off, c)
		off += 4
	}
	return w.Bytes()
}

// EncodeChangeWindowAttributes builds opcode 2.
func EncodeChangeWindowAttributes(order binary.ByteOrder, win Window, values WindowValue) []byte {
	mask, cells := values.Encode()
	size := RoundUp4(8 + 4 + 4*len(cells))
	w := header(order, OpChangeWindowAttributes, 0, size)
	w.PutUint32(4, uint32(win))
	w.PutUint32(8, mask)
	off := 12
	for _, c := range cells {
		w.PutUint32(off, c)
		off += 4
	}
	return w.Bytes()
}

// EncodeSimpleWindowRequest builds any request whose body is exactly a
// single Window field: GetWindowAttributes, DestroyWindow,
// DestroySubwindows, MapWindow, MapSubwindows, UnmapWindow,
// UnmapSubwindows, GetGeometry, QueryTree, ListProperties, QueryPointer,
// ListInstalledColormaps.
func EncodeSimpleWindowRequest(order binary.ByteOrder, opcode Opcode, win Window) []byte {
	w := header(order, opcode, 0, 8)
	w.PutUint32(4, uint32(win))
	return w.Bytes()
}

// EncodeChangeSaveSet builds opcode 6. mode: 0 = Insert, 1 = Delete.
func EncodeChangeSaveSet(order binary.ByteOrder, mode uint8, win Window) []byte {
	w := header(order, OpChangeSaveSet, mode, 8)
	w.PutUint32(4, uint32(win))
	return w.Bytes()
}

// EncodeReparentWindow builds opcode 7.
func EncodeReparentWindow(order binary.ByteOrder, win, parent Window, x, y int16) []byte {
	w := header(order, OpReparentWindow, 0, 16)
	w.PutUint32(4, uint32(win))
	w.PutUint32(8, uint32(parent))
	w.PutInt16(12, x)
	w.PutInt16(14, y)
	return w.Bytes()
}

// EncodeConfigureWindow builds opcode 12.
func EncodeConfigureWindow(order binary.ByteOrder, win Window, values ConfigureWindowValue) []byte {
	mask, cells := values.Encode()
	size := RoundUp4(8 + 4 + 4*len(cells))
	w := header(order, OpConfigureWindow, 0, size)
	w.PutUint32(4, uint32(win))
	w.PutUint16(8, mask)
	off := 12
	for _, c := range cells {
		w.PutUint32(off, c)
		off += 4
	}
	return w.Bytes()
}

// Circulate placement values.
const (
	PlaceOnTop    uint8 = 0
	PlaceOnBottom uint8 = 1
)

// EncodeCirculateWindow builds opcode 13. It emits OpCirculateWindow, not
// the UnmapSubwindows opcode the reference implementation mistakenly used.
func EncodeCirculateWindow(order binary.ByteOrder, win Window, direction uint8) []byte {
	w := header(order, OpCirculateWindow, direction, 8)
	w.PutUint32(4, uint32(win))
	return w.Bytes()
}

// EncodeInternAtom builds opcode 16.
func EncodeInternAtom(order binary.ByteOrder, name string, onlyIfExists bool) []byte {
	n := len(name)
	size := RoundUp4(8 + n)
	detail := uint8(0)
	if onlyIfExists {
		detail = 1
	}
	w := header(order, OpInternAtom, detail, size)
	w.PutUint16(4, uint16(n))
	w.PutString(8, name)
	return w.Bytes()
}

// EncodeGetAtomName builds opcode 17.
func EncodeGetAtomName(order binary.ByteOrder, atom Atom) []byte {
	w := header(order, OpGetAtomName, 0, 8)
	w.PutUint32(4, uint32(atom))
	return w.Bytes()
}

// EncodeChangeProperty builds opcode 18. format is 8, 16, or 32 and
// determines both the unit size of data and its wire-length accounting.
func EncodeChangeProperty(order binary.ByteOrder, mode uint8, win Window, property, typ Atom, format uint8, data []byte) []byte {
	unitLen := len(data) / (int(format) / 8)
	size := RoundUp4(24 + len(data))
	w := header(order, OpChangeProperty, mode, size)
	w.PutUint32(4, uint32(win))
	w.PutUint32(8, uint32(property))
	w.PutUint32(12, uint32(typ))
	w.PutUint8(16, format)
	w.PutUint32(20, uint32(unitLen))
	w.PutBytes(24, data)
	return w.Bytes()
}

// EncodeDeleteProperty builds opcode 19.
func EncodeDeleteProperty(order binary.ByteOrder, win Window, property Atom) []byte {
	w := header(order, OpDeleteProperty, 0, 12)
	w.PutUint32(4, uint32(win))
	w.PutUint32(8, uint32(property))
	return w.Bytes()
}

// EncodeGetProperty builds opcode 20.
func EncodeGetProperty(order binary.ByteOrder, delete bool, win Window, property, typ Atom, longOffset, longLength uint32) []byte {
	w := header(order, OpGetProperty, boolDetail(delete), 24)
	w.PutUint32(4, uint32(win))
	w.PutUint32(8, uint32(property))
	w.PutUint32(12, uint32(typ))
	w.PutUint32(16, longOffset)
	w.PutUint32(20, longLength)
	return w.Bytes()
}

func boolDetail(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// EncodeSetSelectionOwner builds opcode 22.
func EncodeSetSelectionOwner(order binary.ByteOrder, owner Window, selection Atom, t Timestamp) []byte {
	w := header(order, OpSetSelectionOwner, 0, 16)
	w.PutUint32(4, uint32(owner))
	w.PutUint32(8, uint32(selection))
	w.PutUint32(12, uint32(t))
	return w.Bytes()
}

// EncodeGetSelectionOwner builds opcode 23.
func EncodeGetSelectionOwner(order binary.ByteOrder, selection Atom) []byte {
	w := header(order, OpGetSelectionOwner, 0, 8)
	w.PutUint32(4, uint32(selection))
	return w.Bytes()
}

// EncodeConvertSelection builds opcode 24.
func EncodeConvertSelection(order binary.ByteOrder, requestor Window, selection, target, property Atom, t Timestamp) []byte {
	w := header(order, OpConvertSelection, 0, 24)
	w.PutUint32(4, uint32(requestor))
	w.PutUint32(8, uint32(selection))
	w.PutUint32(12, uint32(target))
	w.PutUint32(16, uint32(property))
	w.PutUint32(20, uint32(t))
	return w.Bytes()
}

// EncodeSendEvent builds opcode 25. eventData must be exactly the 32-byte
// wire encoding of the event being forwarded.
func EncodeSendEvent(order binary.ByteOrder, propagate bool, destination Window, eventMask uint32, eventData [32]byte) []byte {
	w := header(order, OpSendEvent, boolDetail(propagate), 44)
	w.PutUint32(4, uint32(destination))
	w.PutUint32(8, eventMask)
	w.PutBytes(12, eventData[:])
	return w.Bytes()
}

// GrabMode values.
const (
	GrabModeSync  uint8 = 0
	GrabModeAsync uint8 = 1
)

// EncodeGrabPointer builds opcode 26.
func EncodeGrabPointer(order binary.ByteOrder, ownerEvents bool, grabWindow Window, eventMask uint16, pointerMode, keyboardMode uint8, confineTo Window, cursor Cursor, t Timestamp) []byte {
	w := header(order, OpGrabPointer, boolDetail(ownerEvents), 24)
	w.PutUint32(4, uint32(grabWindow))
	w.PutUint16(8, eventMask)
	w.PutUint8(10, pointerMode)
	w.PutUint8(11, keyboardMode)
	w.PutUint32(12, uint32(confineTo))
	w.PutUint32(16, uint32(cursor))
	w.PutUint32(20, uint32(t))
	return w.Bytes()
}

// EncodeUngrabPointer builds opcode 27.
func EncodeUngrabPointer(order binary.ByteOrder, t Timestamp) []byte {
	w := header(order, OpUngrabPointer, 0, 8)
	w.PutUint32(4, uint32(t))
	return w.Bytes()
}

// EncodeGrabKeyboard builds opcode 31.
func EncodeGrabKeyboard(order binary.ByteOrder, ownerEvents bool, grabWindow Window, t Timestamp, pointerMode, keyboardMode uint8) []byte {
	w := header(order, OpGrabKeyboard, boolDetail(ownerEvents), 16)
	w.PutUint32(4, uint32(grabWindow))
	w.PutUint32(8, uint32(t))
	w.PutUint8(12, pointerMode)
	w.PutUint8(13, keyboardMode)
	return w.Bytes()
}

// EncodeUngrabKeyboard builds opcode 32.
func EncodeUngrabKeyboard(order binary.ByteOrder, t Timestamp) []byte {
	w := header(order, OpUngrabKeyboard, 0, 8)
	w.PutUint32(4, uint32(t))
	return w.Bytes()
}

// EncodeGrabServer/UngrabServer build opcodes 36/37: header only.
func EncodeGrabServer(order binary.ByteOrder) []byte   { return header(order, OpGrabServer, 0, 4).Bytes() }
func EncodeUngrabServer(order binary.ByteOrder) []byte { return header(order, OpUngrabServer, 0, 4).Bytes() }

// EncodeTranslateCoordinates builds opcode 40.
func EncodeTranslateCoordinates(order binary.ByteOrder, srcWindow, dstWindow Window, srcX, srcY int16) []byte {
	w := header(order, OpTranslateCoordinates, 0, 16)
	w.PutUint32(4, uint32(srcWindow))
	w.PutUint32(8, uint32(dstWindow))
	w.PutInt16(12, srcX)
	w.PutInt16(14, srcY)
	return w.Bytes()
}

// EncodeWarpPointer builds opcode 41.
func EncodeWarpPointer(order binary.ByteOrder, srcWindow, dstWindow Window, srcX, srcY int16, srcWidth, srcHeight uint16, dstX, dstY int16) []byte {
	w := header(order, OpWarpPointer, 0, 24)
	w.PutUint32(4, uint32(srcWindow))
	w.PutUint32(8, uint32(dstWindow))
	w.PutInt16(12, srcX)
	w.PutInt16(14, srcY)
	w.PutUint16(16, srcWidth)
	w.PutUint16(18, srcHeight)
	w.PutInt16(20, dstX)
	w.PutInt16(22, dstY)
	return w.Bytes()
}

// RevertTo values for SetInputFocus.
const (
	RevertToNone       uint8 = 0
	RevertToPointerRoot uint8 = 1
	RevertToParent      uint8 = 2
)

// EncodeSetInputFocus builds opcode 42.
func EncodeSetInputFocus(order binary.ByteOrder, revertTo uint8, focus Window, t Timestamp) []byte {
	w := header(order, OpSetInputFocus, revertTo, 12)
	w.PutUint32(4, uint32(focus))
	w.PutUint32(8, uint32(t))
	return w.Bytes()
}

// EncodeGetInputFocus builds opcode 43: header only.
func EncodeGetInputFocus(order binary.ByteOrder) []byte {
	return header(order, OpGetInputFocus, 0, 4).Bytes()
}

// EncodeQueryKeymap builds opcode 44: header only.
func EncodeQueryKeymap(order binary.ByteOrder) []byte {
	return header(order, OpQueryKeymap, 0, 4).Bytes()
}

// EncodeOpenFont builds opcode 45.
func EncodeOpenFont(order binary.ByteOrder, fid Font, name string) []byte {
	n := len(name)
	size := RoundUp4(12 + n)
	w := header(order, OpOpenFont, 0, size)
	w.PutUint32(4, uint32(fid))
	w.PutUint16(8, uint16(n))
	w.PutString(12, name)
	return w.Bytes()
}

// EncodeCloseFont builds opcode 46.
func EncodeCloseFont(order binary.ByteOrder, fid Font) []byte {
	w := header(order, OpCloseFont, 0, 8)
	w.PutUint32(4, uint32(fid))
	return w.Bytes()
}

// EncodeQueryFont builds opcode 47.
func EncodeQueryFont(order binary.ByteOrder, fontable uint32) []byte {
	w := header(order, OpQueryFont, 0, 8)
	w.PutUint32(4, fontable)
	return w.Bytes()
}

// EncodeListFonts builds opcode 49.
func EncodeListFonts(order binary.ByteOrder, maxNames uint16, pattern string) []byte {
	n := len(pattern)
	size := RoundUp4(8 + n)
	w := header(order, OpListFonts, 0, size)
	w.PutUint16(4, maxNames)
	w.PutUint16(6, uint16(n))
	w.PutString(8, pattern)
	return w.Bytes()
}

// EncodeCreatePixmap builds opcode 53.
func EncodeCreatePixmap(order binary.ByteOrder, depth uint8, pid Pixmap, drawable Drawable, width, height uint16) []byte {
	w := header(order, OpCreatePixmap, depth, 16)
	w.PutUint32(4, uint32(pid))
	w.PutUint32(8, uint32(drawable))
	w.PutUint16(12, width)
	w.PutUint16(14, height)
	return w.Bytes()
}

// EncodeFreePixmap builds opcode 54.
func EncodeFreePixmap(order binary.ByteOrder, p Pixmap) []byte {
	w := header(order, OpFreePixmap, 0, 8)
	w.PutUint32(4, uint32(p))
	return w.Bytes()
}

// EncodeCreateGC builds opcode 55.
func EncodeCreateGC(order binary.ByteOrder, gc GContext, drawable Drawable, values GraphicsContextValue) []byte {
	mask, cells := values.Encode()
	size := RoundUp4(12 + 4 + 4*len(cells))
	w := header(order, OpCreateGC, 0, size)
	w.PutUint32(4, uint32(gc))
	w.PutUint32(8, uint32(drawable))
	w.PutUint32(12, mask)
	off := 16
	for _, c := range cells {
		w.PutUint32(off, c)
		off += 4
	}
	return w.Bytes()
}

// EncodeChangeGC builds opcode 56.
func EncodeChangeGC(order binary.ByteOrder, gc GContext, values GraphicsContextValue) []byte {
	mask, cells := values.Encode()
	size := RoundUp4(8 + 4 + 4*len(cells))
	w := header(order, OpChangeGC, 0, size)
	w.PutUint32(4, uint32(gc))
	w.PutUint32(8, mask)
	off := 12
	for _, c := range cells {
		w.PutUint32(off, c)
		off += 4
	}
	return w.Bytes()
}

// EncodeFreeGC builds opcode 60.
func EncodeFreeGC(order binary.ByteOrder, gc GContext) []byte {
	w := header(order, OpFreeGC, 0, 8)
	w.PutUint32(4, uint32(gc))
	return w.Bytes()
}

// EncodeClearArea builds opcode 61.
func EncodeClearArea(order binary.ByteOrder, exposures bool, win Window, x, y int16, width, height uint16) []byte {
	w := header(order, OpClearArea, boolDetail(exposures), 16)
	w.PutUint32(4, uint32(win))
	w.PutInt16(8, x)
	w.PutInt16(10, y)
	w.PutUint16(12, width)
	w.PutUint16(14, height)
	return w.Bytes()
}

// EncodeCopyArea builds opcode 62.
func EncodeCopyArea(order binary.ByteOrder, srcDrawable, dstDrawable Drawable, gc GContext, srcX, srcY, dstX, dstY int16, width, height uint16) []byte {
	w := header(order, OpCopyArea, 0, 28)
	w.PutUint32(4, uint32(srcDrawable))
	w.PutUint32(8, uint32(dstDrawable))
	w.PutUint32(12, uint32(gc))
	w.PutInt16(16, srcX)
	w.PutInt16(18, srcY)
	w.PutInt16(20, dstX)
	w.PutInt16(22, dstY)
	w.PutUint16(24, width)
	w.PutUint16(26, height)
	return w.Bytes()
}

// EncodePolyPoint builds opcode 64 (PolyPoint). PolyLine (65) and
// PolyRectangle (67) have their own encoders below; coordinateMode:
// 0 = Origin, 1 = Previous.
func EncodePolyPoint(order binary.ByteOrder, coordinateMode uint8, drawable Drawable, gc GContext, points []Point) []byte {
	size := RoundUp4(12 + 4*len(points))
	w := header(order, OpPolyPoint, coordinateMode, size)
	w.PutUint32(4, uint32(drawable))
	w.PutUint32(8, uint32(gc))
	off := 12
	for _, p := range points {
		w.PutInt16(off, p.X)
		w.PutInt16(off+2, p.Y)
		off += 4
	}
	return w.Bytes()
}

// EncodePolyLine builds opcode 65.
func EncodePolyLine(order binary.ByteOrder, coordinateMode uint8, drawable Drawable, gc GContext, points []Point) []byte {
	size := RoundUp4(12 + 4*len(points))
	w := header(order, OpPolyLine, coordinateMode, size)
	w.PutUint32(4, uint32(drawable))
	w.PutUint32(8, uint32(gc))
	off := 12
	for _, p := range points {
		w.PutInt16(off, p.X)
		w.PutInt16(off+2, p.Y)
		off += 4
	}
	return w.Bytes()
}

// EncodePolyRectangle builds opcode 67.
func EncodePolyRectangle(order binary.ByteOrder, drawable Drawable, gc GContext, rects []Rectangle) []byte {
	size := RoundUp4(12 + 8*len(rects))
	w := header(order, OpPolyRectangle, 0, size)
	w.PutUint32(4, uint32(drawable))
	w.PutUint32(8, uint32(gc))
	off := 12
	for _, r := range rects {
		w.PutInt16(off, r.X)
		w.PutInt16(off+2, r.Y)
		w.PutUint16(off+4, r.Width)
		w.PutUint16(off+6, r.Height)
		off += 8
	}
	return w.Bytes()
}

// EncodePolyFillRectangle builds opcode 70.
func EncodePolyFillRectangle(order binary.ByteOrder, drawable Drawable, gc GContext, rects []Rectangle) []byte {
	size := RoundUp4(12 + 8*len(rects))
	w := header(order, OpPolyFillRectangle, 0, size)
	w.PutUint32(4, uint32(drawable))
	w.PutUint32(8, uint32(gc))
	off := 12
	for _, r := range rects {
		w.PutInt16(off, r.X)
		w.PutInt16(off+2, r.Y)
		w.PutUint16(off+4, r.Width)
		w.PutUint16(off+6, r.Height)
		off += 8
	}
	return w.Bytes()
}

// ImageFormat values for PutImage/GetImage.
const (
	ImageFormatBitmap uint8 = 0
	ImageFormatXYPixmap uint8 = 1
	ImageFormatZPixmap  uint8 = 2
)

// EncodePutImage builds opcode 72.
func EncodePutImage(order binary.ByteOrder, format uint8, drawable Drawable, gc GContext, width, height uint16, dstX, dstY int16, leftPad, depth uint8, data []byte) []byte {
	size := RoundUp4(24 + len(data))
	w := header(order, OpPutImage, format, size)
	w.PutUint32(4, uint32(drawable))
	w.PutUint32(8, uint32(gc))
	w.PutUint16(12, width)
	w.PutUint16(14, height)
	w.PutInt16(16, dstX)
	w.PutInt16(18, dstY)
	w.PutUint8(20, leftPad)
	w.PutUint8(21, depth)
	w.PutBytes(24, data)
	return w.Bytes()
}

// EncodeGetImage builds opcode 73.
func EncodeGetImage(order binary.ByteOrder, format uint8, drawable Drawable, x, y int16, width, height uint16, planeMask uint32) []byte {
	w := header(order, OpGetImage, format, 20)
	w.PutUint32(4, uint32(drawable))
	w.PutInt16(8, x)
	w.PutInt16(10, y)
	w.PutUint16(12, width)
	w.PutUint16(14, height)
	w.PutUint32(16, planeMask)
	return w.Bytes()
}

// EncodeCreateColormap builds opcode 78.
func EncodeCreateColormap(order binary.ByteOrder, alloc uint8, cmap Colormap, win Window, visual VisualID) []byte {
	w := header(order, OpCreateColormap, alloc, 16)
	w.PutUint32(4, uint32(cmap))
	w.PutUint32(8, uint32(win))
	w.PutUint32(12, uint32(visual))
	return w.Bytes()
}

// EncodeFreeColormap builds opcode 79.
func EncodeFreeColormap(order binary.ByteOrder, cmap Colormap) []byte {
	w := header(order, OpFreeColormap, 0, 8)
	w.PutUint32(4, uint32(cmap))
	return w.Bytes()
}

// EncodeAllocColor builds opcode 84.
func EncodeAllocColor(order binary.ByteOrder, cmap Colormap, red, green, blue uint16) []byte {
	w := header(order, OpAllocColor, 0, 16)
	w.PutUint32(4, uint32(cmap))
	w.PutUint16(8, red)
	w.PutUint16(10, green)
	w.PutUint16(12, blue)
	return w.Bytes()
}

// EncodeAllocNamedColor builds opcode 85.
func EncodeAllocNamedColor(order binary.ByteOrder, cmap Colormap, name string) []byte {
	n := len(name)
	size := RoundUp4(12 + n)
	w := header(order, OpAllocNamedColor, 0, size)
	w.PutUint32(4, uint32(cmap))
	w.PutUint16(8, uint16(n))
	w.PutString(12, name)
	return w.Bytes()
}

// EncodeFreeColors builds opcode 88.
func EncodeFreeColors(order binary.ByteOrder, cmap Colormap, planeMask uint32, pixels []uint32) []byte {
	size := RoundUp4(12 + 4*len(pixels))
	w := header(order, OpFreeColors, 0, size)
	w.PutUint32(4, uint32(cmap))
	w.PutUint32(8, planeMask)
	off := 12
	for _, p := range pixels {
		w.PutUint32(off, p)
		off += 4
	}
	return w.Bytes()
}

// EncodeCreateGlyphCursor builds opcode 94.
func EncodeCreateGlyphCursor(order binary.ByteOrder, cursor Cursor, sourceFont, maskFont Font, sourceChar, maskChar uint16, foreRed, foreGreen, foreBlue, backRed, backGreen, backBlue uint16) []byte {
	w := header(order, OpCreateGlyphCursor, 0, 32)
	w.PutUint32(4, uint32(cursor))
	w.PutUint32(8, uint32(sourceFont))
	w.PutUint32(12, uint32(maskFont))
	w.PutUint16(16, sourceChar)
	w.PutUint16(18, maskChar)
	w.PutUint16(20, foreRed)
	w.PutUint16(22, foreGreen)
	w.PutUint16(24, foreBlue)
	w.PutUint16(26, backRed)
	w.PutUint16(28, backGreen)
	w.PutUint16(30, backBlue)
	return w.Bytes()
}

// EncodeFreeCursor builds opcode 95.
func EncodeFreeCursor(order binary.ByteOrder, cursor Cursor) []byte {
	w := header(order, OpFreeCursor, 0, 8)
	w.PutUint32(4, uint32(cursor))
	return w.Bytes()
}

// EncodeQueryExtension builds opcode 98.
func EncodeQueryExtension(order binary.ByteOrder, name string) []byte {
	n := len(name)
	size := RoundUp4(8 + n)
	w := header(order, OpQueryExtension, 0, size)
	w.PutUint16(4, uint16(n))
	w.PutString(8, name)
	return w.Bytes()
}

// EncodeListExtensions builds opcode 99: header only.
func EncodeListExtensions(order binary.ByteOrder) []byte {
	return header(order, OpListExtensions, 0, 4).Bytes()
}

// EncodeChangeKeyboardControl builds opcode 102.
func EncodeChangeKeyboardControl(order binary.ByteOrder, values KeyboardControlValue) []byte {
	mask, cells := values.Encode()
	size := RoundUp4(8 + 4*len(cells))
	w := header(order, OpChangeKeyboardControl, 0, size)
	w.PutUint32(4, uint32(mask))
	off := 8
	for _, c := range cells {
		w.PutUint32(off, c)
		off += 4
	}
	return w.Bytes()
}

// EncodeGetKeyboardControl builds opcode 103: header only.
func EncodeGetKeyboardControl(order binary.ByteOrder) []byte {
	return header(order, OpGetKeyboardControl, 0, 4).Bytes()
}

// EncodeBell builds opcode 104. percent is a signed -100..100 offset from
// the base bell volume, carried in the detail byte as the wire defines it.
func EncodeBell(order binary.ByteOrder, percent int8) []byte {
	return header(order, OpBell, uint8(percent), 4).Bytes()
}

// EncodeGetKeyboardMapping builds opcode 101.
func EncodeGetKeyboardMapping(order binary.ByteOrder, firstKeycode KeyCode, count uint8) []byte {
	w := header(order, OpGetKeyboardMapping, 0, 8)
	w.PutUint8(4, uint8(firstKeycode))
	w.PutUint8(5, count)
	return w.Bytes()
}

// EncodeChangeKeyboardMapping builds opcode 100. keysymsPerKeycode*count
// must equal len(keysyms).
func EncodeChangeKeyboardMapping(order binary.ByteOrder, firstKeycode KeyCode, keysymsPerKeycode, count uint8, keysyms []KeySym) []byte {
	size := RoundUp4(8 + 4*len(keysyms))
	w := header(order, OpChangeKeyboardMapping, count, size)
	w.PutUint8(4, uint8(firstKeycode))
	w.PutUint8(5, keysymsPerKeycode)
	off := 8
	for _, k := range keysyms {
		w.PutUint32(off, uint32(k))
		off += 4
	}
	return w.Bytes()
}

// EncodeKillClient builds opcode 113.
func EncodeKillClient(order binary.ByteOrder, resource uint32) []byte {
	w := header(order, OpKillClient, 0, 8)
	w.PutUint32(4, resource)
	return w.Bytes()
}

// EncodeNoOperation builds opcode 127: header only, optionally padded to
// extraWords additional words of zero (some servers require a minimum
// request length; most callers pass 0).
func EncodeNoOperation(order binary.ByteOrder, extraWords int) []byte {
	return header(order, OpNoOperation, 0, 4+4*extraWords).Bytes()
}

// EncodeEnableBigRequests builds the BIG-REQUESTS extension's sole
// request. major is the extension's dynamically assigned major opcode,
// learned from QueryExtension.
func EncodeEnableBigRequests(order binary.ByteOrder, major Opcode) []byte {
	w := header(order, major, 0, 4)
	return w.Bytes()
}
