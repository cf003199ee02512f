package client

import (
	"fmt"

	"github.com/x11wire/x11c/proto"
)

// fireAndForget sends a request that returns no reply and surfaces only
// transport-level failures; any server-side error arrives later,
// asynchronously, through Next() — correlated by sequence number, not by
// this call's return value, exactly as the core protocol specifies for
// every non-reply request.
func (c *Client) fireAndForget(raw []byte) error {
	_, err := c.send(raw, proto.ReplyNone)
	return err
}

// CreateWindow issues opcode 1 for the window id the caller passed in
// a.Window (allocate it with NewID before calling); it returns only a
// transport error, since the server never echoes the id back.
func (c *Client) CreateWindow(a proto.CreateWindowArgs) error {
	return c.fireAndForget(proto.EncodeCreateWindow(c.order, a))
}

// ChangeWindowAttributes issues opcode 2.
func (c *Client) ChangeWindowAttributes(win proto.Window, values proto.WindowValue) error {
	return c.fireAndForget(proto.EncodeChangeWindowAttributes(c.order, win, values))
}

// GetWindowAttributes issues opcode 3 and waits for its reply.
func (c *Client) GetWindowAttributes(win proto.Window) (*proto.GetWindowAttributesReply, error) {
	seq, err := c.send(proto.EncodeSimpleWindowRequest(c.order, proto.OpGetWindowAttributes, win), proto.ReplyGetWindowAttributes)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetWindowAttributesReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GetWindowAttributes")
	}
	return reply, nil
}

// DestroyWindow issues opcode 4.
func (c *Client) DestroyWindow(win proto.Window) error {
	return c.fireAndForget(proto.EncodeSimpleWindowRequest(c.order, proto.OpDestroyWindow, win))
}

// DestroySubwindows issues opcode 5.
func (c *Client) DestroySubwindows(win proto.Window) error {
	return c.fireAndForget(proto.EncodeSimpleWindowRequest(c.order, proto.OpDestroySubwindows, win))
}

// MapWindow issues opcode 8.
func (c *Client) MapWindow(win proto.Window) error {
	return c.fireAndForget(proto.EncodeSimpleWindowRequest(c.order, proto.OpMapWindow, win))
}

// MapSubwindows issues opcode 9.
func (c *Client) MapSubwindows(win proto.Window) error {
	return c.fireAndForget(proto.EncodeSimpleWindowRequest(c.order, proto.OpMapSubwindows, win))
}

// UnmapWindow issues opcode 10.
func (c *Client) UnmapWindow(win proto.Window) error {
	return c.fireAndForget(proto.EncodeSimpleWindowRequest(c.order, proto.OpUnmapWindow, win))
}

// UnmapSubwindows issues opcode 11.
func (c *Client) UnmapSubwindows(win proto.Window) error {
	return c.fireAndForget(proto.EncodeSimpleWindowRequest(c.order, proto.OpUnmapSubwindows, win))
}

// ConfigureWindow issues opcode 12.
func (c *Client) ConfigureWindow(win proto.Window, values proto.ConfigureWindowValue) error {
	return c.fireAndForget(proto.EncodeConfigureWindow(c.order, win, values))
}

// CirculateWindow issues opcode 13 with the fixed CirculateWindow opcode
// (never the UnmapSubwindows opcode a known defective implementation
// emits; see DESIGN.md).
func (c *Client) CirculateWindow(win proto.Window, direction uint8) error {
	return c.fireAndForget(proto.EncodeCirculateWindow(c.order, win, direction))
}

// GetGeometry issues opcode 14 against any Drawable and waits for its reply.
func (c *Client) GetGeometry(drawable proto.Drawable) (*proto.GetGeometryReply, error) {
	seq, err := c.send(proto.EncodeSimpleWindowRequest(c.order, proto.OpGetGeometry, proto.Window(drawable)), proto.ReplyGetGeometry)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetGeometryReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GetGeometry")
	}
	return reply, nil
}

// QueryTree issues opcode 15 and waits for its reply.
func (c *Client) QueryTree(win proto.Window) (*proto.QueryTreeReply, error) {
	seq, err := c.send(proto.EncodeSimpleWindowRequest(c.order, proto.OpQueryTree, win), proto.ReplyQueryTree)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.QueryTreeReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for QueryTree")
	}
	return reply, nil
}

// GetAtomName issues opcode 17 and waits for its reply. It deliberately
// does not consult or populate the atom-name cache (the cache only ever
// maps name -> Atom; see DESIGN.md).
func (c *Client) GetAtomName(atom proto.Atom) (string, error) {
	seq, err := c.send(proto.EncodeGetAtomName(c.order, atom), proto.ReplyGetAtomName)
	if err != nil {
		return "", err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return "", err
	}
	if resp.Err != nil {
		return "", resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetAtomNameReply)
	if !ok {
		return "", fmt.Errorf("x11: unexpected reply type for GetAtomName")
	}
	return reply.Name, nil
}

// ChangeProperty issues opcode 18.
func (c *Client) ChangeProperty(mode uint8, win proto.Window, property, typ proto.Atom, format uint8, data []byte) error {
	return c.fireAndForget(proto.EncodeChangeProperty(c.order, mode, win, property, typ, format, data))
}

// DeleteProperty issues opcode 19.
func (c *Client) DeleteProperty(win proto.Window, property proto.Atom) error {
	return c.fireAndForget(proto.EncodeDeleteProperty(c.order, win, property))
}

// GetProperty issues opcode 20 and waits for its reply.
func (c *Client) GetProperty(delete bool, win proto.Window, property, typ proto.Atom, longOffset, longLength uint32) (*proto.GetPropertyReply, error) {
	seq, err := c.send(proto.EncodeGetProperty(c.order, delete, win, property, typ, longOffset, longLength), proto.ReplyGetProperty)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetPropertyReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GetProperty")
	}
	return reply, nil
}

// ListProperties issues opcode 21 and waits for its reply.
func (c *Client) ListProperties(win proto.Window) (*proto.ListPropertiesReply, error) {
	seq, err := c.send(proto.EncodeSimpleWindowRequest(c.order, proto.OpListProperties, win), proto.ReplyListProperties)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.ListPropertiesReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for ListProperties")
	}
	return reply, nil
}

// SetSelectionOwner issues opcode 22.
func (c *Client) SetSelectionOwner(owner proto.Window, selection proto.Atom, t proto.Timestamp) error {
	return c.fireAndForget(proto.EncodeSetSelectionOwner(c.order, owner, selection, t))
}

// GetSelectionOwner issues opcode 23 and waits for its reply.
func (c *Client) GetSelectionOwner(selection proto.Atom) (proto.Window, error) {
	seq, err := c.send(proto.EncodeGetSelectionOwner(c.order, selection), proto.ReplyGetSelectionOwner)
	if err != nil {
		return 0, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return 0, err
	}
	if resp.Err != nil {
		return 0, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetSelectionOwnerReply)
	if !ok {
		return 0, fmt.Errorf("x11: unexpected reply type for GetSelectionOwner")
	}
	return reply.Owner, nil
}

// ConvertSelection issues opcode 24; the outcome arrives asynchronously
// as a SelectionNotifyEvent, not as a reply.
func (c *Client) ConvertSelection(requestor proto.Window, selection, target, property proto.Atom, t proto.Timestamp) error {
	return c.fireAndForget(proto.EncodeConvertSelection(c.order, requestor, selection, target, property, t))
}

// GrabPointer issues opcode 26 and waits for its reply.
func (c *Client) GrabPointer(ownerEvents bool, grabWindow proto.Window, eventMask uint16, pointerMode, keyboardMode uint8, confineTo proto.Window, cursor proto.Cursor, t proto.Timestamp) (*proto.GrabPointerReply, error) {
	seq, err := c.send(proto.EncodeGrabPointer(c.order, ownerEvents, grabWindow, eventMask, pointerMode, keyboardMode, confineTo, cursor, t), proto.ReplyGrabPointer)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GrabPointerReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GrabPointer")
	}
	return reply, nil
}

// UngrabPointer issues opcode 27.
func (c *Client) UngrabPointer(t proto.Timestamp) error {
	return c.fireAndForget(proto.EncodeUngrabPointer(c.order, t))
}

// GrabKeyboard issues opcode 31 and waits for its reply.
func (c *Client) GrabKeyboard(ownerEvents bool, grabWindow proto.Window, t proto.Timestamp, pointerMode, keyboardMode uint8) (*proto.GrabKeyboardReply, error) {
	seq, err := c.send(proto.EncodeGrabKeyboard(c.order, ownerEvents, grabWindow, t, pointerMode, keyboardMode), proto.ReplyGrabKeyboard)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GrabKeyboardReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GrabKeyboard")
	}
	return reply, nil
}

// UngrabKeyboard issues opcode 32.
func (c *Client) UngrabKeyboard(t proto.Timestamp) error {
	return c.fireAndForget(proto.EncodeUngrabKeyboard(c.order, t))
}

// GrabServer/UngrabServer issue opcodes 36/37.
func (c *Client) GrabServer() error   { return c.fireAndForget(proto.EncodeGrabServer(c.order)) }
func (c *Client) UngrabServer() error { return c.fireAndForget(proto.EncodeUngrabServer(c.order)) }

// QueryPointer issues opcode 38 and waits for its reply.
func (c *Client) QueryPointer(win proto.Window) (*proto.QueryPointerReply, error) {
	seq, err := c.send(proto.EncodeSimpleWindowRequest(c.order, proto.OpQueryPointer, win), proto.ReplyQueryPointer)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.QueryPointerReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for QueryPointer")
	}
	return reply, nil
}

// TranslateCoordinates issues opcode 40 and waits for its reply.
func (c *Client) TranslateCoordinates(src, dst proto.Window, srcX, srcY int16) (*proto.TranslateCoordinatesReply, error) {
	seq, err := c.send(proto.EncodeTranslateCoordinates(c.order, src, dst, srcX, srcY), proto.ReplyTranslateCoordinates)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.TranslateCoordinatesReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for TranslateCoordinates")
	}
	return reply, nil
}

// WarpPointer issues opcode 41.
func (c *Client) WarpPointer(src, dst proto.Window, srcX, srcY int16, srcW, srcH uint16, dstX, dstY int16) error {
	return c.fireAndForget(proto.EncodeWarpPointer(c.order, src, dst, srcX, srcY, srcW, srcH, dstX, dstY))
}

// SetInputFocus issues opcode 42.
func (c *Client) SetInputFocus(revertTo uint8, focus proto.Window, t proto.Timestamp) error {
	return c.fireAndForget(proto.EncodeSetInputFocus(c.order, revertTo, focus, t))
}

// GetInputFocus issues opcode 43 and waits for its reply.
func (c *Client) GetInputFocus() (*proto.GetInputFocusReply, error) {
	seq, err := c.send(proto.EncodeGetInputFocus(c.order), proto.ReplyGetInputFocus)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetInputFocusReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GetInputFocus")
	}
	return reply, nil
}

// QueryKeymap issues opcode 44 and waits for its reply.
func (c *Client) QueryKeymap() (*proto.QueryKeymapReply, error) {
	seq, err := c.send(proto.EncodeQueryKeymap(c.order), proto.ReplyQueryKeymap)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.QueryKeymapReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for QueryKeymap")
	}
	return reply, nil
}

// OpenFont issues opcode 45; fid must already be allocated with NewID.
func (c *Client) OpenFont(fid proto.Font, name string) error {
	return c.fireAndForget(proto.EncodeOpenFont(c.order, fid, name))
}

// CloseFont issues opcode 46.
func (c *Client) CloseFont(fid proto.Font) error {
	return c.fireAndForget(proto.EncodeCloseFont(c.order, fid))
}

// QueryFont issues opcode 47 and waits for its reply.
func (c *Client) QueryFont(fontable uint32) (*proto.QueryFontReply, error) {
	seq, err := c.send(proto.EncodeQueryFont(c.order, fontable), proto.ReplyQueryFont)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.QueryFontReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for QueryFont")
	}
	return reply, nil
}

// ListFonts issues opcode 49 and waits for its reply.
func (c *Client) ListFonts(maxNames uint16, pattern string) (*proto.ListFontsReply, error) {
	seq, err := c.send(proto.EncodeListFonts(c.order, maxNames, pattern), proto.ReplyListFonts)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.ListFontsReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for ListFonts")
	}
	return reply, nil
}

// CreatePixmap issues opcode 53; pid must already be allocated with NewID.
func (c *Client) CreatePixmap(depth uint8, pid proto.Pixmap, drawable proto.Drawable, width, height uint16) error {
	return c.fireAndForget(proto.EncodeCreatePixmap(c.order, depth, pid, drawable, width, height))
}

// FreePixmap issues opcode 54.
func (c *Client) FreePixmap(p proto.Pixmap) error {
	return c.fireAndForget(proto.EncodeFreePixmap(c.order, p))
}

// CreateGC issues opcode 55; gc must already be allocated with NewID.
func (c *Client) CreateGC(gc proto.GContext, drawable proto.Drawable, values proto.GraphicsContextValue) error {
	return c.fireAndForget(proto.EncodeCreateGC(c.order, gc, drawable, values))
}

// ChangeGC issues opcode 56.
func (c *Client) ChangeGC(gc proto.GContext, values proto.GraphicsContextValue) error {
	return c.fireAndForget(proto.EncodeChangeGC(c.order, gc, values))
}

// FreeGC issues opcode 60.
func (c *Client) FreeGC(gc proto.GContext) error {
	return c.fireAndForget(proto.EncodeFreeGC(c.order, gc))
}

// ClearArea issues opcode 61.
func (c *Client) ClearArea(exposures bool, win proto.Window, x, y int16, width, height uint16) error {
	return c.fireAndForget(proto.EncodeClearArea(c.order, exposures, win, x, y, width, height))
}

// CopyArea issues opcode 62.
func (c *Client) CopyArea(src, dst proto.Drawable, gc proto.GContext, srcX, srcY, dstX, dstY int16, width, height uint16) error {
	return c.fireAndForget(proto.EncodeCopyArea(c.order, src, dst, gc, srcX, srcY, dstX, dstY, width, height))
}

// PolyLine issues opcode 65.
func (c *Client) PolyLine(coordinateMode uint8, drawable proto.Drawable, gc proto.GContext, points []proto.Point) error {
	return c.fireAndForget(proto.EncodePolyLine(c.order, coordinateMode, drawable, gc, points))
}

// PolyRectangle issues opcode 67.
func (c *Client) PolyRectangle(drawable proto.Drawable, gc proto.GContext, rects []proto.Rectangle) error {
	return c.fireAndForget(proto.EncodePolyRectangle(c.order, drawable, gc, rects))
}

// PolyFillRectangle issues opcode 70.
func (c *Client) PolyFillRectangle(drawable proto.Drawable, gc proto.GContext, rects []proto.Rectangle) error {
	return c.fireAndForget(proto.EncodePolyFillRectangle(c.order, drawable, gc, rects))
}

// PutImage issues opcode 72.
func (c *Client) PutImage(format uint8, drawable proto.Drawable, gc proto.GContext, width, height uint16, dstX, dstY int16, leftPad, depth uint8, data []byte) error {
	return c.fireAndForget(proto.EncodePutImage(c.order, format, drawable, gc, width, height, dstX, dstY, leftPad, depth, data))
}

// GetImage issues opcode 73 and waits for its reply.
func (c *Client) GetImage(format uint8, drawable proto.Drawable, x, y int16, width, height uint16, planeMask uint32) (*proto.GetImageReply, error) {
	seq, err := c.send(proto.EncodeGetImage(c.order, format, drawable, x, y, width, height, planeMask), proto.ReplyGetImage)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetImageReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GetImage")
	}
	return reply, nil
}

// CreateColormap issues opcode 78; cmap must already be allocated with NewID.
func (c *Client) CreateColormap(alloc uint8, cmap proto.Colormap, win proto.Window, visual proto.VisualID) error {
	return c.fireAndForget(proto.EncodeCreateColormap(c.order, alloc, cmap, win, visual))
}

// FreeColormap issues opcode 79.
func (c *Client) FreeColormap(cmap proto.Colormap) error {
	return c.fireAndForget(proto.EncodeFreeColormap(c.order, cmap))
}

// AllocColor issues opcode 84 and waits for its reply.
func (c *Client) AllocColor(cmap proto.Colormap, red, green, blue uint16) (*proto.AllocColorReply, error) {
	seq, err := c.send(proto.EncodeAllocColor(c.order, cmap, red, green, blue), proto.ReplyAllocColor)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.AllocColorReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for AllocColor")
	}
	return reply, nil
}

// FreeColors issues opcode 88.
func (c *Client) FreeColors(cmap proto.Colormap, planeMask uint32, pixels []uint32) error {
	return c.fireAndForget(proto.EncodeFreeColors(c.order, cmap, planeMask, pixels))
}

// CreateGlyphCursor issues opcode 94; cursor must already be allocated
// with NewID.
func (c *Client) CreateGlyphCursor(cursor proto.Cursor, sourceFont, maskFont proto.Font, sourceChar, maskChar uint16, foreR, foreG, foreB, backR, backG, backB uint16) error {
	return c.fireAndForget(proto.EncodeCreateGlyphCursor(c.order, cursor, sourceFont, maskFont, sourceChar, maskChar, foreR, foreG, foreB, backR, backG, backB))
}

// FreeCursor issues opcode 95.
func (c *Client) FreeCursor(cursor proto.Cursor) error {
	return c.fireAndForget(proto.EncodeFreeCursor(c.order, cursor))
}

// ListExtensions issues opcode 99 and waits for its reply.
func (c *Client) ListExtensions() (*proto.ListExtensionsReply, error) {
	seq, err := c.send(proto.EncodeListExtensions(c.order), proto.ReplyListExtensions)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.ListExtensionsReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for ListExtensions")
	}
	return reply, nil
}

// ChangeKeyboardMapping issues opcode 100.
func (c *Client) ChangeKeyboardMapping(firstKeycode proto.KeyCode, keysymsPerKeycode, count uint8, keysyms []proto.KeySym) error {
	return c.fireAndForget(proto.EncodeChangeKeyboardMapping(c.order, firstKeycode, keysymsPerKeycode, count, keysyms))
}

// GetKeyboardMapping issues opcode 101 and waits for its reply.
func (c *Client) GetKeyboardMapping(firstKeycode proto.KeyCode, count uint8) (*proto.GetKeyboardMappingReply, error) {
	seq, err := c.send(proto.EncodeGetKeyboardMapping(c.order, firstKeycode, count), proto.ReplyGetKeyboardMapping)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetKeyboardMappingReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GetKeyboardMapping")
	}
	return reply, nil
}

// ChangeKeyboardControl issues opcode 102.
func (c *Client) ChangeKeyboardControl(values proto.KeyboardControlValue) error {
	return c.fireAndForget(proto.EncodeChangeKeyboardControl(c.order, values))
}

// GetKeyboardControl issues opcode 103 and waits for its reply.
func (c *Client) GetKeyboardControl() (*proto.GetKeyboardControlReply, error) {
	seq, err := c.send(proto.EncodeGetKeyboardControl(c.order), proto.ReplyGetKeyboardControl)
	if err != nil {
		return nil, err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	reply, ok := resp.Reply.(*proto.GetKeyboardControlReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for GetKeyboardControl")
	}
	return reply, nil
}

// Bell issues opcode 104.
func (c *Client) Bell(percent int8) error {
	return c.fireAndForget(proto.EncodeBell(c.order, percent))
}

// KillClient issues opcode 113.
func (c *Client) KillClient(resource uint32) error {
	return c.fireAndForget(proto.EncodeKillClient(c.order, resource))
}

// NoOperation issues opcode 127.
func (c *Client) NoOperation() error {
	return c.fireAndForget(proto.EncodeNoOperation(c.order, 0))
}

// SendEvent issues opcode 25.
func (c *Client) SendEvent(propagate bool, destination proto.Window, eventMask uint32, eventData [32]byte) error {
	return c.fireAndForget(proto.EncodeSendEvent(c.order, propagate, destination, eventMask, eventData))
}
