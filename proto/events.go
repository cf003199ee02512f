package proto

import (
	"encoding/binary"
	"fmt"
)

// Event is any of the 33 core X11 events. Sent marks whether the 0x80
// synthetic-event bit was set on the wire (the event arrived via
// SendEvent rather than being generated directly by the server).
type Event interface {
	EventOpcode() uint8
	Sent() bool
}

type eventHeader struct {
	opcode uint8
	sent   bool
}

func (h eventHeader) EventOpcode() uint8 { return h.opcode }
func (h eventHeader) Sent() bool         { return h.sent }

// KeyEvent covers both KeyPress and KeyRelease; EventOpcode distinguishes them.
type KeyEvent struct {
	eventHeader
	Sequence              uint16
	Detail                KeyCode
	Time                  Timestamp
	Root, Event, Child    Window
	RootX, RootY          int16
	EventX, EventY        int16
	State                 uint16
	SameScreen            bool
}

// ButtonEvent covers both ButtonPress and ButtonRelease.
type ButtonEvent struct {
	eventHeader
	Sequence           uint16
	Detail             uint8
	Time               Timestamp
	Root, Event, Child Window
	RootX, RootY       int16
	EventX, EventY     int16
	State              uint16
	SameScreen         bool
}

// MotionNotifyEvent reports pointer movement.
type MotionNotifyEvent struct {
	eventHeader
	Sequence           uint16
	Detail             uint8 // Normal or Hint
	Time               Timestamp
	Root, Event, Child Window
	RootX, RootY       int16
	EventX, EventY     int16
	State              uint16
	SameScreen         bool
}

// CrossingEvent covers EnterNotify and LeaveNotify.
type CrossingEvent struct {
	eventHeader
	Sequence           uint16
	Detail             uint8
	Time               Timestamp
	Root, Event, Child Window
	RootX, RootY       int16
	EventX, EventY     int16
	State              uint16
	Mode               uint8
	SameScreenFocus    uint8 // packed SameScreen(bit0)/Focus(bit1)
}

// FocusInEvent reports the window gaining input focus.
type FocusInEvent struct {
	eventHeader
	Sequence uint16
	Detail   uint8
	Event    Window
	Mode     uint8
}

// FocusOutEvent reports the window losing input focus. It is decoded into
// its own distinct type, never aliased onto FocusInEvent.
type FocusOutEvent struct {
	eventHeader
	Sequence uint16
	Detail   uint8
	Event    Window
	Mode     uint8
}

// KeymapNotifyEvent carries the 31-byte keyboard bitmap that follows a
// KeymapNotify. It has no sequence number on the wire — there is no
// equivalent field to this event, unlike every other core event — so the
// Sequence field here always reads 0 and must not be used for response
// correlation.
type KeymapNotifyEvent struct {
	eventHeader
	Sequence uint16 // always 0; KeymapNotify carries no sequence number
	Keys     [31]byte
}

// ExposeEvent reports that a damaged rectangle needs redrawing.
type ExposeEvent struct {
	eventHeader
	Sequence              uint16
	Window                Window
	X, Y, Width, Height   uint16
	Count                 uint16
}

// GraphicsExposureEvent is sent in place of NoExposureEvent when a
// CopyArea/CopyPlane source region was partly obscured.
type GraphicsExposureEvent struct {
	eventHeader
	Sequence                  uint16
	Drawable                  Drawable
	X, Y, Width, Height       uint16
	MinorOpcode               uint16
	Count                     uint16
	MajorOpcode               Opcode
}

// NoExposureEvent reports that a CopyArea/CopyPlane source region was
// entirely unobscured.
type NoExposureEvent struct {
	eventHeader
	Sequence    uint16
	Drawable    Drawable
	MinorOpcode uint16
	MajorOpcode Opcode
}

// VisibilityNotifyEvent reports a change in window visibility state.
type VisibilityNotifyEvent struct {
	eventHeader
	Sequence uint16
	Window   Window
	State    uint8
}

// CreateNotifyEvent reports creation of a subwindow.
type CreateNotifyEvent struct {
	eventHeader
	Sequence                    uint16
	Parent, Window              Window
	X, Y                        int16
	Width, Height, BorderWidth  uint16
	OverrideRedirect            bool
}

// DestroyNotifyEvent reports destruction of a window.
type DestroyNotifyEvent struct {
	eventHeader
	Sequence      uint16
	Event, Window Window
}

// UnmapNotifyEvent reports a window being unmapped.
type UnmapNotifyEvent struct {
	eventHeader
	Sequence           uint16
	Event, Window      Window
	FromConfigure      bool
}

// MapNotifyEvent reports a window being mapped.
type MapNotifyEvent struct {
	eventHeader
	Sequence          uint16
	Event, Window     Window
	OverrideRedirect  bool
}

// MapRequestEvent is sent to a window manager when a client asks to map a
// window it does not control directly.
type MapRequestEvent struct {
	eventHeader
	Sequence       uint16
	Parent, Window Window
}

// ReparentNotifyEvent reports a window being reparented.
type ReparentNotifyEvent struct {
	eventHeader
	Sequence                uint16
	Event, Window, Parent   Window
	X, Y                    int16
	OverrideRedirect        bool
}

// ConfigureNotifyEvent reports a completed window reconfiguration.
type ConfigureNotifyEvent struct {
	eventHeader
	Sequence                              uint16
	Event, Window, AboveSibling           Window
	X, Y                                  int16
	Width, Height, BorderWidth            uint16
	OverrideRedirect                      bool
}

// ConfigureRequestEvent is sent to a window manager when a client asks to
// reconfigure a window it does not control directly.
type ConfigureRequestEvent struct {
	eventHeader
	Sequence                             uint16
	StackMode                            uint8
	Parent, Window, Sibling              Window
	X, Y                                 int16
	Width, Height, BorderWidth           uint16
	ValueMask                            uint16
}

// GravityNotifyEvent reports a window moving due to its parent's resize
// and the child's win-gravity.
type GravityNotifyEvent struct {
	eventHeader
	Sequence      uint16
	Event, Window Window
	X, Y          int16
}

// ResizeRequestEvent is sent to a window manager when a client asks to
// resize a window it does not control directly.
type ResizeRequestEvent struct {
	eventHeader
	Sequence      uint16
	Window        Window
	Width, Height uint16
}

// CirculateNotifyEvent reports a completed stacking-order change.
type CirculateNotifyEvent struct {
	eventHeader
	Sequence      uint16
	Event, Window Window
	Place         uint8
}

// CirculateRequestEvent is sent to a window manager when a client asks to
// restack a window it does not control directly.
type CirculateRequestEvent struct {
	eventHeader
	Sequence       uint16
	Parent, Window Window
	Place          uint8
}

// PropertyNotifyEvent reports a window property being created, changed, or
// deleted.
type PropertyNotifyEvent struct {
	eventHeader
	Sequence uint16
	Window   Window
	Atom     Atom
	Time     Timestamp
	State    uint8
}

// SelectionClearEvent reports loss of selection ownership.
type SelectionClearEvent struct {
	eventHeader
	Sequence  uint16
	Time      Timestamp
	Owner     Window
	Selection Atom
}

// SelectionRequestEvent asks the current owner to convert a selection.
type SelectionRequestEvent struct {
	eventHeader
	Sequence                         uint16
	Time                              Timestamp
	Owner, Requestor                 Window
	Selection, Target, Property      Atom
}

// SelectionNotifyEvent reports the outcome of a ConvertSelection request.
type SelectionNotifyEvent struct {
	eventHeader
	Sequence              uint16
	Time                  Timestamp
	Requestor             Window
	Selection, Target, Property Atom
}

// ColormapNotifyEvent reports a window's colormap attribute changing.
type ColormapNotifyEvent struct {
	eventHeader
	Sequence   uint16
	Window     Window
	Colormap   Colormap
	New        bool
	State      uint8
}

// ClientMessageEvent carries an application-defined 20-byte payload.
type ClientMessageEvent struct {
	eventHeader
	Sequence uint16
	Format   uint8
	Window   Window
	Type     Atom
	Data     [20]byte
}

// MappingNotifyEvent reports that the keyboard or modifier mapping changed.
type MappingNotifyEvent struct {
	eventHeader
	Sequence      uint16
	Request       uint8
	FirstKeycode  KeyCode
	Count         uint8
}

// ParseEvent decodes a 32-byte event message. buf[0] carries the event
// opcode with the synthetic-event bit (0x80) possibly set; it must be
// masked off before dispatch. KeymapNotify is routed separately by the
// reader loop (client package) because, uniquely among core events, it
// carries no sequence number at bytes [2:4]; that path still calls
// ParseEvent, whose opcode-11 case decodes the key bitmap from byte 1
// and leaves Sequence at 0.
func ParseEvent(order binary.ByteOrder, buf []byte) (Event, error) {
	if len(buf) < 32 {
		return nil, fmt.Errorf("proto: event message too short: %d bytes", len(buf))
	}
	raw := buf[0]
	sent := raw&sendEventMask != 0
	opcode := raw &^ sendEventMask
	hdr := eventHeader{opcode: opcode, sent: sent}
	detail := buf[1]
	b := NewBuffer(order, buf[2:])

	switch opcode {
	case EvKeyPress, EvKeyRelease:
		seq, _ := b.Uint16()
		t, _ := b.Uint32()
		root, _ := b.Uint32()
		ev, _ := b.Uint32()
		child, _ := b.Uint32()
		rx, _ := b.Int16()
		ry, _ := b.Int16()
		ex, _ := b.Int16()
		ey, _ := b.Int16()
		state, _ := b.Uint16()
		same, _ := b.Bool()
		return &KeyEvent{hdr, seq, KeyCode(detail), Timestamp(t), Window(root), Window(ev), Window(child), rx, ry, ex, ey, state, same}, b.Err()

	case EvButtonPress, EvButtonRelease:
		seq, _ := b.Uint16()
		t, _ := b.Uint32()
		root, _ := b.Uint32()
		ev, _ := b.Uint32()
		child, _ := b.Uint32()
		rx, _ := b.Int16()
		ry, _ := b.Int16()
		ex, _ := b.Int16()
		ey, _ := b.Int16()
		state, _ := b.Uint16()
		same, _ := b.Bool()
		return &ButtonEvent{hdr, seq, detail, Timestamp(t), Window(root), Window(ev), Window(child), rx, ry, ex, ey, state, same}, b.Err()

	case EvMotionNotify:
		seq, _ := b.Uint16()
		t, _ := b.Uint32()
		root, _ := b.Uint32()
		ev, _ := b.Uint32()
		child, _ := b.Uint32()
		rx, _ := b.Int16()
		ry, _ := b.Int16()
		ex, _ := b.Int16()
		ey, _ := b.Int16()
		state, _ := b.Uint16()
		same, _ := b.Bool()
		return &MotionNotifyEvent{hdr, seq, detail, Timestamp(t), Window(root), Window(ev), Window(child), rx, ry, ex, ey, state, same}, b.Err()

	case EvEnterNotify, EvLeaveNotify:
		seq, _ := b.Uint16()
		t, _ := b.Uint32()
		root, _ := b.Uint32()
		ev, _ := b.Uint32()
		child, _ := b.Uint32()
		rx, _ := b.Int16()
		ry, _ := b.Int16()
		ex, _ := b.Int16()
		ey, _ := b.Int16()
		state, _ := b.Uint16()
		mode, _ := b.Uint8()
		flags, _ := b.Uint8()
		return &CrossingEvent{hdr, seq, detail, Timestamp(t), Window(root), Window(ev), Window(child), rx, ry, ex, ey, state, mode, flags}, b.Err()

	case EvFocusIn:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		mode, _ := b.Uint8()
		return &FocusInEvent{hdr, seq, detail, Window(ev), mode}, b.Err()

	case EvFocusOut:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		mode, _ := b.Uint8()
		return &FocusOutEvent{hdr, seq, detail, Window(ev), mode}, b.Err()

	case EvKeymapNotify:
		var keys [31]byte
		copy(keys[:], buf[1:32])
		return &KeymapNotifyEvent{hdr, 0, keys}, nil

	case EvExpose:
		seq, _ := b.Uint16()
		win, _ := b.Uint32()
		x, _ := b.Uint16()
		y, _ := b.Uint16()
		w, _ := b.Uint16()
		h, _ := b.Uint16()
		count, _ := b.Uint16()
		return &ExposeEvent{hdr, seq, Window(win), x, y, w, h, count}, b.Err()

	case EvGraphicsExposure:
		seq, _ := b.Uint16()
		draw, _ := b.Uint32()
		x, _ := b.Uint16()
		y, _ := b.Uint16()
		w, _ := b.Uint16()
		h, _ := b.Uint16()
		minor, _ := b.Uint16()
		major, _ := b.Uint8()
		b.Skip(1)
		count, _ := b.Uint16()
		return &GraphicsExposureEvent{hdr, seq, Drawable(draw), x, y, w, h, minor, count, Opcode(major)}, b.Err()

	case EvNoExposure:
		seq, _ := b.Uint16()
		draw, _ := b.Uint32()
		minor, _ := b.Uint16()
		major, _ := b.Uint8()
		return &NoExposureEvent{hdr, seq, Drawable(draw), minor, Opcode(major)}, b.Err()

	case EvVisibilityNotify:
		seq, _ := b.Uint16()
		win, _ := b.Uint32()
		state, _ := b.Uint8()
		return &VisibilityNotifyEvent{hdr, seq, Window(win), state}, b.Err()

	case EvCreateNotify:
		seq, _ := b.Uint16()
		parent, _ := b.Uint32()
		win, _ := b.Uint32()
		x, _ := b.Int16()
		y, _ := b.Int16()
		w, _ := b.Uint16()
		h, _ := b.Uint16()
		bw, _ := b.Uint16()
		or, _ := b.Bool()
		return &CreateNotifyEvent{hdr, seq, Window(parent), Window(win), x, y, w, h, bw, or}, b.Err()

	case EvDestroyNotify:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		win, _ := b.Uint32()
		return &DestroyNotifyEvent{hdr, seq, Window(ev), Window(win)}, b.Err()

	case EvUnmapNotify:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		win, _ := b.Uint32()
		fc, _ := b.Bool()
		return &UnmapNotifyEvent{hdr, seq, Window(ev), Window(win), fc}, b.Err()

	case EvMapNotify:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		win, _ := b.Uint32()
		or, _ := b.Bool()
		return &MapNotifyEvent{hdr, seq, Window(ev), Window(win), or}, b.Err()

	case EvMapRequest:
		seq, _ := b.Uint16()
		parent, _ := b.Uint32()
		win, _ := b.Uint32()
		return &MapRequestEvent{hdr, seq, Window(parent), Window(win)}, b.Err()

	case EvReparentNotify:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		win, _ := b.Uint32()
		parent, _ := b.Uint32()
		x, _ := b.Int16()
		y, _ := b.Int16()
		or, _ := b.Bool()
		return &ReparentNotifyEvent{hdr, seq, Window(ev), Window(win), Window(parent), x, y, or}, b.Err()

	case EvConfigureNotify:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		win, _ := b.Uint32()
		above, _ := b.Uint32()
		x, _ := b.Int16()
		y, _ := b.Int16()
		w, _ := b.Uint16()
		h, _ := b.Uint16()
		bw, _ := b.Uint16()
		or, _ := b.Bool()
		return &ConfigureNotifyEvent{hdr, seq, Window(ev), Window(win), Window(above), x, y, w, h, bw, or}, b.Err()

	case EvConfigureRequest:
		seq, _ := b.Uint16()
		parent, _ := b.Uint32()
		win, _ := b.Uint32()
		sibling, _ := b.Uint32()
		x, _ := b.Int16()
		y, _ := b.Int16()
		w, _ := b.Uint16()
		h, _ := b.Uint16()
		bw, _ := b.Uint16()
		vm, _ := b.Uint16()
		return &ConfigureRequestEvent{hdr, seq, detail, Window(parent), Window(win), Window(sibling), x, y, w, h, bw, vm}, b.Err()

	case EvGravityNotify:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		win, _ := b.Uint32()
		x, _ := b.Int16()
		y, _ := b.Int16()
		return &GravityNotifyEvent{hdr, seq, Window(ev), Window(win), x, y}, b.Err()

	case EvResizeRequest:
		seq, _ := b.Uint16()
		win, _ := b.Uint32()
		w, _ := b.Uint16()
		h, _ := b.Uint16()
		return &ResizeRequestEvent{hdr, seq, Window(win), w, h}, b.Err()

	case EvCirculateNotify:
		seq, _ := b.Uint16()
		ev, _ := b.Uint32()
		win, _ := b.Uint32()
		b.Skip(4)
		place, _ := b.Uint8()
		return &CirculateNotifyEvent{hdr, seq, Window(ev), Window(win), place}, b.Err()

	case EvCirculateRequest:
		seq, _ := b.Uint16()
		parent, _ := b.Uint32()
		win, _ := b.Uint32()
		b.Skip(4)
		place, _ := b.Uint8()
		return &CirculateRequestEvent{hdr, seq, Window(parent), Window(win), place}, b.Err()

	case EvPropertyNotify:
		seq, _ := b.Uint16()
		win, _ := b.Uint32()
		atom, _ := b.Uint32()
		t, _ := b.Uint32()
		state, _ := b.Uint8()
		return &PropertyNotifyEvent{hdr, seq, Window(win), Atom(atom), Timestamp(t), state}, b.Err()

	case EvSelectionClear:
		seq, _ := b.Uint16()
		t, _ := b.Uint32()
		owner, _ := b.Uint32()
		sel, _ := b.Uint32()
		return &SelectionClearEvent{hdr, seq, Timestamp(t), Window(owner), Atom(sel)}, b.Err()

	case EvSelectionRequest:
		seq, _ := b.Uint16()
		t, _ := b.Uint32()
		owner, _ := b.Uint32()
		req, _ := b.Uint32()
		sel, _ := b.Uint32()
		target, _ := b.Uint32()
		prop, _ := b.Uint32()
		return &SelectionRequestEvent{hdr, seq, Timestamp(t), Window(owner), Window(req), Atom(sel), Atom(target), Atom(prop)}, b.Err()

	case EvSelectionNotify:
		seq, _ := b.Uint16()
		t, _ := b.Uint32()
		req, _ := b.Uint32()
		sel, _ := b.Uint32()
		target, _ := b.Uint32()
		prop, _ := b.Uint32()
		return &SelectionNotifyEvent{hdr, seq, Timestamp(t), Window(req), Atom(sel), Atom(target), Atom(prop)}, b.Err()

	case EvColormapNotify:
		seq, _ := b.Uint16()
		win, _ := b.Uint32()
		cmap, _ := b.Uint32()
		isNew, _ := b.Bool()
		state, _ := b.Uint8()
		return &ColormapNotifyEvent{hdr, seq, Window(win), Colormap(cmap), isNew, state}, b.Err()

	case EvClientMessage:
		seq, _ := b.Uint16()
		win, _ := b.Uint32()
		typ, _ := b.Uint32()
		data, ok := b.Bytes(20)
		var arr [20]byte
		if ok {
			copy(arr[:], data)
		}
		return &ClientMessageEvent{hdr, seq, detail, Window(win), Atom(typ), arr}, b.Err()

	case EvMappingNotify:
		seq, _ := b.Uint16()
		req, _ := b.Uint8()
		first, _ := b.Uint8()
		count, _ := b.Uint8()
		return &MappingNotifyEvent{hdr, seq, req, KeyCode(first), count}, b.Err()

	default:
		return nil, fmt.Errorf("proto: unknown event opcode %d", opcode)
	}
}
