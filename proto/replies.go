package proto

import (
	"encoding/binary"
	"fmt"
)

// ReplyKind identifies which decoder a reply's 32-byte-aligned body should
// be run through. The writer records the ReplyKind alongside the sequence
// number it assigned a request at send time (see client's reply-type side
// channel); the reader uses it to pick the right decoder once the reply
// with that sequence number arrives.
type ReplyKind uint8

const (
	ReplyNone ReplyKind = iota
	ReplyGetWindowAttributes
	ReplyGetGeometry
	ReplyQueryTree
	ReplyInternAtom
	ReplyGetAtomName
	ReplyGetProperty
	ReplyListProperties
	ReplyGetSelectionOwner
	ReplyGrabPointer
	ReplyGrabKeyboard
	ReplyQueryPointer
	ReplyTranslateCoordinates
	ReplyGetInputFocus
	ReplyQueryKeymap
	ReplyQueryFont
	ReplyListFonts
	ReplyGetImage
	ReplyAllocColor
	ReplyQueryExtension
	ReplyListExtensions
	ReplyGetKeyboardMapping
	ReplyGetKeyboardControl
	ReplyBigRequestsEnable
)

// Reply is any decoded reply body. Every concrete type below carries the
// Sequence the request that provoked it was assigned.
type Reply interface {
	ReplySequence() uint16
}

type replyHeader struct {
	sequence uint16
}

func (h replyHeader) ReplySequence() uint16 { return h.sequence }

// GetWindowAttributesReply answers GetWindowAttributes.
type GetWindowAttributesReply struct {
	replyHeader
	BackingStore                    uint8
	Visual                          VisualID
	Class                           uint16
	BitGravity, WinGravity          uint8
	BackingPlanes, BackingPixel     uint32
	SaveUnder, MapIsInstalled       bool
	MapState                        uint8
	OverrideRedirect                bool
	Colormap                        Colormap
	AllEventMasks, YourEventMask    uint32
	DoNotPropagateMask              uint16
}

// GetGeometryReply answers GetGeometry.
type GetGeometryReply struct {
	replyHeader
	Depth                      uint8
	Root                       Window
	X, Y                       int16
	Width, Height, BorderWidth uint16
}

// QueryTreeReply answers QueryTree.
type QueryTreeReply struct {
	replyHeader
	Root, Parent Window
	Children     []Window
}

// InternAtomReply answers InternAtom.
type InternAtomReply struct {
	replyHeader
	Atom Atom
}

// GetAtomNameReply answers GetAtomName.
type GetAtomNameReply struct {
	replyHeader
	Name string
}

// GetPropertyReply answers GetProperty.
type GetPropertyReply struct {
	replyHeader
	Format        uint8
	Type          Atom
	BytesAfter    uint32
	Value         []byte
}

// ListPropertiesReply answers ListProperties.
type ListPropertiesReply struct {
	replyHeader
	Atoms []Atom
}

// GetSelectionOwnerReply answers GetSelectionOwner.
type GetSelectionOwnerReply struct {
	replyHeader
	Owner Window
}

// GrabPointerReply/GrabKeyboardReply answer their respective grabs.
type GrabPointerReply struct {
	replyHeader
	Status uint8
}

type GrabKeyboardReply struct {
	replyHeader
	Status uint8
}

// QueryPointerReply answers QueryPointer.
type QueryPointerReply struct {
	replyHeader
	SameScreen         bool
	Root, Child        Window
	RootX, RootY       int16
	WinX, WinY         int16
	Mask               uint16
}

// TranslateCoordinatesReply answers TranslateCoordinates.
type TranslateCoordinatesReply struct {
	replyHeader
	SameScreen bool
	Child      Window
	DstX, DstY int16
}

// GetInputFocusReply answers GetInputFocus.
type GetInputFocusReply struct {
	replyHeader
	RevertTo uint8
	Focus    Window
}

// QueryKeymapReply answers QueryKeymap.
type QueryKeymapReply struct {
	replyHeader
	Keys [32]byte
}

// QueryFontReply answers QueryFont. CharInfos/Properties are decoded as
// raw counts but not expanded field by field: font metrics beyond what
// this module's callers need (measuring whether a font opened at all) are
// outside the opcode surface's test coverage and are exposed as opaque
// byte spans for callers who need to parse them further.
type QueryFontReply struct {
	replyHeader
	MinBounds, MaxBounds CharInfo
	MinCharOrByte2, MaxCharOrByte2 uint16
	DefaultChar                    uint16
	DrawDirection                  uint8
	MinByte1, MaxByte1             uint8
	AllCharsExist                  bool
	FontAscent, FontDescent         int16
	PropertiesRaw                   []byte
	CharInfosRaw                    []byte
}

// CharInfo is the wire CHARINFO record.
type CharInfo struct {
	LeftSideBearing, RightSideBearing int16
	CharacterWidth                    uint16
	Ascent, Descent                   int16
	Attributes                        uint16
}

// ListFontsReply answers ListFonts.
type ListFontsReply struct {
	replyHeader
	Names []string
}

// GetImageReply answers GetImage.
type GetImageReply struct {
	replyHeader
	Depth  uint8
	Visual VisualID
	Data   []byte
}

// AllocColorReply answers AllocColor.
type AllocColorReply struct {
	replyHeader
	Red, Green, Blue uint16
	Pixel            uint32
}

// QueryExtensionReply answers QueryExtension.
type QueryExtensionReply struct {
	replyHeader
	Present         bool
	MajorOpcode     Opcode
	FirstEvent      uint8
	FirstError      uint8
}

// ListExtensionsReply answers ListExtensions.
type ListExtensionsReply struct {
	replyHeader
	Names []string
}

// GetKeyboardMappingReply answers GetKeyboardMapping.
type GetKeyboardMappingReply struct {
	replyHeader
	KeysymsPerKeycode uint8
	Keysyms           []KeySym
}

// GetKeyboardControlReply answers GetKeyboardControl.
type GetKeyboardControlReply struct {
	replyHeader
	GlobalAutoRepeat uint8
	LedMask          uint32
	KeyClickPercent  uint8
	BellPercent      uint8
	BellPitch        uint16
	BellDuration     uint16
	AutoRepeats      [32]byte
}

// BigRequestsEnableReply answers the BIG-REQUESTS extension's enable
// request with the server's actual maximum request length in 4-byte
// units.
type BigRequestsEnableReply struct {
	replyHeader
	MaximumRequestLength uint32
}

// ParseReply decodes a reply body. header is the 32-byte fixed prefix
// (reply-type byte, per-reply first field, sequence, reply-length word);
// extra holds any additional words the reply-length word indicated beyond
// the fixed 32 bytes, already read off the wire by the caller.
func ParseReply(order binary.ByteOrder, kind ReplyKind, header, extra []byte) (Reply, error) {
	if len(header) < 32 {
		return nil, fmt.Errorf("proto: reply header too short: %d bytes", len(header))
	}
	seq := order.Uint16(header[2:4])
	lengthWords := order.Uint32(header[4:8])
	rh := replyHeader{seq}
	full := append(append([]byte{}, header...), extra...)
	// Every core reply shares an 8-byte fixed prefix: type(1), a per-reply
	// detail byte at offset 1, sequence(2), reply-length word(4). b walks
	// the body starting right after that prefix; the detail byte (when a
	// reply uses it) is read directly off header[1] instead.
	detail := header[1]
	b := NewBuffer(order, full[8:])

	switch kind {
	case ReplyGetWindowAttributes:
		visual, _ := b.Uint32()
		class, _ := b.Uint16()
		bitGrav, _ := b.Uint8()
		winGrav, _ := b.Uint8()
		backingPlanes, _ := b.Uint32()
		backingPixel, _ := b.Uint32()
		saveUnder, _ := b.Bool()
		mapInstalled, _ := b.Bool()
		mapState, _ := b.Uint8()
		overrideRedirect, _ := b.Bool()
		cmap, _ := b.Uint32()
		allMasks, _ := b.Uint32()
		yourMask, _ := b.Uint32()
		dontProp, _ := b.Uint16()
		return &GetWindowAttributesReply{rh, detail, VisualID(visual), class, bitGrav, winGrav, backingPlanes, backingPixel, saveUnder, mapInstalled, mapState, overrideRedirect, Colormap(cmap), allMasks, yourMask, dontProp}, b.Err()

	case ReplyGetGeometry:
		root, _ := b.Uint32()
		x, _ := b.Int16()
		y, _ := b.Int16()
		w, _ := b.Uint16()
		h, _ := b.Uint16()
		bw, _ := b.Uint16()
		return &GetGeometryReply{rh, detail, Window(root), x, y, w, h, bw}, b.Err()

	case ReplyQueryTree:
		root, _ := b.Uint32()
		parent, _ := b.Uint32()
		numChildren, _ := b.Uint16()
		b.Skip(14)
		children := make([]Window, 0, numChildren)
		for i := 0; i < int(numChildren); i++ {
			c, _ := b.Uint32()
			children = append(children, Window(c))
		}
		return &QueryTreeReply{rh, Window(root), Window(parent), children}, b.Err()

	case ReplyInternAtom:
		atom, _ := b.Uint32()
		return &InternAtomReply{rh, Atom(atom)}, b.Err()

	case ReplyGetAtomName:
		nameLen, _ := b.Uint16()
		b.Skip(22)
		name, _ := b.String(int(nameLen))
		return &GetAtomNameReply{rh, name}, b.Err()

	case ReplyGetProperty:
		typ, _ := b.Uint32()
		bytesAfter, _ := b.Uint32()
		valueLen, _ := b.Uint32()
		b.Skip(12)
		unit := 1
		if detail == 16 {
			unit = 2
		} else if detail == 32 {
			unit = 4
		}
		value, _ := b.Bytes(int(valueLen) * unit)
		return &GetPropertyReply{rh, detail, Atom(typ), bytesAfter, value}, b.Err()

	case ReplyListProperties:
		numAtoms, _ := b.Uint16()
		b.Skip(22)
		atoms := make([]Atom, 0, numAtoms)
		for i := 0; i < int(numAtoms); i++ {
			a, _ := b.Uint32()
			atoms = append(atoms, Atom(a))
		}
		return &ListPropertiesReply{rh, atoms}, b.Err()

	case ReplyGetSelectionOwner:
		owner, _ := b.Uint32()
		return &GetSelectionOwnerReply{rh, Window(owner)}, b.Err()

	case ReplyGrabPointer:
		return &GrabPointerReply{rh, detail}, nil

	case ReplyGrabKeyboard:
		return &GrabKeyboardReply{rh, detail}, nil

	case ReplyQueryPointer:
		root, _ := b.Uint32()
		child, _ := b.Uint32()
		rootX, _ := b.Int16()
		rootY, _ := b.Int16()
		winX, _ := b.Int16()
		winY, _ := b.Int16()
		mask, _ := b.Uint16()
		return &QueryPointerReply{rh, detail != 0, Window(root), Window(child), rootX, rootY, winX, winY, mask}, b.Err()

	case ReplyTranslateCoordinates:
		child, _ := b.Uint32()
		dstX, _ := b.Int16()
		dstY, _ := b.Int16()
		return &TranslateCoordinatesReply{rh, detail != 0, Window(child), dstX, dstY}, b.Err()

	case ReplyGetInputFocus:
		focus, _ := b.Uint32()
		return &GetInputFocusReply{rh, detail, Window(focus)}, b.Err()

	case ReplyQueryKeymap:
		keys, ok := b.Bytes(32)
		var arr [32]byte
		if ok {
			copy(arr[:], keys)
		}
		return &QueryKeymapReply{rh, arr}, b.Err()

	case ReplyQueryFont:
		minB := readCharInfo(b)
		b.Skip(4)
		maxB := readCharInfo(b)
		b.Skip(4)
		minChar, _ := b.Uint16()
		maxChar, _ := b.Uint16()
		defaultChar, _ := b.Uint16()
		numProps, _ := b.Uint16()
		drawDir, _ := b.Uint8()
		minByte1, _ := b.Uint8()
		maxByte1, _ := b.Uint8()
		allExist, _ := b.Bool()
		fontAscent, _ := b.Int16()
		fontDescent, _ := b.Int16()
		numCharInfos, _ := b.Uint32()
		props, _ := b.Bytes(int(numProps) * 8)
		charInfos, _ := b.Bytes(int(numCharInfos) * 12)
		return &QueryFontReply{rh, minB, maxB, minChar, maxChar, defaultChar, drawDir, minByte1, maxByte1, allExist, fontAscent, fontDescent, props, charInfos}, b.Err()

	case ReplyListFonts:
		numNames, _ := b.Uint16()
		b.Skip(22)
		names := make([]string, 0, numNames)
		for i := 0; i < int(numNames); i++ {
			n, _ := b.Uint8()
			s, _ := b.String(int(n))
			names = append(names, s)
		}
		return &ListFontsReply{rh, names}, b.Err()

	case ReplyGetImage:
		visual, _ := b.Uint32()
		b.Skip(20)
		data, _ := b.Bytes(int(lengthWords) * 4)
		return &GetImageReply{rh, detail, VisualID(visual), data}, b.Err()

	case ReplyAllocColor:
		red, _ := b.Uint16()
		green, _ := b.Uint16()
		blue, _ := b.Uint16()
		b.Skip(2)
		pixel, _ := b.Uint32()
		return &AllocColorReply{rh, red, green, blue, pixel}, b.Err()

	case ReplyQueryExtension:
		present, _ := b.Bool()
		major, _ := b.Uint8()
		firstEvent, _ := b.Uint8()
		firstError, _ := b.Uint8()
		return &QueryExtensionReply{rh, present, Opcode(major), firstEvent, firstError}, b.Err()

	case ReplyListExtensions:
		b.Skip(24)
		names := make([]string, 0, detail)
		for i := 0; i < int(detail); i++ {
			n, _ := b.Uint8()
			s, _ := b.String(int(n))
			names = append(names, s)
		}
		return &ListExtensionsReply{rh, names}, b.Err()

	case ReplyGetKeyboardMapping:
		b.Skip(24)
		keysyms := make([]KeySym, 0, lengthWords)
		for i := 0; i < int(lengthWords); i++ {
			k, _ := b.Uint32()
			keysyms = append(keysyms, KeySym(k))
		}
		return &GetKeyboardMappingReply{rh, detail, keysyms}, b.Err()

	case ReplyGetKeyboardControl:
		ledMask, _ := b.Uint32()
		keyClick, _ := b.Uint8()
		bellPercent, _ := b.Uint8()
		bellPitch, _ := b.Uint16()
		bellDuration, _ := b.Uint16()
		b.Skip(2)
		autoRepeats, ok := b.Bytes(32)
		var arr [32]byte
		if ok {
			copy(arr[:], autoRepeats)
		}
		return &GetKeyboardControlReply{rh, detail, ledMask, keyClick, bellPercent, bellPitch, bellDuration, arr}, b.Err()

	case ReplyBigRequestsEnable:
		maxLen, _ := b.Uint32()
		return &BigRequestsEnableReply{rh, maxLen}, b.Err()

	default:
		return nil, fmt.Errorf("proto: unknown reply kind %d", kind)
	}
}

func readCharInfo(b *Buffer) CharInfo {
	left, _ := b.Int16()
	right, _ := b.Int16()
	width, _ := b.Uint16()
	ascent, _ := b.Int16()
	descent, _ := b.Int16()
	attrs, _ := b.Uint16()
	return CharInfo{left, right, width, ascent, descent, attrs}
}
