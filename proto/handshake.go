package proto

import (
	"encoding/binary"
	"fmt"
)

// ClientHandshake is the initial greeting a client sends before the server
// has any other knowledge of it. AuthProtocol/AuthData are left empty by
// this module (see SPEC_FULL.md's Non-goals: no authentication beyond an
// empty tuple).
type ClientHandshake struct {
	ByteOrder    binary.ByteOrder
	MajorVersion uint16
	MinorVersion uint16
	AuthProtocol string
	AuthData     []byte
}

// Encode serializes the greeting. The byte-order byte is derived from
// whether order is binary.BigEndian; any other binary.ByteOrder
// implementation is treated as little-endian, matching the wire's binary
// choice between exactly those two options.
func (h ClientHandshake) Encode() []byte {
	order := h.ByteOrder
	authProtoLen := len(h.AuthProtocol)
	authDataLen := len(h.AuthData)
	size := 12 + RoundUp4(authProtoLen) + RoundUp4(authDataLen)
	w := NewWriter(order, size)
	if isBigEndian(order) {
		w.PutUint8(0, OrderMSBFirst)
	} else {
		w.PutUint8(0, OrderLSBFirst)
	}
	w.PutUint16(2, h.MajorVersion)
	w.PutUint16(4, h.MinorVersion)
	w.PutUint16(6, uint16(authProtoLen))
	w.PutUint16(8, uint16(authDataLen))
	off := 12
	w.PutString(off, h.AuthProtocol)
	off += RoundUp4(authProtoLen)
	w.PutBytes(off, h.AuthData)
	return w.Bytes()
}

func isBigEndian(order binary.ByteOrder) bool {
	return order == binary.BigEndian
}

// ServerHandshakeHeader is the fixed 8-byte prefix of the server's reply,
// enough to learn the status and how many more bytes to read.
type ServerHandshakeHeader struct {
	Status               uint8
	ProtocolMajorVersion uint16
	ProtocolMinorVersion uint16
	AdditionalDataWords  uint16 // length of what follows, in 4-byte units
}

// ParseServerHandshakeHeader decodes the first 8 bytes of the server's
// response. Reason (on Failed) or the ConnectInfo body (on Success)
// follows for AdditionalDataWords*4 further bytes.
func ParseServerHandshakeHeader(order binary.ByteOrder, buf []byte) (ServerHandshakeHeader, error) {
	if len(buf) < 8 {
		return ServerHandshakeHeader{}, fmt.Errorf("proto: handshake header too short: %d bytes", len(buf))
	}
	return ServerHandshakeHeader{
		Status:               buf[0],
		ProtocolMajorVersion: order.Uint16(buf[2:4]),
		ProtocolMinorVersion: order.Uint16(buf[4:6]),
		AdditionalDataWords:  order.Uint16(buf[6:8]),
	}, nil
}

// FailureReason decodes the reason string that follows a Failed/
// Authenticate header: a length-prefixed-by-buf[1] string, padded to
// AdditionalDataWords*4 bytes.
func FailureReason(header ServerHandshakeHeader, body []byte) string {
	n := int(body[0])
	if n == 0 {
		n = len(body)
	}
	if n > len(body) {
		n = len(body)
	}
	return string(body[:n])
}

// PixmapFormat describes one entry of the handshake's pixmap-format list.
type PixmapFormat struct {
	Depth        uint8
	BitsPerPixel uint8
	ScanlinePad  uint8
}

// Visual describes one visual type available on a screen depth.
type Visual struct {
	ID              VisualID
	Class           uint8
	BitsPerRGBValue uint8
	ColormapEntries uint16
	RedMask         uint32
	GreenMask       uint32
	BlueMask        uint32
}

// Depth groups the visuals available at one depth on a screen.
type Depth struct {
	Depth   uint8
	Visuals []Visual
}

// Screen describes one of the server's roots.
type Screen struct {
	Root                Window
	DefaultColormap     Colormap
	WhitePixel          uint32
	BlackPixel          uint32
	CurrentInputMasks   uint32
	WidthInPixels       uint16
	HeightInPixels      uint16
	WidthInMillimeters  uint16
	HeightInMillimeters uint16
	MinInstalledMaps    uint16
	MaxInstalledMaps    uint16
	RootVisual          VisualID
	BackingStores       uint8
	SaveUnders          bool
	RootDepth           uint8
	Depths              []Depth
}

// ConnectInfo is the full handshake body returned on Success.
type ConnectInfo struct {
	ReleaseNumber        uint32
	ResourceIDBase       uint32
	ResourceIDMask       uint32
	MotionBufferSize     uint32
	MaxRequestLength     uint16
	ImageByteOrder       uint8 // 0 = LSBFirst, 1 = MSBFirst
	BitmapFormatBitOrder uint8
	BitmapFormatScanlineUnit uint8
	BitmapFormatScanlinePad  uint8
	MinKeycode           KeyCode
	MaxKeycode           KeyCode
	Vendor               string
	Formats              []PixmapFormat
	Screens              []Screen
}

// ParseConnectInfo decodes the variable-length Success body that follows
// ServerHandshakeHeader. body must hold exactly AdditionalDataWords*4
// bytes (the caller reads that many bytes off the wire before calling
// this).
func ParseConnectInfo(order binary.ByteOrder, body []byte) (*ConnectInfo, error) {
	b := NewBuffer(order, body)
	releaseNumber, _ := b.Uint32()
	ridBase, _ := b.Uint32()
	ridMask, _ := b.Uint32()
	motionBuf, _ := b.Uint32()
	vendorLen, _ := b.Uint16()
	maxReqLen, _ := b.Uint16()
	numScreens, _ := b.Uint8()
	numFormats, _ := b.Uint8()
	imageOrder, _ := b.Uint8()
	bitmapOrder, _ := b.Uint8()
	scanlineUnit, _ := b.Uint8()
	scanlinePad, _ := b.Uint8()
	minKeycode, _ := b.Uint8()
	maxKeycode, _ := b.Uint8()
	b.Skip(4) // unused pad
	vendor, ok := b.String(int(vendorLen))
	if !ok {
		return nil, b.Err()
	}
	b.Skip(Pad4(int(vendorLen)))

	formats := make([]PixmapFormat, 0, numFormats)
	for i := 0; i < int(numFormats); i++ {
		depth, _ := b.Uint8()
		bpp, _ := b.Uint8()
		pad, _ := b.Uint8()
		b.Skip(5)
		formats = append(formats, PixmapFormat{depth, bpp, pad})
	}
	if b.Err() != nil {
		return nil, b.Err()
	}

	screens := make([]Screen, 0, numScreens)
	for i := 0; i < int(numScreens); i++ {
		scr, err := parseScreen(b)
		if err != nil {
			return nil, err
		}
		screens = append(screens, scr)
	}

	return &ConnectInfo{
		ReleaseNumber:            releaseNumber,
		ResourceIDBase:           ridBase,
		ResourceIDMask:           ridMask,
		MotionBufferSize:         motionBuf,
		MaxRequestLength:         maxReqLen,
		ImageByteOrder:           imageOrder,
		BitmapFormatBitOrder:     bitmapOrder,
		BitmapFormatScanlineUnit: scanlineUnit,
		BitmapFormatScanlinePad:  scanlinePad,
		MinKeycode:               KeyCode(minKeycode),
		MaxKeycode:               KeyCode(maxKeycode),
		Vendor:                   vendor,
		Formats:                  formats,
		Screens:                  screens,
	}, nil
}

func parseScreen(b *Buffer) (Screen, error) {
	root, _ := b.Uint32()
	cmap, _ := b.Uint32()
	white, _ := b.Uint32()
	black, _ := b.Uint32()
	inputMasks, _ := b.Uint32()
	w, _ := b.Uint16()
	h, _ := b.Uint16()
	wmm, _ := b.Uint16()
	hmm, _ := b.Uint16()
	minMaps, _ := b.Uint16()
	maxMaps, _ := b.Uint16()
	rootVisual, _ := b.Uint32()
	backingStores, _ := b.Uint8()
	saveUnders, _ := b.Bool()
	rootDepth, _ := b.Uint8()
	numDepths, _ := b.Uint8()
	if b.Err() != nil {
		return Screen{}, b.Err()
	}

	depths := make([]Depth, 0, numDepths)
	for i := 0; i < int(numDepths); i++ {
		d, err := parseDepth(b)
		if err != nil {
			return Screen{}, err
		}
		depths = append(depths, d)
	}

	return Screen{
		Root:                Window(root),
		DefaultColormap:     Colormap(cmap),
		WhitePixel:          white,
		BlackPixel:          black,
		CurrentInputMasks:   inputMasks,
		WidthInPixels:       w,
		HeightInPixels:      h,
		WidthInMillimeters:  wmm,
		HeightInMillimeters: hmm,
		MinInstalledMaps:    minMaps,
		MaxInstalledMaps:    maxMaps,
		RootVisual:          VisualID(rootVisual),
		BackingStores:       backingStores,
		SaveUnders:          saveUnders,
		RootDepth:           rootDepth,
		Depths:              depths,
	}, nil
}

func parseDepth(b *Buffer) (Depth, error) {
	depth, _ := b.Uint8()
	b.Skip(1)
	numVisuals, _ := b.Uint16()
	b.Skip(4)
	if b.Err() != nil {
		return Depth{}, b.Err()
	}
	visuals := make([]Visual, 0, numVisuals)
	for i := 0; i < int(numVisuals); i++ {
		id, _ := b.Uint32()
		class, _ := b.Uint8()
		bitsPerRGB, _ := b.Uint8()
		cmapEntries, _ := b.Uint16()
		red, _ := b.Uint32()
		green, _ := b.Uint32()
		blue, _ := b.Uint32()
		b.Skip(4)
		visuals = append(visuals, Visual{VisualID(id), class, bitsPerRGB, cmapEntries, red, green, blue})
	}
	if b.Err() != nil {
		return Depth{}, b.Err()
	}
	return Depth{Depth: depth, Visuals: visuals}, nil
}
