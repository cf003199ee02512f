package xtest

import (
	"encoding/binary"
	"io"
	"net"
	"sync/atomic"

	"github.com/x11wire/x11c/proto"
)

// FakeServer is a deliberately minimal stand-in for an X server: enough of
// the connection setup and a handful of canned replies to drive
// client-package integration tests without a real display. It knows
// nothing of windows, drawables, or rendering; it exists to exercise the
// wire framing, sequencing, and decode paths end to end.
type FakeServer struct {
	Vendor       string
	ResourceBase uint32
	ResourceMask uint32
	ScreenWidth  uint16
	ScreenHeight uint16
	AtomReply    proto.Atom
	sequence     uint32
}

// NewFakeServer returns a FakeServer with reasonable defaults.
func NewFakeServer() *FakeServer {
	return &FakeServer{
		Vendor:       "x11wire xtest",
		ResourceBase: 0x04000000,
		ResourceMask: 0x001fffff,
		ScreenWidth:  1024,
		ScreenHeight: 768,
		AtomReply:    42,
	}
}

// Serve performs the connection setup on conn and then services requests
// until the connection closes or a read fails. It is meant to run on its
// own goroutine, one per accepted connection.
func (s *FakeServer) Serve(conn net.Conn) error {
	defer conn.Close()

	greeting := make([]byte, 12)
	if _, err := io.ReadFull(conn, greeting); err != nil {
		return err
	}
	var order binary.ByteOrder = binary.LittleEndian
	if greeting[0] == proto.OrderMSBFirst {
		order = binary.BigEndian
	}
	authProtoLen := order.Uint16(greeting[6:8])
	authDataLen := order.Uint16(greeting[8:10])
	skip := proto.RoundUp4(int(authProtoLen)) + proto.RoundUp4(int(authDataLen))
	if skip > 0 {
		if _, err := io.CopyN(io.Discard, conn, int64(skip)); err != nil {
			return err
		}
	}

	if _, err := conn.Write(s.encodeHandshake(order)); err != nil {
		return err
	}

	header := make([]byte, 4)
	for {
		if _, err := io.ReadFull(conn, header); err != nil {
			return err
		}
		opcode := header[0]
		detail := header[1]
		lengthWords := order.Uint16(header[2:4])
		body := make([]byte, int(lengthWords)*4-4)
		if len(body) > 0 {
			if _, err := io.ReadFull(conn, body); err != nil {
				return err
			}
		}
		seq := uint16(atomic.AddUint32(&s.sequence, 1))

		reply := s.replyFor(order, proto.Opcode(opcode), detail, seq, body)
		if reply == nil {
			continue
		}
		if _, err := conn.Write(reply); err != nil {
			return err
		}
	}
}

// encodeHandshake builds a single-screen, single-depth SetupSuccess
// response matching the layout proto.ParseConnectInfo expects: an 8-byte
// status header, followed by the fixed ConnectInfo prefix, the vendor
// string, zero pixmap formats, and one Screen record with zero depths.
func (s *FakeServer) encodeHandshake(order binary.ByteOrder) []byte {
	vendorLen := proto.RoundUp4(len(s.Vendor))
	body := proto.NewWriter(order, 32+vendorLen+40)
	body.PutUint32(0, 0)             // release number
	body.PutUint32(4, s.ResourceBase)
	body.PutUint32(8, s.ResourceMask)
	body.PutUint32(12, 0) // motion buffer size
	body.PutUint16(16, uint16(len(s.Vendor)))
	body.PutUint16(18, 0xffff) // max request length
	body.PutUint8(20, 1)       // numScreens
	body.PutUint8(21, 0)       // numFormats
	body.PutUint8(22, 0)       // image byte order: LSBFirst
	body.PutUint8(23, 0)       // bitmap format bit order
	body.PutUint8(24, 32)      // bitmap scanline unit
	body.PutUint8(25, 32)      // bitmap scanline pad
	body.PutUint8(26, 0)       // min keycode
	body.PutUint8(27, 255)     // max keycode
	body.PutString(32, s.Vendor)

	screenOff := 32 + vendorLen
	body.PutUint32(screenOff+0, s.ResourceBase|1) // root window
	body.PutUint32(screenOff+4, 0)                // default colormap
	body.PutUint32(screenOff+8, 0xffffff)         // white pixel
	body.PutUint32(screenOff+12, 0)               // black pixel
	body.PutUint32(screenOff+16, 0)               // current input masks
	body.PutUint16(screenOff+20, s.ScreenWidth)
	body.PutUint16(screenOff+22, s.ScreenHeight)
	body.PutUint16(screenOff+24, 0) // width mm
	body.PutUint16(screenOff+26, 0) // height mm
	body.PutUint16(screenOff+28, 1) // min installed maps
	body.PutUint16(screenOff+30, 1) // max installed maps
	body.PutUint32(screenOff+32, 1) // root visual
	body.PutUint8(screenOff+36, 0)  // backing stores
	body.PutUint8(screenOff+37, 0)  // save unders
	body.PutUint8(screenOff+38, 24) // root depth
	body.PutUint8(screenOff+39, 0)  // numDepths

	header := proto.NewWriter(order, 8)
	header.PutUint8(0, proto.SetupSuccess)
	header.PutUint16(2, 11)
	header.PutUint16(4, 0)
	header.PutUint16(6, uint16(len(body.Bytes())/4))
	return append(header.Bytes(), body.Bytes()...)
}

// replyFor returns the 32-byte reply for request kinds this fake server
// understands, or nil for requests that either expect no reply or aren't
// modeled (the latter are silently accepted and ignored: good enough for
// driving the write/read paths without a full server-side request decoder).
func (s *FakeServer) replyFor(order binary.ByteOrder, opcode proto.Opcode, detail uint8, seq uint16, body []byte) []byte {
	w := proto.NewWriter(order, 32)
	w.PutUint8(0, 1)
	w.PutUint16(2, seq)

	switch opcode {
	case proto.OpInternAtom:
		w.PutUint32(4, 0)
		w.PutUint32(8, uint32(s.AtomReply))
		return w.Bytes()
	case proto.OpGetInputFocus:
		w.PutUint32(4, 0)
		w.PutUint8(1, 0)
		w.PutUint32(8, 0)
		return w.Bytes()
	case proto.OpGetGeometry:
		w.PutUint32(4, 0)
		w.PutUint8(1, 24)
		w.PutUint32(8, s.ResourceBase|1)
		w.PutUint16(12, 0)
		w.PutUint16(14, 0)
		w.PutUint16(16, s.ScreenWidth)
		w.PutUint16(18, s.ScreenHeight)
		w.PutUint16(20, 0)
		return w.Bytes()
	case proto.OpQueryExtension:
		w.PutUint32(4, 0)
		w.PutUint8(8, 0) // present = false
		return w.Bytes()
	default:
		return nil
	}
}
