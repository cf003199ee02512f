package proto

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientHandshakeEncodeByteOrderMarker(t *testing.T) {
	le := ClientHandshake{ByteOrder: binary.LittleEndian, MajorVersion: 11}.Encode()
	assert.Equal(t, OrderLSBFirst, le[0])

	be := ClientHandshake{ByteOrder: binary.BigEndian, MajorVersion: 11}.Encode()
	assert.Equal(t, OrderMSBFirst, be[0])
}

func TestClientHandshakeEncodePadsAuthFields(t *testing.T) {
	h := ClientHandshake{
		ByteOrder:    binary.LittleEndian,
		MajorVersion: 11,
		MinorVersion: 0,
		AuthProtocol: "MIT-MAGIC-COOKIE-1",
		AuthData:     []byte{1, 2, 3},
	}
	buf := h.Encode()
	wantSize := 12 + RoundUp4(len(h.AuthProtocol)) + RoundUp4(len(h.AuthData))
	assert.Len(t, buf, wantSize)

	order := binary.LittleEndian
	assert.EqualValues(t, 11, order.Uint16(buf[2:4]))
	assert.EqualValues(t, 0, order.Uint16(buf[4:6]))
	assert.EqualValues(t, len(h.AuthProtocol), order.Uint16(buf[6:8]))
	assert.EqualValues(t, len(h.AuthData), order.Uint16(buf[8:10]))
	assert.Equal(t, h.AuthProtocol, string(buf[12:12+len(h.AuthProtocol)]))
}

func TestParseServerHandshakeHeader(t *testing.T) {
	w := NewWriter(binary.LittleEndian, 8)
	w.PutUint8(0, SetupSuccess)
	w.PutUint16(2, 11)
	w.PutUint16(4, 0)
	w.PutUint16(6, 3)

	hdr, err := ParseServerHandshakeHeader(binary.LittleEndian, w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, SetupSuccess, hdr.Status)
	assert.EqualValues(t, 11, hdr.ProtocolMajorVersion)
	assert.EqualValues(t, 3, hdr.AdditionalDataWords)
}

func TestParseServerHandshakeHeaderTooShort(t *testing.T) {
	_, err := ParseServerHandshakeHeader(binary.LittleEndian, []byte{0, 1, 2})
	assert.Error(t, err)
}

func TestParseConnectInfoSingleScreenNoDepths(t *testing.T) {
	order := binary.LittleEndian
	vendor := "x11wire"
	vendorPad := RoundUp4(len(vendor))
	body := NewWriter(order, 32+vendorPad+40)
	body.PutUint32(0, 42)              // release number
	body.PutUint32(4, 0x04000000)      // resource id base
	body.PutUint32(8, 0x001fffff)      // resource id mask
	body.PutUint16(16, uint16(len(vendor)))
	body.PutUint16(18, 0xffff)
	body.PutUint8(20, 1) // numScreens
	body.PutUint8(21, 0) // numFormats
	body.PutUint8(26, 0)
	body.PutUint8(27, 255)
	body.PutString(32, vendor)

	screenOff := 32 + vendorPad
	body.PutUint32(screenOff+0, 0x04000001)
	body.PutUint16(screenOff+20, 1024)
	body.PutUint16(screenOff+22, 768)
	body.PutUint32(screenOff+32, 1)
	body.PutUint8(screenOff+38, 24)
	body.PutUint8(screenOff+39, 0) // numDepths

	info, err := ParseConnectInfo(order, body.Bytes())
	require.NoError(t, err)
	assert.EqualValues(t, 42, info.ReleaseNumber)
	assert.Equal(t, vendor, info.Vendor)
	require.Len(t, info.Screens, 1)
	assert.EqualValues(t, 0x04000001, info.Screens[0].Root)
	assert.EqualValues(t, 1024, info.Screens[0].WidthInPixels)
	assert.EqualValues(t, 768, info.Screens[0].HeightInPixels)
	assert.EqualValues(t, 24, info.Screens[0].RootDepth)
	assert.Empty(t, info.Screens[0].Depths)
}

func TestFailureReasonZeroLengthReturnsWholeBody(t *testing.T) {
	body := []byte{0, 'h', 'e', 'l', 'l', 'o', 0, 0}
	header := ServerHandshakeHeader{Status: SetupFailed, AdditionalDataWords: 2}
	assert.Equal(t, string(body), FailureReason(header, body))
}

func TestFailureReasonTruncatesToDeclaredLength(t *testing.T) {
	body := []byte{3, 'h', 'i', '!', 0, 0, 0, 0}
	header := ServerHandshakeHeader{Status: SetupFailed, AdditionalDataWords: 2}
	assert.Equal(t, string(body[:3]), FailureReason(header, body))
}
