package client_test

import (
	"encoding/binary"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x11wire/x11c/client"
	"github.com/x11wire/x11c/internal/xtest"
	"github.com/x11wire/x11c/proto"
)

// listenFake starts a FakeServer on a fresh Unix-domain socket and returns
// the path to dial. The listener and every accepted connection are closed
// when the test ends.
func listenFake(t *testing.T, fake *xtest.FakeServer) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "display")
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	t.Cleanup(func() {
		ln.Close()
		os.Remove(path)
	})

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go fake.Serve(conn)
		}
	}()
	return path
}

func TestConnectPerformsHandshake(t *testing.T) {
	fake := xtest.NewFakeServer()
	fake.Vendor = "x11wire integration test"
	fake.ScreenWidth, fake.ScreenHeight = 1920, 1080
	path := listenFake(t, fake)

	c, err := client.Connect(path)
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, fake.Vendor, c.ConnInfo.Vendor)
	require.Len(t, c.ConnInfo.Screens, 1)
	require.EqualValues(t, 1920, c.ConnInfo.Screens[0].WidthInPixels)
}

func TestConnectThenInternAtomRoundTrips(t *testing.T) {
	fake := xtest.NewFakeServer()
	fake.AtomReply = 99
	path := listenFake(t, fake)

	c, err := client.Connect(path)
	require.NoError(t, err)
	defer c.Close()

	atom, err := c.InternAtom("WM_PROTOCOLS", false)
	require.NoError(t, err)
	require.EqualValues(t, 99, atom)

	// Second call for the same name must be served from the cache without
	// a further round trip; a fake server that only answers once would
	// still make this pass, so this mainly guards against a panic/hang.
	atom2, err := c.InternAtom("WM_PROTOCOLS", false)
	require.NoError(t, err)
	require.Equal(t, atom, atom2)
}

func TestConnectThenGetGeometryRoundTrips(t *testing.T) {
	fake := xtest.NewFakeServer()
	fake.ScreenWidth, fake.ScreenHeight = 800, 600
	path := listenFake(t, fake)

	c, err := client.Connect(path)
	require.NoError(t, err)
	defer c.Close()

	root := c.ConnInfo.Screens[0].Root
	geom, err := c.GetGeometry(proto.Drawable(root))
	require.NoError(t, err)
	require.EqualValues(t, 800, geom.Width)
	require.EqualValues(t, 600, geom.Height)
}

func TestConnectWithBigEndianByteOrder(t *testing.T) {
	fake := xtest.NewFakeServer()
	path := listenFake(t, fake)

	c, err := client.Connect(path, client.WithByteOrder(binary.BigEndian))
	require.NoError(t, err)
	defer c.Close()
	require.NotNil(t, c.ConnInfo)
}

