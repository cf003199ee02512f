package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x11wire/x11c/client"
	"github.com/x11wire/x11c/internal/xtest"
)

// TestConnectOverSSHX11Channel exercises the client the way it is actually
// deployed: dialing a Unix-domain socket that is, in turn, forwarded over
// an SSH connection's "x11" channel type to a remote X server (here, the
// fake one), rather than a direct local dial.
func TestConnectOverSSHX11Channel(t *testing.T) {
	h := xtest.NewHarness(t)
	defer h.Close()

	fake := xtest.NewFakeServer()
	fake.Vendor = "x11wire ssh-tunneled"
	go h.ServeX11(fake)

	socketPath, cleanup := h.NewTunneledSocket()
	defer cleanup()

	c, err := client.Connect(socketPath)
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, fake.Vendor, c.ConnInfo.Vendor)

	atom, err := c.InternAtom("_NET_WM_NAME", false)
	require.NoError(t, err)
	require.EqualValues(t, fake.AtomReply, atom)
}
