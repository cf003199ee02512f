// Package xtest provides an in-process SSH harness for exercising the
// client package the way it is actually deployed: as an X11 client
// running on a remote host, reached through sshd's "x11" channel
// forwarding rather than a direct Unix-domain dial to a local display.
package xtest

import (
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// channelConn adapts an ssh.Channel to net.Conn so it can stand in for the
// Unix-domain socket Client.Connect expects once a channel has been
// bridged to one. Deadlines are no-ops: test channels are in-memory and
// never block indefinitely absent a harness bug.
type channelConn struct {
	ssh.Channel
	local, remote net.Addr
}

func (c channelConn) LocalAddr() net.Addr  { return c.local }
func (c channelConn) RemoteAddr() net.Addr { return c.remote }

func (c channelConn) SetDeadline(t time.Time) error      { return nil }
func (c channelConn) SetReadDeadline(t time.Time) error  { return nil }
func (c channelConn) SetWriteDeadline(t time.Time) error { return nil }

type pipeAddr string

func (a pipeAddr) Network() string { return "x11-channel" }
func (a pipeAddr) String() string  { return string(a) }
