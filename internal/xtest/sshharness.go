package xtest

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/ssh"
)

// Harness pairs an in-process SSH server and client connected over a
// net.Pipe, mirroring the transport sshd's X11Forwarding actually runs
// over. NewTunneledSocket dials through it to a FakeServer, so a Client
// under test talks to a Unix-domain socket exactly as it would against a
// real X11-forwarding sshd, while the bytes actually cross the in-memory
// SSH connection end to end.
type Harness struct {
	t      *testing.T
	client *ssh.Client
	server *ssh.ServerConn
	chans  <-chan ssh.NewChannel
}

// NewHarness establishes the SSH server/client pair. Authentication always
// succeeds: the harness exists to exercise the X11 wire protocol, not SSH
// auth policy.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("xtest: generate host key: %v", err)
	}
	hostSigner, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		t.Fatalf("xtest: host signer: %v", err)
	}

	serverConfig := &ssh.ServerConfig{
		NoClientAuth: true,
	}
	serverConfig.AddHostKey(hostSigner)

	clientConfig := &ssh.ClientConfig{
		User:            "xtest",
		Auth:            []ssh.AuthMethod{ssh.Password("")},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	serverSide, clientSide := net.Pipe()

	type serverResult struct {
		conn  *ssh.ServerConn
		chans <-chan ssh.NewChannel
		err   error
	}
	serverDone := make(chan serverResult, 1)
	go func() {
		conn, chans, reqs, err := ssh.NewServerConn(serverSide, serverConfig)
		if err != nil {
			serverDone <- serverResult{err: err}
			return
		}
		go ssh.DiscardRequests(reqs)
		serverDone <- serverResult{conn: conn, chans: chans}
	}()

	clientConn, clientChans, clientReqs, err := ssh.NewClientConn(clientSide, "pipe", clientConfig)
	if err != nil {
		t.Fatalf("xtest: client handshake: %v", err)
	}
	client := ssh.NewClient(clientConn, clientChans, clientReqs)

	res := <-serverDone
	if res.err != nil {
		t.Fatalf("xtest: server handshake: %v", res.err)
	}

	return &Harness{t: t, client: client, server: res.conn, chans: res.chans}
}

// Close tears down both ends of the SSH connection.
func (h *Harness) Close() {
	h.client.Close()
	h.server.Close()
}

// ServeX11 runs fake as the X11 endpoint for every "x11" channel the SSH
// client opens, and rejects every other channel type, exactly as sshd does
// when X11Forwarding is enabled but no other forwarding was requested.
// Call it on its own goroutine; it returns when the channel stream closes.
func (h *Harness) ServeX11(fake *FakeServer) {
	for newChannel := range h.chans {
		if newChannel.ChannelType() != "x11" {
			newChannel.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}
		channel, requests, err := newChannel.Accept()
		if err != nil {
			h.t.Logf("xtest: accept x11 channel: %v", err)
			continue
		}
		go ssh.DiscardRequests(requests)
		go func() {
			conn := channelConn{Channel: channel, local: pipeAddr("x11-server"), remote: pipeAddr("x11-client")}
			if err := fake.Serve(conn); err != nil && err != io.EOF {
				h.t.Logf("xtest: fake server exited: %v", err)
			}
		}()
	}
}

// NewTunneledSocket listens on a fresh Unix-domain socket under t.TempDir()
// and, for each connection accepted on it, opens a fresh "x11" channel over
// the harness's SSH connection and splices the two together
// bidirectionally. The returned path is what a Client under test should
// dial; cleanup stops the listener.
func (h *Harness) NewTunneledSocket() (path string, cleanup func()) {
	h.t.Helper()
	path = filepath.Join(h.t.TempDir(), "display")

	ln, err := net.Listen("unix", path)
	if err != nil {
		h.t.Fatalf("xtest: listen %s: %v", path, err)
	}

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go h.splice(conn)
		}
	}()

	return path, func() {
		ln.Close()
		os.Remove(path)
	}
}

func (h *Harness) splice(local net.Conn) {
	defer local.Close()
	channel, requests, err := h.client.OpenChannel("x11", nil)
	if err != nil {
		h.t.Logf("xtest: open x11 channel: %v", err)
		return
	}
	defer channel.Close()
	go ssh.DiscardRequests(requests)

	done := make(chan struct{}, 2)
	go func() {
		io.Copy(channel, local)
		channel.CloseWrite()
		done <- struct{}{}
	}()
	go func() {
		io.Copy(local, channel)
		done <- struct{}{}
	}()
	<-done
}
