// Package client implements the concurrent engine that drives a
// connection to an X server: the handshake, a foreground writer/router
// that runs on the caller's goroutine, and a dedicated reader goroutine
// that owns the read half of the socket. Package proto supplies every
// wire-format type and codec this package uses; client contributes only
// the concurrency and resource-lifecycle model around it.
package client

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/x11wire/x11c/proto"
)

// Client owns one connection to an X server. Sending is serialized by
// writeMu, so requests may be issued from several goroutines; exactly one
// goroutine (spawned internally by Connect) ever reads from the
// connection. Next, GetMessage, WaitForResponse and the reply-waiting
// request methods assume a single consuming goroutine: WaitForResponse
// checks the backlog only once before blocking on the response channel.
type Client struct {
	conn   net.Conn
	order  binary.ByteOrder
	logger Logger

	ConnInfo *proto.ConnectInfo

	writeMu  sync.Mutex
	sequence uint16

	idBase, idMask uint32
	idNext         uint32
	idMu           sync.Mutex

	pending   chan pendingReply
	responses chan Response
	backlogMu sync.Mutex
	backlog   []Response

	atoms *atomCache

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}

	readErrMu sync.Mutex
	readErr   error

	// readScratch is owned exclusively by the reader goroutine: reused
	// across replies to avoid a fresh allocation per reply, grown on
	// demand for replies larger than it currently holds.
	readScratch []byte

	bigRequestsMajor proto.Opcode
	bigRequestsOn    int32 // atomic bool
}

type pendingReply struct {
	sequence uint16
	kind     proto.ReplyKind
}

// Connect dials addr (a Unix-domain socket path, e.g. "/tmp/.X11-unix/X0")
// and performs the X11 connection setup. On success the returned Client's
// reader goroutine is already running.
func Connect(addr string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	conn, err := net.Dial("unix", addr)
	if err != nil {
		return nil, fmt.Errorf("x11: dial %s: %w", addr, err)
	}

	c := &Client{
		conn:      conn,
		order:     o.order,
		logger:    o.logger,
		pending:   make(chan pendingReply, 256),
		responses: make(chan Response, 256),
		atoms:     newAtomCache(o.atomCacheSize),
		done:      make(chan struct{}),
	}

	if err := c.handshake(); err != nil {
		conn.Close()
		return nil, err
	}

	c.idBase = c.ConnInfo.ResourceIDBase
	c.idMask = c.ConnInfo.ResourceIDMask
	c.idNext = 0

	go c.readLoop(o.readBufferHint)

	if o.bigRequests {
		if err := c.enableBigRequests(); err != nil {
			c.logger.Errorf("x11: BIG-REQUESTS negotiation failed: %v", err)
		}
	}

	return c, nil
}

func (c *Client) handshake() error {
	greeting := proto.ClientHandshake{
		ByteOrder:    c.order,
		MajorVersion: 11,
		MinorVersion: 0,
	}
	if _, err := c.conn.Write(greeting.Encode()); err != nil {
		return &TransportError{err}
	}

	header := make([]byte, 8)
	if _, err := io.ReadFull(c.conn, header); err != nil {
		return &TransportError{err}
	}
	hdr, err := proto.ParseServerHandshakeHeader(c.order, header)
	if err != nil {
		return &ProtocolViolation{err}
	}

	body := make([]byte, int(hdr.AdditionalDataWords)*4)
	if len(body) > 0 {
		if _, err := io.ReadFull(c.conn, body); err != nil {
			return &TransportError{err}
		}
	}

	switch hdr.Status {
	case proto.SetupFailed, proto.SetupAuthenticate:
		return &ProtocolViolation{fmt.Errorf("server refused connection: %s", proto.FailureReason(hdr, body))}
	case proto.SetupSuccess:
		info, err := proto.ParseConnectInfo(c.order, body)
		if err != nil {
			return &ProtocolViolation{err}
		}
		c.ConnInfo = info
		return nil
	default:
		return &ProtocolViolation{fmt.Errorf("unknown handshake status %d", hdr.Status)}
	}
}

// NewID allocates the next resource identifier in this client's assigned
// range. IDs are never reused once allocated, even after the resource
// they named is freed (see SPEC_FULL.md's Non-goals: no resource-ID
// reclamation). It panics once the range is exhausted.
func (c *Client) NewID() uint32 {
	c.idMu.Lock()
	defer c.idMu.Unlock()
	if c.idNext > c.idMask {
		panic("x11: resource ID range exhausted")
	}
	id := c.idBase | (c.idNext & c.idMask)
	c.idNext++
	return id
}

// send writes a fully-encoded request and, if kind != proto.ReplyNone,
// registers the sequence it was assigned in the reply-type side channel
// so the reader goroutine knows how to decode the matching reply when it
// arrives. It returns the sequence number assigned to this request.
func (c *Client) send(raw []byte, kind proto.ReplyKind) (uint16, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.sequence++
	seq := c.sequence

	if kind != proto.ReplyNone {
		select {
		case c.pending <- pendingReply{seq, kind}:
		case <-c.done:
			return 0, &TransportError{fmt.Errorf("client closed")}
		}
	}

	if _, err := c.conn.Write(raw); err != nil {
		return seq, &TransportError{err}
	}
	return seq, nil
}

// Close shuts down the connection and signals done; it does not wait for
// the reader goroutine to exit. It is safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
		close(c.done)
	})
	return c.closeErr
}

// bigRequestsEnabled reports whether BIG-REQUESTS negotiation succeeded.
func (c *Client) bigRequestsEnabled() bool {
	return atomic.LoadInt32(&c.bigRequestsOn) == 1
}

func (c *Client) enableBigRequests() error {
	extReply, err := c.QueryExtension(proto.BigRequestsExtensionName)
	if err != nil {
		return err
	}
	if !extReply.Present {
		return fmt.Errorf("x11: server does not support %s", proto.BigRequestsExtensionName)
	}
	c.bigRequestsMajor = extReply.MajorOpcode
	seq, err := c.send(proto.EncodeEnableBigRequests(c.order, extReply.MajorOpcode), proto.ReplyBigRequestsEnable)
	if err != nil {
		return err
	}
	resp, err := c.WaitForResponse(seq)
	if err != nil {
		return err
	}
	if resp.Err != nil {
		return resp.Err
	}
	if _, ok := resp.Reply.(*proto.BigRequestsEnableReply); ok {
		atomic.StoreInt32(&c.bigRequestsOn, 1)
	}
	return nil
}

// QueryExtension wraps the core QueryExtension request.
func (c *Client) QueryExtension(name string) (*proto.QueryExtensionReply, error) {
	seq, err := c.send(proto.EncodeQueryExtension(c.order, name), proto.ReplyQueryExtension)
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
	reply, ok := resp.Reply.(*proto.QueryExtensionReply)
	if !ok {
		return nil, fmt.Errorf("x11: unexpected reply type for QueryExtension")
	}
	return reply, nil
}

// InternAtom wraps the core InternAtom request, consulting and populating
// the atom-name cache first.
func (c *Client) InternAtom(name string, onlyIfExists bool) (proto.Atom, error) {
	if atom, ok := c.atoms.get(name); ok {
		return atom, nil
	}
	seq, err := c.send(proto.EncodeInternAtom(c.order, name, onlyIfExists), proto.ReplyInternAtom)
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
	reply, ok := resp.Reply.(*proto.InternAtomReply)
	if !ok {
		return 0, fmt.Errorf("x11: unexpected reply type for InternAtom")
	}
	if reply.Atom != 0 {
		c.atoms.put(name, reply.Atom)
	}
	return reply.Atom, nil
}
