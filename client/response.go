package client

import (
	"fmt"

	"github.com/x11wire/x11c/proto"
)

// Response is the envelope delivered for every message read off the
// socket. Exactly one of Reply, Event, or Err is non-nil; KeymapNotify is
// delivered as an Event with Sequence left at 0 (it carries none on the
// wire — see proto.KeymapNotifyEvent).
type Response struct {
	Sequence uint16
	Reply    proto.Reply
	Event    proto.Event
	Err      proto.Error
}

// TransportError wraps a failure of the underlying connection (a short
// read or write, a closed socket). After a read failure the reader
// goroutine exits and the router methods return this error; send does not
// consult that state and reports only its own write failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("x11: transport error: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolViolation is returned only from handshake parsing: the one
// place a malformed message cannot simply be dropped, because the client
// has no connection state yet to recover into. Steady-state violations
// (after a successful handshake) are logged and dropped instead, per the
// reader loop's policy.
type ProtocolViolation struct {
	Err error
}

func (e *ProtocolViolation) Error() string { return fmt.Sprintf("x11: protocol violation: %v", e.Err) }
func (e *ProtocolViolation) Unwrap() error { return e.Err }
