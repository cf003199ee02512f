package client

import (
	"io"

	"github.com/x11wire/x11c/proto"
)

// readLoop is the body of the dedicated reader goroutine. It never
// touches the write half of the connection and is the only goroutine
// that ever calls Read on it, so no locking is needed around the read
// path itself.
func (c *Client) readLoop(bufferHint int) {
	defer close(c.responses)

	if bufferHint > 0 {
		c.readScratch = make([]byte, bufferHint)
	}

	header := make([]byte, 32)
	for {
		if _, err := io.ReadFull(c.conn, header); err != nil {
			c.deliverTransportError(err)
			return
		}

		switch {
		case header[0] == 0:
			c.handleError(header)
		case header[0] == 1:
			if err := c.handleReply(header); err != nil {
				c.deliverTransportError(err)
				return
			}
		case header[0]&^0x80 == proto.EvKeymapNotify:
			c.handleKeymapNotify(header)
		default:
			c.handleEvent(header)
		}
	}
}

func (c *Client) deliverTransportError(err error) {
	c.readErrMu.Lock()
	c.readErr = &TransportError{err}
	c.readErrMu.Unlock()
	c.logger.Errorf("x11: reader goroutine exiting: %v", err)
}

func (c *Client) handleError(header []byte) {
	xerr, err := proto.ParseError(c.order, header)
	if err != nil {
		c.logger.Debugf("x11: dropping malformed error message: %v", err)
		return
	}
	c.emit(Response{Sequence: xerr.Sequence(), Err: xerr})
}

func (c *Client) handleReply(header []byte) error {
	lengthWords := c.order.Uint32(header[4:8])
	var extra []byte
	if lengthWords > 0 {
		n := int(lengthWords) * 4
		if cap(c.readScratch) < n {
			c.readScratch = make([]byte, n)
		}
		extra = c.readScratch[:n]
		if _, err := io.ReadFull(c.conn, extra); err != nil {
			return err
		}
	}
	seq := c.order.Uint16(header[2:4])

	kind := proto.ReplyNone
	select {
	case p := <-c.pending:
		if p.sequence != seq {
			c.logger.Debugf("x11: reply sequence drift: expected %d, got %d; dropping this reply", p.sequence, seq)
		} else {
			kind = p.kind
		}
	default:
		c.logger.Debugf("x11: reply with sequence %d arrived with no pending request recorded", seq)
	}

	reply, err := proto.ParseReply(c.order, kind, header, extra)
	if err != nil {
		c.logger.Debugf("x11: dropping malformed reply (seq %d): %v", seq, err)
		return nil
	}
	c.emit(Response{Sequence: seq, Reply: reply})
	return nil
}

func (c *Client) handleEvent(header []byte) {
	ev, err := proto.ParseEvent(c.order, header)
	if err != nil {
		c.logger.Debugf("x11: dropping malformed event: %v", err)
		return
	}
	seq := c.order.Uint16(header[2:4])
	c.emit(Response{Sequence: seq, Event: ev})
}

// handleKeymapNotify special-cases opcode 11: uniquely among core events
// it carries no sequence number, so the generic 32-byte sequence-bearing
// decode path in handleEvent never applies to it.
func (c *Client) handleKeymapNotify(header []byte) {
	ev, err := proto.ParseEvent(c.order, header)
	if err != nil {
		c.logger.Debugf("x11: dropping malformed KeymapNotify: %v", err)
		return
	}
	c.emit(Response{Sequence: 0, Event: ev})
}

func (c *Client) emit(r Response) {
	select {
	case c.responses <- r:
	case <-c.done:
	}
}
