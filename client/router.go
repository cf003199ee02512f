package client

// Next blocks for the next Response of any kind (reply, event, or error)
// not already claimed by a WaitForResponse call, in the order the reader
// goroutine produced them. It is the entry point for consuming
// asynchronous events; callers that only care about replies should use
// WaitForResponse instead.
func (c *Client) Next() (Response, error) {
	c.backlogMu.Lock()
	if len(c.backlog) > 0 {
		r := c.backlog[0]
		c.backlog = c.backlog[1:]
		c.backlogMu.Unlock()
		return r, nil
	}
	c.backlogMu.Unlock()

	r, ok := <-c.responses
	if !ok {
		return Response{}, c.transportError()
	}
	return r, nil
}

// GetMessage returns the next Response without blocking: the backlog is
// checked first, then a single non-blocking receive is attempted on the
// reader's channel. The second return value is false when neither source
// had anything ready, in which case the zero Response must be ignored.
func (c *Client) GetMessage() (Response, bool) {
	c.backlogMu.Lock()
	if len(c.backlog) > 0 {
		r := c.backlog[0]
		c.backlog = c.backlog[1:]
		c.backlogMu.Unlock()
		return r, true
	}
	c.backlogMu.Unlock()

	select {
	case r, ok := <-c.responses:
		if !ok {
			return Response{}, false
		}
		return r, true
	default:
		return Response{}, false
	}
}

// WaitForResponse blocks until the reply or error bearing the given
// sequence number arrives, returning it. Responses that arrive first with
// a different sequence (events, or replies/errors for other in-flight
// requests) are stashed on a router-local backlog in arrival order and
// replayed to the next Next() or WaitForResponse call, preserving the
// order they were originally observed in.
func (c *Client) WaitForResponse(seq uint16) (Response, error) {
	c.backlogMu.Lock()
	for i, r := range c.backlog {
		if r.Sequence == seq && (r.Reply != nil || r.Err != nil) {
			c.backlog = append(c.backlog[:i:i], c.backlog[i+1:]...)
			c.backlogMu.Unlock()
			return r, nil
		}
	}
	c.backlogMu.Unlock()

	for {
		r, ok := <-c.responses
		if !ok {
			return Response{}, c.transportError()
		}
		if r.Sequence == seq && (r.Reply != nil || r.Err != nil) {
			return r, nil
		}
		c.backlogMu.Lock()
		c.backlog = append(c.backlog, r)
		c.backlogMu.Unlock()
	}
}

func (c *Client) transportError() error {
	c.readErrMu.Lock()
	defer c.readErrMu.Unlock()
	if c.readErr != nil {
		return c.readErr
	}
	return &TransportError{Err: errClosed}
}

var errClosed = errConnectionClosed{}

type errConnectionClosed struct{}

func (errConnectionClosed) Error() string { return "connection closed" }
