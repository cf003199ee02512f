package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x11wire/x11c/proto"
)

func newTestClient() *Client {
	return &Client{
		responses: make(chan Response, 16),
		done:      make(chan struct{}),
	}
}

func TestWaitForResponseMatchesOwnSequence(t *testing.T) {
	c := newTestClient()
	c.responses <- Response{Sequence: 3, Reply: &proto.InternAtomReply{}}

	resp, err := c.WaitForResponse(3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, resp.Sequence)
}

// TestWaitForResponseStashesOutOfOrderIntoBacklog covers out-of-order
// arrival: an event for a different sequence arrives before the reply the
// caller is actually waiting for, and must be preserved (not dropped) for
// a later Next()/WaitForResponse call, in the order it was observed.
func TestWaitForResponseStashesOutOfOrderIntoBacklog(t *testing.T) {
	c := newTestClient()
	c.responses <- Response{Sequence: 0, Event: &proto.MapNotifyEvent{}}
	c.responses <- Response{Sequence: 5, Reply: &proto.GetGeometryReply{}}

	resp, err := c.WaitForResponse(5)
	require.NoError(t, err)
	assert.EqualValues(t, 5, resp.Sequence)

	// The stashed event must now surface via Next(), in its original
	// arrival order.
	next, err := c.Next()
	require.NoError(t, err)
	assert.Nil(t, next.Reply)
	assert.NotNil(t, next.Event)
}

func TestWaitForResponseFindsAlreadyBacklogged(t *testing.T) {
	c := newTestClient()
	c.backlog = []Response{
		{Sequence: 1, Event: &proto.ExposeEvent{}},
		{Sequence: 2, Reply: &proto.InternAtomReply{}},
	}

	resp, err := c.WaitForResponse(2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Sequence)

	// Sequence 1 remains backlogged, still in place.
	require.Len(t, c.backlog, 1)
	assert.EqualValues(t, 1, c.backlog[0].Sequence)
}

func TestNextDrainsBacklogBeforeChannel(t *testing.T) {
	c := newTestClient()
	c.backlog = []Response{{Sequence: 1, Event: &proto.ExposeEvent{}}}
	c.responses <- Response{Sequence: 2, Event: &proto.ExposeEvent{}}

	first, err := c.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.Sequence)

	second, err := c.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 2, second.Sequence)
}

func TestGetMessageReturnsFalseWhenNothingReady(t *testing.T) {
	c := newTestClient()
	_, ok := c.GetMessage()
	assert.False(t, ok)
}

func TestGetMessageDrainsBacklogBeforeChannel(t *testing.T) {
	c := newTestClient()
	c.backlog = []Response{{Sequence: 1, Event: &proto.ExposeEvent{}}}
	c.responses <- Response{Sequence: 2, Event: &proto.ExposeEvent{}}

	first, ok := c.GetMessage()
	require.True(t, ok)
	assert.EqualValues(t, 1, first.Sequence)

	second, ok := c.GetMessage()
	require.True(t, ok)
	assert.EqualValues(t, 2, second.Sequence)

	_, ok = c.GetMessage()
	assert.False(t, ok, "channel and backlog are both drained now")
}

func TestWaitForResponseReturnsTransportErrorOnClosedChannel(t *testing.T) {
	c := newTestClient()
	close(c.responses)

	_, err := c.WaitForResponse(1)
	require.Error(t, err)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
