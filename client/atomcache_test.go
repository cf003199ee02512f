package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x11wire/x11c/proto"
)

func TestAtomCacheMissThenHit(t *testing.T) {
	c := newAtomCache(8)
	_, ok := c.get("WM_PROTOCOLS")
	assert.False(t, ok)

	c.put("WM_PROTOCOLS", proto.Atom(42))
	got, ok := c.get("WM_PROTOCOLS")
	assert.True(t, ok)
	assert.EqualValues(t, 42, got)
}

func TestAtomCacheZeroSizeDisablesCaching(t *testing.T) {
	c := newAtomCache(0)
	c.put("WM_PROTOCOLS", proto.Atom(1))
	_, ok := c.get("WM_PROTOCOLS")
	assert.False(t, ok)
}

func TestAtomCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newAtomCache(1)
	c.put("A", proto.Atom(1))
	c.put("B", proto.Atom(2))

	_, ok := c.get("A")
	assert.False(t, ok, "A should have been evicted once the 1-entry cache filled with B")

	got, ok := c.get("B")
	assert.True(t, ok)
	assert.EqualValues(t, 2, got)
}
