package client

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/x11wire/x11c/proto"
)

// atomCache is a bounded name->Atom cache populated from successful
// InternAtom replies. It never changes wire behavior: a miss always falls
// through to a real InternAtom round trip. GetAtomName (the reverse
// lookup) is deliberately not cached here; see SPEC_FULL.md.
type atomCache struct {
	cache *lru.Cache
}

func newAtomCache(size int) *atomCache {
	if size <= 0 {
		return &atomCache{}
	}
	c, err := lru.New(size)
	if err != nil {
		// lru.New only errors on size <= 0, already excluded above.
		return &atomCache{}
	}
	return &atomCache{cache: c}
}

func (a *atomCache) get(name string) (proto.Atom, bool) {
	if a.cache == nil {
		return 0, false
	}
	v, ok := a.cache.Get(name)
	if !ok {
		return 0, false
	}
	return v.(proto.Atom), true
}

func (a *atomCache) put(name string, atom proto.Atom) {
	if a.cache == nil {
		return
	}
	a.cache.Add(name, atom)
}
