package importcache

import (
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/importcache/internal/core/domain"
)

// pathIndex maps every declared path to its item. Keys are hashes; the stored
// path is compared on lookup, so a collision falls back to walking the tree.
type pathIndex struct {
	items map[uint64]*Item
}

func newPathIndex(roots []*Item) *pathIndex {
	x := &pathIndex{items: make(map[uint64]*Item)}
	var walk func(items []*Item)
	walk = func(items []*Item) {
		for _, it := range items {
			key := xxhash.Sum64String(it.path.String())
			if _, taken := x.items[key]; !taken {
				x.items[key] = it
			}
			walk(it.children)
		}
	}
	walk(roots)
	return x
}

func (x *pathIndex) lookup(p domain.Path) *Item {
	it := x.items[xxhash.Sum64String(p.String())]
	if it == nil || it.path != p {
		return nil
	}
	return it
}

func (x *pathIndex) len() int {
	return len(x.items)
}
