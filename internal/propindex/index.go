// Package propindex implements the insertion-ordered, unique-key index
// a Node's property map needs (spec design note: "a hash table +
// insertion-order list"). It tracks keys only; the Node holds the
// parallel slice of property values at the slots this index hands out.
package propindex

import "github.com/dolthub/maphash"

// Index maps property keys to a stable slot number, preserving the order
// keys were first inserted in. Re-inserting an existing key returns its
// existing slot (the caller overwrites the value there) rather than
// appending a duplicate, matching the "add always overwrites" contract
// property setters need (§4.2).
type Index struct {
	hasher  maphash.Hasher[string]
	buckets map[uint64][]int
	order   []string
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		hasher:  maphash.NewHasher[string](),
		buckets: make(map[uint64][]int),
	}
}

// Len returns the number of distinct keys held.
func (ix *Index) Len() int {
	return len(ix.order)
}

// Keys returns the keys in insertion order. The returned slice must not
// be mutated by the caller.
func (ix *Index) Keys() []string {
	return ix.order
}

// Slot returns the slot for key, and whether it is present.
func (ix *Index) Slot(key string) (int, bool) {
	h := ix.hasher.Hash(key)
	for _, slot := range ix.buckets[h] {
		if ix.order[slot] == key {
			return slot, true
		}
	}
	return 0, false
}

// Insert returns the slot for key, creating one at the end of the
// insertion order if key is not already present. The second return value
// reports whether a new slot was created.
func (ix *Index) Insert(key string) (slot int, created bool) {
	if slot, ok := ix.Slot(key); ok {
		return slot, false
	}

	h := ix.hasher.Hash(key)
	slot = len(ix.order)
	ix.order = append(ix.order, key)
	ix.buckets[h] = append(ix.buckets[h], slot)
	return slot, true
}

// Clone returns a deep copy whose mutation never affects ix.
func (ix *Index) Clone() *Index {
	clone := &Index{
		hasher:  ix.hasher,
		buckets: make(map[uint64][]int, len(ix.buckets)),
		order:   append([]string(nil), ix.order...),
	}
	for h, slots := range ix.buckets {
		clone.buckets[h] = append([]int(nil), slots...)
	}
	return clone
}
