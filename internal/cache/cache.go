// Package cache memoizes computed plans.
//
// Every split operation is a pure function of its arguments, so a result can be
// reused for as long as the process lives. Requests are encoded into a canonical
// byte key, hashed with XXH3 and stored in a concurrent xsync.Map. The full key
// is kept next to the value and compared on lookup, so a hash collision is a miss
// rather than a wrong answer.
package cache

import (
	"bytes"
	"encoding/binary"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/zeebo/xxh3"
)

type entry[V any] struct {
	key   []byte
	value V
}

// Cache is a bounded, concurrency-safe memo table.
//
// When the number of entries reaches the bound the table is cleared before the
// new entry is stored. Plans are cheap to recompute, so a full reset keeps the
// bookkeeping trivial.
type Cache[V any] struct {
	entries    *xsync.Map[uint64, entry[V]]
	maxEntries int
}

// New creates a cache holding at most maxEntries values.
//
// Parameters:
//   - maxEntries: Upper bound on stored values, must be > 0
//
// Returns:
//   - *Cache[V]: An empty cache
func New[V any](maxEntries int) *Cache[V] {
	if maxEntries <= 0 {
		maxEntries = 1
	}

	return &Cache[V]{
		entries:    xsync.NewMap[uint64, entry[V]](),
		maxEntries: maxEntries,
	}
}

// Get returns the value stored under key.
func (c *Cache[V]) Get(key []byte) (V, bool) {
	e, ok := c.entries.Load(xxh3.Hash(key))
	if !ok || !bytes.Equal(e.key, key) {
		var zero V

		return zero, false
	}

	return e.value, true
}

// Put stores value under key, replacing any entry with the same digest.
//
// The caller must not modify key afterwards.
func (c *Cache[V]) Put(key []byte, value V) {
	h := xxh3.Hash(key)
	if _, ok := c.entries.Load(h); !ok && c.entries.Size() >= c.maxEntries {
		c.entries.Clear()
	}
	c.entries.Store(h, entry[V]{key: key, value: value})
}

// Len returns the number of stored values.
func (c *Cache[V]) Len() int {
	return c.entries.Size()
}

// Clear drops every stored value.
func (c *Cache[V]) Clear() {
	c.entries.Clear()
}

// Key builds the canonical byte encoding of a request.
//
// The encoding is the length-prefixed name followed by each argument as a
// zig-zag varint. Two requests produce equal keys iff their names and argument
// lists are equal.
type Key struct {
	buf []byte
}

// NewKey starts a key for the named operation.
func NewKey(name string) *Key {
	k := &Key{buf: make([]byte, 0, len(name)+16)}
	k.buf = binary.AppendUvarint(k.buf, uint64(len(name)))
	k.buf = append(k.buf, name...)

	return k
}

// Int appends one argument.
func (k *Key) Int(v int64) *Key {
	k.buf = binary.AppendVarint(k.buf, v)

	return k
}

// Ints appends a length-prefixed argument list.
func (k *Key) Ints(vs ...int64) *Key {
	k.buf = binary.AppendUvarint(k.buf, uint64(len(vs)))
	for _, v := range vs {
		k.buf = binary.AppendVarint(k.buf, v)
	}

	return k
}

// Bytes returns the encoded key.
func (k *Key) Bytes() []byte {
	return k.buf
}
