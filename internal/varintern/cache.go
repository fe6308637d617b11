// Package varintern implements the string-interning cache used by the
// parser: a map from a view's content to a materialized
// string, so that two occurrences of the same substring (an object key
// repeated across array elements, a commonly-repeated string value) share
// one Go string instead of each allocating their own copy.
package varintern

import (
	"sync"

	"github.com/gateboxlab/variant/internal/varview"
)

// DefaultMaxLen is the longest view that will ever be interned. Longer
// views are always freshly materialized by Get and never recorded, so a
// single enormous string value cannot grow the cache unboundedly.
const DefaultMaxLen = 256

// Logger receives Debug-level diagnostic traces from the cache. It is
// satisfied by *logrus.Logger and *logrus.Entry; nil disables tracing.
type Logger interface {
	Debugf(format string, args ...any)
}

// Cache is a string-interning cache over both view alphabets. The zero
// value is not usable; construct with NewShared or NewTemporary.
type Cache struct {
	mu     *sync.Mutex // nil for a temporary (unsynchronized) cache
	bytes  map[string]string
	chars  map[string]string
	maxLen int
	shrink bool
	log    Logger
}

// NewShared constructs a cache whose operations are serialized under a
// single mutex, suitable for sharing across an unbounded number of parses.
func NewShared() *Cache {
	return &Cache{
		mu:     new(sync.Mutex),
		bytes:  make(map[string]string),
		chars:  make(map[string]string),
		maxLen: DefaultMaxLen,
		shrink: true,
	}
}

// NewTemporary constructs an unsynchronized cache exclusive to a single
// parse call; it must not be shared across goroutines.
func NewTemporary() *Cache {
	return &Cache{
		bytes:  make(map[string]string),
		chars:  make(map[string]string),
		maxLen: DefaultMaxLen,
		shrink: false,
	}
}

// SetLogger attaches a diagnostic logger. Passing nil disables tracing.
func (c *Cache) SetLogger(l Logger) { c.log = l }

func (c *Cache) lock() {
	if c.mu != nil {
		c.mu.Lock()
	}
}

func (c *Cache) unlock() {
	if c.mu != nil {
		c.mu.Unlock()
	}
}

// keyFromBytes/keyFromChars build a map key from a view's raw content
// without going through a lossy alphabet conversion: bytes are used
// directly, and UTF-16 code units are packed two bytes apiece so that
// unpaired surrogates round-trip exactly.
func keyFromBytes(v varview.ByteView) string { return v.String() }

func keyFromChars(v varview.CharView) string {
	u := v.Units()
	b := make([]byte, len(u)*2)
	for i, c := range u {
		b[2*i] = byte(c)
		b[2*i+1] = byte(c >> 8)
	}
	return string(b)
}

// GetBytes returns the interned string for the view's content, materializing
// and recording it on first sight. Views longer than the cache's maximum
// length are never recorded; GetBytes simply returns a fresh materialization.
func (c *Cache) GetBytes(v varview.ByteView) string {
	if v.Len() > c.maxLen {
		return v.String()
	}
	key := keyFromBytes(v)
	c.lock()
	if s, ok := c.bytes[key]; ok {
		c.unlock()
		return s
	}
	s := key
	if c.shrink {
		s = string(shrinkCopy([]byte(key)))
	}
	c.bytes[key] = s
	c.unlock()
	if c.log != nil {
		c.log.Debugf("varintern: interned %d-byte string", len(s))
	}
	return s
}

// TryGetBytes reports whether the view's content is already interned,
// without materializing it on a miss.
func (c *Cache) TryGetBytes(v varview.ByteView) (string, bool) {
	if v.Len() > c.maxLen {
		return "", false
	}
	key := keyFromBytes(v)
	c.lock()
	s, ok := c.bytes[key]
	c.unlock()
	return s, ok
}

// SetBytes records an explicit replacement string for the view's content;
// subsequent GetBytes calls with equal content return s.
func (c *Cache) SetBytes(v varview.ByteView, s string) {
	if v.Len() > c.maxLen {
		return
	}
	key := keyFromBytes(v)
	c.lock()
	c.bytes[key] = s
	c.unlock()
}

// GetChars is the CharView analogue of GetBytes.
func (c *Cache) GetChars(v varview.CharView) string {
	if v.Len() > c.maxLen {
		return v.ToString()
	}
	key := keyFromChars(v)
	c.lock()
	if s, ok := c.chars[key]; ok {
		c.unlock()
		return s
	}
	s := v.ToString()
	c.chars[key] = s
	c.unlock()
	if c.log != nil {
		c.log.Debugf("varintern: interned %d-unit char string", v.Len())
	}
	return s
}

// TryGetChars is the CharView analogue of TryGetBytes.
func (c *Cache) TryGetChars(v varview.CharView) (string, bool) {
	if v.Len() > c.maxLen {
		return "", false
	}
	key := keyFromChars(v)
	c.lock()
	s, ok := c.chars[key]
	c.unlock()
	return s, ok
}

// SetChars is the CharView analogue of SetBytes.
func (c *Cache) SetChars(v varview.CharView, s string) {
	if v.Len() > c.maxLen {
		return
	}
	key := keyFromChars(v)
	c.lock()
	c.chars[key] = s
	c.unlock()
}

// Release drops every byte-alphabet entry of this cache; char-alphabet
// entries are kept. For a cache that shrinks its strings (a shared cache),
// a byte copy of each dropped string is also handed to the buffer pool.
// A temporary cache should call this when its owning parse completes.
func (c *Cache) Release() {
	c.lock()
	for k, s := range c.bytes {
		if c.shrink {
			putBuf([]byte(s))
		}
		delete(c.bytes, k)
	}
	c.unlock()
}
