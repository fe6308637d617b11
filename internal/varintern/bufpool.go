package varintern

import (
	"math/bits"
	"sync"
)

// Size-classed byte-slice pool, grounded in the teacher's internal buffer
// pool: each pool bucket holds buffers of capacity within
// [1<<shift : 2<<shift), so Get/Put round-trip through the bucket whose
// size class best matches the requested capacity.
const minPooledShift = 6 // smallest pooled bucket holds 64 bytes
const numBuckets = bits.UintSize - minPooledShift

var sliceHeaderPool = sync.Pool{New: func() any { return new([]byte) }}
var bucketPools [numBuckets]sync.Pool

// getBuf acquires an empty buffer with at least n bytes of capacity.
func getBuf(n int) []byte {
	if n < 1<<minPooledShift {
		n = 1 << minPooledShift
	}
	shift := bits.Len(uint(n - 1))
	if p, _ := bucketPools[shift-minPooledShift].Get().(*[]byte); p != nil {
		b := (*p)[:0]
		*p = nil
		sliceHeaderPool.Put(p)
		return b
	}
	return make([]byte, 0, 1<<shift)
}

// putBuf releases a buffer back to the pools. The caller must relinquish
// ownership of b.
func putBuf(b []byte) {
	if cap(b) < 1<<minPooledShift {
		return
	}
	p := sliceHeaderPool.Get().(*[]byte)
	*p = b
	shift := bits.Len(uint(cap(b))) - 1
	bucketPools[shift-minPooledShift].Put(p)
}

// shrinkCopy copies the content of b into a pooled buffer whose capacity
// is len(b) rounded up to a power of two (at least 64 bytes), so the
// original (possibly much larger) source buffer can be released by the
// caller. The string cache converts the result into its interned string,
// which is a further copy; the pooled buffer itself is not retained.
func shrinkCopy(b []byte) []byte {
	dst := getBuf(len(b))
	dst = append(dst, b...)
	return dst
}
