package varintern

import (
	"testing"

	"github.com/gateboxlab/variant/internal/varview"
)

func TestSharedCacheInternsEqualContent(t *testing.T) {
	c := NewShared()
	a := c.GetBytes(varview.NewByteView([]byte("hello")))
	b := c.GetBytes(varview.NewByteView([]byte("hello")))
	if a != b {
		t.Fatalf("a != b")
	}
	if _, ok := c.TryGetBytes(varview.NewByteView([]byte("hello"))); !ok {
		t.Fatalf("TryGetBytes should find interned content")
	}
	if _, ok := c.TryGetBytes(varview.NewByteView([]byte("nope"))); ok {
		t.Fatalf("TryGetBytes should miss uninterned content")
	}
}

func TestCacheNeverEvicts(t *testing.T) {
	c := NewShared()
	var keep []string
	for i := 0; i < 500; i++ {
		s := c.GetBytes(varview.NewByteView([]byte{byte(i % 256), byte(i / 256)}))
		keep = append(keep, s)
	}
	for i, s := range keep {
		got := c.GetBytes(varview.NewByteView([]byte{byte(i % 256), byte(i / 256)}))
		if got != s {
			t.Fatalf("entry %d evicted: got %q, want %q", i, got, s)
		}
	}
}

func TestCacheMaxLenSkipsRecording(t *testing.T) {
	c := NewShared()
	c.maxLen = 3
	c.GetBytes(varview.NewByteView([]byte("abcdef")))
	if _, ok := c.TryGetBytes(varview.NewByteView([]byte("abcdef"))); ok {
		t.Fatalf("TryGetBytes should miss an over-length view")
	}
}

func TestCacheSetOverridesSubsequentGet(t *testing.T) {
	c := NewShared()
	v := varview.NewByteView([]byte("key"))
	c.SetBytes(v, "override")
	if got := c.GetBytes(v); got != "override" {
		t.Fatalf("GetBytes after SetBytes = %q, want %q", got, "override")
	}
}

func TestTemporaryCacheIsUnsynchronized(t *testing.T) {
	c := NewTemporary()
	if c.mu != nil {
		t.Fatalf("temporary cache should not allocate a mutex")
	}
	a := c.GetChars(varview.NewCharView(encodedUTF16ForTest("hi")))
	b := c.GetChars(varview.NewCharView(encodedUTF16ForTest("hi")))
	if a != b {
		t.Fatalf("a != b")
	}
}

func encodedUTF16ForTest(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		out = append(out, uint16(r))
	}
	return out
}
