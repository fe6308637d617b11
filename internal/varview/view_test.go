package varview

import "testing"

func TestByteViewBasics(t *testing.T) {
	v := NewByteView([]byte("hello world"))
	if v.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", v.Len())
	}
	if v.Slice(0, 5).String() != "hello" {
		t.Fatalf("Slice(0,5) = %q", v.Slice(0, 5).String())
	}
	if v.At(v.Len()) != 0 {
		t.Fatalf("At(len) = %d, want synthetic 0", v.At(v.Len()))
	}
	if !v.HasPrefix("hello") {
		t.Fatalf("HasPrefix(hello) = false")
	}
	if !v.Slice(0, 5).HasPrefixFold("HELLO") {
		t.Fatalf("HasPrefixFold(HELLO) = false")
	}
}

func TestByteViewTrimSpace(t *testing.T) {
	v := NewByteView([]byte("  \t x \r\n"))
	got := v.TrimSpace().String()
	if got != "x" {
		t.Fatalf("TrimSpace() = %q, want %q", got, "x")
	}
}

func TestByteViewCompare(t *testing.T) {
	a := NewByteView([]byte("abc"))
	b := NewByteView([]byte("abd"))
	if a.Compare(b) >= 0 {
		t.Fatalf("Compare(abc, abd) >= 0")
	}
	if b.Compare(a) <= 0 {
		t.Fatalf("Compare(abd, abc) <= 0")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("Compare(abc, abc) != 0")
	}
}

func TestByteViewSplit(t *testing.T) {
	v := NewByteView([]byte("a.b..c"))
	parts := v.Split(func(c byte) bool { return c == '.' })
	if len(parts) != 3 {
		t.Fatalf("Split: got %d parts, want 3", len(parts))
	}
	for i, want := range []string{"a", "b", "c"} {
		if parts[i].String() != want {
			t.Fatalf("Split[%d] = %q, want %q", i, parts[i].String(), want)
		}
	}
}

func TestByteViewParseInt64(t *testing.T) {
	tests := []struct {
		in       string
		wantN    int64
		wantUsed int
	}{
		{"123abc", 123, 3},
		{"-42", -42, 3},
		{"+7", 7, 2},
		{"abc", 0, 0},
		{"", 0, 0},
	}
	for _, tc := range tests {
		n, used := NewByteView([]byte(tc.in)).ParseInt64()
		if n != tc.wantN || used != tc.wantUsed {
			t.Errorf("ParseInt64(%q) = (%d,%d), want (%d,%d)", tc.in, n, used, tc.wantN, tc.wantUsed)
		}
	}
}

func TestByteViewParseFloat64(t *testing.T) {
	n, used := NewByteView([]byte("3.1415xyz")).ParseFloat64()
	if used != 6 {
		t.Fatalf("used = %d, want 6", used)
	}
	if n < 3.14 || n > 3.15 {
		t.Fatalf("n = %v", n)
	}
}

func TestCharViewRoundTrip(t *testing.T) {
	s := "héllo"
	cv := NewCharView(encodeUTF16(s))
	if cv.ToString() != s {
		t.Fatalf("round trip = %q, want %q", cv.ToString(), s)
	}
}

func TestCharViewHasPrefix(t *testing.T) {
	cv := NewCharView(encodeUTF16("nullable"))
	if !cv.HasPrefix("null") {
		t.Fatalf("HasPrefix(null) = false")
	}
}

func TestCharViewCompare(t *testing.T) {
	a := NewCharView(encodeUTF16("a"))
	b := NewCharView(encodeUTF16("b"))
	if a.Compare(b) >= 0 {
		t.Fatalf("Compare(a,b) >= 0")
	}
}
