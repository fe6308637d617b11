// Package varview implements the dual-alphabet view types that the parser
// and emitter are built on: immutable (buffer, offset, length) windows over
// either 16-bit code units or UTF-8 bytes.
//
// Two concrete types are provided rather than a single generic one: ByteView
// and CharView share most of their operations but not their storage, and
// the hot parsing path is duplicated per alphabet rather than written
// generically, trading code size for monomorphised performance. CharView
// has no HasPrefixFold, EqualString, or ParseInt32; ByteView materializes
// with String where CharView uses ToString.
package varview

// ByteView is an immutable window over a []byte buffer. The buffer may
// outlive the view and may be shared by many views.
type ByteView struct {
	buf    []byte
	offset int
	length int
}

// NewByteView constructs a view over the entirety of buf.
func NewByteView(buf []byte) ByteView {
	return ByteView{buf: buf, length: len(buf)}
}

// Len reports the number of bytes in the view.
func (v ByteView) Len() int { return v.length }

// IsEmpty reports whether the view has zero length.
func (v ByteView) IsEmpty() bool { return v.length == 0 }

// Bytes materializes the view's content as a new byte slice.
func (v ByteView) Bytes() []byte {
	b := make([]byte, v.length)
	copy(b, v.buf[v.offset:v.offset+v.length])
	return b
}

// String materializes the view's content as a string.
func (v ByteView) String() string {
	return string(v.buf[v.offset : v.offset+v.length])
}

// At returns the byte at index i, or 0 if i is exactly one past the end.
// Indexing further out of range panics, mirroring slice semantics.
func (v ByteView) At(i int) byte {
	if i == v.length {
		return 0 // synthetic end-of-input sentinel
	}
	return v.buf[v.offset+i]
}

// Slice returns the subview [lo:hi).
func (v ByteView) Slice(lo, hi int) ByteView {
	if lo < 0 || hi > v.length || lo > hi {
		panic("varview: ByteView.Slice out of range")
	}
	return ByteView{buf: v.buf, offset: v.offset + lo, length: hi - lo}
}

func (v ByteView) raw() []byte { return v.buf[v.offset : v.offset+v.length] }

// Equal reports whether the two views have identical content.
func (v ByteView) Equal(o ByteView) bool {
	if v.length != o.length {
		return false
	}
	a, b := v.raw(), o.raw()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualString reports whether the view's content equals s byte-for-byte.
func (v ByteView) EqualString(s string) bool {
	if v.length != len(s) {
		return false
	}
	a := v.raw()
	for i := range a {
		if a[i] != s[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the view starts with s.
func (v ByteView) HasPrefix(s string) bool {
	if v.length < len(s) {
		return false
	}
	return v.Slice(0, len(s)).EqualString(s)
}

// HasPrefixFold is an ASCII case-insensitive HasPrefix.
func (v ByteView) HasPrefixFold(s string) bool {
	if v.length < len(s) {
		return false
	}
	a := v.raw()
	for i := 0; i < len(s); i++ {
		if asciiLower(a[i]) != asciiLower(s[i]) {
			return false
		}
	}
	return true
}

// TrimSpace trims leading and trailing ASCII whitespace (space, tab, CR, LF).
func (v ByteView) TrimSpace() ByteView {
	a := v.raw()
	lo, hi := 0, len(a)
	for lo < hi && isASCIISpace(a[lo]) {
		lo++
	}
	for hi > lo && isASCIISpace(a[hi-1]) {
		hi--
	}
	return v.Slice(lo, hi)
}

// Compare returns -1, 0, or +1 by lexicographic byte value, consistent with
// bytes.Compare.
func (v ByteView) Compare(o ByteView) int {
	a, b := v.raw(), o.raw()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return +1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return +1
	default:
		return 0
	}
}

// Split partitions the view at every run of bytes matching pred, omitting
// the separator runs from the result.
func (v ByteView) Split(pred func(byte) bool) []ByteView {
	a := v.raw()
	var out []ByteView
	start := -1
	for i := 0; i <= len(a); i++ {
		if i < len(a) && !pred(a[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, v.Slice(start, i))
			start = -1
		}
	}
	return out
}

// ParseInt32 parses a leading, possibly-signed decimal integer.
// It returns the value and the number of bytes consumed; zero consumed
// bytes means no digits were found.
func (v ByteView) ParseInt32() (int32, int) {
	n, consumed := v.ParseInt64()
	return int32(n), consumed
}

// ParseInt64 parses a leading, possibly-signed decimal integer.
func (v ByteView) ParseInt64() (int64, int) {
	a := v.raw()
	i := 0
	neg := false
	if i < len(a) && (a[i] == '+' || a[i] == '-') {
		neg = a[i] == '-'
		i++
	}
	start := i
	var n int64
	for i < len(a) && a[i] >= '0' && a[i] <= '9' {
		n = n*10 + int64(a[i]-'0')
		i++
	}
	if i == start {
		return 0, 0
	}
	if neg {
		n = -n
	}
	return n, i
}

// ParseFloat64 parses a leading decimal floating-point number
// (sign, digits, optional fraction, optional exponent). It returns the
// value and the number of bytes consumed.
func (v ByteView) ParseFloat64() (float64, int) {
	a := v.raw()
	n := consumeFloatShape(a)
	if n == 0 {
		return 0, 0
	}
	f, _ := parseASCIIFloat(string(a[:n]))
	return f, n
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isASCIISpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// CharView is an immutable window over a []uint16 buffer of UTF-16 code
// units, the 16-bit-character alphabet named in the spec (mirroring a
// platform string's native representation). The buffer may outlive the
// view and may be shared by many views.
type CharView struct {
	buf    []uint16
	offset int
	length int
}

// NewCharView constructs a view over the entirety of buf.
func NewCharView(buf []uint16) CharView {
	return CharView{buf: buf, length: len(buf)}
}

// Len reports the number of code units in the view.
func (v CharView) Len() int { return v.length }

// IsEmpty reports whether the view has zero length.
func (v CharView) IsEmpty() bool { return v.length == 0 }

// Units materializes the view's content as a new []uint16 slice.
func (v CharView) Units() []uint16 {
	u := make([]uint16, v.length)
	copy(u, v.buf[v.offset:v.offset+v.length])
	return u
}

func (v CharView) raw() []uint16 { return v.buf[v.offset : v.offset+v.length] }

// At returns the code unit at index i, or 0 if i is exactly one past the
// end. Indexing further out of range panics, mirroring slice semantics.
func (v CharView) At(i int) uint16 {
	if i == v.length {
		return 0
	}
	return v.buf[v.offset+i]
}

// Slice returns the subview [lo:hi).
func (v CharView) Slice(lo, hi int) CharView {
	if lo < 0 || hi > v.length || lo > hi {
		panic("varview: CharView.Slice out of range")
	}
	return CharView{buf: v.buf, offset: v.offset + lo, length: hi - lo}
}

// Equal reports whether the two views have identical content.
func (v CharView) Equal(o CharView) bool {
	if v.length != o.length {
		return false
	}
	a, b := v.raw(), o.raw()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether the view starts with the UTF-16 encoding of s.
func (v CharView) HasPrefix(s string) bool {
	enc := encodeUTF16(s)
	if v.length < len(enc) {
		return false
	}
	a := v.raw()
	for i, c := range enc {
		if a[i] != c {
			return false
		}
	}
	return true
}

// TrimSpace trims leading and trailing ASCII whitespace.
func (v CharView) TrimSpace() CharView {
	a := v.raw()
	lo, hi := 0, len(a)
	for lo < hi && isASCIISpaceUnit(a[lo]) {
		lo++
	}
	for hi > lo && isASCIISpaceUnit(a[hi-1]) {
		hi--
	}
	return v.Slice(lo, hi)
}

// Compare returns -1, 0, or +1 by lexicographic code-unit value.
func (v CharView) Compare(o CharView) int {
	a, b := v.raw(), o.raw()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return +1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return +1
	default:
		return 0
	}
}

// Split partitions the view at every run of code units matching pred.
func (v CharView) Split(pred func(uint16) bool) []CharView {
	a := v.raw()
	var out []CharView
	start := -1
	for i := 0; i <= len(a); i++ {
		if i < len(a) && !pred(a[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, v.Slice(start, i))
			start = -1
		}
	}
	return out
}

// ParseInt64 parses a leading, possibly-signed decimal integer.
func (v CharView) ParseInt64() (int64, int) {
	a := v.raw()
	i := 0
	neg := false
	if i < len(a) && (a[i] == '+' || a[i] == '-') {
		neg = a[i] == '-'
		i++
	}
	start := i
	var n int64
	for i < len(a) && a[i] >= '0' && a[i] <= '9' {
		n = n*10 + int64(a[i]-'0')
		i++
	}
	if i == start {
		return 0, 0
	}
	if neg {
		n = -n
	}
	return n, i
}

// ParseFloat64 parses a leading decimal floating-point number.
func (v CharView) ParseFloat64() (float64, int) {
	a := v.raw()
	n := consumeFloatShapeChars(a)
	if n == 0 {
		return 0, 0
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = byte(a[i])
	}
	f, _ := parseASCIIFloat(string(buf))
	return f, n
}

func isASCIISpaceUnit(c uint16) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// ToString decodes the view's UTF-16 code units into a Go (UTF-8) string.
func (v CharView) ToString() string { return decodeUTF16(v.raw()) }
