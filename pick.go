package variant

import (
	"strconv"
	"strings"
)

// Pick walks v through a path, returning the Variant found at the end, or
// a Null Variant if any step fails to resolve — an absent key, an
// out-of-range index, or a scalar encountered where a container was
// expected. Pick never panics and never mutates v or anything it
// contains.
//
// Called with a single string argument, Pick matches the spec's
// dot-separated path form: the string is split on ".", each segment is
// trimmed, and each segment addresses an Object by key or an Array by
// its integer value (parsed from the segment). Called with more than one
// argument, each argument is used directly as one path step (a string
// for an Object key, an int for an Array index) — the idiomatic way to
// address a path built up programmatically rather than typed as text.
func (v Variant) Pick(path ...any) Variant {
	if len(path) == 1 {
		if s, ok := path[0].(string); ok {
			return v.pickDotPath(s)
		}
	}
	cur := v
	for _, step := range path {
		switch s := step.(type) {
		case string:
			if cur.kind != ObjectKind {
				return NewNull()
			}
			val, ok := cur.obj.get(s)
			if !ok {
				return NewNull()
			}
			cur = val
		case int:
			if cur.kind != ArrayKind {
				return NewNull()
			}
			cur = cur.arr.handle().Get(s)
		default:
			return NewNull()
		}
	}
	return cur
}

func (v Variant) pickDotPath(path string) Variant {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		seg = strings.TrimSpace(seg)
		switch cur.kind {
		case ObjectKind:
			val, ok := cur.obj.get(seg)
			if !ok {
				return NewNull()
			}
			cur = val
		case ArrayKind:
			n, err := strconv.Atoi(seg)
			if err != nil {
				return NewNull()
			}
			cur = cur.arr.handle().Get(n)
		default:
			return NewNull()
		}
	}
	return cur
}
