package variant

import "strconv"

// Add coerces v to ArrayKind in place (see EnsureArray) and appends x.
// Calling Add on a fresh, Null Variant produces a one-element array;
// calling it again appends a second element, matching the "auto-coercion
// is load-bearing behaviour" rule for container-style mutators.
func (v *Variant) Add(x Variant) { v.EnsureArray().Add(x) }

// Set writes x at the position key addresses, following the same dispatch
// as Index and Key: an int key writes through Index (on an Object it
// becomes the stringified member key; any other non-Array kind is first
// coerced to ArrayKind, and the array extends with Null as needed); a
// string key writes through Key (on an Array a non-negative integer key
// addresses that index; otherwise v is coerced to ObjectKind and the
// member is inserted or replaced). Set panics if key is neither int nor
// string.
func (v *Variant) Set(key any, x Variant) {
	switch k := key.(type) {
	case int:
		*v.Index(k) = x
	case string:
		*v.Key(k) = x
	default:
		panic("variant: Set key must be int or string")
	}
}

// Index provides v's indexed (integer) access, mirroring the spec's
// "integer index dispatches to the Array accessor" rule: on an Object,
// i is stringified and dispatched to Key; on any other non-Array kind, v
// is first coerced to an Array (see EnsureArray, which preserves a prior
// scalar as the array's sole element). The returned pointer aliases the
// live slot, so assigning through it (`*v.Index(i) = x`) mutates v and,
// for Array/Object kinds, anything else sharing the same body. Like
// Array.Index, it extends the array with Null elements up to i.
func (v *Variant) Index(i int) *Variant {
	if v.kind == ObjectKind {
		return v.Key(indexKey(i))
	}
	arr := v.EnsureArray()
	return arr.Index(i)
}

// Key provides v's indexed (string) access, mirroring the spec's "string
// key dispatches to the Object accessor" rule: on an Array, key is parsed
// as a non-negative integer if possible and dispatched to Index;
// otherwise (and for any non-Object, non-Array kind) v is first coerced
// to an Object (see EnsureObject, which preserves a prior scalar under
// the "value" member). The returned pointer aliases the live slot.
func (v *Variant) Key(key string) *Variant {
	if v.kind == ArrayKind {
		if n, ok := parseIndexDispatchKey(key); ok {
			return v.arr.handle().Index(n)
		}
	}
	obj := v.EnsureObject()
	return obj.Key(key)
}

// parseIndexDispatchKey parses key as a non-negative base-10 integer for
// the purpose of Variant.Key's array-key dispatch. Unlike
// parseArrayIndexKey (used by Object.TryConvertToArray, which rejects
// leading zeros to keep re-serialization canonical), any non-negative
// integer spelling is accepted here since the caller is choosing a slot
// to write, not validating an already-serialized key set.
func parseIndexDispatchKey(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
