package variant

import "strconv"

// objectBody is the mutable container an Object handle aliases. Keys
// preserve insertion order; index maps a key to its position in both
// keys and vals so Get/Set are O(1) while iteration stays ordered. Remove
// is O(n): it shifts the later members down and re-indexes them.
type objectBody struct {
	keys  []string
	vals  []Variant
	index map[string]int
}

func newObjectBody() *objectBody {
	return &objectBody{index: make(map[string]int)}
}

func (o *objectBody) count() int { return len(o.keys) }

func (o *objectBody) duplicate(depth, maxDepth int) *objectBody {
	if depth > maxDepth {
		panic(depthGuardPanic{})
	}
	out := newObjectBody()
	for i, k := range o.keys {
		out.set(k, o.vals[i].duplicate(depth+1, maxDepth))
	}
	return out
}

func (o *objectBody) set(key string, v Variant) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

func (o *objectBody) get(key string) (Variant, bool) {
	i, ok := o.index[key]
	if !ok {
		return Variant{}, false
	}
	return o.vals[i], true
}

func (o *objectBody) remove(key string) bool {
	i, ok := o.index[key]
	if !ok {
		return false
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.index, key)
	for k, idx := range o.index {
		if idx > i {
			o.index[k] = idx - 1
		}
	}
	return true
}

// structuralEquals performs full recursive equality (unlike Variant's
// body-identity Equals): two objectBody values compare equal when they
// have the same keys, each mapped to an equal value, recursing into
// nested Array/Object members rather than stopping at their body
// pointers. Key order does not affect the result.
func (o *objectBody) structuralEquals(b *objectBody, depth, maxDepth int) (bool, bool) {
	if depth > maxDepth {
		return false, false
	}
	if len(o.keys) != len(b.keys) {
		return false, true
	}
	for i, k := range o.keys {
		bv, ok := b.get(k)
		if !ok {
			return false, true
		}
		eq, within := structuralEqualsDepth(o.vals[i], bv, depth, maxDepth)
		if !within {
			return false, false
		}
		if !eq {
			return false, true
		}
	}
	return true, true
}

func (o *objectBody) equivalent(b *objectBody, depth, maxDepth int) (bool, bool) {
	if depth > maxDepth {
		return false, false
	}
	if len(o.keys) != len(b.keys) {
		return false, true
	}
	for i, k := range o.keys {
		bv, ok := b.get(k)
		if !ok {
			return false, true
		}
		eq, within := equivalentDepth(o.vals[i], bv, depth, maxDepth)
		if !within {
			return false, false
		}
		if !eq {
			return false, true
		}
	}
	return true, true
}

func (b *objectBody) handle() Object { return Object{body: b} }

func indexKey(i int) string { return strconv.Itoa(i) }

// Object is a handle onto a shared, mutable collection of ordered,
// uniquely-keyed Variant members. Copying an Object by value aliases the
// same underlying members; use Duplicate to fork an independent copy.
type Object struct {
	body *objectBody
}

func newObjectHandle(b *objectBody) Object { return Object{body: b} }

// Count returns the number of members.
func (o Object) Count() int { return o.body.count() }

// IsEmpty reports whether the object has zero members.
func (o Object) IsEmpty() bool { return o.body.count() == 0 }

// ContainsKey reports whether key names a member.
func (o Object) ContainsKey(key string) bool {
	_, ok := o.body.index[key]
	return ok
}

// Keys returns the member keys in insertion order. The returned slice
// must not be mutated by the caller.
func (o Object) Keys() []string { return o.body.keys }

// Values returns the member values in the same order as Keys. The
// returned slice must not be mutated by the caller.
func (o Object) Values() []Variant { return o.body.vals }

// Get returns the value for key, or a Null Variant if key is absent. Get
// never fails and never creates the key.
func (o Object) Get(key string) Variant {
	v, ok := o.body.get(key)
	if !ok {
		return NewNull()
	}
	return v
}

// Set creates or overwrites the member named key.
func (o Object) Set(key string, v Variant) { o.body.set(key, v) }

// Add inserts v under key, reporting false and leaving o unchanged if key
// is already present. Unlike Set, Add never overwrites an existing
// member; callers that want insert-or-replace semantics should use Set.
func (o Object) Add(key string, v Variant) bool {
	if o.ContainsKey(key) {
		return false
	}
	o.body.set(key, v)
	return true
}

// Key returns a pointer to the member named key, creating it with a Null
// value first if absent. This is what makes `obj.Key("a").Assign(x)`
// behave like an auto-creating assignment.
func (o *Object) Key(key string) *Variant {
	if i, ok := o.body.index[key]; ok {
		return &o.body.vals[i]
	}
	o.body.set(key, NewNull())
	i := o.body.index[key]
	return &o.body.vals[i]
}

// Remove deletes the member named key, reporting whether it was present.
func (o *Object) Remove(key string) bool { return o.body.remove(key) }

// Clear removes every member.
func (o *Object) Clear() {
	o.body.keys = o.body.keys[:0]
	o.body.vals = o.body.vals[:0]
	o.body.index = make(map[string]int)
}

// IsSimple reports whether the object is empty, or has exactly one member
// whose value is a scalar (no nested array or object). Unlike Array's
// IsSimple, a multi-member object with only scalar values is not simple:
// the emitter's Simple whitespace regime uses this to decide whether an
// object is worth collapsing onto one line.
func (o Object) IsSimple() bool {
	switch len(o.body.vals) {
	case 0:
		return true
	case 1:
		return !o.body.vals[0].Kind().IsComposite()
	default:
		return false
	}
}

// Duplicate returns an independent deep copy of the object.
func (o Object) Duplicate() Object {
	v := Variant{kind: ObjectKind, obj: o.body}
	return v.Duplicate().obj.handle()
}

// Equal reports structural equality with no coercion (unlike
// Variant.Equals, which treats two Object kinds as equal only when they
// share the same body).
func (o Object) Equal(other Object) bool {
	eq, _ := o.body.structuralEquals(other.body, 0, DefaultMaxDepth)
	return eq
}

// Equivalent reports coercing equality; see Variant.Equivalent.
func (o Object) Equivalent(other Object) bool {
	eq, within := o.body.equivalent(other.body, 0, DefaultMaxDepth)
	return within && eq
}

// TryConvertToArray attempts to view the object as an array: it succeeds
// only if every key parses as a non-negative base-10 integer with no
// leading zeros other than "0" itself — vacuously true for an empty
// object, which converts to an empty array. On success, the returned
// array has one slot per integer from 0 through the highest key present;
// any gap in the key sequence is filled with a Null Variant (no slot is
// left undefined in the range).
func (o Object) TryConvertToArray() (Array, bool) {
	if o.Count() == 0 {
		return newArrayHandle(newArrayBody()), true
	}
	highest := -1
	for _, k := range o.body.keys {
		n, ok := parseArrayIndexKey(k)
		if !ok {
			return Array{}, false
		}
		if n > highest {
			highest = n
		}
	}
	arr := newArrayHandle(newArrayBody())
	arr.Resize(highest + 1)
	for i, k := range o.body.keys {
		n, _ := parseArrayIndexKey(k)
		*arr.Index(n) = o.body.vals[i]
	}
	return arr, true
}

func parseArrayIndexKey(k string) (int, bool) {
	if k == "0" {
		return 0, true
	}
	if k == "" || k[0] == '0' || k[0] == '-' {
		return 0, false
	}
	n, err := strconv.Atoi(k)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
