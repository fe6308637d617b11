package variant

// arrayBody is the mutable container an Array handle aliases. Several
// Array values (and several Array-kind Variants) can point at the same
// arrayBody; only Duplicate forks it.
type arrayBody struct {
	items []Variant
}

func newArrayBody() *arrayBody { return &arrayBody{} }

func (a *arrayBody) count() int { return len(a.items) }

func (a *arrayBody) duplicate(depth, maxDepth int) *arrayBody {
	if depth > maxDepth {
		panic(depthGuardPanic{})
	}
	out := make([]Variant, len(a.items))
	for i, v := range a.items {
		out[i] = v.duplicate(depth+1, maxDepth)
	}
	return &arrayBody{items: out}
}

// structuralEquals performs full recursive equality (unlike Variant's
// body-identity Equals): two arrayBody values compare equal when every
// element compares equal, recursing into nested Array/Object elements
// rather than stopping at their body pointers.
func (a *arrayBody) structuralEquals(b *arrayBody, depth, maxDepth int) (bool, bool) {
	if depth > maxDepth {
		return false, false
	}
	if len(a.items) != len(b.items) {
		return false, true
	}
	for i := range a.items {
		eq, within := structuralEqualsDepth(a.items[i], b.items[i], depth, maxDepth)
		if !within {
			return false, false
		}
		if !eq {
			return false, true
		}
	}
	return true, true
}

func (a *arrayBody) equivalent(b *arrayBody, depth, maxDepth int) (bool, bool) {
	if depth > maxDepth {
		return false, false
	}
	if len(a.items) != len(b.items) {
		return false, true
	}
	for i := range a.items {
		eq, within := equivalentDepth(a.items[i], b.items[i], depth, maxDepth)
		if !within {
			return false, false
		}
		if !eq {
			return false, true
		}
	}
	return true, true
}

// Array is a handle onto a shared, mutable, ordered sequence of Variants.
// Copying an Array by value aliases the same underlying sequence; use
// Duplicate to fork an independent copy.
type Array struct {
	body *arrayBody
}

func newArrayHandle(b *arrayBody) Array { return Array{body: b} }

// Count returns the number of elements currently in the array.
func (a Array) Count() int { return a.body.count() }

// IsEmpty reports whether the array has zero elements.
func (a Array) IsEmpty() bool { return a.body.count() == 0 }

// Add appends v to the end of the array.
func (a Array) Add(v Variant) { a.body.items = append(a.body.items, v) }

// Get returns the element at i, or a Null Variant if i is out of range.
// Get never fails and never grows the array.
func (a Array) Get(i int) Variant {
	if i < 0 || i >= len(a.body.items) {
		return NewNull()
	}
	return a.body.items[i]
}

// Index returns a pointer to the element at i, growing the array with
// Null elements as needed so that index i always exists afterward. This
// is what makes `arr.Index(5).Assign(x)` behave like an auto-extending
// assignment rather than a bounds error.
func (a Array) Index(i int) *Variant {
	if i < 0 {
		i = 0
	}
	for i >= len(a.body.items) {
		a.body.items = append(a.body.items, NewNull())
	}
	return &a.body.items[i]
}

// Set overwrites the element at i, growing the array as needed (see
// Index).
func (a Array) Set(i int, v Variant) { *a.Index(i) = v }

// Resize grows or shrinks the array to exactly n elements, padding with
// Null Variants or truncating as needed.
func (a Array) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(a.body.items) {
		a.body.items = a.body.items[:n]
		return
	}
	for len(a.body.items) < n {
		a.body.items = append(a.body.items, NewNull())
	}
}

// Clear removes every element, leaving the array empty.
func (a Array) Clear() { a.body.items = a.body.items[:0] }

// Insert inserts v before the element currently at i. An i at or beyond
// the current length appends.
func (a Array) Insert(i int, v Variant) {
	if i < 0 {
		i = 0
	}
	if i >= len(a.body.items) {
		a.Add(v)
		return
	}
	a.body.items = append(a.body.items, NewNull())
	copy(a.body.items[i+1:], a.body.items[i:])
	a.body.items[i] = v
}

// RemoveAt deletes the element at i. Out-of-range indices are a no-op.
func (a Array) RemoveAt(i int) {
	if i < 0 || i >= len(a.body.items) {
		return
	}
	a.body.items = append(a.body.items[:i], a.body.items[i+1:]...)
}

// IndexOf returns the index of the first element Equivalent to v, or -1.
func (a Array) IndexOf(v Variant) int {
	for i, item := range a.body.items {
		if item.Equivalent(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element is Equivalent to v.
func (a Array) Contains(v Variant) bool { return a.IndexOf(v) >= 0 }

// Remove deletes the first element Equivalent to v, reporting whether one
// was found.
func (a Array) Remove(v Variant) bool {
	i := a.IndexOf(v)
	if i < 0 {
		return false
	}
	a.RemoveAt(i)
	return true
}

// IsSimple reports whether every element is a scalar (no nested array or
// object), the shape the spec calls a "simple" array.
func (a Array) IsSimple() bool {
	for _, v := range a.body.items {
		if v.Kind().IsComposite() {
			return false
		}
	}
	return true
}

// Duplicate returns an independent deep copy of the array.
func (a Array) Duplicate() Array {
	v := Variant{kind: ArrayKind, arr: a.body}
	return v.Duplicate().arr.handle()
}

// Equal reports structural equality with no coercion, recursing into
// nested elements (unlike Variant.Equals, which treats two Array kinds as
// equal only when they share the same body).
func (a Array) Equal(other Array) bool {
	eq, _ := a.body.structuralEquals(other.body, 0, DefaultMaxDepth)
	return eq
}

// Equivalent reports coercing equality; see Variant.Equivalent.
func (a Array) Equivalent(other Array) bool {
	eq, within := a.body.equivalent(other.body, 0, DefaultMaxDepth)
	return within && eq
}

// ConvertToObject returns an Object whose keys are the array's indices
// formatted as decimal strings ("0", "1", ...), each mapped to the
// corresponding element.
func (a Array) ConvertToObject() Object {
	obj := newObjectHandle(newObjectBody())
	for i, v := range a.body.items {
		obj.Set(indexKey(i), v)
	}
	return obj
}

func (b *arrayBody) handle() Array { return Array{body: b} }
