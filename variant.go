package variant

import "math"

// Variant is a mutable, dynamically-typed JSON value. Its zero value is a
// Null Variant, ready to use. Copying a Variant by value is cheap and
// always safe for scalar kinds; for ArrayKind and ObjectKind it aliases
// the same underlying container, matching the handles returned by
// AsArray/AsObject — use Duplicate to obtain an independent copy.
type Variant struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  *arrayBody
	obj  *objectBody
}

// NewNull returns a Null Variant. Equivalent to the zero value.
func NewNull() Variant { return Variant{} }

// NewBool returns a Boolean Variant holding b.
func NewBool(b bool) Variant { return Variant{kind: Boolean, b: b} }

// NewInt returns an Integer Variant holding i.
func NewInt(i int64) Variant { return Variant{kind: Integer, i: i} }

// NewFloat returns a Float Variant holding f.
func NewFloat(f float64) Variant { return Variant{kind: Float, f: f} }

// NewString returns a String Variant holding s.
func NewString(s string) Variant { return Variant{kind: String, s: s} }

// NewArray returns an Array Variant backed by a fresh, empty container.
func NewArray() Variant { return Variant{kind: ArrayKind, arr: newArrayBody()} }

// NewObject returns an Object Variant backed by a fresh, empty container.
func NewObject() Variant { return Variant{kind: ObjectKind, obj: newObjectBody()} }

// Kind reports which of the seven shapes v currently holds.
func (v Variant) Kind() Kind { return v.kind }

func (v Variant) IsNull() bool    { return v.kind == Null }
func (v Variant) IsBoolean() bool { return v.kind == Boolean }
func (v Variant) IsInteger() bool { return v.kind == Integer }
func (v Variant) IsFloat() bool   { return v.kind == Float }
func (v Variant) IsNumber() bool  { return v.kind == Integer || v.kind == Float }
func (v Variant) IsString() bool  { return v.kind == String }
func (v Variant) IsArray() bool   { return v.kind == ArrayKind }
func (v Variant) IsObject() bool  { return v.kind == ObjectKind }

// IsEmpty reports whether v holds its kind's "empty" value: Null is always
// empty; Boolean is empty when false; Integer is empty when zero; Float is
// empty when numerically zero (NaN is not zero, so it is not empty);
// String is empty when it has zero length; Array and Object are empty when
// they have zero elements/members.
func (v Variant) IsEmpty() bool {
	switch v.kind {
	case Null:
		return true
	case Boolean:
		return !v.b
	case Integer:
		return v.i == 0
	case Float:
		return v.f == 0
	case String:
		return v.s == ""
	case ArrayKind:
		return v.arr.count() == 0
	case ObjectKind:
		return v.obj.count() == 0
	default:
		return true
	}
}

// Assign overwrites v in place with other's kind and value. Unlike plain
// Go assignment, Assign exists so that a Variant reached through a pointer
// (for example a slot returned by Array.Index) can be rewritten without
// the caller re-deriving that slot's address.
func (v *Variant) Assign(other Variant) { *v = other }

// duplicate returns an independent deep copy of v: scalar kinds copy
// trivially, while ArrayKind and ObjectKind recursively duplicate their
// bodies so the result shares no mutable state with v. depth counts
// nested calls against the guard; it panics if depth exceeds maxDepth,
// mirroring the module's "no error return" contract for Duplicate.
func (v Variant) duplicate(depth, maxDepth int) Variant {
	if depth > maxDepth {
		panic(depthGuardPanic{})
	}
	switch v.kind {
	case ArrayKind:
		return Variant{kind: ArrayKind, arr: v.arr.duplicate(depth+1, maxDepth)}
	case ObjectKind:
		return Variant{kind: ObjectKind, obj: v.obj.duplicate(depth+1, maxDepth)}
	default:
		return v
	}
}

// Duplicate returns an independent deep copy of v. It panics if the tree
// nests deeper than DefaultMaxDepth; self-referential Array/Object bodies
// built through aliasing are the only realistic way to trigger that.
func (v Variant) Duplicate() Variant {
	return withDepthGuardRecovered(func() Variant { return v.duplicate(0, DefaultMaxDepth) })
}

// DefaultMaxDepth bounds recursive tree walks (Duplicate, Equivalent,
// Array.Equal, Object.Equal) absent an explicit override.
const DefaultMaxDepth = 64

type depthGuardPanic struct{}

func withDepthGuardRecovered(fn func() Variant) (result Variant) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(depthGuardPanic); ok {
				panic("variant: BUG: container nests deeper than the depth guard allows")
			}
			panic(r)
		}
	}()
	return fn()
}

// Equals reports whether v and other hold the same kind and the same
// value. No numeric or string coercion is applied (unlike Equivalent): a
// String("1") never equals an Integer(1). For ArrayKind and ObjectKind,
// Equals compares body identity, not contents — two separately-built
// trees with identical structure are never Equals, only Equivalent; see
// Array.Equal/Object.Equal for a recursive structural comparison.
func (v Variant) Equals(other Variant) bool {
	return equalsShallow(v, other)
}

func equalsShallow(a, b Variant) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Boolean:
		return a.b == b.b
	case Integer:
		return a.i == b.i
	case Float:
		return a.f == b.f
	case String:
		return a.s == b.s
	case ArrayKind:
		return a.arr == b.arr
	case ObjectKind:
		return a.obj == b.obj
	default:
		return false
	}
}

// structuralEqualsDepth is the recursive comparison backing Array.Equal
// and Object.Equal: unlike equalsShallow (which Variant.Equals uses and
// which stops at body identity for composites), it descends into nested
// Array/Object elements and compares their contents, bounded by
// maxDepth.
func structuralEqualsDepth(a, b Variant, depth, maxDepth int) (bool, bool) {
	if depth > maxDepth {
		return false, false
	}
	if a.kind != b.kind {
		return false, true
	}
	switch a.kind {
	case ArrayKind:
		return a.arr.structuralEquals(b.arr, depth+1, maxDepth)
	case ObjectKind:
		return a.obj.structuralEquals(b.obj, depth+1, maxDepth)
	default:
		return equalsShallow(a, b), true
	}
}

// Equivalent reports whether v and other denote the same value once the
// module's read-coercion table (see AsDouble, AsString) is taken into
// account: Integer(1), Float(1.0), and String("1") are all equivalent.
// Equivalent returns false, never an error, if the comparison would need
// to recurse deeper than DefaultMaxDepth.
func (v Variant) Equivalent(other Variant) bool {
	ok, within := equivalentDepth(v, other, 0, DefaultMaxDepth)
	return within && ok
}

func equivalentDepth(a, b Variant, depth, maxDepth int) (eq bool, within bool) {
	if depth > maxDepth {
		return false, false
	}
	if a.kind.IsComposite() || b.kind.IsComposite() {
		if a.kind != b.kind {
			return false, true
		}
		if a.kind == ArrayKind {
			return a.arr.equivalent(b.arr, depth+1, maxDepth)
		}
		return a.obj.equivalent(b.obj, depth+1, maxDepth)
	}
	if a.kind == String || b.kind == String {
		return a.AsString() == b.AsString(), true
	}
	if a.kind == Boolean || b.kind == Boolean {
		return a.AsBool() == b.AsBool(), true
	}
	af, bf := a.AsDouble(), b.AsDouble()
	if math.IsNaN(af) && math.IsNaN(bf) {
		return true, true
	}
	return af == bf, true
}
