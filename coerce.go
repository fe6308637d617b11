package variant

import (
	"strconv"
	"strings"
)

// AsBool coerces v to a bool without mutating v: Null and the zero values
// of Integer/Float are false; a String is true iff it parses as a non-zero
// base-10 integer or reads "true" ignoring ASCII case — a string that is
// neither (e.g. "", "abc", "0", "false") is false; Array and Object are
// true exactly when non-empty.
func (v Variant) AsBool() bool {
	switch v.kind {
	case Null:
		return false
	case Boolean:
		return v.b
	case Integer:
		return v.i != 0
	case Float:
		return v.f != 0
	case String:
		if n, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return n != 0
		}
		return strings.EqualFold(v.s, "true")
	case ArrayKind:
		return v.arr.count() != 0
	case ObjectKind:
		return v.obj.count() != 0
	default:
		return false
	}
}

// AsLong coerces v to an int64: Null is 0; Boolean is 0/1; Float truncates
// toward zero; String parses as a base-10 integer, falling back to 0 on a
// malformed string; Array and Object coerce through their element/member
// count.
func (v Variant) AsLong() int64 {
	switch v.kind {
	case Null:
		return 0
	case Boolean:
		if v.b {
			return 1
		}
		return 0
	case Integer:
		return v.i
	case Float:
		return int64(v.f)
	case String:
		n, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case ArrayKind:
		return int64(v.arr.count())
	case ObjectKind:
		return int64(v.obj.count())
	default:
		return 0
	}
}

// AsDouble coerces v to a float64, following the same table as AsLong but
// retaining fractional precision for String and Float.
func (v Variant) AsDouble() float64 {
	switch v.kind {
	case Null:
		return 0
	case Boolean:
		if v.b {
			return 1
		}
		return 0
	case Integer:
		return float64(v.i)
	case Float:
		return v.f
	case String:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0
		}
		return f
	case ArrayKind:
		return float64(v.arr.count())
	case ObjectKind:
		return float64(v.obj.count())
	default:
		return 0
	}
}

// AsString coerces v to a string: Null is ""; Boolean is "true"/"false";
// Integer and Float use their canonical decimal spelling; Array and
// Object produce a diagnostic, non-JSON summary ("[3 elements]",
// "{2 members}") rather than a serialization — use the vartext package to
// render an Array or Object as JSON text.
func (v Variant) AsString() string {
	switch v.kind {
	case Null:
		return ""
	case Boolean:
		if v.b {
			return "true"
		}
		return "false"
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return v.s
	case ArrayKind:
		return "[" + strconv.Itoa(v.arr.count()) + " elements]"
	case ObjectKind:
		return "{" + strconv.Itoa(v.obj.count()) + " members}"
	default:
		return ""
	}
}

// AsArray coerces v to an Array: an Array Variant returns its own handle;
// an Object first tries TryConvertToArray and falls back to wrapping
// itself as the array's sole element; Null coerces to an empty array;
// every other kind is wrapped as a single-element array holding v.
func (v Variant) AsArray() Array {
	switch v.kind {
	case ArrayKind:
		return v.arr.handle()
	case ObjectKind:
		if arr, ok := v.obj.handle().TryConvertToArray(); ok {
			return arr
		}
		return wrapSingleton(v)
	case Null:
		return newArrayHandle(newArrayBody())
	default:
		return wrapSingleton(v)
	}
}

func wrapSingleton(v Variant) Array {
	arr := newArrayHandle(newArrayBody())
	arr.Add(v)
	return arr
}

// AsObject coerces v to an Object: an Object Variant returns its own
// handle; an Array converts via Array.ConvertToObject; Null coerces to an
// empty object; every other scalar coerces to a single-member object
// under the key "value" holding v, per the coercion table.
func (v Variant) AsObject() Object {
	switch v.kind {
	case ObjectKind:
		return v.obj.handle()
	case ArrayKind:
		return v.arr.handle().ConvertToObject()
	case Null:
		return newObjectHandle(newObjectBody())
	default:
		obj := newObjectHandle(newObjectBody())
		obj.Set("value", v)
		return obj
	}
}

// EnsureArray returns v's Array handle, converting v to ArrayKind in
// place first if it is not one already. The conversion follows the
// Array column of the coercion table: Null becomes an empty array, any
// other scalar becomes a single-element array holding the former scalar
// value, and an Object converts via AsObject's inverse (TryConvertToArray
// or, failing that, wraps itself). This is the coercion-on-mutate
// behavior that lets code do `v.EnsureArray().Add(x)` against a
// freshly zero-valued Variant without losing a prior scalar payload.
func (v *Variant) EnsureArray() Array {
	if v.kind == ArrayKind {
		return v.arr.handle()
	}
	arr := v.AsArray()
	*v = Variant{kind: ArrayKind, arr: arr.body}
	return arr
}

// EnsureObject is the Object analogue of EnsureArray: it converts v to
// ObjectKind in place (if not already) following the Object column of
// the coercion table, preserving the former value rather than discarding
// it.
func (v *Variant) EnsureObject() Object {
	if v.kind == ObjectKind {
		return v.obj.handle()
	}
	obj := v.AsObject()
	*v = Variant{kind: ObjectKind, obj: obj.body}
	return obj
}
