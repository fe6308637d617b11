package varconv

import (
	"math"

	"github.com/pkg/errors"

	"github.com/gateboxlab/variant"
)

// This file implements the module's fixed primitive conversion surface
// between Go primitives and Variant: every signed and unsigned integer
// width, both float widths, bool, a single UTF-16 code unit, string, and
// the Variant/Array/Object handles themselves. The surface is
// deliberately closed — an external marshaller building richer types
// (structs, slices, maps) composes these primitive conversions itself
// rather than this package growing a case for every possible Go type.

// FromInt64, FromInt, FromInt32, FromInt16, and FromInt8 construct an
// Integer Variant.
func FromInt64(i int64) variant.Variant { return variant.NewInt(i) }
func FromInt(i int) variant.Variant     { return variant.NewInt(int64(i)) }
func FromInt32(i int32) variant.Variant { return variant.NewInt(int64(i)) }
func FromInt16(i int16) variant.Variant { return variant.NewInt(int64(i)) }
func FromInt8(i int8) variant.Variant   { return variant.NewInt(int64(i)) }

// FromUint32, FromUint16, and FromUint8 construct an Integer Variant;
// their ranges always fit in an int64.
func FromUint32(u uint32) variant.Variant { return variant.NewInt(int64(u)) }
func FromUint16(u uint16) variant.Variant { return variant.NewInt(int64(u)) }
func FromUint8(u uint8) variant.Variant   { return variant.NewInt(int64(u)) }

// FromUint64 and FromUint construct a Float Variant rather than an
// Integer one: the top half of the uint64/uint range does not fit in
// Variant's int64 Integer storage, so unsigned 64-bit values travel
// through Float instead, matching the conversion table's treatment of
// the widest unsigned types.
func FromUint64(u uint64) variant.Variant { return variant.NewFloat(float64(u)) }
func FromUint(u uint) variant.Variant     { return variant.NewFloat(float64(u)) }

// FromFloat64 and FromFloat32 construct a Float Variant.
func FromFloat64(f float64) variant.Variant { return variant.NewFloat(f) }
func FromFloat32(f float32) variant.Variant { return variant.NewFloat(float64(f)) }

// FromBool constructs a Boolean Variant.
func FromBool(b bool) variant.Variant { return variant.NewBool(b) }

// FromChar constructs a single-character String Variant from one UTF-16
// code unit.
func FromChar(c uint16) variant.Variant {
	return variant.NewString(string([]rune{rune(c)}))
}

// FromString constructs a String Variant.
func FromString(s string) variant.Variant { return variant.NewString(s) }

// FromVariant returns v unchanged. FromArray and FromObject build a new
// Array or Object Variant holding the same element/member Variants as the
// given handle: a shallow copy, so the result does not share the source
// handle's body. Together they round out the fixed surface so a
// marshaller never needs a type switch outside this package.
func FromVariant(v variant.Variant) variant.Variant { return v }
func FromArray(a variant.Array) variant.Variant {
	v := variant.NewArray()
	arr := v.AsArray()
	for i := 0; i < a.Count(); i++ {
		arr.Add(a.Get(i))
	}
	return v
}
func FromObject(o variant.Object) variant.Variant {
	v := variant.NewObject()
	obj := v.AsObject()
	for _, k := range o.Keys() {
		obj.Set(k, o.Get(k))
	}
	return v
}

// ToInt64 requires v to be an Integer Variant and returns its value
// exactly; unlike Variant.AsLong, it refuses to coerce across kinds.
func ToInt64(ctx *Context, v variant.Variant) (int64, error) {
	if !v.IsInteger() {
		return 0, ctx.Refuse("expected an integer Variant")
	}
	return v.AsLong(), nil
}

// ToFloat64 requires v to be numeric (Integer or Float).
func ToFloat64(ctx *Context, v variant.Variant) (float64, error) {
	if !v.IsNumber() {
		return 0, ctx.Refuse("expected a numeric Variant")
	}
	return v.AsDouble(), nil
}

// ToUint64 requires v to be numeric and non-negative.
func ToUint64(ctx *Context, v variant.Variant) (uint64, error) {
	f, err := ToFloat64(ctx, v)
	if err != nil {
		return 0, errors.Wrap(err, "varconv: ToUint64")
	}
	if f < 0 || math.IsNaN(f) {
		return 0, ctx.Refuse("expected a non-negative numeric Variant")
	}
	return uint64(f), nil
}

// ToBool requires v to be a Boolean Variant.
func ToBool(ctx *Context, v variant.Variant) (bool, error) {
	if !v.IsBoolean() {
		return false, ctx.Refuse("expected a boolean Variant")
	}
	return v.AsBool(), nil
}

// ToString requires v to be a String Variant.
func ToString(ctx *Context, v variant.Variant) (string, error) {
	if !v.IsString() {
		return "", ctx.Refuse("expected a string Variant")
	}
	return v.AsString(), nil
}

// ToChar requires v to be a String Variant spelling exactly one UTF-16
// code unit.
func ToChar(ctx *Context, v variant.Variant) (uint16, error) {
	s, err := ToString(ctx, v)
	if err != nil {
		return 0, err
	}
	units := []rune(s)
	if len(units) != 1 || units[0] > 0xFFFF {
		return 0, ctx.Refuse("expected a single-character string Variant")
	}
	return uint16(units[0]), nil
}

// converterIdentity satisfies Converter for the fixed composite
// conversions below, so recursion guards can key off a stable string.
type converterIdentity string

func (c converterIdentity) ConvertsType() string { return string(c) }

const (
	arrayConverter  converterIdentity = "varconv.Array"
	objectConverter converterIdentity = "varconv.Object"
)

// ToArray requires v to be an Array Variant. It enters ctx's depth guard
// and leaves it again before returning, so it fails with a
// ConversionError when ctx is already at its maximum depth; it does not
// hold a level across the caller's own descent into the returned array,
// which the caller brackets with Enter/Leave itself.
func ToArray(ctx *Context, v variant.Variant) (variant.Array, error) {
	if !v.IsArray() {
		return variant.Array{}, ctx.Refuse("expected an array Variant")
	}
	if err := ctx.Enter(arrayConverter); err != nil {
		return variant.Array{}, err
	}
	defer ctx.Leave()
	return v.AsArray(), nil
}

// ToObject is the Object analogue of ToArray.
func ToObject(ctx *Context, v variant.Variant) (variant.Object, error) {
	if !v.IsObject() {
		return variant.Object{}, ctx.Refuse("expected an object Variant")
	}
	if err := ctx.Enter(objectConverter); err != nil {
		return variant.Object{}, err
	}
	defer ctx.Leave()
	return v.AsObject(), nil
}
