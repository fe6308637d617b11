package vartext

import (
	"sort"
	"unicode/utf16"

	"github.com/gateboxlab/variant"
)

// CanonicalForm is JSON text produced by Canonicalize: the Never
// whitespace regime (no newlines; ", " between items, ": " after each
// key), non-finite floats rendered as quoted strings, and every object's
// members sorted by the UTF-16 code-unit order of their keys.
type CanonicalForm []byte

// Canonicalize renders v with every object's members reordered into
// UTF-16 code-unit key order (the member order RFC 8785 uses) rather than
// left in insertion order. The output keeps the ", " and ": " spacing of
// the Never regime, so it is stable under key permutation but is not
// byte-identical to RFC 8785's whitespace-free form.
func Canonicalize(v variant.Variant) (CanonicalForm, error) {
	reordered := reorderObjects(v)
	policy := FormatPolicy{Return: ReturnNever, SpecialFloat: SpecialFloatAsString}
	b, err := EmitBytes(reordered, policy)
	if err != nil {
		return nil, err
	}
	return CanonicalForm(b), nil
}

func reorderObjects(v variant.Variant) variant.Variant {
	switch v.Kind() {
	case variant.ArrayKind:
		src := v.AsArray()
		out := variant.NewArray()
		dst := out.AsArray()
		for i := 0; i < src.Count(); i++ {
			dst.Add(reorderObjects(src.Get(i)))
		}
		return out
	case variant.ObjectKind:
		src := v.AsObject()
		keys := append([]string(nil), src.Keys()...)
		sort.Slice(keys, func(i, j int) bool { return lessUTF16(keys[i], keys[j]) })
		out := variant.NewObject()
		dst := out.AsObject()
		for _, k := range keys {
			dst.Set(k, reorderObjects(src.Get(k)))
		}
		return out
	default:
		return v
	}
}

// lessUTF16 reports whether a sorts before b under UTF-16 code-unit
// lexicographic order, the ordering RFC 8785 specifies for object member
// names.
func lessUTF16(a, b string) bool {
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}

// Reformat re-renders already-valid JSON text under a new FormatPolicy by
// parsing and re-emitting it. The teacher's own RawValue.Compact/Indent
// reformat source text in place without a full parse; this package
// forgoes that zero-copy optimization in favor of reusing the regular
// Parse/Emit pipeline, consistent with this module's non-goal of chasing
// raw throughput.
func Reformat(data []byte, policy FormatPolicy) ([]byte, error) {
	v, err := ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return EmitBytes(v, policy)
}
