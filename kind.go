// Package variant implements a dynamically-typed, mutable JSON value tree:
// Variant, Array, and Object. A Variant is a value type holding one of
// seven kinds: copying a Variant copies its scalar payload, so assigning
// to the copy does not change the original. Array and Object are small
// value-type handles that alias a shared, mutable container body, so
// copying a handle (or an Array/Object-kind Variant) never copies its
// contents.
package variant

// Kind identifies which of the seven concrete shapes a Variant currently
// holds.
type Kind int

const (
	Null Kind = iota
	Boolean
	Integer
	Float
	String
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "unknown"
	}
}

// IsScalar reports whether k is one of Null, Boolean, Integer, Float, or
// String — the kinds that never hold nested Variants of their own.
func (k Kind) IsScalar() bool {
	return k == Null || k == Boolean || k == Integer || k == Float || k == String
}

// IsComposite reports whether k is ArrayKind or ObjectKind.
func (k Kind) IsComposite() bool {
	return k == ArrayKind || k == ObjectKind
}
