package variant

import "testing"

func TestAsLongCoercions(t *testing.T) {
	tests := []struct {
		v    Variant
		want int64
	}{
		{NewNull(), 0},
		{NewBool(true), 1},
		{NewBool(false), 0},
		{NewFloat(3.9), 3},
		{NewString("42"), 42},
		{NewString("nope"), 0},
	}
	for _, tc := range tests {
		if got := tc.v.AsLong(); got != tc.want {
			t.Errorf("AsLong(%v) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestAsBoolCoercions(t *testing.T) {
	if NewString("").AsBool() {
		t.Error("empty string should coerce to false")
	}
	if NewString("anything").AsBool() {
		t.Error("a string that is neither a non-zero integer nor \"true\" should coerce to false")
	}
	if NewString("false").AsBool() {
		t.Error("\"false\" literal should coerce to false")
	}
	if NewString("0").AsBool() {
		t.Error("\"0\" should coerce to false")
	}
	if !NewString("2").AsBool() {
		t.Error("a non-zero integer string should coerce to true")
	}
	if !NewString("TRUE").AsBool() {
		t.Error("\"TRUE\" should coerce to true case-insensitively")
	}
	if !NewString("true").AsBool() {
		t.Error("\"true\" should coerce to true")
	}
}

func TestAsArraySingletonWrap(t *testing.T) {
	v := NewInt(5)
	arr := v.AsArray()
	if arr.Count() != 1 || arr.Get(0).AsLong() != 5 {
		t.Fatalf("scalar AsArray should wrap as a singleton, got count=%d", arr.Count())
	}
}

func TestAsArrayOnNullIsEmpty(t *testing.T) {
	if c := NewNull().AsArray().Count(); c != 0 {
		t.Fatalf("Null.AsArray() should be empty, got count=%d", c)
	}
}

func TestAsObjectOnArrayConvertsByIndex(t *testing.T) {
	v := NewArray()
	v.AsArray().Add(NewString("a"))
	obj := v.AsObject()
	if obj.Get("0").AsString() != "a" {
		t.Fatalf("Array.AsObject() should key by index")
	}
}

func TestEnsureArrayAutoVivifiesFromNull(t *testing.T) {
	v := NewNull()
	v.EnsureArray().Add(NewInt(1))
	if !v.IsArray() || v.AsArray().Count() != 1 {
		t.Fatalf("EnsureArray should promote Null in place, got %v", v)
	}
}

func TestEnsureObjectAutoVivifiesFromNull(t *testing.T) {
	v := NewNull()
	v.EnsureObject().Set("a", NewInt(1))
	if !v.IsObject() || v.AsObject().Get("a").AsLong() != 1 {
		t.Fatalf("EnsureObject should promote Null in place, got %v", v)
	}
}
