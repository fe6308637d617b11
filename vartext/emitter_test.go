package vartext

import (
	"math"
	"testing"

	"github.com/gateboxlab/variant"
)

func TestEmitBytesOneLiner(t *testing.T) {
	v, _ := ParseBytes([]byte(`{"a":1,"b":[1,2]}`))
	got, err := EmitString(v, OneLiner)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a": 1, "b": [1, 2]}`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitBytesPrettyBreaksLines(t *testing.T) {
	v, _ := ParseBytes([]byte(`{"a":[1,2]}`))
	got, err := EmitString(v, Pretty)
	if err != nil {
		t.Fatal(err)
	}
	if got == `{"a": [1, 2]}` {
		t.Fatalf("Pretty should not collapse onto one line: %q", got)
	}
}

func TestEmitBytesEmptyContainerCollapsesUnderExceptEmpty(t *testing.T) {
	v := variant.NewObject()
	v.AsObject().Set("empty", variant.NewArray())
	got, err := EmitString(v, Pretty)
	if err != nil {
		t.Fatal(err)
	}
	if !containsForTest(got, `"empty": []`) {
		t.Fatalf("empty array should render on one line, got %q", got)
	}
}

func TestEmitBytesSpecialFloatPolicies(t *testing.T) {
	v := variant.NewFloat(math.NaN())

	s, err := EmitString(v, FormatPolicy{SpecialFloat: SpecialFloatAsString})
	if err != nil || s != `"NaN"` {
		t.Fatalf("AsString: got (%q,%v)", s, err)
	}

	s, err = EmitString(v, FormatPolicy{SpecialFloat: SpecialFloatAsJSLiteral})
	if err != nil || s != "NaN" {
		t.Fatalf("AsJSLiteral: got (%q,%v)", s, err)
	}

	_, err = EmitString(v, FormatPolicy{SpecialFloat: SpecialFloatThrow})
	if err == nil {
		t.Fatal("Throw policy should fail on NaN")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Fatalf("expected *FormatError, got %T", err)
	}
}

func TestEmitBytesEscapesUnicodeWhenRequested(t *testing.T) {
	v := variant.NewString("café")

	got, err := EmitString(v, FormatPolicy{EscapeUnicode: true, SpecialFloat: SpecialFloatAsString})
	if err != nil {
		t.Fatal(err)
	}
	if got != "\"caf\\u00e9\"" {
		t.Fatalf("escaped form: got %q", got)
	}

	got, err = EmitString(v, FormatPolicy{EscapeUnicode: false, SpecialFloat: SpecialFloatAsString})
	if err != nil {
		t.Fatal(err)
	}
	if got != `"café"` {
		t.Fatalf("unescaped form: got %q", got)
	}
}

func TestEmitBytesDepthGuard(t *testing.T) {
	deep := variant.NewArray()
	cur := deep
	for i := 0; i < 10; i++ {
		inner := variant.NewArray()
		cur.AsArray().Add(inner)
		cur = inner
	}
	_, err := EmitBytes(deep, FormatPolicy{MaxDepth: 3, SpecialFloat: SpecialFloatAsString})
	if err == nil {
		t.Fatal("expected a FormatError for exceeding MaxDepth")
	}
}

func TestEmitBytesSimplePolicyObjectArity(t *testing.T) {
	single := variant.NewObject()
	single.AsObject().Set("a", variant.NewInt(1))
	got, err := EmitString(single, Mixed)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"a": 1}` {
		t.Fatalf("single-member flat object should stay inline under Simple, got %q", got)
	}

	multi := variant.NewObject()
	multi.AsObject().Set("a", variant.NewInt(1))
	multi.AsObject().Set("b", variant.NewInt(2))
	got, err = EmitString(multi, Mixed)
	if err != nil {
		t.Fatal(err)
	}
	if got == `{"a": 1, "b": 2}` {
		t.Fatalf("multi-member flat object is not IsSimple and must break lines under Simple, got %q", got)
	}

	arr := variant.NewArray()
	arr.AsArray().Add(variant.NewInt(1))
	arr.AsArray().Add(variant.NewInt(2))
	got, err = EmitString(arr, Mixed)
	if err != nil {
		t.Fatal(err)
	}
	if got != `[1, 2]` {
		t.Fatalf("all-scalar array is IsSimple and should stay inline under Simple, got %q", got)
	}
}

func containsForTest(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
