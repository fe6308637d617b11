package vartext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gateboxlab/variant"
)

// These scenario tests walk the module's headline end-to-end behaviors in
// testify's assertion style, one scenario per test, rather than as a
// table — the low-level per-function behavior is already covered by the
// table-driven tests alongside each file.

func TestScenarioLeniency(t *testing.T) {
	src := `{
		// leading comment
		name: 'Ada',
		tags: [1, 2, 3,], /* trailing comma and block comment */
	}`
	v, err := ParseBytes([]byte(src))
	require.NoError(t, err)
	require.Equal(t, "Ada", v.AsObject().Get("name").AsString())
	require.Equal(t, 3, v.AsObject().Get("tags").AsArray().Count())
}

func TestScenarioEscapes(t *testing.T) {
	v, err := ParseBytes([]byte(`"line1\nline2\tendé😀"`))
	require.NoError(t, err)
	require.Equal(t, "line1\nline2\tendé\U0001F600", v.AsString())
}

func TestScenarioEscapeLineContinuation(t *testing.T) {
	// Raw bytes: "a\nb\<LF>cA" — a backslash-n escape, then a
	// backslash immediately followed by a literal newline byte (absorbed
	// as a line continuation, not a second newline), then a \u escape.
	input := "\"a\\nb\\\nc\\u0041\""
	v, err := ParseBytes([]byte(input))
	require.NoError(t, err)
	require.Equal(t, "a\nbcA", v.AsString())
}

func TestScenarioNegativeInfinityLiteral(t *testing.T) {
	v, err := ParseBytes([]byte(`-Infinity`))
	require.NoError(t, err)
	require.True(t, v.IsFloat())
	require.True(t, math.IsInf(v.AsDouble(), -1))
}

func TestScenarioSpecialFloats(t *testing.T) {
	v, err := ParseBytes([]byte(`NaN`))
	require.NoError(t, err)
	require.True(t, v.IsFloat())

	out, err := EmitString(v, FormatPolicy{SpecialFloat: SpecialFloatAsJSLiteral})
	require.NoError(t, err)
	require.Equal(t, "NaN", out)

	_, err = EmitString(v, FormatPolicy{SpecialFloat: SpecialFloatThrow})
	require.Error(t, err)
}

func TestScenarioAutoCoercion(t *testing.T) {
	v := variant.NewNull()
	v.EnsureObject().Set("count", variant.NewInt(0))
	require.True(t, v.IsObject())
	require.Equal(t, int64(0), v.AsObject().Get("count").AsLong())
}

func TestScenarioSharing(t *testing.T) {
	o := variant.NewObject()
	o.AsObject().Set("a", variant.NewInt(1))
	p := o
	p.AsObject().Set("a", variant.NewInt(2))
	require.Equal(t, int64(2), o.AsObject().Get("a").AsLong())
}

func TestScenarioPrettyPrint(t *testing.T) {
	v, err := ParseBytes([]byte(`{"a":1,"b":{"c":2}}`))
	require.NoError(t, err)
	out, err := EmitString(v, Pretty)
	require.NoError(t, err)
	require.Contains(t, out, "\n")
	reparsed, err := ParseBytes([]byte(out))
	require.NoError(t, err)
	require.True(t, v.Equivalent(reparsed))
}

func TestScenarioPrettyPrintExactLayout(t *testing.T) {
	v, err := ParseBytes([]byte(`{"a": 1, "b": [1, 2]}`))
	require.NoError(t, err)
	out, err := EmitString(v, Pretty)
	require.NoError(t, err)
	want := "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2\n  ]\n}"
	require.Equal(t, want, out)
}

func TestScenarioPick(t *testing.T) {
	v, err := ParseBytes([]byte(`{"users":[{"name":"Ada"},{"name":"Grace"}]}`))
	require.NoError(t, err)
	require.Equal(t, "Grace", v.Pick("users", 1, "name").AsString())
	require.True(t, v.Pick("users", 5, "name").IsNull())
}

func TestScenarioDepthGuard(t *testing.T) {
	deep := variant.NewArray()
	cur := deep
	for i := 0; i < 200; i++ {
		inner := variant.NewArray()
		cur.AsArray().Add(inner)
		cur = inner
	}
	_, err := EmitBytes(deep, FormatPolicy{SpecialFloat: SpecialFloatAsString})
	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}
