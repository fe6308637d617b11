package vartext

import "testing"

// FuzzParseBytesRoundTrip checks that parsing, emitting, and reparsing
// any corpus input never changes the resulting value.
func FuzzParseBytesRoundTrip(f *testing.F) {
	seeds := []string{
		`null`, `true`, `false`, `0`, `-1.5`, `"hi"`, `[]`, `{}`,
		`{"a":[1,2,3],"b":{"c":null}}`,
		`// comment\n{unquoted: 'x',}`,
		`[NaN, Infinity, -Infinity]`,
		`"escaped é \n \t"`,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, err := ParseBytes([]byte(s))
		if err != nil {
			return
		}
		text, err := EmitBytes(v, OneLiner)
		if err != nil {
			t.Fatalf("EmitBytes failed on a value that parsed cleanly: %v", err)
		}
		reparsed, err := ParseBytes(text)
		if err != nil {
			t.Fatalf("re-parsing emitted text failed: %v", err)
		}
		if !v.Equivalent(reparsed) {
			t.Fatalf("round trip changed value: %v -> %q -> %v", v, text, reparsed)
		}
	})
}
