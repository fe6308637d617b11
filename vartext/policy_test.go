package vartext

import "testing"

func TestPolicyPresetsHaveSaneDefaults(t *testing.T) {
	if OneLiner.maxDepth() != DefaultMaxDepth {
		t.Fatalf("OneLiner.maxDepth() = %d", OneLiner.maxDepth())
	}
	if Pretty.Indent == "" {
		t.Fatal("Pretty should indent")
	}
	if Mixed.Return != ReturnSimple {
		t.Fatal("Mixed should use ReturnSimple")
	}
}

func TestFormatPolicyMaxDepthOverride(t *testing.T) {
	p := FormatPolicy{MaxDepth: 5}
	if p.maxDepth() != 5 {
		t.Fatalf("maxDepth() = %d, want 5", p.maxDepth())
	}
}
