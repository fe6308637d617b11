package variant

import "testing"

func TestArrayAddAndIndex(t *testing.T) {
	v := NewArray()
	arr := v.AsArray()
	arr.Add(NewInt(1))
	arr.Add(NewInt(2))
	if arr.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", arr.Count())
	}
	arr.Index(5).Assign(NewInt(6))
	if arr.Count() != 6 {
		t.Fatalf("Index should auto-extend: Count() = %d, want 6", arr.Count())
	}
	if got := arr.Get(5).AsLong(); got != 6 {
		t.Fatalf("arr[5] = %d, want 6", got)
	}
	if got := arr.Get(2); !got.IsNull() {
		t.Fatalf("arr[2] should be a gap-filled Null, got %v", got)
	}
}

func TestArrayRemoveAndContains(t *testing.T) {
	v := NewArray()
	arr := v.AsArray()
	arr.Add(NewString("a"))
	arr.Add(NewString("b"))
	arr.Add(NewString("c"))
	if !arr.Contains(NewString("b")) {
		t.Fatal("should contain b")
	}
	if !arr.Remove(NewString("b")) {
		t.Fatal("Remove(b) should report found")
	}
	if arr.Contains(NewString("b")) {
		t.Fatal("b should be gone")
	}
	if arr.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", arr.Count())
	}
}

func TestArrayInsert(t *testing.T) {
	v := NewArray()
	arr := v.AsArray()
	arr.Add(NewInt(1))
	arr.Add(NewInt(3))
	arr.Insert(1, NewInt(2))
	want := []int64{1, 2, 3}
	for i, w := range want {
		if got := arr.Get(i).AsLong(); got != w {
			t.Errorf("arr[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestArrayConvertToObject(t *testing.T) {
	v := NewArray()
	arr := v.AsArray()
	arr.Add(NewString("x"))
	arr.Add(NewString("y"))
	obj := arr.ConvertToObject()
	if obj.Get("0").AsString() != "x" || obj.Get("1").AsString() != "y" {
		t.Fatalf("ConvertToObject mismatch: %v", obj.Keys())
	}
}

func TestArrayIsSimple(t *testing.T) {
	v := NewArray()
	arr := v.AsArray()
	arr.Add(NewInt(1))
	arr.Add(NewString("x"))
	if !arr.IsSimple() {
		t.Error("all-scalar array should be simple")
	}
	arr.Add(NewArray())
	if arr.IsSimple() {
		t.Error("array containing an array should not be simple")
	}
}
