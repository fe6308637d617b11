package varconv

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestContextAcceptsLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	ctx := NewWithMaxDepth(1)
	ctx.SetLogger(logger)
	_ = ctx.Enter(fakeConverter("a"))
	if err := ctx.Enter(fakeConverter("b")); err == nil {
		t.Fatal("expected depth guard to trip")
	}
	if buf.Len() == 0 {
		t.Fatal("expected a debug trace when the depth guard trips")
	}
}

type fakeConverter string

func (f fakeConverter) ConvertsType() string { return string(f) }

func TestEnterLeaveBalancesDepth(t *testing.T) {
	ctx := New()
	if err := ctx.Enter(fakeConverter("a")); err != nil {
		t.Fatal(err)
	}
	if ctx.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", ctx.Depth())
	}
	ctx.Leave()
	if ctx.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", ctx.Depth())
	}
}

func TestEnterFailsAtMaxDepth(t *testing.T) {
	ctx := NewWithMaxDepth(1)
	if err := ctx.Enter(fakeConverter("a")); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Enter(fakeConverter("b")); err == nil {
		t.Fatal("expected the depth guard to trip")
	}
}

func TestActiveDetectsReentry(t *testing.T) {
	ctx := New()
	c := fakeConverter("widget")
	_ = ctx.Enter(c)
	if !ctx.Active(c) {
		t.Fatal("Active should find the same converter on the stack")
	}
	if ctx.Active(fakeConverter("other")) {
		t.Fatal("Active should not find an unrelated converter")
	}
}

func TestTopReadsMostRecentlyEnteredConverter(t *testing.T) {
	ctx := New()
	if _, ok := ctx.Top(); ok {
		t.Fatal("Top should report false on an empty stack")
	}
	outer := fakeConverter("outer")
	inner := fakeConverter("inner")
	_ = ctx.Enter(outer)
	_ = ctx.Enter(inner)
	top, ok := ctx.Top()
	if !ok || top.ConvertsType() != "inner" {
		t.Fatalf("Top() = %v, %v, want inner, true", top, ok)
	}
	ctx.Leave()
	top, ok = ctx.Top()
	if !ok || top.ConvertsType() != "outer" {
		t.Fatalf("Top() after Leave = %v, %v, want outer, true", top, ok)
	}
}

func TestLeaveWithoutEnterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Leave to panic without a matching Enter")
		}
	}()
	New().Leave()
}
