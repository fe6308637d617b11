package varintern

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/gateboxlab/variant/internal/varview"
)

func TestCacheAcceptsLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	c := NewShared()
	c.SetLogger(logger)
	c.GetBytes(varview.NewByteView([]byte("first-sight")))
	if buf.Len() == 0 {
		t.Fatal("expected a debug trace on first-sight interning")
	}
}
