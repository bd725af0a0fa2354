package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLoggerTo(&buf, 4)

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	l.Errorf("failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "failed: boom")
}
