package slogx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type named string

func (n named) String() string { return "named:" + string(n) }

type widget struct{ id int }

func TestError(t *testing.T) {
	attr := Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())
}

func TestSource(t *testing.T) {
	t.Run("global", func(t *testing.T) {
		attr := Source(nil)
		assert.Equal(t, KeySource, attr.Key)
		assert.Equal(t, "global", attr.Value.String())
	})

	t.Run("stringer", func(t *testing.T) {
		assert.Equal(t, "named:window", Source(named("window")).Value.String())
	})

	t.Run("pointer", func(t *testing.T) {
		assert.Contains(t, Source(&widget{id: 1}).Value.String(), "*slogx.widget(0x")
	})

	t.Run("plain value", func(t *testing.T) {
		assert.Equal(t, "42", Source(42).Value.String())
	})
}

func TestLoggerName(t *testing.T) {
	attr := LoggerName("herald")
	assert.Equal(t, KeyLoggerName, attr.Key)
	assert.Equal(t, "herald", attr.Value.String())
}
