package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize_ValidLevel(t *testing.T) {
	err := Initialize("debug")
	assert.NoError(t, err)
	assert.NotNil(t, Log)
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize("not-a-level")
	assert.Error(t, err)
}

func TestInitialize_ReplacesNop(t *testing.T) {
	before := Log
	assert.NoError(t, Initialize("warn"))
	assert.NotSame(t, before, Log)
}
