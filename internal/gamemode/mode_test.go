package gamemode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeTransitions(t *testing.T) {
	var m Mode
	assert.Equal(t, Running, m)
	assert.False(t, m.IsClosed())

	m.Close()
	assert.True(t, m.IsClosed())

	m.Close()
	assert.Equal(t, Closed, m)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
