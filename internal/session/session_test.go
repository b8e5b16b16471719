package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	s := New()
	require.NotEmpty(t, s.ID())
	assert.False(t, s.Applied())

	s.MarkApplied()
	assert.True(t, s.Applied())

	// Sessions are independent of each other.
	other := New()
	assert.NotEqual(t, s.ID(), other.ID())
	assert.False(t, other.Applied())
}
