package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcrypt()

	hashed, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.NoError(t, h.Compare(hashed, "correct horse battery staple"))
	assert.Error(t, h.Compare(hashed, "wrong password"))
}

func TestHashIsSalted(t *testing.T) {
	h := NewBcrypt()

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	// Each hash carries its own salt.
	assert.NotEqual(t, a, b)
	assert.NoError(t, h.Compare(a, "same-password"))
	assert.NoError(t, h.Compare(b, "same-password"))
}
