package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := &BcryptHasher{Cost: 4} // minimum cost keeps the test fast

	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify(hash, "admin123"))
	assert.False(t, h.Verify(hash, "admin124"))
	assert.False(t, h.Verify("not-a-bcrypt-hash", "admin123"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	h := &BcryptHasher{Cost: 4}

	h1, err := h.Hash("same-password")
	require.NoError(t, err)
	h2, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Verify(h1, "same-password"))
	assert.True(t, h.Verify(h2, "same-password"))
}
