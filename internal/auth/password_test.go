package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, BcryptCost, cost)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, ComparePassword(hash, "secret1"))
	assert.False(t, ComparePassword(hash, "wrong"))
	assert.False(t, ComparePassword(hash, ""))
}

func TestComparePasswordMalformedHash(t *testing.T) {
	// A corrupted stored hash must count as verification failure, not a crash.
	assert.False(t, ComparePassword("not-a-bcrypt-hash", "secret1"))
	assert.False(t, ComparePassword("", "secret1"))
}
