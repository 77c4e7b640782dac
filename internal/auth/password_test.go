package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("gizli123")
	require.NoError(t, err)
	assert.NotEqual(t, "gizli123", hash)

	assert.True(t, hasher.Verify("gizli123", hash))
	assert.False(t, hasher.Verify("yanlis", hash))
	assert.False(t, hasher.Verify("gizli123", "bozuk-hash"))
}

func TestBcryptHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("gizli123")
	require.NoError(t, err)
	second, err := hasher.Hash("gizli123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salting makes every hash unique")
}
