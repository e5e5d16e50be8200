package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("sekret")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret", hash)

	assert.NoError(t, h.Compare("sekret", hash))
	assert.Error(t, h.Compare("wrong", hash))
}

func TestHasherClampsCost(t *testing.T) {
	// out-of-range costs fall back to the bcrypt default
	h := NewHasher(99)
	hash, err := h.Hash("sekret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
