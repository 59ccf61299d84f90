package auth

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACHasher_RoundTrip(t *testing.T) {
	hasher := NewHMACHasher()

	digest, salt, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.Len(t, digest, sha512.Size)
	require.Len(t, salt, saltLength)

	assert.True(t, hasher.Verify("correct horse battery staple", salt, digest))
}

func TestHMACHasher_WrongPassword(t *testing.T) {
	hasher := NewHMACHasher()

	digest, salt, err := hasher.Hash("password-one")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("password-two", salt, digest))
	assert.False(t, hasher.Verify("", salt, digest))
}

func TestHMACHasher_WrongSalt(t *testing.T) {
	hasher := NewHMACHasher()

	digest, _, err := hasher.Hash("shared password")
	require.NoError(t, err)
	_, otherSalt, err := hasher.Hash("shared password")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("shared password", otherSalt, digest))
}

// Two registrations with the same password must not produce reusable
// credential material.
func TestHMACHasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewHMACHasher()

	digest1, salt1, err := hasher.Hash("same password")
	require.NoError(t, err)
	digest2, salt2, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, digest1, digest2)
}

func TestHMACHasher_EmptyPassword(t *testing.T) {
	hasher := NewHMACHasher()

	digest, salt, err := hasher.Hash("")
	require.NoError(t, err)
	require.Len(t, digest, sha512.Size)

	assert.True(t, hasher.Verify("", salt, digest))
}
