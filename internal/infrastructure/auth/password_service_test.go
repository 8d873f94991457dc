package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, svc.Verify(hash, "correct horse battery staple"))
	assert.False(t, svc.Verify(hash, "wrong password"))
}

func TestPasswordService_DistinctSalts(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("password123")
	require.NoError(t, err)
	second, err := svc.Hash("password123")
	require.NoError(t, err)

	// bcrypt salts per call; identical inputs still hash differently.
	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify(first, "password123"))
	assert.True(t, svc.Verify(second, "password123"))
}
