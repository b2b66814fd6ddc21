package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		hash, err := HashPassword("s3cret-password")

		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-password", hash)
		assert.True(t, CheckPasswordHash("s3cret-password", hash))
		assert.False(t, CheckPasswordHash("wrong-password", hash))
	})
}

func TestJWT(t *testing.T) {
	const secret = "test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", secret, time.Hour)
		require.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)

		require.NoError(t, err)
		assert.Equal(t, "session-abc", sessionID)
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseJWT(token, "other-secret")

		assert.Error(t, err)
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)

		assert.Error(t, err)
	})

	t.Run("Garbage Rejected", func(t *testing.T) {
		_, err := ParseJWT("not.a.jwt", secret)

		assert.Error(t, err)
	})
}
