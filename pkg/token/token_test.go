package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	claims := Claims{UserID: "6650f0c2a1b2c3d4e5f60718", Email: "admin@example.com", Role: "admin"}

	signed, err := Generate(claims, "test-secret", time.Hour)
	require.NoError(t, err)

	got, err := Verify(signed, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestVerify_Failures(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		signed, err := Generate(Claims{UserID: "u1"}, "secret-a", time.Hour)
		require.NoError(t, err)

		_, err = Verify(signed, "secret-b")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		signed, err := Generate(Claims{UserID: "u1"}, "secret", -time.Minute)
		require.NoError(t, err)

		_, err = Verify(signed, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := Verify("not-a-token", "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
