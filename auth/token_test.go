package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)
	secret := "test-secret"

	signer := NewTokenSigner(secret, time.Hour)
	token, err := signer.Sign(42)
	req.NoError(err)
	req.NotEmpty(token)

	userID, err := NewTokenVerifier(secret).Verify(token)
	req.NoError(err)
	req.Equal(int64(42), userID)
}

func TestTokenVerify_Rejections(t *testing.T) {
	secret := "test-secret"
	signer := NewTokenSigner(secret, time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		req := require.New(t)
		token, err := signer.Sign(42)
		req.NoError(err)

		_, err = NewTokenVerifier("another-secret").Verify(token)
		req.Error(err)
	})

	t.Run("expired token", func(t *testing.T) {
		req := require.New(t)
		token, err := NewTokenSigner(secret, -time.Minute).Sign(42)
		req.NoError(err)

		_, err = NewTokenVerifier(secret).Verify(token)
		req.Error(err)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := require.New(t)
		_, err := NewTokenVerifier(secret).Verify("not.a.jwt")
		req.Error(err)
	})
}
