package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pasetoTestKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewPasetoService(t *testing.T) {
	_, err := NewPasetoService([]byte("too-short"), 0)
	assert.Error(t, err)

	svc, err := NewPasetoService(pasetoTestKey, 0)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestPasetoServiceRoundTrip(t *testing.T) {
	svc, err := NewPasetoService(pasetoTestKey, 0)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.CreateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	// No TTL configured: no expiry claim
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestPasetoServiceRejectsWrongKey(t *testing.T) {
	issuer, err := NewPasetoService(pasetoTestKey, 0)
	require.NoError(t, err)
	verifier, err := NewPasetoService([]byte("fedcba9876543210fedcba9876543210"), 0)
	require.NoError(t, err)

	token, err := issuer.CreateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasetoServiceRejectsMalformedToken(t *testing.T) {
	svc, err := NewPasetoService(pasetoTestKey, 0)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "v4.local.not-a-token"} {
		_, err := svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestPasetoServiceExpiry(t *testing.T) {
	svc, err := NewPasetoService(pasetoTestKey, time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.CreateToken(uuid.New())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
