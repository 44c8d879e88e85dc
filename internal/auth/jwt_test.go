package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService(t *testing.T) {
	_, err := NewJWTService(nil, 0)
	assert.Error(t, err)

	svc, err := NewJWTService([]byte("test-secret"), 0)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTServiceRoundTrip(t *testing.T) {
	svc, err := NewJWTService([]byte("test-secret"), 0)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.CreateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.False(t, claims.IssuedAt.IsZero())
	// No TTL configured: no expiry claim
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestJWTServiceRejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService([]byte("test-secret"), 0)
	require.NoError(t, err)

	token, err := svc.CreateToken(uuid.New())
	require.NoError(t, err)

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.VerifyToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService([]byte("secret-one"), 0)
	require.NoError(t, err)
	verifier, err := NewJWTService([]byte("secret-two"), 0)
	require.NoError(t, err)

	token, err := issuer.CreateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsMalformedToken(t *testing.T) {
	svc, err := NewJWTService([]byte("test-secret"), 0)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestJWTServiceExpiry(t *testing.T) {
	svc, err := NewJWTService([]byte("test-secret"), time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.CreateToken(uuid.New())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
