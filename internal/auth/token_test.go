package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("unit-secret", 30)

	token, expiresAt, err := tm.GenerateToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.UserID)
	require.NotEmpty(t, claims.ID)
	require.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 30).GenerateToken("user-42")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 30).ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("unit-secret", 30).ParseToken("not.a.token")
	require.Error(t, err)
}

func TestEachTokenGetsUniqueID(t *testing.T) {
	tm := NewTokenManager("unit-secret", 30)

	first, _, err := tm.GenerateToken("user-42")
	require.NoError(t, err)
	second, _, err := tm.GenerateToken("user-42")
	require.NoError(t, err)

	firstClaims, err := tm.ParseToken(first)
	require.NoError(t, err)
	secondClaims, err := tm.ParseToken(second)
	require.NoError(t, err)
	require.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestRevocationListNilClientFailsOpen(t *testing.T) {
	list := NewRevocationList(nil, nil)

	require.NoError(t, list.Revoke(context.Background(), "token-id", time.Now().Add(time.Hour)))
	require.False(t, list.IsRevoked(context.Background(), "token-id"))
}
