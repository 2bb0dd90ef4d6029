package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigi_backend/internals/configs"
)

func setSecrets(t *testing.T) {
	t.Helper()
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = oldAccess
		configs.JWTRefreshSecret = oldRefresh
	})
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setSecrets(t)
	userID := uuid.New()

	token, err := GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	setSecrets(t)

	// Signed under the access secret and missing typ=refresh.
	access, err := GenerateAccessToken(uuid.New(), false)
	require.NoError(t, err)

	_, err = ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	setSecrets(t)
	_, err := ParseRefreshToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAccessTokenExpiryFallsForwardOnGarbage(t *testing.T) {
	setSecrets(t)
	exp := AccessTokenExpiry("not-a-token")
	assert.False(t, exp.IsZero())
}
