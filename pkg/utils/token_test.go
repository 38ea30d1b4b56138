package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "courier-track/pkg/errors"
)

const testSecret = "unit-test-secret"

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	userID := uuid.New()

	pair, err := GenerateTokenPair(userID, "alice", "customer", testSecret, 1, 24)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := ValidateToken(pair.AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "customer", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair(uuid.New(), "alice", "customer", testSecret, 1, 24)
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, "some-other-secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.jwt", testSecret)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	// Zero expiry hours yields an already-expired token
	pair, err := GenerateTokenPair(uuid.New(), "alice", "customer", testSecret, 0, 0)
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, testSecret)
	assert.Error(t, err)
}
