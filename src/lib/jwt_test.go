package lib

import (
	"cafe/src/models"
	"cafe/src/types"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := &models.User{ID: 42, Email: "barista@cafe.test", Role: &models.Role{Name: types.ROLE_EMPLOYEE}}

	signed, claims, err := GenerateJWT(user, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := ParseJWT(signed)
	require.NoError(t, err)
	assert.Equal(t, "42", parsed.Subject)
	assert.Equal(t, "employee", parsed.Role)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestParseJWTRejectsBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := &models.User{ID: 1, Email: "a@cafe.test"}

	expired, _, err := GenerateJWT(user, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = ParseJWT(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	signed, _, err := GenerateJWT(user, time.Now())
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ParseJWT(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseJWT("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
}
