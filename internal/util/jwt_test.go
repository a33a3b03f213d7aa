package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billiton/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &domain.User{
		Username: "operator",
		IsStaff:  true,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)
	assert.True(t, claims.IsStaff)
	assert.False(t, claims.IsAdmin)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireStaff(t *testing.T) {
	assert.Error(t, RequireStaff(&domain.User{}))
	assert.NoError(t, RequireStaff(&domain.User{IsStaff: true}))
	assert.NoError(t, RequireStaff(&domain.User{IsAdmin: true}))
}
