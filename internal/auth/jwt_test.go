package auth

import (
	"testing"

	"project-management-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(1, "alice", models.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(1), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, models.RoleManager, claims.Role)
	require.False(t, claims.Refresh)
}

func TestValidateToken_Invalid(t *testing.T) {
	_, err := ValidateToken("invalid.token")
	require.Error(t, err)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	refresh, err := GenerateRefreshToken(2, "bob", models.RoleMember)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, uint(2), claims.UserID)
	require.True(t, claims.Refresh)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	access, err := GenerateToken(2, "bob", models.RoleMember)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(access)
	require.Error(t, err)
}
