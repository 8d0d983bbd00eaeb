package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAdminCredentials(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	assert.True(t, CheckAdminCredentials("owner", "s3cret"))
	assert.False(t, CheckAdminCredentials("owner", "wrong"))
	assert.False(t, CheckAdminCredentials("someone", "s3cret"))
	assert.False(t, CheckAdminCredentials("", ""))
}

func TestCheckAdminCredentialsDefaults(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	assert.True(t, CheckAdminCredentials("admin", "portfolio2024!"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "round-trip-secret")

	token, err := GenerateSessionToken("owner")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Username)
	assert.Equal(t, "owner", claims.Subject)
	assert.Equal(t, "portfolio-api", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(SessionDuration), claims.ExpiresAt.Time, 0)
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateSessionToken("")
	assert.Error(t, err)
}

func TestValidateSessionTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret-one")
	token, err := GenerateSessionToken("owner")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "secret-two")
	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}
