package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsryu/ZeDoBambu/internal/system/constants"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("emulator-secret"))
	require.NoError(t, err)
	return signed
}

func TestLocalVerifier_ValidToken(t *testing.T) {
	provider := NewLocalIdentityProvider()

	idToken := signToken(t, jwt.MapClaims{
		"sub":   "u1",
		"email": "u1@example.com",
		"name":  "User One",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := provider.VerifyIDToken(context.Background(), idToken)

	require.NoError(t, err)
	assert.Equal(t, "u1", identity.UID)
	assert.Equal(t, "u1@example.com", identity.Email)
	assert.Equal(t, "User One", identity.Name)
}

func TestLocalVerifier_ExpiredToken(t *testing.T) {
	provider := NewLocalIdentityProvider()

	idToken := signToken(t, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := provider.VerifyIDToken(context.Background(), idToken)

	assert.Error(t, err)
}

func TestLocalVerifier_MissingSubject(t *testing.T) {
	provider := NewLocalIdentityProvider()

	idToken := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := provider.VerifyIDToken(context.Background(), idToken)

	assert.Error(t, err)
}

func TestLocalVerifier_NotAJWT(t *testing.T) {
	provider := NewLocalIdentityProvider()

	_, err := provider.VerifyIDToken(context.Background(), "not-a-token")

	assert.Error(t, err)
}

func TestLocalVerifier_GetUserSurfacesRoleClaim(t *testing.T) {
	provider := NewLocalIdentityProvider()

	idToken := signToken(t, jwt.MapClaims{
		"sub":  "u1",
		"role": constants.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	_, err := provider.VerifyIDToken(context.Background(), idToken)
	require.NoError(t, err)

	record, err := provider.GetUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, record.CustomClaims[constants.RoleClaim])
}

func TestLocalVerifier_GetUserUnknownUID(t *testing.T) {
	provider := NewLocalIdentityProvider()

	record, err := provider.GetUser(context.Background(), "never-seen")

	require.NoError(t, err)
	assert.Equal(t, "never-seen", record.UID)
	assert.Nil(t, record.CustomClaims)
}
