package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.GenerateSessionToken("somsak", "Somsak")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "somsak", claims.Username)
	assert.Equal(t, "Somsak", claims.FirstName)
	assert.Equal(t, "somsak", claims.Subject)
	assert.NotEmpty(t, claims.ID, "token must carry a unique ID for revocation")
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	t1, err := svc.GenerateSessionToken("somsak", "Somsak")
	require.NoError(t, err)
	t2, err := svc.GenerateSessionToken("somsak", "Somsak")
	require.NoError(t, err)

	c1, err := svc.ValidateSessionToken(t1)
	require.NoError(t, err)
	c2, err := svc.ValidateSessionToken(t2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute)

	token, err := svc.GenerateSessionToken("somsak", "Somsak")
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).GenerateSessionToken("somsak", "Somsak")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	_, err := svc.ValidateSessionToken("not.a.token")
	assert.Error(t, err)
}
