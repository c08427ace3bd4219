package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "jo@example.com", "Jo Marsh", RoleUser, false)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, "Jo Marsh", claims.Name)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestPersistentTokenLastsLonger(t *testing.T) {
	session, err := GenerateToken(1, "a@example.com", "A", RoleUser, false)
	require.NoError(t, err)
	persistent, err := GenerateToken(1, "a@example.com", "A", RoleUser, true)
	require.NoError(t, err)

	sessionClaims, err := ValidateToken(session)
	require.NoError(t, err)
	persistentClaims, err := ValidateToken(persistent)
	require.NoError(t, err)

	assert.True(t, persistentClaims.ExpiresAt.After(sessionClaims.ExpiresAt.Time))

	sessionTTLGot := time.Until(sessionClaims.ExpiresAt.Time)
	assert.InDelta(t, sessionTTL.Hours(), sessionTTLGot.Hours(), 0.1)

	persistentTTLGot := time.Until(persistentClaims.ExpiresAt.Time)
	assert.InDelta(t, persistentTTL.Hours(), persistentTTLGot.Hours(), 0.1)
}

func TestInitSecretSignsTokens(t *testing.T) {
	previous := signingSecret()
	t.Cleanup(func() { jwtSecret = previous })

	Init("runtime-secret-from-config")

	token, err := GenerateToken(9, "cfg@example.com", "Cfg", RoleAdmin, false)
	require.NoError(t, err)

	// The token must verify against the configured secret, not any
	// baked-in default
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(*jwtlib.Token) (interface{}, error) {
		return []byte("runtime-secret-from-config"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 9, claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateRejectsWrongSignature(t *testing.T) {
	forged := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID: 7,
		Role:   RoleAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	expired := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID: 7,
		Role:   RoleUser,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString(signingSecret())
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}
