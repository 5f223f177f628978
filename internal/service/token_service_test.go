package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "marketplace-storefront")

	tokenStr, expiresAt, err := svc.Generate("ops@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, AdminRole, claims.Role)
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, -time.Hour, "issuer")

	tokenStr, _, err := svc.Generate("ops")
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTTokenService_WrongSecretOrIssuer(t *testing.T) {
	tokenStr, _, err := NewJWTTokenService("secret-1", time.Hour, "issuer").Generate("ops")
	require.NoError(t, err)

	_, err = NewJWTTokenService("secret-2", time.Hour, "issuer").Validate(tokenStr)
	assert.Error(t, err)

	_, err = NewJWTTokenService("secret-1", time.Hour, "other-issuer").Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "ops", "iss": "issuer", "exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTTokenService(testJWTSecret, time.Hour, "issuer").Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTTokenService_MissingSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "issuer", "exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	_, err = NewJWTTokenService(testJWTSecret, time.Hour, "issuer").Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTTokenService_InvalidTokenString(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "issuer")

	_, err := svc.Validate("not.a.valid.jwt")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}
