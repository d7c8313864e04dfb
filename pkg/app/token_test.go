package app

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://auth.example.com/"
	testAudience = "https://api.example.com"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestRS256Verifier_ValidToken(t *testing.T) {
	key := newTestKey(t)
	verifier := NewRS256Verifier(&key.PublicKey, testIssuer, testAudience)

	signed := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "auth0|user123",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	claims, err := verifier.VerifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "auth0|user123", claims.Subject)
}

func TestRS256Verifier_WrongAudience(t *testing.T) {
	key := newTestKey(t)
	verifier := NewRS256Verifier(&key.PublicKey, testIssuer, testAudience)

	signed := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "auth0|user123",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{"https://other.example.com"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := verifier.VerifyToken(signed)
	assert.Error(t, err)
}

func TestRS256Verifier_WrongIssuer(t *testing.T) {
	key := newTestKey(t)
	verifier := NewRS256Verifier(&key.PublicKey, testIssuer, testAudience)

	signed := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "auth0|user123",
		Issuer:    "https://evil.example.com/",
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := verifier.VerifyToken(signed)
	assert.Error(t, err)
}

func TestRS256Verifier_ExpiredToken(t *testing.T) {
	key := newTestKey(t)
	verifier := NewRS256Verifier(&key.PublicKey, testIssuer, testAudience)

	signed := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "auth0|user123",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	_, err := verifier.VerifyToken(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestRS256Verifier_MissingSubject(t *testing.T) {
	key := newTestKey(t)
	verifier := NewRS256Verifier(&key.PublicKey, testIssuer, testAudience)

	signed := signToken(t, key, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := verifier.VerifyToken(signed)
	assert.Error(t, err)
}

func TestRS256Verifier_WrongKey(t *testing.T) {
	key := newTestKey(t)
	otherKey := newTestKey(t)
	verifier := NewRS256Verifier(&key.PublicKey, testIssuer, testAudience)

	signed := signToken(t, otherKey, jwt.RegisteredClaims{
		Subject:   "auth0|user123",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := verifier.VerifyToken(signed)
	assert.Error(t, err)
}

func TestRS256Verifier_HS256Rejected(t *testing.T) {
	key := newTestKey(t)
	verifier := NewRS256Verifier(&key.PublicKey, testIssuer, testAudience)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "auth0|user123",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = verifier.VerifyToken(signed)
	assert.Error(t, err)
}
