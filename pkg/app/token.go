package app

import (
	"context"
	"crypto/rsa"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ClaimsContextKey gin context key holding the verified token claims.
const ClaimsContextKey = "user_claims"

// Claims are the registered JWT claims the service relies on. Ownership of
// stored content is keyed by the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (*Claims, error)
}

// JWKSVerifier validates RS256 tokens against the issuer's published JWKS.
type JWKSVerifier struct {
	keyfunc  jwt.Keyfunc
	audience string
	issuer   string
}

// NewJWKSVerifier fetches and caches the JWKS from the issuer's
// well-known endpoint. The issuer must include a scheme and end with "/".
func NewJWKSVerifier(ctx context.Context, issuer string, audience string) (*JWKSVerifier, error) {
	jwksURL := strings.TrimSuffix(issuer, "/") + "/.well-known/jwks.json"
	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, errors.Wrap(err, "create JWKS keyfunc")
	}
	return &JWKSVerifier{
		keyfunc:  k.Keyfunc,
		audience: audience,
		issuer:   issuer,
	}, nil
}

func (v *JWKSVerifier) VerifyToken(token string) (*Claims, error) {
	return parseToken(token, v.keyfunc, v.audience, v.issuer)
}

// RS256Verifier validates RS256 tokens against a fixed public key.
// Used in tests and single-key deployments without a JWKS endpoint.
type RS256Verifier struct {
	publicKey *rsa.PublicKey
	audience  string
	issuer    string
}

func NewRS256Verifier(publicKey *rsa.PublicKey, issuer string, audience string) *RS256Verifier {
	return &RS256Verifier{
		publicKey: publicKey,
		audience:  audience,
		issuer:    issuer,
	}
}

func (v *RS256Verifier) VerifyToken(token string) (*Claims, error) {
	kf := func(t *jwt.Token) (interface{}, error) {
		return v.publicKey, nil
	}
	return parseToken(token, kf, v.audience, v.issuer)
}

func parseToken(token string, kf jwt.Keyfunc, audience string, issuer string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, kf,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(audience),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// GetClaims returns the verified claims set by the auth middleware.
func GetClaims(c *gin.Context) *Claims {
	if v, ok := c.Get(ClaimsContextKey); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}

// GetSub returns the subject of the authenticated user, or "" when the
// request carries no verified token.
func GetSub(c *gin.Context) string {
	if claims := GetClaims(c); claims != nil {
		return claims.Subject
	}
	return ""
}
