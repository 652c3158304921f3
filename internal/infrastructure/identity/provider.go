package identity

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// ProviderVerifier validates session tokens issued by the external identity
// provider: RS256, keys discovered via the issuer's JWKS endpoint. Role
// metadata travels in publicMetadata.role (set server-side) with
// unsafeMetadata.role as a fallback for self-signup flows.
type ProviderVerifier struct {
	issuer string
	jwks   *jwksCache
}

// NewProviderVerifier builds a verifier against the issuer's standard JWKS
// location (<issuer>/.well-known/jwks.json).
func NewProviderVerifier(issuer string) *ProviderVerifier {
	return &ProviderVerifier{
		issuer: issuer,
		jwks:   newJWKSCache(trimSlash(issuer)+"/.well-known/jwks.json", nil),
	}
}

func (v *ProviderVerifier) Name() string { return "provider" }

func (v *ProviderVerifier) Verify(ctx context.Context, token string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodRS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, jwt.ErrTokenUnverifiable
		}
		return v.jwks.Key(ctx, kid)
	},
		jwt.WithIssuer(v.issuer),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredential
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	return &domain.Claims{
		Source: domain.SourceProvider,
		UserID: sub,
		Email:  email,
		Role:   metadataRole(claims),
	}, nil
}

// metadataRole reads the role from publicMetadata first, then unsafeMetadata,
// defaulting to EMPLOYEE.
func metadataRole(claims jwt.MapClaims) domain.Role {
	for _, key := range []string{"publicMetadata", "unsafeMetadata"} {
		if meta, ok := claims[key].(map[string]interface{}); ok {
			if role, ok := meta["role"].(string); ok && role != "" {
				return domain.NormalizeRole(domain.Role(role))
			}
		}
	}
	return domain.DefaultRole
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
