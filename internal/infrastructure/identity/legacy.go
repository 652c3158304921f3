package identity

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// LegacyVerifier validates tokens issued by this service's own login endpoint:
// HS256, claims {userId, email, role, exp}. It is the last verifier in the
// chain and the only one when no identity provider is configured.
type LegacyVerifier struct {
	secret []byte
}

func NewLegacyVerifier(secret string) *LegacyVerifier {
	return &LegacyVerifier{secret: []byte(secret)}
}

func (v *LegacyVerifier) Name() string { return "legacy" }

func (v *LegacyVerifier) Verify(_ context.Context, token string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredential
	}

	userID, _ := claims["userId"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &domain.Claims{
		Source: domain.SourceLegacy,
		UserID: userID,
		Email:  email,
		Role:   domain.NormalizeRole(domain.Role(role)),
	}, nil
}
