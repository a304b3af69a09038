package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/greytg/bridge/internal/pkg/models"
)

// TenantClaims are the claims carried by a tenant-scoped access token.
type TenantClaims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// GenerateTenantToken mints a signed token bound to the given tenant.
// Expiration of 0 minutes means the token does not expire.
func GenerateTenantToken(tenantID uuid.UUID, cfg *models.Config) (string, error) {
	claims := TenantClaims{
		TenantID: tenantID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   cfg.JWT.Issuer,
			Subject:  tenantID.String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if cfg.JWT.Expiration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign tenant token: %w", err)
	}
	return signed, nil
}

// ParseTenantToken validates a token and returns its claims.
func ParseTenantToken(tokenString string, secret string) (*TenantClaims, error) {
	claims := &TenantClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
