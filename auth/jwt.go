package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the store binding for dashboard tokens. A token grants
// access to exactly one store's dashboard and mutation endpoints.
type Claims struct {
	StoreID string `json:"store_id"`
	Role    string `json:"role"` // always "store" for now
	jwt.RegisteredClaims
}

// DashboardTokenTTL is how long a dashboard token issued at store
// creation stays valid.
const DashboardTokenTTL = 30 * 24 * time.Hour

// SignStoreToken creates a signed JWT scoped to the given store.
func SignStoreToken(secret string, storeID string, ttl time.Duration) (string, error) {
	claims := Claims{
		StoreID: storeID,
		Role:    "store",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   storeID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    "sooqbot",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidate parses a token and validates signature and expiry.
func ParseAndValidate(secret string, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
