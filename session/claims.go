package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the subset of token claims the client cares about. The
// signature is not verified here; only the server holds the key.
type Claims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry has passed. Tokens without
// an exp claim never expire client side.
func (c Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// ParseClaims decodes a JWT without verifying it
func ParseClaims(token string) (Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	claims := Claims{}
	if v, ok := mapClaims["userId"].(string); ok {
		claims.UserID = v
	}
	if v, ok := mapClaims["role"].(string); ok {
		claims.Role = v
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return claims, nil
}
