package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether token is a JWT whose exp claim is not after now.
// The signature is not verified; only the server can do that. Tokens that
// are not JWTs, or carry no exp claim, are never considered expired here.
func Expired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	if !ok {
		return false
	}
	return !now.Before(exp)
}

// ExpiresAt returns the exp claim of a JWT, if it has one
func ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
