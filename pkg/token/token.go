// Package token issues and verifies the JWTs used by the admin surface.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails parsing, signature
// verification, or claim extraction.
var ErrInvalidToken = errors.New("token: invalid token")

// Claims carried by an admin session token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Generate signs a token for the given claims, valid for expiresIn.
func Generate(claims Claims, secret string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(expiresIn).Unix(),
	})
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a token string, returning its claims.
func Verify(tokenString, secret string) (Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.UserID = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}
