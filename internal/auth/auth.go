// Package auth issues and verifies the signed bearer tokens protecting the
// game routes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenLifetime matches the one-hour expiry of the original tokens
const DefaultTokenLifetime = time.Hour

var (
	// ErrInvalidToken reports a token that failed verification
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingSecret reports a token service created without a secret
	ErrMissingSecret = errors.New("JWT secret is not set")
)

// Claims are the payload carried by an issued token
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens with an HMAC secret
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a token service from the shared secret
func NewTokenService(secret string, lifetime time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}

	return &TokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// Issue signs a new token for a user
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses a token and returns the user ID it was issued for
func (s *TokenService) Verify(tokenString string) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
