package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/config"
)

// TokenService issues and verifies the HS256 bearer tokens that protect the
// parse and profile routes. The user ID travels in the subject claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service from the JWT configuration.
func NewTokenService(cfg *config.JWTConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.ExpirationHours) * time.Hour,
	}
}

// Issue signs a token for the given user.
func (ts *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns the user ID it was issued for.
func (ts *TokenService) Verify(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errors.New("empty token")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return ts.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, fmt.Errorf("token expired: %w", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return uuid.Nil, fmt.Errorf("malformed token: %w", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return uuid.Nil, fmt.Errorf("invalid token signature: %w", err)
		}
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token subject is not a user ID: %w", err)
	}
	return userID, nil
}
