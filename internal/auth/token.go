package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/frahmantamala/hr-management/internal"
	"github.com/golang-jwt/jwt/v5"
)

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	if accessTTL <= 0 {
		accessTTL = 5 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

func (j *JWTTokenGenerator) secretFor(tokenType string) ([]byte, time.Duration) {
	if tokenType == TokenTypeRefresh {
		return j.RefreshTokenSecret, j.RefreshTokenTTL
	}
	return j.AccessTokenSecret, j.AccessTokenTTL
}

// Generate signs an HS256 token of the given type for p.
func (j *JWTTokenGenerator) Generate(p Principal, tokenType string) (string, error) {
	secret, ttl := j.secretFor(tokenType)
	now := time.Now()

	claims := &Claims{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.EmployeeID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Validate verifies the signature, expiry and token type.
func (j *JWTTokenGenerator) Validate(tokenString, tokenType string) (*Claims, error) {
	secret, _ := j.secretFor(tokenType)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired().WithCause(err)
		}
		return nil, apperrors.ErrInvalidToken().WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != tokenType || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken()
	}
	return claims, nil
}
