package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wellux/bloglist-backend/internal/apperr"
)

// TokenManager signs and verifies identity tokens with an injected secret.
// Tokens carry the user id and issue time only; no expiry is set.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Issue(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(tm.secret)
}

// Parse verifies the signature and requires a user id in the payload.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	})
	if err != nil {
		return nil, apperr.Authentication("invalid token")
	}
	if claims.UserID == "" {
		return nil, apperr.Authentication("invalid token")
	}
	return claims, nil
}
