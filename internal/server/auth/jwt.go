// Package auth implements the token service: issuing and validating signed,
// time-bounded bearer tokens. Tokens are HS256 JWTs whose subject is the
// username of the authenticated account.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/common"
)

// GenerateToken issues a signed token for the given subject, valid for
// validityDuration from now.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken re-verifies the signature and expiry of tokenString and
// returns its subject. Expired tokens yield common.ErrTokenExpired; anything
// else that fails verification yields common.ErrInvalidToken, so callers can
// avoid leaking why a token was rejected.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
