package utils

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ZBrian99/inclusiva-api/internal/transfer"
)

// TokenDuration is the admin session lifetime. Expiry is the only
// invalidation mechanism; there is no revocation list.
const TokenDuration = 2 * time.Hour

const RoleAdmin = "admin"

func GenerateAdminToken(secretKey, username string, tokenDuration time.Duration) (string, error) {
	if secretKey == "" {
		return "", errors.New("missing token secret")
	}

	now := time.Now()
	claims := transfer.AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secretKey))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return signedToken, nil
}

func ValidateAdminToken(secretKey, tokenString string) (*transfer.AdminClaims, error) {
	if secretKey == "" {
		return nil, errors.New("missing token secret")
	}

	token, err := jwt.ParseWithClaims(tokenString, &transfer.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*transfer.AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
