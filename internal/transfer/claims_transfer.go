package transfer

import "github.com/golang-jwt/jwt/v5"

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
