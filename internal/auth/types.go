package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims issued by the external identity provider
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
