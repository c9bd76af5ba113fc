package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the signed-in user's id alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// JWTTokens issues session tokens bound to a user id, signed with a shared
// secret.
type JWTTokens struct {
	secret   []byte
	validity time.Duration
}

func NewJWTTokens(secret string, validity time.Duration) *JWTTokens {
	return &JWTTokens{secret: []byte(secret), validity: validity}
}

func (t *JWTTokens) CreateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.validity)),
		},
		UserID: userID,
	})

	return token.SignedString(t.secret)
}
