package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nexzen-fees/app/config"
)

// JWTClaims carries the tenant scope the fee engine operates under. Tokens
// are minted by the identity service; this service only validates them.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	BranchID string   `json:"branch_id"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateJWT mints a branch-scoped token. Used by provisioning tooling and
// tests; production tokens come from the identity service.
func GenerateJWT(userID, branchID string, roles []string) (string, error) {
	claims := JWTClaims{
		UserID:   userID,
		BranchID: branchID,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "nexzen-fees",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.GetJWTSecret())
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return config.GetJWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}
