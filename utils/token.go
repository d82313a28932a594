package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenTTL bounds how long an admin session stays valid.
const AdminTokenTTL = time.Hour

func ApiSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "empregoja-dev-secret"
	}
	return []byte(secret)
}

// GenerateAdminToken issues a short-lived token for the admin panel.
func GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(AdminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ApiSecret())
}
