package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"revana/config"
)

// JWTManager issues and verifies HS256 tokens whose subject is the
// signed-in user's email.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManagerFromEnv reads the signing secret and issuer from the
// environment.
//
//   - JWT_SECRET: HS256 signing secret (required)
//   - JWT_ISSUER: iss claim value (optional, defaults to "revana")
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv(config.EnvJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("%s is required", config.EnvJWTSecret)
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "revana"
	}

	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    24 * time.Hour,
	}, nil
}

// Sign issues a token for the given user email.
func (m *JWTManager) Sign(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"iss": m.issuer,
		"exp": time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies the token and returns the email it was issued for.
func (m *JWTManager) Parse(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("token missing sub claim")
	}

	return sub, nil
}
