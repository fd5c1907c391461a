package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pixelwall/internal/entity"
)

// Purposes a signed action token may be issued for. A token issued for one
// purpose is never accepted for another.
const (
	PurposeVerifyEmail   = "verify-email"
	PurposeResetPassword = "reset-password"
)

// actionClaims bind an email address to a single purpose with an expiry.
type actionClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateActionToken issues a purpose-scoped, time-limited token bound to an
// email address. Used for email verification and password reset links.
func (m *Manager) GenerateActionToken(email, purpose string, ttl time.Duration) (string, error) {
	if m == nil {
		return "", errors.New("jwt manager is nil")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("email must not be empty")
	}
	if purpose != PurposeVerifyEmail && purpose != PurposeResetPassword {
		return "", errors.New("unknown token purpose")
	}
	if ttl == 0 {
		ttl = time.Hour
	}
	now := time.Now().UTC()
	claims := actionClaims{
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseActionToken validates a purpose-scoped token and returns the bound
// email address. Expired, tampered, or wrong-purpose tokens all fail closed
// with entity.ErrTokenInvalid.
func (m *Manager) ParseActionToken(tokenString, purpose string) (string, error) {
	if m == nil {
		return "", errors.New("jwt manager is nil")
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, &actionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", entity.ErrTokenInvalid
	}
	claims, ok := token.Claims.(*actionClaims)
	if !ok || !token.Valid {
		return "", entity.ErrTokenInvalid
	}
	if claims.Purpose != purpose || strings.TrimSpace(claims.Email) == "" {
		return "", entity.ErrTokenInvalid
	}
	return claims.Email, nil
}
