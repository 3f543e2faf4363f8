package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of an admin session token.
type Claims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// Manager issues and validates admin session tokens.
// Tokens are HMAC-signed (HS256) so their embedded timestamp cannot be
// forged by the cookie holder, and carry a random nonce per session.
type Manager struct {
	secret   string
	duration time.Duration
}

// NewManager creates a session manager. duration is the session lifetime.
func NewManager(secret string, duration time.Duration) *Manager {
	return &Manager{secret: secret, duration: duration}
}

// Duration returns the configured session lifetime.
func (m *Manager) Duration() time.Duration {
	return m.duration
}

// Generate creates a new signed session token.
func (m *Manager) Generate() (string, error) {
	now := time.Now()
	claims := Claims{
		Nonce: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Validate parses a token and reports whether the session is still live.
// Any decode, signature, or expiry failure means invalid; there is no
// server-side session table to consult.
func (m *Manager) Validate(tokenString string) bool {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	return claims.Nonce != ""
}
