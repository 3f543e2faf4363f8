package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"safaia-backend/internal/config"
	"safaia-backend/pkg/session"

	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface authenticates the shared admin password and issues
// session tokens.
type ServiceInterface interface {
	VerifyPassword(password string) bool
	CreateSession() (string, error)
}

type AuthService struct {
	admin   config.AdminConfig
	session *session.Manager
}

func NewService(admin config.AdminConfig, sessionManager *session.Manager) ServiceInterface {
	return &AuthService{admin: admin, session: sessionManager}
}

// VerifyPassword compares a login attempt against the configured admin
// secret. When a bcrypt hash is configured it takes precedence over the
// plaintext password; otherwise the attempt is salted, hashed and
// compared in constant time.
func (s *AuthService) VerifyPassword(password string) bool {
	if s.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	}

	return hmac.Equal(
		[]byte(saltedHash(password, s.admin.Salt)),
		[]byte(saltedHash(s.admin.Password, s.admin.Salt)),
	)
}

// CreateSession issues a signed session token for a verified login.
func (s *AuthService) CreateSession() (string, error) {
	return s.session.Generate()
}

func saltedHash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
