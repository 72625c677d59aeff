package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Service authenticates the single wizard operator against credentials from
// the environment. There is no user store.
type Service struct {
	cfg config.AuthConfig
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{cfg: cfg}
}

// Configured reports whether login credentials exist at all.
func (s *Service) Configured() bool {
	return s.cfg.Username != "" && (s.cfg.Password != "" || s.cfg.PasswordHash != "")
}

// Login checks the supplied credentials and issues a session token. When
// AUTH_PASSWORD_HASH is set it takes precedence over the plaintext password.
func (s *Service) Login(username, password string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("auth credentials not configured")
	}

	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) != 1 {
		return "", fmt.Errorf("invalid credentials")
	}

	if s.cfg.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
			return "", fmt.Errorf("invalid credentials")
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) != 1 {
		return "", fmt.Errorf("invalid credentials")
	}

	return utils.GenerateJWT(username)
}

// EmailAllowed checks a Google login email against the allowlist. An empty
// allowlist rejects everyone.
func (s *Service) EmailAllowed(email string) bool {
	for _, allowed := range s.cfg.AllowedEmails {
		if email == allowed {
			return true
		}
	}
	return false
}
