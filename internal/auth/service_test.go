package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seoforge/seoforge/internal/config"
)

func TestServiceLoginPlaintext(t *testing.T) {
	svc := NewService(config.AuthConfig{Username: "op", Password: "secret"})

	token, err := svc.Login("op", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("op", "nope")
	assert.Error(t, err)

	_, err = svc.Login("other", "secret")
	assert.Error(t, err)
}

func TestServiceLoginBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewService(config.AuthConfig{
		Username:     "op",
		Password:     "ignored-plaintext",
		PasswordHash: string(hash),
	})

	_, err = svc.Login("op", "hashed-secret")
	assert.NoError(t, err)

	// the plaintext value is ignored once a hash is configured
	_, err = svc.Login("op", "ignored-plaintext")
	assert.Error(t, err)
}

func TestServiceNotConfigured(t *testing.T) {
	svc := NewService(config.AuthConfig{})
	assert.False(t, svc.Configured())

	_, err := svc.Login("anyone", "anything")
	assert.Error(t, err)
}

func TestEmailAllowlist(t *testing.T) {
	svc := NewService(config.AuthConfig{
		Username:      "op",
		Password:      "x",
		AllowedEmails: []string{"ops@example.com"},
	})

	assert.True(t, svc.EmailAllowed("ops@example.com"))
	assert.False(t, svc.EmailAllowed("intruder@example.com"))

	empty := NewService(config.AuthConfig{Username: "op", Password: "x"})
	assert.False(t, empty.EmailAllowed("ops@example.com"))
}
