package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const strongSecret = "vX9#qLr2!mT7$eWz-maze"

type stubTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
	err    error
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	s.claims = claims
	s.ttl = ttl
	return "signed-token", s.err
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return s.claims, s.err
}

func newTestAuth(t *testing.T, tokenizer *stubTokenizer) *Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(strongSecret), bcrypt.MinCost)
	require.NoError(t, err)

	auth, err := NewAuthService("maze-cli", string(hash), tokenizer, time.Hour)
	require.NoError(t, err)
	return auth
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService("", "x", &stubTokenizer{}, time.Hour)
	assert.Error(t, err)

	_, err = NewAuthService("maze-cli", "not-a-hash", &stubTokenizer{}, time.Hour)
	assert.Error(t, err)
}

func TestSignIn(t *testing.T) {
	tokenizer := &stubTokenizer{}
	auth := newTestAuth(t, tokenizer)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := auth.SignIn("maze-cli", strongSecret)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "maze-cli", tokenizer.claims["client_id"])
		assert.Equal(t, time.Hour, tokenizer.ttl)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := auth.SignIn("intruder", strongSecret)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := auth.SignIn("maze-cli", "guess")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("tokenizer failure", func(t *testing.T) {
		tokenizer.err = errors.New("signing failed")
		_, err := auth.SignIn("maze-cli", strongSecret)
		assert.Error(t, err)
		tokenizer.err = nil
	})
}

func TestCheckSecretStrength(t *testing.T) {
	assert.ErrorIs(t, CheckSecretStrength("password"), ErrWeakSecret)
	assert.NoError(t, CheckSecretStrength(strongSecret))
}

func TestHashSecret(t *testing.T) {
	_, err := HashSecret("123456")
	assert.ErrorIs(t, err, ErrWeakSecret)

	hash, err := HashSecret(strongSecret)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(strongSecret)))
}
