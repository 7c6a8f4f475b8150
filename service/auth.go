package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/frontier-maze/service/i"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minSecretStrengthScore = 3
	secretHashCost         = 12
)

var (
	// ErrInvalidCredentials is returned for an unknown client or a wrong secret.
	ErrInvalidCredentials = errors.New("invalid client id or secret")

	// ErrWeakSecret is returned when a secret is too easy to guess.
	ErrWeakSecret = errors.New("weak secret")
)

// Auth issues access tokens to the single configured API client.
type Auth struct {
	clientID   string
	secretHash []byte
	tokenizer  i.Tokenizer
	tokenTTL   time.Duration
}

// NewAuthService creates an Auth. secretHash must be a bcrypt hash.
func NewAuthService(clientID, secretHash string, tokenizer i.Tokenizer, tokenTTL time.Duration) (*Auth, error) {
	if clientID == "" {
		return nil, errors.New("client id is empty")
	}
	if _, err := bcrypt.Cost([]byte(secretHash)); err != nil {
		return nil, fmt.Errorf("client secret hash: %w", err)
	}
	if tokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", tokenTTL)
	}

	return &Auth{
		clientID:   clientID,
		secretHash: []byte(secretHash),
		tokenizer:  tokenizer,
		tokenTTL:   tokenTTL,
	}, nil
}

// SignIn implements i.Authenticator.
func (a *Auth) SignIn(clientID, clientSecret string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(clientID), []byte(a.clientID)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.secretHash, []byte(clientSecret)); err != nil {
		return "", ErrInvalidCredentials
	}

	return a.tokenizer.Generate(map[string]interface{}{
		"client_id": clientID,
	}, a.tokenTTL)
}

// HashSecret returns the bcrypt hash to store in API_CLIENT_SECRET_HASH.
func HashSecret(secret string) (string, error) {
	if err := CheckSecretStrength(secret); err != nil {
		return "", err
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), secretHashCost)
	return string(bytes), err
}

// CheckSecretStrength rejects secrets that zxcvbn scores below 3.
func CheckSecretStrength(secret string) error {
	result := zxcvbn.PasswordStrength(secret, nil)
	if result.Score < minSecretStrengthScore {
		return fmt.Errorf("%w: score %d, need %d", ErrWeakSecret, result.Score, minSecretStrengthScore)
	}
	return nil
}
