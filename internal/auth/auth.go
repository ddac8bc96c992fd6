package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/config"
)

// ErrInvalidCredentials is returned for any login mismatch. It carries no
// detail about which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator validates the single configured admin identity.
type Authenticator struct {
	username     string
	passwordHash []byte
}

// New builds an Authenticator from the admin config. A pre-computed bcrypt
// hash takes precedence; otherwise the plain password is hashed once here so
// the secret never sits in memory longer than startup.
func New(cfg config.AdminConfig) (*Authenticator, error) {
	if cfg.Username == "" {
		return nil, errors.New("admin username is required")
	}

	hash := cfg.PasswordHash
	if hash == "" {
		if cfg.Password == "" {
			return nil, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
		}
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	// Reject malformed hashes at startup rather than on the first login.
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("probe")); err != nil &&
		!errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, err
	}

	return &Authenticator{username: cfg.Username, passwordHash: []byte(hash)}, nil
}

// Login checks the submitted pair against the configured identity. Both
// comparisons always run so a failure reveals nothing about which field was
// wrong; the username check is constant-time, the password check is bcrypt.
func (a *Authenticator) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
