package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("plain password is hashed", func(t *testing.T) {
		a, err := New(config.AdminConfig{Username: "admin", Password: "s3cret"})
		require.NoError(t, err)
		assert.NoError(t, a.Login("admin", "s3cret"))
	})

	t.Run("precomputed hash wins over plain password", func(t *testing.T) {
		h, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
		require.NoError(t, err)

		a, err := New(config.AdminConfig{Username: "admin", Password: "ignored", PasswordHash: string(h)})
		require.NoError(t, err)
		assert.NoError(t, a.Login("admin", "from-hash"))
		assert.ErrorIs(t, a.Login("admin", "ignored"), ErrInvalidCredentials)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := New(config.AdminConfig{Password: "s3cret"})
		assert.Error(t, err)
	})

	t.Run("missing password and hash", func(t *testing.T) {
		_, err := New(config.AdminConfig{Username: "admin"})
		assert.Error(t, err)
	})

	t.Run("malformed hash rejected at startup", func(t *testing.T) {
		_, err := New(config.AdminConfig{Username: "admin", PasswordHash: "not-a-bcrypt-hash"})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	a, err := New(config.AdminConfig{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"correct pair", "admin", "s3cret", false},
		{"wrong password", "admin", "wrong", true},
		{"wrong username", "root", "s3cret", true},
		{"both wrong", "root", "wrong", true},
		{"empty pair", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Login(tt.username, tt.password)
			if tt.wantErr {
				// Always the same generic error, regardless of which field failed.
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
