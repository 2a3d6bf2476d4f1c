package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/florist-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testPasswordManager() *PasswordManager {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = bcrypt.MinCost
	return NewPasswordManager(cfg)
}

func TestHashAndVerifyPassword(t *testing.T) {
	pm := testPasswordManager()

	hash, err := pm.HashPassword("Fl0r&Lis!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, pm.VerifyPassword("Fl0r&Lis!", hash))
	assert.Error(t, pm.VerifyPassword("wrong-password", hash))
}

func TestHashPasswordRejectsWeakPasswords(t *testing.T) {
	pm := testPasswordManager()

	_, err := pm.HashPassword("admin")
	assert.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	pm := testPasswordManager()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"accepts a strong password", "Fl0r&Lis!", false},
		{"too short", "Ab1!", true},
		{"no uppercase", "flor4lis!", true},
		{"no lowercase", "FLOR4LIS!", true},
		{"no number", "FlorDeLis!", true},
		{"no special character", "Flor4Lis8", true},
		{"sequential numbers", "Senha123!A", true},
		{"sequential letters", "Abcdef9!x", true},
		{"repeating characters", "Fl0r&&&Lis", true},
		{"common password", "MyPassword9!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pm.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
