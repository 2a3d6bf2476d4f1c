// internal/domain/admin/service.go
package admin

import (
	"fmt"
	"time"

	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles admin authentication
type Service struct {
	db         *gorm.DB
	config     *config.Config
	jwtManager *auth.JWTManager
	passwords  *auth.PasswordManager
}

// NewService creates a new admin service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:         db,
		config:     cfg,
		jwtManager: auth.NewJWTManager(cfg),
		passwords:  auth.NewPasswordManager(cfg),
	}
}

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents issued tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Login verifies credentials and issues a token pair. The error message is
// deliberately the same for unknown email and wrong password.
func (s *Service) Login(req *LoginRequest) (*TokenResponse, error) {
	var user User
	err := s.db.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := s.passwords.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	now := time.Now().UTC()
	s.db.Model(&user).Update("last_login_at", now)

	return s.issueTokens(&user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(refreshToken string) (*TokenResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	var user User
	if err := s.db.Where("id = ? AND is_active = ?", claims.UserID, true).First(&user).Error; err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	return s.issueTokens(&user)
}

func (s *Service) issueTokens(user *User) (*TokenResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, true)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}
