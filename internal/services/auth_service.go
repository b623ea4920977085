package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"github.com/minsu-dev/brandsite-backend/internal/config"
	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
	"github.com/minsu-dev/brandsite-backend/pkg/token"
)

// ErrInvalidCredentials is returned on a failed login. The same error
// covers unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Compile-time check to ensure AuthServiceImpl implements AuthService.
var _ AuthService = (*AuthServiceImpl)(nil)

// AuthServiceImpl handles admin authentication.
type AuthServiceImpl struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{adminRepo: adminRepo, cfg: cfg}
}

// Login verifies credentials and returns a signed session token plus
// the account.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	user, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		slog.Warn("Login attempt for unknown admin", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("Login attempt with wrong password", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	signed, err := token.Generate(token.Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
	}, s.cfg.JWT.Secret, time.Duration(s.cfg.JWT.ExpiresIn)*time.Second)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	user.LastLoginAt = time.Now()
	if err := s.adminRepo.Update(ctx, user); err != nil {
		slog.Warn("Failed to record last login", "error", err, "email", email)
	}

	slog.Info("Admin logged in", "email", email)
	return signed, user, nil
}

// EnsureSeedAdmin creates the initial operator account when the
// collection is empty. Called once at startup.
func (s *AuthServiceImpl) EnsureSeedAdmin(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         "admin",
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	slog.Info("Seed admin created", "email", email)
	return nil
}
