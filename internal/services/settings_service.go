package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
)

// Compile-time check to ensure SettingsServiceImpl implements
// SettingsService.
var _ SettingsService = (*SettingsServiceImpl)(nil)

// SettingsServiceImpl handles the singleton site settings document.
type SettingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsServiceImpl.
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get returns the stored settings, or an empty document before the
// first save.
func (s *SettingsServiceImpl) Get(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.Find(ctx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.SiteSettings{Key: models.SiteSettingsKey}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return settings, nil
}

// Update replaces the settings document.
func (s *SettingsServiceImpl) Update(ctx context.Context, settings *models.SiteSettings) (*models.SiteSettings, error) {
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		slog.Error("Failed to update settings", "error", err)
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	slog.Info("Site settings updated")
	return settings, nil
}
