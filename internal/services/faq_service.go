package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
)

// Compile-time check to ensure FAQServiceImpl implements FAQService.
var _ FAQService = (*FAQServiceImpl)(nil)

// FAQServiceImpl handles help center business logic.
type FAQServiceImpl struct {
	faqRepo repositories.FAQRepository
}

// NewFAQService creates a new FAQServiceImpl.
func NewFAQService(faqRepo repositories.FAQRepository) *FAQServiceImpl {
	return &FAQServiceImpl{faqRepo: faqRepo}
}

// ListFAQs fetches all entries (repo orders by category then display
// order) and filters by category in memory when one is given.
func (s *FAQServiceImpl) ListFAQs(ctx context.Context, category string) ([]*models.FAQ, error) {
	faqs, err := s.faqRepo.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch FAQs", "error", err)
		return nil, fmt.Errorf("failed to fetch faqs: %w", err)
	}
	if category == "" {
		return faqs, nil
	}

	filtered := make([]*models.FAQ, 0, len(faqs))
	for _, f := range faqs {
		if f.Category == category {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

func (s *FAQServiceImpl) GetFAQ(ctx context.Context, id primitive.ObjectID) (*models.FAQ, error) {
	return s.faqRepo.FindByID(ctx, id)
}

func (s *FAQServiceImpl) CreateFAQ(ctx context.Context, faq *models.FAQ) error {
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		slog.Error("Failed to create FAQ", "error", err)
		return fmt.Errorf("failed to create faq: %w", err)
	}
	return nil
}

// UpdateFAQ replaces the stored entry, carrying CreatedAt over from
// the stored record.
func (s *FAQServiceImpl) UpdateFAQ(ctx context.Context, faq *models.FAQ) error {
	existing, err := s.faqRepo.FindByID(ctx, faq.ID)
	if err != nil {
		return fmt.Errorf("faq not found: %w", err)
	}
	faq.CreatedAt = existing.CreatedAt
	return s.faqRepo.Update(ctx, faq)
}

func (s *FAQServiceImpl) DeleteFAQ(ctx context.Context, id primitive.ObjectID) error {
	return s.faqRepo.Delete(ctx, id)
}
