package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
)

// PostRepository defines the interface for blog post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]*models.Post, error)
}

// ProductRepository defines the interface for catalog data operations.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]*models.Product, error)
}

// EventRepository defines the interface for event data operations.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]*models.Event, error)
}

// ReservationRepository defines the interface for reservation data
// operations. FindByDate takes a calendar day in
// models.ReservationDateLayout form.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	FindByDate(ctx context.Context, date string) ([]*models.Reservation, error)
	Update(ctx context.Context, reservation *models.Reservation) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]*models.Reservation, error)
}

// FAQRepository defines the interface for FAQ data operations.
type FAQRepository interface {
	Create(ctx context.Context, faq *models.FAQ) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.FAQ, error)
	Update(ctx context.Context, faq *models.FAQ) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]*models.FAQ, error)
}

// AdminUserRepository defines the interface for operator accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	Update(ctx context.Context, user *models.AdminUser) error
	Count(ctx context.Context) (int64, error)
}

// SettingsRepository defines the interface for the singleton site
// settings document.
type SettingsRepository interface {
	Find(ctx context.Context) (*models.SiteSettings, error)
	Upsert(ctx context.Context, settings *models.SiteSettings) error
}
