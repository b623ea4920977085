package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/pkg/dday"
	"github.com/minsu-dev/brandsite-backend/pkg/timeslot"
	"github.com/minsu-dev/brandsite-backend/pkg/weighted"
)

// PostListOptions narrows and pages the public blog listing. Filtering
// is applied in memory after fetch.
type PostListOptions struct {
	Category      string
	Search        string
	PublishedOnly bool
	Page          int
	Limit         int
}

// PostService defines blog post business logic.
type PostService interface {
	ListPosts(ctx context.Context, opts PostListOptions) ([]*models.Post, int, error)
	GetPost(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id primitive.ObjectID) error
}

// ProductService defines shop catalog business logic.
type ProductService interface {
	ListProducts(ctx context.Context, category string, sort models.ProductSort) ([]*models.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

// EventView is an event joined with its countdown classification.
type EventView struct {
	*models.Event
	Dday dday.Result `json:"dday"`
}

// EventService defines promotional event business logic, including the
// shared weighted prize draw used by the wheel and ladder mechanics.
type EventService interface {
	ListEvents(ctx context.Context, includeHidden bool, now time.Time) ([]EventView, error)
	GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	EventStatus(ctx context.Context, id primitive.ObjectID, now time.Time) (dday.Result, error)
	Draw(ctx context.Context, id primitive.ObjectID, now time.Time) (weighted.Option, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
}

// ReservationService defines booking business logic. Cancel is the
// public self-service path and verifies the caller knows the booking
// details; UpdateStatus is the admin path and does not.
type ReservationService interface {
	Availability(ctx context.Context, date string) ([]string, error)
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	Cancel(ctx context.Context, id primitive.ObjectID, name, phone string) (*models.Reservation, error)
	GetReservation(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	ListReservations(ctx context.Context, date string) ([]*models.Reservation, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status timeslot.Status) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, id primitive.ObjectID) error
	Slots() []string
}

// FAQService defines help center business logic.
type FAQService interface {
	ListFAQs(ctx context.Context, category string) ([]*models.FAQ, error)
	GetFAQ(ctx context.Context, id primitive.ObjectID) (*models.FAQ, error)
	CreateFAQ(ctx context.Context, faq *models.FAQ) error
	UpdateFAQ(ctx context.Context, faq *models.FAQ) error
	DeleteFAQ(ctx context.Context, id primitive.ObjectID) error
}

// AuthService defines admin authentication.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.AdminUser, error)
	EnsureSeedAdmin(ctx context.Context, email, password, name string) error
}

// SettingsService defines site settings access.
type SettingsService interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, settings *models.SiteSettings) (*models.SiteSettings, error)
}
