package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minsu-dev/brandsite-backend/internal/models"
)

var errNotFound = errors.New("not found")

// fakeEventRepo is an in-memory EventRepository for service tests.
type fakeEventRepo struct {
	events []*models.Event
	err    error
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	if f.err != nil {
		return f.err
	}
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.events {
		if e.ID == event.ID {
			f.events[i] = event
			return nil
		}
	}
	return errNotFound
}

func (f *fakeEventRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeEventRepo) FindAll(ctx context.Context) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

// fakeReservationRepo is an in-memory ReservationRepository.
type fakeReservationRepo struct {
	reservations []*models.Reservation
	err          error
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *models.Reservation) error {
	if f.err != nil {
		return f.err
	}
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	f.reservations = append(f.reservations, r)
	return nil
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeReservationRepo) FindByDate(ctx context.Context, date string) ([]*models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Reservation, 0)
	for _, r := range f.reservations {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Update(ctx context.Context, r *models.Reservation) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.reservations {
		if existing.ID == r.ID {
			f.reservations[i] = r
			return nil
		}
	}
	return errNotFound
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, r := range f.reservations {
		if r.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeReservationRepo) FindAll(ctx context.Context) ([]*models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

// fakePostRepo is an in-memory PostRepository.
type fakePostRepo struct {
	posts []*models.Post
	err   error
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	if f.err != nil {
		return f.err
	}
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	for i, p := range f.posts {
		if p.ID == post.ID {
			f.posts[i] = post
			return nil
		}
	}
	return errNotFound
}

func (f *fakePostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakePostRepo) FindAll(ctx context.Context) ([]*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

// fakeProductRepo is an in-memory ProductRepository.
type fakeProductRepo struct {
	products []*models.Product
	err      error
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	if f.err != nil {
		return f.err
	}
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return errNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

// fakeAdminUserRepo is an in-memory AdminUserRepository.
type fakeAdminUserRepo struct {
	users []*models.AdminUser
	err   error
}

func (f *fakeAdminUserRepo) Create(ctx context.Context, user *models.AdminUser) error {
	if f.err != nil {
		return f.err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeAdminUserRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeAdminUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeAdminUserRepo) Update(ctx context.Context, user *models.AdminUser) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return errNotFound
}

func (f *fakeAdminUserRepo) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.users)), nil
}
