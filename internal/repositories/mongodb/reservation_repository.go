package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
)

// ReservationRepository is the MongoDB implementation of
// repositories.ReservationRepository.
type ReservationRepository struct {
	collection *mongo.Collection
}

// NewReservationRepository creates a ReservationRepository backed by
// the "reservations" collection.
func NewReservationRepository(db *mongo.Database) repositories.ReservationRepository {
	return &ReservationRepository{collection: db.Collection("reservations")}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, reservation)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		reservation.ID = id
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepository) FindByDate(ctx context.Context, date string) ([]*models.Reservation, error) {
	opts := options.Find().SetSort(bson.M{"slot": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []*models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []*models.Reservation{}
	}
	return reservations, nil
}

func (r *ReservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	reservation.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": reservation.ID}, reservation)
	return err
}

func (r *ReservationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slot", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []*models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []*models.Reservation{}
	}
	return reservations, nil
}
