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

// FAQRepository is the MongoDB implementation of
// repositories.FAQRepository.
type FAQRepository struct {
	collection *mongo.Collection
}

// NewFAQRepository creates a FAQRepository backed by the "faqs"
// collection.
func NewFAQRepository(db *mongo.Database) repositories.FAQRepository {
	return &FAQRepository{collection: db.Collection("faqs")}
}

func (r *FAQRepository) Create(ctx context.Context, faq *models.FAQ) error {
	faq.CreatedAt = time.Now()
	faq.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, faq)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		faq.ID = id
	}
	return nil
}

func (r *FAQRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.FAQ, error) {
	var faq models.FAQ
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *FAQRepository) Update(ctx context.Context, faq *models.FAQ) error {
	faq.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": faq.ID}, faq)
	return err
}

func (r *FAQRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *FAQRepository) FindAll(ctx context.Context) ([]*models.FAQ, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var faqs []*models.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	if faqs == nil {
		faqs = []*models.FAQ{}
	}
	return faqs, nil
}
