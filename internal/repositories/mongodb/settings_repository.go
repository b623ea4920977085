package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minsu-dev/brandsite-backend/internal/models"
	"github.com/minsu-dev/brandsite-backend/internal/repositories"
)

// SettingsRepository is the MongoDB implementation of
// repositories.SettingsRepository.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a SettingsRepository backed by the
// "settings" collection.
func NewSettingsRepository(db *mongo.Database) repositories.SettingsRepository {
	return &SettingsRepository{collection: db.Collection("settings")}
}

func (r *SettingsRepository) Find(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.collection.FindOne(ctx, bson.M{"key": models.SiteSettingsKey}).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.SiteSettings) error {
	settings.Key = models.SiteSettingsKey
	settings.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"key": models.SiteSettingsKey}, settings, opts)
	return err
}
