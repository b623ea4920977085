package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog article shown on the content pages.
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title" binding:"required"`
	Summary   string             `json:"summary" bson:"summary"`
	Content   string             `json:"content" bson:"content"`
	Category  string             `json:"category" bson:"category"`
	Author    string             `json:"author" bson:"author"`
	Tags      []string           `json:"tags" bson:"tags"`
	Thumbnail string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Published bool               `json:"published" bson:"published"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
