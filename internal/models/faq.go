package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FAQ is one question/answer entry of the help center.
type FAQ struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Question  string             `json:"question" bson:"question" binding:"required"`
	Answer    string             `json:"answer" bson:"answer"`
	Category  string             `json:"category" bson:"category"`
	Order     int                `json:"order" bson:"order"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
