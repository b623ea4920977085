package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductBadge highlights a product in the shop listing.
type ProductBadge string

const (
	BadgeNone ProductBadge = ""
	BadgeNew  ProductBadge = "NEW"
	BadgeBest ProductBadge = "BEST"
	BadgeSale ProductBadge = "SALE"
)

// Product is a shop catalog item.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" binding:"required"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Stock       int                `json:"stock" bson:"stock"`
	Badge       ProductBadge       `json:"badge,omitempty" bson:"badge,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductSort names the supported shop listing orders.
type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
)
