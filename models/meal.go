package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal is a catalog entry. The same shape backs the upcomingmeals collection;
// upcoming meals have no status until promotion stamps "ongoing".
//
// Likes and Reviews are running counters maintained by atomic increments
// only. They are never written through this struct.
type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Ingredients []string           `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Date        time.Time          `bson:"date,omitempty" json:"date,omitempty"`
	Likes       int                `bson:"likes,omitempty" json:"likes,omitempty"`
	Reviews     int                `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
}
