package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review references either a live or an upcoming meal by id. UserID is null
// for reviews submitted without an account reference.
type Review struct {
	ID     primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	MealID primitive.ObjectID  `bson:"mealId" json:"mealId"`
	UserID *primitive.ObjectID `bson:"userId" json:"userId"`
	Email  string              `bson:"email,omitempty" json:"email,omitempty"`
	Name   string              `bson:"name,omitempty" json:"name,omitempty"`
	Text   string              `bson:"text" json:"text"`
	Date   time.Time           `bson:"date" json:"date"`
}
