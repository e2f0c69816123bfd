package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request statuses. A request starts pending and moves to exactly one of the
// terminal states; "Served" keeps the casing the transition validated.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
	RequestServed   = "Served"
)

// Request is a user's ask for a meal. MealID is kept as the string the client
// sent; requests are matched on the (userEmail, mealId) pair.
type Request struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	MealID      string             `bson:"mealId" json:"mealId"`
	MealTitle   string             `bson:"mealTitle,omitempty" json:"mealTitle,omitempty"`
	UserName    string             `bson:"userName,omitempty" json:"userName,omitempty"`
	Status      string             `bson:"status" json:"status"`
	RequestedAt time.Time          `bson:"requestedAt" json:"requestedAt"`
}
