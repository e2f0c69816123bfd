package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account created at signup. Email is the unique, case-sensitive
// key; Badge carries the subscription tier and is set on payment confirmation.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // "admin" or "user"
	Badge string             `bson:"badge,omitempty" json:"badge,omitempty"`
}
