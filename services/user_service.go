package services

import (
	"context"
	"errors"
	"fmt"

	"mealmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService handles signup and account lookups. Users are never deleted.
type UserService struct {
	db *mongo.Database
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{db: db}
}

func (s *UserService) users() *mongo.Collection {
	return s.db.Collection(usersCollection)
}

// Create inserts a user unless the email already exists; created is false
// for a duplicate.
func (s *UserService) Create(ctx context.Context, doc map[string]any) (bool, error) {
	email, _ := doc["email"].(string)
	if email == "" {
		return false, fmt.Errorf("%w: email is required", ErrValidation)
	}
	err := s.users().FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}
	if _, err := s.users().InsertOne(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

// GetByEmail returns the user for an exact, case-sensitive email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListOthers returns every user except the one with the given email.
func (s *UserService) ListOthers(ctx context.Context, email string) ([]models.User, error) {
	cur, err := s.users().Find(ctx, bson.M{"email": bson.M{"$ne": email}})
	if err != nil {
		return nil, err
	}
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search matches one user by exact email, returned as a one-element slice.
func (s *UserService) Search(ctx context.Context, email string) ([]models.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return []models.User{*user}, nil
}

// SetRole changes a user's role to admin or user.
func (s *UserService) SetRole(ctx context.Context, id, role string) error {
	if role != "admin" && role != "user" {
		return fmt.Errorf("%w: invalid role %q", ErrValidation, role)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.users().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("%w: user %s not updated", ErrNotFound, id)
	}
	return nil
}
