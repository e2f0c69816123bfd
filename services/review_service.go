package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mealmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewService stores reviews and maintains the reviews counter on the
// parent meal. The counter is event-sourced: it counts review creations and
// is never decremented when a review is deleted, so it can exceed the number
// of reviews currently stored.
type ReviewService struct {
	db *mongo.Database
}

func NewReviewService(db *mongo.Database) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) reviews() *mongo.Collection {
	return s.db.Collection(reviewsCollection)
}

// Create stores a review and bumps the parent meal's reviews counter,
// falling back to the upcoming collection when the live increment matched
// nothing. Extra fields in rest are stored as submitted; a userId in rest is
// converted to an ObjectID, else stored as null.
func (s *ReviewService) Create(ctx context.Context, mealID, text string, rest map[string]any) error {
	if mealID == "" || text == "" {
		return fmt.Errorf("%w: mealId and text are required", ErrValidation)
	}
	oid, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return ErrInvalidID
	}

	doc := bson.M{}
	for k, v := range rest {
		doc[k] = v
	}
	doc["mealId"] = oid
	doc["text"] = text
	doc["date"] = time.Now()
	doc["userId"] = nil
	if raw, ok := rest["userId"].(string); ok {
		if uid, err := primitive.ObjectIDFromHex(raw); err == nil {
			doc["userId"] = uid
		}
	}
	if _, err := s.reviews().InsertOne(ctx, doc); err != nil {
		return err
	}

	update := bson.M{"$inc": bson.M{"reviews": 1}}
	res, err := s.db.Collection(mealsCollection).UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		if _, err := s.db.Collection(upcomingCollection).UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns every review.
func (s *ReviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	cur, err := s.reviews().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []models.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListForUser returns reviews submitted under an email.
func (s *ReviewService) ListForUser(ctx context.Context, email string) ([]models.Review, error) {
	cur, err := s.reviews().Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var out []models.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListForMeal returns a meal's reviews, newest first.
func (s *ReviewService) ListForMeal(ctx context.Context, mealID string) ([]models.Review, error) {
	oid, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return nil, ErrInvalidID
	}
	cur, err := s.reviews().Find(ctx, bson.M{"mealId": oid},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var out []models.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a single review.
func (s *ReviewService) GetByID(ctx context.Context, id string) (*models.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var review models.Review
	err = s.reviews().FindOne(ctx, bson.M{"_id": oid}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateText replaces the review text.
func (s *ReviewService) UpdateText(ctx context.Context, id, text string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.reviews().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"text": text}})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("%w: review %s not updated", ErrNotFound, id)
	}
	return nil
}

// Delete removes a review. The parent meal's reviews counter is left as is.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.reviews().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: review %s", ErrNotFound, id)
	}
	return nil
}
