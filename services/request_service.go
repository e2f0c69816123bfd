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
)

// RequestService tracks user meal requests through the
// pending → approved/rejected/Served lifecycle.
type RequestService struct {
	db *mongo.Database
}

func NewRequestService(db *mongo.Database) *RequestService {
	return &RequestService{db: db}
}

func (s *RequestService) requests() *mongo.Collection {
	return s.db.Collection(requestsCollection)
}

// ValidTransition reports whether status is an accepted transition label.
// The set is case-sensitive: "Served" is the only accepted casing.
func ValidTransition(status string) bool {
	switch status {
	case models.RequestApproved, models.RequestRejected, models.RequestServed:
		return true
	}
	return false
}

// Create inserts a request for (userEmail, mealID) with server-assigned
// requestedAt, carrying any extra fields through. A prior request for the
// same pair, whatever its status, makes this a no-op with created=false.
// The existence check and the insert are separate reads; two concurrent
// identical creates can both pass the check.
func (s *RequestService) Create(ctx context.Context, userEmail, mealID string, extra map[string]any) (bool, error) {
	if userEmail == "" || mealID == "" {
		return false, fmt.Errorf("%w: userEmail and mealId are required", ErrValidation)
	}

	err := s.requests().FindOne(ctx, bson.M{"userEmail": userEmail, "mealId": mealID}).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	doc := bson.M{}
	for k, v := range extra {
		doc[k] = v
	}
	doc["userEmail"] = userEmail
	doc["mealId"] = mealID
	if missingField(doc["status"]) {
		doc["status"] = models.RequestPending
	}
	doc["requestedAt"] = time.Now()

	if _, err := s.requests().InsertOne(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

// ListAll returns every request: pending first, served second, everything
// else third, each group newest first. The ranking runs in the store as an
// aggregation; the synthetic rank field never reaches the caller.
func (s *RequestService) ListAll(ctx context.Context) ([]models.Request, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"statusOrder": bson.M{
				"$switch": bson.M{
					"branches": bson.A{
						bson.M{"case": bson.M{"$eq": bson.A{bson.M{"$toLower": "$status"}, "pending"}}, "then": 1},
						bson.M{"case": bson.M{"$eq": bson.A{bson.M{"$toLower": "$status"}, "served"}}, "then": 2},
					},
					"default": 3,
				},
			},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "statusOrder", Value: 1}, {Key: "requestedAt", Value: -1}}}},
		{{Key: "$project", Value: bson.M{"statusOrder": 0}}},
	}

	cur, err := s.requests().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []models.Request
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListForUser returns the user's requests in no particular order.
func (s *RequestService) ListForUser(ctx context.Context, email string) ([]models.Request, error) {
	cur, err := s.requests().Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	var out []models.Request
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus moves a request to a terminal state, storing the exact literal
// that passed validation.
func (s *RequestService) SetStatus(ctx context.Context, id, status string) error {
	if !ValidTransition(status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.requests().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("%w: request %s not updated", ErrNotFound, id)
	}
	return nil
}

// Delete removes a request.
func (s *RequestService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.requests().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: request %s", ErrNotFound, id)
	}
	return nil
}
