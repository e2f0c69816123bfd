package services

import (
	"context"
	"fmt"
	"time"

	"mealmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentGateway creates a payment intent for an amount in the smallest
// currency unit and returns the client confirmation secret.
type PaymentGateway interface {
	CreateIntent(amount int64) (string, error)
}

// PaymentService confirms payments against subscription tiers and keeps the
// append-only payment history.
type PaymentService struct {
	db      *mongo.Database
	gateway PaymentGateway
}

func NewPaymentService(db *mongo.Database, gateway PaymentGateway) *PaymentService {
	return &PaymentService{db: db, gateway: gateway}
}

func (s *PaymentService) payments() *mongo.Collection {
	return s.db.Collection(paymentsCollection)
}

// CreateIntent asks the gateway for a payment intent. Gateway failures are
// surfaced with the gateway's own message; there is no retry.
func (s *PaymentService) CreateIntent(amount int64) (string, error) {
	secret, err := s.gateway.CreateIntent(amount)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGateway, err.Error())
	}
	return secret, nil
}

// ConfirmResult reports both effects of a confirmation. MatchedUsers is zero
// when no user carries the email; the record is written regardless.
type ConfirmResult struct {
	MatchedUsers int64          `json:"matchedUsers"`
	Payment      models.Payment `json:"payment"`
}

// Confirm sets the user's badge to the plan name and appends a payment
// record. The two writes are independent; a failure after the badge update
// leaves no record behind.
func (s *PaymentService) Confirm(ctx context.Context, userEmail, planName string, amount float64, transactionID string) (*ConfirmResult, error) {
	badge, err := s.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"email": userEmail},
		bson.M{"$set": bson.M{"badge": planName}})
	if err != nil {
		return nil, err
	}

	record := models.Payment{
		UserEmail:     userEmail,
		PlanName:      planName,
		Amount:        amount,
		TransactionID: transactionID,
		Status:        "complete",
		Date:          time.Now(),
	}
	res, err := s.payments().InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = res.InsertedID.(primitive.ObjectID)

	return &ConfirmResult{MatchedUsers: badge.MatchedCount, Payment: record}, nil
}

// History returns a user's payment records. A user with no payments is
// reported as NotFound, not as an empty list.
func (s *PaymentService) History(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := s.payments().Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	var out []models.Payment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no payment history for %s", ErrNotFound, email)
	}
	return out, nil
}
