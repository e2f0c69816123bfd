package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeGateway struct {
	secret string
	err    error
}

func (f fakeGateway) CreateIntent(int64) (string, error) {
	return f.secret, f.err
}

func TestCreateIntent(t *testing.T) {
	svc := NewPaymentService(nil, fakeGateway{secret: "pi_123_secret"})
	secret, err := svc.CreateIntent(500)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", secret)
}

func TestCreateIntentSurfacesGatewayError(t *testing.T) {
	svc := NewPaymentService(nil, fakeGateway{err: errors.New("card_declined: insufficient funds")})
	_, err := svc.CreateIntent(500)
	assert.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "card_declined: insufficient funds")
}

func TestConfirmSetsBadgeAndAppendsRecord(t *testing.T) {
	db := testDB(t)
	users := NewUserService(db)
	svc := NewPaymentService(db, fakeGateway{})
	ctx := context.Background()

	created, err := users.Create(ctx, map[string]any{"email": "u@x.com", "role": "user"})
	require.NoError(t, err)
	require.True(t, created)

	result, err := svc.Confirm(ctx, "u@x.com", "Gold", 19.99, "txn_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedUsers)
	assert.Equal(t, "complete", result.Payment.Status)
	assert.False(t, result.Payment.ID.IsZero())

	user, err := users.GetByEmail(ctx, "u@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Gold", user.Badge)

	history, err := svc.History(ctx, "u@x.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Gold", history[0].PlanName)
	assert.Equal(t, "txn_1", history[0].TransactionID)
}

func TestConfirmWithUnknownUserStillRecords(t *testing.T) {
	db := testDB(t)
	svc := NewPaymentService(db, fakeGateway{})
	ctx := context.Background()

	// badge update is best-effort; the ledger entry is written regardless
	result, err := svc.Confirm(ctx, "ghost@x.com", "Silver", 9.99, "txn_2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.MatchedUsers)

	n, err := db.Collection(paymentsCollection).CountDocuments(ctx, bson.M{"userEmail": "ghost@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestHistoryEmptyIsNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewPaymentService(db, fakeGateway{})

	_, err := svc.History(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
