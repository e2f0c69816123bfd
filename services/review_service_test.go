package services

import (
	"context"
	"testing"
	"time"

	"mealmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateReviewRoundTrip(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalogService(db)
	svc := NewReviewService(db)
	ctx := context.Background()

	mealID, err := catalog.CreateMeal(ctx, map[string]any{"title": "Lasagna"})
	require.NoError(t, err)

	userID := primitive.NewObjectID()
	before := time.Now().Truncate(time.Millisecond)
	err = svc.Create(ctx, mealID.Hex(), "rich and cheesy", map[string]any{
		"email":  "u@x.com",
		"userId": userID.Hex(),
	})
	require.NoError(t, err)

	reviews, err := svc.ListForMeal(ctx, mealID.Hex())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "rich and cheesy", reviews[0].Text)
	assert.Equal(t, "u@x.com", reviews[0].Email)
	require.NotNil(t, reviews[0].UserID)
	assert.Equal(t, userID, *reviews[0].UserID)
	assert.False(t, reviews[0].Date.Before(before))
}

func TestCreateReviewValidation(t *testing.T) {
	db := testDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Create(ctx, "", "text", nil), ErrValidation)
	assert.ErrorIs(t, svc.Create(ctx, primitive.NewObjectID().Hex(), "", nil), ErrValidation)
	assert.ErrorIs(t, svc.Create(ctx, "junk", "text", nil), ErrInvalidID)
}

func TestReviewCounterIsEventSourced(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalogService(db)
	svc := NewReviewService(db)
	ctx := context.Background()

	mealID, err := catalog.CreateMeal(ctx, map[string]any{"title": "Ceviche"})
	require.NoError(t, err)

	require.NoError(t, svc.Create(ctx, mealID.Hex(), "fresh", map[string]any{"email": "a@b.c"}))
	require.NoError(t, svc.Create(ctx, mealID.Hex(), "zesty", map[string]any{"email": "d@e.f"}))

	var meal models.Meal
	require.NoError(t, db.Collection(mealsCollection).FindOne(ctx, bson.M{"_id": mealID}).Decode(&meal))
	assert.Equal(t, 2, meal.Reviews)

	// deleting a review leaves the counter where it was
	reviews, err := svc.ListForMeal(ctx, mealID.Hex())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.NoError(t, svc.Delete(ctx, reviews[0].ID.Hex()))

	require.NoError(t, db.Collection(mealsCollection).FindOne(ctx, bson.M{"_id": mealID}).Decode(&meal))
	assert.Equal(t, 2, meal.Reviews)
}

func TestCreateReviewFallsBackToUpcoming(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalogService(db)
	svc := NewReviewService(db)
	ctx := context.Background()

	id, err := catalog.CreateUpcomingMeal(ctx, map[string]any{
		"title": "Bibimbap", "category": "Dinner", "price": 13.0,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Create(ctx, id.Hex(), "can't wait", map[string]any{"email": "a@b.c"}))

	var meal models.Meal
	require.NoError(t, db.Collection(upcomingCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&meal))
	assert.Equal(t, 1, meal.Reviews)
}

func TestReviewLookupAndEdit(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalogService(db)
	svc := NewReviewService(db)
	ctx := context.Background()

	mealID, err := catalog.CreateMeal(ctx, map[string]any{"title": "Gyoza"})
	require.NoError(t, err)
	require.NoError(t, svc.Create(ctx, mealID.Hex(), "crispy", map[string]any{"email": "a@b.c"}))

	mine, err := svc.ListForUser(ctx, "a@b.c")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	got, err := svc.GetByID(ctx, mine[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "crispy", got.Text)

	require.NoError(t, svc.UpdateText(ctx, got.ID.Hex(), "very crispy"))
	got, err = svc.GetByID(ctx, got.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "very crispy", got.Text)

	assert.ErrorIs(t, svc.UpdateText(ctx, primitive.NewObjectID().Hex(), "x"), ErrNotFound)
	_, err = svc.GetByID(ctx, "junk")
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = svc.GetByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}
