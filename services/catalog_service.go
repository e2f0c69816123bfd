package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"mealmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogService owns the meals and upcomingmeals collections: CRUD, search,
// the upcoming→live promotion, and the likes counter.
type CatalogService struct {
	db *mongo.Database
}

func NewCatalogService(db *mongo.Database) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) meals() *mongo.Collection {
	return s.db.Collection(mealsCollection)
}

func (s *CatalogService) upcoming() *mongo.Collection {
	return s.db.Collection(upcomingCollection)
}

// SplitIngredients turns a comma-delimited ingredient string into trimmed,
// non-empty tokens, preserving order.
func SplitIngredients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizeMealDoc rewrites a string ingredients field into a token list and
// lower-cases the category. Documents are otherwise stored as submitted.
func normalizeMealDoc(doc map[string]any) {
	if raw, ok := doc["ingredients"].(string); ok {
		doc["ingredients"] = SplitIngredients(raw)
	}
	if cat, ok := doc["category"].(string); ok {
		doc["category"] = strings.ToLower(cat)
	}
}

func missingField(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case int:
		return t == 0
	}
	return false
}

// CreateMeal inserts a meal document. Partial documents are accepted; no
// field is required.
func (s *CatalogService) CreateMeal(ctx context.Context, doc map[string]any) (primitive.ObjectID, error) {
	normalizeMealDoc(doc)
	res, err := s.meals().InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// CreateUpcomingMeal inserts into the upcoming collection. Title, category
// and price must be present.
func (s *CatalogService) CreateUpcomingMeal(ctx context.Context, doc map[string]any) (primitive.ObjectID, error) {
	if missingField(doc["title"]) || missingField(doc["category"]) || missingField(doc["price"]) {
		return primitive.NilObjectID, fmt.Errorf("%w: title, category and price are required", ErrValidation)
	}
	normalizeMealDoc(doc)
	res, err := s.upcoming().InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// SortField picks the meal sort field for a client-supplied key. Unknown
// keys sort by date.
func SortField(sortBy string) string {
	switch sortBy {
	case "price", "category":
		return sortBy
	}
	return "date"
}

// ListMeals filters by title substring (case-insensitive) and exact
// case-folded category ("All" and empty skip the category filter), sorted by
// price, category or date, descending unless sortOrder is "asc".
func (s *CatalogService) ListMeals(ctx context.Context, search, category, sortBy, sortOrder string) ([]models.Meal, error) {
	filter := bson.M{}
	if search != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}
	if category != "" && category != "All" {
		filter["category"] = strings.ToLower(category)
	}

	order := -1
	if sortOrder == "asc" {
		order = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: SortField(sortBy), Value: order}})

	cur, err := s.meals().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Meal
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUpcoming returns every upcoming meal, newest first.
func (s *CatalogService) ListUpcoming(ctx context.Context) ([]models.Meal, error) {
	cur, err := s.upcoming().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var out []models.Meal
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopMeals returns the n most recent meals.
func (s *CatalogService) TopMeals(ctx context.Context, n int64) ([]models.Meal, error) {
	return s.TopMealsByCategory(ctx, "", n)
}

// TopMealsByCategory returns the n most recent meals in a category, matched
// case-insensitively. An empty category means no filter.
func (s *CatalogService) TopMealsByCategory(ctx context.Context, category string, n int64) ([]models.Meal, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(category) + "$", Options: "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(n)
	cur, err := s.meals().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Meal
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByExactTitle finds the meal whose title matches the whole string,
// ignoring case.
func (s *CatalogService) SearchByExactTitle(ctx context.Context, title string) (*models.Meal, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(title) + "$", Options: "i"}}
	var meal models.Meal
	err := s.meals().FindOne(ctx, filter).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: meal %q", ErrNotFound, title)
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// GetByID looks the id up in meals first, then upcomingmeals. The raw
// document is returned so fields outside the model shape survive.
func (s *CatalogService) GetByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var doc bson.M
	err = s.meals().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = s.upcoming().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: meal %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateMeal applies a partial replacement. NotFound covers both an absent
// meal and an update that changed nothing.
func (s *CatalogService) UpdateMeal(ctx context.Context, id string, doc map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	normalizeMealDoc(doc)
	res, err := s.meals().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("%w: meal %s not updated", ErrNotFound, id)
	}
	return nil
}

// DeleteMeal removes the meal and cascades to its reviews, returning how
// many reviews went with it.
func (s *CatalogService) DeleteMeal(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := s.meals().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount == 0 {
		return 0, fmt.Errorf("%w: meal %s", ErrNotFound, id)
	}
	reviews, err := s.db.Collection(reviewsCollection).DeleteMany(ctx, bson.M{"mealId": oid})
	if err != nil {
		return 0, err
	}
	return reviews.DeletedCount, nil
}

// Promote copies an upcoming meal into the live catalog with status
// "ongoing" and a fresh id, then deletes the source. The two writes are not
// transactional: a crash between them leaves both documents behind.
func (s *CatalogService) Promote(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	var doc bson.M
	err = s.upcoming().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, fmt.Errorf("%w: upcoming meal %s", ErrNotFound, id)
	}
	if err != nil {
		return primitive.NilObjectID, err
	}

	delete(doc, "_id")
	doc["status"] = "ongoing"
	res, err := s.meals().InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if _, err := s.upcoming().DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// SetLike adjusts the likes counter by ±1 with an atomic increment, falling
// back to the upcoming collection when the live update matched nothing. The
// counter has no floor and may go negative.
func (s *CatalogService) SetLike(ctx context.Context, id, action string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	var inc int
	switch action {
	case "like":
		inc = 1
	case "dislike":
		inc = -1
	default:
		return fmt.Errorf("%w: action must be like or dislike", ErrValidation)
	}

	update := bson.M{"$inc": bson.M{"likes": inc}}
	res, err := s.meals().UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		if _, err := s.upcoming().UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
			return err
		}
	}
	return nil
}
