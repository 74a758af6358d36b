// File: database/repository/cart/cart_mongo.go
package cartRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"caterly/config"
	"caterly/database"
	"caterly/models"
)

type mongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo constructs the MongoDB CartRepository backing carts of
// authenticated owners.
func NewMongoCartRepo() CartRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoCartRepo{
		coll: db.Collection("cart_lines"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes enforces the one-line-per-(owner, package) invariant at the
// store level and speeds up owner scans.
func (r *mongoCartRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "package_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoCartRepo) GetLines(ctx context.Context, ownerID string) ([]models.CartLine, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lines []models.CartLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *mongoCartRepo) GetLineByPackage(ctx context.Context, ownerID, packageID string) (*models.CartLine, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var line models.CartLine
	err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID, "package_id": packageID}).Decode(&line)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *mongoCartRepo) GetLineByID(ctx context.Context, ownerID, lineID string) (*models.CartLine, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var line models.CartLine
	err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID, "id": lineID}).Decode(&line)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *mongoCartRepo) UpsertLine(ctx context.Context, ownerID string, line models.CartLine) (*models.CartLine, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	line.OwnerID = ownerID
	line.UpdatedAt = now

	newID := line.ID
	if newID == "" {
		newID = uuid.New().String()
	}

	filter := bson.M{"owner_id": ownerID, "package_id": line.PackageID}
	update := bson.M{
		"$set": bson.M{
			"selected_dish_ids": line.SelectedDishIDs,
			"add_ons":           line.AddOns,
			"guests":            line.Guests,
			"event":             line.Event,
			"price_at_time":     line.PriceAtTime,
			"currency":          line.Currency,
			"caterer_id":        line.CatererID,
			"revision":          line.Revision,
			"updated_at":        line.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":         newID,
			"owner_id":   ownerID,
			"package_id": line.PackageID,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.CartLine
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *mongoCartRepo) RemoveLine(ctx context.Context, ownerID, lineID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	// Removing a line that does not exist is a no-op, not an error.
	_, err := r.coll.DeleteOne(ctx, bson.M{"owner_id": ownerID, "id": lineID})
	return err
}
