// File: database/repository/order/interface.go
package orderRepo

import (
	"context"
	"fmt"
	"time"

	"caterly/config"
	"caterly/database"
	"caterly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository persists the orders a cart converts into at checkout.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	GetByUser(ctx context.Context, userID string) ([]models.Order, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new MongoDB OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *mongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
