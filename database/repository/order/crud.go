// File: database/repository/order/crud.go
package orderRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"caterly/models"
)

func (r *mongoOrderRepo) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"id": orderID}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepo) GetByUser(ctx context.Context, userID string) ([]models.Order, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
