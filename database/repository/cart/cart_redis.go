// File: database/repository/cart/cart_redis.go
package cartRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"caterly/models"
)

// redisCartRepo holds anonymous device carts in a Redis hash per device:
// key "cart:<deviceID>", one field per package id. The hash layout gives the
// one-line-per-(owner, package) invariant for free.
type redisCartRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartRepo constructs the Redis CartRepository backing carts of
// anonymous (device-identified) owners. Carts expire after ttl of inactivity.
func NewRedisCartRepo(client *redis.Client, ttl time.Duration) CartRepository {
	return &redisCartRepo{client: client, ttl: ttl}
}

func cartKey(ownerID string) string {
	return "cart:" + ownerID
}

func (r *redisCartRepo) GetLines(ctx context.Context, ownerID string) ([]models.CartLine, error) {
	fields, err := r.client.HGetAll(ctx, cartKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read device cart: %w", err)
	}

	lines := make([]models.CartLine, 0, len(fields))
	for _, raw := range fields {
		var line models.CartLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			return nil, fmt.Errorf("corrupt cart line in device cart: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *redisCartRepo) GetLineByPackage(ctx context.Context, ownerID, packageID string) (*models.CartLine, error) {
	raw, err := r.client.HGet(ctx, cartKey(ownerID), packageID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read device cart line: %w", err)
	}

	var line models.CartLine
	if err := json.Unmarshal([]byte(raw), &line); err != nil {
		return nil, fmt.Errorf("corrupt cart line in device cart: %w", err)
	}
	return &line, nil
}

func (r *redisCartRepo) GetLineByID(ctx context.Context, ownerID, lineID string) (*models.CartLine, error) {
	lines, err := r.GetLines(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		if lines[i].ID == lineID {
			return &lines[i], nil
		}
	}
	return nil, nil
}

func (r *redisCartRepo) UpsertLine(ctx context.Context, ownerID string, line models.CartLine) (*models.CartLine, error) {
	existing, err := r.GetLineByPackage(ctx, ownerID, line.PackageID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	line.OwnerID = ownerID
	line.UpdatedAt = now
	if existing != nil {
		line.ID = existing.ID
		line.CreatedAt = existing.CreatedAt
	} else {
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		line.CreatedAt = now
	}

	data, err := json.Marshal(line)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart line: %w", err)
	}

	key := cartKey(ownerID)
	if err := r.client.HSet(ctx, key, line.PackageID, data).Err(); err != nil {
		return nil, fmt.Errorf("failed to write device cart line: %w", err)
	}
	// Refresh the cart's lifetime on every write.
	_ = r.client.Expire(ctx, key, r.ttl).Err()

	return &line, nil
}

func (r *redisCartRepo) RemoveLine(ctx context.Context, ownerID, lineID string) error {
	line, err := r.GetLineByID(ctx, ownerID, lineID)
	if err != nil {
		return err
	}
	if line == nil {
		// Idempotent: nothing to remove.
		return nil
	}
	if err := r.client.HDel(ctx, cartKey(ownerID), line.PackageID).Err(); err != nil {
		return fmt.Errorf("failed to remove device cart line: %w", err)
	}
	return nil
}
