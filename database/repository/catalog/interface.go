// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"caterly/config"
	"caterly/database"
	"caterly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository exposes the read side of the package catalog plus the
// upsert path used by caterer tooling. Packages are authored elsewhere; the
// engine treats them as immutable once fetched.
type CatalogRepository interface {
	GetPackageByID(ctx context.Context, packageID string) (*models.Package, error)
	GetPackagesByCaterer(ctx context.Context, catererID string) ([]models.Package, error)
	UpsertPackage(ctx context.Context, pkg models.Package) (*models.Package, error)
	DeletePackage(ctx context.Context, packageID string) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoCatalogRepo{
		coll: db.Collection("packages"),
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
