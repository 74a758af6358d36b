// File: database/repository/catalog/crud.go
package catalogRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"caterly/models"
)

func (r *mongoCatalogRepo) GetPackageByID(ctx context.Context, packageID string) (*models.Package, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": packageID}
	var pkg models.Package
	if err := r.coll.FindOne(ctx, filter).Decode(&pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *mongoCatalogRepo) GetPackagesByCaterer(ctx context.Context, catererID string) ([]models.Package, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"caterer_id": catererID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pkgs []models.Package
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *mongoCatalogRepo) UpsertPackage(ctx context.Context, pkg models.Package) (*models.Package, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if pkg.ID == "" {
		pkg.ID = uuid.New().String()
	}

	filter := bson.M{"id": pkg.ID}
	update := bson.M{"$set": pkg}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *mongoCatalogRepo) DeletePackage(ctx context.Context, packageID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": packageID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
