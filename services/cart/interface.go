// Package cart owns every write to a buyer's cart. It routes each mutation
// to the store that holds the owner's cart (Redis for anonymous devices,
// Mongo for authenticated users), keeps at most one line per (owner, package),
// and recomputes a line's frozen price on every mutation.
package cart

import (
	"context"

	cartRepo "caterly/database/repository/cart"
	"caterly/models"
	"caterly/services/catalog"
)

// AddOnInput names an add-on dish and how many units of it the buyer wants.
// The unit price is resolved from the package, never trusted from the client.
type AddOnInput struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

// AddInput is the add-to-cart request for one package configuration.
type AddInput struct {
	PackageID       string              `json:"package_id"`
	SelectedDishIDs []string            `json:"selected_dish_ids"`
	AddOns          []AddOnInput        `json:"add_ons"`
	Guests          int                 `json:"guests"`
	Event           models.EventDetails `json:"event"`
}

// UpdateInput mutates an existing line. Nil fields are left unchanged; any
// change recomputes the line's price before the single persisting write.
type UpdateInput struct {
	Guests          *int                 `json:"guests,omitempty"`
	SelectedDishIDs *[]string            `json:"selected_dish_ids,omitempty"`
	AddOns          *[]AddOnInput        `json:"add_ons,omitempty"`
	Event           *models.EventDetails `json:"event,omitempty"`
}

// MigrationFailure records one local line that could not be moved to the
// remote store. The line stays local for retry on the next login.
type MigrationFailure struct {
	LineID    string `json:"line_id"`
	PackageID string `json:"package_id"`
	Reason    string `json:"reason"`
}

// MigrationReport summarizes one local-to-remote cart migration.
type MigrationReport struct {
	Migrated []models.CartLine  `json:"migrated"`
	Failed   []MigrationFailure `json:"failed,omitempty"`
}

// CartService is the single write path to a buyer's cart.
type CartService interface {
	GetCart(ctx context.Context, owner models.CartOwner) ([]models.CartLine, error)
	AddToCart(ctx context.Context, owner models.CartOwner, input AddInput) (*models.CartLine, error)
	UpdateLine(ctx context.Context, owner models.CartOwner, lineID string, input UpdateInput) (*models.CartLine, error)
	RemoveLine(ctx context.Context, owner models.CartOwner, lineID string) error
	MigrateLocalCartToRemote(ctx context.Context, deviceID, userID string) (*MigrationReport, error)
}

// DefaultCartService implements CartService over the two cart stores.
type DefaultCartService struct {
	LocalRepo  cartRepo.CartRepository
	RemoteRepo cartRepo.CartRepository
	Catalog    catalog.CatalogService

	seq *lineSequencer
}

// NewDefaultCartService wires the cart service over its two stores and the
// catalog boundary.
func NewDefaultCartService(local, remote cartRepo.CartRepository, cat catalog.CatalogService) *DefaultCartService {
	return &DefaultCartService{
		LocalRepo:  local,
		RemoteRepo: remote,
		Catalog:    cat,
		seq:        newLineSequencer(),
	}
}

// repoFor picks the store that owns this owner's cart. The auth state is an
// explicit field on the owner, passed in by the caller.
func (s *DefaultCartService) repoFor(owner models.CartOwner) cartRepo.CartRepository {
	if owner.Authenticated {
		return s.RemoteRepo
	}
	return s.LocalRepo
}
