// File: database/repository/cart/interface.go
package cartRepo

import (
	"context"

	"caterly/models"
)

// CartRepository is the store behind a buyer's cart. Two interchangeable
// implementations exist: a MongoDB store for authenticated owners and a
// device-scoped Redis store for anonymous owners. Which one is active is an
// explicit decision made by the cart service from the CartOwner it is handed,
// never ambient state.
//
// Contract:
//   - UpsertLine keys on (ownerID, PackageID): at most one line per package
//     per owner. It assigns the line an ID when missing and echoes the stored
//     line back.
//   - GetLineByPackage returns (nil, nil) when no line exists.
//   - RemoveLine is idempotent; removing an unknown line id is a no-op.
type CartRepository interface {
	GetLines(ctx context.Context, ownerID string) ([]models.CartLine, error)
	GetLineByPackage(ctx context.Context, ownerID, packageID string) (*models.CartLine, error)
	GetLineByID(ctx context.Context, ownerID, lineID string) (*models.CartLine, error)
	UpsertLine(ctx context.Context, ownerID string, line models.CartLine) (*models.CartLine, error)
	RemoveLine(ctx context.Context, ownerID, lineID string) error
}
