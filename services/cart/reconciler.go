// File: services/cart/reconciler.go
package cart

import (
	"context"

	"caterly/models"
	"caterly/services/pricing"
	"caterly/services/selection"
)

// GetCart returns the owner's cart lines from whichever store holds them.
func (s *DefaultCartService) GetCart(ctx context.Context, owner models.CartOwner) ([]models.CartLine, error) {
	if owner.Key() == "" {
		return nil, newValidationError("cart owner has no identity")
	}
	lines, err := s.repoFor(owner).GetLines(ctx, owner.Key())
	if err != nil {
		return nil, &PersistenceError{Op: "get cart", Err: err}
	}
	return lines, nil
}

// AddToCart upserts one package configuration into the owner's cart. If the
// owner already has a line for the package, that line's guests, selection,
// add-ons and price are replaced; a second line is never created.
func (s *DefaultCartService) AddToCart(ctx context.Context, owner models.CartOwner, input AddInput) (*models.CartLine, error) {
	if owner.Key() == "" {
		return nil, newValidationError("cart owner has no identity")
	}
	if input.PackageID == "" {
		return nil, newValidationError("package id is required")
	}
	if input.Guests < 1 {
		return nil, newValidationError("guests must be at least 1, got %d", input.Guests)
	}

	pkg, err := s.Catalog.GetPackage(ctx, input.PackageID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch package", Err: err}
	}

	selected, rejection, err := selection.ValidateSet(pkg, input.SelectedDishIDs)
	if err != nil {
		return nil, newValidationError("%v", err)
	}
	if rejection != nil {
		return nil, &SelectionRejectedError{Rejection: *rejection}
	}

	addOns, err := ResolveAddOns(pkg, input.AddOns)
	if err != nil {
		return nil, err
	}

	total, err := pricing.ComputeLineTotal(pkg, input.Guests, addOns)
	if err != nil {
		return nil, newValidationError("%v", err)
	}

	line := models.CartLine{
		PackageID:       pkg.ID,
		CatererID:       pkg.CatererID,
		SelectedDishIDs: selected,
		AddOns:          addOns,
		Guests:          input.Guests,
		Event:           input.Event,
		PriceAtTime:     total,
		Currency:        pkg.Currency,
	}

	repo := s.repoFor(owner)
	existing, err := repo.GetLineByPackage(ctx, owner.Key(), pkg.ID)
	if err != nil {
		return nil, &PersistenceError{Op: "look up cart line", Err: err}
	}
	if existing != nil {
		line.ID = existing.ID
	}

	seqID := line.ID
	if seqID == "" {
		// New lines cannot race an in-flight edit; key the sequence by the
		// package until the store assigns an id.
		seqID = owner.Key() + ":" + pkg.ID
	}
	seq := s.seq.next(seqID)
	line.Revision = seq

	stored, err := repo.UpsertLine(ctx, owner.Key(), line)
	if err != nil {
		return nil, &PersistenceError{Op: "upsert cart line", Err: err}
	}
	if !s.seq.isCurrent(seqID, seq) {
		return nil, &SupersededError{LineID: stored.ID}
	}
	return stored, nil
}

// RemoveLine deletes a line from the owner's cart. Removing a line that does
// not exist is a no-op.
func (s *DefaultCartService) RemoveLine(ctx context.Context, owner models.CartOwner, lineID string) error {
	if owner.Key() == "" {
		return newValidationError("cart owner has no identity")
	}
	if err := s.repoFor(owner).RemoveLine(ctx, owner.Key(), lineID); err != nil {
		return &PersistenceError{Op: "remove cart line", Err: err}
	}
	s.seq.forget(lineID)
	return nil
}

// ResolveAddOns maps requested add-ons onto the package's add-on items,
// taking the unit price from the catalog rather than trusting the client.
func ResolveAddOns(pkg *models.Package, inputs []AddOnInput) ([]models.AddOnSelection, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	out := make([]models.AddOnSelection, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, newValidationError("add-on %s: quantity must be at least 1", in.DishID)
		}
		item, ok := pkg.ItemByDishID(in.DishID)
		if !ok {
			return nil, newValidationError("add-on %s is not part of package %s", in.DishID, pkg.ID)
		}
		if !item.IsAddon && !item.Dish.IsAddon {
			return nil, newValidationError("dish %s is not an add-on", in.DishID)
		}
		out = append(out, models.AddOnSelection{
			DishID:    in.DishID,
			UnitPrice: item.Dish.UnitPrice,
			Quantity:  in.Quantity,
		})
	}
	return out, nil
}
