// File: services/cart/mutator.go
package cart

import (
	"context"

	"caterly/models"
	"caterly/services/pricing"
	"caterly/services/selection"
)

// UpdateLine applies a guest-count, selection, add-on or event change to an
// existing line. All validation happens before anything is written; guests,
// add-ons and the recomputed price are then persisted in one store call, so a
// partial update (new guests, stale price) cannot be observed.
func (s *DefaultCartService) UpdateLine(ctx context.Context, owner models.CartOwner, lineID string, input UpdateInput) (*models.CartLine, error) {
	if owner.Key() == "" {
		return nil, newValidationError("cart owner has no identity")
	}

	repo := s.repoFor(owner)
	line, err := repo.GetLineByID(ctx, owner.Key(), lineID)
	if err != nil {
		return nil, &PersistenceError{Op: "look up cart line", Err: err}
	}
	if line == nil {
		return nil, &NotFoundError{LineID: lineID}
	}

	pkg, err := s.Catalog.GetPackage(ctx, line.PackageID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch package", Err: err}
	}

	updated := *line

	if input.Guests != nil {
		if *input.Guests < 1 {
			// Rejected before mutation; the line keeps its previous guests.
			return nil, newValidationError("guests must be at least 1, got %d", *input.Guests)
		}
		updated.Guests = *input.Guests
	}

	if input.SelectedDishIDs != nil {
		selected, rejection, err := selection.ValidateSet(pkg, *input.SelectedDishIDs)
		if err != nil {
			return nil, newValidationError("%v", err)
		}
		if rejection != nil {
			return nil, &SelectionRejectedError{Rejection: *rejection}
		}
		updated.SelectedDishIDs = selected
	}

	if input.AddOns != nil {
		addOns, err := ResolveAddOns(pkg, *input.AddOns)
		if err != nil {
			return nil, err
		}
		updated.AddOns = addOns
	}

	if input.Event != nil {
		updated.Event = *input.Event
	}

	total, err := pricing.ComputeLineTotal(pkg, updated.Guests, updated.AddOns)
	if err != nil {
		return nil, newValidationError("%v", err)
	}
	updated.PriceAtTime = total

	seq := s.seq.next(lineID)
	updated.Revision = seq

	stored, err := repo.UpsertLine(ctx, owner.Key(), updated)
	if err != nil {
		return nil, &PersistenceError{Op: "update cart line", Err: err}
	}
	if !s.seq.isCurrent(lineID, seq) {
		// A newer edit to this line was issued while our write was in
		// flight; drop this stale result.
		return nil, &SupersededError{LineID: lineID}
	}
	return stored, nil
}
