// Package selection decides which dish selections are legal for a package
// under its customization policy. State is per view and ephemeral; nothing
// here touches a store.
package selection

import (
	"strings"

	"caterly/models"
	"caterly/services/catalog"
)

// Rejected is the structured outcome of a refused toggle: the buyer tried to
// pick more dishes from a category than the package allows. It is a normal
// result used for control flow by the caller, not an error.
type Rejected struct {
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name"`
	Limit        int    `json:"limit"`
}

// ToggleResult reports what one toggle did to the selection.
type ToggleResult struct {
	Changed   bool      `json:"changed"`
	Selected  []string  `json:"selected"`
	Rejection *Rejected `json:"rejection,omitempty"`
}

// State is the ephemeral selection for one viewed package. Create one per
// package view; it is not safe for concurrent use and is never persisted
// until the selection is handed to the cart.
type State struct {
	pkg       *models.Package
	groups    []catalog.CategoryGroup
	selected  map[string]bool
	limitsOff bool
}

// NewState starts an empty selection for the package. FIXED packages start
// (and stay) with every dish selected, since a fixed menu is not
// user-configurable.
func NewState(pkg *models.Package) *State {
	s := &State{
		pkg:       pkg,
		groups:    catalog.GroupItemsByCategory(pkg),
		selected:  make(map[string]bool, len(pkg.Items)),
		limitsOff: catalog.LimitsUnconfigured(pkg),
	}
	if pkg.Policy == models.PolicyFixed {
		for _, id := range pkg.AllDishIDs() {
			s.selected[id] = true
		}
	}
	return s
}

// NewStateWith seeds a selection with already-chosen dish ids, replaying them
// through the same rules a buyer's toggles would follow. Dishes that would be
// rejected are left unselected.
func NewStateWith(pkg *models.Package, dishIDs []string) (*State, error) {
	s := NewState(pkg)
	for _, id := range dishIDs {
		if _, err := s.Toggle(id); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LimitsUnconfigured reports whether this package's limits were degraded to
// "unrestricted" because of a configuration gap.
func (s *State) LimitsUnconfigured() bool {
	return s.limitsOff
}

// Toggle flips one dish in or out of the selection, subject to the package
// policy. On rejection nothing is mutated and the result carries the category
// and its limit.
func (s *State) Toggle(dishID string) (ToggleResult, error) {
	item, ok := s.pkg.ItemByDishID(dishID)
	if !ok {
		return ToggleResult{}, newValidationError("dish %s is not part of package %s", dishID, s.pkg.ID)
	}

	switch s.pkg.Policy {
	case models.PolicyFixed:
		// Fixed menus are display-only; the selection set is always the full
		// item list and toggles are no-ops.
		return ToggleResult{Changed: false, Selected: s.Selected()}, nil

	case models.PolicyCustomizable:
		s.selected[dishID] = !s.selected[dishID]
		return ToggleResult{Changed: true, Selected: s.Selected()}, nil

	case models.PolicyFixedWithLimits:
		if s.selected[dishID] {
			// Toggling off is always permitted.
			s.selected[dishID] = false
			return ToggleResult{Changed: true, Selected: s.Selected()}, nil
		}
		if rej := s.checkLimit(item.Dish.Category); rej != nil {
			return ToggleResult{Changed: false, Selected: s.Selected(), Rejection: rej}, nil
		}
		s.selected[dishID] = true
		return ToggleResult{Changed: true, Selected: s.Selected()}, nil
	}

	return ToggleResult{}, newValidationError("package %s has unknown policy %q", s.pkg.ID, s.pkg.Policy)
}

// Selected returns the current selection in package item order.
func (s *State) Selected() []string {
	out := make([]string, 0, len(s.selected))
	for _, item := range s.pkg.Items {
		if s.selected[item.Dish.ID] {
			out = append(out, item.Dish.ID)
		}
	}
	return out
}

// checkLimit returns a rejection when the category is already at its
// configured limit. A missing limit, or a package with the limits
// configuration gap, means no restriction.
func (s *State) checkLimit(cat models.Category) *Rejected {
	if s.limitsOff {
		return nil
	}
	limit := catalog.LimitFor(s.pkg, cat)
	if limit == nil {
		return nil
	}
	if s.categoryCount(cat) >= *limit {
		return &Rejected{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			Limit:        *limit,
		}
	}
	return nil
}

// categoryCount counts currently-selected dishes belonging to the category,
// using the same id-first, name-fallback join as the catalog grouping.
func (s *State) categoryCount(cat models.Category) int {
	count := 0
	for _, g := range s.groups {
		if !sameCategory(g.Category, cat) {
			continue
		}
		for _, item := range g.Items {
			if s.selected[item.Dish.ID] {
				count++
			}
		}
	}
	return count
}

func sameCategory(a, b models.Category) bool {
	if a.ID != "" && b.ID != "" {
		return a.ID == b.ID
	}
	return strings.EqualFold(a.Name, b.Name)
}

// ValidateSet checks a whole candidate selection for a package, as used on
// the add-to-cart path. It returns the effective selection (FIXED packages
// always resolve to the full item list) or the first limit violation.
func ValidateSet(pkg *models.Package, dishIDs []string) ([]string, *Rejected, error) {
	if pkg.Policy == models.PolicyFixed {
		return pkg.AllDishIDs(), nil, nil
	}

	state := NewState(pkg)
	for _, id := range dishIDs {
		res, err := state.Toggle(id)
		if err != nil {
			return nil, nil, err
		}
		if res.Rejection != nil {
			return nil, res.Rejection, nil
		}
	}
	return state.Selected(), nil, nil
}
