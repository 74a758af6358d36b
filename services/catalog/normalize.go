package catalog

import (
	"encoding/json"
	"fmt"

	"caterly/models"
)

// rawPackage mirrors the loose package payload caterer tooling sends. All
// defensiveness against that looseness lives here, in one normalization step;
// the rest of the engine only ever sees the strict models.Package shape.
type rawPackage struct {
	ID                 string                     `json:"id"`
	CatererID          string                     `json:"caterer_id"`
	Name               string                     `json:"name"`
	PeopleCount        int                        `json:"people_count"`
	TotalPrice         float64                    `json:"total_price"`
	Currency           string                     `json:"currency"`
	Policy             string                     `json:"policy"`
	Items              []models.PackageItem       `json:"items"`
	CategorySelections []models.CategorySelection `json:"category_selections"`
}

// envelope is the alternate response shape observed from older tooling,
// where the payload arrives wrapped as {"data": [...]}.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// NormalizePackages decodes a package payload that may be a single object,
// an array, or either of those wrapped in a {"data": ...} envelope, and
// normalizes every entry into the strict Package shape.
func NormalizePackages(raw []byte) ([]models.Package, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		raw = env.Data
	}

	var rawPkgs []rawPackage
	if err := json.Unmarshal(raw, &rawPkgs); err != nil {
		var single rawPackage
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("unrecognized package payload: %w", err)
		}
		rawPkgs = []rawPackage{single}
	}

	pkgs := make([]models.Package, 0, len(rawPkgs))
	for _, rp := range rawPkgs {
		pkg, err := normalizeOne(rp)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, *pkg)
	}
	return pkgs, nil
}

func normalizeOne(rp rawPackage) (*models.Package, error) {
	if rp.PeopleCount < 1 {
		return nil, newValidationError("people_count", "must be at least 1")
	}
	if rp.TotalPrice < 0 {
		return nil, newValidationError("total_price", "must not be negative")
	}
	policy, ok := models.ParseCustomizationPolicy(rp.Policy)
	if !ok {
		return nil, newValidationError("policy", fmt.Sprintf("unknown customization policy %q", rp.Policy))
	}
	for _, item := range rp.Items {
		if item.Dish.ID == "" {
			return nil, newValidationError("items", "every item needs a dish id")
		}
		if item.Quantity < 1 {
			return nil, newValidationError("items", fmt.Sprintf("dish %s: quantity must be at least 1", item.Dish.ID))
		}
	}
	for _, sel := range rp.CategorySelections {
		if sel.NumDishesToPick < 1 {
			return nil, newValidationError("category_selections", "num_dishes_to_select must be positive")
		}
	}

	return &models.Package{
		ID:                 rp.ID,
		CatererID:          rp.CatererID,
		Name:               rp.Name,
		PeopleCount:        rp.PeopleCount,
		TotalPrice:         rp.TotalPrice,
		Currency:           rp.Currency,
		Policy:             policy,
		Items:              rp.Items,
		CategorySelections: rp.CategorySelections,
	}, nil
}
