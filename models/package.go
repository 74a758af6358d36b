package models

import "strings"

// CustomizationPolicy is the closed set of package customization modes.
// Loose source spellings ("CUSTOMISABLE", mixed case) are collapsed once at
// ingestion via ParseCustomizationPolicy and never travel further.
type CustomizationPolicy string

const (
	PolicyFixed           CustomizationPolicy = "FIXED"
	PolicyCustomizable    CustomizationPolicy = "CUSTOMIZABLE"
	PolicyFixedWithLimits CustomizationPolicy = "FIXED_WITH_LIMITS"
)

// ParseCustomizationPolicy normalizes a raw policy string into the enum.
// Unknown values are reported so callers can reject the payload at the
// boundary instead of guessing.
func ParseCustomizationPolicy(raw string) (CustomizationPolicy, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "FIXED", "FIXED_MENU":
		return PolicyFixed, true
	case "CUSTOMIZABLE", "CUSTOMISABLE":
		return PolicyCustomizable, true
	case "FIXED_WITH_LIMITS", "FIXED_WITH_LIMIT", "LIMITED":
		return PolicyFixedWithLimits, true
	default:
		return "", false
	}
}

// CategorySelection caps how many dishes a buyer may pick from one category.
// Present only on FIXED_WITH_LIMITS packages.
type CategorySelection struct {
	CategoryID      string `bson:"category_id" json:"category_id"`
	CategoryName    string `bson:"category_name" json:"category_name"`
	NumDishesToPick int    `bson:"num_dishes_to_select" json:"num_dishes_to_select"`
}

// PackageItem binds a dish into a package.
type PackageItem struct {
	ID         string `bson:"id" json:"id"`
	Dish       Dish   `bson:"dish" json:"dish"`
	Quantity   int    `bson:"quantity" json:"quantity"`
	IsOptional bool   `bson:"is_optional,omitempty" json:"is_optional,omitempty"`
	IsAddon    bool   `bson:"is_addon,omitempty" json:"is_addon,omitempty"`
}

// Package is a sellable catering bundle priced for a baseline guest count.
type Package struct {
	ID                 string              `bson:"id" json:"id"`
	CatererID          string              `bson:"caterer_id" json:"caterer_id"`
	Name               string              `bson:"name" json:"name"`
	PeopleCount        int                 `bson:"people_count" json:"people_count"` // Guest count the listed total price is based on; always >= 1
	TotalPrice         float64             `bson:"total_price" json:"total_price"`   // Price at PeopleCount guests
	Currency           string              `bson:"currency" json:"currency"`
	Policy             CustomizationPolicy `bson:"policy" json:"policy"`
	Items              []PackageItem       `bson:"items" json:"items"`
	CategorySelections []CategorySelection `bson:"category_selections,omitempty" json:"category_selections,omitempty"`
}

// PricePerPerson is the scaling basis for guest-count pricing. It is always
// derived from TotalPrice and PeopleCount, never stored, so the two source
// fields cannot drift apart.
func (p *Package) PricePerPerson() float64 {
	if p.PeopleCount < 1 {
		return 0
	}
	return p.TotalPrice / float64(p.PeopleCount)
}

// AllDishIDs returns the dish ids of every item in the package, in item order.
func (p *Package) AllDishIDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		ids = append(ids, it.Dish.ID)
	}
	return ids
}

// ItemByDishID looks up the package item bound to the given dish.
func (p *Package) ItemByDishID(dishID string) (*PackageItem, bool) {
	for i := range p.Items {
		if p.Items[i].Dish.ID == dishID {
			return &p.Items[i], true
		}
	}
	return nil, false
}
