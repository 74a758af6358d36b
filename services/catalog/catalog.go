// Package catalog exposes a read-only, normalized view of catering packages
// for the selection and pricing components.
package catalog

import (
	"strings"

	"caterly/models"
)

// CategoryGroup is one category's slice of a package's item list, with the
// configured pick limit when the package policy carries one.
type CategoryGroup struct {
	Category models.Category      `json:"category"`
	Items    []models.PackageItem `json:"items"`
	Limit    *int                 `json:"limit,omitempty"` // nil = no limit for this category
}

// GroupItemsByCategory groups a package's items by their dish's category.
// Category order follows first occurrence in the item list, so the grouping
// is stable and reproducible across calls.
func GroupItemsByCategory(pkg *models.Package) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)

	for _, item := range pkg.Items {
		cat := item.Dish.Category
		key := categoryKey(cat)
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, CategoryGroup{
				Category: cat,
				Limit:    LimitFor(pkg, cat),
			})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// LimitFor returns the configured number of dishes selectable from the given
// category, or nil when the package imposes no limit on it. Only
// FIXED_WITH_LIMITS packages ever carry limits.
func LimitFor(pkg *models.Package, cat models.Category) *int {
	if pkg.Policy != models.PolicyFixedWithLimits {
		return nil
	}
	for i := range pkg.CategorySelections {
		if selectionMatches(pkg.CategorySelections[i], cat) {
			limit := pkg.CategorySelections[i].NumDishesToPick
			return &limit
		}
	}
	return nil
}

// LimitsUnconfigured reports the data-entry gap where a FIXED_WITH_LIMITS
// package carries no CategorySelection rows at all. Callers degrade to
// unrestricted selection and surface a warning instead of blocking the buyer.
func LimitsUnconfigured(pkg *models.Package) bool {
	return pkg.Policy == models.PolicyFixedWithLimits && len(pkg.CategorySelections) == 0
}

// selectionMatches joins a CategorySelection to a dish's category. The join
// is by category id; a case-insensitive name comparison remains as a
// compatibility fallback for catalogs that predate category ids on this path.
func selectionMatches(sel models.CategorySelection, cat models.Category) bool {
	if sel.CategoryID != "" && cat.ID != "" {
		return sel.CategoryID == cat.ID
	}
	return strings.EqualFold(sel.CategoryName, cat.Name)
}

// categoryKey is the grouping key for a category, matching the semantics of
// selectionMatches: id when available, folded name otherwise.
func categoryKey(cat models.Category) string {
	if cat.ID != "" {
		return cat.ID
	}
	return strings.ToLower(cat.Name)
}
