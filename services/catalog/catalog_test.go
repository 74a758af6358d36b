package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"caterly/models"
)

func groupingPackage() *models.Package {
	starters := models.Category{ID: "cat-starters", Name: "Starters"}
	mains := models.Category{ID: "cat-mains", Name: "Mains"}
	desserts := models.Category{ID: "cat-desserts", Name: "Desserts"}
	return &models.Package{
		ID:     "pkg-1",
		Policy: models.PolicyFixedWithLimits,
		Items: []models.PackageItem{
			{ID: "it-1", Dish: models.Dish{ID: "d-soup", Category: starters}},
			{ID: "it-2", Dish: models.Dish{ID: "d-pasta", Category: mains}},
			{ID: "it-3", Dish: models.Dish{ID: "d-salad", Category: starters}},
			{ID: "it-4", Dish: models.Dish{ID: "d-cake", Category: desserts}},
			{ID: "it-5", Dish: models.Dish{ID: "d-steak", Category: mains}},
		},
		CategorySelections: []models.CategorySelection{
			{CategoryID: "cat-starters", CategoryName: "Starters", NumDishesToPick: 1},
			{CategoryID: "cat-mains", CategoryName: "Mains", NumDishesToPick: 2},
		},
	}
}

func TestGroupItemsByCategoryOrderIsStable(t *testing.T) {
	pkg := groupingPackage()

	first := GroupItemsByCategory(pkg)
	require.Len(t, first, 3)

	// Order follows first occurrence in the item list, not configuration order.
	require.Equal(t, "cat-starters", first[0].Category.ID)
	require.Equal(t, "cat-mains", first[1].Category.ID)
	require.Equal(t, "cat-desserts", first[2].Category.ID)

	require.Len(t, first[0].Items, 2)
	require.Equal(t, "d-soup", first[0].Items[0].Dish.ID)
	require.Equal(t, "d-salad", first[0].Items[1].Dish.ID)

	for i := 0; i < 20; i++ {
		require.Equal(t, first, GroupItemsByCategory(pkg))
	}
}

func TestGroupsCarryConfiguredLimits(t *testing.T) {
	groups := GroupItemsByCategory(groupingPackage())

	require.NotNil(t, groups[0].Limit)
	require.Equal(t, 1, *groups[0].Limit)
	require.NotNil(t, groups[1].Limit)
	require.Equal(t, 2, *groups[1].Limit)
	require.Nil(t, groups[2].Limit) // desserts have no configured limit
}

func TestLimitForIgnoredOutsideLimitedPolicy(t *testing.T) {
	pkg := groupingPackage()
	pkg.Policy = models.PolicyCustomizable
	require.Nil(t, LimitFor(pkg, models.Category{ID: "cat-starters", Name: "Starters"}))

	pkg.Policy = models.PolicyFixed
	require.Nil(t, LimitFor(pkg, models.Category{ID: "cat-starters", Name: "Starters"}))
}

func TestLimitForNameFallback(t *testing.T) {
	pkg := groupingPackage()
	pkg.CategorySelections = []models.CategorySelection{
		{CategoryName: "starters", NumDishesToPick: 1},
	}

	limit := LimitFor(pkg, models.Category{Name: "STARTERS"})
	require.NotNil(t, limit)
	require.Equal(t, 1, *limit)
}

func TestLimitsUnconfigured(t *testing.T) {
	pkg := groupingPackage()
	require.False(t, LimitsUnconfigured(pkg))

	pkg.CategorySelections = nil
	require.True(t, LimitsUnconfigured(pkg))

	pkg.Policy = models.PolicyCustomizable
	require.False(t, LimitsUnconfigured(pkg))
}

func TestNormalizePackagesShapes(t *testing.T) {
	object := `{
		"id": "pkg-1", "caterer_id": "cat-1", "name": "Silver",
		"people_count": 50, "total_price": 5000, "currency": "EUR",
		"policy": "FIXED",
		"items": [{"id": "it-1", "quantity": 1, "dish": {"id": "d-1", "name": "Soup"}}]
	}`

	t.Run("single object", func(t *testing.T) {
		pkgs, err := NormalizePackages([]byte(object))
		require.NoError(t, err)
		require.Len(t, pkgs, 1)
		require.Equal(t, "pkg-1", pkgs[0].ID)
		require.Equal(t, models.PolicyFixed, pkgs[0].Policy)
	})

	t.Run("array", func(t *testing.T) {
		pkgs, err := NormalizePackages([]byte("[" + object + "]"))
		require.NoError(t, err)
		require.Len(t, pkgs, 1)
	})

	t.Run("data envelope", func(t *testing.T) {
		pkgs, err := NormalizePackages([]byte(`{"data": [` + object + `]}`))
		require.NoError(t, err)
		require.Len(t, pkgs, 1)
		require.Equal(t, "pkg-1", pkgs[0].ID)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NormalizePackages([]byte(`"not a package"`))
		require.Error(t, err)
	})
}

func TestNormalizePoliciesAcceptSpellingVariants(t *testing.T) {
	cases := map[string]models.CustomizationPolicy{
		"FIXED":             models.PolicyFixed,
		"fixed":             models.PolicyFixed,
		"CUSTOMIZABLE":      models.PolicyCustomizable,
		"CUSTOMISABLE":      models.PolicyCustomizable,
		"customisable":      models.PolicyCustomizable,
		"FIXED_WITH_LIMITS": models.PolicyFixedWithLimits,
		"fixed_with_limits": models.PolicyFixedWithLimits,
	}
	for raw, want := range cases {
		payload := `{"id": "p", "people_count": 10, "policy": "` + raw + `"}`
		pkgs, err := NormalizePackages([]byte(payload))
		require.NoError(t, err, "policy %q", raw)
		require.Equal(t, want, pkgs[0].Policy)
	}
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"zero people_count", `{"id": "p", "people_count": 0, "policy": "FIXED"}`},
		{"negative total_price", `{"id": "p", "people_count": 10, "total_price": -1, "policy": "FIXED"}`},
		{"unknown policy", `{"id": "p", "people_count": 10, "policy": "BESPOKE"}`},
		{"item without dish id", `{"id": "p", "people_count": 10, "policy": "FIXED", "items": [{"id": "it", "quantity": 1, "dish": {"name": "Soup"}}]}`},
		{"zero item quantity", `{"id": "p", "people_count": 10, "policy": "FIXED", "items": [{"id": "it", "quantity": 0, "dish": {"id": "d-1"}}]}`},
		{"zero pick limit", `{"id": "p", "people_count": 10, "policy": "FIXED_WITH_LIMITS", "category_selections": [{"category_id": "c", "num_dishes_to_select": 0}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizePackages([]byte(tc.payload))
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}
