package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"caterly/models"
)

func testPackage(policy models.CustomizationPolicy) *models.Package {
	starters := models.Category{ID: "cat-starters", Name: "Starters"}
	mains := models.Category{ID: "cat-mains", Name: "Mains"}
	return &models.Package{
		ID:          "pkg-1",
		CatererID:   "cat-1",
		Name:        "Wedding Silver",
		PeopleCount: 50,
		TotalPrice:  5000,
		Currency:    "EUR",
		Policy:      policy,
		Items: []models.PackageItem{
			{ID: "it-1", Dish: models.Dish{ID: "d-soup", Name: "Soup", Category: starters}},
			{ID: "it-2", Dish: models.Dish{ID: "d-bruschetta", Name: "Bruschetta", Category: starters}},
			{ID: "it-3", Dish: models.Dish{ID: "d-salad", Name: "Salad", Category: starters}},
			{ID: "it-4", Dish: models.Dish{ID: "d-pasta", Name: "Pasta", Category: mains}},
			{ID: "it-5", Dish: models.Dish{ID: "d-steak", Name: "Steak", Category: mains}},
		},
		CategorySelections: []models.CategorySelection{
			{CategoryID: "cat-starters", CategoryName: "Starters", NumDishesToPick: 2},
			{CategoryID: "cat-mains", CategoryName: "Mains", NumDishesToPick: 1},
		},
	}
}

func TestFixedPackageIsNotCustomizable(t *testing.T) {
	pkg := testPackage(models.PolicyFixed)
	state := NewState(pkg)

	// Fixed menus start fully selected.
	require.Equal(t, pkg.AllDishIDs(), state.Selected())

	res, err := state.Toggle("d-soup")
	require.NoError(t, err)
	require.False(t, res.Changed)
	require.Nil(t, res.Rejection)
	require.Equal(t, pkg.AllDishIDs(), state.Selected())
}

func TestCustomizablePackageHasNoLimits(t *testing.T) {
	pkg := testPackage(models.PolicyCustomizable)
	state := NewState(pkg)

	for _, id := range pkg.AllDishIDs() {
		res, err := state.Toggle(id)
		require.NoError(t, err)
		require.True(t, res.Changed)
		require.Nil(t, res.Rejection)
	}
	require.Equal(t, pkg.AllDishIDs(), state.Selected())

	// Toggle everything back off.
	for _, id := range pkg.AllDishIDs() {
		_, err := state.Toggle(id)
		require.NoError(t, err)
	}
	require.Empty(t, state.Selected())
}

func TestLimitEnforcedAcrossToggleOrders(t *testing.T) {
	starters := []string{"d-soup", "d-bruschetta", "d-salad"}
	orders := [][]string{
		{starters[0], starters[1], starters[2]},
		{starters[0], starters[2], starters[1]},
		{starters[1], starters[0], starters[2]},
		{starters[1], starters[2], starters[0]},
		{starters[2], starters[0], starters[1]},
		{starters[2], starters[1], starters[0]},
	}

	for _, order := range orders {
		state := NewState(testPackage(models.PolicyFixedWithLimits))

		for i, id := range order[:2] {
			res, err := state.Toggle(id)
			require.NoError(t, err)
			require.True(t, res.Changed, "toggle %d of %v", i, order)
			require.Nil(t, res.Rejection)
		}

		// The third starter must be refused whichever two came first.
		res, err := state.Toggle(order[2])
		require.NoError(t, err)
		require.False(t, res.Changed)
		require.NotNil(t, res.Rejection)
		require.Equal(t, "cat-starters", res.Rejection.CategoryID)
		require.Equal(t, "Starters", res.Rejection.CategoryName)
		require.Equal(t, 2, res.Rejection.Limit)
		require.Len(t, state.Selected(), 2)
	}
}

func TestRejectionDoesNotMutateState(t *testing.T) {
	state := NewState(testPackage(models.PolicyFixedWithLimits))
	for _, id := range []string{"d-soup", "d-bruschetta"} {
		_, err := state.Toggle(id)
		require.NoError(t, err)
	}
	before := state.Selected()

	res, err := state.Toggle("d-salad")
	require.NoError(t, err)
	require.NotNil(t, res.Rejection)
	require.Equal(t, before, state.Selected())
}

func TestToggleOffAlwaysAllowedAtLimit(t *testing.T) {
	state := NewState(testPackage(models.PolicyFixedWithLimits))
	for _, id := range []string{"d-soup", "d-bruschetta"} {
		_, err := state.Toggle(id)
		require.NoError(t, err)
	}

	// At the limit, deselecting still works and frees a slot.
	res, err := state.Toggle("d-soup")
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Nil(t, res.Rejection)

	res, err = state.Toggle("d-salad")
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Nil(t, res.Rejection)
}

func TestLimitsIndependentPerCategory(t *testing.T) {
	state := NewState(testPackage(models.PolicyFixedWithLimits))
	for _, id := range []string{"d-soup", "d-bruschetta", "d-pasta"} {
		res, err := state.Toggle(id)
		require.NoError(t, err)
		require.Nil(t, res.Rejection)
	}

	// Starters are full; mains limit of 1 is also reached.
	res, err := state.Toggle("d-steak")
	require.NoError(t, err)
	require.NotNil(t, res.Rejection)
	require.Equal(t, "cat-mains", res.Rejection.CategoryID)
	require.Equal(t, 1, res.Rejection.Limit)
}

func TestUnknownDishRejectedWithError(t *testing.T) {
	state := NewState(testPackage(models.PolicyCustomizable))
	_, err := state.Toggle("d-nonexistent")
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestConfigGapDegradesToUnrestricted(t *testing.T) {
	pkg := testPackage(models.PolicyFixedWithLimits)
	pkg.CategorySelections = nil

	state := NewState(pkg)
	require.True(t, state.LimitsUnconfigured())

	// With no configured limits every dish can be selected.
	for _, id := range pkg.AllDishIDs() {
		res, err := state.Toggle(id)
		require.NoError(t, err)
		require.True(t, res.Changed)
		require.Nil(t, res.Rejection)
	}
	require.Equal(t, pkg.AllDishIDs(), state.Selected())
}

func TestCategoryJoinFallsBackToName(t *testing.T) {
	pkg := testPackage(models.PolicyFixedWithLimits)
	// Strip ids on both sides; the join must still match case-insensitively.
	for i := range pkg.Items {
		pkg.Items[i].Dish.Category.ID = ""
	}
	pkg.CategorySelections = []models.CategorySelection{
		{CategoryName: "STARTERS", NumDishesToPick: 1},
	}

	state := NewState(pkg)
	res, err := state.Toggle("d-soup")
	require.NoError(t, err)
	require.True(t, res.Changed)

	res, err = state.Toggle("d-bruschetta")
	require.NoError(t, err)
	require.NotNil(t, res.Rejection)
	require.Equal(t, 1, res.Rejection.Limit)
}

func TestNewStateWithReplaysSeedSelection(t *testing.T) {
	pkg := testPackage(models.PolicyFixedWithLimits)
	state, err := NewStateWith(pkg, []string{"d-soup", "d-salad"})
	require.NoError(t, err)
	require.Equal(t, []string{"d-soup", "d-salad"}, state.Selected())

	// A seed over the limit keeps the overflow unselected rather than failing.
	state, err = NewStateWith(pkg, []string{"d-soup", "d-bruschetta", "d-salad"})
	require.NoError(t, err)
	require.Equal(t, []string{"d-soup", "d-bruschetta"}, state.Selected())
}

func TestValidateSet(t *testing.T) {
	t.Run("fixed resolves to full menu", func(t *testing.T) {
		pkg := testPackage(models.PolicyFixed)
		selected, rejection, err := ValidateSet(pkg, []string{"d-soup"})
		require.NoError(t, err)
		require.Nil(t, rejection)
		require.Equal(t, pkg.AllDishIDs(), selected)
	})

	t.Run("within limits", func(t *testing.T) {
		pkg := testPackage(models.PolicyFixedWithLimits)
		selected, rejection, err := ValidateSet(pkg, []string{"d-soup", "d-pasta"})
		require.NoError(t, err)
		require.Nil(t, rejection)
		require.Equal(t, []string{"d-soup", "d-pasta"}, selected)
	})

	t.Run("over the limit", func(t *testing.T) {
		pkg := testPackage(models.PolicyFixedWithLimits)
		_, rejection, err := ValidateSet(pkg, []string{"d-soup", "d-bruschetta", "d-salad"})
		require.NoError(t, err)
		require.NotNil(t, rejection)
		require.Equal(t, "cat-starters", rejection.CategoryID)
	})

	t.Run("unknown dish", func(t *testing.T) {
		pkg := testPackage(models.PolicyCustomizable)
		_, _, err := ValidateSet(pkg, []string{"d-ghost"})
		require.Error(t, err)
	})
}
