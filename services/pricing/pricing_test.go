package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"caterly/models"
)

func TestComputeTotalIsDeterministic(t *testing.T) {
	addOns := []AddOn{{UnitPrice: 20, Quantity: 2}}

	first, err := ComputeTotal(99.99, 42, addOns)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		again, err := ComputeTotal(99.99, 42, addOns)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRoundingOrderMatters(t *testing.T) {
	// round(33.335 * 3) = round(100.005) = 100.
	// Rounding per person first would give round(33.335)*3 = 99.
	total, err := ComputeTotal(33.335, 3, nil)
	require.NoError(t, err)
	require.Equal(t, 100.0, total)
}

func TestBaseIsRoundedBeforeAddOns(t *testing.T) {
	// base = round(10.4 * 1) = 10, add-ons stay unrounded on top.
	total, err := ComputeTotal(10.4, 1, []AddOn{{UnitPrice: 5, Quantity: 3}})
	require.NoError(t, err)
	require.Equal(t, 25.0, total)
}

func TestGuestsMustBePositive(t *testing.T) {
	for _, guests := range []int{0, -1, -100} {
		_, err := ComputeTotal(100, guests, nil)
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	}
}

func TestNegativeAddOnsRejected(t *testing.T) {
	_, err := ComputeTotal(100, 10, []AddOn{{UnitPrice: -1, Quantity: 1}})
	require.Error(t, err)

	_, err = ComputeTotal(100, 10, []AddOn{{UnitPrice: 1, Quantity: -1}})
	require.Error(t, err)
}

func TestEndToEndScenario(t *testing.T) {
	// Package: people_count=50, total_price=5000 -> price_per_person=100.
	pkg := &models.Package{
		ID:          "pkg-1",
		PeopleCount: 50,
		TotalPrice:  5000,
		Policy:      models.PolicyCustomizable,
	}
	require.Equal(t, 100.0, pkg.PricePerPerson())

	total, err := ComputeLineTotal(pkg, 75, nil)
	require.NoError(t, err)
	require.Equal(t, 7500.0, total)

	addOns := []models.AddOnSelection{{DishID: "d-9", UnitPrice: 20, Quantity: 2}}
	total, err = ComputeLineTotal(pkg, 75, addOns)
	require.NoError(t, err)
	require.Equal(t, 7540.0, total)

	total, err = ComputeLineTotal(pkg, 60, addOns)
	require.NoError(t, err)
	require.Equal(t, 6040.0, total)
}

func TestHalfUpRounding(t *testing.T) {
	cases := []struct {
		perPerson float64
		guests    int
		want      float64
	}{
		{10.5, 1, 11},    // exact half rounds up
		{10.49, 1, 10},   // below half rounds down
		{0.5, 1, 1},      // smallest half
		{99.995, 2, 200}, // 199.99 -> 200
	}
	for _, tc := range cases {
		got, err := ComputeTotal(tc.perPerson, tc.guests, nil)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "perPerson=%v guests=%d", tc.perPerson, tc.guests)
	}
}
