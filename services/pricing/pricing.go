// Package pricing computes package totals. Everything here is pure: same
// inputs, same total, no side effects.
package pricing

import (
	"fmt"
	"math"

	"caterly/models"
)

// ValidationError rejects bad pricing input before any computation runs.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pricing validation: %s", e.Message)
}

// AddOn is one flat-priced extra: unit price times quantity, independent of
// guest count.
type AddOn struct {
	UnitPrice float64
	Quantity  int
}

// ComputeTotal prices a package configuration:
//
//	base  = round(pricePerPerson * guests)   // half-up, to whole currency units
//	total = base + sum(addOn.UnitPrice * addOn.Quantity)
//
// The base component is rounded BEFORE the add-ons are added. Rounding the
// sum instead gives different totals at certain guest counts, so the order
// here is load-bearing. Add-on subtotals are not rounded; unit prices are
// already whole currency units.
func ComputeTotal(pricePerPerson float64, guests int, addOns []AddOn) (float64, error) {
	if guests < 1 {
		return 0, &ValidationError{Message: fmt.Sprintf("guests must be at least 1, got %d", guests)}
	}
	for _, a := range addOns {
		if a.Quantity < 0 {
			return 0, &ValidationError{Message: "add-on quantity must not be negative"}
		}
		if a.UnitPrice < 0 {
			return 0, &ValidationError{Message: "add-on unit price must not be negative"}
		}
	}

	base := roundHalfUp(pricePerPerson * float64(guests))

	addOnTotal := 0.0
	for _, a := range addOns {
		addOnTotal += a.UnitPrice * float64(a.Quantity)
	}

	return base + addOnTotal, nil
}

// ComputeLineTotal prices a cart line configuration against its package,
// deriving the per-person basis from the package's total price and baseline
// guest count on every call.
func ComputeLineTotal(pkg *models.Package, guests int, addOns []models.AddOnSelection) (float64, error) {
	converted := make([]AddOn, 0, len(addOns))
	for _, a := range addOns {
		converted = append(converted, AddOn{UnitPrice: a.UnitPrice, Quantity: a.Quantity})
	}
	return ComputeTotal(pkg.PricePerPerson(), guests, converted)
}

// roundHalfUp rounds to the nearest integer, ties away from zero upward,
// matching currency display granularity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
