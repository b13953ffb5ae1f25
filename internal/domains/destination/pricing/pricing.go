// Package pricing computes tour price summaries in whole currency units.
package pricing

import (
	"errors"
	"math"
)

var (
	ErrNegativeCount  = errors.New("traveller counts must not be negative")
	ErrAmountTooLarge = errors.New("quoted amount is too large")
)

// maxAmount is 2^63 as a float64; any float at or above it does not fit an int64.
const maxAmount = float64(math.MaxInt64)

type Rates struct {
	Child float64
	Tax   float64
}

type Quote struct {
	UnitPrice   int64 `json:"unitPrice"`
	Adults      int   `json:"adults"`
	Children    int   `json:"children"`
	AdultAmount int64 `json:"adultAmount"`
	ChildAmount int64 `json:"childAmount"`
	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

// Calculate prices adults at the unit price and children at rates.Child of it,
// then adds rates.Tax on the subtotal. Fractional amounts are rounded half away from zero.
// ErrAmountTooLarge is returned instead of a wrapped total.
func Calculate(unitPrice int64, adults, children int, rates Rates) (Quote, error) {
	if adults < 0 || children < 0 {
		return Quote{}, ErrNegativeCount
	}

	adultAmount, ok := mul(unitPrice, int64(adults))
	if !ok {
		return Quote{}, ErrAmountTooLarge
	}

	childAmount, ok := round(float64(unitPrice) * rates.Child * float64(children))
	if !ok {
		return Quote{}, ErrAmountTooLarge
	}

	subtotal, ok := add(adultAmount, childAmount)
	if !ok {
		return Quote{}, ErrAmountTooLarge
	}

	tax, ok := round(float64(subtotal) * rates.Tax)
	if !ok {
		return Quote{}, ErrAmountTooLarge
	}

	total, ok := add(subtotal, tax)
	if !ok {
		return Quote{}, ErrAmountTooLarge
	}

	return Quote{
		UnitPrice:   unitPrice,
		Adults:      adults,
		Children:    children,
		AdultAmount: adultAmount,
		ChildAmount: childAmount,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       total,
	}, nil
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	if a < 0 || b < 0 || a > math.MaxInt64/b {
		return 0, false
	}

	return a * b, true
}

func add(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}

	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}

	return a + b, true
}

func round(amount float64) (int64, bool) {
	rounded := math.Round(amount)
	if math.IsNaN(rounded) || rounded >= maxAmount || rounded < -maxAmount {
		return 0, false
	}

	return int64(rounded), true
}
