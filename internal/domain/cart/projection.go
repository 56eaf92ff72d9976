// internal/domain/cart/projection.go
package cart

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/your-org/pantry-backend/internal/domain/pantry"
	"github.com/your-org/pantry-backend/internal/pkg/numeric"
)

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int     `json:"item_count"`     // Number of selected items
	TotalQuantity float64 `json:"total_quantity"` // Sum of all quantities
	TotalCost     float64 `json:"total_cost"`     // Sum of price x quantity
}

// Summary is the derived cart view over the pantry
type Summary struct {
	Items  []pantry.Item `json:"items"`
	Totals Totals        `json:"totals"`
}

// SelectedItems returns the checked items in category order, then insertion order.
// It holds no copy of store state between calls.
func SelectedItems(store *pantry.Store) []pantry.Item {
	selected := []pantry.Item{}
	for _, item := range store.Items() {
		if item.Checked {
			selected = append(selected, item)
		}
	}
	return selected
}

// TotalCost sums price x quantity. Non-finite or negative amounts contribute 0.
func TotalCost(items []pantry.Item) float64 {
	total := decimal.Zero
	for _, item := range items {
		if !finite(item.Price) || !finite(item.Quantity) {
			continue
		}
		total = total.Add(numeric.Mul(item.Price, item.Quantity))
	}

	f, _ := total.Float64()
	return f
}

// Clear removes every item from the cart without deleting any of them
func Clear(store *pantry.Store) int {
	return store.UncheckAll()
}

// Summarize computes the cart view
func Summarize(store *pantry.Store) Summary {
	items := SelectedItems(store)

	totals := Totals{
		ItemCount: len(items),
		TotalCost: TotalCost(items),
	}

	quantity := decimal.Zero
	for _, item := range items {
		if finite(item.Quantity) {
			quantity = quantity.Add(decimal.NewFromFloat(numeric.Clamp(item.Quantity)))
		}
	}
	totals.TotalQuantity, _ = quantity.Float64()

	return Summary{Items: items, Totals: totals}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
