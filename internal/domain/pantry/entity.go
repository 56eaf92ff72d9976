// internal/domain/pantry/entity.go
package pantry

import (
	"time"

	"github.com/your-org/pantry-backend/internal/pkg/numeric"
)

const (
	// DefaultCategoryID identifies the fallback category
	DefaultCategoryID = "default"

	// DefaultCategoryName is the bucket receiving items whose category is unknown or deleted
	DefaultCategoryName = "Autre"
)

// SeedCategories are registered on a fresh store, before the default category
var SeedCategories = []string{
	"Fruits",
	"Légumes",
	"Produits laitiers",
	"Viandes et poissons",
	"Boulangerie",
	"Épicerie",
	"Boissons",
	"Surgelés",
	"Hygiène et entretien",
}

// Item represents a pantry entry
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Checked     bool    `json:"checked"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	IsEssential bool    `json:"isEssential"`
	Icon        Icon    `json:"icon"`
}

// Category represents a user-defined grouping label
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot is the single persisted document holding the whole pantry state
type Snapshot struct {
	Items      map[string][]Item `json:"items"`
	Budget     float64           `json:"budget"`
	Categories []Category        `json:"categories"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewItem represents add item data
type NewItem struct {
	Category    string        `json:"category"`
	Name        string        `json:"name" binding:"required"`
	Price       numeric.Input `json:"price"`
	Quantity    numeric.Input `json:"quantity"`
	Unit        string        `json:"unit"`
	Icon        string        `json:"icon"`
	IsEssential bool          `json:"isEssential"`
}

// ItemPatch represents partial item update data. Nil fields are left untouched.
type ItemPatch struct {
	Name     *string        `json:"name"`
	Price    *numeric.Input `json:"price"`
	Quantity *numeric.Input `json:"quantity"`
	Unit     *string        `json:"unit"`
	Icon     *string        `json:"icon"`
}
