// internal/domain/suggestion/entity.go
package suggestion

import (
	"strconv"
	"strings"

	"github.com/your-org/pantry-backend/internal/domain/pantry"
	"github.com/your-org/pantry-backend/internal/pkg/numeric"
)

// RecipeKind discriminates the recipe variants
type RecipeKind string

const (
	RecipeKindPantry RecipeKind = "pantry"
	RecipeKindWorld  RecipeKind = "world"
)

// Recipe is either a pantry recipe or a world-cuisine recipe. Country is only
// set for world recipes; the kind is fixed by the constructor.
type Recipe struct {
	Kind         RecipeKind `json:"kind"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	PrepMinutes  int        `json:"prepMinutes,omitempty"`
	Country      string     `json:"country,omitempty"`
}

// NewPantryRecipe builds a recipe made from pantry ingredients
func NewPantryRecipe(g GeneratedRecipe) Recipe {
	return Recipe{
		Kind:         RecipeKindPantry,
		Name:         strings.TrimSpace(g.Name),
		Description:  strings.TrimSpace(g.Description),
		Ingredients:  g.Ingredients,
		Instructions: g.Instructions,
		PrepMinutes:  g.PrepMinutes,
	}
}

// NewWorldRecipe builds a recipe from a given country's cuisine
func NewWorldRecipe(country string, g GeneratedRecipe) Recipe {
	r := NewPantryRecipe(g)
	r.Kind = RecipeKindWorld
	r.Country = strings.TrimSpace(country)
	return r
}

// IsWorld reports whether the recipe belongs to a world cuisine
func (r Recipe) IsWorld() bool {
	return r.Kind == RecipeKindWorld
}

// GeneratedRecipe is a recipe as returned by the model
type GeneratedRecipe struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions []string `json:"instructions" validate:"required,min=1,dive,required"`
	PrepMinutes  int      `json:"prepMinutes" validate:"gte=0"`
}

type generatedRecipes struct {
	Recipes []GeneratedRecipe `json:"recipes" validate:"required,min=1,dive"`
}

// RecipeRequest asks for recipes using the given ingredients. A country
// switches to world-cuisine recipes.
type RecipeRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,max=100,dive,required"`
	Country     string   `json:"country" validate:"max=80"`
	Preferences string   `json:"preferences" validate:"max=500"`
	Count       int      `json:"count" validate:"gte=0,lte=10"`
}

// ShoppingListRequest asks for a shopping list for a goal such as a week of meals
type ShoppingListRequest struct {
	Goal       string   `json:"goal" validate:"required,max=500"`
	People     int      `json:"people" validate:"gte=0,lte=50"`
	Budget     float64  `json:"budget" validate:"gte=0"`
	Categories []string `json:"-"`
}

// ShoppingItem is one line of a generated shopping list
type ShoppingItem struct {
	Name           string  `json:"name" validate:"required"`
	Category       string  `json:"category"`
	Quantity       float64 `json:"quantity" validate:"gte=0"`
	Unit           string  `json:"unit"`
	EstimatedPrice float64 `json:"estimatedPrice" validate:"gte=0"`
}

// ShoppingList is a generated list of items to buy
type ShoppingList struct {
	Items          []ShoppingItem `json:"items" validate:"required,min=1,dive"`
	EstimatedTotal float64        `json:"estimatedTotal" validate:"gte=0"`
}

// NewItems converts the list into pantry items ready to be added
func (l ShoppingList) NewItems() []pantry.NewItem {
	items := make([]pantry.NewItem, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, pantry.NewItem{
			Category: it.Category,
			Name:     it.Name,
			Price:    formatAmount(it.EstimatedPrice),
			Quantity: formatAmount(it.Quantity),
			Unit:     it.Unit,
		})
	}
	return items
}

// NutritionRequest asks for advice on a set of foods
type NutritionRequest struct {
	Items []string `json:"items" validate:"required,min=1,max=100,dive,required"`
	Goal  string   `json:"goal" validate:"max=500"`
}

// NutritionAdvice is the model's assessment of a set of foods
type NutritionAdvice struct {
	Summary           string   `json:"summary" validate:"required"`
	Tips              []string `json:"tips" validate:"required,min=1,dive,required"`
	EstimatedCalories float64  `json:"estimatedCalories" validate:"gte=0"`
}

// CategoryRequest asks which registered category an item belongs to
type CategoryRequest struct {
	ItemName   string   `json:"itemName" validate:"required,max=200"`
	Categories []string `json:"-"`
}

// CategorySuggestion is a category and icon for an item
type CategorySuggestion struct {
	Category string      `json:"category" validate:"required"`
	Icon     pantry.Icon `json:"icon"`
}

func formatAmount(v float64) numeric.Input {
	if v <= 0 {
		return ""
	}
	return numeric.Input(strconv.FormatFloat(v, 'f', -1, 64))
}
