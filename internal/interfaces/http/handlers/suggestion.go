// internal/interfaces/http/handlers/suggestion.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pantry-backend/internal/domain/kitchen"
	"github.com/your-org/pantry-backend/internal/domain/suggestion"
)

// SuggestionHandler handles the assistant endpoints. Failures of the model
// never touch the pantry.
type SuggestionHandler struct {
	suggestions *suggestion.Service
	pantry      *kitchen.Service
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestions *suggestion.Service, pantry *kitchen.Service) *SuggestionHandler {
	return &SuggestionHandler{
		suggestions: suggestions,
		pantry:      pantry,
	}
}

// SuggestRecipes handles POST /suggestions/recipes. Without ingredients the
// whole pantry is used.
func (h *SuggestionHandler) SuggestRecipes(c *gin.Context) {
	var req suggestion.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if len(req.Ingredients) == 0 {
		for _, item := range h.pantry.Items() {
			req.Ingredients = append(req.Ingredients, item.Name)
		}
	}

	recipes, err := h.suggestions.SuggestRecipes(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipes generated successfully",
		"data":    recipes,
	})
}

// GenerateShoppingList handles POST /suggestions/shopping-list[?import=true]
func (h *SuggestionHandler) GenerateShoppingList(c *gin.Context) {
	var req suggestion.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.Categories = h.pantry.CategoryNames()

	list, err := h.suggestions.GenerateShoppingList(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("import") != "true" {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shopping list generated successfully",
			"data":    list,
		})
		return
	}

	items, err := h.pantry.AddItems(c.Request.Context(), list.NewItems())
	respondMutation(c, http.StatusCreated, "Shopping list imported successfully", gin.H{
		"list":     list,
		"imported": items,
	}, err)
}

// NutritionAdvice handles POST /suggestions/nutrition. Without items the
// cart is used, or the whole pantry when the cart is empty.
func (h *SuggestionHandler) NutritionAdvice(c *gin.Context) {
	var req suggestion.NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if len(req.Items) == 0 {
		items := h.pantry.Cart().Items
		if len(items) == 0 {
			items = h.pantry.Items()
		}
		for _, item := range items {
			req.Items = append(req.Items, item.Name)
		}
	}

	advice, err := h.suggestions.NutritionAdvice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Nutrition advice generated successfully",
		"data":    advice,
	})
}

// SuggestCategory handles POST /suggestions/category
func (h *SuggestionHandler) SuggestCategory(c *gin.Context) {
	var req suggestion.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.Categories = h.pantry.CategoryNames()

	result, err := h.suggestions.SuggestCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category suggested successfully",
		"data":    result,
	})
}
