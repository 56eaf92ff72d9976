// internal/interfaces/http/handlers/pantry.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pantry-backend/internal/domain/kitchen"
	"github.com/your-org/pantry-backend/internal/domain/pantry"
)

// PantryHandler handles pantry item endpoints
type PantryHandler struct {
	service *kitchen.Service
}

// NewPantryHandler creates a new pantry handler
func NewPantryHandler(service *kitchen.Service) *PantryHandler {
	return &PantryHandler{service: service}
}

// UpdateItemRequest is a partial item update. Category narrows the lookup.
type UpdateItemRequest struct {
	Category string `json:"category"`
	pantry.ItemPatch
}

// MoveItemRequest moves an item between categories
type MoveItemRequest struct {
	From string `json:"from"`
	To   string `json:"to" binding:"required"`
}

// GetPantry handles GET /pantry
func (h *PantryHandler) GetPantry(c *gin.Context) {
	body := gin.H{
		"message": "Pantry retrieved successfully",
		"data":    h.service.Overview(),
	}
	if err := h.service.LoadError(); err != nil {
		body["warning"] = "Saved pantry could not be loaded, showing local data"
	}
	c.JSON(http.StatusOK, body)
}

// AddItem handles POST /pantry/items
func (h *PantryHandler) AddItem(c *gin.Context) {
	var req pantry.NewItem
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), req)
	respondMutation(c, http.StatusCreated, "Item added successfully", item, err)
}

// UpdateItem handles PATCH /pantry/items/:id
func (h *PantryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), req.Category, id, req.ItemPatch)
	respondMutation(c, http.StatusOK, "Item updated successfully", item, err)
}

// DeleteItem handles DELETE /pantry/items/:id?category=
func (h *PantryHandler) DeleteItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	err := h.service.DeleteItem(c.Request.Context(), c.Query("category"), id)
	respondMutation(c, http.StatusOK, "Item deleted successfully", nil, err)
}

// ToggleEssential handles POST /pantry/items/:id/essential
func (h *PantryHandler) ToggleEssential(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleEssential(c.Request.Context(), c.Query("category"), id)
	respondMutation(c, http.StatusOK, "Item updated successfully", item, err)
}

// ToggleChecked handles POST /pantry/items/:id/checked
func (h *PantryHandler) ToggleChecked(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleChecked(c.Request.Context(), id)
	if err != nil && !errors.Is(err, kitchen.ErrPersistence) {
		respondError(c, err)
		return
	}

	respondMutation(c, http.StatusOK, "Cart updated successfully", gin.H{
		"item": item,
		"cart": h.service.Cart(),
	}, err)
}

// MoveItem handles POST /pantry/items/:id/move
func (h *PantryHandler) MoveItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	var req MoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.service.MoveItem(c.Request.Context(), id, req.From, req.To)
	if errors.Is(err, pantry.ErrSameCategory) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Item is already in this category",
		})
		return
	}
	respondMutation(c, http.StatusOK, "Item moved successfully", item, err)
}
