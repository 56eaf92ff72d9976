// internal/interfaces/http/handlers/category.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pantry-backend/internal/domain/kitchen"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	service *kitchen.Service
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *kitchen.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// CategoryRequest carries a category name
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.service.Categories(),
	})
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.service.AddCategory(c.Request.Context(), req.Name)
	respondMutation(c, http.StatusCreated, "Category created successfully", category, err)
}

// RenameCategory handles PUT /categories/:id
func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.service.RenameCategory(c.Request.Context(), c.Param("id"), req.Name)
	respondMutation(c, http.StatusOK, "Category renamed successfully", category, err)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	moved, err := h.service.DeleteCategory(c.Request.Context(), c.Param("id"))
	respondMutation(c, http.StatusOK, "Category deleted successfully", gin.H{
		"reassigned_items": moved,
	}, err)
}
