// internal/interfaces/http/handlers/budget.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pantry-backend/internal/domain/budget"
	"github.com/your-org/pantry-backend/internal/domain/kitchen"
	"github.com/your-org/pantry-backend/internal/pkg/numeric"
)

// BudgetHandler handles budget endpoints
type BudgetHandler struct {
	service *kitchen.Service
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(service *kitchen.Service) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// SetBudgetRequest accepts a number or a localized string such as "12,50"
type SetBudgetRequest struct {
	Budget numeric.Input `json:"budget"`
}

// GetBudget handles GET /budget
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Budget retrieved successfully",
		"data":    h.service.Budget(),
	})
}

// SetBudget handles PUT /budget. A rejected value answers 422 with the retained budget.
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	status, err := h.service.SetBudget(c.Request.Context(), req.Budget.String())
	if errors.Is(err, budget.ErrInvalidBudget) {
		c.Error(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid budget",
			"details": err.Error(),
			"data":    status,
		})
		return
	}
	respondMutation(c, http.StatusOK, "Budget updated successfully", status, err)
}
