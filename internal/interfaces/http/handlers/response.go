// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pantry-backend/internal/domain/budget"
	"github.com/your-org/pantry-backend/internal/domain/kitchen"
	"github.com/your-org/pantry-backend/internal/domain/pantry"
	"github.com/your-org/pantry-backend/internal/domain/suggestion"
)

const persistenceWarning = "Changes are kept locally but could not be saved; they will be retried"

// respondMutation answers a state change. A persistence failure still
// answers with success since the change was applied; it only adds a warning.
func respondMutation(c *gin.Context, status int, message string, data interface{}, err error) {
	if err != nil && !errors.Is(err, kitchen.ErrPersistence) {
		respondError(c, err)
		return
	}

	body := gin.H{
		"message": message,
		"data":    data,
	}
	if err != nil {
		c.Error(err)
		body["warning"] = persistenceWarning
	}
	c.JSON(status, body)
}

// respondError maps domain errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	c.Error(err)

	switch {
	case errors.Is(err, pantry.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
	case errors.Is(err, pantry.ErrItemNotFound), errors.Is(err, pantry.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pantry.ErrDefaultCategory):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, budget.ErrInvalidBudget):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid budget", "details": err.Error()})
	case errors.Is(err, suggestion.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
	case errors.Is(err, suggestion.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Suggestions are not available"})
	case errors.Is(err, suggestion.ErrSuggestion):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "The assistant could not answer, please try again",
			"details": err.Error(),
		})
	case errors.Is(err, kitchen.ErrPersistence):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable", "details": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": err.Error(),
	})
}

func parseItemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return 0, false
	}
	return id, true
}
