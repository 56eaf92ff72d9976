// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/kitchen"
	"github.com/your-org/pantry-backend/internal/pkg/pdf"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	service    *kitchen.Service
	pdfService *pdf.Service
	config     *config.Config
	logger     *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *kitchen.Service, pdfService *pdf.Service, cfg *config.Config, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		service:    service,
		pdfService: pdfService,
		config:     cfg,
		logger:     logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.service.Cart(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	cleared, err := h.service.ClearCart(c.Request.Context())
	respondMutation(c, http.StatusOK, "Cart cleared successfully", gin.H{
		"cleared_items": cleared,
	}, err)
}

// ExportPDF handles GET /cart/export.pdf
func (h *CartHandler) ExportPDF(c *gin.Context) {
	if !h.config.PDF.Enabled {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "PDF export is disabled",
		})
		return
	}

	view := h.service.Cart()
	now := time.Now()

	pdfBuffer, err := h.pdfService.GenerateShoppingList(view.Summary, view.Budget, now)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate shopping list PDF")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate PDF",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=liste-de-courses-%s.pdf", now.Format("2006-01-02")))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
