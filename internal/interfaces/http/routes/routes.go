// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/kitchen"
	"github.com/your-org/pantry-backend/internal/domain/suggestion"
	"github.com/your-org/pantry-backend/internal/interfaces/http/handlers"
	"github.com/your-org/pantry-backend/internal/pkg/pdf"
)

// Dependencies are the services the routes are served by
type Dependencies struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Kitchen     *kitchen.Service
	Suggestions *suggestion.Service
	PDF         *pdf.Service
}

// SetupRoutes registers every API route on the group
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	SetupPantryRoutes(rg, deps)
	SetupCategoryRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupBudgetRoutes(rg, deps)
	SetupSuggestionRoutes(rg, deps)
}

// SetupPantryRoutes sets up pantry item routes
func SetupPantryRoutes(rg *gin.RouterGroup, deps Dependencies) {
	pantryHandler := handlers.NewPantryHandler(deps.Kitchen)

	pantry := rg.Group("/pantry")
	{
		pantry.GET("", pantryHandler.GetPantry)

		items := pantry.Group("/items")
		{
			items.POST("", pantryHandler.AddItem)
			items.PATCH("/:id", pantryHandler.UpdateItem)
			items.DELETE("/:id", pantryHandler.DeleteItem)
			items.POST("/:id/essential", pantryHandler.ToggleEssential)
			items.POST("/:id/checked", pantryHandler.ToggleChecked)
			items.POST("/:id/move", pantryHandler.MoveItem)
		}
	}
}

// SetupCategoryRoutes sets up category registry routes
func SetupCategoryRoutes(rg *gin.RouterGroup, deps Dependencies) {
	categoryHandler := handlers.NewCategoryHandler(deps.Kitchen)

	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.POST("", categoryHandler.CreateCategory)
		categories.PUT("/:id", categoryHandler.RenameCategory)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Kitchen, deps.PDF, deps.Config, deps.Logger)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/export.pdf", cartHandler.ExportPDF)
	}
}

// SetupBudgetRoutes sets up budget routes
func SetupBudgetRoutes(rg *gin.RouterGroup, deps Dependencies) {
	budgetHandler := handlers.NewBudgetHandler(deps.Kitchen)

	budget := rg.Group("/budget")
	{
		budget.GET("", budgetHandler.GetBudget)
		budget.PUT("", budgetHandler.SetBudget)
	}
}

// SetupSuggestionRoutes sets up the assistant routes
func SetupSuggestionRoutes(rg *gin.RouterGroup, deps Dependencies) {
	suggestionHandler := handlers.NewSuggestionHandler(deps.Suggestions, deps.Kitchen)

	suggestions := rg.Group("/suggestions")
	{
		suggestions.POST("/recipes", suggestionHandler.SuggestRecipes)
		suggestions.POST("/shopping-list", suggestionHandler.GenerateShoppingList)
		suggestions.POST("/nutrition", suggestionHandler.NutritionAdvice)
		suggestions.POST("/category", suggestionHandler.SuggestCategory)
	}
}
