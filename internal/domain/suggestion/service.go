// internal/domain/suggestion/service.go
package suggestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/pantry"
)

const defaultRecipeCount = 3

var allIcons = pantry.Icons()

// Prompt is one request to the generative model. Schema constrains the JSON
// the model must answer with.
type Prompt struct {
	System string
	Text   string
	Schema *genai.Schema
}

//go:generate mockgen -source=service.go -destination=model_mock.go -package=suggestion
type Model interface {
	// Generate returns the raw JSON text produced for the prompt
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

type Service struct {
	model    Model
	validate *validator.Validate
	logger   *logrus.Logger
	timeout  time.Duration
}

// NewService creates a new suggestion service. A nil model disables every
// operation with ErrDisabled.
func NewService(model Model, cfg *config.Config, logger *logrus.Logger) *Service {
	timeout := cfg.Suggestion.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Service{
		model:    model,
		validate: validator.New(),
		logger:   logger,
		timeout:  timeout,
	}
}

// Enabled reports whether a model is configured
func (s *Service) Enabled() bool {
	return s.model != nil
}

// SuggestRecipes proposes recipes from the given ingredients
func (s *Service) SuggestRecipes(ctx context.Context, req RecipeRequest) ([]Recipe, error) {
	req.Ingredients = cleanList(req.Ingredients)
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	count := req.Count
	if count == 0 {
		count = defaultRecipeCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggest %d recipes using mainly these ingredients: %s.\n", count, strings.Join(req.Ingredients, ", "))
	if req.Country != "" {
		fmt.Fprintf(&b, "The recipes must be traditional dishes from %s.\n", req.Country)
	}
	if req.Preferences != "" {
		fmt.Fprintf(&b, "Dietary preferences: %s.\n", req.Preferences)
	}

	var out generatedRecipes
	err := s.generate(ctx, "recipes", Prompt{
		System: "You are a home cook helping someone use what is already in their pantry. Answer in French.",
		Text:   b.String(),
		Schema: recipesSchema(),
	}, &out)
	if err != nil {
		return nil, err
	}

	recipes := make([]Recipe, 0, len(out.Recipes))
	for _, g := range out.Recipes {
		if req.Country != "" {
			recipes = append(recipes, NewWorldRecipe(req.Country, g))
			continue
		}
		recipes = append(recipes, NewPantryRecipe(g))
	}
	return recipes, nil
}

// GenerateShoppingList builds a shopping list for a goal. Categories outside
// the registered ones are mapped to the default category.
func (s *Service) GenerateShoppingList(ctx context.Context, req ShoppingListRequest) (*ShoppingList, error) {
	req.Goal = strings.TrimSpace(req.Goal)
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a grocery shopping list for: %s.\n", req.Goal)
	if req.People > 0 {
		fmt.Fprintf(&b, "It is for %d people.\n", req.People)
	}
	if req.Budget > 0 {
		fmt.Fprintf(&b, "Stay under a budget of %.2f euros.\n", req.Budget)
	}
	if len(req.Categories) > 0 {
		fmt.Fprintf(&b, "Use only these categories: %s.\n", strings.Join(req.Categories, ", "))
	}

	var out ShoppingList
	err := s.generate(ctx, "shopping_list", Prompt{
		System: "You plan groceries for a French household. Item names are in French.",
		Text:   b.String(),
		Schema: shoppingListSchema(req.Categories),
	}, &out)
	if err != nil {
		return nil, err
	}

	for i := range out.Items {
		out.Items[i].Name = strings.TrimSpace(out.Items[i].Name)
		out.Items[i].Category = matchCategory(out.Items[i].Category, req.Categories)
	}
	return &out, nil
}

// NutritionAdvice comments on the nutritional balance of a set of foods
func (s *Service) NutritionAdvice(ctx context.Context, req NutritionRequest) (*NutritionAdvice, error) {
	req.Items = cleanList(req.Items)
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Give nutritional advice about this selection of foods: %s.\n", strings.Join(req.Items, ", "))
	if req.Goal != "" {
		fmt.Fprintf(&b, "The person's goal is: %s.\n", req.Goal)
	}

	var out NutritionAdvice
	err := s.generate(ctx, "nutrition", Prompt{
		System: "You are a nutritionist. Be concise and practical. Answer in French.",
		Text:   b.String(),
		Schema: nutritionSchema(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SuggestCategory picks a registered category and an icon for an item
func (s *Service) SuggestCategory(ctx context.Context, req CategoryRequest) (*CategorySuggestion, error) {
	req.ItemName = strings.TrimSpace(req.ItemName)
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Which category does the grocery item %q belong to?", req.ItemName)
	if len(req.Categories) > 0 {
		text += fmt.Sprintf(" Choose among: %s.", strings.Join(req.Categories, ", "))
	}

	var out CategorySuggestion
	err := s.generate(ctx, "category", Prompt{
		System: "You sort grocery items into shopping list categories.",
		Text:   text,
		Schema: categorySchema(req.Categories),
	}, &out)
	if err != nil {
		return nil, err
	}

	out.Category = matchCategory(out.Category, req.Categories)
	out.Icon = pantry.ParseIcon(string(out.Icon))
	return &out, nil
}

func (s *Service) checkRequest(req any) error {
	if s.model == nil {
		return ErrDisabled
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func (s *Service) generate(ctx context.Context, op string, prompt Prompt, out any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.model.Generate(ctx, prompt)
	log := s.logger.WithFields(logrus.Fields{
		"operation": op,
		"latency":   time.Since(start),
	})

	if err != nil {
		log.WithError(err).Warn("Suggestion request failed")
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s timed out", ErrSuggestion, op)
		}
		return fmt.Errorf("%w: %s: %v", ErrSuggestion, op, err)
	}

	if err := json.Unmarshal([]byte(stripFence(raw)), out); err != nil {
		log.WithError(err).Warn("Suggestion response is not valid JSON")
		return fmt.Errorf("%w: %s: malformed response", ErrSuggestion, op)
	}

	if err := s.validate.Struct(out); err != nil {
		log.WithError(err).Warn("Suggestion response does not match schema")
		return fmt.Errorf("%w: %s: incomplete response", ErrSuggestion, op)
	}

	log.Debug("Suggestion generated")
	return nil
}

// stripFence removes a markdown code fence some models wrap JSON in
func stripFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}

	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimPrefix(raw, "json")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

func matchCategory(name string, categories []string) string {
	name = strings.TrimSpace(name)
	if len(categories) == 0 {
		if name == "" {
			return pantry.DefaultCategoryName
		}
		return name
	}

	if slices.Contains(categories, name) {
		return name
	}
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return pantry.DefaultCategoryName
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
