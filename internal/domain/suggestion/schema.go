package suggestion

import "google.golang.org/genai"

func stringSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func numberSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description}
}

func stringArraySchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Description: description, Items: stringSchema("")}
}

func recipesSchema() *genai.Schema {
	recipe := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":         stringSchema("Recipe name"),
			"description":  stringSchema("One sentence description"),
			"ingredients":  stringArraySchema("Ingredients with quantities"),
			"instructions": stringArraySchema("Ordered preparation steps"),
			"prepMinutes":  {Type: genai.TypeInteger, Description: "Total preparation time in minutes"},
		},
		Required: []string{"name", "ingredients", "instructions"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recipes": {Type: genai.TypeArray, Items: recipe},
		},
		Required: []string{"recipes"},
	}
}

func shoppingListSchema(categories []string) *genai.Schema {
	category := stringSchema("Category of the item")
	if len(categories) > 0 {
		category.Enum = categories
	}

	item := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":           stringSchema("Product name"),
			"category":       category,
			"quantity":       numberSchema("Quantity to buy"),
			"unit":           stringSchema("Unit such as kg, l or pcs"),
			"estimatedPrice": numberSchema("Estimated unit price in euros"),
		},
		Required: []string{"name", "category", "quantity"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"items":          {Type: genai.TypeArray, Items: item},
			"estimatedTotal": numberSchema("Estimated total in euros"),
		},
		Required: []string{"items"},
	}
}

func nutritionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":           stringSchema("Short nutritional assessment"),
			"tips":              stringArraySchema("Actionable advice"),
			"estimatedCalories": numberSchema("Estimated total calories"),
		},
		Required: []string{"summary", "tips"},
	}
}

func categorySchema(categories []string) *genai.Schema {
	category := stringSchema("Best matching category")
	if len(categories) > 0 {
		category.Enum = categories
	}

	icons := make([]string, 0, len(allIcons))
	for _, icon := range allIcons {
		icons = append(icons, string(icon))
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": category,
			"icon":     {Type: genai.TypeString, Enum: icons},
		},
		Required: []string{"category", "icon"},
	}
}
