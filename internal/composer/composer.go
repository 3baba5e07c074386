// Package composer builds the natural-language prompt sent to the completion
// endpoint from the user's ingredients and preferences.
package composer

import (
	"fmt"
	"strings"
)

// AnyOption is the sentinel selectbox value meaning "no preference".
const AnyOption = "Any"

// promptTemplate is the fixed instruction layout the model is asked to honor.
// Compliance is advisory; the response is treated as opaque formatted text.
const promptTemplate = `Create a detailed, practical recipe using mainly these ingredients: %s.

IMPORTANT: Use this exact format:

RECIPE NAME: [Creative name]
PREP TIME: [e.g., 15 minutes]
COOK TIME: [e.g., 30 minutes]
DIFFICULTY: [Easy/Medium/Hard]
SERVINGS: [number]

INGREDIENTS:
- [Specific quantities and ingredients]
- [You can add basic pantry items like salt, oil, etc.]

INSTRUCTIONS:
1. [Clear step-by-step instructions]
2. [Number each step]
3. [Be specific with cooking times and temperatures]

NUTRITIONAL INFO (per serving):
- Calories: [estimate]
- Protein: [g]
- Carbohydrates: [g]
- Fat: [g]

TIPS: [Practical cooking tips]

Make the recipe realistic for home cooking.`

// EnhanceIngredients appends the optional cuisine and diet clauses to the raw
// ingredient list. The cuisine clause always precedes the diet clause and both
// build on the already-extended string.
func EnhanceIngredients(ingredients, cuisine, diet string) string {
	enhanced := ingredients
	if cuisine != AnyOption {
		enhanced += fmt.Sprintf(", %s cuisine style", strings.ToLower(cuisine))
	}
	if diet != AnyOption {
		enhanced += fmt.Sprintf(", %s diet", strings.ToLower(diet))
	}
	return enhanced
}

// Compose builds the full prompt for a recipe request. The caller is expected
// to have validated that ingredients is non-empty after trimming.
func Compose(ingredients, cuisine, diet string) string {
	return fmt.Sprintf(promptTemplate, EnhanceIngredients(ingredients, cuisine, diet))
}
