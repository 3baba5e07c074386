package types

// GenerateRecipeRequest is the payload for a recipe generation request.
// Cuisine and Diet default to the "Any" sentinel when omitted.
type GenerateRecipeRequest struct {
	Ingredients string `json:"ingredients"`
	Cuisine     string `json:"cuisine"`
	Diet        string `json:"diet"`
}

// GenerateRecipeResponse carries the generated recipe text plus the suggested
// download filename derived from the recipe name.
type GenerateRecipeResponse struct {
	Recipe     string `json:"recipe"`
	RecipeName string `json:"recipe_name,omitempty"`
	Filename   string `json:"filename"`
}

// DownloadRecipeRequest is the payload for downloading a generated recipe as
// a plain-text file.
type DownloadRecipeRequest struct {
	Recipe string `json:"recipe" binding:"required"`
}

// RecipeOptions lists the selectable cuisine styles and dietary preferences,
// with the "Any" sentinel first.
type RecipeOptions struct {
	Cuisines []string `json:"cuisines"`
	Diets    []string `json:"diets"`
}

// QuickExample is a ready-made ingredient set users can start from.
type QuickExample struct {
	Label       string `json:"label"`
	Ingredients string `json:"ingredients"`
}

// Cuisines are the supported cuisine styles.
var Cuisines = []string{
	"Any", "Italian", "Mexican", "Asian", "Indian", "Mediterranean", "American", "French", "Thai",
}

// Diets are the supported dietary preferences.
var Diets = []string{
	"Any", "Vegetarian", "Vegan", "Gluten-free", "Low-carb", "Dairy-free", "Keto",
}

// QuickExamples are the starter ingredient sets offered alongside the form.
var QuickExamples = []QuickExample{
	{Label: "Chicken & Rice", Ingredients: "chicken, rice, vegetables"},
	{Label: "Pasta Dish", Ingredients: "pasta, tomatoes, garlic, basil"},
	{Label: "Vegetarian", Ingredients: "tofu, broccoli, carrots, rice"},
}
