package api

import (
	"strings"
)

// defaultFilename matches the original download name used when no recipe
// name can be extracted.
const defaultFilename = "my_ai_recipe.txt"

// recipeName extracts the value of the "RECIPE NAME:" line from the recipe
// text. The format is advisory only, so a missing line returns "".
func recipeName(recipe string) string {
	for _, line := range strings.Split(recipe, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "RECIPE NAME:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// recipeFilename derives the download filename from a recipe name.
func recipeFilename(name string) string {
	slug := slugify(name)
	if slug == "" {
		return defaultFilename
	}
	return slug + ".txt"
}

// slugify lowercases a name and keeps only letters, digits and underscores.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
