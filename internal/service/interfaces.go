package service

import (
	"context"
)

// RecipeGenerator defines the interface for recipe generation
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, ingredients, cuisine, diet string) (string, error)
}
