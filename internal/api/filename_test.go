package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeName(t *testing.T) {
	t.Run("extracts the name line", func(t *testing.T) {
		recipe := "RECIPE NAME: Spicy Thai Basil Chicken\nPREP TIME: 10 minutes"
		assert.Equal(t, "Spicy Thai Basil Chicken", recipeName(recipe))
	})

	t.Run("tolerates leading whitespace", func(t *testing.T) {
		recipe := "\n  RECIPE NAME:  Herb Omelette \nSERVINGS: 2"
		assert.Equal(t, "Herb Omelette", recipeName(recipe))
	})

	t.Run("returns empty when the line is absent", func(t *testing.T) {
		assert.Equal(t, "", recipeName("some freeform text"))
	})
}

func TestRecipeFilename(t *testing.T) {
	for _, tc := range []struct {
		name string
		want string
	}{
		{"Spicy Thai Basil Chicken", "spicy_thai_basil_chicken.txt"},
		{"Mom's 5-Star Lasagna!", "moms_5_star_lasagna.txt"},
		{"", "my_ai_recipe.txt"},
		{"!!!", "my_ai_recipe.txt"},
	} {
		assert.Equal(t, tc.want, recipeFilename(tc.name))
	}
}
