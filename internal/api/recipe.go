package api

import (
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/flavorgen/backend/internal/composer"
	"github.com/pageza/flavorgen/backend/internal/service"
	"github.com/pageza/flavorgen/backend/internal/types"
)

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	generator service.RecipeGenerator
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(generator service.RecipeGenerator) *RecipeHandler {
	return &RecipeHandler{generator: generator}
}

// RegisterRoutes registers the recipe routes. Extra middleware (rate
// limiting) applies to the generate endpoint only.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, generateMiddleware ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		handlers := append(generateMiddleware, h.Generate)
		recipes.POST("/generate", handlers...)
		recipes.POST("/download", h.Download)
		recipes.GET("/options", h.Options)
		recipes.GET("/examples", h.Examples)
	}
}

// Generate handles recipe generation requests
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validation happens here, before any network call
	req.Ingredients = strings.TrimSpace(req.Ingredients)
	if req.Ingredients == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please enter some ingredients"})
		return
	}
	if req.Cuisine == "" {
		req.Cuisine = composer.AnyOption
	}
	if req.Diet == "" {
		req.Diet = composer.AnyOption
	}
	if !slices.Contains(types.Cuisines, req.Cuisine) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown cuisine %q", req.Cuisine)})
		return
	}
	if !slices.Contains(types.Diets, req.Diet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown diet %q", req.Diet)})
		return
	}

	recipe, err := h.generator.GenerateRecipe(c.Request.Context(), req.Ingredients, req.Cuisine, req.Diet)
	if err != nil {
		kind := service.FailureKind(err)
		log.Printf("Recipe generation failed (%s): %v", kind, err)
		c.JSON(statusForFailure(kind), gin.H{"error": err.Error(), "kind": kind})
		return
	}

	name := recipeName(recipe)
	c.JSON(http.StatusOK, types.GenerateRecipeResponse{
		Recipe:     recipe,
		RecipeName: name,
		Filename:   recipeFilename(name),
	})
}

// Download returns a byte-exact copy of the recipe text as a plain-text
// attachment named for the recipe.
func (h *RecipeHandler) Download(c *gin.Context) {
	var req types.DownloadRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename := recipeFilename(recipeName(req.Recipe))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(req.Recipe))
}

// Options returns the selectable cuisine and diet lists
func (h *RecipeHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, types.RecipeOptions{
		Cuisines: types.Cuisines,
		Diets:    types.Diets,
	})
}

// Examples returns the quick-start ingredient sets
func (h *RecipeHandler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": types.QuickExamples})
}

// statusForFailure maps a completion failure kind to an HTTP status. The
// structured kind is the discriminant; response text is never inspected.
func statusForFailure(kind service.Kind) int {
	switch kind {
	case service.KindTimeout:
		return http.StatusGatewayTimeout
	case service.KindHTTPError, service.KindMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
