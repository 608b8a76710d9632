package server

import (
	"net/http"

	"mealmarket-be/internal/middleware"
	"mealmarket-be/internal/recipe"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipes recipe.Service
}

func NewRecipeHandler(recipes recipe.Service) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

type recipeRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ownerID, _ := middleware.Identity(c)

	rec, err := h.recipes.Create(c.Request.Context(), recipe.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Category:    req.Category,
		Image:       req.Image,
		Price:       req.Price,
		OwnerID:     ownerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": rec})
}

func (h *RecipeHandler) Update(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ownerID, _ := middleware.Identity(c)

	rec, err := h.recipes.Update(c.Request.Context(), recipe.UpdateParams{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Category:    req.Category,
		Image:       req.Image,
		Price:       req.Price,
		OwnerID:     ownerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": rec})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	ownerID, _ := middleware.Identity(c)

	if err := h.recipes.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	rec, err := h.recipes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": rec})
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) ListMine(c *gin.Context) {
	ownerID, _ := middleware.Identity(c)

	recipes, err := h.recipes.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// ListByCaterer is the public catalog of one seller, backing the
// caterer detail page.
func (h *RecipeHandler) ListByCaterer(c *gin.Context) {
	recipes, err := h.recipes.ListByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) ListByCategory(c *gin.Context) {
	recipes, err := h.recipes.ListByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
