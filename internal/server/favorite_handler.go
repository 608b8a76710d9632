package server

import (
	"net/http"

	"mealmarket-be/internal/favorite"
	"mealmarket-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favorites favorite.Service
}

func NewFavoriteHandler(favorites favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	if err := h.favorites.Add(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "added to favorites"})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	if err := h.favorites.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed from favorites"})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	recipes, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": recipes})
}
