package server

import (
	"net/http"

	"mealmarket-be/internal/cart"
	"mealmarket-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// sessionID identifies the anonymous cart. Clients keep it in a cookie
// or local storage and send it back on every cart call.
func sessionID(c *gin.Context) string {
	return c.GetHeader("X-Session-ID")
}

type cartAddRequest struct {
	ItemID string `json:"itemId"`
}

type cartUpdateRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Get returns the caller's cart. For authenticated callers this runs
// the server merge, so the first call after login reconciles whatever
// the anonymous session collected.
func (h *CartHandler) Get(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	var (
		items cart.Quantities
		err   error
	)
	if userID != "" {
		items, err = h.carts.FetchServerCart(c.Request.Context(), sessionID(c), userID)
	} else {
		items, err = h.carts.Get(c.Request.Context(), sessionID(c), userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cartData": items})
}

func (h *CartHandler) Add(c *gin.Context) {
	var req cartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, _ := middleware.Identity(c)

	items, err := h.carts.AddItem(c.Request.Context(), sessionID(c), userID, req.ItemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cartData": items})
}

func (h *CartHandler) Update(c *gin.Context) {
	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, _ := middleware.Identity(c)

	items, err := h.carts.SetItemQuantity(c.Request.Context(), sessionID(c), userID, req.ItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cartData": items})
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	if err := h.carts.Clear(c.Request.Context(), sessionID(c), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
