package server

import (
	"net/http"

	"mealmarket-be/internal/middleware"
	"mealmarket-be/internal/user"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users user.Service
}

func NewAuthHandler(users user.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerRequest struct {
	Username        string `json:"username"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	acct, token, err := h.users.Register(c.Request.Context(), user.RegisterParams{
		Username:        req.Username,
		Phone:           req.Phone,
		Password:        req.Password,
		Role:            user.Role(req.Role),
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": acct, "token": token})
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	acct, token, err := h.users.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": acct, "token": token})
}

// Logout exists for client symmetry. Tokens are stateless, so there is
// nothing to revoke server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	acct, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": acct})
}

func (h *AuthHandler) ListCaterers(c *gin.Context) {
	caterers, err := h.users.ListCaterers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"caterers": caterers})
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	acct, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": acct})
}

func (h *AuthHandler) GetCaterer(c *gin.Context) {
	acct, err := h.users.GetCatererByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"caterer": acct})
}
