package server

import (
	"errors"
	"net/http"

	"mealmarket-be/internal/cart"
	"mealmarket-be/internal/favorite"
	"mealmarket-be/internal/logger"
	"mealmarket-be/internal/message"
	"mealmarket-be/internal/order"
	"mealmarket-be/internal/recipe"
	"mealmarket-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var statusByErr = map[error]int{
	// 400 — bad input
	user.ErrMissingFields:           http.StatusBadRequest,
	user.ErrInvalidRole:             http.StatusBadRequest,
	user.ErrBusinessProfileRequired: http.StatusBadRequest,
	recipe.ErrMissingFields:         http.StatusBadRequest,
	recipe.ErrMissingCategory:       http.StatusBadRequest,
	cart.ErrMissingItemID:           http.StatusBadRequest,
	cart.ErrMissingOwner:            http.StatusBadRequest,
	favorite.ErrMissingRecipeID:     http.StatusBadRequest,
	order.ErrEmptyOrder:             http.StatusBadRequest,
	order.ErrInvalidQuantity:        http.StatusBadRequest,
	order.ErrMissingInput:           http.StatusBadRequest,
	order.ErrInvalidStatus:          http.StatusBadRequest,
	message.ErrMissingFields:        http.StatusBadRequest,

	// 401 — failed authentication
	user.ErrInvalidCredentials: http.StatusUnauthorized,

	// 403 — caller lacks permission
	order.ErrUnauthorized:   http.StatusForbidden,
	order.ErrItemsNotOwned:  http.StatusForbidden,
	message.ErrNotRecipient: http.StatusForbidden,
	message.ErrVisitorReply: http.StatusForbidden,

	// 404 — missing resource
	user.ErrUserNotFound:         http.StatusNotFound,
	user.ErrCatererNotFound:      http.StatusNotFound,
	recipe.ErrRecipeNotFound:     http.StatusNotFound,
	order.ErrOrderNotFound:       http.StatusNotFound,
	order.ErrRecipeNotFound:      http.StatusNotFound,
	message.ErrRecipientNotFound: http.StatusNotFound,
	message.ErrMessageNotFound:   http.StatusNotFound,

	// 409 — conflicting or no-op state
	user.ErrPhoneExists:         http.StatusConflict,
	favorite.ErrAlreadyFavorite: http.StatusConflict,
	favorite.ErrNotFavorite:     http.StatusConflict,
	order.ErrNoItemsUpdated:     http.StatusConflict,
	order.ErrIllegalTransition:  http.StatusConflict,
}

// respondError maps domain sentinels onto HTTP statuses. Anything not
// in the table is an upstream failure and stays opaque to the client.
func respondError(c *gin.Context, err error) {
	for sentinel, status := range statusByErr {
		if errors.Is(err, sentinel) {
			c.JSON(status, gin.H{"error": sentinel.Error()})
			return
		}
	}

	logger.FromCtx(c.Request.Context()).Error("unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
