package server

import (
	"net/http"

	"mealmarket-be/internal/middleware"
	"mealmarket-be/internal/order"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type placeOrderRequest struct {
	Items       []order.PlaceOrderItem `json:"items"`
	Address     order.Address          `json:"address"`
	Method      string                 `json:"method"`
	TotalAmount float64                `json:"totalAmount"`
}

func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, _ := middleware.Identity(c)

	ord, err := h.orders.PlaceOrder(c.Request.Context(), order.PlaceOrderParams{
		UserID:      userID,
		Items:       req.Items,
		Address:     req.Address,
		Method:      req.Method,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": ord})
}

func (h *OrderHandler) ListForUser(c *gin.Context) {
	userID, _ := middleware.Identity(c)

	orders, err := h.orders.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) ListForCaterer(c *gin.Context) {
	catererID, _ := middleware.Identity(c)

	orders, err := h.orders.ListForCaterer(c.Request.Context(), catererID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type itemStatusRequest struct {
	OrderID string   `json:"orderId"`
	ItemIDs []string `json:"itemIds"`
	Status  string   `json:"status"`
}

// Accept and Reject are the common caterer actions; SetStatus covers
// the rest of the fulfillment ladder (preparing, shipped, delivered).

func (h *OrderHandler) Accept(c *gin.Context) {
	h.setStatus(c, order.ItemAccepted)
}

func (h *OrderHandler) Reject(c *gin.Context) {
	h.setStatus(c, order.ItemRejected)
}

func (h *OrderHandler) SetStatus(c *gin.Context) {
	h.setStatus(c, "")
}

func (h *OrderHandler) setStatus(c *gin.Context, fixed order.ItemStatus) {
	var req itemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status := fixed
	if status == "" {
		status = order.ItemStatus(req.Status)
	}

	catererID, _ := middleware.Identity(c)

	count, err := h.orders.SetItemsStatus(c.Request.Context(), catererID, req.OrderID, req.ItemIDs, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": count})
}
