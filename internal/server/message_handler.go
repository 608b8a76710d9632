package server

import (
	"net/http"

	"mealmarket-be/internal/message"
	"mealmarket-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messages message.Service
}

func NewMessageHandler(messages message.Service) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
	SenderName  string `json:"senderName"`
	SenderEmail string `json:"senderEmail"`
	SenderPhone string `json:"senderPhone"`
}

// Send accepts messages from anyone, authenticated or not.
func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	senderID, senderRole := middleware.Identity(c)

	msg, err := h.messages.Send(c.Request.Context(), message.SendParams{
		RecipientID: req.RecipientID,
		Content:     req.Content,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		SenderPhone: req.SenderPhone,
		SenderID:    senderID,
		SenderRole:  senderRole,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// Inbox lists the caller's received messages. Caterers see buyer
// questions, buyers see the replies addressed back to them.
func (h *MessageHandler) Inbox(c *gin.Context) {
	recipientID, _ := middleware.Identity(c)

	messages, err := h.messages.ListForRecipient(c.Request.Context(), recipientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type replyRequest struct {
	Content string `json:"content"`
}

func (h *MessageHandler) Reply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	replierID, _ := middleware.Identity(c)

	reply, err := h.messages.Reply(c.Request.Context(), replierID, c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": reply})
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	readerID, _ := middleware.Identity(c)

	if err := h.messages.MarkRead(c.Request.Context(), c.Param("id"), readerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}
