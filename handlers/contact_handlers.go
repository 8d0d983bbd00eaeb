package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/api/models"
	"portfolio/api/store"
)

type ContactHandlers struct {
	Store *store.ContactStore
}

func NewContactHandlers(s *store.ContactStore) *ContactHandlers {
	return &ContactHandlers{Store: s}
}

// Create is the public contact form submission endpoint.
func (h *ContactHandlers) Create(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
		return
	}

	id, err := h.Store.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "", "Failed to save message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *ContactHandlers) List(c *gin.Context) {
	messages, err := h.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "", "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": messages})
}

// UpdateRead flips the read flag on a message.
func (h *ContactHandlers) UpdateRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ContactReadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Read == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Read field must be a boolean"})
		return
	}

	if err := h.Store.SetRead(c.Request.Context(), id, *req.Read); err != nil {
		respondStoreError(c, err, "Message not found", "Failed to update message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message updated successfully"})
}

func (h *ContactHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Message not found", "Failed to delete message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted successfully"})
}
