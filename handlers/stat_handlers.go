package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/api/models"
	"portfolio/api/store"
)

type StatHandlers struct {
	Store *store.StatStore
}

func NewStatHandlers(s *store.StatStore) *StatHandlers {
	return &StatHandlers{Store: s}
}

func (h *StatHandlers) List(c *gin.Context) {
	stats, err := h.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "", "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

func (h *StatHandlers) Create(c *gin.Context) {
	var req models.StatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Key, value, and label are required"})
		return
	}

	id, err := h.Store.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "", "Failed to create stat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *StatHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.StatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Key, value, and label are required"})
		return
	}

	if err := h.Store.Update(c.Request.Context(), id, req); err != nil {
		respondStoreError(c, err, "Stat not found", "Failed to update stat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stat updated successfully"})
}

func (h *StatHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Stat not found", "Failed to delete stat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stat deleted successfully"})
}
