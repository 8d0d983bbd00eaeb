package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/api/models"
	"portfolio/api/store"
)

type ExperienceHandlers struct {
	Store *store.ExperienceStore
}

func NewExperienceHandlers(s *store.ExperienceStore) *ExperienceHandlers {
	return &ExperienceHandlers{Store: s}
}

func (h *ExperienceHandlers) List(c *gin.Context) {
	entries, err := h.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "", "Failed to fetch experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

func (h *ExperienceHandlers) Create(c *gin.Context) {
	var req models.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Company, position, description, and start date are required"})
		return
	}

	id, err := h.Store.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "", "Failed to create experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *ExperienceHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Company, position, description, and start date are required"})
		return
	}

	if err := h.Store.Update(c.Request.Context(), id, req); err != nil {
		respondStoreError(c, err, "Experience not found", "Failed to update experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Experience updated successfully"})
}

func (h *ExperienceHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Experience not found", "Failed to delete experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Experience deleted successfully"})
}
