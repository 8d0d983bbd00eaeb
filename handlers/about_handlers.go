package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/api/models"
	"portfolio/api/store"
)

type AboutHandlers struct {
	Store *store.AboutStore
}

func NewAboutHandlers(s *store.AboutStore) *AboutHandlers {
	return &AboutHandlers{Store: s}
}

func (h *AboutHandlers) List(c *gin.Context) {
	sections, err := h.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "", "Failed to fetch about content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sections})
}

// Upsert writes one about section by name: update if present, insert if absent.
func (h *AboutHandlers) Upsert(c *gin.Context) {
	var req models.AboutSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Section and content are required"})
		return
	}

	if err := h.Store.Upsert(c.Request.Context(), req); err != nil {
		respondStoreError(c, err, "", "Failed to update about content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
