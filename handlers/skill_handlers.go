package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/api/models"
	"portfolio/api/store"
)

type SkillHandlers struct {
	Store *store.SkillStore
}

func NewSkillHandlers(s *store.SkillStore) *SkillHandlers {
	return &SkillHandlers{Store: s}
}

func (h *SkillHandlers) List(c *gin.Context) {
	skills, err := h.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "", "Failed to fetch skills")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": skills})
}

func (h *SkillHandlers) Create(c *gin.Context) {
	var req models.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name and category are required"})
		return
	}

	id, err := h.Store.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "", "Failed to create skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *SkillHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name and category are required"})
		return
	}

	if err := h.Store.Update(c.Request.Context(), id, req); err != nil {
		respondStoreError(c, err, "Skill not found", "Failed to update skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill updated successfully"})
}

func (h *SkillHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Skill not found", "Failed to delete skill")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill deleted successfully"})
}
