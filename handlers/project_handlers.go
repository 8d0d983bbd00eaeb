package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/api/models"
	"portfolio/api/store"
)

type ProjectHandlers struct {
	Store *store.ProjectStore
}

func NewProjectHandlers(s *store.ProjectStore) *ProjectHandlers {
	return &ProjectHandlers{Store: s}
}

func (h *ProjectHandlers) List(c *gin.Context) {
	projects, err := h.Store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "", "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": projects})
}

func (h *ProjectHandlers) Create(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title, description, and category are required"})
		return
	}

	id, err := h.Store.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "", "Failed to create project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *ProjectHandlers) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title, description, and category are required"})
		return
	}

	if err := h.Store.Update(c.Request.Context(), id, req); err != nil {
		respondStoreError(c, err, "Project not found", "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project updated successfully"})
}

func (h *ProjectHandlers) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "Project not found", "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}

// Count serves the public project counter widget.
func (h *ProjectHandlers) Count(c *gin.Context) {
	counts, err := h.Store.Counts(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "", "Failed to get project count")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": counts})
}
