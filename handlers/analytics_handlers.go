// api/handlers/analytics_handlers.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio/api/models"
	"portfolio/api/store"
)

type AnalyticsHandlers struct {
	Store *store.AnalyticsStore
}

func NewAnalyticsHandlers(s *store.AnalyticsStore) *AnalyticsHandlers {
	return &AnalyticsHandlers{Store: s}
}

// Track is the ingest endpoint. One route accepts both event types,
// discriminated by the type field.
func (h *AnalyticsHandlers) Track(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	switch req.Type {
	case models.EventPageView:
		var data models.PageViewData
		if err := json.Unmarshal(req.Data, &data); err != nil || data.PagePath == "" || data.VisitorID == "" || data.SessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid page_view payload"})
			return
		}

		pv := models.PageView{
			PagePath:  data.PagePath,
			VisitorID: data.VisitorID,
			SessionID: data.SessionID,
			UserAgent: c.Request.UserAgent(),
			Referrer:  c.Request.Referer(),
			IPAddress: c.ClientIP(),
		}
		if err := h.Store.RecordPageView(c.Request.Context(), pv); err != nil {
			zap.S().Errorf("Error recording page view: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to track analytics"})
			return
		}

	case models.EventEngagement:
		var data models.EngagementData
		if err := json.Unmarshal(req.Data, &data); err != nil ||
			data.VisitorID == "" || data.SessionID == "" || data.PagePath == "" ||
			data.TimeOnPage < 0 || data.ScrollDepth < 0 || data.ScrollDepth > 1 || data.Interactions < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid engagement payload"})
			return
		}

		if err := h.Store.RecordEngagement(c.Request.Context(), data); err != nil {
			zap.S().Errorf("Error recording engagement: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to track analytics"})
			return
		}

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown event type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Stats serves the admin dashboard rollups.
func (h *AnalyticsHandlers) Stats(c *gin.Context) {
	data, err := h.Store.Stats(c.Request.Context())
	if err != nil {
		zap.S().Errorf("Error fetching analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
