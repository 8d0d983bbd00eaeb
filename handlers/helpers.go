package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio/api/store"
)

// parseID reads the :id route parameter. A non-numeric id is a client error.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid id parameter"})
		return 0, false
	}
	return id, true
}

// respondStoreError maps a store error onto the response envelope: not-found
// becomes a 404 message, anything else is logged and returned as a generic
// 500 (persistence faults never leak detail to the caller).
func respondStoreError(c *gin.Context, err error, notFoundMsg, faultMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": notFoundMsg})
		return
	}
	zap.S().Errorf("%s: %v", faultMsg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": faultMsg})
}
