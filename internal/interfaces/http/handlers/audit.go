// internal/interfaces/http/handlers/audit.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/logistics-backend/internal/domain/audit"
)

// AuditHandler handles audit log endpoints
type AuditHandler struct {
	auditService *audit.Service
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// GetEntries handles GET /audit-log. Filters combine with AND; date bounds
// are inclusive.
func (h *AuditHandler) GetEntries(c *gin.Context) {
	filter := audit.Filter{
		UserID:   c.Query("user_id"),
		Resource: c.Query("resource"),
		Action:   c.Query("action"),
	}

	if raw := c.Query("start_date"); raw != "" {
		startDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid start_date, expected RFC3339",
			})
			return
		}
		filter.StartDate = startDate
	}

	if raw := c.Query("end_date"); raw != "" {
		endDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid end_date, expected RFC3339",
			})
			return
		}
		filter.EndDate = endDate
	}

	entries := h.auditService.Query(filter)

	c.JSON(http.StatusOK, gin.H{
		"message": "Audit log retrieved successfully",
		"data":    entries,
		"total":   len(entries),
	})
}
