// internal/interfaces/http/handlers/supply_chain.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/logistics-backend/internal/domain/audit"
	"github.com/your-org/logistics-backend/internal/domain/supplychain"
	"github.com/your-org/logistics-backend/internal/interfaces/http/middleware"
)

// SupplyChainHandler handles shipment tracking endpoints
type SupplyChainHandler struct {
	supplyChainService *supplychain.Service
	auditService       *audit.Service
}

// NewSupplyChainHandler creates a new supply chain handler
func NewSupplyChainHandler(supplyChainService *supplychain.Service, auditService *audit.Service) *SupplyChainHandler {
	return &SupplyChainHandler{
		supplyChainService: supplyChainService,
		auditService:       auditService,
	}
}

// GetRecords handles GET /supply-chain
func (h *SupplyChainHandler) GetRecords(c *gin.Context) {
	records := h.supplyChainService.List()

	c.JSON(http.StatusOK, gin.H{
		"message": "Supply chain records retrieved successfully",
		"data":    records,
		"total":   len(records),
	})
}

// GetRecord handles GET /supply-chain/:id
func (h *SupplyChainHandler) GetRecord(c *gin.Context) {
	record, err := h.supplyChainService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Supply chain record retrieved successfully",
		"data":    record,
	})
}

// CreateRecord handles POST /supply-chain
func (h *SupplyChainHandler) CreateRecord(c *gin.Context) {
	var req supplychain.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	record, err := h.supplyChainService.Add(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionCreate, "supply_chain", record.ID, "Created shipment for order "+record.OrderID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Supply chain record created successfully",
		"data":    record,
	})
}

// UpdateRecord handles PUT /supply-chain/:id
func (h *SupplyChainHandler) UpdateRecord(c *gin.Context) {
	var req supplychain.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	record, err := h.supplyChainService.Update(c.Param("id"), &req)
	if err != nil {
		status := http.StatusNotFound
		if err.Error() != "supply chain record not found" {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionUpdate, "supply_chain", record.ID, "Updated shipment status to "+string(record.Status))

	c.JSON(http.StatusOK, gin.H{
		"message": "Supply chain record updated successfully",
		"data":    record,
	})
}

// DeleteRecord handles DELETE /supply-chain/:id
func (h *SupplyChainHandler) DeleteRecord(c *gin.Context) {
	id := c.Param("id")

	if err := h.supplyChainService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionDelete, "supply_chain", id, "Deleted supply chain record")

	c.JSON(http.StatusOK, gin.H{
		"message": "Supply chain record deleted successfully",
	})
}
