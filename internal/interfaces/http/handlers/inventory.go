// internal/interfaces/http/handlers/inventory.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/logistics-backend/internal/domain/audit"
	"github.com/your-org/logistics-backend/internal/domain/inventory"
	"github.com/your-org/logistics-backend/internal/interfaces/http/middleware"
)

// InventoryHandler handles stock record and warehouse report endpoints
type InventoryHandler struct {
	inventoryService *inventory.Service
	auditService     *audit.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *inventory.Service, auditService *audit.Service) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		auditService:     auditService,
	}
}

// GetInventory handles GET /inventory
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	items := h.inventoryService.List()

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory retrieved successfully",
		"data":    items,
		"total":   len(items),
	})
}

// GetInventoryItem handles GET /inventory/:id
func (h *InventoryHandler) GetInventoryItem(c *gin.Context) {
	item, err := h.inventoryService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory item retrieved successfully",
		"data":    item,
	})
}

// CreateInventoryItem handles POST /inventory
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req inventory.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.inventoryService.Add(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionCreate, "inventory", item.ID, "Created stock record for product "+item.ProductID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inventory item created successfully",
		"data":    item,
	})
}

// UpdateInventoryItem handles PUT /inventory/:id
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	var req inventory.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.inventoryService.Update(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionUpdate, "inventory", item.ID, "Updated stock record for product "+item.ProductID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory item updated successfully",
		"data":    item,
	})
}

// DeleteInventoryItem handles DELETE /inventory/:id
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	id := c.Param("id")

	if err := h.inventoryService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionDelete, "inventory", id, "Deleted stock record")

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory item deleted successfully",
	})
}

// GetWarehouseReports handles GET /reports/warehouse
func (h *InventoryHandler) GetWarehouseReports(c *gin.Context) {
	reports := h.inventoryService.WarehouseReports()

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionRead, "warehouse_reports", "", "Viewed warehouse reports")

	c.JSON(http.StatusOK, gin.H{
		"message": "Warehouse reports retrieved successfully",
		"data":    reports,
		"total":   len(reports),
	})
}

// GetDashboardStats handles GET /reports/dashboard
func (h *InventoryHandler) GetDashboardStats(c *gin.Context) {
	stats := h.inventoryService.DashboardStats()

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard statistics retrieved successfully",
		"data":    stats,
	})
}
