// internal/interfaces/http/handlers/forecast.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/logistics-backend/internal/domain/audit"
	"github.com/your-org/logistics-backend/internal/domain/forecast"
	"github.com/your-org/logistics-backend/internal/interfaces/http/middleware"
)

// ForecastHandler handles customer, order and demand forecast endpoints
type ForecastHandler struct {
	engine       *forecast.Engine
	auditService *audit.Service
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(engine *forecast.Engine, auditService *audit.Service) *ForecastHandler {
	return &ForecastHandler{
		engine:       engine,
		auditService: auditService,
	}
}

// CUSTOMERS

// GetCustomers handles GET /customers
func (h *ForecastHandler) GetCustomers(c *gin.Context) {
	customers := h.engine.ListCustomers()

	c.JSON(http.StatusOK, gin.H{
		"message": "Customers retrieved successfully",
		"data":    customers,
		"total":   len(customers),
	})
}

// GetCustomer handles GET /customers/:id
func (h *ForecastHandler) GetCustomer(c *gin.Context) {
	customer, err := h.engine.GetCustomer(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer retrieved successfully",
		"data":    customer,
	})
}

// CreateCustomer handles POST /customers
func (h *ForecastHandler) CreateCustomer(c *gin.Context) {
	var req forecast.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	customer, err := h.engine.AddCustomer(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionCreate, "customers", customer.ID, "Created customer "+customer.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
		"data":    customer,
	})
}

// UpdateCustomer handles PUT /customers/:id
func (h *ForecastHandler) UpdateCustomer(c *gin.Context) {
	var req forecast.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	customer, err := h.engine.UpdateCustomer(c.Param("id"), &req)
	if err != nil {
		status := http.StatusNotFound
		if err.Error() != "customer not found" {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionUpdate, "customers", customer.ID, "Updated customer "+customer.Name)

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer updated successfully",
		"data":    customer,
	})
}

// DeleteCustomer handles DELETE /customers/:id. The customer's orders are
// removed with it.
func (h *ForecastHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")

	if err := h.engine.DeleteCustomer(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionDelete, "customers", id, "Deleted customer and related orders")

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer deleted successfully",
	})
}

// ORDERS

// GetOrders handles GET /orders
func (h *ForecastHandler) GetOrders(c *gin.Context) {
	if customerID := c.Query("customer_id"); customerID != "" {
		orders := h.engine.OrdersForCustomer(customerID)
		c.JSON(http.StatusOK, gin.H{
			"message": "Orders retrieved successfully",
			"data":    orders,
			"total":   len(orders),
		})
		return
	}

	orders := h.engine.ListOrders()
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
		"total":   len(orders),
	})
}

// CreateOrder handles POST /orders
func (h *ForecastHandler) CreateOrder(c *gin.Context) {
	var req forecast.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	order, err := h.engine.AddOrder(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionCreate, "customers", order.ID, "Created order for customer "+order.CustomerID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    order,
	})
}

// UpdateOrder handles PUT /orders/:id
func (h *ForecastHandler) UpdateOrder(c *gin.Context) {
	var req forecast.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	order, err := h.engine.UpdateOrder(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"data":    order,
	})
}

// DeleteOrder handles DELETE /orders/:id
func (h *ForecastHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	if err := h.engine.DeleteOrder(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionDelete, "customers", id, "Deleted order")

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

// FORECASTS

// GetDemandForecast handles GET /forecasts/customers/:id
func (h *ForecastHandler) GetDemandForecast(c *gin.Context) {
	result := h.engine.GetDemandForecast(c.Param("id"))
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "customer not found",
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(userID, audit.ActionRead, "forecasts", result.CustomerID, "Viewed demand forecast")

	c.JSON(http.StatusOK, gin.H{
		"message": "Demand forecast retrieved successfully",
		"data":    result,
	})
}

// GetDemandForecasts handles GET /forecasts/customers
func (h *ForecastHandler) GetDemandForecasts(c *gin.Context) {
	forecasts := h.engine.AllDemandForecasts()

	c.JSON(http.StatusOK, gin.H{
		"message": "Demand forecasts retrieved successfully",
		"data":    forecasts,
		"total":   len(forecasts),
	})
}

// GetCategoryPredictions handles GET /forecasts/categories
func (h *ForecastHandler) GetCategoryPredictions(c *gin.Context) {
	predictions := h.engine.PredictNewProductTypes()

	c.JSON(http.StatusOK, gin.H{
		"message": "Category predictions retrieved successfully",
		"data":    predictions,
		"total":   len(predictions),
	})
}

// GetCustomerSegments handles GET /forecasts/segments
func (h *ForecastHandler) GetCustomerSegments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Customer segments retrieved successfully",
		"data": gin.H{
			"potential":  h.engine.PotentialCustomers(),
			"short_term": h.engine.ShortTermCustomers(),
			"long_term":  h.engine.LongTermCustomers(),
		},
	})
}
