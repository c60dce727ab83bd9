// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/logistics-backend/internal/config"
	"github.com/your-org/logistics-backend/internal/domain/user"
	"github.com/your-org/logistics-backend/internal/interfaces/http/handlers"
	"github.com/your-org/logistics-backend/internal/interfaces/http/middleware"
)

// Dependencies bundles everything the route tree needs
type Dependencies struct {
	Config    *config.Config
	Evaluator *user.Evaluator

	Auth        *handlers.AuthHandler
	Products    *handlers.ProductHandler
	Inventory   *handlers.InventoryHandler
	SupplyChain *handlers.SupplyChainHandler
	Users       *handlers.UserHandler
	Audit       *handlers.AuditHandler
	Forecast    *handlers.ForecastHandler
}

// SetupRoutes wires the full API surface. Every non-auth route requires a
// valid token plus a role grant for its resource and action.
func SetupRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	cfg := deps.Config
	eval := deps.Evaluator

	// Authentication
	auth := rg.Group("/auth")
	{
		auth.POST("/login", deps.Auth.Login)
		auth.POST("/refresh", deps.Auth.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", deps.Auth.Logout)
			protected.GET("/profile", deps.Auth.GetProfile)
			protected.GET("/validate", deps.Auth.ValidateToken)
		}
	}

	// Product catalog
	products := rg.Group("/products")
	products.Use(middleware.AuthMiddleware(cfg))
	{
		products.GET("", middleware.RequirePermission(eval, user.ResourceProducts, user.ActionRead), deps.Products.GetProducts)
		products.GET("/:id", middleware.RequirePermission(eval, user.ResourceProducts, user.ActionRead), deps.Products.GetProduct)
		products.POST("", middleware.RequirePermission(eval, user.ResourceProducts, user.ActionCreate), deps.Products.CreateProduct)
		products.PUT("/:id", middleware.RequirePermission(eval, user.ResourceProducts, user.ActionUpdate), deps.Products.UpdateProduct)
		products.DELETE("/:id", middleware.RequirePermission(eval, user.ResourceProducts, user.ActionDelete), deps.Products.DeleteProduct)
	}

	// Inventory
	inventory := rg.Group("/inventory")
	inventory.Use(middleware.AuthMiddleware(cfg))
	{
		inventory.GET("", middleware.RequirePermission(eval, user.ResourceInventory, user.ActionRead), deps.Inventory.GetInventory)
		inventory.GET("/:id", middleware.RequirePermission(eval, user.ResourceInventory, user.ActionRead), deps.Inventory.GetInventoryItem)
		inventory.POST("", middleware.RequirePermission(eval, user.ResourceInventory, user.ActionCreate), deps.Inventory.CreateInventoryItem)
		inventory.PUT("/:id", middleware.RequirePermission(eval, user.ResourceInventory, user.ActionUpdate), deps.Inventory.UpdateInventoryItem)
		inventory.DELETE("/:id", middleware.RequirePermission(eval, user.ResourceInventory, user.ActionDelete), deps.Inventory.DeleteInventoryItem)
	}

	// Supply chain tracking
	supplyChain := rg.Group("/supply-chain")
	supplyChain.Use(middleware.AuthMiddleware(cfg))
	{
		supplyChain.GET("", middleware.RequirePermission(eval, user.ResourceSupplyChain, user.ActionRead), deps.SupplyChain.GetRecords)
		supplyChain.GET("/:id", middleware.RequirePermission(eval, user.ResourceSupplyChain, user.ActionRead), deps.SupplyChain.GetRecord)
		supplyChain.POST("", middleware.RequirePermission(eval, user.ResourceSupplyChain, user.ActionCreate), deps.SupplyChain.CreateRecord)
		supplyChain.PUT("/:id", middleware.RequirePermission(eval, user.ResourceSupplyChain, user.ActionUpdate), deps.SupplyChain.UpdateRecord)
		supplyChain.DELETE("/:id", middleware.RequirePermission(eval, user.ResourceSupplyChain, user.ActionDelete), deps.SupplyChain.DeleteRecord)
	}

	// Reports
	reports := rg.Group("/reports")
	reports.Use(middleware.AuthMiddleware(cfg))
	{
		reports.GET("/warehouse", middleware.RequirePermission(eval, user.ResourceWarehouseReports, user.ActionRead), deps.Inventory.GetWarehouseReports)
		reports.GET("/dashboard", middleware.RequirePermission(eval, user.ResourceReports, user.ActionRead), deps.Inventory.GetDashboardStats)
	}

	// User management
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg))
	{
		users.GET("", middleware.RequirePermission(eval, user.ResourceUsers, user.ActionRead), deps.Users.GetUsers)
		users.GET("/:id", middleware.RequirePermission(eval, user.ResourceUsers, user.ActionRead), deps.Users.GetUser)
		users.POST("", middleware.RequirePermission(eval, user.ResourceUsers, user.ActionCreate), deps.Users.CreateUser)
		users.PUT("/:id", middleware.RequirePermission(eval, user.ResourceUsers, user.ActionUpdate), deps.Users.UpdateUser)
		users.DELETE("/:id", middleware.RequirePermission(eval, user.ResourceUsers, user.ActionDelete), deps.Users.DeleteUser)
	}

	// Audit log
	auditLog := rg.Group("/audit-log")
	auditLog.Use(middleware.AuthMiddleware(cfg))
	{
		auditLog.GET("", middleware.RequirePermission(eval, user.ResourceAuditLog, user.ActionRead), deps.Audit.GetEntries)
	}

	// Customers and orders feeding the demand forecast engine
	customers := rg.Group("/customers")
	customers.Use(middleware.AuthMiddleware(cfg))
	{
		customers.GET("", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionRead), deps.Forecast.GetCustomers)
		customers.GET("/:id", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionRead), deps.Forecast.GetCustomer)
		customers.POST("", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionCreate), deps.Forecast.CreateCustomer)
		customers.PUT("/:id", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionUpdate), deps.Forecast.UpdateCustomer)
		customers.DELETE("/:id", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionDelete), deps.Forecast.DeleteCustomer)
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionRead), deps.Forecast.GetOrders)
		orders.POST("", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionCreate), deps.Forecast.CreateOrder)
		orders.PUT("/:id", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionUpdate), deps.Forecast.UpdateOrder)
		orders.DELETE("/:id", middleware.RequirePermission(eval, user.ResourceCustomers, user.ActionDelete), deps.Forecast.DeleteOrder)
	}

	// Demand forecasts
	forecasts := rg.Group("/forecasts")
	forecasts.Use(middleware.AuthMiddleware(cfg))
	forecasts.Use(middleware.RequirePermission(eval, user.ResourceForecasts, user.ActionRead))
	{
		forecasts.GET("/customers", deps.Forecast.GetDemandForecasts)
		forecasts.GET("/customers/:id", deps.Forecast.GetDemandForecast)
		forecasts.GET("/categories", deps.Forecast.GetCategoryPredictions)
		forecasts.GET("/segments", deps.Forecast.GetCustomerSegments)
	}
}
