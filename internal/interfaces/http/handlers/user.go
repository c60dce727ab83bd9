// internal/interfaces/http/handlers/user.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/logistics-backend/internal/domain/audit"
	"github.com/your-org/logistics-backend/internal/domain/user"
	"github.com/your-org/logistics-backend/internal/interfaces/http/middleware"
)

// UserHandler handles user account management endpoints
type UserHandler struct {
	userService  *user.Service
	auditService *audit.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *user.Service, auditService *audit.Service) *UserHandler {
	return &UserHandler{
		userService:  userService,
		auditService: auditService,
	}
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users := h.userService.List()

	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"data":    users,
		"total":   len(users),
	})
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	account, err := h.userService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User retrieved successfully",
		"data":    account,
	})
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	account, err := h.userService.Create(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(actorID, audit.ActionCreate, "users", account.ID, "Created user "+account.Username)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"data":    account,
	})
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	account, err := h.userService.Update(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	h.auditService.Append(actorID, audit.ActionUpdate, "users", account.ID, "Updated user "+account.Username)

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"data":    account,
	})
}

// DeleteUser handles DELETE /users/:id. Users cannot delete themselves.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	actorID, _ := middleware.GetUserIDFromContext(c)
	if actorID == id {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot delete your own account",
		})
		return
	}

	if err := h.userService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.auditService.Append(actorID, audit.ActionDelete, "users", id, "Deleted user account")

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}
