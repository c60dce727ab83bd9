// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/logistics-backend/internal/config"
	"github.com/your-org/logistics-backend/internal/domain/audit"
	"github.com/your-org/logistics-backend/internal/domain/user"
	"github.com/your-org/logistics-backend/internal/infrastructure/database/redis"
	"github.com/your-org/logistics-backend/internal/interfaces/http/middleware"
	"github.com/your-org/logistics-backend/internal/pkg/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	userService  *user.Service
	auditService *audit.Service
	jwtManager   *auth.JWTManager
	sessions     *redis.SessionStore
	config       *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users *user.Service, auditLog *audit.Service, sessions *redis.SessionStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  users,
		auditService: auditLog,
		jwtManager:   auth.NewJWTManager(cfg),
		sessions:     sessions,
		config:       cfg,
	}
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	account, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(account.ID, account.Username, string(account.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	refreshToken, tokenID, err := h.jwtManager.GenerateRefreshToken(account.ID, account.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate refresh token",
		})
		return
	}

	if err := h.sessions.Save(c.Request.Context(), tokenID, account.ID, h.config.JWT.RefreshTokenExpiry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	h.auditService.Append(account.ID, audit.ActionLogin, "auth", account.ID, "User logged in")

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"user":          account,
		},
	})
}

// RefreshToken handles token refresh with session rotation
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	claims, err := h.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	userID, err := h.sessions.Resolve(c.Request.Context(), claims.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Session expired, please log in again",
		})
		return
	}

	account, err := h.userService.Get(userID)
	if err != nil || !account.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Account no longer available",
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(account.ID, account.Username, string(account.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	refreshToken, tokenID, err := h.jwtManager.GenerateRefreshToken(account.ID, account.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate refresh token",
		})
		return
	}

	// Rotate the session so the old refresh token cannot be replayed
	if err := h.sessions.Revoke(c.Request.Context(), claims.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to rotate session",
		})
		return
	}
	if err := h.sessions.Save(c.Request.Context(), tokenID, account.ID, h.config.JWT.RefreshTokenExpiry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"data": gin.H{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
	})
}

// Logout revokes the refresh-token session
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}

	// Body is optional; a missing token still produces a logout audit entry
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		if claims, err := h.jwtManager.ValidateRefreshToken(req.RefreshToken); err == nil {
			_ = h.sessions.Revoke(c.Request.Context(), claims.ID)
		}
	}

	if userID, exists := middleware.GetUserIDFromContext(c); exists {
		h.auditService.Append(userID, audit.ActionLogout, "auth", userID, "User logged out")
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetProfile gets the current user's profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	profile, err := h.userService.Get(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// ValidateToken validates if the provided token is still valid
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	// If we reach here, the middleware already validated the token
	userID, _ := middleware.GetUserIDFromContext(c)
	username, _ := middleware.GetUsernameFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user": gin.H{
			"id":       userID,
			"username": username,
			"role":     role,
		},
	})
}
