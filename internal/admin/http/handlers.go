package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/linguahub/admin-console-backend/internal/admin/domain"
)

// CreateUser registers a new account and writes its default profile record.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	uid, err := h.adminService.CreateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User created successfully", "userId": uid})
}

// ListUsers returns the whole record collection keyed by user id. Search and
// filtering happen client-side.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser merges a partial field patch into a stored record.
func (h *Handler) UpdateUser(c *gin.Context) {
	uid := c.Param("userId")

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := h.adminService.UpdateUser(c.Request.Context(), uid, patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// DeleteUser removes the identity entry and the profile record.
func (h *Handler) DeleteUser(c *gin.Context) {
	uid := c.Param("userId")

	if err := h.adminService.DeleteUser(c.Request.Context(), uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// Login issues a console token for admin accounts only.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	token, user, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin privileges required."})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout acknowledges the client-side token discard. No token state exists
// server-side to invalidate.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ResetPassword applies a temporary password and hands it to the mailer.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := h.adminService.ResetPassword(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent successfully"})
}

// Usage returns the 7-day daily-login report.
func (h *Handler) Usage(c *gin.Context) {
	entries, err := h.adminService.Usage(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch usage statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dailyLoginUsage": entries})
}

const topUsersLimit = 10

// TopUsers returns the login-count leaderboard over the report window.
func (h *Handler) TopUsers(c *gin.Context) {
	ranked, err := h.adminService.TopUsers(c.Request.Context(), topUsersLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch usage statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"topUsers": ranked})
}
