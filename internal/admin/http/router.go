package http

import (
	"github.com/gin-gonic/gin"

	"github.com/linguahub/admin-console-backend/internal/admin/middleware"
)

// Register attaches the admin routes to the given router group. Every route
// except login sits behind the bearer gate.
func (h *Handler) Register(rg *gin.RouterGroup, verifier middleware.TokenVerifier) {
	rg.POST("/login", h.Login)

	authed := rg.Group("")
	authed.Use(middleware.BearerAuth(verifier))

	authed.POST("/users", h.CreateUser)
	authed.GET("/users", h.ListUsers)
	authed.PUT("/users/:userId", h.UpdateUser)
	authed.DELETE("/users/:userId", h.DeleteUser)
	authed.POST("/logout", h.Logout)
	authed.POST("/reset-password", h.ResetPassword)
	authed.GET("/usage", h.Usage)
	authed.GET("/usage/top-users", h.TopUsers)
}
