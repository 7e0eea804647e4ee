package http

import (
	"context"
	"net/http"
	"time"

	"firebase.google.com/go/v4/db"
	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Database  string    `json:"database,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	database    *db.Client
}

func NewHealthHandler(serviceName, version string, database *db.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		database:    database,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.database != nil {
		probeCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		// Shallow read keeps the probe cheap regardless of collection size.
		var keys map[string]interface{}
		if err := h.database.NewRef("users").GetShallow(probeCtx, &keys); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Database:  dbStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
