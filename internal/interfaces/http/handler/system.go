package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and service info endpoints
type SystemHandler struct {
	BaseHandler
	serviceName string
	startedAt   time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(serviceName string) *SystemHandler {
	return &SystemHandler{
		serviceName: serviceName,
		startedAt:   time.Now(),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"service": h.serviceName,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
