package handlers

import (
	"net/http"

	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/api/responses"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports server liveness and the chains the delegation
// contracts are deployed on.
type HealthHandler struct {
	registry interfaces.ChainRegistry
	version  string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(registry interfaces.ChainRegistry, version string) *HealthHandler {
	return &HealthHandler{
		registry: registry,
		version:  version,
	}
}

// Health returns the health status and supported chains.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:          "ok",
		Version:         h.version,
		SupportedChains: h.registry.SupportedChains(),
	})
}
