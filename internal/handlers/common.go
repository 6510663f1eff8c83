package handlers

import (
	"errors"
	"net/http"

	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds the shared dependencies used across handlers.
type CommonServices struct {
	repo     interfaces.AutomationRepository
	setup    SetupService
	registry interfaces.ChainRegistry
	logger   *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices.
func NewCommonServices(repo interfaces.AutomationRepository, setup SetupService, registry interfaces.ChainRegistry) *CommonServices {
	return &CommonServices{
		repo:     repo,
		setup:    setup,
		registry: registry,
		logger:   logger.Log,
	}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError is a helper function that combines logging and error response.
// It logs the error with the given message and sends a JSON error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleStoreError maps repository errors to HTTP status codes.
func handleStoreError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, interfaces.ErrAutomationNotFound):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
