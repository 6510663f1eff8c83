package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetCorrelationID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(middleware.CorrelationIDHeader))
}

func TestCorrelationIDMiddleware_EchoesProvidedID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())

	var fromRequestCtx string
	router.GET("/ping", func(c *gin.Context) {
		fromRequestCtx = middleware.CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.CorrelationIDHeader, "test-correlation-id")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "test-correlation-id", w.Header().Get(middleware.CorrelationIDHeader))
	assert.Equal(t, "test-correlation-id", fromRequestCtx)
}

func TestGetCorrelationID_MissingReturnsEmpty(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, middleware.GetCorrelationID(c))
}
