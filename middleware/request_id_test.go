package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnTengye/accreditation/pkg/logger"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		fromCtx, _ := c.Request.Context().Value(logger.RequestIDKey).(string)
		if fromCtx != GetRequestID(c) {
			t.Errorf("Expected request context id %q to match gin id %q", fromCtx, GetRequestID(c))
		}
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
}

func TestRequestIDMiddlewareWithExistingID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	existingID := "existing-request-id-123"
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, existingID)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != existingID {
		t.Errorf("Expected request ID '%s', got '%s'", existingID, got)
	}
}

func TestGetRequestIDEmpty(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if requestID := GetRequestID(c); requestID != "" {
		t.Errorf("Expected empty string, got '%s'", requestID)
	}
}

func TestViewMiddleware(t *testing.T) {
	router := gin.New()
	router.GET("/timeline", View("timeline"), func(c *gin.Context) {
		fromCtx, _ := c.Request.Context().Value(logger.ViewKey).(string)
		c.JSON(http.StatusOK, gin.H{"view": GetView(c), "ctx": fromCtx})
	})

	req := httptest.NewRequest("GET", "/timeline", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Body.String() != `{"ctx":"timeline","view":"timeline"}` {
		t.Errorf("Unexpected body %s", w.Body.String())
	}
}
