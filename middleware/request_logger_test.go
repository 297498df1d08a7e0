package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func captureLogs() *bytes.Buffer {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))
	return &buf
}

func TestRequestLoggerMiddleware(t *testing.T) {
	buf := captureLogs()

	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.GET("/api/stats", View("dashboard"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"total": 0})
	})
	router.GET("/api/counts/:field", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field"})
	})
	router.GET("/api/contracts", func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data not loaded"})
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		logLevel       string
	}{
		{"success request", "/api/stats", http.StatusOK, "INFO"},
		{"client error", "/api/counts/tenant", http.StatusBadRequest, "WARN"},
		{"server error", "/api/contracts", http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			logOutput := buf.String()
			if !strings.Contains(logOutput, "request completed") {
				t.Error("Expected 'request completed' in log")
			}
			if !strings.Contains(logOutput, tt.path) {
				t.Errorf("Expected path '%s' in log", tt.path)
			}
			if !strings.Contains(logOutput, tt.logLevel) {
				t.Errorf("Expected log level '%s' in log", tt.logLevel)
			}
			if !strings.Contains(logOutput, "request_id=") {
				t.Error("Expected request_id in log")
			}
		})
	}
}

func TestRequestLoggerWithQuery(t *testing.T) {
	buf := captureLogs()

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/api/contracts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rows": []string{}})
	})

	req := httptest.NewRequest("GET", "/api/contracts?search=nursing&degree=all", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if !strings.Contains(buf.String(), "query") {
		t.Error("Expected query parameters in log")
	}
}
