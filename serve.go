package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/AnTengye/accreditation/config"
	"github.com/AnTengye/accreditation/handler"
	"github.com/AnTengye/accreditation/middleware"
	"github.com/AnTengye/accreditation/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long: `Load the contract data set and serve the dashboard views over HTTP.
If the data set cannot be loaded the server still starts and every data
route answers 503.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	var dash *service.Dashboard
	store, err := loadStore(cmd.Context(), cfg)
	if err != nil {
		slog.Error("failed to load contract data set, serving without data", "error", err)
	} else {
		dash, err = service.NewDashboard(store,
			service.WithLimits(cfg.Dashboard.TopUniversities, cfg.Dashboard.TopDepartmentUniversities))
		if err != nil {
			return err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(cfg, dash)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server exited gracefully")
	return nil
}

func newRouter(cfg *config.Config, dash *service.Dashboard) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(&cfg.CORS))
	router.Use(middleware.NoCache())
	router.Use(middleware.RateLimitFromConfig(&cfg.RateLimit))

	if dir := cfg.Server.StaticDir; dir != "" {
		slog.Info("serving static files", "directory", dir)
		router.Static("/static", dir)
		router.StaticFile("/", filepath.Join(dir, "index.html"))
		router.StaticFile("/index.html", filepath.Join(dir, "index.html"))
		router.StaticFile("/app.js", filepath.Join(dir, "app.js"))
		router.StaticFile("/styles.css", filepath.Join(dir, "styles.css"))
	}

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"data":      dash != nil,
		}
		if dash != nil {
			status["contracts"] = dash.Count()
		}
		c.JSON(http.StatusOK, status)
	})

	handler.NewDashboardHandler(dash, cfg).RegisterRoutes(router.Group("/api"))
	return router
}
