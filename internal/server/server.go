// file: internal/server/server.go
// version: 2.0.0
// guid: 4c5d6e7f-8a9b-0c1d-2e3f-4a5b6c7d8e9f

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KarelPeeters123/rtorrent-webclient/internal/config"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/metrics"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/server/middleware"
	"github.com/KarelPeeters123/rtorrent-webclient/internal/transmission"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	torrents   *TorrentService
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// GetDefaultServerConfig returns the default server configuration
func GetDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         "5000",
		Host:         "0.0.0.0",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new server instance wired from the application
// configuration: the delivery orchestrator with both channels resolved, and
// the command-line listing channel.
func NewServer() *Server {
	cfg := &config.AppConfig
	svc := NewTorrentService(
		transmission.NewDelivererFromConfig(cfg),
		transmission.NewRemote(cfg),
	)
	return newServer(svc, cfg)
}

// newServer assembles the router around an explicit service; tests inject
// fake channels through here.
func newServer(svc *TorrentService, cfg *config.Config) *Server {
	router := gin.New()

	// Set up middleware
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	if cfg.EnableCORS {
		router.Use(corsMiddleware())
	}
	router.Use(middleware.NewIPRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst).Middleware())
	router.Use(middleware.MaxRequestBodySize(cfg.MaxBodyBytes))
	router.Use(metricsMiddleware())

	// Register metrics (idempotent)
	metrics.Register()

	server := &Server{
		router:   router,
		torrents: svc,
	}

	server.setupRoutes()

	return server
}

// Start starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Start(cfg ServerConfig) error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	// Start server in a goroutine
	go func() {
		log.Printf("[INFO] Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("[INFO] Server exited")
	return nil
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Liveness probe (both paths for compatibility)
	s.router.GET("/", s.torrents.HandlePing)
	s.router.GET("/ping", s.torrents.HandlePing)

	// Torrent operations
	s.router.POST("/add", s.torrents.HandleAdd)
	s.router.GET("/list", s.torrents.HandleList)
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// metricsMiddleware counts requests per method, route and status.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.IncHTTPRequest(c.Request.Method, path, c.Writer.Status())
	}
}
