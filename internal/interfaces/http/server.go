// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/interfaces/http/middleware"
	"github.com/your-org/pantry-backend/internal/interfaces/http/routes"
)

// Pinger reports whether the persistence backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	logger      *logrus.Logger
	gin         *gin.Engine
	httpServer  *http.Server
	deps        routes.Dependencies
	redisClient *redis.Client
	storage     Pinger
	startedAt   time.Time
}

// NewServer creates a new HTTP server instance and registers its routes.
// redisClient may be nil, which disables rate limiting.
func NewServer(deps routes.Dependencies, redisClient *redis.Client, storage Pinger) *Server {
	s := &Server{
		config:      deps.Config,
		logger:      deps.Logger,
		deps:        deps,
		redisClient: redisClient,
		storage:     storage,
		startedAt:   time.Now(),
	}

	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.gin = gin.New()
	if len(s.config.Security.TrustedProxies) > 0 {
		if err := s.gin.SetTrustedProxies(s.config.Security.TrustedProxies); err != nil {
			s.logger.WithError(err).Warn("Invalid trusted proxies, ignoring")
		}
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.WithFields(logrus.Fields{
		"port":     s.config.Server.Port,
		"base_url": fmt.Sprintf("http://localhost:%s/api/v1", s.config.Server.Port),
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())
	s.gin.Use(middleware.RateLimit(s.config, s.redisClient, s.logger))
	s.gin.Use(middleware.RequestSizeLimit(s.config.Server.MaxBodyBytes))
	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, s.deps)

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"pantry":      "/api/v1/pantry",
					"categories":  "/api/v1/categories",
					"cart":        "/api/v1/cart",
					"budget":      "/api/v1/budget",
					"suggestions": "/api/v1/suggestions",
				},
			})
		})
	}
}

// healthCheck pings the persistence backend
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if s.storage != nil {
		if err := s.storage.Ping(ctx); err != nil {
			s.logger.WithError(err).Warn("Persistence health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "persistence ping failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
		"backend":     s.config.Persistence.Backend,
	})
}

// readinessCheck reports whether the pantry was loaded and saves are up to date
func (s *Server) readinessCheck(c *gin.Context) {
	body := gin.H{
		"status":        "ready",
		"timestamp":     time.Now().UTC(),
		"uptime":        time.Since(s.startedAt).String(),
		"pending_save":  s.deps.Kitchen.Pending(),
		"suggestions":   s.deps.Suggestions.Enabled(),
		"pantry_loaded": s.deps.Kitchen.LoadError() == nil,
	}
	c.JSON(http.StatusOK, body)
}
