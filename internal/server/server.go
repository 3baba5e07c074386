package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/flavorgen/backend/config"
	"github.com/pageza/flavorgen/backend/internal/api"
	"github.com/pageza/flavorgen/backend/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, redisClient *redis.Client) (*Server, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{
			"Content-Disposition",
			middleware.RequestIDHeader,
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		MaxAge: 12 * time.Hour,
	}))

	if err := api.SetupAPI(router, cfg, redisClient); err != nil {
		return nil, err
	}

	return &Server{router: router, cfg: cfg}, nil
}

// Router exposes the underlying engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    net.JoinHostPort(s.cfg.ServerHost, s.cfg.ServerPort),
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
