package server

import (
	apisetup "agent-server/internal/api"
	"agent-server/internal/bootstrap"
	"agent-server/internal/config"
	"agent-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// in-flight requests get this long to finish on shutdown
const shutdownTimeout = 5 * time.Second

// local dev servers allowed outside production
var devOrigins = []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8080"}

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
	// closed with the serve error, if any, once the listener stops
	serveErr chan error
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

func corsConfig(env, webAppURI string) cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"}
	corsConfig.AllowOrigins = []string{webAppURI}

	if env != "production" {
		for _, origin := range devOrigins {
			if origin != webAppURI {
				corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, origin)
			}
		}
	}
	return corsConfig
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	if s.config.Log.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	s.router = gin.New()

	s.router.Use(cors.New(corsConfig(s.config.Log.Env, s.config.Server.WebAppURI)))
	s.router.Use(observability.Middleware(s.logger))
	if s.deps.Metrics != nil {
		s.router.Use(s.deps.Metrics.Middleware())
		s.router.GET("/metrics", s.deps.Metrics.Handler())
	}

	rootRouter := s.router.Group("/")
	api := apisetup.New(rootRouter, s.deps.Handlers, &s.deps.Store)
	api.RegisterRoutes()
}

// Handler returns the configured router. Setup must run first.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the port and serves in the background. Bind failures are
// returned; later serve failures surface from WaitForShutdown.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.serve(ctx, listener)
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.serveErr = make(chan error, 1)

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server listening on %s", listener.Addr()))
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr <- err
		}
		close(s.serveErr)
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT, SIGTERM, ctx cancellation or a serve
// failure, then drains in-flight requests and releases dependencies.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-sigCtx.Done():
		s.logger.Info(ctx, "Shutting down server...")
	case serveErr = <-s.serveErr:
		s.logger.Error(ctx, "server stopped unexpectedly", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.deps.Cleanup(shutdownCtx)
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.deps.Cleanup(shutdownCtx)

	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
