// Package server exposes the chef directory over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chefguide/internal/config"
	"chefguide/internal/logger"
)

// Server is the HTTP API server.
type Server struct {
	cfg    config.ServerConfig
	log    *logger.Logger
	router *gin.Engine
}

// New builds the router for src.
func New(cfg config.ServerConfig, src Source, log *logger.Logger) (*Server, error) {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log), cors.New(corsConfig(cfg.CORSOrigins)))

	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	NewHandler(src).RegisterRoutes(&router.RouterGroup)

	return &Server{cfg: cfg, log: log, router: router}, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is done, then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("HTTP API listening", "addr", s.cfg.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP API")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "If-None-Match"},
		ExposeHeaders: []string{"Content-Length", "ETag"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
