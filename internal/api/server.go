// Package api exposes classification sessions and the marketplace over JSON HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/wastewise/internal/catalog"
	"github.com/Veraticus/wastewise/internal/marketplace"
	"github.com/Veraticus/wastewise/internal/session"
	"github.com/gin-gonic/gin"
)

// BasePath is the prefix for every route.
const BasePath = "/api/v1"

// Server holds the handler dependencies.
type Server struct {
	catalog  *catalog.Catalog
	registry *session.Registry
	market   *marketplace.Market
}

// NewServer creates a server. market may be nil, which disables the marketplace routes.
func NewServer(cat *catalog.Catalog, registry *session.Registry, market *marketplace.Market) *Server {
	return &Server{
		catalog:  cat,
		registry: registry,
		market:   market,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	v1 := router.Group(BasePath)
	{
		v1.GET("/catalog", s.getCatalog)

		v1.POST("/sessions", s.createSession)
		v1.GET("/sessions/:id", s.getSession)
		v1.DELETE("/sessions/:id", s.deleteSession)
		v1.POST("/sessions/:id/sample", s.provideSample)
		v1.POST("/sessions/:id/classify", s.classify)
		v1.POST("/sessions/:id/reset", s.resetSession)

		if s.market != nil {
			v1.POST("/sessions/:id/listing", s.createListing)
			v1.GET("/listings", s.getListings)
			v1.POST("/listings/:id/sell", s.sellListing)
			v1.GET("/trades", s.getTrades)
		}
	}

	return router
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API listening", "addr", addr, "base_path", BasePath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("Request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
