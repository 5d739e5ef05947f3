package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/config"
	"github.com/pageza/foodfight/backend/internal/middleware"
	"github.com/pageza/foodfight/backend/internal/router"
	"github.com/pageza/foodfight/backend/internal/service"
)

const shutdownTimeout = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	http    *http.Server
	catalog service.ICatalogService
	logger  *zap.Logger
}

// New creates a new server instance. limiter may be nil.
func New(cfg *config.Config, catalogService service.ICatalogService, limiter *middleware.RateLimiter, logger *zap.Logger) *Server {
	r := router.SetupRouter(catalogService, cfg.CORSOrigins, limiter, logger)

	return &Server{
		router:  r,
		catalog: catalogService,
		logger:  logger,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the routes for in-process use
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is done, then shuts down
// gracefully. The catalog's background rotation runs for as long as the server.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.catalog.Start(ctx)
	defer s.catalog.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
