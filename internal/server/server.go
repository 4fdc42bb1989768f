package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP front of the dashboard.
type Server struct {
	Addr   string
	Router *gin.Engine
	http   *http.Server
}

// New builds a server with all routes registered.
func New(addr string, h *Handlers) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router, h)
	return &Server{
		Addr:   addr,
		Router: router,
		http:   &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 10 * time.Second},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] http server listening on %s", s.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Println("[INFO] shutting down http server")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
