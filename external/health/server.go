package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	livenessBody    = "Bot Practicas Trabajo activo"
	shutdownTimeout = 5 * time.Second
)

// Server is a small HTTP listener bound to one port.
type Server struct {
	name string
	srv  *http.Server
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// NewLivenessServer answers uptime monitors on "/" and nothing else.
func NewLivenessServer(port int) *Server {
	r := newEngine()
	r.GET("/", livenessHandler)
	r.HEAD("/", livenessHandler)
	return newServer("liveness", port, r)
}

// NewMetricsServer exposes a Prometheus handler on "/metrics".
func NewMetricsServer(port int, metrics http.Handler) *Server {
	r := newEngine()
	r.GET("/metrics", gin.WrapH(metrics))
	return newServer("metrics", port, r)
}

func newServer(name string, port int, handler http.Handler) *Server {
	return &Server{
		name: name,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func livenessHandler(c *gin.Context) {
	c.String(http.StatusOK, livenessBody)
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "server", s.name, "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", s.name, err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", s.name, err)
	}
	slog.Info("http server stopped", "server", s.name)
	return nil
}
