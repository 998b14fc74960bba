// Package api serves prayer times, monthly calendars, night markers and the
// qibla over HTTP as JSON.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/smokyabdulrahman/adhan/internal/config"
)

// Server bundles the router and the defaults requests fall back to.
type Server struct {
	cfg      config.ServerConfig
	defaults config.Config
	engine   *gin.Engine
	now      func() time.Time
}

// New constructs a server with routes and middleware. defaults supplies the
// method, madhab, high-latitude rule, adjustments and time zone for requests
// that do not name their own.
func New(cfg config.ServerConfig, defaults config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(requestLogger())
	engine.Use(corsMiddleware(cfg))

	server := &Server{cfg: cfg, defaults: defaults, engine: engine, now: time.Now}
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("api listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("api shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, newResponse(http.StatusOK, "ok"))
	})

	v1 := s.engine.Group("/api/v1")
	v1.GET("/timings", s.handleTimings)
	v1.GET("/calendar", s.handleCalendar)
	v1.GET("/sunnah", s.handleSunnah)
	v1.GET("/qibla", s.handleQibla)
	v1.GET("/methods", s.handleMethods)

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, newResponse(http.StatusNotFound, "no such endpoint"))
	})
}
