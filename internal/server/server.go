// Package server exposes the directory pipeline over HTTP for the
// presentation layer.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bridgeit/directory/internal/application/handlers"
	"github.com/bridgeit/directory/internal/infrastructure/config"
)

// Server wires the application handlers into a gin engine.
type Server struct {
	cfg       *config.Config
	log       *logrus.Logger
	directory *handlers.DirectoryHandler
	item      *handlers.ItemHandler
	match     *handlers.MatchHandler
	engine    *gin.Engine
}

// New creates a server with all routes registered.
func New(cfg *config.Config, log *logrus.Logger, directory *handlers.DirectoryHandler, item *handlers.ItemHandler, match *handlers.MatchHandler) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:       cfg,
		log:       log,
		directory: directory,
		item:      item,
		match:     match,
		engine:    gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestID(), requestLogger(log))
	s.registerRoutes()
	return s
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.WithField("addr", s.cfg.Server.Addr).Info("listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
