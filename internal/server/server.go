package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/etuitionbd/webclient/internal/pkg/config"
	"github.com/etuitionbd/webclient/internal/pkg/storage"
)

// Server holds the long-lived resources behind the HTTP front: the persistent
// browser-side store and the configured router.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	kv     *storage.SQLiteKV
	router http.Handler
}

// New opens the persistent store and returns a server ready for a router.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	kv, err := storage.NewSQLiteKV(cfg.Session.StoragePath, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Persistent store opened", zap.String("path", cfg.Session.StoragePath))

	return &Server{
		cfg:    cfg,
		logger: logger,
		kv:     kv,
	}, nil
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// Storage returns the persistent key-value store.
func (s *Server) Storage() *storage.SQLiteKV {
	return s.kv
}

// GetLogger returns the logger instance
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// GetConfig returns the configuration
func (s *Server) GetConfig() *config.Config {
	return s.cfg
}

// Close closes all server resources
func (s *Server) Close() {
	if s.kv != nil {
		if err := s.kv.Close(); err != nil {
			s.logger.Warn("Closing persistent store failed", zap.Error(err))
		}
	}
}
