package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bagdasarian/tuesday/internal/config"
	"github.com/bagdasarian/tuesday/internal/handler"
)

type Server struct {
	logger zerolog.Logger
	server *http.Server
}

func NewServer(h *handler.Handler, cfg config.HTTPConfig, logger zerolog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      NewRouter(h, cfg, logger),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("server stopped")
	return nil
}
