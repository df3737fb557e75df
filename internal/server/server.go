package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-profile-keeper/internal/config"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger

	// listen is net.Listen outside tests.
	listen func(network, address string) (net.Listener, error)
}

func NewServer(handler http.Handler, cfg config.DevAPIConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandlerProvided
	}
	if cfg.Address == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg.Address, logger),
		address:    cfg.Address,
		logger:     logger,
		listen:     net.Listen,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ln, err := s.listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
		serveErr <- s.httpServer.RunServer(ln)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.httpServer.Shutdown()
	if err = <-serveErr; err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
