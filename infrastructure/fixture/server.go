// Package fixture serves a local reproduction of the kanban board markup
// so the suite can run without the real application.
package fixture

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

//go:embed assets
var assets embed.FS

// CompleteBoardPath renders a board where every card outside the first column is complete
const CompleteBoardPath = "/?board=complete"

// LegacyBoardPath renders counters without data attributes and some subtasks with hidden text
const LegacyBoardPath = "/?board=legacy"

// PlaygroundPath renders plain form controls
const PlaygroundPath = "/playground.html"

type Server struct {
	listener net.Listener
	server   *http.Server
	logger   *logrus.Logger
	done     chan struct{}
}

// Start - serves the fixture board on addr, use "127.0.0.1:0" for a random port
func Start(addr string, logger *logrus.Logger) (*Server, error) {
	root, err := fs.Sub(assets, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture assets: %w", err)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := &Server{
		listener: listener,
		logger:   logger,
		done:     make(chan struct{}),
	}
	s.server = &http.Server{
		Handler:           s.logRequests(http.FileServer(http.FS(root))),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		defer close(s.done)
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("fixture server stopped")
		}
	}()

	logger.WithField("url", s.URL()).Debug("fixture board listening")
	return s, nil
}

// URL - returns the base url of the fixture board
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String()
}

// Shutdown - stops accepting requests and waits for the serve loop to exit
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return err
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Trace("fixture request")
		next.ServeHTTP(w, r)
	})
}
