// Package browsertest starts a fixture board and a real browser session for tests.
// Tests are skipped in -short mode and when the Playwright driver cannot start
// (install it with `kanban-e2e install`).
package browsertest

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kanban_e2e/domain/interfaces"
	"kanban_e2e/infrastructure/browser"
	"kanban_e2e/infrastructure/config"
	"kanban_e2e/infrastructure/fixture"

	"github.com/sirupsen/logrus"
)

// Env is a browser session pointed at a fresh fixture board
type Env struct {
	Session interfaces.Session
	Config  config.Config
	Logger  *logrus.Logger
	BaseURL string
}

// New starts the fixture server and a browser session. Both are released on test cleanup.
func New(t *testing.T) *Env {
	t.Helper()

	if testing.Short() {
		t.Skip("browser tests are skipped in short mode")
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if os.Getenv("KANBAN_TEST_VERBOSE") != "" {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}

	server, err := fixture.Start("127.0.0.1:0", logger)
	if err != nil {
		t.Fatalf("failed to start fixture board: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.env"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	cfg.BaseURL = server.URL()
	cfg.ReportDir = t.TempDir()

	session, err := browser.NewSession(cfg, logger)
	if err != nil {
		t.Skipf("playwright is not available: %v", err)
	}
	t.Cleanup(func() {
		_ = session.Close()
	})

	return &Env{
		Session: session,
		Config:  cfg,
		Logger:  logger,
		BaseURL: server.URL(),
	}
}

// Open navigates the session's page to path on the fixture board and waits for load
func (e *Env) Open(t *testing.T, path string) {
	t.Helper()

	if _, err := e.Session.Page().Goto(e.BaseURL + path); err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
}
