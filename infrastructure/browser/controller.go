package browser

import (
	"fmt"
	"strings"

	"kanban_e2e/domain/interfaces"
	"kanban_e2e/infrastructure/actions"
	"kanban_e2e/infrastructure/config"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

type session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	logger  *logrus.Logger
}

// NewSession - starts playwright, launches the configured browser and opens one page
func NewSession(cfg config.Config, logger *logrus.Logger) (interfaces.Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	s := &session{pw: pw, logger: logger}

	browserType, err := s.browserType(cfg.Browser)
	if err != nil {
		s.Close()
		return nil, err
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMoMillis()),
	}
	if cfg.ExecutablePath != "" {
		launchOptions.ExecutablePath = playwright.String(cfg.ExecutablePath)
	}

	s.browser, err = browserType.Launch(launchOptions)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	s.context, err = s.browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(cfg.BaseURL),
		Viewport: &playwright.Size{
			Width:  cfg.ViewportWidth,
			Height: cfg.ViewportHeight,
		},
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	s.page, err = s.context.NewPage()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"browser":  cfg.Browser,
		"headless": cfg.Headless,
		"slow_mo":  cfg.SlowMo,
		"base_url": cfg.BaseURL,
	}).Debug("browser session started")

	return s, nil
}

func (s *session) browserType(name string) (playwright.BrowserType, error) {
	switch name {
	case "chromium", "":
		return s.pw.Chromium, nil
	case "firefox":
		return s.pw.Firefox, nil
	case "webkit":
		return s.pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser: %s", name)
	}
}

// Page - returns the page owned by the session
func (s *session) Page() playwright.Page {
	return s.page
}

// Screenshot - takes a full-page screenshot of the current page
func (s *session) Screenshot(path string) error {
	if s.page == nil || s.page.IsClosed() {
		return fmt.Errorf("page is closed")
	}
	_, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

// Close - closes the page, context and browser and stops playwright.
// Errors caused by targets that are already closed are ignored.
func (s *session) Close() error {
	var closeErr error

	if s.page != nil {
		if err := actions.NewBrowserActions().ClosePage(s.page); err != nil && !isClosedErr(err) {
			closeErr = fmt.Errorf("failed to close page: %w", err)
		}
		s.page = nil
	}

	if s.context != nil {
		if err := s.context.Close(); err != nil && !isClosedErr(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close context: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close context: %w", err)
			}
		}
		s.context = nil
	}

	if s.browser != nil {
		if err := s.browser.Close(); err != nil && !isClosedErr(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to stop playwright: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to stop playwright: %w", err)
			}
		}
		s.pw = nil
	}

	return closeErr
}

func isClosedErr(err error) bool {
	if errors.Is(err, playwright.ErrTargetClosed) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "closed") || strings.Contains(errStr, "target closed")
}
