package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const envPrefix = "KANBAN"

// DefaultLoadTimeout is how long to wait for the page "load" state when nothing else is configured
const DefaultLoadTimeout = 30 * time.Second

var supportedBrowsers = []string{"chromium", "firefox", "webkit"}

// Config holds the per-run settings of the suite
type Config struct {
	BaseURL             string        `envconfig:"BASE_URL" default:"http://localhost:5173"`
	Browser             string        `envconfig:"BROWSER" default:"chromium"`
	Headless            bool          `envconfig:"HEADLESS" default:"true"`
	SlowMo              time.Duration `envconfig:"SLOW_MO" default:"0s"`
	LoadTimeout         time.Duration `envconfig:"LOAD_TIMEOUT" default:"30s"`
	ViewportWidth       int           `envconfig:"VIEWPORT_WIDTH" default:"1280"`
	ViewportHeight      int           `envconfig:"VIEWPORT_HEIGHT" default:"720"`
	ExecutablePath      string        `envconfig:"EXECUTABLE_PATH"`
	ReportDir           string        `envconfig:"REPORT_DIR" default:"test-results"`
	ScreenshotOnFailure bool          `envconfig:"SCREENSHOT_ON_FAILURE" default:"true"`
	BoardPath           string        `envconfig:"BOARD_PATH" default:"/"`
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and then KANBAN_* environment variables
func Load(envFiles ...string) (Config, error) {
	// .env file is optional
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to read environment")
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings that would otherwise fail deep inside a run
func (c Config) Validate() error {
	if !lo.Contains(supportedBrowsers, c.Browser) {
		return errors.Errorf("unsupported browser %q, expected one of %v", c.Browser, supportedBrowsers)
	}
	if c.LoadTimeout <= 0 {
		return errors.Errorf("load timeout must be positive, got %s", c.LoadTimeout)
	}
	if c.SlowMo < 0 {
		return errors.Errorf("slow-mo must not be negative, got %s", c.SlowMo)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return errors.Errorf("invalid viewport %dx%d", c.ViewportWidth, c.ViewportHeight)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Wrapf(err, "invalid base url %q", c.BaseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.Errorf("base url %q must be absolute", c.BaseURL)
	}
	if !strings.HasPrefix(c.BoardPath, "/") {
		return errors.Errorf("board path %q must start with /", c.BoardPath)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log level")
	}
	return nil
}

// SlowMoMillis returns the inter-action delay in the unit playwright expects
func (c Config) SlowMoMillis() float64 {
	return float64(c.SlowMo.Milliseconds())
}

// Level returns the configured logrus level, falling back to info
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
