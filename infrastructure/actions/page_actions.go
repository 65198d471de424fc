package actions

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// DefaultPageLoadTimeout is used by WaitForPageLoad when no timeout is given
const DefaultPageLoadTimeout = 30 * time.Second

// PageActions wraps explicit page waits
type PageActions struct{}

// NewPageActions - creates page actions
func NewPageActions() *PageActions {
	return &PageActions{}
}

// WaitForPageLoad - waits until the page reaches the "load" state.
// A non-positive timeout means DefaultPageLoadTimeout. On expiry the error wraps playwright.ErrTimeout.
func (a *PageActions) WaitForPageLoad(page playwright.Page, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultPageLoadTimeout
	}
	return page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateLoad,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}
