package actions

import (
	"github.com/playwright-community/playwright-go"
)

// BrowserActions wraps whole-page operations
type BrowserActions struct{}

// NewBrowserActions - creates browser actions
func NewBrowserActions() *BrowserActions {
	return &BrowserActions{}
}

// NavigateToURL - navigates the page to url and waits for the load event.
// Relative urls resolve against the context's base url.
func (a *BrowserActions) NavigateToURL(page playwright.Page, url string) error {
	_, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	return err
}

// ClosePage - closes the page
func (a *BrowserActions) ClosePage(page playwright.Page) error {
	return page.Close()
}
