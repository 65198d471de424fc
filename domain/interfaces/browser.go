package interfaces

import "github.com/playwright-community/playwright-go"

// Session defines one browser tab owned by a scenario run
type Session interface {
	// Page returns the page handle the scenario drives
	Page() playwright.Page

	// Screenshot saves a full-page screenshot to path
	Screenshot(path string) error

	// Close closes the page, context and browser
	Close() error
}
