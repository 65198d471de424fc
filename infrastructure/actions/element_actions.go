package actions

import (
	"github.com/playwright-community/playwright-go"
)

// ElementActions wraps single-element interactions on a locator.
// Every call resolves the locator again, so DOM changes between calls are tolerated.
type ElementActions struct{}

// NewElementActions - creates element actions
func NewElementActions() *ElementActions {
	return &ElementActions{}
}

// ClickElement - clicks on the element
func (a *ElementActions) ClickElement(element playwright.Locator) error {
	return element.Click()
}

// DoubleClickElement - double-clicks on the element
func (a *ElementActions) DoubleClickElement(element playwright.Locator) error {
	return element.Dblclick()
}

// EnterText - clears the input and fills it with text
func (a *ElementActions) EnterText(element playwright.Locator, text string) error {
	return element.Fill(text)
}

// DragAndDrop - drags source and drops it onto target
func (a *ElementActions) DragAndDrop(source, target playwright.Locator) error {
	return source.DragTo(target)
}

// SelectOptionByValue - selects a dropdown option by its value attribute
func (a *ElementActions) SelectOptionByValue(element playwright.Locator, value string) error {
	_, err := element.SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice(value),
	})
	return err
}

// SelectOptionByText - selects a dropdown option by its visible label
func (a *ElementActions) SelectOptionByText(element playwright.Locator, text string) error {
	_, err := element.SelectOption(playwright.SelectOptionValues{
		Labels: playwright.StringSlice(text),
	})
	return err
}

// CheckElement - checks a checkbox or radio button, does nothing when already checked
func (a *ElementActions) CheckElement(element playwright.Locator) error {
	return element.Check()
}

// UncheckElement - unchecks a checkbox, does nothing when already unchecked
func (a *ElementActions) UncheckElement(element playwright.Locator) error {
	return element.Uncheck()
}

// GetTextContent - returns the element's text content, empty when it has none
func (a *ElementActions) GetTextContent(element playwright.Locator) (string, error) {
	return element.TextContent()
}
