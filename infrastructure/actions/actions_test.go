package actions_test

import (
	"testing"

	"kanban_e2e/infrastructure/actions"
	"kanban_e2e/infrastructure/browser/browsertest"
	"kanban_e2e/infrastructure/fixture"

	. "github.com/onsi/gomega"
	"github.com/playwright-community/playwright-go"
)

func openPlayground(t *testing.T) playwright.Page {
	RegisterTestingT(t)

	env := browsertest.New(t)
	env.Open(t, fixture.PlaygroundPath)
	return env.Session.Page()
}

func TestClickAndDoubleClick(t *testing.T) {
	page := openPlayground(t)
	elementActions := actions.NewElementActions()

	Expect(elementActions.ClickElement(page.Locator("#clicker"))).To(Succeed())
	Expect(elementActions.ClickElement(page.Locator("#clicker"))).To(Succeed())
	Expect(elementActions.GetTextContent(page.Locator("#clicker"))).To(Equal("clicked 2"))

	Expect(elementActions.DoubleClickElement(page.Locator("#double"))).To(Succeed())
	Expect(elementActions.GetTextContent(page.Locator("#double"))).To(Equal("double clicked"))
}

func TestEnterTextReplacesValue(t *testing.T) {
	page := openPlayground(t)
	elementActions := actions.NewElementActions()

	input := page.Locator("#name")
	Expect(elementActions.EnterText(input, "Design logo")).To(Succeed())
	Expect(input.InputValue()).To(Equal("Design logo"))
}

func TestSelectOption(t *testing.T) {
	page := openPlayground(t)
	elementActions := actions.NewElementActions()

	dropdown := page.Locator("#status")
	Expect(elementActions.SelectOptionByValue(dropdown, "done")).To(Succeed())
	Expect(dropdown.InputValue()).To(Equal("done"))

	Expect(elementActions.SelectOptionByText(dropdown, "Doing")).To(Succeed())
	Expect(dropdown.InputValue()).To(Equal("doing"))

	page.SetDefaultTimeout(1000)
	Expect(elementActions.SelectOptionByValue(dropdown, "archived")).NotTo(Succeed())
	Expect(elementActions.SelectOptionByText(dropdown, "Archived")).NotTo(Succeed())
	Expect(dropdown.InputValue()).To(Equal("doing"))
}

func TestCheckAndUncheckAreIdempotent(t *testing.T) {
	page := openPlayground(t)
	elementActions := actions.NewElementActions()

	checkbox := page.Locator("#agree")
	Expect(elementActions.CheckElement(checkbox)).To(Succeed())
	Expect(elementActions.CheckElement(checkbox)).To(Succeed())
	Expect(checkbox.IsChecked()).To(BeTrue())

	Expect(elementActions.UncheckElement(checkbox)).To(Succeed())
	Expect(elementActions.UncheckElement(checkbox)).To(Succeed())
	Expect(checkbox.IsChecked()).To(BeFalse())
}

func TestGetTextContentOfEmptyElement(t *testing.T) {
	page := openPlayground(t)

	text, err := actions.NewElementActions().GetTextContent(page.Locator("#empty"))
	Expect(err).To(BeNil())
	Expect(text).To(Equal(""))
}

func TestDragAndDrop(t *testing.T) {
	page := openPlayground(t)
	elementActions := actions.NewElementActions()

	Expect(elementActions.DragAndDrop(page.Locator("#source"), page.Locator("#target"))).To(Succeed())
	Expect(elementActions.GetTextContent(page.Locator("#target"))).To(Equal("dropped source"))
}

func TestNavigateWaitAndClose(t *testing.T) {
	RegisterTestingT(t)

	env := browsertest.New(t)
	page := env.Session.Page()
	browserActions := actions.NewBrowserActions()
	pageActions := actions.NewPageActions()

	Expect(browserActions.NavigateToURL(page, "/")).To(Succeed())
	Expect(page.URL()).To(Equal(env.BaseURL + "/"))
	Expect(pageActions.WaitForPageLoad(page, 0)).To(Succeed())
	Expect(page.Locator("section.box-content").Count()).To(Equal(3))

	Expect(browserActions.ClosePage(page)).To(Succeed())
	Expect(page.IsClosed()).To(BeTrue())
}
