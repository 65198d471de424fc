// Package pages holds page objects: locators plus the business operations of one screen.
package pages

import (
	"fmt"
	"strings"

	"kanban_e2e/domain/entities"
	"kanban_e2e/infrastructure/actions"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

const (
	columnSelector         = "section.box-content"
	cardSelector           = "article.group"
	cardNameSelector       = "h3"
	cardCounterSelector    = "p.text-xs"
	statusDropdownSelector = `div[tabindex="1"].w-full`
	subtaskListSelector    = "div.flex.flex-col.gap-2"
	statusOptionSelector   = "div.hidden.absolute div.p-4"
	subtaskRowSelector     = "label"
	subtaskTextSelector    = "span"
	subtaskCheckSelector   = `input[type="checkbox"]`
)

// BoardPage is the kanban board with its card edit view.
// Locators are created once and resolve against the live DOM on every use.
type BoardPage struct {
	Page                  playwright.Page
	FirstColumn           playwright.Locator
	SecondColumnCards     playwright.Locator
	CurrentStatusDropdown playwright.Locator
	SubtaskContainer      playwright.Locator
	AllColumns            playwright.Locator
	StatusOptions         playwright.Locator

	elementActions *actions.ElementActions
	logger         *logrus.Logger
}

func NewBoardPage(page playwright.Page, logger *logrus.Logger) *BoardPage {
	allColumns := page.Locator(columnSelector)
	secondColumn := allColumns.Nth(1)

	return &BoardPage{
		Page:                  page,
		FirstColumn:           allColumns.Nth(0),
		SecondColumnCards:     secondColumn.Locator(cardSelector),
		CurrentStatusDropdown: page.Locator(statusDropdownSelector),
		SubtaskContainer:      page.Locator(subtaskListSelector),
		AllColumns:            allColumns,
		StatusOptions:         page.Locator(statusOptionSelector),
		elementActions:        actions.NewElementActions(),
		logger:                logger,
	}
}

// SelectCardWithIncompleteSubtasks clicks the first card, outside the first column,
// whose counter shows fewer completed than total subtasks. Columns are scanned
// left to right and cards top to bottom. Cards without a readable name or counter
// are skipped.
func (b *BoardPage) SelectCardWithIncompleteSubtasks() (entities.Card, error) {
	columnCount, err := b.AllColumns.Count()
	if err != nil {
		return entities.Card{}, errors.Wrap(err, "failed to count columns")
	}

	for columnIndex := 1; columnIndex < columnCount; columnIndex++ {
		cards := b.AllColumns.Nth(columnIndex).Locator(cardSelector)
		cardCount, err := cards.Count()
		if err != nil {
			return entities.Card{}, errors.Wrapf(err, "failed to count cards in column %d", columnIndex)
		}

		for index := 0; index < cardCount; index++ {
			card := cards.Nth(index)
			log := b.logger.WithFields(logrus.Fields{"column": columnIndex, "card": index})

			name, err := b.optionalText(card.Locator(cardNameSelector))
			if err != nil {
				return entities.Card{}, err
			}
			if strings.TrimSpace(name) == "" {
				log.Warn("skipping card without a name")
				continue
			}

			counterText, counter, err := b.ReadCounter(card)
			if errors.Is(err, entities.ErrMalformedCounter) {
				log.WithError(err).WithField("name", name).Warn("skipping card with unreadable subtask counter")
				continue
			}
			if err != nil {
				return entities.Card{}, err
			}
			if !counter.Incomplete() {
				continue
			}

			if err := b.elementActions.ClickElement(card); err != nil {
				return entities.Card{}, errors.Wrapf(err, "failed to open card %q", name)
			}
			log.WithFields(logrus.Fields{"name": name, "subtasks": counterText}).Debug("selected card")

			return entities.Card{
				Name:        name,
				CounterText: counterText,
				Counter:     counter,
				Column:      columnIndex,
			}, nil
		}
	}

	return entities.Card{}, errors.Wrap(entities.ErrNotFound, "no card with incomplete subtasks found in columns")
}

// ReadCounter returns the raw counter text of a card and its parsed value.
// Structured data-completed/data-total attributes win over the text when present.
func (b *BoardPage) ReadCounter(card playwright.Locator) (string, entities.SubtaskCounter, error) {
	counterEl := b.CardCounter(card).First()

	text, err := b.optionalText(counterEl)
	if err != nil {
		return "", entities.SubtaskCounter{}, err
	}
	if text == "" {
		return "", entities.SubtaskCounter{}, errors.Wrap(entities.ErrMalformedCounter, "card has no subtask counter")
	}

	completed, err := counterEl.GetAttribute("data-completed")
	if err != nil {
		return "", entities.SubtaskCounter{}, errors.Wrap(err, "failed to read counter attributes")
	}
	total, err := counterEl.GetAttribute("data-total")
	if err != nil {
		return "", entities.SubtaskCounter{}, errors.Wrap(err, "failed to read counter attributes")
	}
	if counter, ok := entities.CounterFromAttributes(completed, total); ok {
		return text, counter, nil
	}

	counter, err := entities.ParseSubtaskCounter(text)
	return text, counter, err
}

// MarkSubtaskAsCompleted clicks the label text of the first visible unchecked
// subtask in the open card view and returns that subtask.
func (b *BoardPage) MarkSubtaskAsCompleted() (entities.Subtask, error) {
	if err := b.CurrentStatusDropdown.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return entities.Subtask{}, errors.Wrap(err, "card view is not open")
	}

	rows := b.SubtaskContainer.Locator(subtaskRowSelector)
	count, err := rows.Count()
	if err != nil {
		return entities.Subtask{}, errors.Wrap(err, "failed to count subtasks")
	}

	for index := 0; index < count; index++ {
		row := rows.Nth(index)
		subtaskText := row.Locator(subtaskTextSelector)

		checked, err := row.Locator(subtaskCheckSelector).IsChecked()
		if err != nil {
			return entities.Subtask{}, errors.Wrapf(err, "failed to read subtask %d state", index)
		}
		if checked {
			continue
		}

		visible, err := subtaskText.IsVisible()
		if err != nil {
			return entities.Subtask{}, errors.Wrapf(err, "failed to read subtask %d visibility", index)
		}
		if !visible {
			continue
		}

		name, err := b.elementActions.GetTextContent(subtaskText)
		if err != nil {
			return entities.Subtask{}, err
		}
		if err := b.elementActions.ClickElement(subtaskText); err != nil {
			return entities.Subtask{}, errors.Wrapf(err, "failed to complete subtask %q", name)
		}
		b.logger.WithField("subtask", name).Debug("marked subtask as completed")
		return entities.Subtask{Title: name, Completed: true}, nil
	}

	return entities.Subtask{}, errors.Wrap(entities.ErrNotFound, "no incomplete subtask found to mark as completed")
}

// SelectFirstStatusFromCustomDropdown opens the status dropdown and picks its first entry,
// which moves the open card to the first column.
func (b *BoardPage) SelectFirstStatusFromCustomDropdown() error {
	if err := b.elementActions.ClickElement(b.CurrentStatusDropdown); err != nil {
		return errors.Wrap(err, "failed to open status dropdown")
	}
	return b.elementActions.ClickElement(b.StatusOptions.First())
}

// CloseModalByClickingOutside clicks near the page origin and waits until the card view is gone.
func (b *BoardPage) CloseModalByClickingOutside() error {
	if err := b.Page.Mouse().Click(0, 0); err != nil {
		return errors.Wrap(err, "failed to click outside the card view")
	}
	return b.CurrentStatusDropdown.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateHidden,
	})
}

// SubtaskByTitle locates the text of a subtask in the open card view
func (b *BoardPage) SubtaskByTitle(title string) playwright.Locator {
	return b.SubtaskContainer.Locator(fmt.Sprintf("%s:has-text(%q)", subtaskTextSelector, title))
}

// FirstColumnCard locates a card in the first column by name
func (b *BoardPage) FirstColumnCard(name string) playwright.Locator {
	return b.FirstColumn.Locator(fmt.Sprintf("article:has(%s:has-text(%q))", cardNameSelector, name))
}

// FirstColumnCardHeading locates the name of a card in the first column
func (b *BoardPage) FirstColumnCardHeading(name string) playwright.Locator {
	return b.FirstColumn.Locator(fmt.Sprintf("%s:has-text(%q)", cardNameSelector, name))
}

// CardCounter locates the "x of y subtasks" label inside a card
func (b *BoardPage) CardCounter(card playwright.Locator) playwright.Locator {
	return card.Locator(cardCounterSelector)
}

// optionalText reads text without waiting for an element that may not be rendered
func (b *BoardPage) optionalText(locator playwright.Locator) (string, error) {
	count, err := locator.Count()
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", nil
	}
	return b.elementActions.GetTextContent(locator.First())
}
