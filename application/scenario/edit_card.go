package scenario

import (
	"context"
	"regexp"
	"strings"
	"time"

	"kanban_e2e/application/pages"
	"kanban_e2e/domain/entities"
	"kanban_e2e/domain/interfaces"
	"kanban_e2e/infrastructure/actions"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

const (
	// EditKanbanCardName is the scenario name used in reports
	EditKanbanCardName = "Edit a Kanban Card"

	editKanbanCardCase  = "TC01-Kanban"
	editKanbanCardStory = "As a user of the Kanban board, I want to edit a card to mark a subtask as completed " +
		"and move the card to the first column, so that I can keep track of the progress and organize tasks efficiently."
)

var lineThrough = regexp.MustCompile(`line-through`)

type options struct {
	reporter    interfaces.Reporter
	logger      *logrus.Logger
	loadTimeout time.Duration
	boardPath   string
}

type Option func(o *options)

// WithReporter forwards step progress to reporter
func WithReporter(reporter interfaces.Reporter) Option {
	return func(o *options) {
		o.reporter = reporter
	}
}

// WithLogger logs steps through logger
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLoadTimeout sets how long to wait for the page "load" state
func WithLoadTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.loadTimeout = timeout
	}
}

// WithBoardPath opens the board at path, relative to the session base URL, instead of "/"
func WithBoardPath(path string) Option {
	return func(o *options) {
		o.boardPath = path
	}
}

// EditKanbanCard marks one more subtask of an incomplete card as done, moves the card
// to the first column and checks the board reflects both changes.
func EditKanbanCard(ctx context.Context, session interfaces.Session, opts ...Option) (*entities.RunReport, error) {
	o := &options{logger: logrus.StandardLogger(), boardPath: "/"}
	for _, opt := range opts {
		opt(o)
	}

	page := session.Page()
	board := pages.NewBoardPage(page, o.logger)
	browserActions := actions.NewBrowserActions()
	pageActions := actions.NewPageActions()
	expect := playwright.NewPlaywrightAssertions()

	r := NewRunner(EditKanbanCardName, o.reporter, o.logger)
	r.Annotate(editKanbanCardCase, editKanbanCardStory)

	var (
		selected        entities.Card
		completed       entities.Subtask
		updatedCounter  entities.SubtaskCounter
		updatedCardText string
	)

	r.Step(ctx, "Given I am on the Kanban page", func() error {
		if err := browserActions.NavigateToURL(page, o.boardPath); err != nil {
			return err
		}
		return pageActions.WaitForPageLoad(page, o.loadTimeout)
	})

	r.Step(ctx, "When I select the card with incompleted subtasks", func() error {
		card, err := board.SelectCardWithIncompleteSubtasks()
		if err != nil {
			return err
		}
		if strings.TrimSpace(card.Name) == "" {
			return entities.NewAssertionError("A card should be selected.", errors.New("card name is empty"))
		}
		selected = card
		return nil
	})

	r.Step(ctx, "And I mark a subtask as completed", func() error {
		subtask, err := board.MarkSubtaskAsCompleted()
		if err != nil {
			return err
		}
		if strings.TrimSpace(subtask.Title) == "" {
			return entities.NewAssertionError("The completed subtask should have a name.", errors.New("subtask text is empty"))
		}
		completed = subtask
		return nil
	})

	r.Step(ctx, "And I move the task to the first column", func() error {
		return board.SelectFirstStatusFromCustomDropdown()
	})

	r.Step(ctx, "Then I should see that the completed subtask is striked through", func() error {
		return expectThat(
			expect.Locator(board.SubtaskByTitle(completed.Title)).ToHaveClass(lineThrough),
			"The subtask should have line-through styling.",
		)
	})

	r.Step(ctx, "And I close the card edit view", func() error {
		return board.CloseModalByClickingOutside()
	})

	r.Step(ctx, "Then I should see that the number of completed subtasks is correct", func() error {
		updatedCard := board.FirstColumnCard(selected.Name)
		if err := expectThat(expect.Locator(updatedCard).ToBeVisible(), "The card should be visible."); err != nil {
			return err
		}

		text, counter, err := board.ReadCounter(updatedCard)
		if errors.Is(err, entities.ErrMalformedCounter) {
			return entities.NewAssertionError("The card should show its subtask progress.", err)
		}
		if err != nil {
			return err
		}
		updatedCardText, updatedCounter = text, counter

		if err := expectEqual(counter.Total, selected.Counter.Total, "The total number should not be changed."); err != nil {
			return err
		}
		return expectEqual(counter.Completed, selected.Counter.Completed+1, "The number of completed subtasks should increase by 1.")
	})

	r.Step(ctx, "And I should see the card in the first column", func() error {
		return expectThat(
			expect.Locator(board.FirstColumnCardHeading(selected.Name)).ToBeVisible(),
			"The card should be visible.",
		)
	})

	if !r.Failed() {
		o.logger.WithFields(logrus.Fields{
			"card":     selected.Name,
			"subtask":  completed.Title,
			"before":   selected.CounterText,
			"after":    updatedCardText,
			"progress": updatedCounter.String(),
		}).Info("card edited")
	}

	return r.Finish()
}
