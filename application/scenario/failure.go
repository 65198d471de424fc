package scenario

import (
	"context"

	"kanban_e2e/domain/entities"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
)

// Classify maps a step error onto the failure taxonomy used in reports
func Classify(err error) entities.FailureKind {
	var assertion *entities.AssertionError

	switch {
	case err == nil:
		return entities.FailureNone
	case errors.Is(err, entities.ErrNotFound):
		return entities.FailureNotFound
	case errors.As(err, &assertion):
		return entities.FailureAssertion
	case errors.Is(err, playwright.ErrTimeout), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return entities.FailureTimeout
	default:
		return entities.FailureError
	}
}

// expectThat turns a failed playwright assertion into an AssertionError carrying message
func expectThat(err error, message string) error {
	if err == nil {
		return nil
	}
	return entities.NewAssertionError(message, err)
}

// expectEqual fails with message when got differs from want
func expectEqual(got, want int, message string) error {
	if got == want {
		return nil
	}
	return entities.NewAssertionError(message, errors.Errorf("expected %d, got %d", want, got))
}
