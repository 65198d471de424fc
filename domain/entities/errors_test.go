package entities

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestAssertionErrorUnwraps(t *testing.T) {
	RegisterTestingT(t)

	cause := errors.New("expected class to match /line-through/")
	err := errors.Wrap(NewAssertionError("The subtask should have line-through styling.", cause), "step failed")

	var assertion *AssertionError
	Expect(errors.As(err, &assertion)).To(BeTrue())
	Expect(assertion.Message).To(Equal("The subtask should have line-through styling."))
	Expect(errors.Is(err, cause)).To(BeTrue())
	Expect(err.Error()).To(ContainSubstring("line-through styling.: expected class"))
}

func TestRunReportFailedStep(t *testing.T) {
	RegisterTestingT(t)

	report := &RunReport{
		Status: RunStatusFailed,
		Steps: []StepResult{
			{Title: "Given I am on the Kanban page", Status: StepStatusPassed},
			{Title: "When I select the card", Status: StepStatusFailed, Failure: FailureNotFound},
			{Title: "And I mark a subtask", Status: StepStatusSkipped},
		},
	}

	step, ok := report.FailedStep()
	Expect(ok).To(BeTrue())
	Expect(step.Failure).To(Equal(FailureNotFound))
	Expect(report.Passed()).To(BeFalse())
}
