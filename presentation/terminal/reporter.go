package terminal

import (
	"fmt"
	"io"
	"time"

	"kanban_e2e/domain/entities"
	"kanban_e2e/domain/interfaces"

	"github.com/fatih/color"
)

var (
	passedLabel  = color.New(color.FgGreen).SprintFunc()
	failedLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	skippedLabel = color.New(color.FgYellow).SprintFunc()
)

type stepReporter struct {
	out io.Writer
}

// NewStepReporter prints one line per step transition to out
func NewStepReporter(out io.Writer) interfaces.Reporter {
	return &stepReporter{out: out}
}

func (r *stepReporter) StepStarted(title string) {
	fmt.Fprintf(r.out, "> %s\n", title)
}

func (r *stepReporter) StepFinished(step entities.StepResult) {
	switch step.Status {
	case entities.StepStatusPassed:
		fmt.Fprintf(r.out, "  %s   %s (%s)\n", passedLabel("ok"), step.Title, step.Duration.Round(time.Millisecond))
	case entities.StepStatusFailed:
		fmt.Fprintf(r.out, "  %s %s [%s]: %s\n", failedLabel("FAIL"), step.Title, step.Failure, step.Error)
	default:
		fmt.Fprintf(r.out, "  %s %s\n", skippedLabel("skip"), step.Title)
	}
}
