package terminal

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"kanban_e2e/domain/entities"

	. "github.com/onsi/gomega"
)

func newTestInterface(t *testing.T) (*TerminalInterface, *bytes.Buffer) {
	out := &bytes.Buffer{}
	ti, err := NewTerminalInterface(out, filepath.Join(t.TempDir(), "missing.env"))
	Expect(err).To(BeNil())
	ti.logger.SetOutput(io.Discard)
	return ti, out
}

func TestRunRejectsInvalidFlags(t *testing.T) {
	RegisterTestingT(t)

	ti, _ := newTestInterface(t)
	err := ti.Execute(context.Background(), []string{"run", "--browser", "netscape"})
	Expect(err).To(MatchError(ContainSubstring("unsupported browser")))

	ti, _ = newTestInterface(t)
	err = ti.Execute(context.Background(), []string{"run", "--load-timeout", "0s"})
	Expect(err).To(MatchError(ContainSubstring("load timeout must be positive")))
}

func TestServeFixtureStopsOnCancel(t *testing.T) {
	RegisterTestingT(t)

	ti, out := newTestInterface(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	Expect(ti.Execute(ctx, []string{"serve-fixture", "--addr", "127.0.0.1:0"})).To(Succeed())
	Expect(out.String()).To(HavePrefix("Serving fixture board at http://127.0.0.1:"))
}

func TestPrintSummary(t *testing.T) {
	RegisterTestingT(t)

	ti, out := newTestInterface(t)
	started := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	report := &entities.RunReport{
		Scenario: "Edit a Kanban Card",
		Status:   entities.RunStatusFailed,
		Steps: []entities.StepResult{
			{Title: "Given I am on the Kanban page", Status: entities.StepStatusPassed},
			{Title: "When I select the card with incompleted subtasks", Status: entities.StepStatusFailed},
			{Title: "And I mark a subtask as completed", Status: entities.StepStatusSkipped},
			{Title: "And I move the task to the first column", Status: entities.StepStatusSkipped},
		},
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		Screenshot: "test-results/edit-a-kanban-card-20261019T093000.000-failure.png",
	}

	ti.printSummary(report, "test-results/edit-a-kanban-card-20261019T093000.000.json")
	Expect(out.String()).To(ContainSubstring("Edit a Kanban Card: failed (1 passed, 1 failed, 2 skipped) in 1.5s"))
	Expect(out.String()).To(ContainSubstring("Report saved to "))
	Expect(out.String()).To(ContainSubstring("edit-a-kanban-card-20261019T093000.000.json"))
	Expect(out.String()).To(ContainSubstring("edit-a-kanban-card-20261019T093000.000-failure.png"))
}

func TestRunAgainstFixture(t *testing.T) {
	if testing.Short() {
		t.Skip("browser test")
	}
	RegisterTestingT(t)

	ti, out := newTestInterface(t)
	reportDir := t.TempDir()

	err := ti.Execute(context.Background(), []string{"run", "--fixture", "--report-dir", reportDir})
	if err != nil && strings.Contains(err.Error(), "failed to initialize browser") {
		t.Skipf("playwright unavailable: %v", err)
	}
	Expect(err).To(BeNil())
	Expect(out.String()).To(ContainSubstring("> Given I am on the Kanban page"))
	Expect(out.String()).To(ContainSubstring("Edit a Kanban Card: passed (8 passed, 0 failed, 0 skipped)"))

	entries, err := os.ReadDir(reportDir)
	Expect(err).To(BeNil())
	Expect(entries).To(HaveLen(1))
	Expect(entries[0].Name()).To(HaveSuffix(".json"))
}
