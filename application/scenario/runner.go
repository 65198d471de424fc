// Package scenario sequences page-object operations into recorded, annotated steps.
package scenario

import (
	"context"
	"time"

	"kanban_e2e/domain/entities"
	"kanban_e2e/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Runner records the steps of one scenario run. Steps run strictly in order;
// once a step fails every later step is recorded as skipped without running.
type Runner struct {
	report   *entities.RunReport
	reporter interfaces.Reporter
	logger   *logrus.Logger
	failure  error
	now      func() time.Time
}

// NewRunner - creates a runner for the named scenario
func NewRunner(name string, reporter interfaces.Reporter, logger *logrus.Logger) *Runner {
	r := &Runner{
		reporter: reporter,
		logger:   logger,
		now:      time.Now,
	}
	r.report = &entities.RunReport{
		Scenario:  name,
		Status:    entities.RunStatusRunning,
		StartedAt: r.now(),
	}
	return r
}

// Annotate - attaches metadata such as a test case id to the report
func (r *Runner) Annotate(annotationType, description string) {
	r.report.Annotations = append(r.report.Annotations, entities.Annotation{
		Type:        annotationType,
		Description: description,
	})
}

// Step - runs fn as the step named title unless an earlier step failed or ctx is done.
// It returns the step's own error, or the earlier failure when the step was skipped.
func (r *Runner) Step(ctx context.Context, title string, fn func() error) error {
	log := r.logger.WithField("step", title)

	if r.failure != nil {
		r.record(entities.StepResult{
			Title:     title,
			Status:    entities.StepStatusSkipped,
			StartedAt: r.now(),
		})
		log.Debug("step skipped")
		return r.failure
	}

	if r.reporter != nil {
		r.reporter.StepStarted(title)
	}
	log.Info("step started")

	started := r.now()
	err := ctx.Err()
	if err == nil {
		err = fn()
	}

	step := entities.StepResult{
		Title:     title,
		Status:    entities.StepStatusPassed,
		StartedAt: started,
		Duration:  r.now().Sub(started),
	}
	if err != nil {
		r.failure = err
		step.Status = entities.StepStatusFailed
		step.Failure = Classify(err)
		step.Error = err.Error()
	}
	r.record(step)

	log = log.WithFields(logrus.Fields{"status": step.Status, "duration": step.Duration})
	if err != nil {
		log.WithError(err).WithField("failure", step.Failure).Error("step failed")
	} else {
		log.Info("step finished")
	}
	return err
}

// Failed - reports whether any step has failed so far
func (r *Runner) Failed() bool {
	return r.failure != nil
}

// Finish - closes the report and returns it with the first step failure
func (r *Runner) Finish() (*entities.RunReport, error) {
	r.report.FinishedAt = r.now()
	r.report.Status = entities.RunStatusPassed
	if r.failure != nil {
		r.report.Status = entities.RunStatusFailed
	}

	r.logger.WithFields(logrus.Fields{
		"scenario": r.report.Scenario,
		"status":   r.report.Status,
		"duration": r.report.FinishedAt.Sub(r.report.StartedAt),
	}).Info("scenario finished")

	return r.report, r.failure
}

func (r *Runner) record(step entities.StepResult) {
	r.report.Steps = append(r.report.Steps, step)
	if r.reporter != nil {
		r.reporter.StepFinished(step)
	}
}
