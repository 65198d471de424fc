package entities

import "time"

// RunStatus represents the status of a scenario run
type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
)

// Annotation is test metadata attached to a run, e.g. a test case id and its user story
type Annotation struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RunReport represents the outcome of one scenario run
type RunReport struct {
	Scenario    string       `json:"scenario"`
	Status      RunStatus    `json:"status"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Steps       []StepResult `json:"steps"`
	StartedAt   time.Time    `json:"started_at"`
	FinishedAt  time.Time    `json:"finished_at,omitempty"`
	Screenshot  string       `json:"screenshot,omitempty"`
}

// Passed reports whether the run finished without a failed step
func (r *RunReport) Passed() bool {
	return r.Status == RunStatusPassed
}

// FailedStep returns the first failed step, if any
func (r *RunReport) FailedStep() (StepResult, bool) {
	for _, step := range r.Steps {
		if step.Status == StepStatusFailed {
			return step, true
		}
	}
	return StepResult{}, false
}
