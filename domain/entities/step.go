package entities

import "time"

// StepStatus represents the outcome of a single scenario step
type StepStatus string

const (
	StepStatusPassed  StepStatus = "passed"
	StepStatusFailed  StepStatus = "failed"
	StepStatusSkipped StepStatus = "skipped"
)

// FailureKind classifies why a step failed
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureNotFound  FailureKind = "not_found"
	FailureTimeout   FailureKind = "timeout"
	FailureAssertion FailureKind = "assertion"
	FailureError     FailureKind = "error"
)

// StepResult represents a single recorded step
type StepResult struct {
	Title     string        `json:"title"`
	Status    StepStatus    `json:"status"`
	Failure   FailureKind   `json:"failure,omitempty"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}
