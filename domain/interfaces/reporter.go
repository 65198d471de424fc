package interfaces

import "kanban_e2e/domain/entities"

// Reporter receives step progress while a scenario runs
type Reporter interface {
	StepStarted(title string)
	StepFinished(step entities.StepResult)
}
