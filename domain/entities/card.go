package entities

// Card is a kanban card as rendered on the board
type Card struct {
	Name        string         `json:"name"`
	CounterText string         `json:"counter_text"`
	Counter     SubtaskCounter `json:"counter"`
	Column      int            `json:"column"`
}

// Subtask is a checkbox-and-label pair inside the card view
type Subtask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
