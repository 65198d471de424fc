package entities

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var digitRun = regexp.MustCompile(`\d+`)

// SubtaskCounter is the "<completed> of <total> subtasks" progress of a card
type SubtaskCounter struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Incomplete reports whether at least one subtask is still open
func (c SubtaskCounter) Incomplete() bool {
	return c.Completed < c.Total
}

func (c SubtaskCounter) String() string {
	return fmt.Sprintf("%d of %d subtasks", c.Completed, c.Total)
}

// ParseSubtaskCounter extracts completed and total from counter text.
// The first two digit runs are taken in order; anything after them is ignored.
func ParseSubtaskCounter(text string) (SubtaskCounter, error) {
	runs := digitRun.FindAllString(text, 2)
	if len(runs) < 2 {
		return SubtaskCounter{}, errors.Wrapf(ErrMalformedCounter, "%q", text)
	}

	numbers := lo.Map(runs, func(run string, _ int) int {
		n, err := strconv.Atoi(run)
		if err != nil {
			return -1
		}
		return n
	})
	if lo.Contains(numbers, -1) {
		return SubtaskCounter{}, errors.Wrapf(ErrMalformedCounter, "%q: number out of range", text)
	}

	counter := SubtaskCounter{Completed: numbers[0], Total: numbers[1]}
	if counter.Completed > counter.Total {
		return SubtaskCounter{}, errors.Wrapf(ErrMalformedCounter, "%q: completed exceeds total", text)
	}
	return counter, nil
}

// CounterFromAttributes builds a counter from structured data attributes.
// ok is false when either attribute is absent or not a valid count.
func CounterFromAttributes(completed, total string) (SubtaskCounter, bool) {
	if completed == "" || total == "" {
		return SubtaskCounter{}, false
	}
	c, err := strconv.Atoi(completed)
	if err != nil || c < 0 {
		return SubtaskCounter{}, false
	}
	t, err := strconv.Atoi(total)
	if err != nil || t < c {
		return SubtaskCounter{}, false
	}
	return SubtaskCounter{Completed: c, Total: t}, true
}
