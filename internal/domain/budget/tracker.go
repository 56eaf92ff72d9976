// internal/domain/budget/tracker.go
package budget

import (
	"errors"

	"github.com/your-org/pantry-backend/internal/pkg/numeric"
)

// ErrInvalidBudget indicates a budget value that is not a finite, non-negative number.
// The previous budget is retained.
var ErrInvalidBudget = errors.New("budget must be a non-negative number")

// Status is the derived comparison between the budget and a cart total
type Status struct {
	Budget    float64 `json:"budget"`
	Total     float64 `json:"total"`
	Remaining float64 `json:"remaining"`
	Exceeded  bool    `json:"exceeded"`
}

// Tracker holds the single spending ceiling. It knows nothing about cart contents.
type Tracker struct {
	value float64
}

// NewTracker creates a tracker; invalid initial values start at 0
func NewTracker(value float64) *Tracker {
	return &Tracker{value: numeric.Clamp(value)}
}

// Value returns the current budget
func (t *Tracker) Value() float64 {
	return t.value
}

// SetBudget parses and stores a new budget. Unlike item amounts, invalid
// input is rejected rather than clamped: a budget of 0 is a meaningful state.
func (t *Tracker) SetBudget(raw string) error {
	v, err := numeric.Parse(raw)
	if err != nil || v < 0 {
		return ErrInvalidBudget
	}

	t.value = v
	return nil
}

// Status compares the budget with a cart total
func (t *Tracker) Status(total float64) Status {
	return Status{
		Budget:    t.value,
		Total:     total,
		Remaining: numeric.Sub(t.value, total),
		Exceeded:  IsExceeded(total, t.value),
	}
}

// IsExceeded reports whether total is strictly greater than budget
func IsExceeded(total, budget float64) bool {
	return total > budget
}
