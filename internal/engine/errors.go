package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyTitle rejects task/category creation with a blank title. The CLI
// treats it as a quiet no-op notice rather than a hard failure.
var ErrEmptyTitle = errors.New("title is required")

// InsufficientFundsError is returned when a draw is attempted with a balance
// below the draw cost. No state is changed and no randomness is consumed.
type InsufficientFundsError struct {
	Balance int
	Cost    int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient points: have %d PT, need %d PT", e.Balance, e.Cost)
}

// InvalidMergeGroupError indicates a merge was invoked with a group the
// finder would never have produced. This is a caller contract violation.
type InvalidMergeGroupError struct {
	Reason string
}

func (e InvalidMergeGroupError) Error() string {
	return "invalid merge group: " + e.Reason
}

// CategoryInUseError refuses category deletion while tasks still reference it.
type CategoryInUseError struct {
	Name      string
	TaskCount int
}

func (e CategoryInUseError) Error() string {
	return fmt.Sprintf("category %q still has %d task(s); move or delete them first", e.Name, e.TaskCount)
}
