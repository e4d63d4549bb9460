package engine

import (
	"fmt"

	"pixelquest/internal/storage"
)

// PointsForDifficulty maps difficulty to the task's point value. The value is
// frozen on the task at creation time; later changes to this mapping never
// retouch existing tasks.
func PointsForDifficulty(d Difficulty) (int, error) {
	switch d {
	case DifficultyEasy:
		return 10, nil
	case DifficultyMedium:
		return 20, nil
	case DifficultyHard:
		return 30, nil
	default:
		return 0, fmt.Errorf("invalid difficulty: %d", d)
	}
}

type ToggleResult struct {
	Completed   bool
	PointsDelta int
	Streak      int
}

// ApplyToggle flips the task's completed flag and applies the matching
// economy mutation to the profile. Completion credits points and bumps the
// streak; un-completion debits points clamped at zero and leaves the streak
// alone (the streak counts lifetime completion events and is never reversed).
func ApplyToggle(p *storage.Profile, t *storage.Task) ToggleResult {
	var delta int
	if !t.Completed {
		p.TotalPoints += t.Points
		p.Streak++
		delta = t.Points
	} else {
		debit := t.Points
		if debit > p.TotalPoints {
			debit = p.TotalPoints
		}
		p.TotalPoints -= debit
		delta = -debit
	}
	t.Completed = !t.Completed
	return ToggleResult{Completed: t.Completed, PointsDelta: delta, Streak: p.Streak}
}
