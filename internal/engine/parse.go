package engine

import (
	"fmt"
	"strings"
)

// ParseDifficulty parses user input (1-3) to a Difficulty.
func ParseDifficulty(n int) (Difficulty, error) {
	d := Difficulty(n)
	if !d.IsValid() {
		return 0, fmt.Errorf("invalid difficulty: %d (want 1-3)", n)
	}
	return d, nil
}

// ParsePeriod parses user input to a Period.
// Supported: daily, once (plus a few aliases). Empty input falls back to
// DefaultPeriod.
func ParsePeriod(input string) (Period, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultPeriod, nil
	case "daily", "day":
		return PeriodDaily, nil
	case "once", "one-off", "oneoff":
		return PeriodOnce, nil
	default:
		return "", fmt.Errorf("invalid period: %q (want daily|once)", input)
	}
}

// ParseRarity parses a stored or user-supplied rarity string.
func ParseRarity(input string) (Rarity, error) {
	r := Rarity(strings.TrimSpace(strings.ToLower(input)))
	if !r.IsValid() {
		return "", fmt.Errorf("invalid rarity: %q", input)
	}
	return r, nil
}
