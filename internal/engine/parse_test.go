package engine

import "testing"

func TestParseDifficulty(t *testing.T) {
	for n, want := range map[int]Difficulty{1: DifficultyEasy, 2: DifficultyMedium, 3: DifficultyHard} {
		got, err := ParseDifficulty(n)
		if err != nil || got != want {
			t.Fatalf("ParseDifficulty(%d)=%v,%v", n, got, err)
		}
	}
	for _, n := range []int{0, 4, -1} {
		if _, err := ParseDifficulty(n); err == nil {
			t.Fatalf("ParseDifficulty(%d) should fail", n)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	cases := map[string]Period{
		"":        DefaultPeriod,
		"daily":   PeriodDaily,
		"DAY":     PeriodDaily,
		"once":    PeriodOnce,
		"one-off": PeriodOnce,
		" Once ":  PeriodOnce,
	}
	for in, want := range cases {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Fatalf("ParsePeriod(%q)=%v,%v, want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("weekly"); err == nil {
		t.Fatalf("ParsePeriod(weekly) should fail")
	}
}

func TestParseRarity(t *testing.T) {
	if r, err := ParseRarity(" Epic "); err != nil || r != RarityEpic {
		t.Fatalf("ParseRarity(Epic)=%v,%v", r, err)
	}
	if _, err := ParseRarity("mythic"); err == nil {
		t.Fatalf("ParseRarity(mythic) should fail")
	}
}
