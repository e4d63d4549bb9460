package engine

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns the rarity tiers ordered lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

type Period string

const (
	PeriodDaily Period = "daily"
	PeriodOnce  Period = "once"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodOnce:
		return true
	default:
		return false
	}
}

// DefaultPeriod is used when user input is missing/invalid.
const DefaultPeriod Period = PeriodDaily

// MaxStarLevel caps card upgrades; cards at the cap never merge again.
const MaxStarLevel = 5
