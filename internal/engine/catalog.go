package engine

import "fmt"

// CardTemplate names a drawable card within a rarity tier.
type CardTemplate struct {
	Name   string
	Rarity Rarity
}

// StatRange is the closed integer interval stats roll within for a tier.
type StatRange struct {
	Min int
	Max int
}

var cardTemplates = []CardTemplate{
	{Name: "Slime", Rarity: RarityCommon},
	{Name: "Rat", Rarity: RarityCommon},
	{Name: "Bat", Rarity: RarityCommon},
	{Name: "Knight", Rarity: RarityRare},
	{Name: "Elf", Rarity: RarityRare},
	{Name: "Wizard", Rarity: RarityEpic},
	{Name: "Dragon", Rarity: RarityLegendary},
}

// Stat ranges per tier; overall stats land in 1-20.
var statRanges = map[Rarity]StatRange{
	RarityCommon:    {Min: 1, Max: 8},
	RarityRare:      {Min: 5, Max: 12},
	RarityEpic:      {Min: 10, Max: 16},
	RarityLegendary: {Min: 15, Max: 20},
}

// AllTemplates returns the full template catalog.
func AllTemplates() []CardTemplate {
	out := make([]CardTemplate, len(cardTemplates))
	copy(out, cardTemplates)
	return out
}

// TemplatesFor returns the templates tagged with the given rarity.
func TemplatesFor(r Rarity) []CardTemplate {
	var out []CardTemplate
	for _, t := range cardTemplates {
		if t.Rarity == r {
			out = append(out, t)
		}
	}
	return out
}

// StatRangeFor returns the stat range configured for the given rarity.
func StatRangeFor(r Rarity) (StatRange, error) {
	sr, ok := statRanges[r]
	if !ok {
		return StatRange{}, fmt.Errorf("no stat range for rarity %q", r)
	}
	return sr, nil
}

// ValidateCatalog checks the catalog contract: every rarity has at least one
// template and a range with 1 <= min <= max.
func ValidateCatalog() error {
	for _, r := range AllRarities() {
		if len(TemplatesFor(r)) == 0 {
			return fmt.Errorf("rarity %q has no templates", r)
		}
		sr, err := StatRangeFor(r)
		if err != nil {
			return err
		}
		if sr.Min < 1 || sr.Max < sr.Min {
			return fmt.Errorf("rarity %q has invalid stat range [%d,%d]", r, sr.Min, sr.Max)
		}
	}
	return nil
}
