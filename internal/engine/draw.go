package engine

import (
	"pixelquest/internal/storage"
)

// DrawCost is the fixed price of one draw, in points.
const DrawCost = 100

type DrawResult struct {
	Card       storage.Card // ID unset until persisted
	NewBalance int
}

// RollRarity rolls one rarity tier. The cascade is evaluated most-rare
// first with strict greater-than thresholds against the remaining mass:
// legendary 5%, epic 10%, rare 20%, common 65%.
func RollRarity(rng RandomSource) Rarity {
	r := rng.Float64()
	switch {
	case r > 0.95:
		return RarityLegendary
	case r > 0.85:
		return RarityEpic
	case r > 0.65:
		return RarityRare
	default:
		return RarityCommon
	}
}

// Draw performs one paid draw against the given balance. The affordability
// check happens before any randomness is consumed; on failure nothing
// changes. On success the returned card has star level 1 and a fresh
// cosmetic seed, and NewBalance = balance - DrawCost.
func Draw(balance int, rng RandomSource) (*DrawResult, error) {
	if balance < DrawCost {
		return nil, InsufficientFundsError{Balance: balance, Cost: DrawCost}
	}

	rarity := RollRarity(rng)
	tmpl := pickTemplate(TemplatesFor(rarity), rng)
	stats, err := GenerateStats(rarity, rng)
	if err != nil {
		return nil, err
	}

	return &DrawResult{
		Card: storage.Card{
			Name:      tmpl.Name,
			Rarity:    string(rarity),
			Seed:      NewSeed(rng),
			HP:        stats.HP,
			ATK:       stats.ATK,
			StarLevel: 1,
		},
		NewBalance: balance - DrawCost,
	}, nil
}

// pickTemplate selects uniformly from pool, falling back to the full catalog
// if the pool is empty. The fallback cannot fire while the catalog contract
// holds; it guards against a misconfigured catalog.
func pickTemplate(pool []CardTemplate, rng RandomSource) CardTemplate {
	if len(pool) == 0 {
		pool = AllTemplates()
	}
	return pool[rng.IntN(len(pool))]
}
